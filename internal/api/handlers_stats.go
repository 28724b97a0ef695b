package api

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jkleiven/repwise/internal/services"
)

func (handler *Handler) GetUserStats(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	stats, err := handler.statsService.BuildUserStats(user.ID, time.Now().In(handler.location))
	if err != nil {
		log.Printf("build user stats for user %d: %v", user.ID, err)
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch stats")
	}

	return c.JSON(stats)
}

func (handler *Handler) GetVolumeStats(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var from *time.Time
	var to *time.Time
	if raw := c.Query("start_date"); raw != "" {
		day, err := parseDayParam(raw, handler.location)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid start_date")
		}
		from = &day
	}
	if raw := c.Query("end_date"); raw != "" {
		day, err := parseDayParam(raw, handler.location)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid end_date")
		}
		to = &day
	}

	stats, err := handler.statsService.BuildVolumeStatsForRange(user.ID, from, to)
	if err != nil {
		log.Printf("build volume stats for user %d: %v", user.ID, err)
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch volume stats")
	}

	// Newest day first, matching the dashboard's expectation.
	for i, j := 0, len(stats)-1; i < j; i, j = i+1, j-1 {
		stats[i], stats[j] = stats[j], stats[i]
	}
	return c.JSON(stats)
}

func (handler *Handler) GetAggregatedVolumeStats(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	rawStart := c.Query("start_date")
	rawEnd := c.Query("end_date")
	groupBy := c.Query("group_by")
	if rawStart == "" || rawEnd == "" || groupBy == "" {
		return apiError(c, fiber.StatusBadRequest, "start_date, end_date and group_by are required")
	}

	from, err := parseDayParam(rawStart, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid start_date")
	}
	to, err := parseDayParam(rawEnd, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid end_date")
	}
	if to.Before(from) {
		return apiError(c, fiber.StatusBadRequest, "invalid range")
	}

	aggregated, err := handler.statsService.AggregateVolumeForRange(user.ID, from, to, groupBy)
	if err != nil {
		if errors.Is(err, services.ErrInvalidGroupBy) {
			return apiError(c, fiber.StatusBadRequest, "group_by must be week or month")
		}
		log.Printf("aggregate volume for user %d: %v", user.ID, err)
		return apiError(c, fiber.StatusInternalServerError, "failed to aggregate volume stats")
	}

	return c.JSON(aggregated)
}
