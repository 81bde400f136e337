package handler

import (
	"github.com/gofiber/fiber/v2"

	"tenantconsole/internal/service"
)

// ClientStats returns the SaaS overview headline.
//
// @Summary  Client statistics
// @Tags     overview
// @Produce  json
// @Success  200 {object} model.ClientStats
// @Router   /api/v1/overview/stats [get]
func ClientStats(svc service.OverviewService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		st, err := svc.ClientStats(c.UserContext())
		if err != nil {
			return writeInternal(c, err)
		}
		return c.JSON(st)
	}
}

// RecentActivity returns the most recently active salon owners.
//
// @Summary  Recent client activity
// @Tags     overview
// @Produce  json
// @Success  200 {array} model.ClientActivity
// @Router   /api/v1/overview/activity [get]
func RecentActivity(svc service.OverviewService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.RecentActivity(c.UserContext())
		if err != nil {
			return writeInternal(c, err)
		}
		return c.JSON(items)
	}
}
