package handler

import (
	"github.com/gofiber/fiber/v2"

	"tenantconsole/internal/model"
	"tenantconsole/internal/service"
)

const scheduleNotFound = "schedule not found"

// ListSchedules returns the backup schedules, optionally only the active ones.
//
// @Summary  List schedules
// @Tags     schedules
// @Produce  json
// @Param    active query bool false "Only active schedules"
// @Success  200 {array} model.BackupSchedule
// @Failure  400 {object} errorPayload
// @Router   /api/v1/schedules [get]
func ListSchedules(svc service.ScheduleService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		activeOnly, ok := boolQuery(c, "active", false)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_QUERY", "active must be a boolean")
		}
		items, err := svc.List(c.UserContext())
		if err != nil {
			return writeInternal(c, err)
		}
		if activeOnly {
			kept := []model.BackupSchedule{}
			for _, s := range items {
				if s.Active {
					kept = append(kept, s)
				}
			}
			items = kept
		}
		return c.JSON(items)
	}
}

// GetSchedule returns the schedule of one client.
//
// @Summary  Get schedule
// @Tags     schedules
// @Produce  json
// @Param    clientId path     string true "client id"
// @Success  200      {object} model.BackupSchedule
// @Failure  404      {object} errorPayload
// @Router   /api/v1/schedules/{clientId} [get]
func GetSchedule(svc service.ScheduleService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		s, err := svc.Get(c.UserContext(), c.Params("clientId"))
		if err != nil {
			return writeServiceError(c, err, scheduleNotFound)
		}
		return c.JSON(s)
	}
}

// PutSchedule creates or replaces the schedule of one client.
//
// @Summary  Upsert schedule
// @Tags     schedules
// @Accept   json
// @Produce  json
// @Param    clientId path     string                true "client id"
// @Param    body     body     service.ScheduleInput true "schedule"
// @Success  200      {object} model.BackupSchedule
// @Failure  400      {object} errorPayload
// @Router   /api/v1/schedules/{clientId} [put]
func PutSchedule(svc service.ScheduleService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.ScheduleInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		s, err := svc.Upsert(c.UserContext(), c.Params("clientId"), in)
		if err != nil {
			return writeServiceError(c, err, scheduleNotFound)
		}
		return c.JSON(s)
	}
}

// DeleteSchedule removes the schedule of one client.
//
// @Summary  Delete schedule
// @Tags     schedules
// @Param    clientId path string true "client id"
// @Success  204
// @Failure  404 {object} errorPayload
// @Router   /api/v1/schedules/{clientId} [delete]
func DeleteSchedule(svc service.ScheduleService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Delete(c.UserContext(), c.Params("clientId")); err != nil {
			return writeServiceError(c, err, scheduleNotFound)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// RunDueSchedules runs every due schedule now.
//
// @Summary  Run due schedules
// @Tags     schedules
// @Produce  json
// @Success  200 {object} service.RunSummary
// @Router   /api/v1/schedules/run [post]
func RunDueSchedules(svc service.ScheduleService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sum, err := svc.RunDue(c.UserContext())
		if err != nil {
			return writeInternal(c, err)
		}
		return c.JSON(sum)
	}
}
