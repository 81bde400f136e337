package handler

import (
	"github.com/gofiber/fiber/v2"

	"tenantconsole/internal/service"
)

const sessionNotFound = "session not found"

// ListSessions returns active sessions.
//
// @Summary  Active sessions
// @Tags     sessions
// @Produce  json
// @Success  200 {array} model.UserSession
// @Router   /api/v1/sessions [get]
func ListSessions(svc service.SessionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.Active(c.UserContext())
		if err != nil {
			return writeInternal(c, err)
		}
		return c.JSON(items)
	}
}

// SessionStats returns session analytics.
//
// @Summary  Session statistics
// @Tags     sessions
// @Produce  json
// @Success  200 {object} model.SessionStats
// @Router   /api/v1/sessions/stats [get]
func SessionStats(svc service.SessionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		st, err := svc.Stats(c.UserContext())
		if err != nil {
			return writeInternal(c, err)
		}
		return c.JSON(st)
	}
}

// StartSession opens a session. The client IP is used when the body has none.
//
// @Summary  Start session
// @Tags     sessions
// @Accept   json
// @Produce  json
// @Param    body body     service.SessionInput true "session"
// @Success  201  {object} map[string]string
// @Failure  400  {object} errorPayload
// @Router   /api/v1/sessions [post]
func StartSession(svc service.SessionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.SessionInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		if in.IPAddress == "" {
			in.IPAddress = c.IP()
		}
		id, err := svc.Create(c.UserContext(), in)
		if err != nil {
			return writeServiceError(c, err, sessionNotFound)
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
	}
}

// RecordSessionAction bumps the action counter of a session.
//
// @Summary  Record session action
// @Tags     sessions
// @Param    id path string true "session id"
// @Success  204
// @Failure  404 {object} errorPayload
// @Router   /api/v1/sessions/{id}/actions [post]
func RecordSessionAction(svc service.SessionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.IncrementActions(c.UserContext(), c.Params("id")); err != nil {
			return writeServiceError(c, err, sessionNotFound)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// EndSession closes a session.
//
// @Summary  End session
// @Tags     sessions
// @Param    id path string true "session id"
// @Success  204
// @Failure  404 {object} errorPayload
// @Router   /api/v1/sessions/{id} [delete]
func EndSession(svc service.SessionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.End(c.UserContext(), c.Params("id")); err != nil {
			return writeServiceError(c, err, sessionNotFound)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// CleanupSessions ends sessions idle for a day or more.
//
// @Summary  Clean up stale sessions
// @Tags     sessions
// @Produce  json
// @Success  200 {object} map[string]int64
// @Router   /api/v1/sessions/cleanup [post]
func CleanupSessions(svc service.SessionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		n, err := svc.CleanupStale(c.UserContext())
		if err != nil {
			return writeInternal(c, err)
		}
		return c.JSON(fiber.Map{"ended": n})
	}
}
