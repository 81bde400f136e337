package handler

import (
	"github.com/gofiber/fiber/v2"

	"tenantconsole/internal/model"
	"tenantconsole/internal/service"
)

const profileNotFound = "profile not found"

// ListProfiles returns profiles filtered by role, status, search, client_id
// and a created_at range.
//
// @Summary  List profiles
// @Tags     profiles
// @Produce  json
// @Param    role      query string false "role or all"
// @Param    status    query string false "active, inactive or all"
// @Param    search    query string false "substring of name, email or username"
// @Param    client_id query string false "parent client id"
// @Param    start     query string false "created_at lower bound"
// @Param    end       query string false "created_at upper bound"
// @Success  200 {array}  model.Profile
// @Failure  400 {object} errorPayload
// @Router   /api/v1/profiles [get]
func ListProfiles(svc service.ProfileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		dr, ok := dateRangeQuery(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_DATE", "start and end must be RFC3339 or YYYY-MM-DD")
		}
		items, err := svc.List(c.UserContext(), model.ProfileFilter{
			Role:      c.Query("role"),
			Status:    c.Query("status"),
			Search:    c.Query("search"),
			ClientID:  c.Query("client_id"),
			DateRange: dr,
		})
		if err != nil {
			return writeServiceError(c, err, profileNotFound)
		}
		return c.JSON(items)
	}
}

// GetProfile returns one profile.
//
// @Summary  Get profile
// @Tags     profiles
// @Produce  json
// @Param    id  path string true "profile id"
// @Success  200 {object} model.Profile
// @Failure  404 {object} errorPayload
// @Router   /api/v1/profiles/{id} [get]
func GetProfile(svc service.ProfileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := svc.Get(c.UserContext(), c.Params("id"))
		if err != nil {
			return writeServiceError(c, err, profileNotFound)
		}
		return c.JSON(p)
	}
}

// CreateProfile creates a profile; full_name and email are required.
//
// @Summary  Create profile
// @Tags     profiles
// @Accept   json
// @Produce  json
// @Param    body body     model.ProfileInput true "profile"
// @Success  201  {object} model.Profile
// @Failure  400  {object} errorPayload
// @Router   /api/v1/profiles [post]
func CreateProfile(svc service.ProfileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.ProfileInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		p, err := svc.Create(c.UserContext(), in)
		if err != nil {
			return writeServiceError(c, err, profileNotFound)
		}
		return c.Status(fiber.StatusCreated).JSON(p)
	}
}

// UpdateProfile writes the fields present in the body.
//
// @Summary  Update profile
// @Tags     profiles
// @Accept   json
// @Produce  json
// @Param    id   path     string             true "profile id"
// @Param    body body     model.ProfileInput true "fields to change"
// @Success  200  {object} model.Profile
// @Failure  404  {object} errorPayload
// @Router   /api/v1/profiles/{id} [patch]
func UpdateProfile(svc service.ProfileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.ProfileInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		p, err := svc.Update(c.UserContext(), c.Params("id"), in)
		if err != nil {
			return writeServiceError(c, err, profileNotFound)
		}
		return c.JSON(p)
	}
}

// DeleteProfile removes a profile.
//
// @Summary  Delete profile
// @Tags     profiles
// @Param    id path string true "profile id"
// @Success  204
// @Failure  404 {object} errorPayload
// @Router   /api/v1/profiles/{id} [delete]
func DeleteProfile(svc service.ProfileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Delete(c.UserContext(), c.Params("id")); err != nil {
			return writeServiceError(c, err, profileNotFound)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// ToggleProfileStatus flips is_active.
//
// @Summary  Toggle profile status
// @Tags     profiles
// @Produce  json
// @Param    id  path string true "profile id"
// @Success  200 {object} model.Profile
// @Failure  404 {object} errorPayload
// @Router   /api/v1/profiles/{id}/toggle-status [post]
func ToggleProfileStatus(svc service.ProfileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := svc.ToggleStatus(c.UserContext(), c.Params("id"))
		if err != nil {
			return writeServiceError(c, err, profileNotFound)
		}
		return c.JSON(p)
	}
}

// ProfileStats returns profile totals, growth and role distribution.
//
// @Summary  Profile statistics
// @Tags     profiles
// @Produce  json
// @Success  200 {object} model.ProfileStats
// @Router   /api/v1/profiles/stats [get]
func ProfileStats(svc service.ProfileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		st, err := svc.Stats(c.UserContext())
		if err != nil {
			return writeInternal(c, err)
		}
		return c.JSON(st)
	}
}

// ListClients returns the client picker entries.
//
// @Summary  List clients
// @Tags     profiles
// @Produce  json
// @Success  200 {array} model.Client
// @Router   /api/v1/clients [get]
func ListClients(svc service.ProfileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.Clients(c.UserContext())
		if err != nil {
			return writeInternal(c, err)
		}
		return c.JSON(items)
	}
}
