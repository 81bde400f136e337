package handler

import (
	"github.com/gofiber/fiber/v2"

	"tenantconsole/internal/export"
	"tenantconsole/internal/model"
	"tenantconsole/internal/service"
)

const rowNotFound = "row not found"

// DataStats returns database-wide totals and the latest backup time.
//
// @Summary  Data statistics
// @Tags     schema
// @Produce  json
// @Success  200 {object} model.DataStats
// @Router   /api/v1/data/stats [get]
func DataStats(svc service.SchemaService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		st, err := svc.DataStats(c.UserContext())
		if err != nil {
			return writeInternal(c, err)
		}
		return c.JSON(st)
	}
}

// TableStats returns per-table row counts and sizes.
//
// @Summary  Table statistics
// @Tags     schema
// @Produce  json
// @Success  200 {object} model.TableStats
// @Router   /api/v1/tables/stats [get]
func TableStats(svc service.SchemaService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		st, err := svc.TableStats(c.UserContext())
		if err != nil {
			return writeInternal(c, err)
		}
		return c.JSON(st)
	}
}

// TableColumns describes the columns of a table.
//
// @Summary  Table columns
// @Tags     schema
// @Produce  json
// @Param    table path     string true "table name"
// @Success  200   {array}  model.Column
// @Failure  400   {object} errorPayload
// @Router   /api/v1/tables/{table}/columns [get]
func TableColumns(svc service.SchemaService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		cols, err := svc.Columns(c.UserContext(), c.Params("table"))
		if err != nil {
			return writeServiceError(c, err, "table not found")
		}
		return c.JSON(cols)
	}
}

// TableRows lists rows of a table.
//
// @Summary  Table rows
// @Tags     schema
// @Produce  json
// @Param    table path     string true  "table name"
// @Param    limit query    int    false "row limit"
// @Success  200   {array}  object
// @Failure  400   {object} errorPayload
// @Router   /api/v1/tables/{table}/rows [get]
func TableRows(svc service.SchemaService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rows, err := svc.Rows(c.UserContext(), c.Params("table"), c.QueryInt("limit", 0))
		if err != nil {
			return writeServiceError(c, err, "table not found")
		}
		return c.JSON(rows)
	}
}

// InsertRow adds a row to a table.
//
// @Summary  Insert row
// @Tags     schema
// @Accept   json
// @Produce  json
// @Param    table path     string true "table name"
// @Param    body  body     object true "column values"
// @Success  201   {object} object
// @Failure  400   {object} errorPayload
// @Router   /api/v1/tables/{table}/rows [post]
func InsertRow(svc service.SchemaService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var row model.Row
		if err := c.BodyParser(&row); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		out, err := svc.InsertRow(c.UserContext(), c.Params("table"), row)
		if err != nil {
			return writeServiceError(c, err, rowNotFound)
		}
		return c.Status(fiber.StatusCreated).JSON(out)
	}
}

// UpdateRow changes the given columns of one row.
//
// @Summary  Update row
// @Tags     schema
// @Accept   json
// @Produce  json
// @Param    table path     string true "table name"
// @Param    id    path     string true "row id"
// @Param    body  body     object true "column values"
// @Success  200   {object} object
// @Failure  404   {object} errorPayload
// @Router   /api/v1/tables/{table}/rows/{id} [patch]
func UpdateRow(svc service.SchemaService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var row model.Row
		if err := c.BodyParser(&row); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		out, err := svc.UpdateRow(c.UserContext(), c.Params("table"), c.Params("id"), row)
		if err != nil {
			return writeServiceError(c, err, rowNotFound)
		}
		return c.JSON(out)
	}
}

// DeleteRow removes one row.
//
// @Summary  Delete row
// @Tags     schema
// @Param    table path string true "table name"
// @Param    id    path string true "row id"
// @Success  204
// @Failure  404 {object} errorPayload
// @Router   /api/v1/tables/{table}/rows/{id} [delete]
func DeleteRow(svc service.SchemaService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.DeleteRow(c.UserContext(), c.Params("table"), c.Params("id")); err != nil {
			return writeServiceError(c, err, rowNotFound)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// ExportTable renders a table as a file attachment.
//
// @Summary  Export table
// @Tags     schema
// @Produce  octet-stream
// @Param    table  path  string true  "table name"
// @Param    format query string false "xlsx, sql or csv (default xlsx)"
// @Success  200
// @Failure  400 {object} errorPayload
// @Router   /api/v1/tables/{table}/export [get]
func ExportTable(svc service.SchemaService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		f, err := svc.Export(c.UserContext(), c.Params("table"), c.Query("format", export.FormatXLSX))
		if err != nil {
			return writeServiceError(c, err, "table not found")
		}
		c.Attachment(f.Name)
		c.Set(fiber.HeaderContentType, f.ContentType)
		return c.Status(fiber.StatusOK).Send(f.Data)
	}
}
