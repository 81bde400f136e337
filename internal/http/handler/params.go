package handler

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"tenantconsole/internal/model"
)

// parseTime accepts RFC3339 timestamps and plain YYYY-MM-DD dates.
func parseTime(s string) (*time.Time, bool) {
	if s == "" {
		return nil, true
	}
	for _, layout := range []string{time.RFC3339, time.DateOnly} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t, true
		}
	}
	return nil, false
}

// dateRangeQuery reads the start and end query parameters.
func dateRangeQuery(c *fiber.Ctx) (*model.DateRange, bool) {
	start, ok := parseTime(c.Query("start"))
	if !ok {
		return nil, false
	}
	end, ok := parseTime(c.Query("end"))
	if !ok {
		return nil, false
	}
	if start == nil && end == nil {
		return nil, true
	}
	return &model.DateRange{Start: start, End: end}, true
}

// boolQuery parses an optional boolean query parameter.
func boolQuery(c *fiber.Ctx, key string, def bool) (bool, bool) {
	v := c.Query(key)
	if v == "" {
		return def, true
	}
	b, err := strconv.ParseBool(v)
	return b, err == nil
}
