// Package handler contains the HTTP handlers for the application.
package handler

import (
	"strconv"

	domainerrors "foamstock/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// pathUUID parses a UUID path parameter.
func pathUUID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WrapMessage("invalid " + name)
	}

	return id, nil
}

// queryInt parses an integer query parameter, falling back on absence or
// garbage.
func queryInt(c echo.Context, name string, fallback int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}

	return value
}

// queryBool parses a boolean query parameter.
func queryBool(c echo.Context, name string) bool {
	value, err := strconv.ParseBool(c.QueryParam(name))
	if err != nil {
		return false
	}

	return value
}

// pagination extracts limit/offset with a capped page size.
func pagination(c echo.Context) (limit, offset int) {
	limit = queryInt(c, "limit", defaultPageSize)
	if limit <= 0 || limit > maxPageSize {
		limit = defaultPageSize
	}

	offset = queryInt(c, "offset", 0)
	if offset < 0 {
		offset = 0
	}

	return limit, offset
}
