package handlers

import (
	"encoding/json"

	"github.com/labstack/echo/v4"
)

// bindStrict decodes a JSON body rejecting unknown fields. Partial updates
// use it so a misspelled field name fails instead of silently leaving the
// resource untouched.
func bindStrict(c echo.Context, v any) error {
	dec := json.NewDecoder(c.Request().Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
