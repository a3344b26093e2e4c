// Package response renders the wire format shared by every endpoint.
// Every body carries a "msg" key; handlers add their own keys next to it.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Body holds the extra keys a handler sends alongside "msg".
type Body map[string]any

// Payload merges msg into the given fields, producing the final body.
func Payload(msg string, fields Body) Body {
	body := Body{"msg": msg}
	for key, value := range fields {
		body[key] = value
	}

	return body
}

// JSON writes a response with the conventional "msg" key.
func JSON(c echo.Context, statusCode int, msg string, fields Body) error {
	return c.JSON(statusCode, Payload(msg, fields))
}

// OK writes a 200 response.
func OK(c echo.Context, msg string, fields Body) error {
	return JSON(c, http.StatusOK, msg, fields)
}

// Created writes a 201 response.
func Created(c echo.Context, msg string) error {
	return JSON(c, http.StatusCreated, msg, nil)
}
