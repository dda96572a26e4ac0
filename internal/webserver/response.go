package webserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorBody is the JSON body of every failed request.
type ErrorBody struct {
	Error   string      `json:"error"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// Ok writes data as a 200 JSON response.
func Ok(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

// Fail writes an error response.
func Fail(c echo.Context, status int, code, message string, details interface{}) error {
	return c.JSON(status, ErrorBody{Error: code, Message: message, Details: details})
}
