package httpserver

import (
	"github.com/labstack/echo/v4"
)

// Every response is wrapped in the same envelope; data, message, errors and
// error are mutually optional.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Errors  any    `json:"errors,omitempty"`
	Err     string `json:"error,omitempty"`
}

func respondData(c echo.Context, code int, data any) error {
	return c.JSON(code, envelope{Success: true, Data: data})
}

func respondMessage(c echo.Context, code int, message string, data any) error {
	return c.JSON(code, envelope{Success: true, Message: message, Data: data})
}

func respondFail(c echo.Context, code int, message string) error {
	return c.JSON(code, envelope{Success: false, Message: message})
}

func respondFieldErrors(c echo.Context, code int, errs any) error {
	return c.JSON(code, envelope{Success: false, Errors: errs})
}

func respondFault(c echo.Context, code int, message string, err error) error {
	return c.JSON(code, envelope{Success: false, Message: message, Err: err.Error()})
}
