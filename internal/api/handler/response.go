package handler

import "github.com/labstack/echo/v4"

// Every API response uses the same envelope: {"success":true,"data":…} on
// the happy path, {"success":false,"error":…} otherwise.

type successResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func respond(c echo.Context, status int, data any) error {
	return c.JSON(status, successResponse{Success: true, Data: data})
}

func fail(c echo.Context, status int, msg string) error {
	return c.JSON(status, errorResponse{Success: false, Error: msg})
}
