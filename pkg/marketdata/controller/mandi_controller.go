package controller

import "github.com/labstack/echo/v4"

type MandiController interface {
	Prices(c echo.Context) error
}
