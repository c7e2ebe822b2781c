package controller

import "github.com/labstack/echo/v4"

type EnrichController interface {
	LearnFromURL(c echo.Context) error
	ListLearned(c echo.Context) error
}
