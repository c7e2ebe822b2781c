package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// DevLogin issues a signed token for any uid without a password check.
// Development convenience only; mount it behind a config flag.
func DevLogin(secret string) echo.HandlerFunc {
	return func(c echo.Context) error {
		uid := c.QueryParam("uid")
		if uid == "" {
			uid = "F_DEV_DEFAULT"
		}
		token, err := IssueToken(secret, uid)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"uid": uid, "token": token})
	}
}
