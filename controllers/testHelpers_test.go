package controllers

import (
	"net/http/httptest"
	"strings"

	"github.com/gin-gonic/gin"
)

// testContext builds a gin context around an httptest recorder for driving
// a handler directly.
func testContext(method, target, body string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	return c, w
}
