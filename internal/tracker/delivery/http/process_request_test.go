package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newTestContext(t *testing.T, body string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	req := httptest.NewRequest(http.MethodPut, "/days/2026-08-25/overrides/int-read", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	c.Params = gin.Params{
		{Key: "date", Value: "2026-08-25"},
		{Key: "intentionID", Value: "int-read"},
	}
	return c
}

func TestProcessSetOverrideReq_ZeroAmount(t *testing.T) {
	h := &handler{}

	// Overriding a day's total to 0 is a legitimate override.
	req, err := h.processSetOverrideReq(newTestContext(t, `{"amount": 0, "unit": "pages"}`))
	if err != nil {
		t.Fatalf("zero amount rejected: %v", err)
	}

	in := req.toInput()
	if in.Amount != 0 || in.DateKey != "2026-08-25" || in.IntentionID != "int-read" || in.Unit != "pages" {
		t.Errorf("unexpected input: %+v", in)
	}
}

func TestProcessSetOverrideReq_MissingAmount(t *testing.T) {
	h := &handler{}

	if _, err := h.processSetOverrideReq(newTestContext(t, `{"unit": "pages"}`)); err == nil {
		t.Fatalf("expected bind error when amount is absent")
	}
}
