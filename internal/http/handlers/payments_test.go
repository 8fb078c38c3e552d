package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestCreatePaymentRejectsBadDate(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(http.MethodPost, "/api/payments",
		`{"clientId":1,"type":"payment","amount":100,"currency":"ARS","date":"15/03/2026"}`)

	CreatePayment(c)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "fecha") {
		t.Fatalf("unexpected body %s", w.Body.String())
	}
}

func TestUpdatePaymentRejectsBadDate(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "3"}}
	c.Request = jsonRequest(http.MethodPut, "/api/payments/3",
		`{"clientId":1,"type":"payment","amount":100,"currency":"ARS","date":"2026-99-99"}`)

	UpdatePayment(c)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}
