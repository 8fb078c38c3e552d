package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"backend/internal/domain"
	"backend/internal/domain/models"
	"backend/internal/http/middleware"
	"backend/internal/repositories"
	"backend/internal/services"
	"backend/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GET /api/payments?clientId=&currency=
func GetPayments(c *gin.Context) {
	payments, err := repositories.PaymentRepository{}.List()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "no se pudieron obtener los pagos", err)
		return
	}

	clientID := c.Query("clientId")
	currency := strings.ToUpper(strings.TrimSpace(c.Query("currency")))
	if clientID != "" || currency != "" {
		filtered := payments[:0]
		for _, p := range payments {
			if clientID != "" && clientID != strconv.FormatInt(p.ClientID, 10) {
				continue
			}
			if currency != "" && p.Currency != currency {
				continue
			}
			filtered = append(filtered, p)
		}
		payments = filtered
	}

	c.JSON(http.StatusOK, payments)
}

// POST /api/payments
func CreatePayment(c *gin.Context) {
	var input models.Payment
	if !BindJSONOrError(c, &input) {
		return
	}
	if !utils.ValidDate(input.Date) {
		RespondError(c, http.StatusBadRequest, "fecha invalida (se espera YYYY-MM-DD)", nil)
		return
	}

	// los pagos sin numero de recibo reciben uno generado
	if input.Type == domain.MovementPayment && strings.TrimSpace(input.ReceiptNumber) == "" {
		input.ReceiptNumber = "R-" + strings.ToUpper(uuid.NewString()[:8])
	}

	created, err := repositories.PaymentRepository{}.Create(input)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// PUT /api/payments/:id
func UpdatePayment(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}
	var input models.Payment
	if !BindJSONOrError(c, &input) {
		return
	}
	if !utils.ValidDate(input.Date) {
		RespondError(c, http.StatusBadRequest, "fecha invalida (se espera YYYY-MM-DD)", nil)
		return
	}

	updated, err := repositories.PaymentRepository{}.Update(id, input)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DELETE /api/payments/:id
func DeletePayment(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}
	if err := (repositories.PaymentRepository{}).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "pago eliminado"})
}

// GET /api/payments/:id/receipt — recibo imprimible (inline).
func GetPaymentReceiptPDF(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	svc := services.ReceiptService{
		PaymentRepo: repositories.PaymentRepository{},
		ClientRepo:  repositories.ClientRepository{},
		TripRepo:    repositories.TripRepository{},
		RequestID:   middleware.GetRequestID(c),
	}
	pdfBytes, filename, err := svc.GenerateReceipt(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
