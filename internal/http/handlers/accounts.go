package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"backend/internal/http/middleware"
	"backend/internal/repositories"
	"backend/internal/services"

	"github.com/gin-gonic/gin"
)

func accountService(c *gin.Context) services.AccountService {
	return services.AccountService{
		ClientRepo:    repositories.ClientRepository{},
		TripRepo:      repositories.TripRepository{},
		PassengerRepo: repositories.TripPassengerRepository{},
		PaymentRepo:   repositories.PaymentRepository{},
		RequestID:     middleware.GetRequestID(c),
	}
}

func queryCurrency(c *gin.Context) string {
	return strings.ToUpper(strings.TrimSpace(c.DefaultQuery("currency", "ARS")))
}

// GET /api/accounts/:clientId/balance?currency=ARS
func GetClientBalance(c *gin.Context) {
	clientID, ok := ParseIDParam(c, "clientId")
	if !ok {
		return
	}

	bal, err := accountService(c).ClientBalance(clientID, queryCurrency(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, bal)
}

// GET /api/accounts/:clientId/history?currency=ARS
func GetClientHistory(c *gin.Context) {
	clientID, ok := ParseIDParam(c, "clientId")
	if !ok {
		return
	}

	history, err := accountService(c).ClientHistory(clientID, queryCurrency(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, history)
}

// GET /api/accounts/totals?currency=ARS&clientId=
func GetAccountTotals(c *gin.Context) {
	onlyClient, _ := strconv.ParseInt(c.Query("clientId"), 10, 64)

	totals, err := accountService(c).Totals(queryCurrency(c), onlyClient)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, totals)
}

// GET /api/accounts/export.csv
func ExportAccountsCSV(c *gin.Context) {
	svc := services.BackupService{
		ClientRepo: repositories.ClientRepository{},
		AccountSvc: accountService(c),
		RequestID:  middleware.GetRequestID(c),
	}
	out, err := svc.ExportAccountsCSV()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "no se pudo generar el CSV", err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="cuentas.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", out)
}
