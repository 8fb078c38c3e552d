package handlers

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"backend/internal/http/middleware"
	"backend/internal/repositories"
	"backend/internal/services"

	"github.com/gin-gonic/gin"
)

func backupService(c *gin.Context) services.BackupService {
	return services.BackupService{
		ClientRepo:    repositories.ClientRepository{},
		BusRepo:       repositories.BusRepository{},
		TripRepo:      repositories.TripRepository{},
		PassengerRepo: repositories.TripPassengerRepository{},
		PaymentRepo:   repositories.PaymentRepository{},
		AccountSvc:    accountService(c),
		RequestID:     middleware.GetRequestID(c),
	}
}

// GET /api/backup/export?scope=full|clients|accounts
func ExportBackup(c *gin.Context) {
	scope := c.DefaultQuery("scope", services.ScopeFull)

	file, err := backupService(c).Export(scope)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	filename := fmt.Sprintf("backup_%s_%s.json", scope, time.Now().Format("20060102"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.JSON(http.StatusOK, file)
}

// POST /api/backup/import — solo agrega registros, nunca reemplaza.
func ImportBackup(c *gin.Context) {
	raw, err := io.ReadAll(io.LimitReader(c.Request.Body, maxImportBytes+1))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "no se pudo leer el archivo", err)
		return
	}
	if len(raw) > maxImportBytes {
		RespondError(c, http.StatusBadRequest, "el archivo supera el tamaño maximo permitido", nil)
		return
	}

	res, err := backupService(c).ImportClients(raw)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
