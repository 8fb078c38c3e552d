package handlers

import (
	"io"
	"net/http"

	"backend/internal/domain/models"
	"backend/internal/http/middleware"
	"backend/internal/repositories"
	"backend/internal/services"
	"backend/internal/utils"

	"github.com/gin-gonic/gin"
)

// tope de 5 MB para archivos de importacion
const maxImportBytes = 5 << 20

// GET /api/clients
func GetClients(c *gin.Context) {
	clients, err := repositories.ClientRepository{}.List()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "no se pudieron obtener los clientes", err)
		return
	}
	c.JSON(http.StatusOK, clients)
}

// POST /api/clients
func CreateClient(c *gin.Context) {
	var input models.Client
	if !BindJSONOrError(c, &input) {
		return
	}
	if !utils.ValidDate(input.DNIExpiry) || !utils.ValidDate(input.PassportExpiry) {
		RespondError(c, http.StatusBadRequest, "fecha de vencimiento invalida (se espera YYYY-MM-DD)", nil)
		return
	}

	created, err := repositories.ClientRepository{}.Create(input)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// PUT /api/clients/:id
func UpdateClient(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}
	var input models.Client
	if !BindJSONOrError(c, &input) {
		return
	}
	if !utils.ValidDate(input.DNIExpiry) || !utils.ValidDate(input.PassportExpiry) {
		RespondError(c, http.StatusBadRequest, "fecha de vencimiento invalida (se espera YYYY-MM-DD)", nil)
		return
	}

	updated, err := repositories.ClientRepository{}.Update(id, input)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DELETE /api/clients/:id
func DeleteClient(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}
	if err := (repositories.ClientRepository{}).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "cliente eliminado"})
}

// POST /api/clients/import — agrega los clientes de un backup, nunca reemplaza.
func ImportClients(c *gin.Context) {
	raw, err := io.ReadAll(io.LimitReader(c.Request.Body, maxImportBytes+1))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "no se pudo leer el archivo", err)
		return
	}
	if len(raw) > maxImportBytes {
		RespondError(c, http.StatusBadRequest, "el archivo supera el tamaño maximo permitido", nil)
		return
	}

	svc := services.BackupService{
		ClientRepo: repositories.ClientRepository{},
		RequestID:  middleware.GetRequestID(c),
	}
	res, err := svc.ImportClients(raw)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GET /api/clients/export.csv
func ExportClientsCSV(c *gin.Context) {
	svc := services.BackupService{
		ClientRepo: repositories.ClientRepository{},
		RequestID:  middleware.GetRequestID(c),
	}
	out, err := svc.ExportClientsCSV()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "no se pudo generar el CSV", err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="clientes.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", out)
}
