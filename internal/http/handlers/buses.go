package handlers

import (
	"net/http"
	"strings"

	"backend/internal/domain/models"
	"backend/internal/repositories"

	"github.com/gin-gonic/gin"
)

// tope de 2 MB para la imagen del plano de asientos (data URL)
const maxSeatMapBytes = 2 << 20

// GET /api/buses
func GetBuses(c *gin.Context) {
	buses, err := repositories.BusRepository{}.List()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "no se pudieron obtener los buses", err)
		return
	}
	c.JSON(http.StatusOK, buses)
}

func validSeatMap(c *gin.Context, image string) bool {
	if image == "" {
		return true
	}
	if !strings.HasPrefix(image, "data:image/") {
		RespondError(c, http.StatusBadRequest, "el plano de asientos debe ser una imagen", nil)
		return false
	}
	if len(image) > maxSeatMapBytes {
		RespondError(c, http.StatusBadRequest, "la imagen supera el tamaño maximo permitido", nil)
		return false
	}
	return true
}

// POST /api/buses
func CreateBus(c *gin.Context) {
	var input models.Bus
	if !BindJSONOrError(c, &input) {
		return
	}
	if !validSeatMap(c, input.SeatMapImage) {
		return
	}

	created, err := repositories.BusRepository{}.Create(input)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// PUT /api/buses/:id
func UpdateBus(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}
	var input models.Bus
	if !BindJSONOrError(c, &input) {
		return
	}
	if !validSeatMap(c, input.SeatMapImage) {
		return
	}

	updated, err := repositories.BusRepository{}.Update(id, input)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DELETE /api/buses/:id
func DeleteBus(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}
	if err := (repositories.BusRepository{}).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "bus eliminado"})
}
