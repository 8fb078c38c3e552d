package handlers

import (
	"net/http"
	"strconv"

	"backend/internal/domain/models"
	"backend/internal/repositories"
	"backend/internal/utils"

	"github.com/gin-gonic/gin"
)

// GET /api/trip-passengers?tripId=&clientId=
func GetTripPassengers(c *gin.Context) {
	rows, err := repositories.TripPassengerRepository{}.List()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "no se pudieron obtener los pasajeros", err)
		return
	}

	tripID, _ := strconv.ParseInt(c.Query("tripId"), 10, 64)
	clientID, _ := strconv.ParseInt(c.Query("clientId"), 10, 64)
	if tripID > 0 || clientID > 0 {
		filtered := rows[:0]
		for _, tp := range rows {
			if tripID > 0 && tp.TripID != tripID {
				continue
			}
			if clientID > 0 && tp.ClientID != clientID {
				continue
			}
			filtered = append(filtered, tp)
		}
		rows = filtered
	}

	c.JSON(http.StatusOK, rows)
}

// POST /api/trip-passengers
func CreateTripPassenger(c *gin.Context) {
	var input models.TripPassenger
	if !BindJSONOrError(c, &input) {
		return
	}
	if !utils.ValidDate(input.ReservedAt) {
		RespondError(c, http.StatusBadRequest, "fecha de reserva invalida (se espera YYYY-MM-DD)", nil)
		return
	}

	created, err := repositories.TripPassengerRepository{}.Create(input)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// PUT /api/trip-passengers/:id
func UpdateTripPassenger(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}
	var input models.TripPassenger
	if !BindJSONOrError(c, &input) {
		return
	}

	updated, err := repositories.TripPassengerRepository{}.Update(id, input)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DELETE /api/trip-passengers/:id
func DeleteTripPassenger(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}
	if err := (repositories.TripPassengerRepository{}).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "pasajero eliminado"})
}
