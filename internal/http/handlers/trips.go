package handlers

import (
	"net/http"
	"strconv"

	"backend/internal/domain/models"
	"backend/internal/repositories"
	"backend/internal/utils"

	"github.com/gin-gonic/gin"
)

// GET /api/trips?archived=true|false
func GetTrips(c *gin.Context) {
	trips, err := repositories.TripRepository{}.List()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "no se pudieron obtener los viajes", err)
		return
	}

	if raw := c.Query("archived"); raw != "" {
		want, err := strconv.ParseBool(raw)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "archived debe ser true o false", err)
			return
		}
		filtered := trips[:0]
		for _, t := range trips {
			if t.Archived == want {
				filtered = append(filtered, t)
			}
		}
		trips = filtered
	}

	c.JSON(http.StatusOK, trips)
}

func validTripDates(c *gin.Context, t models.Trip) bool {
	if !utils.ValidDate(t.DepartureDate) || !utils.ValidDate(t.ReturnDate) {
		RespondError(c, http.StatusBadRequest, "fecha invalida (se espera YYYY-MM-DD)", nil)
		return false
	}
	return true
}

// POST /api/trips
func CreateTrip(c *gin.Context) {
	var input models.Trip
	if !BindJSONOrError(c, &input) {
		return
	}
	if !validTripDates(c, input) {
		return
	}

	created, err := repositories.TripRepository{}.Create(input)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// PUT /api/trips/:id
func UpdateTrip(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}
	var input models.Trip
	if !BindJSONOrError(c, &input) {
		return
	}
	if !validTripDates(c, input) {
		return
	}

	updated, err := repositories.TripRepository{}.Update(id, input)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DELETE /api/trips/:id — borrado fisico; los trip_passengers y pagos
// asociados quedan (la limpieza referencial es responsabilidad del operador).
func DeleteTrip(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}
	if err := (repositories.TripRepository{}).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "viaje eliminado"})
}
