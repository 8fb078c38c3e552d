package handlers

import (
	"net/http"

	intconfig "backend/internal/config"

	"github.com/gin-gonic/gin"
)

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "backend agencia en marcha"})
}

func DBCheck(c *gin.Context) {
	if err := intconfig.EnsureDB(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "base de datos no disponible: " + err.Error()})
		return
	}
	var count int
	if err := intconfig.DB.QueryRow("SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "fallo la consulta a la base: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "conexion a la base OK", "users_in_db": count})
}
