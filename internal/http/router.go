package api

import (
	stdhttp "net/http"

	intauth "backend/internal/auth"
	intconfig "backend/internal/config"
	h "backend/internal/http/handlers"
	"backend/internal/http/middleware"
	"backend/internal/utils"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	h.SetJWTSecret(env.JWTSecret)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS())

	if err := r.SetTrustedProxies(nil); err != nil {
		utils.Logger().Warnf("failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "ruta no encontrada",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		// Auth
		api.POST("/auth/login", h.Login)

		protected := api.Group("")
		protected.Use(middleware.RequireAuth(h.JWTSecret()))

		// Clients
		clients := protected.Group("/clients", middleware.RequireCapability(intauth.CapClients))
		clients.GET("", h.GetClients)
		clients.GET("/export.csv", h.ExportClientsCSV)
		clients.POST("", middleware.RequireWrite(), h.CreateClient)
		clients.POST("/import", middleware.RequireWrite(), h.ImportClients)
		clients.PUT("/:id", middleware.RequireWrite(), h.UpdateClient)
		clients.DELETE("/:id", middleware.RequireWrite(), h.DeleteClient)

		// Buses
		buses := protected.Group("/buses", middleware.RequireCapability(intauth.CapBuses))
		buses.GET("", h.GetBuses)
		buses.POST("", middleware.RequireWrite(), h.CreateBus)
		buses.PUT("/:id", middleware.RequireWrite(), h.UpdateBus)
		buses.DELETE("/:id", middleware.RequireWrite(), h.DeleteBus)

		// Trips
		trips := protected.Group("/trips", middleware.RequireCapability(intauth.CapTrips))
		trips.GET("", h.GetTrips)
		trips.POST("", middleware.RequireWrite(), h.CreateTrip)
		trips.PUT("/:id", middleware.RequireWrite(), h.UpdateTrip)
		trips.DELETE("/:id", middleware.RequireWrite(), h.DeleteTrip)

		// Trip passengers
		passengers := protected.Group("/trip-passengers", middleware.RequireCapability(intauth.CapTrips))
		passengers.GET("", h.GetTripPassengers)
		passengers.POST("", middleware.RequireWrite(), h.CreateTripPassenger)
		passengers.PUT("/:id", middleware.RequireWrite(), h.UpdateTripPassenger)
		passengers.DELETE("/:id", middleware.RequireWrite(), h.DeleteTripPassenger)

		// Payments & receipts
		payments := protected.Group("/payments", middleware.RequireCapability(intauth.CapAccounts))
		payments.GET("", h.GetPayments)
		payments.GET("/:id/receipt", h.GetPaymentReceiptPDF)
		payments.POST("", middleware.RequireWrite(), h.CreatePayment)
		payments.PUT("/:id", middleware.RequireWrite(), h.UpdatePayment)
		payments.DELETE("/:id", middleware.RequireWrite(), h.DeletePayment)

		// Accounts (ledger)
		accounts := protected.Group("/accounts", middleware.RequireCapability(intauth.CapAccounts))
		accounts.GET("/totals", h.GetAccountTotals)
		accounts.GET("/export.csv", h.ExportAccountsCSV)
		accounts.GET("/:clientId/balance", h.GetClientBalance)
		accounts.GET("/:clientId/history", h.GetClientHistory)

		// Backup
		backup := protected.Group("/backup", middleware.RequireCapability(intauth.CapBackup))
		backup.GET("/export", h.ExportBackup)
		backup.POST("/import", middleware.RequireWrite(), h.ImportBackup)

		// Users
		users := protected.Group("/users", middleware.RequireCapability(intauth.CapUsers))
		users.GET("", h.GetUsers)
		users.GET("/:id", h.GetUserByID)
		users.POST("", middleware.RequireCapability(intauth.CapManageUsers), h.CreateUser)
		users.PUT("/:id", middleware.RequireWrite(), h.UpdateUser)
		users.DELETE("/:id", middleware.RequireCapability(intauth.CapManageUsers), h.DeleteUser)
	}

	return r
}
