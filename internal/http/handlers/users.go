package handlers

import (
	"net/http"

	intauth "backend/internal/auth"
	"backend/internal/domain/models"
	"backend/internal/http/middleware"
	"backend/internal/repositories"
	"backend/internal/utils"

	"github.com/gin-gonic/gin"
)

type userRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Active   *bool  `json:"active"`
}

// GET /api/users
func GetUsers(c *gin.Context) {
	users, err := repositories.UserRepository{}.List()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "no se pudieron obtener los usuarios", err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// GET /api/users/:id
func GetUserByID(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}
	u, err := repositories.UserRepository{}.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

// POST /api/users — solo admin.
func CreateUser(c *gin.Context) {
	var req userRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	u, err := repositories.UserRepository{}.Create(userFromRequest(req, active), req.Password)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	utils.LogEvent(middleware.GetRequestID(c), "users", "create", "username="+u.Username)
	c.JSON(http.StatusCreated, u)
}

// PUT /api/users/:id — cambiar roles exige admin, tambien sobre uno mismo.
func UpdateUser(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	var req userRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	existing, err := repositories.UserRepository{}.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	active := existing.Active
	if req.Active != nil {
		active = *req.Active
	}

	// cambiar un rol (propio o ajeno) o desactivar a otro usuario exige admin
	actorRole := middleware.GetUserRole(c)
	changesRole := req.Role != "" && req.Role != existing.Role
	deactivatesOther := id != middleware.GetUserID(c) && existing.Active && !active
	if (changesRole || deactivatesOther) && !intauth.HasCapability(actorRole, intauth.CapManageUsers) {
		c.JSON(http.StatusForbidden, gin.H{"error": "solo un administrador puede cambiar roles o desactivar usuarios"})
		return
	}

	if req.Role == "" {
		req.Role = existing.Role
	}

	u, err := repositories.UserRepository{}.Update(id, userFromRequest(req, active), req.Password)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

// DELETE /api/users/:id — solo admin, nunca a si mismo.
func DeleteUser(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}
	if id == middleware.GetUserID(c) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no podes eliminar tu propio usuario"})
		return
	}

	if err := (repositories.UserRepository{}).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	utils.LogEvent(middleware.GetRequestID(c), "users", "delete", "id eliminado")
	c.JSON(http.StatusOK, gin.H{"message": "usuario eliminado"})
}

func userFromRequest(req userRequest, active bool) models.User {
	return models.User{
		Name:     req.Name,
		Username: req.Username,
		Email:    req.Email,
		Role:     req.Role,
		Active:   active,
	}
}
