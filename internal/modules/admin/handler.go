package admin

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"accessplus/internal/domain"
	"accessplus/internal/modules/membership"
	"accessplus/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/users", h.ListUsers)
	rg.POST("/users", h.CreateUser)
	rg.PATCH("/users/:id/status", h.ToggleUserStatus)
	rg.GET("/venues", h.ListVenues)
	rg.PATCH("/venues/:id/status", h.ChangeVenueStatus)
	rg.GET("/statistics", h.Statistics)
}

func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.service.ListUsers(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "No se pudieron obtener los usuarios")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"users": users})
}

func (h *Handler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Datos de usuario inválidos")
		return
	}

	u, err := h.service.CreateUser(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmailAlreadyExists):
			response.Error(c, http.StatusConflict, "VALIDATION_ERROR", "El correo electrónico ya está en uso.")
		case errors.Is(err, ErrInvalidLevel):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Nivel de membresía desconocido")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "No se pudo crear el usuario")
		}
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"user": u})
}

func (h *Handler) ToggleUserStatus(c *gin.Context) {
	u, err := h.service.ToggleUserStatus(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, membership.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Usuario no encontrado")
			return
		}
		response.Error(c, http.StatusConflict, "CONFLICT", "No se pudo cambiar el estado del usuario")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"user": u})
}

func (h *Handler) ListVenues(c *gin.Context) {
	venues, err := h.service.ListVenues(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "No se pudieron obtener los lugares")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"venues": venues})
}

func (h *Handler) ChangeVenueStatus(c *gin.Context) {
	var req ChangeVenueStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Estado inválido")
		return
	}

	v, err := h.service.ChangeVenueStatus(c.Request.Context(), c.Param("id"), domain.VenueStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, ErrVenueNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Lugar no encontrado")
		case errors.Is(err, ErrInvalidTransition):
			response.Error(c, http.StatusConflict, "INVALID_TRANSITION", "Transición de estado no permitida")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "No se pudo cambiar el estado")
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{"venue": v})
}

func (h *Handler) Statistics(c *gin.Context) {
	stats, err := h.service.Statistics(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "No se pudieron obtener las estadísticas")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"statistics": stats})
}
