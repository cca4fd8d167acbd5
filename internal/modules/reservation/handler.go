package reservation

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"accessplus/internal/domain"
	"accessplus/internal/pkg/response"
	"accessplus/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/reservations")
	{
		g.POST("", h.Create)
		g.GET("", h.ListMine)
		g.PATCH("/:id/status", h.UpdateStatus)
		g.POST("/:id/feedback", h.AttachFeedback)
	}
}

func (h *Handler) RegisterVenueRoutes(rg *gin.RouterGroup) {
	rg.GET("/venues/:id/reservations", h.ListForVenue)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Datos de reserva inválidos", validator.Describe(err))
		return
	}

	res, err := h.service.Create(
		c.Request.Context(),
		c.GetString("user_id"),
		req,
		c.GetHeader("X-Idempotency-Key"),
	)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidPartySize):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "El número de personas debe estar entre 1 y 20")
		case errors.Is(err, ErrVenueNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Lugar no encontrado")
		case errors.Is(err, ErrVenueNotApproved):
			response.Error(c, http.StatusConflict, "CONFLICT", "El lugar no está disponible para reservas")
		default:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "No se pudo crear la reserva")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"reservation": res})
}

func (h *Handler) ListMine(c *gin.Context) {
	rows, err := h.service.ListForUser(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "No se pudieron obtener las reservas")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"reservations": rows})
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Estado inválido")
		return
	}

	res, err := h.service.UpdateStatus(
		c.Request.Context(),
		c.Param("id"),
		domain.ReservationStatus(req.Status),
		c.GetString("user_id"),
		domain.UserRole(c.GetString("role")),
		c.GetString("venue_id"),
	)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Reserva no encontrada")
		case errors.Is(err, ErrInvalidTransition):
			response.Error(c, http.StatusConflict, "INVALID_TRANSITION", "Transición de estado no permitida")
		case errors.Is(err, ErrNotVenueOwner), errors.Is(err, ErrNotReservationOwner):
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "No tienes permiso sobre esta reserva")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "No se pudo actualizar la reserva")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"reservation": res})
}

func (h *Handler) AttachFeedback(c *gin.Context) {
	var req FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Datos de valoración inválidos")
		return
	}

	res, err := h.service.AttachFeedback(c.Request.Context(), c.Param("id"), c.GetString("user_id"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidRating):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "La valoración debe estar entre 1 y 5")
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Reserva no encontrada")
		case errors.Is(err, ErrNotReservationOwner):
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "No tienes permiso sobre esta reserva")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "No se pudo guardar la valoración")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"reservation": res})
}

func (h *Handler) ListForVenue(c *gin.Context) {
	venueID := c.Param("id")
	if domain.UserRole(c.GetString("role")) == domain.RoleVenue && c.GetString("venue_id") != venueID {
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "No tienes permiso sobre este lugar")
		return
	}

	rows, err := h.service.ListForVenue(c.Request.Context(), venueID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "No se pudieron obtener las reservas")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"reservations": rows})
}
