package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"accessplus/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/venues")
	{
		g.GET("", h.List)
		g.GET("/:id", h.GetByID)
		// self-registration happens before the operator has an account;
		// the venue stays pendiente until an admin approves it
		g.POST("/register", h.Register)
	}
}

func (h *Handler) RegisterVenueRoutes(rg *gin.RouterGroup) {
	rg.PATCH("/venues/:id", h.Update)
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/venues", h.Create)
}

// List serves the member-facing catalog: approved venues by country, with
// optional in-memory category and name filters and optional pagination.
func (h *Handler) List(c *gin.Context) {
	country := c.Query("country")
	if country == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "El país es obligatorio")
		return
	}

	if pageStr := c.Query("page"); pageStr != "" {
		page, _ := strconv.Atoi(pageStr)
		pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
		venues, hasMore, err := h.service.ListByCountryPage(c.Request.Context(), country, page, pageSize)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "No se pudieron obtener los lugares")
			return
		}
		venues = FilterVenues(venues, c.Query("category"), c.Query("search"))
		response.Success(c, http.StatusOK, gin.H{"venues": venues, "has_more": hasMore})
		return
	}

	venues, err := h.service.ListByCountry(c.Request.Context(), country)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "No se pudieron obtener los lugares")
		return
	}
	venues = FilterVenues(venues, c.Query("category"), c.Query("search"))
	response.Success(c, http.StatusOK, gin.H{"venues": venues})
}

func (h *Handler) GetByID(c *gin.Context) {
	v, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrVenueNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Lugar no encontrado")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "No se pudo obtener el lugar")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"venue": v})
}

func (h *Handler) Register(c *gin.Context) {
	var req CreateVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Datos del lugar inválidos")
		return
	}
	v, err := h.service.RegisterVenue(c.Request.Context(), req)
	if err != nil {
		h.createError(c, err, "No se pudo registrar el lugar")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"venue": v})
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Datos del lugar inválidos")
		return
	}
	v, err := h.service.CreateVenue(c.Request.Context(), req)
	if err != nil {
		h.createError(c, err, "No se pudo crear el lugar")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"venue": v})
}

func (h *Handler) createError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrInvalidCategory):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Categoría de lugar desconocida")
	case errors.Is(err, ErrInvalidCoordinates):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Coordenadas fuera de rango")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}

func (h *Handler) Update(c *gin.Context) {
	if own := c.GetString("venue_id"); own != "" && own != c.Param("id") {
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "No tienes permiso sobre este lugar")
		return
	}

	var req UpdateVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Datos del lugar inválidos")
		return
	}
	v, err := h.service.UpdateDetails(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		if errors.Is(err, ErrVenueNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Lugar no encontrado")
			return
		}
		h.createError(c, err, "No se pudo actualizar el lugar")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"venue": v})
}
