package concierge

import (
	"encoding/base64"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"accessplus/internal/pkg/response"
)

const maxImageSize = 5 * 1024 * 1024

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/concierge")
	{
		g.POST("/recommend", h.Recommend)
		g.POST("/edit-image", h.EditImage)
	}
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/analytics", h.Analyze)
}

func (h *Handler) Recommend(c *gin.Context) {
	var req QueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "La consulta es obligatoria")
		return
	}

	text, err := h.service.Recommend(c.Request.Context(), req.Query)
	if err != nil {
		h.aiError(c, err, "Lo siento, no pude procesar tu solicitud en este momento.")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"recommendation": text})
}

func (h *Handler) Analyze(c *gin.Context) {
	var req QueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "La consulta es obligatoria")
		return
	}

	text, err := h.service.Analyze(c.Request.Context(), req.Query)
	if err != nil {
		h.aiError(c, err, "Error al contactar la IA. Verifica la configuración.")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"analysis": text})
}

func (h *Handler) EditImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "La imagen es obligatoria")
		return
	}
	if file.Size > maxImageSize {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "La imagen supera el límite de 5 MB")
		return
	}

	instruction := c.PostForm("instruction")
	if instruction == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "La instrucción es obligatoria")
		return
	}

	src, err := file.Open()
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "No se pudo leer la imagen")
		return
	}
	defer src.Close()

	raw, err := io.ReadAll(src)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "No se pudo leer la imagen")
		return
	}

	mime := file.Header.Get("Content-Type")
	if mime == "" {
		mime = "image/png"
	}

	out, err := h.service.EditImage(c.Request.Context(), instruction, raw, mime)
	if err != nil {
		h.aiError(c, err, "Lo siento, no pude procesar tu solicitud en este momento.")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"mime_type": out.MimeType,
		"image":     base64.StdEncoding.EncodeToString(out.Data),
	})
}

func (h *Handler) aiError(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, ErrEmptyQuery):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "La consulta es obligatoria")
	case errors.Is(err, ErrExternalService):
		response.Error(c, http.StatusBadGateway, "EXTERNAL_SERVICE_ERROR", message)
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", message)
	}
}
