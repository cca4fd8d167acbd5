package membership

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"accessplus/internal/domain"
	"accessplus/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/membership/plans", h.Plans)
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/membership")
	{
		g.POST("/validate-card", h.ValidateCard)
		g.GET("/eligible-tiers", h.EligibleTiers)
		g.POST("/activate", h.Activate)
		g.POST("/change-tier", h.ChangeTier)
		g.GET("/payments", h.PaymentHistory)
	}
}

func (h *Handler) Plans(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"plans": h.service.Plans()})
}

func (h *Handler) ValidateCard(c *gin.Context) {
	var req ValidateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "El BIN debe tener 6 dígitos")
		return
	}

	card, err := h.service.ValidateCard(req.BIN)
	if err != nil {
		switch {
		case errors.Is(err, ErrCardRejected):
			response.Error(c, http.StatusUnprocessableEntity, "CARD_REJECTED",
				"Tu tarjeta no cumple con el estándar de privilegio ACCESS+.")
		case errors.Is(err, ErrCardUnrecognized):
			response.Error(c, http.StatusUnprocessableEntity, "CARD_REJECTED",
				"No pudimos validar la categoría de tu tarjeta. Por favor, intenta con otra.")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "No se pudo validar la tarjeta")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"card": card})
}

func (h *Handler) EligibleTiers(c *gin.Context) {
	category := domain.CardCategory(c.Query("category"))
	response.Success(c, http.StatusOK, gin.H{
		"tiers": h.service.EligibleTiers(category),
	})
}

func (h *Handler) Activate(c *gin.Context) {
	var req ActivateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Datos de activación inválidos")
		return
	}

	user, err := h.service.Activate(
		c.Request.Context(),
		c.GetString("user_id"),
		domain.AccessLevel(req.Level),
		domain.CardCategory(req.CardCategory),
		domain.BillingCycle(req.BillingCycle),
	)
	if err != nil {
		h.activationError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": user})
}

func (h *Handler) ChangeTier(c *gin.Context) {
	var req ChangeTierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Datos de plan inválidos")
		return
	}

	user, err := h.service.ChangeTier(
		c.Request.Context(),
		c.GetString("user_id"),
		domain.AccessLevel(req.Level),
		domain.BillingCycle(req.BillingCycle),
	)
	if err != nil {
		h.activationError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": user})
}

func (h *Handler) PaymentHistory(c *gin.Context) {
	records, err := h.service.PaymentHistory(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "No se pudo obtener el historial de pagos")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"payments": records})
}

func (h *Handler) activationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Usuario no encontrado")
	case errors.Is(err, ErrTierNotEligible):
		response.Error(c, http.StatusUnprocessableEntity, "CARD_REJECTED",
			"Tu categoría de tarjeta no permite este plan")
	case errors.Is(err, ErrNotSubscribed):
		response.Error(c, http.StatusConflict, "VALIDATION_ERROR", "No tienes una suscripción activa")
	case errors.Is(err, ErrActivationFailed):
		response.Error(c, http.StatusPaymentRequired, "ACTIVATION_FAILED",
			"No pudimos procesar tu pago. Por favor, intenta nuevamente.")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "No se pudo completar la operación")
	}
}
