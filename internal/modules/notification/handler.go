package notification

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"accessplus/internal/pkg/response"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(*http.Request) bool { return true },
}

type Handler struct {
	service *Service
	hub     *Hub
}

func NewHandler(service *Service, hub *Hub) *Handler {
	return &Handler{service: service, hub: hub}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/notifications")
	{
		g.GET("", h.Feed)
		g.GET("/unread-count", h.UnreadCount)
		g.POST("/:id/read", h.MarkAsRead)
		g.POST("/read-all", h.MarkAllAsRead)
		g.GET("/stream", h.Stream)
	}
}

func (h *Handler) Feed(c *gin.Context) {
	views, err := h.service.Feed(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "No se pudieron obtener las notificaciones")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"notifications": views})
}

func (h *Handler) UnreadCount(c *gin.Context) {
	count, err := h.service.UnreadCount(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "No se pudo obtener el contador")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"unread": count})
}

func (h *Handler) MarkAsRead(c *gin.Context) {
	err := h.service.MarkAsRead(c.Request.Context(), c.Param("id"), c.GetString("user_id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Notificación no encontrada")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "No se pudo marcar la notificación")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"read": true})
}

func (h *Handler) MarkAllAsRead(c *gin.Context) {
	if err := h.service.MarkAllAsRead(c.Request.Context(), c.GetString("user_id")); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "No se pudieron marcar las notificaciones")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"read": true})
}

// Stream upgrades the request to a websocket and keeps it registered until
// the client disconnects. The server only writes; client frames are drained
// and discarded.
func (h *Handler) Stream(c *gin.Context) {
	userID := c.GetString("user_id")

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	h.hub.Register(userID, conn)
	defer h.hub.Unregister(userID)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
