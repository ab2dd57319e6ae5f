package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"goroute/models"
	"goroute/services/booking"
	"goroute/services/demodata"
	"goroute/services/transport"
	"goroute/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ChatHandler exposes the booking conversation over HTTP.
type ChatHandler struct {
	Flow   BookingFlow
	Health *utils.HealthMonitor
	Logger *zap.Logger
}

// NewChatHandler creates a new ChatHandler. health may be nil.
func NewChatHandler(flow BookingFlow, health *utils.HealthMonitor, logger *zap.Logger) *ChatHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ChatHandler{Flow: flow, Health: health, Logger: logger}
}

// ChatEventRequest is one user input. Type is command, text or choice.
type ChatEventRequest struct {
	Type  string `json:"type" binding:"required"`
	Value string `json:"value"`
}

type ChatEventResponse struct {
	State   models.State    `json:"state"`
	Replies []models.Reply  `json:"replies"`
	Booking *models.Booking `json:"booking,omitempty"`
}

// PostEvent handles POST /api/chat/:userID/events.
func (h *ChatHandler) PostEvent(c *gin.Context) {
	userID := strings.TrimSpace(c.Param("userID"))
	if userID == "" {
		utils.JSONError(c, h.Logger, http.StatusBadRequest, "Missing user id", "")
		return
	}

	var req ChatEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, h.Logger, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	ev, err := eventFromRequest(req)
	if err != nil {
		utils.JSONError(c, h.Logger, http.StatusBadRequest, "Invalid event", err.Error())
		return
	}

	out, err := h.Flow.Handle(c.Request.Context(), userID, ev)
	if err != nil {
		utils.JSONError(c, h.Logger, http.StatusInternalServerError, "Failed to process event", err.Error())
		return
	}

	c.JSON(http.StatusOK, ChatEventResponse{State: out.State, Replies: out.Replies, Booking: out.Booking})
}

func eventFromRequest(req ChatEventRequest) (models.Event, error) {
	switch strings.ToLower(req.Type) {
	case "command":
		if ev, ok := commandEvent(req.Value); ok {
			return ev, nil
		}
		return models.Event{}, errors.New("unknown command " + strconv.Quote(req.Value))
	case "text":
		return models.TextInput(req.Value), nil
	case "choice":
		return models.ParseSelectionToken(req.Value)
	}
	return models.Event{}, errors.New("type must be command, text or choice")
}

// GetHotels handles GET /api/hotels/:city.
func (h *ChatHandler) GetHotels(c *gin.Context) {
	city := c.Param("city")
	list := demodata.HotelsFor(city)
	if len(list) == 0 {
		utils.JSONError(c, h.Logger, http.StatusNotFound, "No hotels listed", city)
		return
	}
	c.JSON(http.StatusOK, gin.H{"city": city, "hotels": list})
}

// GetQuote handles GET /api/quote?mode=Bus&seats=2.
func (h *ChatHandler) GetQuote(c *gin.Context) {
	mode, err := models.ParseMode(c.Query("mode"))
	if err != nil {
		utils.JSONError(c, h.Logger, http.StatusBadRequest, "Invalid mode", err.Error())
		return
	}
	seats, err := strconv.Atoi(c.DefaultQuery("seats", "1"))
	if err != nil {
		utils.JSONError(c, h.Logger, http.StatusBadRequest, "Invalid seat count", err.Error())
		return
	}

	quote, err := h.Flow.Quote(mode, seats)
	if err != nil {
		var verr *booking.ValidationError
		if errors.As(err, &verr) || errors.Is(err, transport.ErrSeatAllocation) || errors.Is(err, transport.ErrInvalidMode) {
			utils.JSONError(c, h.Logger, http.StatusBadRequest, "Cannot quote", err.Error())
			return
		}
		utils.JSONError(c, h.Logger, http.StatusInternalServerError, "Failed to build quote", err.Error())
		return
	}
	c.JSON(http.StatusOK, quote)
}

// HealthCheck handles GET /health.
func (h *ChatHandler) HealthCheck(c *gin.Context) {
	resp := gin.H{"status": "ok", "message": "Hi, I'm GoRoute"}
	if h.Health != nil {
		resp["services"] = h.Health.Status()
	}
	c.JSON(http.StatusOK, resp)
}
