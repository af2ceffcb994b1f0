package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Rihab-nikh/followUp-Backend/internal/application"
	"github.com/Rihab-nikh/followUp-Backend/internal/interface/middleware"
	"github.com/Rihab-nikh/followUp-Backend/pkg/response"
)

type AIHandler struct {
	Svc    *application.AIService
	Logger *logrus.Logger
}

func NewAIHandler(svc *application.AIService, logger *logrus.Logger) *AIHandler {
	return &AIHandler{Svc: svc, Logger: logger}
}

type chatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
}

// Chat POST /api/ai/chat
func (h *AIHandler) Chat(c *gin.Context) {
	var req chatRequest
	_ = c.ShouldBindJSON(&req)
	req.Message = strings.TrimSpace(req.Message)
	if req.Message == "" {
		response.Error(c, http.StatusBadRequest, "Message is required")
		return
	}
	if req.SessionID == "" {
		req.SessionID = "default"
	}

	uid := middleware.CurrentUserID(c)
	reply, err := h.Svc.Chat(c.Request.Context(), uid, req.SessionID, req.Message)
	if err != nil {
		h.Logger.WithError(err).Error("ai chat failed")
		response.Error(c, http.StatusInternalServerError, "Failed to process AI request")
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"message":    reply,
		"session_id": req.SessionID,
	}, "")
}

// History GET /api/ai/chat/history?session_id=default
func (h *AIHandler) History(c *gin.Context) {
	sessionID := c.DefaultQuery("session_id", "default")
	uid := middleware.CurrentUserID(c)

	messages, err := h.Svc.History(c.Request.Context(), uid, sessionID)
	if err != nil {
		h.Logger.WithError(err).Error("ai history failed")
		response.Error(c, http.StatusInternalServerError, "Failed to fetch chat history")
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"messages":   messages,
		"session_id": sessionID,
	}, "")
}
