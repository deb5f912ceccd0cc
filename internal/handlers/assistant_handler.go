package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/curalink-dev/curalink-server/internal/assistant"
	"github.com/curalink-dev/curalink-server/internal/httperr"
	"github.com/curalink-dev/curalink-server/internal/httpresp"
)

type AssistantHandler struct {
	assistant *assistant.Assistant
}

func NewAssistantHandler(a *assistant.Assistant) *AssistantHandler {
	return &AssistantHandler{assistant: a}
}

type ChatBody struct {
	Portal  string `json:"portal" binding:"required,oneof=patient doctor pharmacy"`
	Message string `json:"message" binding:"required"`
}

func (h *AssistantHandler) Chat(c *gin.Context) {
	var body ChatBody
	if err := c.ShouldBindJSON(&body); err != nil {
		httperr.BadRequest(c, "invalid_request", "Portal and message are required.")
		return
	}

	httpresp.OK(c, gin.H{
		"portal": body.Portal,
		"reply":  h.assistant.Reply(body.Portal, body.Message),
	})
}
