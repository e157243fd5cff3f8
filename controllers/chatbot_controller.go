package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"swasthyaguide-backend/models"
	"swasthyaguide-backend/services"
)

type ChatbotController struct {
	chatbotService *services.ChatbotService
}

func NewChatbotController(chatbotService *services.ChatbotService) *ChatbotController {
	return &ChatbotController{
		chatbotService: chatbotService,
	}
}

// HandleChat processes chat messages
func (cc *ChatbotController) HandleChat(c *gin.Context) {
	var req models.ChatRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request format",
			"details": err.Error(),
		})
		return
	}

	// First contact without a session ID mints one; the client must echo it
	// back to keep the conversation.
	if req.SessionID == "" {
		req.SessionID = uuid.New().String()
	}
	if req.Channel == "" {
		req.Channel = models.ChannelWeb
	}

	reply := cc.chatbotService.ProcessMessage(req.SessionID, req.Message, req.Channel)
	language, stage := cc.chatbotService.SessionState(req.SessionID)

	c.JSON(http.StatusOK, models.ChatResponse{
		Response:  reply,
		SessionID: req.SessionID,
		Language:  language,
		Stage:     stage,
	})
}

// GetCapabilities returns what the assistant can handle
func (cc *ChatbotController) GetCapabilities(c *gin.Context) {
	capabilities := []map[string]interface{}{
		{
			"capability":  "symptom_guidance",
			"description": "Home-care guidance for common symptoms in Hindi, English, and Hinglish",
			"examples": []string{
				"I have fever",
				"mujhe bukhar hai",
				"सिरदर्द हो रहा है",
			},
		},
		{
			"capability":  "clinic_search",
			"description": "Find clinics by area name or 6-digit pincode",
			"examples": []string{
				"Gomti Nagar",
				"226010",
				"clinics in Hazratganj",
			},
		},
		{
			"capability":  "emergency_detection",
			"description": "Recognizes emergencies and directs to urgent care",
			"examples": []string{
				"severe chest pain",
				"saans nahi aa rahi",
			},
		},
	}

	c.JSON(http.StatusOK, gin.H{
		"capabilities": capabilities,
	})
}
