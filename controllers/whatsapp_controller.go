// controllers/whatsapp_controller.go
package controllers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"swasthyaguide-backend/config"
	"swasthyaguide-backend/models"
	"swasthyaguide-backend/services"
)

type WhatsAppController struct {
	whatsappService *services.WhatsAppService
	chatbotService  *services.ChatbotService
	imageService    *services.ImageService
	voiceService    *services.VoiceService
}

func NewWhatsAppController(
	whatsappService *services.WhatsAppService,
	chatbotService *services.ChatbotService,
	imageService *services.ImageService,
	voiceService *services.VoiceService,
) *WhatsAppController {
	return &WhatsAppController{
		whatsappService: whatsappService,
		chatbotService:  chatbotService,
		imageService:    imageService,
		voiceService:    voiceService,
	}
}

// VerifyWebhook handles the webhook verification request from WhatsApp
func (wc *WhatsAppController) VerifyWebhook(c *gin.Context) {
	mode := c.Query("hub.mode")
	token := c.Query("hub.verify_token")
	challenge := c.Query("hub.challenge")

	if mode == "subscribe" && token == wc.whatsappService.GetVerifyToken() {
		c.String(http.StatusOK, challenge)
		return
	}

	c.JSON(http.StatusForbidden, gin.H{"error": "Verification failed"})
}

// HandleWebhook processes incoming WhatsApp messages
func (wc *WhatsAppController) HandleWebhook(c *gin.Context) {
	var webhookData models.WhatsAppWebhookData

	if err := c.ShouldBindJSON(&webhookData); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid webhook data"})
		return
	}

	// Process webhook asynchronously to respond quickly
	go wc.processWebhookData(webhookData)

	// Respond immediately to WhatsApp
	c.JSON(http.StatusOK, gin.H{"status": "received"})
}

// processWebhookData processes the webhook data
func (wc *WhatsAppController) processWebhookData(webhookData models.WhatsAppWebhookData) {
	for _, entry := range webhookData.Entry {
		for _, change := range entry.Changes {
			if change.Field == "messages" {
				wc.processMessages(change.Value)
			}
		}
	}
}

// processMessages handles incoming messages and status updates
func (wc *WhatsAppController) processMessages(value models.WhatsAppValue) {
	for _, message := range value.Messages {
		wc.handleIncomingMessage(message)
	}

	for _, status := range value.Statuses {
		wc.handleStatusUpdate(status)
	}
}

// handleIncomingMessage routes one inbound message by type. Every path ends
// in a text reply; media handling failures degrade to the could-not-read
// responses rather than silence.
func (wc *WhatsAppController) handleIncomingMessage(message models.WhatsAppMessage) {
	wc.whatsappService.RecordInbound()

	sessionID := fmt.Sprintf("whatsapp_%s", message.From)

	if err := wc.whatsappService.MarkMessageAsRead(message.ID); err != nil {
		log.Printf("Failed to mark message %s as read: %v", message.ID, err)
	}

	var reply string
	switch message.Type {
	case "text":
		if message.Text == nil {
			return
		}
		reply = wc.chatbotService.ProcessMessage(sessionID, message.Text.Body, models.ChannelWhatsApp)

	case "image":
		reply = wc.handleImageMessage(sessionID, message)

	case "audio":
		reply = wc.handleAudioMessage(sessionID, message)

	default:
		reply = "Sorry, I can only understand text, photos, and voice notes. / Main sirf text, photo aur voice note samajh sakta hoon."
	}

	if reply == "" {
		return
	}
	reply = config.Get().TrimToMaxLength(reply)

	if err := wc.whatsappService.SendTextMessage(message.From, reply); err != nil {
		log.Printf("Failed to send WhatsApp reply to %s: %v", message.From, err)
	}
}

// handleImageMessage downloads the photo, runs the external analysis, and
// hands the result to the dialogue engine. A nil analysis yields the
// could-not-read reply.
func (wc *WhatsAppController) handleImageMessage(sessionID string, message models.WhatsAppMessage) string {
	var caption string
	if message.Image != nil {
		caption = message.Image.Caption
	}

	var analysis *models.ImageAnalysis
	if message.Image != nil && wc.imageService.Enabled() {
		if data, err := wc.fetchMedia(message.Image.ID); err != nil {
			log.Printf("Failed to fetch image %s: %v", message.Image.ID, err)
		} else if analysis, err = wc.imageService.AnalyzeWithRetry(data); err != nil {
			log.Printf("Image analysis failed for %s: %v", message.Image.ID, err)
			analysis = nil
		}
	}

	return wc.chatbotService.ProcessImageMessage(sessionID, caption, analysis, models.ChannelWhatsApp)
}

// handleAudioMessage downloads the voice note and transcribes it with the
// session's language as the recognizer hint. An empty transcript flows
// through as a transcription failure.
func (wc *WhatsAppController) handleAudioMessage(sessionID string, message models.WhatsAppMessage) string {
	var transcript string
	if message.Audio != nil && wc.voiceService.Enabled() {
		if data, err := wc.fetchMedia(message.Audio.ID); err != nil {
			log.Printf("Failed to fetch audio %s: %v", message.Audio.ID, err)
		} else {
			language, _ := wc.chatbotService.SessionState(sessionID)
			if transcript, err = wc.voiceService.Transcribe(data, language); err != nil {
				log.Printf("Transcription failed for %s: %v", message.Audio.ID, err)
				transcript = ""
			}
		}
	}

	return wc.chatbotService.ProcessVoiceMessage(sessionID, transcript, models.ChannelWhatsApp)
}

func (wc *WhatsAppController) fetchMedia(mediaID string) ([]byte, error) {
	url, err := wc.whatsappService.GetMediaURL(mediaID)
	if err != nil {
		return nil, err
	}
	return wc.whatsappService.DownloadMedia(url)
}

// handleStatusUpdate processes message status updates
func (wc *WhatsAppController) handleStatusUpdate(status models.WhatsAppStatus) {
	log.Printf("Message %s to %s: %s", status.ID, status.RecipientID, status.Status)

	for _, err := range status.Errors {
		log.Printf("WhatsApp error: %d - %s: %s", err.Code, err.Title, err.Message)
	}
}

// SendMessage sends a message to a specific WhatsApp number (for notifications)
func (wc *WhatsAppController) SendMessage(c *gin.Context) {
	var req struct {
		To      string `json:"to" binding:"required"`
		Message string `json:"message" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	to := wc.whatsappService.CleanPhoneNumber(req.To)

	if err := wc.whatsappService.SendTextMessage(to, req.Message); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to send message",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "sent",
		"to":     to,
	})
}

// GetStatus returns WhatsApp service status
func (wc *WhatsAppController) GetStatus(c *gin.Context) {
	status := wc.whatsappService.GetStatus(wc.chatbotService.ActiveSessions())
	c.JSON(http.StatusOK, status)
}
