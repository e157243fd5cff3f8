// services/whatsapp_service.go
package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"swasthyaguide-backend/config"
	"swasthyaguide-backend/models"
)

// WhatsAppService talks to the Meta Graph API: outbound text replies and
// inbound media retrieval. Replies are plain text; the dialogue engine
// composes the full message body including clinic lists.
type WhatsAppService struct {
	apiURL        string
	apiVersion    string
	accessToken   string
	phoneNumberID string
	verifyToken   string
	httpClient    *http.Client

	// Status tracking
	statusMu        sync.RWMutex
	lastMessageTime time.Time
	messageCount    int64
	dailyCount      map[string]int
}

func NewWhatsAppService(cfg config.WhatsAppConfig) *WhatsAppService {
	return &WhatsAppService{
		apiURL:        "https://graph.facebook.com",
		apiVersion:    "v18.0",
		accessToken:   cfg.AccessToken,
		phoneNumberID: cfg.PhoneNumberID,
		verifyToken:   cfg.VerifyToken,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		dailyCount: make(map[string]int),
	}
}

// Enabled reports whether outbound messaging is configured.
func (ws *WhatsAppService) Enabled() bool {
	return ws.accessToken != "" && ws.phoneNumberID != ""
}

// GetVerifyToken returns the webhook verification token
func (ws *WhatsAppService) GetVerifyToken() string {
	return ws.verifyToken
}

// SendTextMessage sends a simple text message
func (ws *WhatsAppService) SendTextMessage(to string, message string) error {
	to = ws.CleanPhoneNumber(to)

	payload := models.WhatsAppSendMessage{
		MessagingProduct: "whatsapp",
		RecipientType:    "individual",
		To:               to,
		Type:             "text",
		Text: &models.WhatsAppText{
			Body: message,
		},
	}

	return ws.sendRequest(payload)
}

// MarkMessageAsRead marks a message as read
func (ws *WhatsAppService) MarkMessageAsRead(messageID string) error {
	payload := map[string]interface{}{
		"messaging_product": "whatsapp",
		"status":            "read",
		"message_id":        messageID,
	}

	return ws.sendRequest(payload)
}

// sendRequest posts a payload to the phone number's /messages endpoint.
func (ws *WhatsAppService) sendRequest(payload interface{}) error {
	url := fmt.Sprintf("%s/%s/%s/messages", ws.apiURL, ws.apiVersion, ws.phoneNumberID)

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequest("POST", url, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+ws.accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := ws.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		var errorResp map[string]interface{}
		if err := json.Unmarshal(body, &errorResp); err == nil {
			log.Printf("WhatsApp API error details: %+v", errorResp)
			return fmt.Errorf("WhatsApp API error: %v", errorResp)
		}
		return fmt.Errorf("WhatsApp API error: %s", string(body))
	}

	ws.updateMessageStatus()
	return nil
}

// GetMediaURL resolves a webhook media ID to a short-lived download URL.
func (ws *WhatsAppService) GetMediaURL(mediaID string) (string, error) {
	url := fmt.Sprintf("%s/%s/%s", ws.apiURL, ws.apiVersion, mediaID)

	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+ws.accessToken)

	resp, err := ws.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch media info: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("media info request failed: %s", string(body))
	}

	var info struct {
		URL      string `json:"url"`
		MimeType string `json:"mime_type"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return "", fmt.Errorf("failed to decode media info: %w", err)
	}
	if info.URL == "" {
		return "", fmt.Errorf("media %s has no download URL", mediaID)
	}
	return info.URL, nil
}

// DownloadMedia fetches media bytes from a URL returned by GetMediaURL. The
// URL requires the same bearer token as the API itself.
func (ws *WhatsAppService) DownloadMedia(url string) ([]byte, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+ws.accessToken)

	resp, err := ws.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download media: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("media download failed with status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// CleanPhoneNumber cleans and validates phone number
func (ws *WhatsAppService) CleanPhoneNumber(phone string) string {
	// Remove all non-numeric characters
	cleaned := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, phone)

	// Bare 10-digit numbers get the India country code.
	if len(cleaned) == 10 {
		cleaned = "91" + cleaned
	}

	return cleaned
}

// updateMessageStatus updates internal message tracking
func (ws *WhatsAppService) updateMessageStatus() {
	ws.statusMu.Lock()
	defer ws.statusMu.Unlock()

	ws.lastMessageTime = time.Now()
	ws.messageCount++

	today := time.Now().Format("2006-01-02")
	ws.dailyCount[today]++
}

// RecordInbound notes an inbound webhook message for status reporting.
func (ws *WhatsAppService) RecordInbound() {
	ws.statusMu.Lock()
	defer ws.statusMu.Unlock()
	ws.lastMessageTime = time.Now()
}

// GetStatus returns the service status
func (ws *WhatsAppService) GetStatus(activeSessions int) models.WhatsAppServiceStatus {
	ws.statusMu.RLock()
	defer ws.statusMu.RUnlock()

	today := time.Now().Format("2006-01-02")

	return models.WhatsAppServiceStatus{
		Enabled:             ws.Enabled(),
		WebhookVerified:     ws.verifyToken != "",
		LastMessageReceived: ws.lastMessageTime,
		MessageCountToday:   ws.dailyCount[today],
		ActiveSessions:      activeSessions,
	}
}
