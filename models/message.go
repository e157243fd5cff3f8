package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MessageChannel represents the communication channel
type MessageChannel string

const (
	ChannelWeb      MessageChannel = "web"
	ChannelWhatsApp MessageChannel = "whatsapp"
)

// MessageRecord is one user-message/bot-response exchange, persisted as a
// write-only conversation log. The log is never read back into live session
// state.
type MessageRecord struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SessionID   string             `bson:"session_id" json:"session_id"`
	UserMessage string             `bson:"user_message" json:"user_message"`
	BotResponse string             `bson:"bot_response" json:"bot_response"`
	Language    Language           `bson:"language" json:"language"`
	Stage       Stage              `bson:"stage" json:"stage"`
	Channel     MessageChannel     `bson:"channel,omitempty" json:"channel,omitempty"`
	Timestamp   time.Time          `bson:"timestamp" json:"timestamp"`
}

// ChatRequest is the REST/WebSocket chat payload.
type ChatRequest struct {
	Message   string         `json:"message" binding:"required"`
	SessionID string         `json:"session_id"`
	Channel   MessageChannel `json:"channel,omitempty"`
}

// ChatResponse is the REST/WebSocket chat reply.
type ChatResponse struct {
	Response  string   `json:"response"`
	SessionID string   `json:"session_id"`
	Language  Language `json:"language"`
	Stage     Stage    `json:"stage"`
}

// ImageAnalysis is the opaque result of the external image-analysis
// collaborator. The core only renders it; pixel analysis happens outside.
type ImageAnalysis struct {
	Condition  string  `json:"condition"`
	Confidence float64 `json:"confidence"`
}

// WhatsApp Webhook Models
type WhatsAppWebhookData struct {
	Object string          `json:"object"`
	Entry  []WhatsAppEntry `json:"entry"`
}

type WhatsAppEntry struct {
	ID      string           `json:"id"`
	Changes []WhatsAppChange `json:"changes"`
}

type WhatsAppChange struct {
	Field string        `json:"field"`
	Value WhatsAppValue `json:"value"`
}

type WhatsAppValue struct {
	MessagingProduct string            `json:"messaging_product"`
	Metadata         WhatsAppMetadata  `json:"metadata"`
	Messages         []WhatsAppMessage `json:"messages,omitempty"`
	Statuses         []WhatsAppStatus  `json:"statuses,omitempty"`
	Contacts         []WhatsAppContact `json:"contacts,omitempty"`
}

type WhatsAppMetadata struct {
	DisplayPhoneNumber string `json:"display_phone_number"`
	PhoneNumberID      string `json:"phone_number_id"`
}

type WhatsAppMessage struct {
	From      string         `json:"from"`
	ID        string         `json:"id"`
	Timestamp string         `json:"timestamp"`
	Type      string         `json:"type"`
	Text      *WhatsAppText  `json:"text,omitempty"`
	Image     *WhatsAppMedia `json:"image,omitempty"`
	Audio     *WhatsAppMedia `json:"audio,omitempty"`
}

type WhatsAppText struct {
	Body string `json:"body"`
}

// WhatsAppMedia carries a media reference; the bytes are fetched separately
// through the Graph API.
type WhatsAppMedia struct {
	ID       string `json:"id"`
	MimeType string `json:"mime_type,omitempty"`
	SHA256   string `json:"sha256,omitempty"`
	Caption  string `json:"caption,omitempty"`
}

type WhatsAppContact struct {
	Profile WhatsAppProfile `json:"profile"`
	WaID    string          `json:"wa_id"`
}

type WhatsAppProfile struct {
	Name string `json:"name"`
}

type WhatsAppStatus struct {
	ID          string  `json:"id"`
	RecipientID string  `json:"recipient_id"`
	Status      string  `json:"status"`
	Timestamp   string  `json:"timestamp"`
	Errors      []Error `json:"errors,omitempty"`
}

type Error struct {
	Code    int    `json:"code"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

// WhatsApp Send Message Models
type WhatsAppSendMessage struct {
	MessagingProduct string        `json:"messaging_product"`
	RecipientType    string        `json:"recipient_type"`
	To               string        `json:"to"`
	Type             string        `json:"type"`
	Text             *WhatsAppText `json:"text,omitempty"`
}

// Service Status Model
type WhatsAppServiceStatus struct {
	Enabled             bool      `json:"enabled"`
	WebhookVerified     bool      `json:"webhook_verified"`
	LastMessageReceived time.Time `json:"last_message_received"`
	MessageCountToday   int       `json:"message_count_today"`
	ActiveSessions      int       `json:"active_sessions"`
}
