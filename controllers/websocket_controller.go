package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"swasthyaguide-backend/models"
	"swasthyaguide-backend/services"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Configure properly for production
	},
}

type WebSocketController struct {
	chatbotService *services.ChatbotService
}

func NewWebSocketController(chatbotService *services.ChatbotService) *WebSocketController {
	return &WebSocketController{
		chatbotService: chatbotService,
	}
}

// HandleWebSocket serves one chat conversation per connection. The session ID
// comes from the query string or is minted for the connection's lifetime.
func (wc *WebSocketController) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Println("WebSocket upgrade error:", err)
		return
	}
	defer conn.Close()

	sessionID := c.Query("session_id")
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	for {
		var req models.ChatRequest
		if err := conn.ReadJSON(&req); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Println("WebSocket read error:", err)
			}
			break
		}

		reply := wc.chatbotService.ProcessMessage(sessionID, req.Message, models.ChannelWeb)
		language, stage := wc.chatbotService.SessionState(sessionID)

		if err := conn.WriteJSON(models.ChatResponse{
			Response:  reply,
			SessionID: sessionID,
			Language:  language,
			Stage:     stage,
		}); err != nil {
			log.Println("WebSocket write error:", err)
			break
		}
	}
}
