package routes

import (
	"log"

	"github.com/gin-gonic/gin"

	"swasthyaguide-backend/config"
	"swasthyaguide-backend/controllers"
	"swasthyaguide-backend/data"
	"swasthyaguide-backend/database"
	"swasthyaguide-backend/middleware"
	"swasthyaguide-backend/services"
	"swasthyaguide-backend/utils"
)

// SetupRoutes wires the full service graph and registers all routes. It
// returns the session store so main can stop its sweeper on shutdown.
func SetupRoutes(router *gin.Engine, cfg *config.Config) *services.SessionStore {
	// Core pipeline components
	detector := utils.NewLanguageDetector()
	symptoms := utils.NewSymptomExtractor()
	emergencies := utils.NewEmergencyDetector()
	resolver := utils.NewLocationResolver(symptoms, emergencies)

	entries := data.MustLoad()
	clinicIndex := services.NewClinicIndex(entries)

	sessionStore := services.NewSessionStore(cfg.Session.TTL)
	sessionStore.StartSweeper(cfg.Session.SweepInterval)

	composer := services.NewResponseComposer()

	// Conversation logging is optional; without a database the engine runs
	// fully in-memory.
	var logger services.MessageLogger
	if db := database.GetMongoDB(); db != nil {
		logger = database.NewMessageRepository(db)
	} else {
		log.Println("No database connected; conversation logging disabled")
	}

	chatbotService := services.NewChatbotService(
		detector, symptoms, emergencies, resolver,
		clinicIndex, sessionStore, composer, logger,
	)
	whatsappService := services.NewWhatsAppService(cfg.WhatsApp)
	imageService := services.NewImageService(cfg.ImageAPI)
	voiceService := services.NewVoiceService(cfg.VoiceAPI)

	// Initialize controllers
	chatbotController := controllers.NewChatbotController(chatbotService)
	wsController := controllers.NewWebSocketController(chatbotService)
	whatsappController := controllers.NewWhatsAppController(whatsappService, chatbotService, imageService, voiceService)

	// Public routes (no authentication required)
	public := router.Group("/api/v1")
	{
		public.POST("/chat", chatbotController.HandleChat)
		public.GET("/capabilities", chatbotController.GetCapabilities)

		// WebSocket for real-time chat
		public.GET("/ws", wsController.HandleWebSocket)
	}

	// WhatsApp routes
	whatsapp := router.Group("/api/whatsapp")
	{
		// Webhook endpoints; verification is a GET, events are signed POSTs
		whatsapp.GET("/webhook", whatsappController.VerifyWebhook)
		whatsapp.POST("/webhook",
			middleware.VerifyWhatsAppSignature(cfg.WhatsApp.AppSecret),
			whatsappController.HandleWebhook,
		)

		whatsapp.POST("/admin/send", whatsappController.SendMessage)
		whatsapp.GET("/admin/status", whatsappController.GetStatus)
	}

	// 404 handler
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error": "Route not found",
			"path":  c.Request.URL.Path,
		})
	})

	return sessionStore
}
