package main

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/abhiman/studiobackend/config"
	"github.com/abhiman/studiobackend/controllers"
	"github.com/abhiman/studiobackend/mailer"
	"github.com/abhiman/studiobackend/pdf"
	"github.com/abhiman/studiobackend/pricing"
	"github.com/abhiman/studiobackend/quotation"
	"github.com/abhiman/studiobackend/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	utils.InitializeLogger()
	logger := utils.GetLogger()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Invalid configuration", zap.Error(err))
	}

	renderer := quotation.NewRenderer(pricing.Default())
	exporter := pdf.NewExporter(cfg)
	dispatcher := mailer.NewDispatcher(cfg.SendGridAPIKey, cfg.SenderEmail)

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(cors.New(corsConfig(cfg.AllowedOrigins)))

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Server is running")
	})
	r.POST("/contact", controllers.Contact(dispatcher))
	r.POST("/send-quotation", controllers.SendQuotation(renderer, exporter, dispatcher))

	addr := fmt.Sprintf(":%d", cfg.Port)
	logger.Info("Starting server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("Server stopped", zap.Error(err))
	}
}

// corsConfig allows the configured origins, or any origin when none are
// configured (the enquiry form is public).
func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	allowed := make(map[string]bool, len(origins))
	for _, origin := range origins {
		if origin = strings.TrimSpace(origin); origin != "" {
			allowed[origin] = true
		}
	}
	if len(allowed) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOriginFunc = func(origin string) bool {
		return allowed[origin]
	}
	return cfg
}
