package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v9"
)

// Config holds everything the server reads from the environment. The
// SendGrid key and sender address are required: without them neither
// endpoint can do anything useful, so startup fails fast.
type Config struct {
	SendGridAPIKey  string        `env:"SENDGRID_API_KEY,required"`
	SenderEmail     string        `env:"SENDER_EMAIL,required"`
	WKHTMLToPDFPath string        `env:"WKHTMLTOPDF_PATH"`
	PDFEngine       string        `env:"PDF_ENGINE" envDefault:"wkhtmltopdf"`
	ChromePath      string        `env:"CHROME_PATH"`
	PDFTimeout      time.Duration `env:"PDF_RENDER_TIMEOUT" envDefault:"60s"`
	Port            int           `env:"PORT" envDefault:"5000"`
	AllowedOrigins  []string      `env:"ALLOWED_ORIGINS" envSeparator:","`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}
