package config

import (
	"time"

	"github.com/caarlos0/env/v10"
)

// Config centraliza la configuración del servicio.
type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`
	AppEnv   string `env:"APP_ENV" envDefault:"production"`

	// La API key no es obligatoria: sin ella el asistente responde con el fallback.
	LLMProvider       string        `env:"LLM_PROVIDER" envDefault:"gemini"`
	LLMAPIKey         string        `env:"LLM_API_KEY"`
	LLMBaseURL        string        `env:"LLM_BASE_URL"`
	LLMModel          string        `env:"LLM_MODEL" envDefault:"gemini-2.5-flash"`
	LLMTemperature    float64       `env:"LLM_TEMPERATURE" envDefault:"0.7"`
	LLMTimeout        time.Duration `env:"LLM_TIMEOUT" envDefault:"30s"`
	ChatHistoryWindow int           `env:"CHAT_HISTORY_WINDOW" envDefault:"6"`

	StaticDir   string `env:"STATIC_DIR"`
	DatabaseURL string `env:"DATABASE_URL"`

	SMTPHost     string `env:"SMTP_HOST"`
	SMTPPort     int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUser     string `env:"SMTP_USER"`
	SMTPPass     string `env:"SMTP_PASS"`
	SMTPFrom     string `env:"SMTP_FROM"`
	SMTPFromName string `env:"SMTP_FROM_NAME"`
	SMTPUseTLS   bool   `env:"SMTP_USE_TLS" envDefault:"false"`
	ContactTo    string `env:"CONTACT_TO"`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}
