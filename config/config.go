package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Config holds all runtime settings, populated from the environment.
type Config struct {
	Port           string        `envconfig:"PORT" default:"8000"`
	MongoURI       string        `envconfig:"MONGO_URI" default:"mongodb://localhost:27017"`
	MongoDB        string        `envconfig:"MONGO_DB" default:"masalamart"`
	JWTSecret      string        `envconfig:"JWT_SECRET" required:"true"`
	AllowedOrigins string        `envconfig:"ALLOWED_ORIGINS"`
	SendgridAPIKey string        `envconfig:"SENDGRID_API_KEY"`
	EmailSender    string        `envconfig:"EMAIL_SENDER" default:"no-reply@masalamart.com"`
	OTPTTL         time.Duration `envconfig:"OTP_TTL" default:"5m"`
}

// Load reads .env if present and parses the environment into a Config.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Info("no .env file found, proceeding with environment variables")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, errors.Wrap(err, "parse environment")
	}
	return &cfg, nil
}
