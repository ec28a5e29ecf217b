package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config configuration racine de l'application
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	CORS     CORSConfig     `yaml:"cors"`
	Services ServicesConfig `yaml:"services"`
}

// ServerConfig réglages du serveur HTTP
type ServerConfig struct {
	Host         string        `yaml:"host"          env:"SERVER_HOST"          env-default:"0.0.0.0"`
	Port         string        `yaml:"port"          env:"PORT"                 env-default:"8000"`
	ReadTimeout  time.Duration `yaml:"read_timeout"  env:"SERVER_READ_TIMEOUT"  env-default:"10s"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"30s"`
}

type CORSConfig struct {
	AllowedOrigins string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" env-default:"*"`
}

// ServicesConfig points d'accès des collaborateurs externes
type ServicesConfig struct {
	TranscriptBaseURL string        `yaml:"transcript_base_url" env:"TRANSCRIPT_BASE_URL" env-default:"http://localhost:9090"`
	SummarizerURL     string        `yaml:"summarizer_url"      env:"SUMMARIZER_URL"      env-default:"http://localhost:9091/summarize"`
	YouTubeAPIKey     string        `yaml:"youtube_api_key"     env:"YOUTUBE_API_KEY"`
	RequestTimeout    time.Duration `yaml:"request_timeout"     env:"SERVICES_REQUEST_TIMEOUT" env-default:"30s"`
}

// LoadConfig lit la configuration YAML puis l'environnement.
// Priorité: ENV > YAML > défauts. Le chemin du fichier vient de CONFIG_PATH
// (défaut ./config.yaml); sans fichier, ENV + défauts suffisent.
func LoadConfig() (*Config, error) {
	var cfg Config

	path := os.Getenv("CONFIG_PATH")
	explicit := path != ""
	if !explicit {
		path = "./config.yaml"
	}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if explicit {
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	} else {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	return &cfg, nil
}
