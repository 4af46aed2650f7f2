package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Server   ServerConfig
	REST     RESTConfig
	Console  ConsoleConfig
	Security SecurityConfig
	Kafka    KafkaConfig
	Logging  LoggingConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8080"`
}

// RESTConfig points at the restaurant service.
type RESTConfig struct {
	BaseURL string        `envconfig:"REST_BASE_URL" default:"https://foodiedelightbackend.onrender.com"`
	Timeout time.Duration `envconfig:"REST_TIMEOUT" default:"10s"`
	Token   string        `envconfig:"REST_TOKEN"`
}

type ConsoleConfig struct {
	PageSize       int           `envconfig:"PAGE_SIZE" default:"10"`
	ConfirmTimeout time.Duration `envconfig:"CONFIRM_TIMEOUT" default:"2m"`
	SendBuffer     int           `envconfig:"WS_SEND_BUFFER" default:"32"`
}

// SecurityConfig selects how console tokens are checked. With neither value set every
// connection is accepted anonymously.
type SecurityConfig struct {
	JWTSecret    string `envconfig:"JWT_SECRET"`
	JWTPublicKey string `envconfig:"JWT_PUBLIC_KEY"`
}

type KafkaConfig struct {
	Brokers      []string `envconfig:"KAFKA_BROKERS"`
	LegacyBroker string   `envconfig:"KAFKA_BROKER"`
	Topic        string   `envconfig:"KAFKA_TOPIC" default:"restaurants.changes"`
	GroupID      string   `envconfig:"KAFKA_GROUP_ID" default:"foodie-console"`
}

type LoggingConfig struct {
	Level     string `envconfig:"LOG_LEVEL" default:"info"`
	Format    string `envconfig:"LOG_FORMAT" default:"text"`
	Directory string `envconfig:"LOG_DIRECTORY" default:"./logs"`
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	sections := []struct {
		name   string
		target any
	}{
		{"server", &cfg.Server},
		{"rest", &cfg.REST},
		{"console", &cfg.Console},
		{"security", &cfg.Security},
		{"kafka", &cfg.Kafka},
		{"logging", &cfg.Logging},
	}
	for _, section := range sections {
		if err := envconfig.Process("", section.target); err != nil {
			return nil, fmt.Errorf("load %s config: %w", section.name, err)
		}
	}

	cfg.Kafka.Brokers = cleanList(append(cfg.Kafka.Brokers, cfg.Kafka.LegacyBroker))
	cfg.Kafka.Topic = strings.TrimSpace(cfg.Kafka.Topic)
	cfg.Security.JWTPublicKey = strings.ReplaceAll(cfg.Security.JWTPublicKey, `\n`, "\n")

	if cfg.Console.PageSize <= 0 {
		return nil, fmt.Errorf("PAGE_SIZE must be positive, got %d", cfg.Console.PageSize)
	}
	if strings.TrimSpace(cfg.Server.Port) == "" {
		return nil, fmt.Errorf("PORT must not be empty")
	}
	return cfg, nil
}

func cleanList(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))
	for _, value := range values {
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; ok {
			continue
		}
		seen[trimmed] = struct{}{}
		result = append(result, trimmed)
	}
	return result
}
