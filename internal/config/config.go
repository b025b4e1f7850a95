package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	BotToken string
	MQTT     MQTTConfig
	StoreDir string
	Topics   Topics
}

// MQTTConfig holds message-bus connection settings
type MQTTConfig struct {
	Host     string
	Port     string
	ClientID string
	Username string
	Password string
}

// Topics holds the fixed set of subscribed bus topics
type Topics struct {
	Doorbell       string
	ApplianceState string
}

// All returns the topics as a list for subscription.
func (t Topics) All() []string {
	return []string{t.Doorbell, t.ApplianceState}
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	cfg := &Config{
		BotToken: os.Getenv("BOT_TOKEN"),
		MQTT: MQTTConfig{
			Host:     getEnv("MQTT_HOST", "localhost"),
			Port:     getEnv("MQTT_PORT", "1883"),
			ClientID: getEnv("MQTT_CLIENT_ID", "homenotify"),
			Username: os.Getenv("MQTT_USERNAME"),
			Password: os.Getenv("MQTT_PASSWORD"),
		},
		StoreDir: getEnv("DB_DIR", "db"),
		Topics: Topics{
			Doorbell:       getEnv("DOORBELL_TOPIC", "zigbee2mqtt/Türklingel"),
			ApplianceState: getEnv("APPLIANCE_TOPIC", "painless2mqtt/0x000000002d8909fe/state"),
		},
	}

	// Validate required fields
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN is required")
	}

	return cfg, nil
}

// BrokerURL returns the MQTT broker address in paho form
func (c MQTTConfig) BrokerURL() string {
	return fmt.Sprintf("tcp://%s:%s", c.Host, c.Port)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
