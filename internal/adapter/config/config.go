package config

import (
	"flag"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	Database  *Database
	HTTP      *HTTP
	Kafka     *Kafka
	ImageHost *ImageHost
	App       *App
}

const AppModeProduction = "PROD"
const AppModeDevelop = "DEV"

type App struct {
	LogLevel string `env:"LOG_LEVEL"`
	Mode     string
}

type Database struct {
	DSN string `env:"DATABASE_URI"`
}

type HTTP struct {
	HostString string `env:"RUN_ADDRESS"`
}

type Kafka struct {
	Brokers []string `env:"KAFKA_BROKERS" envSeparator:","`
	Topic   string   `env:"KAFKA_NOTIFICATIONS_TOPIC" envDefault:"notifications"`
}

type ImageHost struct {
	HostString string `env:"IMAGE_HOST_ADDRESS"`
	APIKey     string `env:"IMAGE_HOST_API_KEY"`
}

func NewConfig() (*Config, error) {
	var db Database
	var http HTTP
	var kafka Kafka
	var imageHost ImageHost
	var app App

	var brokers string

	flag.StringVar(&db.DSN, "d", "", "Database string")
	flag.StringVar(&http.HostString, "a", `localhost:8080`, "HTTP server endpoint")
	flag.StringVar(&brokers, "k", "", "Kafka brokers (comma separated)")
	flag.StringVar(&imageHost.HostString, "i", "", "Image host address")
	flag.StringVar(&app.LogLevel, "l", `error`, "Log level")
	flag.StringVar(&app.Mode, "m", `DEV`, "PROD / DEV")
	flag.Parse()

	if brokers != "" {
		for _, b := range strings.Split(brokers, ",") {
			if b = strings.TrimSpace(b); b != "" {
				kafka.Brokers = append(kafka.Brokers, b)
			}
		}
	}

	err := env.Parse(&db)
	if err != nil {
		return nil, fmt.Errorf("error parsing env database config: %w", err)
	}
	err = env.Parse(&http)
	if err != nil {
		return nil, fmt.Errorf("error parsing http config: %w", err)
	}
	err = env.Parse(&kafka)
	if err != nil {
		return nil, fmt.Errorf("error parsing kafka config: %w", err)
	}
	err = env.Parse(&imageHost)
	if err != nil {
		return nil, fmt.Errorf("error parsing image host config: %w", err)
	}
	err = env.Parse(&app)
	if err != nil {
		return nil, fmt.Errorf("error parsing app config: %w", err)
	}

	config := Config{
		Database:  &db,
		HTTP:      &http,
		Kafka:     &kafka,
		ImageHost: &imageHost,
		App:       &app,
	}

	return &config, nil
}
