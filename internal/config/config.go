package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port       string
	APIBaseURL string
	CartDB     string
	RedisAddr  string
	RedisPass  string
	LogFile    string
}

func Load() Config {
	// Optional .env for local development; real deployments set env vars.
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	api := os.Getenv("API_BASE_URL")
	if api == "" {
		api = "http://localhost:4000/api"
	}
	cartDB := os.Getenv("CART_DB")
	if cartDB == "" {
		cartDB = "vitrine.db"
	} // sqlite file in project root
	logFile := os.Getenv("LOG_FILE")
	if logFile == "" {
		logFile = "./vitrine.log"
	}

	cfg := Config{
		Port:       port,
		APIBaseURL: api,
		CartDB:     cartDB,
		RedisAddr:  os.Getenv("REDIS_ADDR"),
		RedisPass:  os.Getenv("REDIS_PASSWORD"),
		LogFile:    logFile,
	}
	log.Printf("[config] PORT=%s API_BASE_URL=%s CART_DB=%s REDIS_ADDR=%s LOG_FILE=%s",
		cfg.Port, cfg.APIBaseURL, cfg.CartDB, cfg.RedisAddr, cfg.LogFile)
	return cfg
}
