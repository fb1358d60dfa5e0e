package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	MongoURI    string
	DBName      string
	TokenSecret string
	Env         string // "production" toggles secure cross-site cookies
	PaymentURL  string // payment processor endpoint
	PaymentKey  string
	CORSOrigins string
	LogFile     string
}

// Production reports whether the process runs with production cookie policy.
func (c Config) Production() bool { return c.Env == "production" }

func Load() Config {
	// Local development keeps secrets in a .env file; absence is fine.
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}
	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		dbName = "BloodBank"
	}
	secret := os.Getenv("ACCESS_TOKEN_SECRET")
	if secret == "" {
		log.Println("[config] ACCESS_TOKEN_SECRET is empty; issued tokens are not safe for production")
	}
	origins := os.Getenv("CORS_ORIGINS")
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:5174"
	}

	cfg := Config{
		Port:        port,
		MongoURI:    uri,
		DBName:      dbName,
		TokenSecret: secret,
		Env:         os.Getenv("APP_ENV"),
		PaymentURL:  os.Getenv("PAYMENT_API_URL"),
		PaymentKey:  os.Getenv("PAYMENT_API_KEY"),
		CORSOrigins: origins,
		LogFile:     os.Getenv("LOG_FILE"),
	}
	log.Printf("[config] PORT=%s DB_NAME=%s ENV=%s", cfg.Port, cfg.DBName, cfg.Env)
	return cfg
}
