package config

import (
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

type Config struct {
	DB        *sql.DB
	Port      string
	JWTSecret string
	Log       *logrus.Logger
}

var AppConfig *Config

// getEnv reads an environment variable with a fallback default
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// Init loads .env, connects to PostgreSQL and wires the shared logger.
// It must be called once at startup before GetDB or GetLog.
func Init(log *logrus.Logger) error {
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found, using environment variables")
	}

	host := getEnv("DB_HOST", "localhost")
	port := getEnv("DB_PORT", "5432")
	user := getEnv("DB_USER", "postgres")
	password := getEnv("DB_PASSWORD", "")
	dbname := getEnv("DB_NAME", "kisima")
	sslmode := getEnv("DB_SSLMODE", "disable")

	psqlInfo := fmt.Sprintf("host=%s port=%s user=%s dbname=%s sslmode=%s",
		host, port, user, dbname, sslmode)
	if password != "" {
		psqlInfo += " password=" + password
	}

	db, err := sql.Open("postgres", psqlInfo)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return fmt.Errorf("connect to database %s@%s:%s/%s: %w", user, host, port, dbname, err)
	}

	AppConfig = &Config{
		DB:        db,
		Port:      getEnv("PORT", "8080"),
		JWTSecret: getEnv("JWT_SECRET", ""),
		Log:       log,
	}

	log.WithFields(logrus.Fields{
		"host": host,
		"port": port,
		"db":   dbname,
	}).Info("Database connected")
	return nil
}

func GetDB() *sql.DB {
	return AppConfig.DB
}

func GetLog() *logrus.Logger {
	return AppConfig.Log
}
