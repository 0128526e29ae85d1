package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"

	"github.com/joho/godotenv"
)

// LoadENV reads .env into the process environment. A missing file is fine;
// deployments usually provide real environment variables instead.
func LoadENV() error {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// PostgresURI assembles the connection string from the DB_* variables.
func PostgresURI() (string, error) {
	host := getenvDefault("DB_HOST", "localhost")
	port := getenvDefault("DB_PORT", "5432")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	name := os.Getenv("DB_NAME")

	if user == "" || name == "" {
		return "", errors.New("you must set your 'DB_USER' and 'DB_NAME' environmental variables")
	}

	uri := fmt.Sprintf("postgres://%s@%s:%s/%s?sslmode=disable",
		url.UserPassword(user, password).String(), host, port, name)
	return uri, nil
}

// JWTSecret returns the token signing key.
func JWTSecret() ([]byte, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, errors.New("you must set your 'JWT_SECRET' environmental variable")
	}
	return []byte(secret), nil
}

// Port returns the HTTP listening port, defaulting to 3000.
func Port() string {
	return getenvDefault("PORT", "3000")
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
