package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validProdConfig() *Config {
	return &Config{
		Port:            "8080",
		JWTSecret:       "a-strong-secret-key-with-enough-entropy!",
		DBPassword:      "s3cure-db-password",
		DBSSLMode:       "require",
		StreamAPISecret: "stream-secret",
		Env:             "production",
	}
}

func TestValidateDevelopmentDefaults(t *testing.T) {
	cfg := &Config{
		Port:      "8080",
		JWTSecret: "your-secret-key-change-in-production",
		Env:       "development",
	}
	assert.NoError(t, cfg.Validate())
}

func TestValidateRequiredFields(t *testing.T) {
	cfg := &Config{JWTSecret: "x"}
	assert.Error(t, cfg.Validate(), "missing PORT should fail")

	cfg = &Config{Port: "8080"}
	assert.Error(t, cfg.Validate(), "missing JWT_SECRET should fail")
}

func TestValidateProduction(t *testing.T) {
	assert.NoError(t, validProdConfig().Validate())

	cfg := validProdConfig()
	cfg.JWTSecret = "your-secret-key-change-in-production"
	assert.Error(t, cfg.Validate(), "default JWT secret should fail in production")

	cfg = validProdConfig()
	cfg.JWTSecret = "short"
	assert.Error(t, cfg.Validate(), "short JWT secret should fail in production")

	cfg = validProdConfig()
	cfg.DBPassword = "password"
	assert.Error(t, cfg.Validate(), "default DB password should fail in production")

	cfg = validProdConfig()
	cfg.StreamAPISecret = ""
	assert.Error(t, cfg.Validate(), "missing stream secret should fail in production")
}
