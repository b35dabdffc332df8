// Package config, uygulamanın tüm konfigürasyonunu merkezi olarak yönetir.
// Environment variable'lardan okur, .env dosyasını da destekler.
//
// Her yerde ayrı ayrı os.Getenv() çağırmak yerine ayarlar tek bir
// Config struct'ında toplanır ve main.go'da katmanlara dağıtılır.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config, uygulamanın tüm konfigürasyon değerlerini taşır.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig

	// Production, cookie ayarlarını etkiler: true ise refresh token
	// cookie'si Secure + SameSite=Strict olarak yazılır.
	Production bool
}

// ServerConfig, HTTP server ayarları.
type ServerConfig struct {
	Host string
	Port int
}

// DatabaseConfig, SQLite database ayarları.
type DatabaseConfig struct {
	Path string // SQLite dosya yolu (ör: ./data/antren.db)
}

// JWTConfig, token imzalama ayarları.
//
// Access ve refresh token AYRI secret'larla imzalanır — refresh token
// sadece cookie üzerinden taşındığı için sızan bir access secret ile
// refresh token üretilemez.
//
// Secret'lar burada DOĞRULANMAZ: eksik secret config hatası olarak
// istek anında 500 döner (auth service kontrol eder). Böylece sadece
// public endpoint'leri kullanan bir deployment ayağa kalkabilir.
type JWTConfig struct {
	AccessSecret       string
	RefreshSecret      string
	AccessExpiryMin    int // Dakika cinsinden (varsayılan: 15)
	RefreshExpiryHours int // Saat cinsinden (varsayılan: 24)
}

// Load, environment variable'lardan Config oluşturur.
// .env dosyası varsa önce onu yükler (development kolaylığı için).
func Load() (*Config, error) {
	// Dosya yoksa hata vermez, sessizce devam eder.
	// Production'da gerçek env variable'lar kullanılır.
	_ = godotenv.Load()

	port, err := strconv.Atoi(getEnv("PORT", "8000"))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT: %w", err)
	}

	accessExpiry, err := strconv.Atoi(getEnv("JWT_ACCESS_EXPIRY_MINUTES", "15"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_ACCESS_EXPIRY_MINUTES: %w", err)
	}

	refreshExpiry, err := strconv.Atoi(getEnv("JWT_REFRESH_EXPIRY_HOURS", "24"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_REFRESH_EXPIRY_HOURS: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("HOST", "0.0.0.0"),
			Port: port,
		},
		Database: DatabaseConfig{
			Path: getEnv("DATABASE_PATH", "./data/antren.db"),
		},
		JWT: JWTConfig{
			AccessSecret:       getEnv("JWT_SECRET", ""),
			RefreshSecret:      getEnv("JWT_REFRESH_SECRET", ""),
			AccessExpiryMin:    accessExpiry,
			RefreshExpiryHours: refreshExpiry,
		},
		Production: getEnv("APP_ENV", "development") == "production",
	}

	return cfg, nil
}

// Addr, HTTP server'ın dinleyeceği adresi döner (ör: "0.0.0.0:8000").
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// getEnv, environment variable'ı okur, yoksa fallback değeri döner.
func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}
