package config

import (
	"os"
)

type Config struct {
	ProjectID     string
	LogLevel      string
	Port          string
	VerifyToken   string // webhook verification shared secret; Secret Manager fallback when empty
	WhatsAppToken string // Graph API bearer token; Secret Manager fallback when empty
	DashboardURL  string
}

func New() *Config {
	return &Config{
		ProjectID:     os.Getenv("PROJECTID"),
		LogLevel:      os.Getenv("LOGLEVEL"),
		Port:          getPort(os.Getenv("PORT")),
		VerifyToken:   os.Getenv("VERIFYTOKEN"),
		WhatsAppToken: os.Getenv("WHATSAPPTOKEN"),
		DashboardURL:  getDashboardURL(os.Getenv("DASHBOARDURL")),
	}
}

func getPort(port string) string {
	if port == "" {
		return "8080"
	}
	return port
}

func getDashboardURL(url string) string {
	if url == "" {
		return "https://finbot-dashboard.vercel.app"
	}
	return url
}
