package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DBDSN       string
	LogFile     string
	TemplateDir string

	SMTPHost   string
	SMTPPort   int
	SMTPUser   string
	SMTPPass   string
	MailFrom   string
	OrderInbox string
}

func Load() Config {
	// Local dev convenience; a missing .env is fine.
	_ = godotenv.Load()

	cfg := Config{
		Port:        getenv("PORT", "8080"),
		DBDSN:       getenv("DB_DSN", "greenleaf.db"),
		LogFile:     getenv("LOG_FILE", "./greenleaf.log"),
		TemplateDir: getenv("TEMPLATE_DIR", "./web/templates"),
		SMTPHost:    getenv("SMTP_HOST", "localhost"),
		SMTPPort:    getenvInt("SMTP_PORT", 587),
		SMTPUser:    os.Getenv("SMTP_USER"),
		SMTPPass:    os.Getenv("SMTP_PASS"),
		MailFrom:    getenv("MAIL_FROM", "orders@greenleaf.test"),
		OrderInbox:  getenv("ORDER_INBOX", "fulfillment@greenleaf.test"),
	}
	log.Printf("[config] PORT=%s DB_DSN=%s SMTP_HOST=%s ORDER_INBOX=%s", cfg.Port, cfg.DBDSN, cfg.SMTPHost, cfg.OrderInbox)
	return cfg
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
