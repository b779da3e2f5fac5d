package config

import (
	"os"
	"strings"
	"time"
)

type Env struct {
	AppAddr       string
	GinMode       string
	DBDSN         string
	UsuarioAPIURL string
	MailAPIURL    string
	ExportDir     string
	ClientTimeout time.Duration
	CORSOrigins   []string
}

func LoadEnv() Env {
	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":8080"
	}

	ginMode := strings.TrimSpace(os.Getenv("GIN_MODE"))

	dsn := strings.TrimSpace(os.Getenv("DB_DSN"))

	usuarioAPI := strings.TrimSpace(os.Getenv("USUARIO_API_URL"))
	if usuarioAPI == "" {
		usuarioAPI = "http://localhost:3002"
	}

	mailAPI := strings.TrimSpace(os.Getenv("MAIL_API_URL"))
	if mailAPI == "" {
		mailAPI = "http://localhost:3003"
	}

	exportDir := strings.TrimSpace(os.Getenv("EXPORT_DIR"))
	if exportDir == "" {
		exportDir = os.TempDir()
	}

	corsOrigins := []string{"http://localhost:3000", "http://localhost:5173"}
	if raw := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS")); raw != "" {
		corsOrigins = corsOrigins[:0]
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				corsOrigins = append(corsOrigins, o)
			}
		}
	}

	clientTimeout := 10 * time.Second
	if raw := strings.TrimSpace(os.Getenv("CLIENT_TIMEOUT")); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			clientTimeout = d
		}
	}

	return Env{
		AppAddr:       appAddr,
		GinMode:       ginMode,
		DBDSN:         dsn,
		UsuarioAPIURL: usuarioAPI,
		MailAPIURL:    mailAPI,
		ExportDir:     exportDir,
		ClientTimeout: clientTimeout,
		CORSOrigins:   corsOrigins,
	}
}
