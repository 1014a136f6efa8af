package config

import (
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// DatabaseConfig holds PostgreSQL database connection settings.
type DatabaseConfig struct {
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// Enabled reports whether enough settings were provided to open a connection.
func (c DatabaseConfig) Enabled() bool {
	return c.Host != "" && c.Name != ""
}

// MinIOConfig holds object storage settings for MinIO.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// AttachmentsConfig controls where attachments live and which uploads the bridge accepts.
type AttachmentsConfig struct {
	// Backend is "fs" (app data directory) or "minio" (object storage).
	Backend string
	// AllowedTypes is the advisory MIME allow-list for uploads. Empty disables the check.
	AllowedTypes []string
	// ExportDir is where downloads land when the caller does not name a destination.
	// Empty means the caller must always name one, otherwise the call is cancelled.
	ExportDir string
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	// AppHost is the host:port clients use to reach the bridge.
	AppHost string
	// ListenHost is the interface the server binds; loopback unless overridden.
	ListenHost string
	Port       string
	Version    string
	DataDir    string
	LogLevel   string
	Location   *time.Location
	// BridgeSecret signs bridge tokens. Empty means a per-process secret is generated at startup.
	BridgeSecret string
	Attachments  AttachmentsConfig
	Database     DatabaseConfig
	MinIO        MinIOConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		AppHost:      getEnv("APP_HOST", "127.0.0.1:8080"),
		ListenHost:   getEnv("LISTEN_HOST", "127.0.0.1"),
		Port:         getEnv("PORT", "8080"),
		Version:      getEnv("APP_VERSION", "0.1.0"),
		DataDir:      getEnv("APP_DATA_DIR", defaultDataDir()),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		Location:     getEnvLocation("TZ_LOCATION", time.Local),
		BridgeSecret: getEnv("BRIDGE_SECRET", ""),
		Attachments: AttachmentsConfig{
			Backend:      getEnv("ATTACHMENTS_BACKEND", "fs"),
			AllowedTypes: getEnvList("ATTACHMENTS_ALLOWED_TYPES", []string{"application/pdf"}),
			ExportDir:    getEnv("EXPORT_DIR", ""),
		},
		Database: DatabaseConfig{
			Host:               getEnv("DB_HOST", ""),
			Port:               getEnv("DB_PORT", "5432"),
			User:               getEnv("DB_USER", ""),
			Password:           getEnv("DB_PASSWORD", ""),
			Name:               getEnv("DB_NAME", ""),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", ""),
			AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv("MINIO_SECRET_KEY", ""),
			Bucket:    getEnv("MINIO_BUCKET", ""),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
	}
}

// ListenAddr is the address the HTTP server binds.
func (c *AppConfig) ListenAddr() string {
	return net.JoinHostPort(c.ListenHost, c.Port)
}

// TokenFile is where the server publishes a bridge token for local clients.
func (c *AppConfig) TokenFile() string {
	return filepath.Join(c.DataDir, "bridge.token")
}

// defaultDataDir mirrors the per-user application data directory of the desktop shell.
func defaultDataDir() string {
	base, err := os.UserConfigDir()
	if err != nil || base == "" {
		return filepath.Join(os.TempDir(), "sogrinha")
	}
	return filepath.Join(base, "sogrinha")
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}

// getEnvList splits a comma separated value. The literal "none" yields an empty list.
func getEnvList(key string, def []string) []string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	if strings.EqualFold(v, "none") {
		return []string{}
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getEnvLocation(key string, def *time.Location) *time.Location {
	if v := os.Getenv(key); v != "" {
		loc, err := time.LoadLocation(v)
		if err == nil {
			return loc
		}
	}
	return def
}
