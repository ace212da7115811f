package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la consola (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App       AppConfig
	HTTP      HTTPConfig
	Backend   BackendConfig
	Cookie    CookieConfig
	UI        UIConfig
	Workspace WorkspaceConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string // trace, debug, info, warn, error
}

// HTTPConfig configuración del servidor HTTP de la consola.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// BackendConfig describe la API REST externa que es dueña de todas las entidades.
type BackendConfig struct {
	BaseURL string
	Timeout time.Duration
}

// CookieConfig controla las cookies de sesión (tokens de acceso y refresco).
type CookieConfig struct {
	Expiry time.Duration // vencimiento fijo de access_token y refresh_token
	Secure bool
}

// UIConfig parámetros de interacción de las páginas de listado, formularios y notificaciones.
type UIConfig struct {
	Debounce            time.Duration
	PageSize            int
	NotificationTimeout time.Duration
	StaleAfter          time.Duration
}

// WorkspaceConfig controla la vida de los espacios de trabajo por sesión.
type WorkspaceConfig struct {
	IdleTimeout time.Duration
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, BACKEND_BASE_URL, UI_DEBOUNCE_MS, etc.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return FromViper(v)
}

// FromViper construye la configuración a partir de una instancia de Viper ya cargada.
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "assettrack-console"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 3000),
		},
		Backend: BackendConfig{
			BaseURL: strings.TrimRight(getString(v, "BACKEND_BASE_URL", "http://localhost:8080/api"), "/"),
			Timeout: time.Duration(getInt(v, "BACKEND_TIMEOUT_SECONDS", 15)) * time.Second,
		},
		Cookie: CookieConfig{
			Expiry: time.Duration(getInt(v, "COOKIE_EXPIRY_HOURS", 24)) * time.Hour,
			Secure: getBool(v, "COOKIE_SECURE", false),
		},
		UI: UIConfig{
			Debounce:            time.Duration(getInt(v, "UI_DEBOUNCE_MS", 500)) * time.Millisecond,
			PageSize:            getInt(v, "UI_PAGE_SIZE", 10),
			NotificationTimeout: time.Duration(getInt(v, "UI_NOTIFICATION_SECONDS", 6)) * time.Second,
			StaleAfter:          time.Duration(getInt(v, "UI_STALE_SECONDS", 30)) * time.Second,
		},
		Workspace: WorkspaceConfig{
			IdleTimeout: time.Duration(getInt(v, "WORKSPACE_IDLE_MINUTES", 30)) * time.Minute,
		},
	}

	if cfg.Backend.BaseURL == "" {
		return nil, fmt.Errorf("config: BACKEND_BASE_URL vacío")
	}
	if cfg.UI.PageSize <= 0 || cfg.UI.PageSize > 100 {
		return nil, fmt.Errorf("config: UI_PAGE_SIZE fuera de rango (1-100): %d", cfg.UI.PageSize)
	}
	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		return v.GetBool(key)
	}
	return def
}
