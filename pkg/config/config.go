package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde
// env y opcionalmente archivo .env).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	JWT     JWTConfig
	Storage StorageConfig
	DB      DBConfig
	Redis   RedisConfig
	Report  ReportConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// JWTConfig configuración de los tokens de sesión. Son tokens consultivos
// (la visibilidad por rol es un filtro de UI, no una frontera de seguridad),
// pero se firman igual para que el cliente no los fabrique por accidente.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// StorageConfig selecciona el backend del RecordStore.
type StorageConfig struct {
	Driver   string // "file" (default) o "postgres"
	DataFile string // ruta del documento JSON para el driver file
}

// DBConfig configuración de PostgreSQL (solo con STORAGE_DRIVER=postgres).
// Si DatabaseURL no está vacío se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si
// no el construido campo a campo.
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// RedisConfig caché opcional de analítica. Addr vacío ⇒ caché deshabilitado.
type RedisConfig struct {
	Addr       string
	Password   string
	DB         int
	TTLSeconds int // vigencia del resumen de analítica cacheado
}

// ReportConfig datos fijos del negocio para los reportes exportados.
type ReportConfig struct {
	CurrencySymbol string // símbolo fijo; no hay manejo multi-moneda
	BusinessName   string
	BusinessLine1  string // dirección
	BusinessLine2  string // teléfono / email
	GSTIN          string
	DefaultGSTRate int // porcentaje aplicado cuando la orden no trae tasa
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde
// archivo .env). Las env vars tienen prioridad.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración .env en el directorio de trabajo.
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "khakhra-bm"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", "khakhra-dev-secret"),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 12*60),
			Issuer:     getString(v, "JWT_ISSUER", "khakhra-bm"),
		},
		Storage: StorageConfig{
			Driver:   getString(v, "STORAGE_DRIVER", "file"),
			DataFile: getString(v, "STORAGE_DATA_FILE", "data/business.json"),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "khakhra_bm"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Addr:       getString(v, "REDIS_ADDR", ""),
			Password:   getString(v, "REDIS_PASSWORD", ""),
			DB:         getInt(v, "REDIS_DB", 0),
			TTLSeconds: getInt(v, "ANALYTICS_CACHE_TTL_SECONDS", 60),
		},
		Report: ReportConfig{
			CurrencySymbol: getString(v, "REPORT_CURRENCY_SYMBOL", "₹"),
			BusinessName:   getString(v, "REPORT_BUSINESS_NAME", "KHAKHRA ENTERPRISE"),
			BusinessLine1:  getString(v, "REPORT_BUSINESS_ADDRESS", "123 Manufacturing Lane, Ahmedabad, Gujarat 380001"),
			BusinessLine2:  getString(v, "REPORT_BUSINESS_CONTACT", "Phone: +91 98765 43210 | Email: info@khakhra.com"),
			GSTIN:          getString(v, "REPORT_BUSINESS_GSTIN", "24AAAAA1234A1Z5"),
			DefaultGSTRate: getInt(v, "GST_DEFAULT_RATE", 18),
		},
	}

	if cfg.Storage.Driver != "file" && cfg.Storage.Driver != "postgres" {
		return nil, fmt.Errorf("config: STORAGE_DRIVER inválido: %q", cfg.Storage.Driver)
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
		case string:
			n, err := strconv.Atoi(v.GetString(key))
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
