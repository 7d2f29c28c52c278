package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config reúne la configuración del proceso, leída del entorno (o de .env).
type Config struct {
	DBURI            string        `env:"DB_URI,required"`
	DBName           string        `env:"DB_NAME,required"`
	DBCollection     string        `env:"DB_COLLECTION" envDefault:"clientes"`
	DBMaxPoolSize    uint64        `env:"DB_MAX_POOL_SIZE" envDefault:"10"`
	DBMinPoolSize    uint64        `env:"DB_MIN_POOL_SIZE" envDefault:"1"`
	DBConnectTimeout time.Duration `env:"DB_CONNECT_TIMEOUT" envDefault:"30s"`

	FrontendURL string `env:"FRONTEND_URL"`

	Port            string        `env:"PORT" envDefault:"8000"`
	RequestTimeout  time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	IDStrategy   string `env:"ID_STRATEGY" envDefault:"uuid"`
	SeedClientes int    `env:"SEED_CLIENTES" envDefault:"0"`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`

	Redis RedisConfig `envPrefix:"REDIS_"`
}

// RedisConfig configura la caché. Con Addr vacío la caché queda deshabilitada.
type RedisConfig struct {
	Addr         string        `env:"ADDR"`
	Password     string        `env:"PASSWORD"`
	DB           int           `env:"DB" envDefault:"0"`
	PoolSize     int           `env:"POOL_SIZE" envDefault:"100"`
	MinIdleConns int           `env:"MIN_IDLE_CONNS" envDefault:"10"`
	MaxRetries   int           `env:"MAX_RETRIES" envDefault:"3"`
	DialTimeout  time.Duration `env:"DIAL_TIMEOUT" envDefault:"5s"`
	ReadTimeout  time.Duration `env:"READ_TIMEOUT" envDefault:"3s"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT" envDefault:"3s"`
	TTL          time.Duration `env:"TTL" envDefault:"5m"`
}

func (r RedisConfig) Enabled() bool {
	return r.Addr != ""
}

// Load carga .env si existe y luego parsea el entorno.
func Load(files ...string) (*Config, error) {
	// Un .env ausente no es error: en producción las variables vienen del entorno
	_ = godotenv.Load(files...)

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("error leyendo variables de entorno: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	var errs []error

	switch c.IDStrategy {
	case "uuid", "timestamp":
	default:
		errs = append(errs, fmt.Errorf("ID_STRATEGY debe ser uuid o timestamp, se recibió %q", c.IDStrategy))
	}
	if c.DBMaxPoolSize == 0 || c.DBMinPoolSize > c.DBMaxPoolSize {
		errs = append(errs, fmt.Errorf("tamaño de pool inválido: min=%d max=%d", c.DBMinPoolSize, c.DBMaxPoolSize))
	}
	if c.DBConnectTimeout <= 0 || c.RequestTimeout <= 0 || c.ShutdownTimeout <= 0 {
		errs = append(errs, errors.New("los timeouts deben ser positivos"))
	}
	if c.SeedClientes < 0 {
		errs = append(errs, errors.New("SEED_CLIENTES no puede ser negativo"))
	}
	if c.Redis.Enabled() && c.Redis.TTL <= 0 {
		errs = append(errs, errors.New("REDIS_TTL debe ser positivo"))
	}

	return errors.Join(errs...)
}

// AllowedOrigins devuelve los orígenes CORS: FRONTEND_URL (si está) y el servidor de desarrollo local.
func (c *Config) AllowedOrigins() []string {
	origins := make([]string, 0, 2)
	if c.FrontendURL != "" {
		origins = append(origins, c.FrontendURL)
	}
	return append(origins, "http://localhost:5173")
}

func (c *Config) Address() string {
	return ":" + c.Port
}
