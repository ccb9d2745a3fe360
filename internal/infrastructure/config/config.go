package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTest        = "test"

	// DevelopmentJWTSecret assina tokens quando JWT_SECRET não é definido fora de produção
	DevelopmentJWTSecret = "development-only-jwt-secret"
)

// Config contém todas as configurações da aplicação
type Config struct {
	Env      string
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Logging  LoggingConfig
	CORS     CORSConfig
	Upload   UploadConfig
	I18n     I18nConfig
}

type ServerConfig struct {
	Port    string
	Host    string
	BaseURL string
}

type DatabaseConfig struct {
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	MaxConns    int
	MinConns    int
	MaxIdleTime int
}

type JWTConfig struct {
	Secret       string
	AccessExpiry time.Duration
}

type LoggingConfig struct {
	Level   string
	Backend string
	File    string
}

type CORSConfig struct {
	AllowedOrigins string
}

type UploadConfig struct {
	Dir      string
	MaxBytes int64
}

type I18nConfig struct {
	LocalesDir      string
	DefaultLanguage string
}

// Load carrega as configurações das variáveis de ambiente, lendo antes um
// .env opcional do diretório atual
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	expiry, err := time.ParseDuration(v.GetString("JWT_ACCESS_EXPIRY"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_ACCESS_EXPIRY: %w", err)
	}

	config := &Config{
		Env: strings.ToLower(v.GetString("ENV")),
		Server: ServerConfig{
			Port:    v.GetString("PORT"),
			Host:    v.GetString("HOST"),
			BaseURL: v.GetString("API_BASE_URL"),
		},
		Database: DatabaseConfig{
			Host:        v.GetString("DB_HOST"),
			Port:        v.GetInt("DB_PORT"),
			User:        v.GetString("DB_USER"),
			Password:    v.GetString("DB_PASS"),
			DBName:      v.GetString("DB_NAME"),
			SSLMode:     v.GetString("DB_SSL_MODE"),
			MaxConns:    v.GetInt("DB_MAX_CONNS"),
			MinConns:    v.GetInt("DB_MIN_CONNS"),
			MaxIdleTime: v.GetInt("DB_MAX_IDLE_TIME"),
		},
		JWT: JWTConfig{
			Secret:       v.GetString("JWT_SECRET"),
			AccessExpiry: expiry,
		},
		Logging: LoggingConfig{
			Level:   v.GetString("LOG_LEVEL"),
			Backend: v.GetString("LOG_BACKEND"),
			File:    v.GetString("LOG_FILE"),
		},
		CORS: CORSConfig{
			AllowedOrigins: v.GetString("CORS_ALLOWED_ORIGINS"),
		},
		Upload: UploadConfig{
			Dir:      v.GetString("UPLOAD_DIR"),
			MaxBytes: v.GetInt64("UPLOAD_MAX_BYTES"),
		},
		I18n: I18nConfig{
			LocalesDir:      v.GetString("I18N_LOCALES_DIR"),
			DefaultLanguage: v.GetString("I18N_DEFAULT_LANGUAGE"),
		},
	}

	// fora de produção um segredo fixo evita tokens assinados com chave vazia
	if config.JWT.Secret == "" && !config.IsProduction() {
		config.JWT.Secret = DevelopmentJWTSecret
	}

	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("HOST", "0.0.0.0")
	v.SetDefault("PORT", "5000")
	v.SetDefault("API_BASE_URL", "http://localhost:5000")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASS", "postgres")
	v.SetDefault("DB_NAME", "controle_financeiro")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 25)
	v.SetDefault("DB_MIN_CONNS", 5)
	v.SetDefault("DB_MAX_IDLE_TIME", 300)
	v.SetDefault("JWT_ACCESS_EXPIRY", "168h")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_BACKEND", "slog")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("UPLOAD_DIR", "./uploads")
	v.SetDefault("UPLOAD_MAX_BYTES", 5<<20)
	v.SetDefault("I18N_DEFAULT_LANGUAGE", "pt-BR")
}

// IsProduction indica se a aplicação roda em produção
func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}

// Validate valida a configuração e reúne todos os problemas encontrados
func (c *Config) Validate() error {
	var problems []string

	if port, err := strconv.Atoi(c.Server.Port); err != nil {
		problems = append(problems, fmt.Sprintf("invalid port '%s': must be a number", c.Server.Port))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	switch c.Env {
	case EnvDevelopment, EnvProduction, EnvTest:
	default:
		problems = append(problems, fmt.Sprintf("invalid environment '%s': must be one of [development production test]", c.Env))
	}

	if c.Database.Host == "" || c.Database.DBName == "" {
		problems = append(problems, "database host and name are required")
	}
	if c.Database.MaxConns < 1 {
		problems = append(problems, fmt.Sprintf("invalid DB_MAX_CONNS %d: must be at least 1", c.Database.MaxConns))
	}

	if c.JWT.Secret == "" {
		if c.IsProduction() {
			problems = append(problems, "JWT_SECRET is required in production")
		}
	} else if c.IsProduction() && len(c.JWT.Secret) < 32 {
		problems = append(problems, "JWT_SECRET must have at least 32 characters in production")
	}
	if c.JWT.AccessExpiry <= 0 {
		problems = append(problems, "JWT_ACCESS_EXPIRY must be positive")
	}

	switch c.Logging.Backend {
	case "slog", "zap":
	default:
		problems = append(problems, fmt.Sprintf("invalid log backend '%s': must be one of [slog zap]", c.Logging.Backend))
	}

	if c.Upload.Dir == "" {
		problems = append(problems, "UPLOAD_DIR cannot be empty")
	}
	if c.Upload.MaxBytes < 1 {
		problems = append(problems, fmt.Sprintf("invalid UPLOAD_MAX_BYTES %d: must be positive", c.Upload.MaxBytes))
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}

	return nil
}

// Origins devolve a lista de origens CORS configuradas
func (c *CORSConfig) Origins() []string {
	var origins []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// DSN retorna a connection string do PostgreSQL
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// URL retorna a connection string no formato postgres:// usado pelas migrações
func (d *DatabaseConfig) URL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:     "/" + d.DBName,
		RawQuery: url.Values{"sslmode": []string{d.SSLMode}}.Encode(),
	}
	return u.String()
}
