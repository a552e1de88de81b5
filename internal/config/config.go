package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`

	Email struct {
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUsername string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
		FromName     string `yaml:"from_name"`
		TemplatesDir string `yaml:"templates_dir"`
	} `yaml:"email"`

	JWT struct {
		AccessSecret  string `yaml:"access_secret"`
		RefreshSecret string `yaml:"refresh_secret"`
		// Время жизни в минутах (access) и часах (refresh)
		AccessTTLMinutes int `yaml:"access_ttl_minutes"`
		RefreshTTLHours  int `yaml:"refresh_ttl_hours"`
	} `yaml:"jwt"`

	Frontend struct {
		// База для ссылок в письмах (verify / reset)
		BaseURL string `yaml:"base_url"`
	} `yaml:"frontend"`

	Cookie struct {
		Domain string `yaml:"domain"`
		Secure bool   `yaml:"secure"`
	} `yaml:"cookie"`
}

var AppConfig *Config

// LoadConfig загружает конфигурацию.
// Если задан DATABASE_URL - работаем от переменных окружения (режим теста/деплоя),
// иначе читаем config.yaml. .env подхватывается в обоих режимах.
func LoadConfig() {
	var cfg Config

	// .env не обязателен, ошибка отсутствия файла игнорируется
	_ = godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")

	if dbURL == "" {
		configPath := os.Getenv("CONFIG_PATH")
		if configPath == "" {
			configPath = "config/config.yaml"
		}

		f, err := os.Open(configPath)
		if err != nil {
			log.Fatalf("Failed to open config file at %s: %v", configPath, err)
		}
		defer f.Close()

		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil {
			log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
		}

		applyDefaults(&cfg)
		AppConfig = &cfg
		return
	}

	cfg.Database.DSN = dbURL
	cfg.Server.Env = os.Getenv("SERVER_ENV")
	cfg.Server.Port, _ = strconv.Atoi(os.Getenv("SERVER_PORT"))
	cfg.JWT.AccessSecret = os.Getenv("ACCESS_JWT_SECRET")
	cfg.JWT.RefreshSecret = os.Getenv("REFRESH_JWT_SECRET")
	cfg.Frontend.BaseURL = os.Getenv("FRONTEND_URL")

	// Пустой EMAIL_HOST включает mock-провайдер почты
	cfg.Email.SMTPHost = os.Getenv("EMAIL_HOST")
	cfg.Email.SMTPPort = 587
	cfg.Email.SMTPUsername = os.Getenv("EMAIL_USER")
	cfg.Email.SMTPPassword = os.Getenv("EMAIL_PASSWORD")
	cfg.Email.FromEmail = os.Getenv("EMAIL_USER")

	// Refresh-куки с SameSite=None требуют Secure, отключение только явное
	cfg.Cookie.Domain = os.Getenv("COOKIE_DOMAIN")
	cfg.Cookie.Secure = os.Getenv("COOKIE_INSECURE") != "true"

	applyDefaults(&cfg)
	AppConfig = &cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 4000
	}
	if cfg.JWT.AccessTTLMinutes == 0 {
		cfg.JWT.AccessTTLMinutes = 15
	}
	if cfg.JWT.RefreshTTLHours == 0 {
		cfg.JWT.RefreshTTLHours = 7 * 24
	}
	if cfg.Frontend.BaseURL == "" {
		cfg.Frontend.BaseURL = "http://localhost:5173"
	}
}

// GetConfig возвращает конфигурацию, при необходимости загружая ее
func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
