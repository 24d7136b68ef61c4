// Package config загрузка конфигурации сервиса из TOML-файла.
package config

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
)

var (
	// ErrReadConfig возвращается при ошибке чтения файла конфигурации
	ErrReadConfig = errors.New("config: failed to read config file")

	// ErrInvalidConfig возвращается при некорректных значениях конфигурации
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config корневая конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Schedule ScheduleConfig `toml:"schedule"`
	Admin    AdminConfig    `toml:"admin"`
	Booking  BookingConfig  `toml:"booking"`
	SMTP     SMTPConfig     `toml:"smtp"`
	Calendar CalendarConfig `toml:"calendar"`
}

// ServerConfig настройки HTTP-сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN возвращает строку подключения к PostgreSQL
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки метрик Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// DayWindow рабочее окно одного дня недели, время в формате "HH:MM".
// Пустые значения означают выходной день.
type DayWindow struct {
	Start string `toml:"start"`
	End   string `toml:"end"`
}

// IsClosed returns true if no window is configured for the day
func (w DayWindow) IsClosed() bool {
	return w.Start == "" || w.End == ""
}

// ScheduleConfig недельное расписание приёма и таймзона практики
type ScheduleConfig struct {
	Timezone  string    `toml:"timezone"`
	Monday    DayWindow `toml:"monday"`
	Tuesday   DayWindow `toml:"tuesday"`
	Wednesday DayWindow `toml:"wednesday"`
	Thursday  DayWindow `toml:"thursday"`
	Friday    DayWindow `toml:"friday"`
	Saturday  DayWindow `toml:"saturday"`
	Sunday    DayWindow `toml:"sunday"`
}

// AdminConfig настройки доступа врача к админке
type AdminConfig struct {
	// bcrypt-хэш пароля врача
	PasswordHash      string `toml:"password_hash"`
	SessionTTLMinutes int    `toml:"session_ttl_minutes"`
}

// BookingConfig настройки бронирований
type BookingConfig struct {
	CodePrefix string `toml:"code_prefix"`
}

// SMTPConfig настройки отправки почты
type SMTPConfig struct {
	Enabled     bool   `toml:"enabled"`
	Host        string `toml:"host"`
	Port        int    `toml:"port"`
	Username    string `toml:"username"`
	Password    string `toml:"password"`
	From        string `toml:"from"`
	DoctorEmail string `toml:"doctor_email"`
}

// CalendarConfig настройки синхронизации с Google Calendar
type CalendarConfig struct {
	Enabled         bool   `toml:"enabled"`
	CredentialsFile string `toml:"credentials_file"`
	CalendarID      string `toml:"calendar_id"`
}

// Load читает и валидирует конфигурацию из TOML-файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadConfig, err)
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.HTTPPort == 0 {
		cfg.Server.HTTPPort = 8080
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 15
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 15
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = 60
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Logs.File == "" {
		cfg.Logs.File = "logs/app.log"
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	if cfg.Metrics.ServiceName == "" {
		cfg.Metrics.ServiceName = "docbooking"
	}
	if cfg.Schedule.Timezone == "" {
		cfg.Schedule.Timezone = "Local"
	}
	if cfg.Admin.SessionTTLMinutes == 0 {
		cfg.Admin.SessionTTLMinutes = 120
	}
	if cfg.Booking.CodePrefix == "" {
		cfg.Booking.CodePrefix = "APT"
	}
}

func validate(cfg *Config) error {
	if cfg.Database.Host == "" {
		return fmt.Errorf("%w: database.host is required", ErrInvalidConfig)
	}
	if cfg.Database.DBName == "" {
		return fmt.Errorf("%w: database.dbname is required", ErrInvalidConfig)
	}
	if cfg.Admin.PasswordHash == "" {
		return fmt.Errorf("%w: admin.password_hash is required", ErrInvalidConfig)
	}
	if cfg.Calendar.Enabled && cfg.Calendar.CredentialsFile == "" {
		return fmt.Errorf("%w: calendar.credentials_file is required when calendar sync is enabled", ErrInvalidConfig)
	}
	if cfg.Calendar.Enabled && cfg.Calendar.CalendarID == "" {
		return fmt.Errorf("%w: calendar.calendar_id is required when calendar sync is enabled", ErrInvalidConfig)
	}
	if cfg.SMTP.Enabled && cfg.SMTP.Host == "" {
		return fmt.Errorf("%w: smtp.host is required when email is enabled", ErrInvalidConfig)
	}
	return nil
}
