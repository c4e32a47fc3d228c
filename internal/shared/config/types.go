package config

import "fmt"

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	BaseURL        string   `mapstructure:"base_url"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type DatabaseConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.Username, d.Password, d.Host, d.Port, d.Database)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type PasswordConfig struct {
	BcryptCost int `mapstructure:"bcrypt_cost"`
}

type TokenConfig struct {
	VerificationExpiresHours int `mapstructure:"verification_expires_hours"`
	ResetExpiresMinutes      int `mapstructure:"reset_expires_minutes"`
}

type JWTConfig struct {
	Secret           string `mapstructure:"secret"`
	AccessExpMinutes int    `mapstructure:"access_exp_minutes"`
	RefreshExpDays   int    `mapstructure:"refresh_exp_days"`
}

type SessionConfig struct {
	DefaultExpDays  int `mapstructure:"default_exp_days"`
	RememberExpDays int `mapstructure:"remember_exp_days"`
}

// LoginLimitConfig gates repeated login attempts per email|ip key.
type LoginLimitConfig struct {
	MaxAttempts   int `mapstructure:"max_attempts"`
	WindowMinutes int `mapstructure:"window_minutes"`
}

// SecurityConfig controls the per-account lockout applied on repeated
// wrong passwords, distinct from the per-key login rate limit.
type SecurityConfig struct {
	MaxFailedLogins int `mapstructure:"max_failed_logins"`
	LockoutMinutes  int `mapstructure:"lockout_minutes"`
}

type AuthConfig struct {
	Password   PasswordConfig   `mapstructure:"password"`
	Token      TokenConfig      `mapstructure:"token"`
	JWT        JWTConfig        `mapstructure:"jwt"`
	Session    SessionConfig    `mapstructure:"session"`
	LoginLimit LoginLimitConfig `mapstructure:"login_limit"`
	Security   SecurityConfig   `mapstructure:"security"`
}

type EmailConfig struct {
	SMTPHost     string `mapstructure:"smtp_host"`
	SMTPPort     int    `mapstructure:"smtp_port"`
	SMTPUser     string `mapstructure:"smtp_user"`
	SMTPPassword string `mapstructure:"smtp_password"`
	FromAddress  string `mapstructure:"from_address"`
	FromName     string `mapstructure:"from_name"`
}

type SMSConfig struct {
	GatewayURL string `mapstructure:"gateway_url"`
	APIKey     string `mapstructure:"api_key"`
	SenderID   string `mapstructure:"sender_id"`
	Enabled    bool   `mapstructure:"enabled"`
}

// SchoolConfig carries school identity plus library policy. Money values
// are minor currency units.
type SchoolConfig struct {
	Name              string `mapstructure:"name"`
	Address           string `mapstructure:"address"`
	LibraryFinePerDay int64  `mapstructure:"library_fine_per_day"`
	LibraryLoanLimit  int    `mapstructure:"library_loan_limit"`
	LibraryLoanDays   int    `mapstructure:"library_loan_days"`
}
