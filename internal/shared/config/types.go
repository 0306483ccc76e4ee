package config

import "fmt"

type ServerConfig struct {
	Host        string   `mapstructure:"host"`
	Port        int      `mapstructure:"port"`
	Mode        string   `mapstructure:"mode"`
	CORSOrigins []string `mapstructure:"cors_origins"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DatabaseConfig describes the embedded sqlite database. The portal is a
// single-writer application, so the whole store is one local file.
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type JWTConfig struct {
	Secret           string `mapstructure:"secret"`
	AccessExpMinutes int    `mapstructure:"access_exp_minutes"`
}

// CredentialConfig is one entry of the static credential table. This is a
// demo login gate, not a security boundary: the table lives in config and
// only admin logins are checked against it.
type CredentialConfig struct {
	Username     string `mapstructure:"username"`
	PasswordHash string `mapstructure:"password_hash"`
	Role         string `mapstructure:"role"`
	DisplayName  string `mapstructure:"display_name"`
}

type AuthConfig struct {
	JWT          JWTConfig          `mapstructure:"jwt"`
	BcryptCost   int                `mapstructure:"bcrypt_cost"`
	LoginDelayMS int                `mapstructure:"login_delay_ms"`
	Credentials  []CredentialConfig `mapstructure:"credentials"`
}

// NotifierConfig controls the outbound order-confirmation handoff. Delivery
// is best effort; when SMTP is not configured the composed message is only
// logged.
type NotifierConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	SMTPHost    string `mapstructure:"smtp_host"`
	SMTPPort    int    `mapstructure:"smtp_port"`
	SMTPUser    string `mapstructure:"smtp_user"`
	SMTPPass    string `mapstructure:"smtp_password"`
	FromAddress string `mapstructure:"from_address"`
	FromName    string `mapstructure:"from_name"`
	ToAddress   string `mapstructure:"to_address"`
}

// PaymentConfig holds the fixed UPI payee used by the simulated checkout.
type PaymentConfig struct {
	UPIID     string `mapstructure:"upi_id"`
	PayeeName string `mapstructure:"payee_name"`
	Currency  string `mapstructure:"currency"`
}
