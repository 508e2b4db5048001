package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	App      AppConfig
	Policy   PolicyConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Name           string
	Port           int
	Env            string
	LogLevel       string
	AllowedOrigins []string
}

// PolicyConfig holds the time and pay policy constants the engine
// falls back to when no wage config layer overrides them.
type PolicyConfig struct {
	StandardWorkHours    float64 // hours per working day
	BreakHours           float64 // unpaid break per shift
	NightStartHour       int     // night premium window start (22 = 22:00)
	NightEndHour         int     // night premium window end (6 = 06:00)
	OvertimeRate         float64
	NightPremium         float64
	MonthlyStandardHours float64 // statutory monthly hours incl. weekly holiday pay

	TaxRate          float64 // flat withholding
	PensionRate      float64
	HealthRate       float64
	LongTermCareRate float64 // applied to the health component
	EmploymentRate   float64

	AdvanceLimitWeekly int64
	AdvanceLimitShift  int64

	PublicHolidays []string // YYYY-MM-DD
}

func Load() (*Config, error) {
	// .env is optional; environment variables win either way.
	_ = godotenv.Load()

	config := &Config{}

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "humetix"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Name:           getEnv("APP_NAME", "humetix-backend"),
		Port:           appPort,
		Env:            getEnv("APP_ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		AllowedOrigins: splitCSV(getEnv("ALLOWED_ORIGINS", "http://localhost:3000")),
	}

	policy, err := loadPolicy()
	if err != nil {
		return nil, err
	}
	config.Policy = policy

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

func loadPolicy() (PolicyConfig, error) {
	p := DefaultPolicy()

	fields := []struct {
		env string
		dst *float64
	}{
		{"STANDARD_WORK_HOURS", &p.StandardWorkHours},
		{"BREAK_HOURS", &p.BreakHours},
		{"OT_MULTIPLIER", &p.OvertimeRate},
		{"NIGHT_PREMIUM", &p.NightPremium},
		{"MONTHLY_STANDARD_HOURS", &p.MonthlyStandardHours},
		{"TAX_RATE", &p.TaxRate},
		{"PENSION_RATE", &p.PensionRate},
		{"HEALTH_RATE", &p.HealthRate},
		{"LONGTERM_CARE_RATE", &p.LongTermCareRate},
		{"EMPLOYMENT_RATE", &p.EmploymentRate},
	}
	for _, f := range fields {
		raw := os.Getenv(f.env)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return p, fmt.Errorf("invalid %s: %w", f.env, err)
		}
		*f.dst = v
	}

	intFields := []struct {
		env string
		dst *int
	}{
		{"NIGHT_START", &p.NightStartHour},
		{"NIGHT_END", &p.NightEndHour},
	}
	for _, f := range intFields {
		raw := os.Getenv(f.env)
		if raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return p, fmt.Errorf("invalid %s: %w", f.env, err)
		}
		*f.dst = v
	}

	for _, f := range []struct {
		env string
		dst *int64
	}{
		{"ADVANCE_LIMIT_WEEKLY", &p.AdvanceLimitWeekly},
		{"ADVANCE_LIMIT_SHIFT", &p.AdvanceLimitShift},
	} {
		raw := os.Getenv(f.env)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return p, fmt.Errorf("invalid %s: %w", f.env, err)
		}
		*f.dst = v
	}

	if raw := os.Getenv("PUBLIC_HOLIDAYS"); raw != "" {
		p.PublicHolidays = splitCSV(raw)
	}

	return p, nil
}

// DefaultPolicy returns the statutory 2026 defaults.
func DefaultPolicy() PolicyConfig {
	return PolicyConfig{
		StandardWorkHours:    8.0,
		BreakHours:           1.0,
		NightStartHour:       22,
		NightEndHour:         6,
		OvertimeRate:         1.5,
		NightPremium:         0.5,
		MonthlyStandardHours: 209,

		TaxRate:          0.033,
		PensionRate:      0.0475,
		HealthRate:       0.03595,
		LongTermCareRate: 0.1295,
		EmploymentRate:   0.009,

		AdvanceLimitWeekly: 300_000,
		AdvanceLimitShift:  500_000,

		PublicHolidays: []string{
			"2026-01-01",
			"2026-02-17", "2026-02-18", "2026-02-19",
			"2026-03-01", "2026-03-02",
			"2026-05-05",
			"2026-05-24", "2026-05-25",
			"2026-06-06",
			"2026-08-15",
			"2026-09-24", "2026-09-25", "2026-09-26",
			"2026-10-03", "2026-10-09",
			"2026-12-25",
		},
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Policy.StandardWorkHours <= 0 {
		return fmt.Errorf("STANDARD_WORK_HOURS must be positive")
	}
	if c.Policy.MonthlyStandardHours <= 0 {
		return fmt.Errorf("MONTHLY_STANDARD_HOURS must be positive")
	}
	if c.Policy.NightStartHour < 0 || c.Policy.NightStartHour > 23 {
		return fmt.Errorf("NIGHT_START must be an hour of day")
	}
	if c.Policy.NightEndHour < 0 || c.Policy.NightEndHour > 23 {
		return fmt.Errorf("NIGHT_END must be an hour of day")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
