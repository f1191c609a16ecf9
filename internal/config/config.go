package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/cameronehrlich/deals-sub001/internal/models"
)

// Config holds application configuration. Values are read by viper from
// an optional YAML file and environment variables prefixed with DEALS_.
type Config struct {
	Server      ServerConfig      `mapstructure:"server"`
	Logging     LoggingConfig     `mapstructure:"logging"`
	Rates       RatesConfig       `mapstructure:"rates"`
	Assumptions AssumptionsConfig `mapstructure:"assumptions"`
}

// ServerConfig defines the HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// LoggingConfig defines log level and output format.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// RatesConfig defines the market mortgage-rate feed settings. The
// fallback rate is used until the first successful fetch.
type RatesConfig struct {
	FeedURL         string        `mapstructure:"feed_url"`
	RefreshSchedule string        `mapstructure:"refresh_schedule"`
	Timeout         time.Duration `mapstructure:"timeout"`
	FallbackRate    float64       `mapstructure:"fallback_rate"`
}

// AssumptionsConfig overrides the default expense assumptions, so the
// engine's constants live in one visible place instead of scattered
// magic numbers.
type AssumptionsConfig struct {
	TaxRate         float64 `mapstructure:"tax_rate"`
	InsuranceRate   float64 `mapstructure:"insurance_rate"`
	VacancyRate     float64 `mapstructure:"vacancy_rate"`
	MaintenanceRate float64 `mapstructure:"maintenance_rate"`
	CapExRate       float64 `mapstructure:"capex_rate"`
	ManagementRate  float64 `mapstructure:"management_rate"`
	MonthlyHOA      float64 `mapstructure:"monthly_hoa"`
}

// Load reads configuration from the given file path (optional, pass ""
// for defaults) and the environment.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("DEALS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.read_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 10*time.Second)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	v.SetDefault("rates.feed_url", "https://www.freddiemac.com/pmms/data/pmms.xml")
	v.SetDefault("rates.refresh_schedule", "0 */6 * * *")
	v.SetDefault("rates.timeout", 10*time.Second)
	v.SetDefault("rates.fallback_rate", 0.07)

	defaults := models.DefaultAssumptions()
	v.SetDefault("assumptions.tax_rate", defaults.TaxRate)
	v.SetDefault("assumptions.insurance_rate", defaults.InsuranceRate)
	v.SetDefault("assumptions.vacancy_rate", defaults.VacancyRate)
	v.SetDefault("assumptions.maintenance_rate", defaults.MaintenanceRate)
	v.SetDefault("assumptions.capex_rate", defaults.CapExRate)
	v.SetDefault("assumptions.management_rate", defaults.ManagementRate)
	v.SetDefault("assumptions.monthly_hoa", defaults.MonthlyHOA)
}

// ExpenseAssumptions returns the configured assumptions as the engine's
// input type.
func (c *Config) ExpenseAssumptions() models.ExpenseAssumptions {
	return models.ExpenseAssumptions{
		TaxRate:         c.Assumptions.TaxRate,
		InsuranceRate:   c.Assumptions.InsuranceRate,
		VacancyRate:     c.Assumptions.VacancyRate,
		MaintenanceRate: c.Assumptions.MaintenanceRate,
		CapExRate:       c.Assumptions.CapExRate,
		ManagementRate:  c.Assumptions.ManagementRate,
		MonthlyHOA:      c.Assumptions.MonthlyHOA,
	}
}
