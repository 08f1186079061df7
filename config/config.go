package config

import (
	"bytes"
	"fmt"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"path/filepath"
	"strings"

	"worktally/ledger"
)

const (
	KeyLedgerPath           = "ledger.path"
	KeyLedgerTitle          = "ledger.title"
	KeyLedgerEntryPrefix    = "ledger.entry_prefix"
	KeyLedgerTotalMarker    = "ledger.total_marker"
	KeyLedgerDurationMarker = "ledger.duration_marker"
	KeyAggregatePolicy      = "aggregate.policy"
	KeyTimerStateFile       = "timer.state_file"
	KeyLogLevel             = "log.level"
	KeyRules                = "rules"
)

type Config struct {
	Ledger    LedgerConfig    `mapstructure:"ledger" validate:"required"`
	Aggregate AggregateConfig `mapstructure:"aggregate"`
	Timer     TimerConfig     `mapstructure:"timer"`
	Log       LogConfig       `mapstructure:"log"`
	Rules     []Rule          `mapstructure:"rules"`
}

type LedgerConfig struct {
	Path           string `mapstructure:"path" validate:"required"`
	Title          string `mapstructure:"title"`
	EntryPrefix    string `mapstructure:"entry_prefix" validate:"required"`
	TotalMarker    string `mapstructure:"total_marker" validate:"required"`
	DurationMarker string `mapstructure:"duration_marker" validate:"required"`
}

type AggregateConfig struct {
	Policy string `mapstructure:"policy" validate:"omitempty,oneof=all first"`
}

type TimerConfig struct {
	StateFile string `mapstructure:"state_file" validate:"required"`
}

type LogConfig struct {
	Level string `mapstructure:"level" validate:"omitempty,oneof=debug info warn error"`
}

// Rule assigns a phase to imported rows of files matching FileTemplate.
type Rule struct {
	Name         string `mapstructure:"name"`
	FileTemplate string `mapstructure:"file_template"`
	Phase        string `mapstructure:"phase"`
}

// Layout returns the ledger markers configured for this ledger.
func (c *Config) Layout() ledger.Layout {
	return ledger.Layout{
		Title:          c.Ledger.Title,
		EntryPrefix:    c.Ledger.EntryPrefix,
		TotalMarker:    c.Ledger.TotalMarker,
		DurationMarker: c.Ledger.DurationMarker,
	}
}

// Processor builds a ledger processor for the configured layout and policy.
func (c *Config) Processor(opts ...ledger.Option) (*ledger.Processor, error) {
	policy, err := ledger.ParsePolicy(c.Aggregate.Policy)
	if err != nil {
		return nil, err
	}
	return ledger.NewProcessor(c.Layout(), append([]ledger.Option{ledger.WithPolicy(policy)}, opts...)...), nil
}

// SetDefaults sets default values if not provided
func SetDefaults() {
	setDefaults(viper.GetViper())
}

// LoadAndValidate loads config from Viper and validates it
func LoadAndValidate() (*Config, error) {
	return loadAndValidateFromViper(viper.GetViper())
}

// ValidateYAMLContent validates configuration from raw YAML content.
func ValidateYAMLContent(content []byte) (*Config, error) {
	local := viper.New()
	setDefaults(local)
	local.SetConfigType("yaml")
	if err := local.ReadConfig(bytes.NewReader(content)); err != nil {
		return nil, fmt.Errorf("read config content: %w", err)
	}
	return loadAndValidateFromViper(local)
}

// ExampleYAML returns the default configuration template.
func ExampleYAML() string {
	return `# worktally configuration
ledger:
  path: "worklog.md"
  title: "# Worklog"
  entry_prefix: "### 📌 "
  total_marker: "🔹 Totale"
  duration_marker: "⏱"

aggregate:
  # all: every duration line of an entry counts; first: only the first one
  policy: "all"

timer:
  state_file: ".worktally-timer.toml"

log:
  level: "info"

rules: []
`
}

func loadAndValidateFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	cfg.Aggregate.Policy = strings.ToLower(strings.TrimSpace(cfg.Aggregate.Policy))
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := cfg.Layout().Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: ledger: %w", err)
	}
	if err := validateRules(cfg.Rules); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	layout := ledger.DefaultLayout()
	v.SetDefault(KeyLedgerPath, "worklog.md")
	v.SetDefault(KeyLedgerTitle, layout.Title)
	v.SetDefault(KeyLedgerEntryPrefix, layout.EntryPrefix)
	v.SetDefault(KeyLedgerTotalMarker, layout.TotalMarker)
	v.SetDefault(KeyLedgerDurationMarker, layout.DurationMarker)
	v.SetDefault(KeyAggregatePolicy, string(ledger.PolicyAll))
	v.SetDefault(KeyTimerStateFile, ".worktally-timer.toml")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyRules, []map[string]any{})
}

func validateRules(rules []Rule) error {
	seen := make(map[string]struct{}, len(rules))
	for i, rule := range rules {
		name := strings.TrimSpace(rule.Name)
		if name == "" {
			return fmt.Errorf("validation failed: rules[%d].name is required", i)
		}
		key := strings.ToLower(name)
		if _, exists := seen[key]; exists {
			return fmt.Errorf("validation failed: duplicate rule name %q", name)
		}
		seen[key] = struct{}{}
		template := strings.TrimSpace(rule.FileTemplate)
		if template == "" {
			return fmt.Errorf("validation failed: rules[%d].file_template is required", i)
		}
		if _, err := filepath.Match(template, ""); err != nil {
			return fmt.Errorf("validation failed: rules[%d].file_template %q is not a valid pattern", i, rule.FileTemplate)
		}
		if strings.TrimSpace(rule.Phase) == "" {
			return fmt.Errorf("validation failed: rules[%d].phase is required", i)
		}
	}
	return nil
}
