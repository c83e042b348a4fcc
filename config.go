package collatzbench

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// DefaultOutputPath is where the JSON report is written unless configured.
const DefaultOutputPath = "collatz_verification_results.json"

var configValidate = validator.New()

// Attribution is the free-text metadata stamped into every report.
type Attribution struct {
	Version    string `yaml:"version"`
	Researcher string `yaml:"researcher"`
	Repository string `yaml:"repository"`
	Year       int    `yaml:"year"`
}

// Config controls one verification run.
type Config struct {
	SampleSize int `yaml:"sample_size" validate:"gt=0"`
	// Exclusive upper bound for the odd starting values.
	MaxStart uint64 `yaml:"max_start" validate:"gt=3"`
	// Per-sequence safety bound on map applications.
	IterationCap int `yaml:"iteration_cap" validate:"gt=0"`
	Workers      int `yaml:"workers" validate:"gte=1,lte=1024"`
	// Seed 0 draws from an unseeded generator.
	Seed          uint64 `yaml:"seed"`
	ProgressEvery int    `yaml:"progress_every" validate:"gte=0"`

	Output                      string `yaml:"output" validate:"required"`
	RetainSequences             bool   `yaml:"retain_sequences"`
	IncludeResearchImplications bool   `yaml:"include_research_implications"`

	Attribution Attribution `yaml:"attribution"`
	Labels      LabelTable  `yaml:"labels"`
}

// DefaultConfig returns the settings of the reference run:
// 100,000 odd starts below 2,000,000 with a cap of 1,000,000 steps.
func DefaultConfig() Config {
	return Config{
		SampleSize:                  100_000,
		MaxStart:                    2_000_000,
		IterationCap:                DefaultIterationCap,
		Workers:                     1,
		ProgressEvery:               10_000,
		Output:                      DefaultOutputPath,
		IncludeResearchImplications: true,
		Attribution: Attribution{
			Version:    "collatzbench v4.0",
			Researcher: "Francisco J. Zapata García",
			Repository: "https://github.com/iamzaggi-hub/collatz-proof",
			Year:       2025,
		},
		Labels: DefaultLabelTable(),
	}
}

// Validate checks field ranges and the label thresholds.
func (c Config) Validate() error {
	if err := configValidate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("%w: %s failed %q (value %v)",
				ErrInvalidConfig, verrs[0].Namespace(), verrs[0].Tag(), verrs[0].Value())
		}
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// LoadConfig reads a YAML file on top of DefaultConfig.
// Keys absent from the file keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
