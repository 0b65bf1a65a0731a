package cmd

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/ARM-software/golang-numerics/numerics/config"
)

// envVarPrefix namespaces the environment variables numstat reads, e.g.
// NUMSTAT_OUTPUT_FORMAT.
const envVarPrefix = "NUMSTAT"

// Configuration carries every option understood by numstat. Values come from
// the defaults, then NUMSTAT_* environment variables, then flags.
type Configuration struct {
	Input   string              `mapstructure:"input"`
	Float   bool                `mapstructure:"float"`
	Verbose bool                `mapstructure:"verbose"`
	Output  OutputConfiguration `mapstructure:"output"`
}

func (cfg *Configuration) Validate() error {
	validation.ErrorTag = "mapstructure"

	err := config.ValidateEmbedded(cfg)
	if err != nil {
		return err
	}
	return validation.ValidateStruct(cfg,
		validation.Field(&cfg.Input, validation.Required),
	)
}

// OutputConfiguration controls how the summary is rendered.
type OutputConfiguration struct {
	Format    string `mapstructure:"format"`
	Precision int    `mapstructure:"precision"`
}

func (cfg *OutputConfiguration) Validate() error {
	return validation.ValidateStruct(cfg,
		validation.Field(&cfg.Format, validation.Required, validation.In(formatText, formatJSON)),
		validation.Field(&cfg.Precision, validation.Required, validation.Min(1), validation.Max(17)),
	)
}

// DefaultConfiguration returns the options used when neither the environment
// nor the flags say otherwise.
func DefaultConfiguration() *Configuration {
	return &Configuration{
		Input: stdinAlias,
		Output: OutputConfiguration{
			Format:    formatText,
			Precision: 6,
		},
	}
}
