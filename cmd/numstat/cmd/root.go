package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ARM-software/golang-numerics/numerics/commonerrors"
	"github.com/ARM-software/golang-numerics/numerics/config"
	"github.com/ARM-software/golang-numerics/numerics/safeio"
)

// stdinAlias is the conventional input path meaning standard input.
const stdinAlias = "-"

var fileSystem = afero.NewOsFs()

// NewRootCommand describes the numstat command line interface.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "numstat",
		Short: "numstat summarises the numbers it is given",
		Long: `numstat reads whitespace-separated numbers from a file or standard input and
reports their count, sum, mean, population variance and extrema.

Inputs made only of integers are reduced with integer arithmetic; a single
floating-point token, or --float, switches the whole input over to
floating-point arithmetic.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         run,
	}
	rootCmd.Flags().StringP("input", "i", stdinAlias, "file to read the numbers from, `-` meaning standard input")
	rootCmd.Flags().Bool("float", false, "treat every number as floating-point")
	rootCmd.Flags().StringP("format", "f", formatText, "output format, either `text` or `json`")
	rootCmd.Flags().IntP("precision", "p", 6, "significant digits used to print floating-point results (1 to 17)")
	rootCmd.Flags().BoolP("verbose", "v", false, "print debug information on standard error")
	return rootCmd
}

// Execute runs the numstat command line interface.
func Execute() error {
	return NewRootCommand().Execute()
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfiguration(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(cmd, cfg.Verbose)

	logger.WithField("input", cfg.Input).Debug("reading the input values")
	raw, err := readInput(cmd, cfg.Input)
	if err != nil {
		return err
	}
	integers, floats, isIntegral, err := parseValues(raw, cfg.Float)
	if err != nil {
		return err
	}
	logger.WithFields(logrus.Fields{"tokens": len(floats), "integral": isIntegral}).Debug("input parsed")

	out := cmd.OutOrStdout()
	if isIntegral {
		summary, err := Summarise(integers)
		if err != nil {
			return err
		}
		if cfg.Output.Format == formatJSON {
			return renderJSON(out, summary)
		}
		renderIntegerText(out, summary, cfg.Output.Precision)
		return nil
	}
	summary, err := Summarise(floats)
	if err != nil {
		return err
	}
	if cfg.Output.Format == formatJSON {
		return renderJSON(out, summary)
	}
	renderFloatText(out, summary, cfg.Output.Precision)
	return nil
}

func loadConfiguration(cmd *cobra.Command) (*Configuration, error) {
	session := viper.New()
	err := bindFlags(session, cmd.Flags())
	if err != nil {
		return nil, err
	}
	cfg := &Configuration{}
	err = config.LoadFromViper(session, envVarPrefix, cfg, DefaultConfiguration())
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func bindFlags(session *viper.Viper, flags *pflag.FlagSet) error {
	bindings := map[string]string{
		"NUMSTAT_INPUT":            "input",
		"NUMSTAT_FLOAT":            "float",
		"NUMSTAT_VERBOSE":          "verbose",
		"NUMSTAT_OUTPUT_FORMAT":    "format",
		"NUMSTAT_OUTPUT_PRECISION": "precision",
	}
	for envVar, flagName := range bindings {
		err := config.BindFlagToEnv(session, envVarPrefix, envVar, flags.Lookup(flagName))
		if err != nil {
			return err
		}
	}
	return nil
}

func newLogger(cmd *cobra.Command, verbose bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(cmd.ErrOrStderr())
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger
}

func readInput(cmd *cobra.Command, input string) (string, error) {
	if input == stdinAlias {
		content, err := safeio.ReadAll(cmd.Context(), cmd.InOrStdin())
		if err != nil {
			return "", err
		}
		return string(content), nil
	}
	content, err := afero.ReadFile(fileSystem, input)
	if err != nil {
		return "", commonerrors.WrapErrorf(commonerrors.ErrNotFound, err, "cannot read `%v`", input)
	}
	return string(content), nil
}
