// Package config loads structured configuration from defaults, .env files,
// environment variables and command line flags, following viper's precedence
// rules.
package config

import (
	"fmt"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ARM-software/golang-numerics/numerics/commonerrors"
	"github.com/ARM-software/golang-numerics/numerics/reflection"
)

const (
	// EnvVarSeparator separates the words making up an environment variable name.
	EnvVarSeparator = "_"
	// DotEnvFile is the well-known file used to pre-populate the environment.
	DotEnvFile         = ".env"
	configKeySeparator = "."
	flagKeyPrefix      = "internalflagbindingnamespace0" // has to be lower case and unlikely to clash with real configuration keys
)

// IConfiguration is implemented by any configuration structure which can state
// whether its entries are valid.
type IConfiguration interface {
	// Validate validates the configuration entries.
	Validate() error
}

// Load populates configurationToSet from the environment (a .env file if
// present, then environment variables). Entries missing from the environment
// fall back to the values carried by defaultConfiguration.
// envVarPrefix namespaces the environment variables considered: with prefix
// "app", only variables starting with "APP_" are looked up. Fields of
// configurationToSet must be tagged with `mapstructure` using only
// `[_1-9a-zA-Z]` characters.
func Load(envVarPrefix string, configurationToSet IConfiguration, defaultConfiguration IConfiguration) error {
	return LoadFromViper(viper.New(), envVarPrefix, configurationToSet, defaultConfiguration)
}

// LoadFromViper is the same as Load but reuses the viper session provided
// instead of creating a new one. Viper's precedence order applies:
//  1. values set using explicit calls to Set
//  2. flags
//  3. environment (variables or .env)
//  4. configuration file
//  5. key/value store
//  6. default values
//
// Default values coming from defaultConfiguration take precedence over
// defaults set via SetDefault or via flag default values, unless they are
// empty according to reflection.IsEmpty.
func LoadFromViper(viperSession *viper.Viper, envVarPrefix string, configurationToSet IConfiguration, defaultConfiguration IConfiguration) (err error) {
	var defaults map[string]any
	err = mapstructure.Decode(defaultConfiguration, &defaults)
	if err != nil {
		return commonerrors.WrapError(commonerrors.ErrMarshalling, err, "cannot decode the default configuration")
	}
	// Merging the full defaults map registers every structure key with viper so
	// that environment lookups happen on Unmarshal.
	err = viperSession.MergeConfigMap(defaults)
	if err != nil {
		return commonerrors.WrapError(commonerrors.ErrUnexpected, err, "cannot merge the default configuration")
	}

	// Load any .env file contents into the environment, if present.
	_ = godotenv.Load(DotEnvFile)

	setEnvOptions(viperSession, envVarPrefix)
	linkFlagKeysToConfigurationKeys(viperSession, envVarPrefix)

	err = viperSession.Unmarshal(configurationToSet)
	if err != nil {
		return commonerrors.WrapError(commonerrors.ErrMarshalling, err, "unable to decode the configuration entries into the structure")
	}
	err = configurationToSet.Validate()
	if err != nil {
		return commonerrors.WrapError(commonerrors.ErrInvalid, err, "the loaded configuration is invalid")
	}
	return nil
}

// BindFlagToEnv binds a pflag to an environment variable so that either can
// set the corresponding configuration entry. envVar is the environment
// variable name, with or without the envVarPrefix prefix.
func BindFlagToEnv(viperSession *viper.Viper, envVarPrefix string, envVar string, flag *pflag.Flag) (err error) {
	if flag == nil {
		return commonerrors.Newf(commonerrors.ErrUndefined, "no flag to bind to `%v`", envVar)
	}
	setEnvOptions(viperSession, envVarPrefix)
	flagKey, cleansedEnvVar := envVarToKeys(envVar, envVarPrefix)
	err = viperSession.BindPFlag(flagKey, flag)
	if err != nil {
		return
	}
	err = viperSession.BindEnv(flagKey, cleansedEnvVar)
	return
}

// envVarToKeys converts an environment variable name into the private viper
// key the variable's flag is bound to, alongside the cleansed (prefixed,
// upper case) variable name.
func envVarToKeys(envVar, envVarPrefix string) (flagKey string, cleansedEnvVar string) {
	short := strings.ToLower(envVar)
	prefix := strings.ToLower(envVarPrefix)
	if strings.HasPrefix(short, prefix) {
		short = strings.TrimPrefix(strings.TrimPrefix(short, prefix), EnvVarSeparator)
	}
	flagKey = fmt.Sprintf("%v%v%v", flagKeyPrefix, configKeySeparator, strings.NewReplacer(EnvVarSeparator, configKeySeparator).Replace(short))
	cleansedEnvVar = strings.ToUpper(strings.NewReplacer(configKeySeparator, EnvVarSeparator).Replace(fmt.Sprintf("%v%v%v", envVarPrefix, EnvVarSeparator, short)))
	return
}

func isFlagKey(key string) bool {
	return strings.HasPrefix(key, flagKeyPrefix)
}

func setEnvOptions(viperSession *viper.Viper, envVarPrefix string) {
	viperSession.SetEnvPrefix(envVarPrefix)
	viperSession.AllowEmptyEnv(false)
	viperSession.AutomaticEnv()
	viperSession.SetEnvKeyReplacer(strings.NewReplacer(configKeySeparator, EnvVarSeparator))
}

// linkFlagKeysToConfigurationKeys aliases the private flag binding keys to the
// real configuration structure keys. Viper's own aliasing and BindEnv were
// found not to work well with multi-level keys, hence the manual handling.
func linkFlagKeysToConfigurationKeys(viperSession *viper.Viper, envVarPrefix string) {
	keys := viperSession.AllKeys()
	for i := range keys {
		key := keys[i]
		if isFlagKey(key) {
			continue
		}
		flagKey, _ := envVarToKeys(key, envVarPrefix)
		if viperSession.IsSet(flagKey) {
			// The flag was explicitly set and takes precedence over the
			// structured configuration value.
			viperSession.Set(key, viperSession.Get(flagKey))
		} else {
			value := viperSession.Get(flagKey)
			if !reflection.IsEmpty(value) {
				viperSession.SetDefault(key, value)
				// If the structured configuration value is empty, default to
				// the default value of the flag.
				if reflection.IsEmpty(viperSession.Get(key)) {
					viperSession.Set(key, value)
				}
			}
		}
		viperSession.RegisterAlias(flagKey, key)
	}
}
