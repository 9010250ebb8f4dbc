// Package config binds randompass options to command-line flags and
// environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"randompass/internal/domain"
	"randompass/internal/service"
)

const envPrefix = "RANDOMPASS"

// Config keys.
const (
	KeyLength         = "length"
	KeyNoLowercase    = "no_lowercase"
	KeyNoUppercase    = "no_uppercase"
	KeyNoNumbers      = "no_numbers"
	KeyNoSpecialChars = "no_special_chars"
	KeySpecialChars   = "special_chars"
	KeyMaxAttempts    = "max_attempts"
	KeyVerbose        = "verbose"
)

// Settings is the fully resolved configuration of one run.
type Settings struct {
	Password    domain.Config
	MaxAttempts int
	Verbose     bool
}

// Manager manages the registration and retrieval of config values. Flags
// take precedence over environment variables, which take precedence over
// defaults.
type Manager struct {
	viper   *viper.Viper
	command *cobra.Command
}

// NewManager attaches every config flag to command.
func NewManager(command *cobra.Command) Manager {
	man := Manager{
		viper:   viper.New(),
		command: command,
	}
	man.addConfigs()
	return man
}

func (man Manager) addConfigs() {
	man.addConfigInt(KeyLength, "l", domain.DefaultLength,
		"Password length.")
	man.addConfigBool(KeyNoLowercase, "o", false,
		"Disable usage of lowercase letters.")
	man.addConfigBool(KeyNoUppercase, "u", false,
		"Disable usage of uppercase letters.")
	man.addConfigBool(KeyNoNumbers, "n", false,
		"Disable usage of numbers.")
	man.addConfigBool(KeyNoSpecialChars, "c", false,
		"Disable usage of special characters (i.e.: !, $, #).")
	man.addConfigString(KeySpecialChars, "", domain.DefaultSpecialChars,
		"Set of special characters to draw from.")
	man.addConfigInt(KeyMaxAttempts, "", service.DefaultMaxAttempts,
		"Maximum candidates drawn before giving up.")
	man.addConfigBool(KeyVerbose, "v", false,
		"Enable debug logging on stderr.")
}

// Load resolves the current flag, environment and default values.
func (man Manager) Load() (Settings, error) {
	length, err := man.getConfigInt(KeyLength)
	if err != nil {
		return Settings{}, err
	}
	if length < 1 {
		return Settings{}, fmt.Errorf("%w: %s must be a positive integer, got %d",
			domain.ErrInvalidLength, KeyLength, length)
	}

	maxAttempts, err := man.getConfigInt(KeyMaxAttempts)
	if err != nil {
		return Settings{}, err
	}
	if maxAttempts < 1 {
		return Settings{}, fmt.Errorf("%s must be a positive integer, got %d", KeyMaxAttempts, maxAttempts)
	}

	flags := map[string]bool{}
	for _, key := range []string{KeyNoLowercase, KeyNoUppercase, KeyNoNumbers, KeyNoSpecialChars, KeyVerbose} {
		v, err := man.getConfigBool(key)
		if err != nil {
			return Settings{}, err
		}
		flags[key] = v
	}

	specialChars, err := man.getConfigString(KeySpecialChars)
	if err != nil {
		return Settings{}, err
	}

	return Settings{
		Password: domain.Config{
			Length:       length,
			AllowLower:   !flags[KeyNoLowercase],
			AllowUpper:   !flags[KeyNoUppercase],
			AllowDigits:  !flags[KeyNoNumbers],
			AllowSpecial: !flags[KeyNoSpecialChars],
			SpecialChars: specialChars,
		},
		MaxAttempts: maxAttempts,
		Verbose:     flags[KeyVerbose],
	}, nil
}

// envNameFromConfigKey converts a config key into the corresponding
// environment variable name
func envNameFromConfigKey(key string) string {
	return envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

func getFlagUsage(key string, usage string) string {
	return fmt.Sprintf("%s (env %s)", usage, envNameFromConfigKey(key))
}

func (man Manager) bind(key string) {
	man.viper.BindPFlag(key, man.command.PersistentFlags().Lookup(key))
	man.viper.BindEnv(key, envNameFromConfigKey(key))
}

func (man Manager) addConfigString(key, shorthand, defVal, usage string) {
	man.command.PersistentFlags().StringP(key, shorthand, defVal, getFlagUsage(key, usage))
	man.bind(key)
}

func (man Manager) getConfigString(key string) (string, error) {
	val, err := cast.ToStringE(man.viper.Get(key))
	if err != nil {
		return "", fmt.Errorf("%s: %w", envNameFromConfigKey(key), err)
	}
	return val, nil
}

func (man Manager) addConfigInt(key, shorthand string, defVal int, usage string) {
	man.command.PersistentFlags().IntP(key, shorthand, defVal, getFlagUsage(key, usage))
	man.bind(key)
}

func (man Manager) getConfigInt(key string) (int, error) {
	val, err := cast.ToIntE(man.viper.Get(key))
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return val, nil
}

func (man Manager) addConfigBool(key, shorthand string, defVal bool, usage string) {
	man.command.PersistentFlags().BoolP(key, shorthand, defVal, getFlagUsage(key, usage))
	man.bind(key)
}

func (man Manager) getConfigBool(key string) (bool, error) {
	val, err := cast.ToBoolE(man.viper.Get(key))
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean: %w", key, err)
	}
	return val, nil
}
