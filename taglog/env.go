package taglog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

var (
	// ErrEnvNotValid reports an unusable TAGLOG_* environment value.
	ErrEnvNotValid = errors.New("environment variables not valid")
)

type envConfig struct {
	Color string `env:"TAGLOG_COLOR" envDefault:"auto"`
}

// InitFromEnv configures the package from TAGLOG_* environment variables
// and installs the real process streams as sinks.
//
//	TAGLOG_COLOR=auto|always|never
func InitFromEnv() error {
	var envVars envConfig
	if err := env.Parse(&envVars); err != nil {
		return fmt.Errorf("%w: %s", ErrEnvNotValid, err.Error())
	}
	mode, err := parseColorMode(envVars.Color)
	if err != nil {
		return err
	}
	Init(Config{Color: mode})
	return nil
}

func parseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto", "":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	default:
		return ColorAuto, fmt.Errorf("%w: TAGLOG_COLOR must be one of auto, always, never", ErrEnvNotValid)
	}
}
