package weatheroverlay

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment keys read by LoadConfig and ParseConfig.
const (
	EnvEntity    = "WEATHER_OVERLAY_ENTITY"
	EnvTestState = "WEATHER_OVERLAY_TEST_STATE"
	EnvSeed      = "WEATHER_OVERLAY_SEED"
	EnvDebug     = "WEATHER_OVERLAY_DEBUG"
)

var configKeys = []string{EnvEntity, EnvTestState, EnvSeed, EnvDebug}

// ErrMissingEntity is returned when a configuration names no weather entity.
var ErrMissingEntity = errors.New("weatheroverlay: please define a weather overlay entity")

// Config configures a Card.
type Config struct {
	// Entity identifies the host entity whose state selects the animation.
	// Required.
	Entity string
	// TestState, when set, replaces the entity's state.
	TestState string
	// Seed seeds particle randomness. Zero picks a random seed.
	Seed uint64
	// Debug enables stderr logging of state changes and tick timings.
	Debug bool
}

// Validate reports configuration errors.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Entity) == "" {
		return ErrMissingEntity
	}
	return nil
}

// EffectiveState returns the state that selects the animation: TestState
// when set, otherwise entityState.
func (c Config) EffectiveState(entityState string) string {
	if c.TestState != "" {
		return c.TestState
	}
	return entityState
}

// ParseConfig reads dotenv-formatted configuration from r.
func ParseConfig(r io.Reader) (Config, error) {
	vals, err := godotenv.Parse(r)
	if err != nil {
		return Config{}, fmt.Errorf("weatheroverlay: parse config: %w", err)
	}
	return configFromValues(vals)
}

// LoadConfig reads the given dotenv files, or ".env" when none are named,
// and lets variables already set in the process environment override them.
// A missing default ".env" is not an error; a missing named file is.
func LoadConfig(files ...string) (Config, error) {
	vals, err := godotenv.Read(files...)
	if err != nil {
		if len(files) > 0 || !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("weatheroverlay: load config: %w", err)
		}
		vals = make(map[string]string, len(configKeys))
	}
	for _, key := range configKeys {
		if v, ok := os.LookupEnv(key); ok {
			vals[key] = v
		}
	}
	return configFromValues(vals)
}

func configFromValues(vals map[string]string) (Config, error) {
	cfg := Config{
		Entity:    strings.TrimSpace(vals[EnvEntity]),
		TestState: strings.TrimSpace(vals[EnvTestState]),
	}
	if s := strings.TrimSpace(vals[EnvSeed]); s != "" {
		seed, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("weatheroverlay: %s: %w", EnvSeed, err)
		}
		cfg.Seed = seed
	}
	if s := strings.TrimSpace(vals[EnvDebug]); s != "" {
		debug, err := strconv.ParseBool(s)
		if err != nil {
			return Config{}, fmt.Errorf("weatheroverlay: %s: %w", EnvDebug, err)
		}
		cfg.Debug = debug
	}
	return cfg, nil
}
