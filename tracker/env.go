package tracker

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables that override the configuration file
const (
	EnvLatitude        = "SUNPOS_LATITUDE"
	EnvLongitude       = "SUNPOS_LONGITUDE"
	EnvTimezoneOffset  = "SUNPOS_TIMEZONE_OFFSET"
	EnvRefreshInterval = "SUNPOS_REFRESH_INTERVAL"
	EnvRefraction      = "SUNPOS_REFRACTION"
)

// ApplyEnv overrides config values from the process environment and from the
// given .env files (".env" when none are given). Process variables take
// precedence over file entries; missing files are ignored.
func ApplyEnv(c *Config, filenames ...string) error {
	if len(filenames) == 0 {
		filenames = []string{".env"}
	}

	fileVars := map[string]string{}
	for _, name := range filenames {
		vars, err := godotenv.Read(name)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to read env file %s: %w", name, err)
		}
		for k, v := range vars {
			fileVars[k] = v
		}
	}

	getenv := func(key string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		return fileVars[key]
	}

	if v := getenv(EnvLatitude); v != "" {
		lat, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvLatitude, err)
		}
		c.Latitude = lat
	}

	if v := getenv(EnvLongitude); v != "" {
		lon, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvLongitude, err)
		}
		c.Longitude = lon
	}

	if v := getenv(EnvTimezoneOffset); v != "" {
		tz, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvTimezoneOffset, err)
		}
		c.TimezoneOffset = &tz
	}

	if v := getenv(EnvRefreshInterval); v != "" {
		interval, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvRefreshInterval, err)
		}
		c.RefreshInterval = interval
	}

	if v := getenv(EnvRefraction); v != "" {
		refraction, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvRefraction, err)
		}
		c.Refraction = refraction
	}

	return c.Validate()
}
