package tracker

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/devskill-org/sunpos/solar"
)

// Horizon names accepted in the configuration
const (
	HorizonOfficial = "official"
	HorizonCivil    = "civil"
)

// Config represents the configuration for the solar tracker
type Config struct {
	// Observer location
	Latitude  float64 `json:"latitude"`  // Latitude in decimal degrees, north positive
	Longitude float64 `json:"longitude"` // Longitude in decimal degrees, east positive

	// Computation settings
	Refraction     bool   `json:"refraction"`                // Apply atmospheric refraction to elevation
	Horizon        string `json:"horizon"`                   // Sunrise/sunset horizon: official, civil
	TimezoneOffset *int   `json:"timezone_offset,omitempty"` // Fixed UTC offset in hours (nil = system zone)

	// Display settings
	RefreshInterval time.Duration `json:"refresh_interval"` // How often to recompute and redraw
	ShowReference   bool          `json:"show_reference"`   // Show the cross-check against reference libraries

	// Logging settings
	LogLevel string `json:"log_level"` // Log level: debug, info, warn, error
}

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	return &Config{
		Latitude:        56.9496, // Riga, Latvia
		Longitude:       24.1052, // Riga, Latvia
		Refraction:      true,
		Horizon:         HorizonOfficial,
		RefreshInterval: 300 * time.Millisecond,
		ShowReference:   false,
		LogLevel:        "info",
	}
}

// LoadConfig loads configuration from a JSON file
func LoadConfig(filename string) (*Config, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	return LoadConfigFromReader(file)
}

// LoadConfigFromReader loads configuration from an io.Reader
func LoadConfigFromReader(reader io.Reader) (*Config, error) {
	config := DefaultConfig()

	decoder := json.NewDecoder(reader)
	if err := decoder.Decode(config); err != nil {
		return nil, fmt.Errorf("failed to decode config JSON: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// SaveConfig saves the configuration to a JSON file
func (c *Config) SaveConfig(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer file.Close()

	return c.SaveConfigToWriter(file)
}

// SaveConfigToWriter saves the configuration to an io.Writer
func (c *Config) SaveConfigToWriter(writer io.Writer) error {
	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("failed to encode config JSON: %w", err)
	}

	return nil
}

// Validate checks if the configuration values are valid
func (c *Config) Validate() error {
	if err := c.Location().Validate(); err != nil {
		return err
	}

	if c.Horizon != HorizonOfficial && c.Horizon != HorizonCivil {
		return fmt.Errorf("invalid horizon: %s, must be one of: %s, %s", c.Horizon, HorizonOfficial, HorizonCivil)
	}

	if c.TimezoneOffset != nil && (*c.TimezoneOffset < -12 || *c.TimezoneOffset > 14) {
		return fmt.Errorf("timezone_offset must be between -12 and 14, got: %d", *c.TimezoneOffset)
	}

	if c.RefreshInterval <= 0 {
		return fmt.Errorf("refresh_interval must be greater than 0, got: %s", c.RefreshInterval)
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log_level: %s, must be one of: debug, info, warn, error", c.LogLevel)
	}

	return nil
}

// Location returns the configured observer location
func (c *Config) Location() solar.GeoLocation {
	return solar.GeoLocation{Latitude: c.Latitude, Longitude: c.Longitude}
}

// Zenith returns the sunrise/sunset horizon selected by Horizon
func (c *Config) Zenith() solar.Zenith {
	if c.Horizon == HorizonCivil {
		return solar.ZenithCivil
	}
	return solar.ZenithOfficial
}

// MarshalJSON implements custom JSON marshaling to handle durations
func (c *Config) MarshalJSON() ([]byte, error) {
	type Alias Config
	return json.Marshal(&struct {
		*Alias
		RefreshInterval string `json:"refresh_interval"`
	}{
		Alias:           (*Alias)(c),
		RefreshInterval: c.RefreshInterval.String(),
	})
}

// UnmarshalJSON implements custom JSON unmarshaling to handle durations.
// Coordinates may be given as numbers or as numeric strings.
func (c *Config) UnmarshalJSON(data []byte) error {
	type Alias Config
	aux := &struct {
		*Alias
		Latitude        json.RawMessage `json:"latitude"`
		Longitude       json.RawMessage `json:"longitude"`
		RefreshInterval string          `json:"refresh_interval"`
	}{
		Alias: (*Alias)(c),
	}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	var err error
	if len(aux.Latitude) > 0 {
		if c.Latitude, err = parseCoordinate(aux.Latitude); err != nil {
			return fmt.Errorf("invalid latitude: %w", err)
		}
	}

	if len(aux.Longitude) > 0 {
		if c.Longitude, err = parseCoordinate(aux.Longitude); err != nil {
			return fmt.Errorf("invalid longitude: %w", err)
		}
	}

	if aux.RefreshInterval != "" {
		if c.RefreshInterval, err = time.ParseDuration(aux.RefreshInterval); err != nil {
			return fmt.Errorf("invalid refresh_interval: %w", err)
		}
	}

	return nil
}

// String returns a string representation of the config
func (c *Config) String() string {
	data, _ := json.MarshalIndent(c, "", "  ")
	return string(data)
}

func parseCoordinate(raw json.RawMessage) (float64, error) {
	s := strings.TrimSpace(string(raw))
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = strings.TrimSpace(unquoted)
	}
	return strconv.ParseFloat(s, 64)
}
