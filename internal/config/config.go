// Package config layers the command's settings: a YAML file, a .env file
// and SEGUID_* environment variables. Flags are applied on top by the CLI.
package config

import (
	"bytes"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// FileName is the config file looked up in the working directory when
// no path is given.
const FileName = "seguid.yaml"

// EnvPrefix prefixes every environment variable the command reads.
const EnvPrefix = "SEGUID_"

// Settings holds every value that can come from a file or the
// environment. Zero values mean "not set".
type Settings struct {
	Type        string `yaml:"type"`
	Table       string `yaml:"table"`
	MinRotation string `yaml:"min_rotation"`
	Output      string `yaml:"output"`
	Header      bool   `yaml:"header"`
	Threads     int    `yaml:"threads"`
	LogLevel    string `yaml:"log_level"`
}

// Load reads a YAML settings file. Unknown keys are an error.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var s Settings
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && err != io.EOF {
		return nil, errors.Wrapf(err, "parse %s", path)
	}
	if s.Threads < 0 {
		return nil, errors.Errorf("%s: threads must be >= 0, got %d", path, s.Threads)
	}
	return &s, nil
}

// LoadDotEnv exports the variables of a .env file into the process
// environment. Variables already set are left alone; a missing file is not
// an error.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	return errors.Wrapf(godotenv.Load(path), "load %s", path)
}

// FromEnv reads SEGUID_* variables through lookup (os.LookupEnv in
// production).
func FromEnv(lookup func(string) (string, bool)) (Settings, error) {
	var s Settings
	get := func(key string) string {
		v, _ := lookup(EnvPrefix + key)
		return strings.TrimSpace(v)
	}
	s.Type = get("TYPE")
	s.Table = get("TABLE")
	s.MinRotation = get("MIN_ROTATION")
	s.Output = get("OUTPUT")
	s.LogLevel = get("LOG_LEVEL")

	var err error
	if s.Header, err = envBool("HEADER", get("HEADER")); err != nil {
		return Settings{}, err
	}
	if v := get("THREADS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return Settings{}, errors.Errorf("%sTHREADS: want a non-negative integer, got %q", EnvPrefix, v)
		}
		s.Threads = n
	}
	return s, nil
}

func envBool(key, v string) (bool, error) {
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, errors.Errorf("%s%s: want a boolean, got %q", EnvPrefix, key, v)
	}
	return b, nil
}

// Merge returns base with every set field of over applied on top.
func Merge(base, over Settings) Settings {
	if over.Type != "" {
		base.Type = over.Type
	}
	if over.Table != "" {
		base.Table = over.Table
	}
	if over.MinRotation != "" {
		base.MinRotation = over.MinRotation
	}
	if over.Output != "" {
		base.Output = over.Output
	}
	if over.Header {
		base.Header = true
	}
	if over.Threads != 0 {
		base.Threads = over.Threads
	}
	if over.LogLevel != "" {
		base.LogLevel = over.LogLevel
	}
	return base
}
