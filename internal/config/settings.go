package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
)

// DefaultLogFile is where the run log goes unless settings say otherwise.
const DefaultLogFile = "Output.txt"

// Settings is the optional classsort.toml file.
type Settings struct {
	Log    LogConfig    `toml:"log"`
	Match  MatchConfig  `toml:"match"`
	Rename RenameConfig `toml:"rename"`
	Run    RunConfig    `toml:"run"`
}

type LogConfig struct {
	Level  string `toml:"level"`
	File   string `toml:"file"`
	Stderr bool   `toml:"stderr"`
}

type MatchConfig struct {
	Policy string `toml:"policy"`
}

type RenameConfig struct {
	SkipUnparseable bool `toml:"skip_unparseable"`
}

type RunConfig struct {
	DryRun bool `toml:"dry_run"`
}

// DefaultSettings returns the settings used when no settings file exists.
func DefaultSettings() *Settings {
	s := &Settings{}
	s.applyDefaults()
	return s
}

func (s *Settings) applyDefaults() {
	if s.Log.Level == "" {
		s.Log.Level = "info"
	}
	if s.Log.File == "" {
		s.Log.File = DefaultLogFile
	}
	if s.Match.Policy == "" {
		s.Match.Policy = "first"
	}
}

// LoadSettings reads, substitutes, parses and validates a settings file.
func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading settings: %w", err)
	}

	content, missing := substituteEnvVars(string(data))
	if len(missing) > 0 {
		return nil, &ConfigError{Path: path, Missing: missing}
	}

	var s Settings
	if _, err := toml.Decode(content, &s); err != nil {
		return nil, fmt.Errorf("parsing settings: %w", err)
	}
	s.applyDefaults()

	if errs := s.Validate(); len(errs) > 0 {
		return nil, &ConfigError{Path: path, Errors: errs}
	}
	return &s, nil
}

// envVarPattern matches ${VAR}, ${VAR:-default} and ${VAR:?message}.
var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(?:(:-|:\?)([^}]*))?\}`)

// substituteEnvVars replaces environment references and returns the names of
// variables that were unset with no default.
func substituteEnvVars(content string) (string, []string) {
	var missing []string
	out := envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		parts := envVarPattern.FindStringSubmatch(match)
		name, op, arg := parts[1], parts[2], parts[3]

		value, ok := os.LookupEnv(name)
		if ok && value != "" {
			return value
		}
		switch op {
		case ":-":
			return arg
		case ":?":
			missing = append(missing, fmt.Sprintf("%s (%s)", name, strings.TrimSpace(arg)))
			return match
		}
		if ok {
			return value
		}
		missing = append(missing, name)
		return match
	})
	return out, missing
}
