package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix        = "APP_"
	defaultConfigDir = "configs"
	baseProfile      = "base"
)

// Option configures Load.
type Option func(*loader)

// WithConfigDir points Load at a directory holding base.yaml and the
// profile files. The default is "configs" under the working directory.
func WithConfigDir(dir string) Option {
	return func(l *loader) {
		l.dir = dir
	}
}

type loader struct {
	dir string
	k   *koanf.Koanf
}

// Load builds the board's configuration. Later layers win:
//
//	defaults < {dir}/base.yaml < {dir}/{profile}.yaml < APP_* environment
//
// Environment names are matched against the keys already known from the
// earlier layers, so underscores inside a key survive:
//
//	APP_BOARD_FORM_MAX_PEOPLE     -> board.form.max_people
//	APP_PUBLISHER_QUEUE_SIZE      -> publisher.queue_size
//	APP_CLIENT_RETRY_MAX_ATTEMPTS -> client.retry.max_attempts
//
// Names with no known key fall back to one dot per underscore.
func Load(profile string, opts ...Option) (*Config, error) {
	if err := checkProfileName(profile); err != nil {
		return nil, err
	}

	l := &loader{dir: defaultConfigDir, k: koanf.New(".")}
	for _, opt := range opts {
		opt(l)
	}

	if err := l.seed(defaults()); err != nil {
		return nil, err
	}
	for _, name := range []string{baseProfile, profile} {
		if err := l.yamlFile(name); err != nil {
			return nil, err
		}
	}
	if err := l.environment(); err != nil {
		return nil, err
	}

	cfg := new(Config)
	if err := l.k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s config: %w", profile, err)
	}
	return cfg, nil
}

func (l *loader) seed(values map[string]any) error {
	for key, value := range values {
		if err := l.k.Set(key, value); err != nil {
			return fmt.Errorf("default %s: %w", key, err)
		}
	}
	return nil
}

func (l *loader) yamlFile(name string) error {
	path := filepath.Join(l.dir, name+".yaml")
	if err := l.k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	return nil
}

func (l *loader) environment() error {
	known := envKeys(l.k.Keys())
	provider := env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(name, value string) (string, any) {
			name = strings.ToLower(strings.TrimPrefix(name, envPrefix))
			if key, ok := known[name]; ok {
				return key, value
			}
			return strings.ReplaceAll(name, "_", "."), value
		},
	})
	if err := l.k.Load(provider, nil); err != nil {
		return fmt.Errorf("reading %s* environment: %w", envPrefix, err)
	}
	return nil
}

// checkProfileName rejects names that could escape the config directory.
func checkProfileName(profile string) error {
	switch {
	case strings.TrimSpace(profile) == "":
		return errors.New("config profile is empty")
	case strings.ContainsAny(profile, `/\`), strings.Contains(profile, ".."):
		return fmt.Errorf("config profile %q is not a plain name", profile)
	}
	return nil
}

// envKeys maps "board_form_max_people" to "board.form.max_people" for every
// loaded key.
func envKeys(keys []string) map[string]string {
	m := make(map[string]string, len(keys))
	for _, key := range keys {
		m[strings.ReplaceAll(key, ".", "_")] = key
	}
	return m
}
