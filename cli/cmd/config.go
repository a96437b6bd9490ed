package cmd

import (
	"os"
	"path"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Include []string `yaml:"include"`
	NoColor bool     `yaml:"nocolor"`
}

func LoadConfig() (Config, error) {
	var result Config

	configFilename := path.Join(directory, "sonic.yaml")
	if _, err := os.Stat(configFilename); os.IsNotExist(err) {
		return Config{}, errors.New("no sonic.yaml found in " + directory)
	}

	b, err := os.ReadFile(configFilename)
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(b, &result); err != nil {
		return Config{}, errors.Wrap(err, "parsing sonic.yaml")
	}
	return result, nil
}

// resolveFiles returns args verbatim when given, and otherwise expands
// the include globs from sonic.yaml relative to the --directory flag.
func resolveFiles(args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	config, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	if config.NoColor {
		noColor = true
	}
	var files []string
	for _, pattern := range config.Include {
		matches, err := filepath.Glob(path.Join(directory, pattern))
		if err != nil {
			return nil, errors.Wrapf(err, "bad include pattern %q", pattern)
		}
		files = append(files, matches...)
	}
	if len(files) == 0 {
		return nil, errors.New("no files matched the include globs in sonic.yaml")
	}
	return files, nil
}
