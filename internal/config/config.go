package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"

	"github.com/pelletier/go-toml/v2"
)

const FileName = "aoc.toml"

type Config struct {
	InputDir  string  `toml:"input_dir"`
	InputGlob string  `toml:"input_glob"`
	Answers   string  `toml:"answers"`
	Workers   int     `toml:"workers"`
	Days      []int   `toml:"days"`
	Output    *Output `toml:"output"`
}

type Output struct {
	Format string `toml:"format"`
	Timing bool   `toml:"timing"`
}

func Default() *Config {
	return &Config{
		InputDir:  "inputs",
		InputGlob: "**/day*.txt",
		Answers:   "answers.toml",
		Workers:   runtime.NumCPU(),
		Days:      []int{},
		Output:    &Output{Format: "default", Timing: true},
	}
}

// ReadConfig loads aoc.toml from dir. A missing file yields the defaults; a
// broken one yields the defaults together with the error.
func ReadConfig(dir string) (*Config, error) {
	defaultConfig := Default()

	fileName := filepath.Join(dir, FileName)
	if _, err := os.Stat(fileName); errors.Is(err, os.ErrNotExist) {
		return defaultConfig, nil
	}
	file, err := os.ReadFile(fileName)
	if err != nil {
		return defaultConfig, err
	}
	config := Default()
	err = toml.Unmarshal(file, config)
	if err != nil {
		return defaultConfig, err
	}
	if config.Output == nil {
		config.Output = defaultConfig.Output
	}
	if config.Workers <= 0 {
		config.Workers = defaultConfig.Workers
	}
	if config.InputDir == "" {
		config.InputDir = defaultConfig.InputDir
	}
	if config.InputGlob == "" {
		config.InputGlob = defaultConfig.InputGlob
	}
	return config, nil
}

// Resolve makes a path from the config relative to dir unless it is absolute.
func Resolve(dir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}
