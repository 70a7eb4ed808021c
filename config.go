// Package main - config.go
//
// Configuration management for timelist.
//
// This file handles the optional ~/.timelist.yaml file, which can override
// the second display zone and add user phrase substitutions on top of the
// built-in table. A missing file leaves the defaults untouched. It provides
// the function to determine the effective zone from flag, config, or default.

package main

import (
	"os"
	"os/user"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

const (
	configFileName  = ".timelist.yaml"
	defaultZoneName = "Europe/London"
)

// Config stores the user's display and normalization preferences
type Config struct {
	Zone    string            `yaml:"zone"`
	Phrases map[string]string `yaml:"phrases"`
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	usr, err := user.Current()
	if err != nil {
		return "", err
	}
	return filepath.Join(usr.HomeDir, configFileName), nil
}

// loadConfig loads the configuration from disk
func loadConfig() (*Config, error) {
	path, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	return &config, nil
}

// saveConfig saves the configuration to disk
func saveConfig(config *Config) error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}

// determineZone returns the IANA zone name to use for the second display zone
func determineZone(flagValue string, config *Config) string {
	if flagValue != "" {
		return flagValue
	}
	if config != nil && config.Zone != "" {
		return config.Zone
	}
	return defaultZoneName
}

// configPhrases returns the user's extra substitutions ordered longest
// phrase first, so a user phrase can never partially shadow a longer one.
func configPhrases(config *Config) []phrase {
	if config == nil || len(config.Phrases) == 0 {
		return nil
	}
	phrases := make([]phrase, 0, len(config.Phrases))
	for match, replacement := range config.Phrases {
		phrases = append(phrases, phrase{match, replacement})
	}
	sort.Slice(phrases, func(i, j int) bool {
		if len(phrases[i].match) != len(phrases[j].match) {
			return len(phrases[i].match) > len(phrases[j].match)
		}
		return phrases[i].match < phrases[j].match
	})
	return phrases
}
