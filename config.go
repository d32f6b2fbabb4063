// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFileName = ".avlbst.yaml"

type RenderConfig struct {
	ShowValues  bool `yaml:"show_values"`
	ShowBalance bool `yaml:"show_balance"`
	Color       bool `yaml:"color"`
}

type BenchConfig struct {
	Size        int     `yaml:"size"`
	RemoveRatio float64 `yaml:"remove_ratio"`
	Seed        int64   `yaml:"seed"`
	BloomSize   uint    `yaml:"bloom_size"`
	BloomHashes uint    `yaml:"bloom_hashes"`
	Progress    bool    `yaml:"progress"`
}

type ExplorerConfig struct {
	RenderCacheMinutes int `yaml:"render_cache_minutes"`
}

type Config struct {
	Render   RenderConfig   `yaml:"render"`
	Bench    BenchConfig    `yaml:"bench"`
	Explorer ExplorerConfig `yaml:"explorer"`
}

var defaultConfig = Config{
	Render: RenderConfig{
		ShowValues:  false,
		ShowBalance: true,
		Color:       true,
	},
	Bench: BenchConfig{
		Size:        100000,
		RemoveRatio: 0.5,
		Seed:        1,
		BloomSize:   1 << 22,
		BloomHashes: 5,
		Progress:    true,
	},
	Explorer: ExplorerConfig{
		RenderCacheMinutes: 30,
	},
}

// LoadConfig reads ~/.avlbst.yaml, falling back to the defaults when the
// file is missing or cannot be parsed.
func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return defaults(), nil
	}
	return loadConfigFrom(configPath)
}

func loadConfigFrom(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return defaults(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return defaults(), nil
	}

	// Unset keys keep their default values.
	config := defaults()
	if err := yaml.Unmarshal(data, config); err != nil {
		return defaults(), nil
	}
	config.normalize()

	return config, nil
}

func defaults() *Config {
	c := defaultConfig
	return &c
}

// normalize replaces out-of-range values with their defaults.
func (c *Config) normalize() {
	if c.Bench.Size < 0 {
		c.Bench.Size = defaultConfig.Bench.Size
	}
	if c.Bench.RemoveRatio < 0 || c.Bench.RemoveRatio > 1 {
		c.Bench.RemoveRatio = defaultConfig.Bench.RemoveRatio
	}
	if c.Bench.BloomSize == 0 {
		c.Bench.BloomSize = defaultConfig.Bench.BloomSize
	}
	if c.Bench.BloomHashes == 0 {
		c.Bench.BloomHashes = defaultConfig.Bench.BloomHashes
	}
	if c.Explorer.RenderCacheMinutes <= 0 {
		c.Explorer.RenderCacheMinutes = defaultConfig.Explorer.RenderCacheMinutes
	}
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

func createDefaultConfigFile(configPath string) error {
	data, err := yaml.Marshal(&defaultConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}

	err = os.WriteFile(configPath, data, 0644)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func displaySettings() {
	configPath, err := getConfigPath()
	if err != nil {
		fmt.Printf("❌ Failed to get config path: %v\n", err)
		return
	}

	configExists := true
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configExists = false
		fmt.Printf("📝 Configuration file not found. Creating default configuration...\n\n")

		if err := createDefaultConfigFile(configPath); err != nil {
			fmt.Printf("❌ Failed to create default config file: %v\n", err)
			return
		}
		fmt.Printf("✅ Created default configuration at: %s\n\n", configPath)
	}

	config, err := loadConfigFrom(configPath)
	if err != nil {
		fmt.Printf("❌ Failed to load configuration: %v\n", err)
		return
	}

	fmt.Printf("🔧 avlbst Configuration Settings\n")
	fmt.Printf("═══════════════════════════════════\n\n")

	if configExists {
		fmt.Printf("📍 Config file: %s\n", configPath)
	} else {
		fmt.Printf("📍 Config file: %s (newly created)\n", configPath)
	}

	fmt.Printf("📊 Current settings:\n\n")

	fmt.Printf("🌳 %sRendering:%s\n", Green, Reset)
	fmt.Printf("  • %sshow_values%s: %t\n", Green, Reset, config.Render.ShowValues)
	fmt.Printf("  • %sshow_balance%s: %t\n", Green, Reset, config.Render.ShowBalance)
	fmt.Printf("  • %scolor%s: %t\n\n", Green, Reset, config.Render.Color)

	fmt.Printf("⏱  %sBenchmark:%s\n", Green, Reset)
	fmt.Printf("  • %ssize%s: %d\n", Green, Reset, config.Bench.Size)
	fmt.Printf("  • %sremove_ratio%s: %.2f\n", Green, Reset, config.Bench.RemoveRatio)
	fmt.Printf("  • %sseed%s: %d\n", Green, Reset, config.Bench.Seed)
	fmt.Printf("  • %sbloom_size%s: %d bits, %d hashes\n", Green, Reset, config.Bench.BloomSize, config.Bench.BloomHashes)
	fmt.Printf("  • %sprogress%s: %t\n\n", Green, Reset, config.Bench.Progress)

	fmt.Printf("🔭 %sExplorer:%s\n", Green, Reset)
	fmt.Printf("  • %srender_cache_minutes%s: %d\n\n", Green, Reset, config.Explorer.RenderCacheMinutes)

	fmt.Printf("💡 Edit %s to change these values.\n", configPath)
}
