package tiptapify

import (
	"fmt"
	"os"
	"regexp"
	"sync"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"

	"github.com/riverfjs/tiptapify-go/internal/types"
)

// 导出类型别名
type Config = types.Config

var (
	defaultConfig     *Config
	defaultConfigOnce sync.Once
)

// DefaultConfig returns the default configuration (singleton).
// Callers must not modify it; use LoadConfig or a copy instead.
func DefaultConfig() *Config {
	defaultConfigOnce.Do(func() {
		defaultConfig = types.DefaultConfig()
	})
	return defaultConfig
}

var schemeRe = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9+.-]*$`)

// ValidateConfig checks a configuration loaded from outside the program.
func ValidateConfig(c *Config) error {
	return validation.ValidateStruct(c,
		validation.Field(&c.LinkProtocols, validation.Each(validation.Required, validation.Match(schemeRe))),
		validation.Field(&c.MaxGraphemes, validation.Min(0)),
	)
}

// LoadConfig 从 YAML 文件加载配置，先展开环境变量，未设置的字段取默认值
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", filename, err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("config file %s: %w", filename, err)
	}
	return cfg, nil
}

// ParseConfig 解析 YAML 配置内容
func ParseConfig(data []byte) (*Config, error) {
	cfg := types.DefaultConfig()
	expanded := os.ExpandEnv(string(data))
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}
