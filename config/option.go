package config

import (
	"github.com/spf13/viper"

	tvalidator "github.com/yuesf/travel/validator"
)

// Option Config 选项函数
type Option func(*Config)

// WithViper 设置自定义 viper 实例
func WithViper(v *viper.Viper) Option {
	return func(c *Config) {
		c.viper = v
	}
}

// WithValidator 设置自定义校验器
func WithValidator(v tvalidator.Validator) Option {
	return func(c *Config) {
		c.validate = v
	}
}

// WithLoader 设置配置加载器
func WithLoader(loader Loader) Option {
	return func(c *Config) {
		c.loader = loader
	}
}
