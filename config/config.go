package config

import (
	"sync"

	"github.com/spf13/viper"

	"github.com/yuesf/travel/log"
	tvalidator "github.com/yuesf/travel/validator"
)

// Config 管理客户端配置的加载与热更新
type Config struct {
	mu       sync.RWMutex         // 保护 target 的并发访问
	viper    *viper.Viper         // viper 实例
	validate tvalidator.Validator // 配置校验器
	target   any                  // 配置反序列化的目标结构体
	loader   Loader               // 配置加载器
}

// New 创建 Config 实例。
// 未指定 loader 时默认从当前目录的 config.yaml 加载
func New(target any, opts ...Option) *Config {
	c := &Config{
		viper:    viper.New(),
		validate: tvalidator.Validate,
		target:   target,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.loader == nil {
		c.loader = NewFileLoader("config.yaml", []string{"."}, c.viper, c.validate)
	}

	return c
}

// Load 通过配置的加载器读取配置
func (c *Config) Load() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.loader.Load(c.target)
}

// Watch 监听配置变更并自动重载
func (c *Config) Watch() error {
	return c.loader.Watch(func() {
		log.Info().Msg("config change detected")

		if err := c.Load(); err != nil {
			log.Error().Err(err).Msg("failed to reload config after change")
			return
		}

		log.Info().Msg("config reloaded successfully")
	})
}

// GetViper 返回底层 viper 实例
func (c *Config) GetViper() *viper.Viper {
	return c.viper
}
