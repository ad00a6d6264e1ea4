package config

import (
	"time"

	"github.com/yuesf/travel/log"
)

// ClientConfig 客户端完整配置（admin 后台与小程序各持一份）
type ClientConfig struct {
	API     APIConfig      `json:"api" mapstructure:"api"`
	Retry   RetryConfig    `json:"retry" mapstructure:"retry"`
	Auth    AuthConfig     `json:"auth" mapstructure:"auth"`
	Storage StorageConfig  `json:"storage" mapstructure:"storage"`
	Log     log.FileConfig `json:"log" mapstructure:"log"`
}

// APIConfig 后端接口配置
type APIConfig struct {
	// BaseURL 接口基础地址，按环境配置
	// 例如 https://travel.example.com/travel/api/v1
	BaseURL string `json:"base_url" mapstructure:"base_url" validate:"required,url"`

	// Timeout 请求超时时间（毫秒）
	Timeout int64 `json:"timeout" mapstructure:"timeout" validate:"gte=0"`

	// VerifyTimeout 登录状态验证请求的超时时间（毫秒）
	// 验证请求是轻量探测，超时应短于普通请求
	VerifyTimeout int64 `json:"verify_timeout" mapstructure:"verify_timeout" validate:"gte=0"`
}

// RetryConfig 传输类错误的重试配置
type RetryConfig struct {
	// MaxRetries 最大重试次数（不含首次请求）
	MaxRetries int `json:"max_retries" mapstructure:"max_retries" validate:"gte=0,lte=10"`

	// RetryDelay 首次重试延迟（毫秒），之后每次翻倍
	RetryDelay int64 `json:"retry_delay" mapstructure:"retry_delay" validate:"gte=0"`
}

// AuthConfig 登录状态缓存配置
type AuthConfig struct {
	// CacheTTL 登录状态缓存有效期（毫秒）。
	// 可选参考值：5分钟 300000 / 30分钟 1800000 / 1小时 3600000 / 1天 86400000。
	// 默认 1 小时，平衡性能和安全性
	CacheTTL int64 `json:"cache_ttl" mapstructure:"cache_ttl" validate:"gte=0"`
}

// StorageConfig 本地存储配置
type StorageConfig struct {
	// Path 本地 KV 存储文件路径
	Path string `json:"path" mapstructure:"path"`
}

// SetDefaults 填充未设置的字段
func (c *ClientConfig) SetDefaults() {
	if c.API.Timeout == 0 {
		c.API.Timeout = 10000
	}
	if c.API.VerifyTimeout == 0 {
		c.API.VerifyTimeout = 5000
	}
	if c.Retry.MaxRetries == 0 {
		c.Retry.MaxRetries = 3
	}
	if c.Retry.RetryDelay == 0 {
		c.Retry.RetryDelay = 1000
	}
	if c.Auth.CacheTTL == 0 {
		c.Auth.CacheTTL = 3600000
	}
	if c.Storage.Path == "" {
		c.Storage.Path = "travel.db"
	}
}

// RequestTimeout API.Timeout 的 time.Duration 形式
func (c *ClientConfig) RequestTimeout() time.Duration {
	return time.Duration(c.API.Timeout) * time.Millisecond
}

// VerifyTimeout API.VerifyTimeout 的 time.Duration 形式
func (c *ClientConfig) VerifyTimeout() time.Duration {
	return time.Duration(c.API.VerifyTimeout) * time.Millisecond
}

// RetryDelay Retry.RetryDelay 的 time.Duration 形式
func (c *ClientConfig) RetryDelay() time.Duration {
	return time.Duration(c.Retry.RetryDelay) * time.Millisecond
}

// AuthCacheTTL Auth.CacheTTL 的 time.Duration 形式
func (c *ClientConfig) AuthCacheTTL() time.Duration {
	return time.Duration(c.Auth.CacheTTL) * time.Millisecond
}
