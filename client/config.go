package client

import (
	"net/url"
	"time"

	"github.com/yuesf/travel/config"
)

// Config 请求客户端配置
type Config struct {
	// BaseURL 接口基础地址，按环境配置
	BaseURL string `validate:"required,url"`

	// Timeout 请求超时时间，默认 10s
	Timeout time.Duration `validate:"gte=0"`

	// MaxRetries 传输类错误的最大重试次数（不含首次请求），默认 3
	MaxRetries int `validate:"gte=0,lte=10"`

	// RetryDelay 首次重试延迟，之后每次翻倍，默认 1s
	RetryDelay time.Duration `validate:"gte=0"`
}

// setDefaults 填充未设置的字段
func (c *Config) setDefaults() {
	if c.Timeout == 0 {
		c.Timeout = 10 * time.Second
	}
	if c.MaxRetries == 0 {
		c.MaxRetries = 3
	}
	if c.RetryDelay == 0 {
		c.RetryDelay = time.Second
	}
}

// FromClientConfig 从配置文件结构体构建客户端配置
func FromClientConfig(cc *config.ClientConfig) Config {
	return Config{
		BaseURL:    cc.API.BaseURL,
		Timeout:    cc.RequestTimeout(),
		MaxRetries: cc.Retry.MaxRetries,
		RetryDelay: cc.RetryDelay(),
	}
}

// RequestConfig 单次请求的配置。
// 显式字段和文档化的默认值，替代动态的 options 对象
type RequestConfig struct {
	// Path 请求路径。以 http(s) 开头时按绝对地址使用，
	// 否则与 BaseURL 拼接
	Path string

	// Method HTTP 方法，默认 GET
	Method string

	// Body 请求体，JSON 序列化后发送；
	// []byte 按原始字节发送，Content-Type 由 Header 指定
	Body any

	// Query 查询参数，拼接到 URL
	Query url.Values

	// Header 附加请求头
	Header map[string]string

	// NeedAuth 是否需要登录态，nil 表示默认 true
	NeedAuth *bool

	// ShowLoading 是否触发加载提示钩子，nil 表示默认 true
	ShowLoading *bool

	// ShowError 是否触发错误提示钩子，nil 表示默认 true
	ShowError *bool

	// Timeout 超时覆盖，0 表示使用客户端默认
	Timeout time.Duration
}

// Bool 构造 *bool，用于 RequestConfig 的三态开关字段
func Bool(b bool) *bool {
	return &b
}

// boolOr 取三态开关的值，nil 时返回默认值
func boolOr(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}
