package client

import (
	"net/http"

	"golang.org/x/time/rate"

	"github.com/yuesf/travel/log"
)

// Option 客户端选项函数
type Option func(*Client)

// WithHTTPClient 设置底层 HTTP 客户端
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithHooks 设置 UI 副作用钩子
func WithHooks(hooks Hooks) Option {
	return func(c *Client) {
		c.hooks = hooks
	}
}

// WithLogger 设置日志记录器
func WithLogger(logger *log.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithMetrics 启用请求指标采集
func WithMetrics(m *Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// WithRateLimit 启用客户端侧限流，r 为每秒令牌数
func WithRateLimit(r rate.Limit, burst int) Option {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(r, burst)
	}
}
