package client

import (
	"context"
	"time"

	"github.com/yuesf/travel/errors"
)

// retry 按固定预算重试 fn。
// 只重试传输类错误（超时、网络不可达），业务错误立即返回；
// 延迟从 RetryDelay 开始每次翻倍，等待期间响应 ctx 取消。
// 重试预算在整个调用内共享，不随请求成功与否重置
func (c *Client) retry(ctx context.Context, path string, fn func() ([]byte, error)) ([]byte, error) {
	delay := c.cfg.RetryDelay

	for attempt := 0; ; attempt++ {
		data, err := fn()
		if err == nil {
			return data, nil
		}

		if !errors.Temporary(err) || attempt >= c.cfg.MaxRetries {
			return nil, err
		}

		c.logger.Warn().
			Err(err).
			Str("path", path).
			Int("attempt", attempt+1).
			Dur("delay", delay).
			Msg("transient request failure, retrying")

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, errors.Timeout(ctx.Err())
		case <-timer.C:
		}
		delay *= 2
	}
}
