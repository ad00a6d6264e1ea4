package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/yuesf/travel/log"
)

// DefaultTTL 登录状态缓存的默认有效期。
// 可选参考值：5分钟 / 30分钟 / 1小时 / 1天；默认 1 小时，平衡性能和安全性
const DefaultTTL = time.Hour

// singleflight 的共享键：每个缓存实例同一时刻至多一个验证请求在途
const checkKey = "check"

// Verifier 调用后端验证当前凭证是否有效。
// 返回 (valid, nil) 表示服务端给出了明确结论；
// 返回 err != nil 表示验证本身失败（网络错误等），结论未知
type Verifier func(ctx context.Context, token string) (bool, error)

// StatusCache 登录状态缓存。
// 避免每个请求都对后端做一次验证往返，同时在 TTL 窗口内
// 仍能发现服务端侧的会话失效（他端登出、管理端吊销、自然过期）。
// 显式构造、显式注入，不做包级单例，测试可各自实例化
type StatusCache struct {
	mgr     *Manager
	verify  Verifier
	ttl     time.Duration
	now     func() time.Time
	logger  *log.Logger
	expired func(token string) bool // 可选的本地快速过期判断

	group singleflight.Group

	mu        sync.Mutex
	valid     bool
	checkedAt time.Time
}

// StatusOption StatusCache 选项函数
type StatusOption func(*StatusCache)

// WithTTL 设置缓存有效期
func WithTTL(ttl time.Duration) StatusOption {
	return func(s *StatusCache) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// WithClock 设置时间源，测试用
func WithClock(now func() time.Time) StatusOption {
	return func(s *StatusCache) {
		s.now = now
	}
}

// WithStatusLogger 设置日志记录器
func WithStatusLogger(logger *log.Logger) StatusOption {
	return func(s *StatusCache) {
		s.logger = logger
	}
}

// WithLocalExpiry 设置本地快速过期判断。
// 凭证本身带过期时间时（如 admin 的 JWT），命中后无需网络即可判定失效
func WithLocalExpiry(fn func(token string) bool) StatusOption {
	return func(s *StatusCache) {
		s.expired = fn
	}
}

// NewStatusCache 创建登录状态缓存并注册到会话管理器
func NewStatusCache(mgr *Manager, verify Verifier, opts ...StatusOption) *StatusCache {
	s := &StatusCache{
		mgr:    mgr,
		verify: verify,
		ttl:    DefaultTTL,
		now:    time.Now,
		logger: log.G,
	}

	for _, opt := range opts {
		opt(s)
	}

	mgr.bindStatus(s)
	return s
}

// Check 检查登录状态是否有效。
//
// 流程：本地无凭证直接返回 false；缓存新鲜时直接命中；
// 已有验证请求在途时共享同一结果（页面 onShow 等生命周期回调
// 常在同一拍内多处并发触发检查）；否则发起一次轻量验证。
// 服务端明确判定无效时清除本地会话；验证本身失败（网络错误等）
// 返回 (false, err)，不动缓存也不登出，由调用方决定放行还是阻断
func (s *StatusCache) Check(ctx context.Context, force bool) (bool, error) {
	token := strings.TrimSpace(s.mgr.Token())
	if token == "" {
		s.Clear()
		return false, nil
	}

	if s.expired != nil && s.expired(token) {
		s.invalidate()
		return false, nil
	}

	if !force && s.fresh() {
		return true, nil
	}

	result, err, _ := s.group.Do(checkKey, func() (any, error) {
		valid, verr := s.verify(ctx, token)
		if verr != nil {
			s.logger.Warn().Err(verr).Msg("auth status verification failed")
			return false, verr
		}

		if valid {
			s.MarkValid()
		} else {
			s.invalidate()
		}
		return valid, nil
	})
	if err != nil {
		return false, err
	}

	return result.(bool), nil
}

// fresh 判断缓存是否新鲜且为有效状态
func (s *StatusCache) fresh() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.valid && s.now().Sub(s.checkedAt) < s.ttl
}

// invalidate 缓存无效结论并清除本地会话
func (s *StatusCache) invalidate() {
	s.mu.Lock()
	s.valid = false
	s.checkedAt = s.now()
	s.mu.Unlock()

	s.mgr.ClearToken()
}

// MarkValid 将缓存标记为有效（登录成功后由 Manager 调用）
func (s *StatusCache) MarkValid() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.valid = true
	s.checkedAt = s.now()
}

// Clear 立即清空缓存（登出或收到 401 时调用，不等自然过期）
func (s *StatusCache) Clear() {
	s.mu.Lock()
	s.valid = false
	s.checkedAt = time.Time{}
	s.mu.Unlock()

	s.group.Forget(checkKey)
}

// NewVerifier 创建基于 HTTP 的 Verifier。
// 直接使用裸 http.Client 调用轻量的"我是谁"接口，
// 不经过请求客户端自身的鉴权包装，避免循环依赖
func NewVerifier(baseURL, path string, scheme Scheme, timeout time.Duration) Verifier {
	httpClient := &http.Client{Timeout: timeout}
	url := strings.TrimRight(baseURL, "/") + path

	return func(ctx context.Context, token string) (bool, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return false, err
		}
		req.Header.Set("Content-Type", "application/json")
		scheme.Apply(req.Header, token)

		resp, err := httpClient.Do(req)
		if err != nil {
			return false, err
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			// 401 或其他 HTTP 错误都视为会话无效
			return false, nil
		}

		var envelope struct {
			Code int `json:"code"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
			return false, fmt.Errorf("decode verify response: %w", err)
		}

		return envelope.Code == 200, nil
	}
}
