package auth

import (
	"strings"
	"sync"

	"github.com/yuesf/travel/log"
	"github.com/yuesf/travel/storage"
)

// statusInvalidator Manager 对登录状态缓存的回调。
// 由 StatusCache 在构造时注册，避免两个包互相依赖
type statusInvalidator interface {
	MarkValid()
	Clear()
}

// Manager 管理会话凭证的生命周期。
// 凭证由 Manager 独占持有，持久层只保存其序列化形式；
// UI 侧不直接改写凭证，只通过这里的操作
type Manager struct {
	store    storage.Store
	tokenKey string
	logger   *log.Logger

	mu     sync.RWMutex
	status statusInvalidator
}

// ManagerOption Manager 选项函数
type ManagerOption func(*Manager)

// WithTokenKey 设置凭证的存储键。
// admin 后台使用 storage.KeyToken，小程序使用 storage.KeySessionID
func WithTokenKey(key string) ManagerOption {
	return func(m *Manager) {
		m.tokenKey = key
	}
}

// WithManagerLogger 设置日志记录器
func WithManagerLogger(logger *log.Logger) ManagerOption {
	return func(m *Manager) {
		m.logger = logger
	}
}

// NewManager 创建会话管理器
func NewManager(store storage.Store, opts ...ManagerOption) *Manager {
	m := &Manager{
		store:    store,
		tokenKey: storage.KeyToken,
		logger:   log.G,
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// bindStatus 注册登录状态缓存，由 StatusCache 构造时调用
func (m *Manager) bindStatus(s statusInvalidator) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.status = s
}

// Token 返回当前凭证，没有或读取失败返回空串
func (m *Manager) Token() string {
	var token string
	if ok, err := m.store.Get(m.tokenKey, &token); !ok || err != nil {
		if err != nil {
			m.logger.Warn().Err(err).Msg("failed to read token from storage")
		}
		return ""
	}
	return token
}

// SetToken 持久化凭证，并乐观地将登录状态缓存标记为有效，
// 避免登录成功后紧接着再发一次验证请求
func (m *Manager) SetToken(token string) error {
	if err := m.store.Set(m.tokenKey, token); err != nil {
		return err
	}

	m.mu.RLock()
	status := m.status
	m.mu.RUnlock()
	if status != nil {
		status.MarkValid()
	}
	return nil
}

// ClearToken 删除凭证和用户资料缓存，并立即清空登录状态缓存。
// 所有操作尽力执行，不因单步失败中断
func (m *Manager) ClearToken() {
	if err := m.store.Remove(m.tokenKey); err != nil {
		m.logger.Warn().Err(err).Msg("failed to remove token from storage")
	}
	m.ClearUserInfo()

	m.mu.RLock()
	status := m.status
	m.mu.RUnlock()
	if status != nil {
		status.Clear()
	}
}

// Logout 退出登录，等价于 ClearToken
func (m *Manager) Logout() {
	m.ClearToken()
}

// IsLoggedIn 本地是否持有非空凭证。
// 只是本地检查，不代表凭证仍被服务端接受
func (m *Manager) IsLoggedIn() bool {
	return strings.TrimSpace(m.Token()) != ""
}

// UserInfo 返回缓存的用户资料，没有或读取失败返回 nil
func (m *Manager) UserInfo() *UserInfo {
	var info UserInfo
	if ok, err := m.store.Get(storage.KeyUserInfo, &info); !ok || err != nil {
		return nil
	}
	return &info
}

// SetUserInfo 缓存用户资料
func (m *Manager) SetUserInfo(info *UserInfo) error {
	return m.store.Set(storage.KeyUserInfo, info)
}

// ClearUserInfo 删除缓存的用户资料
func (m *Manager) ClearUserInfo() {
	if err := m.store.Remove(storage.KeyUserInfo); err != nil {
		m.logger.Warn().Err(err).Msg("failed to remove user info from storage")
	}
}
