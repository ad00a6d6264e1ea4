// Package travel 旅游平台客户端 SDK。
// 两个前端各自组装一套实例：小程序走微信 session 机制，
// 管理后台走 Bearer JWT。包内只做装配，能力都在各子包
package travel

import (
	"github.com/yuesf/travel/api"
	"github.com/yuesf/travel/api/admin"
	"github.com/yuesf/travel/auth"
	"github.com/yuesf/travel/client"
	"github.com/yuesf/travel/config"
	"github.com/yuesf/travel/storage"
)

// App 一个前端实例的完整客户端栈
type App struct {
	Store  storage.Store
	Auth   *auth.Manager
	Status *auth.StatusCache
	Client *client.Client

	// API 小程序端接口，仅 NewMiniApp 填充
	API *api.API
	// Admin 管理后台接口，仅 NewAdmin 填充
	Admin *admin.Admin
}

// Close 关闭本地存储，排空未落盘的异步写入
func (a *App) Close() error {
	return a.Store.Close()
}

// NewMiniApp 组装小程序端客户端栈。
// 凭证为服务端下发的 sessionId，随 X-Session-Id 头携带
func NewMiniApp(cfg *config.ClientConfig, opts ...client.Option) (*App, error) {
	cfg.SetDefaults()

	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		return nil, err
	}

	scheme := auth.SessionScheme{}
	mgr := auth.NewManager(store, auth.WithTokenKey(storage.KeySessionID))
	status := auth.NewStatusCache(mgr,
		auth.NewVerifier(cfg.API.BaseURL, "/miniprogram/auth/info", scheme, cfg.VerifyTimeout()),
		auth.WithTTL(cfg.AuthCacheTTL()),
	)

	c, err := client.New(client.FromClientConfig(cfg), mgr, status, scheme, opts...)
	if err != nil {
		store.Close()
		return nil, err
	}

	return &App{
		Store:  store,
		Auth:   mgr,
		Status: status,
		Client: c,
		API:    api.New(c, mgr, storage.NewTyped(store)),
	}, nil
}

// NewAdmin 组装管理后台客户端栈。
// 凭证为 JWT，随 Authorization: Bearer 头携带，
// 本地先按 exp 判断过期，免一次验证往返
func NewAdmin(cfg *config.ClientConfig, opts ...client.Option) (*App, error) {
	cfg.SetDefaults()

	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		return nil, err
	}

	scheme := auth.BearerScheme{}
	mgr := auth.NewManager(store)
	status := auth.NewStatusCache(mgr,
		auth.NewVerifier(cfg.API.BaseURL, "/admin/auth/info", scheme, cfg.VerifyTimeout()),
		auth.WithTTL(cfg.AuthCacheTTL()),
		auth.WithLocalExpiry(auth.JWTExpired),
	)

	c, err := client.New(client.FromClientConfig(cfg), mgr, status, scheme, opts...)
	if err != nil {
		store.Close()
		return nil, err
	}

	return &App{
		Store:  store,
		Auth:   mgr,
		Status: status,
		Client: c,
		Admin:  admin.New(c, mgr),
	}, nil
}
