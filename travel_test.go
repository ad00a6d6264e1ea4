package travel

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yuesf/travel/api"
	"github.com/yuesf/travel/auth"
	"github.com/yuesf/travel/config"
)

func testConfig(t *testing.T, baseURL string) *config.ClientConfig {
	t.Helper()
	return &config.ClientConfig{
		API:     config.APIConfig{BaseURL: baseURL},
		Storage: config.StorageConfig{Path: filepath.Join(t.TempDir(), "travel.db")},
	}
}

func TestMiniAppLoginRoundTrip(t *testing.T) {
	var gotSession string
	mux := http.NewServeMux()
	mux.HandleFunc("POST /miniprogram/auth/login", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"code": 200, "message": "success",
			"data": api.LoginResult{
				SessionID: "sess-roundtrip",
				UserInfo:  &auth.UserInfo{ID: 1, Nickname: "旅行者"},
			},
		})
	})
	mux.HandleFunc("GET /miniprogram/orders/statistics", func(w http.ResponseWriter, r *http.Request) {
		gotSession = r.Header.Get(auth.HeaderSessionID)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"code": 200, "message": "success",
			"data": api.OrderStatistics{Paid: 2},
		})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	app, err := NewMiniApp(testConfig(t, srv.URL))
	require.NoError(t, err)
	defer app.Close()

	require.NotNil(t, app.API)
	assert.Nil(t, app.Admin)
	assert.False(t, app.Auth.IsLoggedIn())

	ctx := context.Background()
	_, err = app.API.Auth.WechatLogin(ctx, "wx-code")
	require.NoError(t, err)
	assert.True(t, app.Auth.IsLoggedIn())

	// 登录后的请求自动携带 sessionId，状态缓存命中乐观标记，无验证往返
	stats, err := app.API.Order.Statistics(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Paid)
	assert.Equal(t, "sess-roundtrip", gotSession)
}

func TestAdminExpiredJWTBlocksLocally(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer srv.Close()

	app, err := NewAdmin(testConfig(t, srv.URL))
	require.NoError(t, err)
	defer app.Close()

	require.NotNil(t, app.Admin)
	assert.Nil(t, app.API)

	// exp=1 的过期 JWT，本地即可判定失效
	expired := "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9.eyJleHAiOjF9.sig"
	require.NoError(t, app.Auth.SetToken(expired))
	app.Status.Clear()

	valid, err := app.Status.Check(context.Background(), false)
	require.NoError(t, err)
	assert.False(t, valid)
	assert.False(t, app.Auth.IsLoggedIn(), "expired credential cleared")
	assert.Zero(t, calls, "local expiry needs no network round trip")
}
