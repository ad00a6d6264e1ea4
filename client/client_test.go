package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yuesf/travel/auth"
	"github.com/yuesf/travel/errors"
	"github.com/yuesf/travel/storage"
)

// hookRecorder 记录钩子触发次数
type hookRecorder struct {
	loading   int32
	hidden    int32
	messages  []string
	redirects int32
}

func (r *hookRecorder) hooks() Hooks {
	return Hooks{
		ShowLoading: func() { atomic.AddInt32(&r.loading, 1) },
		HideLoading: func() { atomic.AddInt32(&r.hidden, 1) },
		ShowError:   func(msg string) { r.messages = append(r.messages, msg) },
		RedirectToLogin: func() {
			atomic.AddInt32(&r.redirects, 1)
		},
	}
}

func newTestClient(t *testing.T, baseURL string, loggedIn bool, opts ...Option) (*Client, *auth.Manager, *hookRecorder) {
	t.Helper()

	mgr := auth.NewManager(storage.NewMemory(), auth.WithTokenKey(storage.KeySessionID))
	if loggedIn {
		require.NoError(t, mgr.SetToken("sess-1"))
	}

	rec := &hookRecorder{}
	opts = append([]Option{WithHooks(rec.hooks())}, opts...)

	c, err := New(Config{
		BaseURL:    baseURL,
		MaxRetries: 2,
		RetryDelay: time.Millisecond,
	}, mgr, nil, auth.SessionScheme{}, opts...)
	require.NoError(t, err)

	return c, mgr, rec
}

func okEnvelope(data any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"code": 200, "message": "success", "data": data,
		})
	}
}

func TestDoBlocksWithoutTokenBeforeNetwork(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer srv.Close()

	c, _, rec := newTestClient(t, srv.URL, false)

	err := c.Get(context.Background(), "/miniprogram/cart/list", nil, nil)
	require.Error(t, err)
	assert.Equal(t, errors.CodeUnauthorized, errors.Code(err))
	assert.True(t, errors.IsHandled(err), "request layer already handled the redirect")
	assert.EqualValues(t, 0, atomic.LoadInt32(&calls), "no network call without a local token")
	assert.EqualValues(t, 1, atomic.LoadInt32(&rec.redirects))
}

func TestDoSkipsAuthGateWhenNotNeeded(t *testing.T) {
	var gotSession string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSession = r.Header.Get(auth.HeaderSessionID)
		okEnvelope(map[string]any{"list": []int{}})(w, r)
	}))
	defer srv.Close()

	c, _, rec := newTestClient(t, srv.URL, false)

	err := c.Do(context.Background(), RequestConfig{
		Path:     "/miniprogram/home/banner",
		NeedAuth: Bool(false),
	}, nil)
	require.NoError(t, err)
	assert.Empty(t, gotSession, "no credential attached when none is stored")
	assert.EqualValues(t, 0, atomic.LoadInt32(&rec.redirects))
}

func TestDoUnwrapsEnvelope(t *testing.T) {
	type product struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}

	srv := httptest.NewServer(okEnvelope(product{ID: 7, Name: "千岛湖门票"}))
	defer srv.Close()

	c, _, _ := newTestClient(t, srv.URL, true)

	var got product
	err := c.Get(context.Background(), "/miniprogram/product/detail", url.Values{"id": {"7"}}, &got)
	require.NoError(t, err)
	assert.Equal(t, product{ID: 7, Name: "千岛湖门票"}, got)
}

func TestDoAttachesCredentialAndRequestID(t *testing.T) {
	var gotSession, gotRequestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSession = r.Header.Get(auth.HeaderSessionID)
		gotRequestID = r.Header.Get(HeaderRequestID)
		okEnvelope(nil)(w, r)
	}))
	defer srv.Close()

	c, _, _ := newTestClient(t, srv.URL, true)

	require.NoError(t, c.Get(context.Background(), "/miniprogram/user/profile", nil, nil))
	assert.Equal(t, "sess-1", gotSession)
	assert.NotEmpty(t, gotRequestID)
}

func TestDoBusinessErrorNotRetried(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		_ = json.NewEncoder(w).Encode(map[string]any{"code": 500, "message": "库存不足"})
	}))
	defer srv.Close()

	c, _, rec := newTestClient(t, srv.URL, true)

	err := c.Post(context.Background(), "/miniprogram/order/create", nil, nil)
	require.Error(t, err)
	assert.Equal(t, 500, errors.Code(err))
	assert.Equal(t, "库存不足", errors.FromError(err).Message)
	assert.EqualValues(t, 1, atomic.LoadInt32(&calls), "business errors use exactly one attempt")
	assert.Equal(t, []string{"库存不足"}, rec.messages)
}

func TestDoRetriesTransportErrors(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		// 掐断连接，让客户端拿到传输错误
		if hj, ok := w.(http.Hijacker); ok {
			if conn, _, err := hj.Hijack(); err == nil {
				conn.Close()
			}
		}
	}))
	defer srv.Close()

	c, _, _ := newTestClient(t, srv.URL, true)

	err := c.Get(context.Background(), "/miniprogram/home/banner", nil, nil)
	require.Error(t, err)
	assert.True(t, errors.Temporary(err))
	// MaxRetries=2：首次 + 两次重试
	assert.EqualValues(t, 3, atomic.LoadInt32(&calls))
}

func TestDoEnvelope401ClearsSessionAndRedirectsOnce(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"code": 401, "message": "登录已过期，请重新登录"})
	}))
	defer srv.Close()

	c, mgr, rec := newTestClient(t, srv.URL, true)

	err := c.Get(context.Background(), "/miniprogram/order/list", nil, nil)
	require.Error(t, err)
	assert.Equal(t, errors.CodeUnauthorized, errors.Code(err))
	assert.True(t, errors.IsHandled(err))
	assert.False(t, mgr.IsLoggedIn(), "401 clears the local session")
	assert.EqualValues(t, 1, atomic.LoadInt32(&rec.redirects), "redirect fires exactly once")
}

func TestDoHTTPStatusMapping(t *testing.T) {
	cases := []struct {
		status   int
		wantCode int
		wantMsg  string
	}{
		{http.StatusForbidden, errors.CodeForbidden, errors.MsgForbidden},
		{http.StatusNotFound, errors.CodeNotFound, errors.MsgNotFound},
		{http.StatusInternalServerError, errors.CodeServerError, errors.MsgServerError},
		{http.StatusBadGateway, http.StatusBadGateway, "请求失败: 502"},
	}

	for _, tc := range cases {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tc.status)
		}))

		c, _, _ := newTestClient(t, srv.URL, true)
		err := c.Get(context.Background(), "/admin/hotel/list", nil, nil)
		srv.Close()

		require.Error(t, err, "status %d", tc.status)
		assert.Equal(t, tc.wantCode, errors.Code(err))
		assert.Equal(t, tc.wantMsg, errors.FromError(err).Message)
	}
}

func TestDoLoadingHooksPaired(t *testing.T) {
	srv := httptest.NewServer(okEnvelope(nil))
	defer srv.Close()

	c, _, rec := newTestClient(t, srv.URL, true)

	require.NoError(t, c.Get(context.Background(), "/miniprogram/user/profile", nil, nil))
	assert.EqualValues(t, 1, atomic.LoadInt32(&rec.loading))
	assert.EqualValues(t, 1, atomic.LoadInt32(&rec.hidden))

	// 关掉加载提示后两个钩子都不触发
	err := c.Do(context.Background(), RequestConfig{
		Path:        "/miniprogram/user/profile",
		ShowLoading: Bool(false),
	}, nil)
	require.NoError(t, err)
	assert.EqualValues(t, 1, atomic.LoadInt32(&rec.loading))
	assert.EqualValues(t, 1, atomic.LoadInt32(&rec.hidden))
}

func TestDoStatusPreCheck(t *testing.T) {
	t.Run("definitive invalid blocks the request", func(t *testing.T) {
		var calls int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
		}))
		defer srv.Close()

		mgr := auth.NewManager(storage.NewMemory())
		require.NoError(t, mgr.SetToken("sess-stale"))
		status := auth.NewStatusCache(mgr, func(ctx context.Context, token string) (bool, error) {
			return false, nil
		})
		status.Clear()

		rec := &hookRecorder{}
		c, err := New(Config{BaseURL: srv.URL}, mgr, status, auth.SessionScheme{}, WithHooks(rec.hooks()))
		require.NoError(t, err)

		err = c.Get(context.Background(), "/miniprogram/cart/list", nil, nil)
		require.Error(t, err)
		assert.Equal(t, errors.MsgSessionExpired, errors.FromError(err).Message)
		assert.True(t, errors.IsHandled(err))
		assert.EqualValues(t, 0, atomic.LoadInt32(&calls), "stale session never reaches the business endpoint")
		assert.False(t, mgr.IsLoggedIn())
	})

	t.Run("verification failure soft-passes", func(t *testing.T) {
		srv := httptest.NewServer(okEnvelope(nil))
		defer srv.Close()

		mgr := auth.NewManager(storage.NewMemory())
		require.NoError(t, mgr.SetToken("sess-1"))
		status := auth.NewStatusCache(mgr, func(ctx context.Context, token string) (bool, error) {
			return false, context.DeadlineExceeded
		})
		status.Clear()

		c, err := New(Config{BaseURL: srv.URL}, mgr, status, auth.SessionScheme{})
		require.NoError(t, err)

		// 验证接口不可用不应拖垮业务请求
		assert.NoError(t, c.Get(context.Background(), "/miniprogram/cart/list", nil, nil))
		assert.True(t, mgr.IsLoggedIn())
	})
}

func TestBuildURL(t *testing.T) {
	c, _, _ := newTestClient(t, "https://api.example.com/", true)

	assert.Equal(t,
		"https://api.example.com/miniprogram/home/banner",
		c.buildURL(RequestConfig{Path: "/miniprogram/home/banner"}))

	assert.Equal(t,
		"https://cdn.example.com/static/app.json",
		c.buildURL(RequestConfig{Path: "https://cdn.example.com/static/app.json"}),
		"absolute URLs pass through untouched")

	assert.Equal(t,
		"https://api.example.com/miniprogram/product/list?page=2",
		c.buildURL(RequestConfig{Path: "/miniprogram/product/list", Query: url.Values{"page": {"2"}}}))
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	mgr := auth.NewManager(storage.NewMemory())
	_, err := New(Config{BaseURL: "not-a-url"}, mgr, nil, auth.SessionScheme{})
	assert.Error(t, err)
}
