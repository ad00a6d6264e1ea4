package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yuesf/travel/storage"
)

// countingVerifier 记录调用次数的 Verifier
type countingVerifier struct {
	calls int32
	valid bool
	err   error
	block chan struct{} // 非 nil 时阻塞直到关闭
}

func (v *countingVerifier) fn() Verifier {
	return func(ctx context.Context, token string) (bool, error) {
		atomic.AddInt32(&v.calls, 1)
		if v.block != nil {
			<-v.block
		}
		return v.valid, v.err
	}
}

func (v *countingVerifier) count() int32 {
	return atomic.LoadInt32(&v.calls)
}

func newLoggedInManager(t *testing.T) *Manager {
	t.Helper()
	m := NewManager(storage.NewMemory())
	require.NoError(t, m.SetToken("tok-valid"))
	return m
}

func TestCheckNoTokenShortCircuits(t *testing.T) {
	m := NewManager(storage.NewMemory())
	v := &countingVerifier{valid: true}
	s := NewStatusCache(m, v.fn())

	valid, err := s.Check(context.Background(), false)
	require.NoError(t, err)
	assert.False(t, valid)
	assert.EqualValues(t, 0, v.count(), "no network call without a local token")
}

func TestCheckCachesWithinTTL(t *testing.T) {
	m := newLoggedInManager(t)
	v := &countingVerifier{valid: true}
	s := NewStatusCache(m, v.fn(), WithTTL(time.Hour))
	s.Clear() // SetToken 的乐观标记不算数，先清掉

	valid, err := s.Check(context.Background(), false)
	require.NoError(t, err)
	assert.True(t, valid)
	assert.EqualValues(t, 1, v.count())

	// TTL 内第二次检查不触发网络验证
	valid, err = s.Check(context.Background(), false)
	require.NoError(t, err)
	assert.True(t, valid)
	assert.EqualValues(t, 1, v.count())
}

func TestCheckForceBypassesCache(t *testing.T) {
	m := newLoggedInManager(t)
	v := &countingVerifier{valid: true}
	s := NewStatusCache(m, v.fn())
	s.Clear()

	_, _ = s.Check(context.Background(), false)
	_, _ = s.Check(context.Background(), true)
	assert.EqualValues(t, 2, v.count())
}

func TestCheckTTLExpiry(t *testing.T) {
	now := time.Now()

	m := newLoggedInManager(t)
	v := &countingVerifier{valid: true}
	s := NewStatusCache(m, v.fn(), WithTTL(time.Hour), WithClock(func() time.Time { return now }))
	s.Clear()

	_, _ = s.Check(context.Background(), false)
	assert.EqualValues(t, 1, v.count())

	// 模拟时间推进超过 TTL，下一次检查必须重新验证
	now = now.Add(time.Hour + time.Minute)
	valid, err := s.Check(context.Background(), false)
	require.NoError(t, err)
	assert.True(t, valid)
	assert.EqualValues(t, 2, v.count())
}

func TestCheckDeduplicatesConcurrentCallers(t *testing.T) {
	m := newLoggedInManager(t)
	v := &countingVerifier{valid: true, block: make(chan struct{})}
	s := NewStatusCache(m, v.fn())
	s.Clear()

	var wg sync.WaitGroup
	results := make([]bool, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			valid, err := s.Check(context.Background(), false)
			assert.NoError(t, err)
			results[i] = valid
		}(i)
	}

	// 等两个调用方都挂在同一个在途验证上
	assert.Eventually(t, func() bool { return v.count() == 1 }, time.Second, time.Millisecond)
	close(v.block)
	wg.Wait()

	assert.EqualValues(t, 1, v.count(), "concurrent checks share one verification call")
	assert.Equal(t, []bool{true, true}, results)
}

func TestCheckInvalidClearsSession(t *testing.T) {
	m := newLoggedInManager(t)
	v := &countingVerifier{valid: false}
	s := NewStatusCache(m, v.fn())
	s.Clear()

	valid, err := s.Check(context.Background(), false)
	require.NoError(t, err)
	assert.False(t, valid)
	assert.False(t, m.IsLoggedIn(), "definitive invalid verdict logs the session out")

	// 凭证已清除，后续检查不再走网络
	valid, err = s.Check(context.Background(), false)
	require.NoError(t, err)
	assert.False(t, valid)
	assert.EqualValues(t, 1, v.count())
}

func TestCheckTransportErrorKeepsSession(t *testing.T) {
	m := newLoggedInManager(t)
	v := &countingVerifier{err: errors.New("dial tcp: connection refused")}
	s := NewStatusCache(m, v.fn())
	s.Clear()

	valid, err := s.Check(context.Background(), false)
	require.Error(t, err)
	assert.False(t, valid)
	// 网络错误不清除本地会话，给用户重试机会
	assert.True(t, m.IsLoggedIn())
}

func TestClearAfterLogout(t *testing.T) {
	m := newLoggedInManager(t)
	v := &countingVerifier{valid: true}
	s := NewStatusCache(m, v.fn())
	s.Clear()

	_, _ = s.Check(context.Background(), false)
	require.True(t, s.fresh())

	m.Logout()
	assert.False(t, s.fresh(), "logout clears the cache entry immediately")
	assert.False(t, m.IsLoggedIn())

	valid, err := s.Check(context.Background(), false)
	require.NoError(t, err)
	assert.False(t, valid)
	assert.EqualValues(t, 1, v.count(), "no network call after logout")
}

func TestCheckLocalExpiry(t *testing.T) {
	m := newLoggedInManager(t)
	v := &countingVerifier{valid: true}
	s := NewStatusCache(m, v.fn(), WithLocalExpiry(func(string) bool { return true }))

	valid, err := s.Check(context.Background(), false)
	require.NoError(t, err)
	assert.False(t, valid)
	assert.False(t, m.IsLoggedIn())
	assert.EqualValues(t, 0, v.count(), "locally expired token needs no network call")
}

func TestHTTPVerifier(t *testing.T) {
	type envelope struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	}

	cases := []struct {
		name    string
		status  int
		body    envelope
		valid   bool
		wantErr bool
	}{
		{"valid session", http.StatusOK, envelope{Code: 200}, true, false},
		{"envelope 401", http.StatusOK, envelope{Code: 401, Message: "session expired"}, false, false},
		{"http 401", http.StatusUnauthorized, envelope{}, false, false},
		{"http 500", http.StatusInternalServerError, envelope{}, false, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var gotSession string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotSession = r.Header.Get(HeaderSessionID)
				w.WriteHeader(tc.status)
				_ = json.NewEncoder(w).Encode(tc.body)
			}))
			defer srv.Close()

			verify := NewVerifier(srv.URL, "/miniprogram/auth/info", SessionScheme{}, 5*time.Second)
			valid, err := verify(context.Background(), "sess-1")

			if tc.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tc.valid, valid)
			assert.Equal(t, "sess-1", gotSession)
		})
	}
}

func TestHTTPVerifierTransportError(t *testing.T) {
	// 指向已关闭的端口
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	verify := NewVerifier(url, "/miniprogram/auth/info", SessionScheme{}, time.Second)
	_, err := verify(context.Background(), "sess-1")
	assert.Error(t, err)
}
