package auth

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yuesf/travel/storage"
)

func TestManagerTokenLifecycle(t *testing.T) {
	m := NewManager(storage.NewMemory(), WithTokenKey(storage.KeySessionID))

	assert.Empty(t, m.Token())
	assert.False(t, m.IsLoggedIn())

	require.NoError(t, m.SetToken("sess-abc"))
	assert.Equal(t, "sess-abc", m.Token())
	assert.True(t, m.IsLoggedIn())

	m.ClearToken()
	assert.Empty(t, m.Token())
	assert.False(t, m.IsLoggedIn())
}

func TestManagerWhitespaceTokenNotLoggedIn(t *testing.T) {
	m := NewManager(storage.NewMemory())

	require.NoError(t, m.SetToken("   "))
	assert.False(t, m.IsLoggedIn())
}

func TestManagerUserInfo(t *testing.T) {
	m := NewManager(storage.NewMemory())

	assert.Nil(t, m.UserInfo())

	require.NoError(t, m.SetUserInfo(&UserInfo{ID: 1, Nickname: "旅行者"}))
	info := m.UserInfo()
	require.NotNil(t, info)
	assert.Equal(t, "旅行者", info.Nickname)

	// 清除凭证同时清除用户资料缓存
	m.ClearToken()
	assert.Nil(t, m.UserInfo())
}

func TestManagerSetTokenMarksStatusValid(t *testing.T) {
	m := NewManager(storage.NewMemory())
	s := NewStatusCache(m, nil)

	require.NoError(t, m.SetToken("tok"))
	assert.True(t, s.fresh())
}

func TestSchemes(t *testing.T) {
	h := http.Header{}
	BearerScheme{}.Apply(h, "tok-1")
	assert.Equal(t, "Bearer tok-1", h.Get(HeaderAuthorization))

	h = http.Header{}
	SessionScheme{}.Apply(h, "sess-1")
	assert.Equal(t, "sess-1", h.Get(HeaderSessionID))

	// 空凭证不写请求头
	h = http.Header{}
	BearerScheme{}.Apply(h, "")
	SessionScheme{}.Apply(h, "")
	assert.Empty(t, h)
}

func TestJWTExpired(t *testing.T) {
	// exp=1，远在过去
	expired := "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9." +
		"eyJleHAiOjF9." +
		"invalid-signature"
	assert.True(t, JWTExpired(expired))

	// 非 JWT 无法本地判断
	assert.False(t, JWTExpired("opaque-session-id"))
}
