package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yuesf/travel/auth"
	"github.com/yuesf/travel/client"
	"github.com/yuesf/travel/storage"
)

func newTestAPI(t *testing.T, handler http.Handler, loggedIn bool) (*API, *auth.Manager, *httptest.Server) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	store := storage.NewMemory()
	mgr := auth.NewManager(store, auth.WithTokenKey(storage.KeySessionID))
	if loggedIn {
		require.NoError(t, mgr.SetToken("sess-1"))
	}

	c, err := client.New(client.Config{BaseURL: srv.URL}, mgr, nil, auth.SessionScheme{})
	require.NoError(t, err)

	return New(c, mgr, storage.NewTyped(store)), mgr, srv
}

func reply(t *testing.T, w http.ResponseWriter, data any) {
	t.Helper()
	// handler 跑在独立 goroutine 里，只能用 assert
	assert.NoError(t, json.NewEncoder(w).Encode(map[string]any{
		"code": 200, "message": "success", "data": data,
	}))
}

func TestWechatLoginPersistsSession(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /miniprogram/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "wx-code-1", req.Code)

		reply(t, w, LoginResult{
			SessionID: "sess-new",
			UserInfo:  &auth.UserInfo{ID: 42, Nickname: "旅行者"},
		})
	})

	a, mgr, _ := newTestAPI(t, mux, false)

	result, err := a.Auth.WechatLogin(context.Background(), "wx-code-1")
	require.NoError(t, err)
	assert.Equal(t, "sess-new", result.SessionID)

	// 登录结果落盘，后续请求无需再登录
	assert.Equal(t, "sess-new", mgr.Token())
	require.NotNil(t, mgr.UserInfo())
	assert.Equal(t, "旅行者", mgr.UserInfo().Nickname)
}

func TestLogoutClearsLocalSessionEvenOnServerError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /miniprogram/auth/logout", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	a, mgr, _ := newTestAPI(t, mux, true)

	err := a.Auth.Logout(context.Background())
	assert.Error(t, err)
	assert.False(t, mgr.IsLoggedIn(), "local session cleared regardless of server outcome")
}

func TestCartListSyncsBadge(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /miniprogram/cart", func(w http.ResponseWriter, r *http.Request) {
		reply(t, w, []CartItem{
			{ID: 1, ProductType: ProductTypeAttraction, Quantity: 2},
			{ID: 2, ProductType: ProductTypeProduct, Quantity: 1},
		})
	})

	a, _, _ := newTestAPI(t, mux, true)

	items, err := a.Cart.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 2)

	// 角标异步写入，等它落地
	assert.Eventually(t, func() bool {
		return a.Cart.Badge() == 2
	}, time.Second, 5*time.Millisecond)
}

func TestSearchRecordsHistory(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /miniprogram/home/search", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "千岛湖", r.URL.Query().Get("keyword"))
		reply(t, w, SearchResult{Total: 1, Attractions: []Attraction{{ID: 1, Name: "千岛湖"}}})
	})

	a, _, _ := newTestAPI(t, mux, false)

	result, err := a.Home.Search(context.Background(), SearchParams{Keyword: "千岛湖"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, result.Total)

	assert.Equal(t, []string{"千岛湖"}, a.Home.SearchHistory())

	require.NoError(t, a.Home.ClearSearchHistory())
	assert.Empty(t, a.Home.SearchHistory())
}

func TestOrderListPagination(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /miniprogram/orders", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, OrderStatusPaid, q.Get("status"))
		assert.Equal(t, "2", q.Get("page"))
		assert.Equal(t, "10", q.Get("pageSize"))

		reply(t, w, Page[Order]{
			List:     []Order{{ID: 9, OrderNo: "T20260901001", Status: OrderStatusPaid}},
			Total:    11,
			Page:     2,
			PageSize: 10,
		})
	})

	a, _, _ := newTestAPI(t, mux, true)

	page, err := a.Order.List(context.Background(), OrderStatusPaid, PageQuery{Page: 2, PageSize: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 11, page.Total)
	require.Len(t, page.List, 1)
	assert.Equal(t, "T20260901001", page.List[0].OrderNo)
}

func TestAddressLifecyclePaths(t *testing.T) {
	var gotPaths []string
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		gotPaths = append(gotPaths, r.Method+" "+r.URL.Path)
		reply(t, w, Address{ID: 3})
	})

	a, _, _ := newTestAPI(t, mux, true)
	ctx := context.Background()

	_, err := a.Address.Create(ctx, Address{Name: "张三"})
	require.NoError(t, err)
	require.NoError(t, a.Address.Update(ctx, 3, Address{Name: "张三"}))
	require.NoError(t, a.Address.SetDefault(ctx, 3))
	require.NoError(t, a.Address.Delete(ctx, 3))

	assert.Equal(t, []string{
		"POST /miniprogram/addresses",
		"PUT /miniprogram/addresses/3",
		"PUT /miniprogram/addresses/3/default",
		"DELETE /miniprogram/addresses/3",
	}, gotPaths)
}
