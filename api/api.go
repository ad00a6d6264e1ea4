// Package api 小程序端接口封装。
// 每个业务域一个服务，薄封装：拼路径、传参数、声明返回类型，
// 鉴权、重试、错误处理都在请求客户端统一完成
package api

import (
	"net/url"
	"strconv"

	"github.com/yuesf/travel/auth"
	"github.com/yuesf/travel/client"
	"github.com/yuesf/travel/storage"
)

// API 小程序端接口集合
type API struct {
	Auth    *AuthService
	Home    *HomeService
	Product *ProductService
	Cart    *CartService
	Order   *OrderService
	Address *AddressService
	User    *UserService
}

// New 创建接口集合。
// typed 可为 nil，此时跳过购物车角标和搜索历史的本地缓存
func New(c *client.Client, mgr *auth.Manager, typed *storage.Typed) *API {
	return &API{
		Auth:    &AuthService{client: c, mgr: mgr},
		Home:    &HomeService{client: c, typed: typed},
		Product: &ProductService{client: c},
		Cart:    &CartService{client: c, typed: typed},
		Order:   &OrderService{client: c},
		Address: &AddressService{client: c},
		User:    &UserService{client: c},
	}
}

// pageQuery 将分页参数编码为查询串，零值使用服务端默认
func pageQuery(q PageQuery) url.Values {
	v := url.Values{}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.PageSize > 0 {
		v.Set("pageSize", strconv.Itoa(q.PageSize))
	}
	return v
}
