// Package admin 管理后台接口封装。
// 与小程序端共用请求客户端，凭证改用 Bearer JWT
package admin

import (
	"net/url"
	"strconv"

	"github.com/yuesf/travel/auth"
	"github.com/yuesf/travel/client"
)

// Admin 管理后台接口集合
type Admin struct {
	Auth       *AuthService
	Attraction *AttractionService
	Hotel      *HotelService
	Product    *ProductService
	Dashboard  *DashboardService
	Upload     *UploadService
}

// New 创建管理后台接口集合
func New(c *client.Client, mgr *auth.Manager) *Admin {
	return &Admin{
		Auth:       &AuthService{client: c, mgr: mgr},
		Attraction: &AttractionService{client: c},
		Hotel:      &HotelService{client: c},
		Product:    &ProductService{client: c},
		Dashboard:  &DashboardService{client: c},
		Upload:     &UploadService{client: c},
	}
}

// ListQuery 列表查询参数
type ListQuery struct {
	Keyword  string
	Status   string
	Page     int
	PageSize int
}

func (q ListQuery) values() url.Values {
	v := url.Values{}
	if q.Keyword != "" {
		v.Set("keyword", q.Keyword)
	}
	if q.Status != "" {
		v.Set("status", q.Status)
	}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.PageSize > 0 {
		v.Set("pageSize", strconv.Itoa(q.PageSize))
	}
	return v
}
