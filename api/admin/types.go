package admin

import "github.com/yuesf/travel/api"

// LoginRequest 管理员登录请求
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResult 登录结果，token 为 JWT
type LoginResult struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// DashboardStats 仪表盘统计数据
type DashboardStats struct {
	TodayOrders    int64   `json:"todayOrders"`
	TodaySales     float64 `json:"todaySales"`
	TotalUsers     int64   `json:"totalUsers"`
	PendingRefunds int64   `json:"pendingRefunds"`
}

// TrendPoint 趋势图上的一个数据点
type TrendPoint struct {
	Date   string  `json:"date"`
	Orders int64   `json:"orders"`
	Sales  float64 `json:"sales"`
}

// UploadResult 文件上传结果
type UploadResult struct {
	ID      int64  `json:"id"`
	FileURL string `json:"fileUrl"`
	Name    string `json:"name"`
	Size    int64  `json:"size"`
}

// 复用小程序端的领域类型，两端共享同一套后端实体
type (
	Attraction = api.Attraction
	Hotel      = api.Hotel
	HotelRoom  = api.HotelRoom
	Product    = api.Product
)

// Page 分页结果
type Page[T any] = api.Page[T]
