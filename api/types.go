package api

import "github.com/yuesf/travel/auth"

// 商品类型
const (
	ProductTypeAttraction = "ATTRACTION"
	ProductTypeHotel      = "HOTEL"
	ProductTypeProduct    = "PRODUCT"
)

// 订单状态
const (
	OrderStatusPending   = "PENDING_PAYMENT"
	OrderStatusPaid      = "PAID"
	OrderStatusCompleted = "COMPLETED"
	OrderStatusCancelled = "CANCELLED"
	OrderStatusRefunding = "REFUNDING"
	OrderStatusRefunded  = "REFUNDED"
)

// Page 分页结果
type Page[T any] struct {
	List     []T   `json:"list"`
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	PageSize int   `json:"pageSize"`
}

// PageQuery 分页查询参数
type PageQuery struct {
	Page     int
	PageSize int
}

// LoginRequest 微信登录请求
type LoginRequest struct {
	Code string `json:"code"`
}

// LoginResult 登录结果
type LoginResult struct {
	SessionID string         `json:"sessionId"`
	UserInfo  *auth.UserInfo `json:"userInfo"`
}

// Banner 轮播图
type Banner struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	ImageURL string `json:"imageUrl"`
	LinkType string `json:"linkType"`
	LinkID   int64  `json:"linkId"`
}

// HomeData 首页数据
type HomeData struct {
	Banners        []Banner     `json:"banners"`
	HotAttractions []Attraction `json:"hotAttractions"`
	HotHotels      []Hotel      `json:"hotHotels"`
	HotProducts    []Product    `json:"hotProducts"`
}

// Attraction 景点
type Attraction struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Address     string   `json:"address"`
	Images      []string `json:"images"`
	Price       float64  `json:"price"`
	Score       float64  `json:"score"`
	Status      int      `json:"status"`
}

// Hotel 酒店
type Hotel struct {
	ID      int64       `json:"id"`
	Name    string      `json:"name"`
	Address string      `json:"address"`
	Images  []string    `json:"images"`
	Star    int         `json:"star"`
	Score   float64     `json:"score"`
	Rooms   []HotelRoom `json:"rooms,omitempty"`
}

// HotelRoom 酒店房型
type HotelRoom struct {
	ID       int64   `json:"id"`
	HotelID  int64   `json:"hotelId"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Stock    int     `json:"stock"`
	BedType  string  `json:"bedType"`
	Capacity int     `json:"capacity"`
}

// Product 商品
type Product struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
	Price       float64  `json:"price"`
	Stock       int      `json:"stock"`
	Sales       int      `json:"sales"`
}

// CartItem 购物车项
type CartItem struct {
	ID           int64   `json:"id"`
	ProductType  string  `json:"productType"`
	ProductID    int64   `json:"productId"`
	ProductName  string  `json:"productName"`
	ProductImage string  `json:"productImage"`
	Price        float64 `json:"price"`
	Quantity     int     `json:"quantity"`
	RoomID       int64   `json:"roomId,omitempty"`
	CheckInDate  string  `json:"checkInDate,omitempty"`
	CheckOutDate string  `json:"checkOutDate,omitempty"`
}

// AddToCartRequest 添加购物车请求
type AddToCartRequest struct {
	ProductType  string `json:"productType"`
	ProductID    int64  `json:"productId"`
	Quantity     int    `json:"quantity"`
	RoomID       int64  `json:"roomId,omitempty"`
	CheckInDate  string `json:"checkInDate,omitempty"`
	CheckOutDate string `json:"checkOutDate,omitempty"`
}

// OrderItem 订单项
type OrderItem struct {
	ProductType string  `json:"productType"`
	ProductID   int64   `json:"productId"`
	ProductName string  `json:"productName"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
}

// CreateOrderRequest 创建订单请求
type CreateOrderRequest struct {
	OrderType    string      `json:"orderType"`
	Items        []OrderItem `json:"items"`
	CouponID     int64       `json:"couponId,omitempty"`
	ContactName  string      `json:"contactName"`
	ContactPhone string      `json:"contactPhone"`
	Remark       string      `json:"remark,omitempty"`
}

// Order 订单
type Order struct {
	ID          int64       `json:"id"`
	OrderNo     string      `json:"orderNo"`
	OrderType   string      `json:"orderType"`
	Status      string      `json:"status"`
	TotalAmount float64     `json:"totalAmount"`
	PayAmount   float64     `json:"payAmount"`
	Items       []OrderItem `json:"items"`
	CreatedAt   string      `json:"createdAt"`
}

// OrderStatistics 各状态订单数量统计
type OrderStatistics struct {
	PendingPayment int `json:"pendingPayment"`
	Paid           int `json:"paid"`
	Refunding      int `json:"refunding"`
	Completed      int `json:"completed"`
}

// PayRequest 支付请求
type PayRequest struct {
	PayType string `json:"payType"`
}

// PayResult 支付结果，包含拉起微信支付所需参数
type PayResult struct {
	PrepayID  string `json:"prepayId"`
	NonceStr  string `json:"nonceStr"`
	Timestamp string `json:"timestamp"`
	Package   string `json:"package"`
	SignType  string `json:"signType"`
	PaySign   string `json:"paySign"`
}

// Address 收货地址
type Address struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Province  string `json:"province"`
	City      string `json:"city"`
	District  string `json:"district"`
	Detail    string `json:"detail"`
	IsDefault bool   `json:"isDefault"`
}

// SearchParams 搜索参数
type SearchParams struct {
	Keyword  string
	Type     string
	Page     int
	PageSize int
}

// SearchResult 搜索结果
type SearchResult struct {
	Attractions []Attraction `json:"attractions"`
	Hotels      []Hotel      `json:"hotels"`
	Products    []Product    `json:"products"`
	Total       int64        `json:"total"`
}
