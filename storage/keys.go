package storage

// 本地存储键名。与既有客户端的存储布局保持一致
const (
	// KeyToken admin 后台的登录 Token
	KeyToken = "token"

	// KeySessionID 小程序的 Session ID
	KeySessionID = "sessionId"

	// KeyUserInfo 当前登录用户的资料缓存
	KeyUserInfo = "userInfo"

	// KeyCartCount 购物车数量角标
	KeyCartCount = "cartCount"

	// KeySearchHistory 搜索历史
	KeySearchHistory = "searchHistory"
)
