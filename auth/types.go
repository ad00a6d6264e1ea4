package auth

// UserInfo 当前登录用户的资料缓存。
// 仅为展示用的本地快照，可能过期，消费方需容忍 nil
type UserInfo struct {
	ID       int64  `json:"id"`
	Username string `json:"username,omitempty"`
	Nickname string `json:"nickname,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Role     string `json:"role,omitempty"`
}
