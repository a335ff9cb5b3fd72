package types

// UserInfo 登录态里返回给前端的用户概要
type UserInfo struct {
	Username string `json:"username"`
	Points   int    `json:"points"`
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Phone    string `json:"phone"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse 注册/登录成功后的响应
type TokenResponse struct {
	Token string   `json:"token"`
	User  UserInfo `json:"user"`
}

type ShopRegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required"`
	Phone    string `json:"phone"`
}

type ShopInfo struct {
	Username string `json:"username"`
	Name     string `json:"name"`
}

type ShopTokenResponse struct {
	Token string   `json:"token"`
	Shop  ShopInfo `json:"shop"`
}

type AdminTokenResponse struct {
	Token string `json:"token"`
}

type MeResponse struct {
	User UserInfo `json:"user"`
}

type LogoutResponse struct {
	Success bool `json:"success"`
}
