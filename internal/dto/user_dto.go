package dto

// RegisterRequest 注册请求
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name"`
}

// TokenRequest 令牌签发请求
type TokenRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse 令牌签发响应
type TokenResponse struct {
	Token string `json:"token"`
}

// UserInfo 用户信息(不包含密码)
type UserInfo struct {
	ID       uint   `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	IsActive bool   `json:"is_active"`
	IsStaff  bool   `json:"is_staff"`
}

// MeResponse 当前用户信息
type MeResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UpdateMeRequest 更新个人资料请求,nil字段不修改
type UpdateMeRequest struct {
	Name     *string `json:"name"`
	Password *string `json:"password"`
}

// AdminUpdateUserRequest 管理员更新用户请求,nil字段不修改
type AdminUpdateUserRequest struct {
	IsActive *bool `json:"is_active"`
	IsStaff  *bool `json:"is_staff"`
}

// AdminUserListResponse 管理员用户列表响应
type AdminUserListResponse struct {
	Users   []UserInfo `json:"users"`
	Total   int64      `json:"total"`
	Page    int        `json:"page"`
	PerPage int        `json:"per_page"`
}
