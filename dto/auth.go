package dto

// LoginRequest đăng nhập tài khoản quản trị
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginUser thông tin tài khoản trả kèm token, không bao gồm mật khẩu
type LoginUser struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  int    `json:"role"`
}

// LoginResponse token kèm thông tin tài khoản
type LoginResponse struct {
	Token string    `json:"token"`
	User  LoginUser `json:"user"`
}
