package controllers

import (
	"arabella/dto"
	"arabella/response"
	"arabella/services"
	"arabella/services/logger"

	"github.com/gin-gonic/gin"
)

// AuthController xử lý đăng nhập cho admin/nhân viên
type AuthController struct {
	auth *services.AuthService
	log  logger.Logger
}

func NewAuthController(auth *services.AuthService, log logger.Logger) *AuthController {
	return &AuthController{auth: auth, log: log}
}

// Login xác thực email/mật khẩu và trả về token
func (ctrl *AuthController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	token, user, err := ctrl.auth.Login(req.Email, req.Password)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	response.Success(c, dto.LoginResponse{
		Token: token,
		User: dto.LoginUser{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
			Role:  user.Role,
		},
	})
}
