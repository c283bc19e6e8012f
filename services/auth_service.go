package services

import (
	stderrors "errors"

	"arabella/errors"
	"arabella/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService xử lý đăng nhập tài khoản quản trị. Khách đặt phòng không
// cần tài khoản nên không có luồng đăng ký public.
type AuthService struct {
	db *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

// Login kiểm tra email/mật khẩu và phát token
func (s *AuthService) Login(email, password string) (string, *models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, errors.NewAppError(errors.ErrCodeUnauthorized, "Email hoặc mật khẩu không đúng", nil)
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, errors.NewAppError(errors.ErrCodeUnauthorized, "Email hoặc mật khẩu không đúng", nil)
	}

	token, err := GenerateToken(&user)
	if err != nil {
		return "", nil, err
	}
	return token, &user, nil
}

// HashPassword băm mật khẩu để lưu DB
func HashPassword(raw string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(raw), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}
