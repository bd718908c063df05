package services

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"nsdrink-pos/config"
	"nsdrink-pos/dtos"
	"nsdrink-pos/models"
	"nsdrink-pos/utils"
)

var ErrInvalidCredentials = errors.New("Incorrect phone or password")

type AuthService interface {
	Login(input dtos.LoginInput) (*dtos.AuthResponse, error)
}

type authService struct{}

func NewAuthService() AuthService {
	return &authService{}
}

func (s *authService) Login(input dtos.LoginInput) (*dtos.AuthResponse, error) {
	var user models.User
	if err := config.DB.Where("phone = ?", input.Phone).First(&user).Error; err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user, config.App.JWTSecret, config.App.JWTTTL)
	if err != nil {
		return nil, errors.New("Failed to generate token")
	}

	return &dtos.AuthResponse{
		Message: "Login successful",
		Phone:   user.Phone,
		Name:    user.Name,
		Role:    user.Role,
		Token:   token,
	}, nil
}

// HashPassword bcrypt-hashes a plain password for storage.
func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
