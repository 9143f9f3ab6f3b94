package service

import (
	"context"
	"crypto/subtle"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/ignatzorin/tecsolutions-backend/internal/logger"
	"github.com/ignatzorin/tecsolutions-backend/internal/pkg/apperror"
)

// Operator: учётные данные единственного оператора.
type Operator struct {
	Username     string
	PasswordHash string
}

// LoginInput содержит данные для входа.
type LoginInput struct {
	Username string
	Password string
}

// AuthService проверяет пароль оператора и выдаёт токен.
// Без PasswordHash авторизация выключена и API открыт.
type AuthService struct {
	operator     Operator
	tokenManager *TokenManager
}

// NewAuthService создаёт сервис аутентификации.
func NewAuthService(operator Operator, tokenManager *TokenManager) *AuthService {
	return &AuthService{
		operator:     operator,
		tokenManager: tokenManager,
	}
}

// Enabled сообщает, требует ли API токен.
func (s *AuthService) Enabled() bool {
	return s.operator.PasswordHash != ""
}

// Login проверяет пароль и выпускает access токен.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (*AccessToken, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !s.Enabled() {
		return nil, apperror.New(apperror.ErrCodeBadRequest, "авторизация отключена")
	}

	username := strings.TrimSpace(in.Username)
	nameOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.operator.Username)) == 1
	passErr := bcrypt.CompareHashAndPassword([]byte(s.operator.PasswordHash), []byte(in.Password))
	if !nameOK || passErr != nil {
		logger.Log.WithField("username", username).Warn("auth service: неудачная попытка входа")
		return nil, apperror.ErrInvalidCredentials
	}

	token, err := s.tokenManager.Issue(s.operator.Username)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeInternal, "не удалось выпустить токен")
	}
	return token, nil
}

// Authenticate проверяет токен и возвращает имя оператора.
func (s *AuthService) Authenticate(token string) (string, error) {
	username, role, err := s.tokenManager.ParseAccess(token)
	if err != nil || role != OperatorRole || username != s.operator.Username {
		return "", apperror.ErrUnauthorized
	}
	return username, nil
}
