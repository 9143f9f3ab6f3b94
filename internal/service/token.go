package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// OperatorRole: единственная роль системы.
const OperatorRole = "operator"

// AccessToken: выданный токен доступа.
type AccessToken struct {
	Token     string    `json:"access_token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// TokenManager отвечает за выпуск и проверку JWT.
type TokenManager struct {
	secret    []byte
	accessTTL time.Duration
	now       func() time.Time
}

// NewTokenManager создаёт менеджер токенов.
func NewTokenManager(secret string, accessTTL time.Duration) *TokenManager {
	return &TokenManager{
		secret:    []byte(secret),
		accessTTL: accessTTL,
		now:       time.Now,
	}
}

// Issue выпускает access токен для оператора.
func (m *TokenManager) Issue(username string) (*AccessToken, error) {
	now := m.now()
	exp := now.Add(m.accessTTL)

	claims := jwt.MapClaims{
		"sub":  username,
		"role": OperatorRole,
		"jti":  uuid.NewString(),
		"iat":  now.Unix(),
		"exp":  exp.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return nil, err
	}
	return &AccessToken{Token: signed, ExpiresAt: exp}, nil
}

// ParseAccess извлекает имя оператора и роль из access токена.
func (m *TokenManager) ParseAccess(token string) (string, string, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(m.now))
	if err != nil || !parsed.Valid {
		if err == nil {
			err = jwt.ErrTokenInvalidClaims
		}
		return "", "", err
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", jwt.ErrTokenInvalidClaims
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", "", jwt.ErrTokenInvalidClaims
	}
	role, _ := claims["role"].(string)

	return sub, role, nil
}
