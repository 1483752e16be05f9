package services

import (
	"errors"
	"selfrental/internal/logger"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// ErrInvalidToken — единый ответ на битый, чужой или просроченный токен.
// Наружу причина не раскрывается, детали остаются в логах.
var ErrInvalidToken = errors.New("invalid or expired token")

const (
	tokenTypeSession = "session"
	tokenTypeReset   = "reset"
)

// TokenService подписывает и проверяет JWT. Секрет и TTL приходят из конфига
// один раз при старте — внутри потоков никакого глобального состояния.
type TokenService struct {
	secret     string
	sessionTTL time.Duration
	resetTTL   time.Duration
}

func NewTokenService(secret string, sessionTTL, resetTTL time.Duration) *TokenService {
	return &TokenService{
		secret:     secret,
		sessionTTL: sessionTTL,
		resetTTL:   resetTTL,
	}
}

// IssueSession создаёт сессионный токен с username и email.
func (s *TokenService) IssueSession(username, email string) (string, error) {
	return s.sign(jwt.MapClaims{
		"username":   username,
		"email":      email,
		"token_type": tokenTypeSession,
	}, s.sessionTTL)
}

// IssueReset создаёт токен сброса пароля. Claims уже — только email:
// сессию таким токеном открыть нельзя.
func (s *TokenService) IssueReset(email string) (string, error) {
	return s.sign(jwt.MapClaims{
		"email":      email,
		"token_type": tokenTypeReset,
	}, s.resetTTL)
}

func (s *TokenService) sign(claims jwt.MapClaims, ttl time.Duration) (string, error) {
	claims["exp"] = time.Now().Add(ttl).Unix()
	claims["iat"] = time.Now().Unix() // issued at — доп. уникальность

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secret))
}

// ParseSession проверяет подпись, срок и форму claims сессионного токена.
func (s *TokenService) ParseSession(tokenString string) (username, email string, err error) {
	claims, err := s.parse(tokenString, tokenTypeSession)
	if err != nil {
		return "", "", err
	}

	username, ok1 := claims["username"].(string)
	email, ok2 := claims["email"].(string)
	if !ok1 || !ok2 || username == "" {
		logger.Log.Warn("Недопустимый payload сессионного токена", zap.Any("claims", claims))
		return "", "", ErrInvalidToken
	}
	return username, email, nil
}

// ParseReset проверяет токен сброса и возвращает привязанный email.
func (s *TokenService) ParseReset(tokenString string) (email string, err error) {
	claims, err := s.parse(tokenString, tokenTypeReset)
	if err != nil {
		return "", err
	}

	email, ok := claims["email"].(string)
	if !ok || email == "" {
		logger.Log.Warn("Недопустимый payload токена сброса", zap.Any("claims", claims))
		return "", ErrInvalidToken
	}
	return email, nil
}

func (s *TokenService) parse(tokenString, wantType string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.secret), nil
	})
	if err != nil || !token.Valid {
		logger.Log.Warn("Неверный или просроченный токен", zap.Error(err))
		return nil, ErrInvalidToken
	}

	// Токены разных назначений не взаимозаменяемы
	if typ, _ := claims["token_type"].(string); typ != wantType {
		logger.Log.Warn("Токен не того назначения", zap.String("want", wantType))
		return nil, ErrInvalidToken
	}

	return claims, nil
}
