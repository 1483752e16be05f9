package services

import (
	"errors"
	"testing"
	"time"
)

func TestSessionToken_RoundTrip(t *testing.T) {
	tokens := NewTokenService("mysecret", time.Minute, 10*time.Minute)

	token, err := tokens.IssueSession("testuser", "test@example.com")
	if err != nil {
		t.Fatalf("ошибка выпуска токена: %v", err)
	}

	username, email, err := tokens.ParseSession(token)
	if err != nil {
		t.Fatalf("свежий токен не прошёл проверку: %v", err)
	}
	if username != "testuser" || email != "test@example.com" {
		t.Fatalf("claims не совпали: %s/%s", username, email)
	}
}

func TestResetToken_RoundTrip(t *testing.T) {
	tokens := NewTokenService("mysecret", time.Minute, 10*time.Minute)

	token, err := tokens.IssueReset("test@example.com")
	if err != nil {
		t.Fatalf("ошибка выпуска токена: %v", err)
	}

	email, err := tokens.ParseReset(token)
	if err != nil {
		t.Fatalf("свежий токен не прошёл проверку: %v", err)
	}
	if email != "test@example.com" {
		t.Fatalf("email не совпал: %s", email)
	}
}

func TestToken_Expired(t *testing.T) {
	// TTL уже истёк на момент выпуска
	expired := NewTokenService("mysecret", -time.Second, -time.Second)

	session, _ := expired.IssueSession("testuser", "test@example.com")
	if _, _, err := expired.ParseSession(session); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("просроченный сессионный токен принят: %v", err)
	}

	reset, _ := expired.IssueReset("test@example.com")
	if _, err := expired.ParseReset(reset); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("просроченный токен сброса принят: %v", err)
	}
}

func TestToken_PurposeSeparation(t *testing.T) {
	tokens := NewTokenService("mysecret", time.Minute, 10*time.Minute)

	session, _ := tokens.IssueSession("testuser", "test@example.com")
	reset, _ := tokens.IssueReset("test@example.com")

	// Токен сброса не открывает сессию
	if _, _, err := tokens.ParseSession(reset); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("токен сброса принят как сессионный: %v", err)
	}
	// Сессионный токен не сбрасывает пароль
	if _, err := tokens.ParseReset(session); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("сессионный токен принят как токен сброса: %v", err)
	}
}

func TestToken_WrongSecret(t *testing.T) {
	issuer := NewTokenService("secret-one", time.Minute, 10*time.Minute)
	verifier := NewTokenService("secret-two", time.Minute, 10*time.Minute)

	token, _ := issuer.IssueSession("testuser", "test@example.com")
	if _, _, err := verifier.ParseSession(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("токен с чужой подписью принят: %v", err)
	}
}

func TestToken_Malformed(t *testing.T) {
	tokens := NewTokenService("mysecret", time.Minute, 10*time.Minute)

	for _, bad := range []string{"", "garbage", "a.b.c"} {
		if _, _, err := tokens.ParseSession(bad); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("битый токен %q принят: %v", bad, err)
		}
	}
}
