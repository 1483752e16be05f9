package utils

import "testing"

func TestHashPassword_Salted(t *testing.T) {
	first, err := HashPassword("secret")
	if err != nil {
		t.Fatalf("ошибка хеширования: %v", err)
	}
	second, err := HashPassword("secret")
	if err != nil {
		t.Fatalf("ошибка хеширования: %v", err)
	}

	// Соль: два хеша одного пароля различаются, но оба проверяются
	if first == second {
		t.Fatal("хеши совпали — соль не работает")
	}
	if !CheckPasswordHash("secret", first) || !CheckPasswordHash("secret", second) {
		t.Fatal("пароль не подошёл к собственному хешу")
	}
}

func TestCheckPasswordHash_Wrong(t *testing.T) {
	hash, err := HashPassword("secret")
	if err != nil {
		t.Fatalf("ошибка хеширования: %v", err)
	}
	if CheckPasswordHash("not-secret", hash) {
		t.Fatal("чужой пароль прошёл проверку")
	}
}
