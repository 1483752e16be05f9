package models

// User — запись в хранилище учётных данных.
// Поле с хешем сериализуется как "password" — так исторически устроен users.json,
// сам хеш при этом никогда не содержит исходный пароль.
type User struct {
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"password"`
}
