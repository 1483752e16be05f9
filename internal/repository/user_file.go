package repository

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"selfrental/internal/logger"
	"selfrental/internal/models"
	"sync"

	"go.uber.org/zap"
)

var ErrUserNotFound = errors.New("user not found")

// FileUserRepository хранит пользователей в одном JSON-файле (users.json).
// Запись не транзакционна: падение посреди Save может оборвать файл.
// mu сериализует каждую цепочку load-mutate-save, чтобы конкурентные
// запросы не затирали друг друга.
type FileUserRepository struct {
	path string
	mu   sync.Mutex
}

func NewFileUserRepository(path string) *FileUserRepository {
	return &FileUserRepository{path: path}
}

// load читает файл целиком. Любая ошибка чтения или парсинга деградирует
// до пустого списка: «нет пользователей» и «хранилище не читается»
// снаружи неразличимы, причина остаётся в логах.
func (r *FileUserRepository) load() []models.User {
	data, err := os.ReadFile(r.path)
	if err != nil {
		logger.Log.Warn("Не удалось прочитать файл пользователей", zap.String("path", r.path), zap.Error(err))
		return []models.User{}
	}

	var users []models.User
	if err := json.Unmarshal(data, &users); err != nil {
		logger.Log.Warn("Не удалось разобрать файл пользователей", zap.String("path", r.path), zap.Error(err))
		return []models.User{}
	}
	return users
}

// save перезаписывает файл всем набором записей. Отступ в два пробела —
// тот же человекочитаемый вид, что и раньше, файл удобно диффать.
func (r *FileUserRepository) save(users []models.User) error {
	data, err := json.MarshalIndent(users, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		logger.Log.Error("Не удалось сохранить файл пользователей", zap.String("path", r.path), zap.Error(err))
		return err
	}
	return nil
}

// Чистые функции поиска по уже загруженному списку. Линейный проход —
// на этом масштабе индексы не нужны.

func findByUsername(users []models.User, username string) *models.User {
	for i := range users {
		if users[i].Username == username {
			return &users[i]
		}
	}
	return nil
}

func findByUsernameOrEmail(users []models.User, username, email string) *models.User {
	for i := range users {
		if users[i].Username == username || users[i].Email == email {
			return &users[i]
		}
	}
	return nil
}

func findIndexByEmail(users []models.User, email string) int {
	for i := range users {
		if users[i].Email == email {
			return i
		}
	}
	return -1
}

func (r *FileUserRepository) GetByUsername(_ context.Context, username string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u := findByUsername(r.load(), username)
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

func (r *FileUserRepository) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users := r.load()
	idx := findIndexByEmail(users, email)
	if idx == -1 {
		return nil, ErrUserNotFound
	}
	u := users[idx]
	return &u, nil
}

// FindByUsernameOrEmail — одна совмещённая проверка уникальности для регистрации.
func (r *FileUserRepository) FindByUsernameOrEmail(_ context.Context, username, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u := findByUsernameOrEmail(r.load(), username, email)
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

func (r *FileUserRepository) CreateUser(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	users := r.load()
	users = append(users, *user)
	return r.save(users)
}

func (r *FileUserRepository) UpdatePasswordByEmail(_ context.Context, email, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	users := r.load()
	idx := findIndexByEmail(users, email)
	if idx == -1 {
		return ErrUserNotFound
	}
	users[idx].PasswordHash = passwordHash
	return r.save(users)
}
