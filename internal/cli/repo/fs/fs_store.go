package fs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"Mintopia/internal/cli/repo"

	"github.com/google/uuid"
)

// FSStore: файловое key-value хранилище: один файл на ключ в каталоге Dir.
type FSStore struct {
	Dir string
}

var _ repo.KVStore = (*FSStore)(nil)

// Ключ не может начинаться с точки: это отсекает ".", ".." и временные файлы Set.
var keyRe = regexp.MustCompile(`^[A-Za-z0-9_][A-Za-z0-9._-]*$`)

// DefaultDir возвращает каталог хранилища в пользовательском конфиге: <UserConfigDir>/Mintopia.
func DefaultDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "Mintopia"), nil
}

// New создаёт хранилище в dir. Пустой dir означает DefaultDir.
func New(dir string) (*FSStore, error) {
	if dir == "" {
		d, err := DefaultDir()
		if err != nil {
			return nil, err
		}
		dir = d
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}
	return &FSStore{Dir: dir}, nil
}

// ValidateKey проверяет, что ключ можно безопасно использовать как имя файла.
func ValidateKey(key string) error {
	if key == "" {
		return errors.New("key is required")
	}
	if !keyRe.MatchString(key) {
		return fmt.Errorf("invalid key: %q (allowed: letters, digits, . _ -, not starting with . or -)", key)
	}
	return nil
}

func (s *FSStore) path(key string) (string, error) {
	if err := ValidateKey(key); err != nil {
		return "", err
	}
	return filepath.Join(s.Dir, key), nil
}

// Get читает значение ключа из файла.
func (s *FSStore) Get(_ context.Context, key string) (string, bool, error) {
	p, err := s.path(key)
	if err != nil {
		return "", false, err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", false, nil
		}
		return "", false, err
	}
	// обрезаем завершающие переводы строки/пробелы
	for len(b) > 0 {
		c := b[len(b)-1]
		if c == '\n' || c == '\r' || c == ' ' || c == '\t' {
			b = b[:len(b)-1]
			continue
		}
		break
	}
	return string(b), true, nil
}

// Set пишет значение во временный файл и атомарно переименовывает его поверх старого.
func (s *FSStore) Set(_ context.Context, key, value string) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(s.Dir, 0o700); err != nil {
		return err
	}
	tmp := filepath.Join(s.Dir, "."+key+"."+uuid.NewString()+".tmp")
	if err := os.WriteFile(tmp, []byte(value), 0o600); err != nil {
		return err
	}
	if err := os.Rename(tmp, p); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}

// Remove удаляет файл ключа.
func (s *FSStore) Remove(_ context.Context, key string) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
