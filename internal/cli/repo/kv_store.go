package repo

import "context"

// KVStore описывает долговременное key-value хранилище, в котором клиент
// держит состояние сессии. Значения хранятся как JSON-текст.
type KVStore interface {
	// Get возвращает значение по ключу. found=false, если ключа нет.
	Get(ctx context.Context, key string) (value string, found bool, err error)

	// Set записывает значение, перезаписывая предыдущее.
	Set(ctx context.Context, key, value string) error

	// Remove удаляет ключ. Отсутствие ключа ошибкой не считается.
	Remove(ctx context.Context, key string) error
}
