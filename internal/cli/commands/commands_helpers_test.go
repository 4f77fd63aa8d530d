package commands

import (
	"bytes"
	"runtime"
	"testing"

	"Mintopia/internal/config"
)

// withTempConfig переопределяет пользовательские каталоги на время теста,
// чтобы файл сессии создавался в temp. Возвращает fs-конфиг на этом каталоге.
func withTempConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	if runtime.GOOS == "windows" {
		t.Setenv("APPDATA", dir)
	} else {
		t.Setenv("XDG_CONFIG_HOME", dir)
	}
	return &config.Config{
		StorageBackend: config.BackendFS,
		StorageDir:     dir,
		SessionKey:     config.DefaultSessionKey,
	}
}

// перехват stdout на время теста
func withStdoutCapture(t *testing.T, fn func()) string {
	t.Helper()
	old := Out
	var buf bytes.Buffer
	Out = &buf
	defer func() { Out = old }()
	fn()
	return buf.String()
}
