package commands

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"Mintopia/internal/cli/repo/memory"
	"Mintopia/internal/cli/session"
)

func TestLoginWhoamiLogout_AcrossInvocations(t *testing.T) {
	cfg := withTempConfig(t)
	ctx := context.Background()

	out := withStdoutCapture(t, func() {
		if code := Dispatch(ctx, cfg, []string{"login", `{"id":1,"name":"Ann"}`}); code != 0 {
			t.Fatalf("login exit code %d", code)
		}
	})
	if !strings.Contains(out, "Logged in successfully") {
		t.Fatalf("login message expected, got: %s", out)
	}
	// файл сессии лежит в STORAGE_DIR/mintopia_user
	if _, err := os.Stat(filepath.Join(cfg.StorageDir, "mintopia_user")); err != nil {
		t.Fatalf("session file not saved: %v", err)
	}

	// новый запуск читает сессию из хранилища
	out = withStdoutCapture(t, func() {
		if code := Dispatch(ctx, cfg, []string{"whoami"}); code != 0 {
			t.Fatalf("whoami exit code %d", code)
		}
	})
	if strings.TrimSpace(out) != `{"id":1,"name":"Ann"}` {
		t.Fatalf("unexpected whoami output: %q", out)
	}

	withStdoutCapture(t, func() {
		if code := Dispatch(ctx, cfg, []string{"logout"}); code != 0 {
			t.Fatalf("logout exit code %d", code)
		}
		// повторный logout: no-op
		if code := Dispatch(ctx, cfg, []string{"logout"}); code != 0 {
			t.Fatalf("second logout exit code %d", code)
		}
	})

	out = withStdoutCapture(t, func() {
		if code := Dispatch(ctx, cfg, []string{"whoami"}); code != 1 {
			t.Fatalf("whoami after logout must fail, got %d", code)
		}
	})
	if !strings.Contains(out, "not logged in") {
		t.Fatalf("not logged in expected, got: %s", out)
	}
}

func TestLogin_Run_Errors(t *testing.T) {
	st, err := session.Open[any](context.Background(), memory.New())
	if err != nil {
		t.Fatal(err)
	}
	ctx := session.WithStore(context.Background(), st)
	cmd := loginCmd{}

	// недостаточно/лишние аргументы → ErrUsage
	if err := cmd.Run(ctx, nil, nil); err != ErrUsage {
		t.Fatalf("expected ErrUsage, got %v", err)
	}
	if err := cmd.Run(ctx, nil, []string{"{}", "{}"}); err != ErrUsage {
		t.Fatalf("expected ErrUsage, got %v", err)
	}
	// битый JSON
	if err := cmd.Run(ctx, nil, []string{"{"}); err == nil {
		t.Fatalf("expected error for bad json")
	}
	// null не является пользователем
	if err := cmd.Run(ctx, nil, []string{"null"}); err == nil {
		t.Fatalf("expected error for null user")
	}
	if st.IsAuthenticated() {
		t.Fatalf("failed logins must not authenticate")
	}
}

func TestCommands_PanicOutsideScope(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic without a session in context")
		}
	}()
	_ = (whoamiCmd{}).Run(context.Background(), nil, nil)
}

func TestLogin_LargeIntegerRoundTrip(t *testing.T) {
	cfg := withTempConfig(t)
	ctx := context.Background()

	withStdoutCapture(t, func() {
		if code := Dispatch(ctx, cfg, []string{"login", `{"id":9007199254740993}`}); code != 0 {
			t.Fatalf("login exit code %d", code)
		}
	})
	out := withStdoutCapture(t, func() {
		if code := Dispatch(ctx, cfg, []string{"whoami"}); code != 0 {
			t.Fatalf("whoami exit code %d", code)
		}
	})
	if strings.TrimSpace(out) != `{"id":9007199254740993}` {
		t.Fatalf("integer precision lost: %q", out)
	}
}
