package runners

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/reusee/dscope"
	"github.com/sekino/tra/configs"
	"github.com/sekino/tra/modes"
)

func testScope(t *testing.T) dscope.Scope {
	return dscope.New(
		modes.ForTest(t),
		new(Module),
		dscope.Provide(configs.NewLoader(nil, "")),
	)
}

func TestRun(t *testing.T) {
	testScope(t).Call(func(
		run Run,
	) {
		ctx := context.Background()

		t.Run("echo", func(t *testing.T) {
			result, err := run(ctx, "echo hi", WithTimeout(5))
			if err != nil {
				t.Fatal(err)
			}
			if result.ReturnCode != 0 {
				t.Fatalf("got %d", result.ReturnCode)
			}
			if result.Stdout != "hi\n" {
				t.Fatalf("got %q", result.Stdout)
			}
			if result.Stderr != "" {
				t.Fatalf("got %q", result.Stderr)
			}
		})

		t.Run("stderr", func(t *testing.T) {
			result, err := run(ctx, "echo oops >&2; exit 3")
			if err != nil {
				t.Fatal(err)
			}
			if result.ReturnCode != 3 {
				t.Fatalf("got %d", result.ReturnCode)
			}
			if result.Stdout != "" {
				t.Fatalf("got %q", result.Stdout)
			}
			if result.Stderr != "oops\n" {
				t.Fatalf("got %q", result.Stderr)
			}
		})

		t.Run("timeout", func(t *testing.T) {
			t0 := time.Now()
			_, err := run(ctx, "sleep 5", WithTimeout(0.1))
			if err == nil {
				t.Fatal("expected timeout")
			}
			if elapsed := time.Since(t0); elapsed > 3*time.Second {
				t.Fatalf("took %v", elapsed)
			}
			var timeoutErr *TimeoutError
			if !errors.As(err, &timeoutErr) {
				t.Fatalf("got %T", err)
			}
			if timeoutErr.Command != "sleep 5" {
				t.Fatalf("got %q", timeoutErr.Command)
			}
			if !strings.Contains(err.Error(), "sleep 5") {
				t.Fatalf("got %v", err)
			}
			if !strings.Contains(err.Error(), "0.1") {
				t.Fatalf("got %v", err)
			}
		})

		t.Run("background child holding pipes", func(t *testing.T) {
			t0 := time.Now()
			result, err := run(ctx, "sleep 3 & echo hi", WithTimeout(0.2))
			if err != nil {
				t.Fatal(err)
			}
			if elapsed := time.Since(t0); elapsed > 2*time.Second {
				t.Fatalf("took %v", elapsed)
			}
			if result.ReturnCode != 0 {
				t.Fatalf("got %d", result.ReturnCode)
			}
			if result.Stdout != "hi\n" {
				t.Fatalf("got %q", result.Stdout)
			}
		})

		t.Run("truncated stdout", func(t *testing.T) {
			result, err := run(ctx, "printf aaaaaaaaaa", WithTruncateAfter(4))
			if err != nil {
				t.Fatal(err)
			}
			if result.Stdout != "aaaa"+TruncationNotice {
				t.Fatalf("got %q", result.Stdout)
			}
			if result.Stderr != "" {
				t.Fatalf("got %q", result.Stderr)
			}
		})

		t.Run("truncation disabled", func(t *testing.T) {
			result, err := run(ctx, "printf aaaaaaaaaa", WithoutTruncation())
			if err != nil {
				t.Fatal(err)
			}
			if result.Stdout != "aaaaaaaaaa" {
				t.Fatalf("got %q", result.Stdout)
			}
		})
	})
}

func TestTruncate(t *testing.T) {
	limit := func(n int) *int {
		return &n
	}

	if got := Truncate("abc", nil); got != "abc" {
		t.Fatalf("got %q", got)
	}
	if got := Truncate("abc", limit(3)); got != "abc" {
		t.Fatalf("got %q", got)
	}
	if got := Truncate("abc", limit(5)); got != "abc" {
		t.Fatalf("got %q", got)
	}
	if got := Truncate("abcdef", limit(3)); got != "abc"+TruncationNotice {
		t.Fatalf("got %q", got)
	}
	// a cut landing inside a multi-byte rune backs off to the rune start
	if got := Truncate("héllo", limit(2)); got != "h"+TruncationNotice {
		t.Fatalf("got %q", got)
	}
	if got := Truncate("héllo", limit(3)); got != "hé"+TruncationNotice {
		t.Fatalf("got %q", got)
	}
}

func TestRunDefaults(t *testing.T) {
	testScope(t).Call(func(
		timeout CommandTimeout,
		truncateAfter TruncateAfter,
	) {
		if timeout != DefaultTimeout {
			t.Fatalf("got %v", timeout)
		}
		if truncateAfter != DefaultTruncateAfter {
			t.Fatalf("got %v", truncateAfter)
		}
	})
}
