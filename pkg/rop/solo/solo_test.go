package solo

import (
	"context"
	"errors"
	"testing"

	"github.com/ib-77/ropchain/pkg/rop"
)

func nonEmpty(_ context.Context, s string) (bool, string) {
	if s == "" {
		return false, "empty"
	}
	return true, ""
}

func TestValidate_SuccessAndFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	ok := Validate(ctx, "alice", nonEmpty)
	if !ok.IsSuccess() || ok.Result() != "alice" {
		t.Fatalf("expected success 'alice', got success=%v err=%v", ok.IsSuccess(), ok.Err())
	}

	bad := Validate(ctx, "", nonEmpty)
	if bad.IsSuccess() || bad.Err() == nil || bad.Err().Error() != "empty" {
		t.Fatalf("expected failure 'empty', got success=%v err=%v", bad.IsSuccess(), bad.Err())
	}
}

func TestAndValidate_SkipsOnFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	called := false
	out := AndValidate(ctx, rop.Fail[string](errors.New("upstream")),
		func(ctx context.Context, in string) (bool, string) {
			called = true
			return true, ""
		})
	if called {
		t.Fatalf("validate must not run on a failed input")
	}
	if out.Err() == nil || out.Err().Error() != "upstream" {
		t.Fatalf("expected upstream error to pass through, got %v", out.Err())
	}
}

func TestAndValidate_CancelledContext(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out := AndValidate(ctx, Succeed("x"), nonEmpty)
	if !out.IsCancel() || !errors.Is(out.Err(), context.Canceled) {
		t.Fatalf("expected cancel, got cancel=%v err=%v", out.IsCancel(), out.Err())
	}
}

func TestSwitch_PropagatesTracks(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	length := func(ctx context.Context, s string) rop.Result[int] { return rop.Success(len(s)) }

	if out := Switch(ctx, Succeed("abc"), length); !out.IsSuccess() || out.Result() != 3 {
		t.Fatalf("expected success 3, got success=%v val=%v", out.IsSuccess(), out.Result())
	}
	if out := Switch(ctx, rop.Fail[string](errors.New("f")), length); !out.IsFailure() {
		t.Fatalf("expected failure to propagate")
	}
	if out := Switch(ctx, rop.Cancel[string](context.Canceled), length); !out.IsCancel() {
		t.Fatalf("expected cancel to propagate")
	}
}

func TestTee_OnlyOnSuccess(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	calls := 0
	side := func(ctx context.Context, r rop.Result[int]) { calls++ }

	Tee(ctx, Succeed(1), side)
	Tee(ctx, rop.Fail[int](errors.New("x")), side)
	if calls != 1 {
		t.Fatalf("expected one side effect, got %d", calls)
	}
}

func TestFinally_SuccessFailureCancel(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	onOk := func(ctx context.Context, v int) string { return "ok" }
	onErr := func(ctx context.Context, err error) string { return "fail" }
	onCancel := func(ctx context.Context, err error) string { return "cancel" }

	if s := Finally(ctx, Succeed(2), onOk, onErr, onCancel); s != "ok" {
		t.Fatalf("expected 'ok', got %q", s)
	}
	if s := Finally(ctx, rop.Fail[int](errors.New("e")), onOk, onErr, onCancel); s != "fail" {
		t.Fatalf("expected 'fail', got %q", s)
	}
	if s := Finally(ctx, rop.Cancel[int](errors.New("c")), onOk, onErr, onCancel); s != "cancel" {
		t.Fatalf("expected 'cancel', got %q", s)
	}
}
