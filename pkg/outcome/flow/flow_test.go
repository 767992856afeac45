package flow

import (
	"context"
	"errors"
	"testing"

	"github.com/ib-77/outcome/pkg/fail"
	"github.com/ib-77/outcome/pkg/outcome"
)

func TestStartAndOutcome_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := Start(ctx, outcome.Succeed(5))
	out := f.Outcome()
	if !out.IsSuccess() || out.Value() != 5 {
		t.Fatalf("expected success with 5, got: success=%v, val=%v, err=%v", out.IsSuccess(), out.Value(), out.Err())
	}
}

func TestFromValue(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := FromValue(ctx, 7).Outcome()
	if !out.IsSuccess() || out.Value() != 7 {
		t.Fatalf("expected success with 7, got: success=%v, val=%v, err=%v", out.IsSuccess(), out.Value(), out.Err())
	}
}

func TestThen_ShortCircuitOnFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	called := false
	f := Then(Start(ctx, outcome.FailMsg[int]("boom")),
		func(ctx context.Context, n int) outcome.Outcome[int] {
			called = true
			return outcome.Succeed(n + 1)
		})

	out := f.Outcome()
	if out.IsSuccess() || out.Err() == nil || out.Err().Error() != "boom" {
		t.Fatalf("expected failure 'boom', got: success=%v, err=%v", out.IsSuccess(), out.Err())
	}
	if called {
		t.Fatalf("onSuccess should not be called when the flow has already failed")
	}
}

func TestThenTry_FaultUnderContext(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	fault := errors.New("connection refused")
	f := ThenTry(FromValue(ctx, "id-1"), "fetch record id-1",
		func(ctx context.Context, id string) (int, error) {
			return 0, fault
		})

	out := f.Outcome()
	if out.IsSuccess() {
		t.Fatalf("expected failure")
	}
	if got := out.Chain().UserMessage(); got != "fetch record id-1 <- connection refused" {
		t.Fatalf("unexpected narrative: %q", got)
	}
	if !errors.Is(out.Chain().RootFault(), fault) {
		t.Fatalf("root fault lost")
	}
}

func TestAnnotate_OnlyTouchesFailures(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	ok := FromValue(ctx, 1).Annotate("outer").Outcome()
	if !ok.IsSuccess() || ok.Value() != 1 {
		t.Fatalf("annotation altered success: %v", ok.Err())
	}

	bad := Start(ctx, outcome.FailMsg[int]("inner")).Annotate("outer").Outcome()
	if got := bad.Chain().UserMessage(); got != "outer <- inner" {
		t.Fatalf("expected 'outer <- inner', got %q", got)
	}
}

func TestOnError_AliasOfAnnotate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	a := Start(ctx, outcome.FailMsg[int]("inner")).OnError("outer").Outcome()
	b := Start(ctx, outcome.FailMsg[int]("inner")).Annotate("outer").Outcome()
	if a.Chain().UserMessage() != b.Chain().UserMessage() {
		t.Fatalf("OnError and Annotate diverged: %q vs %q",
			a.Chain().UserMessage(), b.Chain().UserMessage())
	}
}

func TestThreeStepPipeline_MiddleFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	step3Called := false
	fault := errors.New("timeout")

	f := FromValue(ctx, "fanf42")
	f1 := ThenTry(f, "fetch user fanf42",
		func(ctx context.Context, id string) (string, error) { return id + ":record", nil })
	f2 := ThenTry(f1, "check permissions",
		func(ctx context.Context, rec string) (string, error) { return "", fault })
	f3 := ThenTry(f2, "persist user",
		func(ctx context.Context, rec string) (string, error) {
			step3Called = true
			return rec, nil
		})
	final := f3.Annotate("handle update request")

	if step3Called {
		t.Fatalf("step 3 must not run after step 2 failed")
	}

	out := final.Outcome()
	want := "handle update request <- check permissions <- timeout"
	if got := out.Chain().UserMessage(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestEnsure_SideEffectOnlyOnSuccess(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	called := 0
	FromValue(ctx, 2).Ensure(func(ctx context.Context, n int) { called++ })
	if called != 1 {
		t.Fatalf("expected side effect once on success, got %d", called)
	}

	Start(ctx, outcome.FailMsg[int]("x")).Ensure(func(ctx context.Context, n int) { called++ })
	if called != 1 {
		t.Fatalf("side effect must not run on failure")
	}
}

func TestFinally(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	got := Finally(FromValue(ctx, 3),
		func(ctx context.Context, n int) string { return "ok" },
		func(ctx context.Context, c *fail.Chain) string { return c.UserMessage() })
	if got != "ok" {
		t.Fatalf("expected 'ok', got %q", got)
	}

	got = Finally(Start(ctx, outcome.FailFault[int]("save", errors.New("disk full"))),
		func(ctx context.Context, n int) string { return "ok" },
		func(ctx context.Context, c *fail.Chain) string { return c.UserMessage() })
	if got != "save <- disk full" {
		t.Fatalf("expected failure narrative, got %q", got)
	}
}
