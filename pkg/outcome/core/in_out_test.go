package core

import (
	"context"
	"testing"
)

func TestToChan_SingleValueThenClose(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	ch := ToChan(ctx, 42)

	v, ok := <-ch
	if !ok || v != 42 {
		t.Fatalf("expected 42, got: %v ok=%v", v, ok)
	}
	if _, ok := <-ch; ok {
		t.Fatalf("channel should close after the single value")
	}
}

func TestToChanMany_RoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	source := []string{"a", "b", "c"}
	got := FromChanMany(ctx, ToChanMany(ctx, source))

	if len(got) != len(source) {
		t.Fatalf("expected %v, got %v", source, got)
	}
	for i := range source {
		if got[i] != source[i] {
			t.Fatalf("expected %v in order, got %v", source, got)
		}
	}
}

func TestFromChanFirstOrDefault_TakesFirst(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	got := FromChanFirstOrDefault(ctx, ToChanMany(ctx, []int{7, 8, 9}), -1)
	if got != 7 {
		t.Fatalf("expected first value 7, got %d", got)
	}
}

func TestFromChanFirstOrDefault_DefaultWhenEmpty(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	got := FromChanFirstOrDefault(ctx, ToChanMany(ctx, []int{}), -1)
	if got != -1 {
		t.Fatalf("expected default -1 for empty input, got %d", got)
	}
}

func TestToChanOutcomes_OnSuccessPerValue(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var sent []int
	handlers := ToChanHandlers[int]{
		OnSuccess: func(_ context.Context, v int) { sent = append(sent, v) },
	}

	count := 0
	for o := range ToChanManyOutcomesWithHandlers(ctx, handlers, []int{1, 2, 3}) {
		if !o.IsSuccess() {
			t.Fatalf("expected only successes from the feed, got: %v", o.Err())
		}
		count++
	}

	if count != 3 || len(sent) != 3 {
		t.Fatalf("expected 3 values and 3 callbacks, got %d/%d", count, len(sent))
	}
}

func TestToChanOutcomes_OnBreakReceivesRest(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())

	restCh := make(chan []string, 1)
	handlers := ToChanHandlers[string]{
		OnBreak: func(_ context.Context, rest []string) { restCh <- rest },
	}

	ch := ToChanManyOutcomesWithHandlers(ctx, handlers, []string{"a", "b", "c"})

	first := <-ch
	if !first.IsSuccess() || first.Value() != "a" {
		t.Fatalf("expected first value 'a', got: %v err=%v", first.Value(), first.Err())
	}

	cancel()

	rest := <-restCh
	if len(rest) != 2 || rest[0] != "b" || rest[1] != "c" {
		t.Fatalf("expected rest [b c], got: %v", rest)
	}
	if _, ok := <-ch; ok {
		t.Fatalf("no further values expected after cancellation")
	}
}

func TestToChanOutcomes_OnStartFail(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	inputCh := make(chan []int, 1)
	handlers := ToChanHandlers[int]{
		OnStartFail: func(_ context.Context, input []int) { inputCh <- input },
	}

	ch := ToChanManyOutcomesWithHandlers(ctx, handlers, []int{1, 2})

	got := <-inputCh
	if len(got) != 2 {
		t.Fatalf("expected the full input on start failure, got: %v", got)
	}
	if _, ok := <-ch; ok {
		t.Fatalf("feed must emit nothing when ctx is already done")
	}
}
