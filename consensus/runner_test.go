package consensus

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tsawler/tablature/model"
)

// fakeStrategy returns canned candidates after an optional delay. The
// delay deliberately ignores the context, modelling a hung external
// call that cannot be cancelled.
type fakeStrategy struct {
	name  string
	delay time.Duration
	out   []*model.CandidateTable
	err   error
}

func (f *fakeStrategy) Name() string { return f.name }

func (f *fakeStrategy) Extract(_ context.Context, _ *model.PageData) ([]*model.CandidateTable, error) {
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	return f.out, f.err
}

func TestRunWithTimeoutFastStrategy(t *testing.T) {
	want := []*model.CandidateTable{{Rows: [][]string{{"a", "b"}}}}
	s := &fakeStrategy{name: "fast", out: want}

	got, err := RunWithTimeout(context.Background(), s, &model.PageData{}, time.Second)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("got %d candidates, want 1", len(got))
	}
}

func TestRunWithTimeoutDeadline(t *testing.T) {
	s := &fakeStrategy{name: "slow", delay: 500 * time.Millisecond}

	start := time.Now()
	got, err := RunWithTimeout(context.Background(), s, &model.PageData{}, 20*time.Millisecond)
	elapsed := time.Since(start)

	if !errors.Is(err, ErrDeadline) {
		t.Fatalf("error = %v, want ErrDeadline", err)
	}
	if got != nil {
		t.Errorf("late result must be discarded, got %v", got)
	}
	if elapsed > time.Second {
		t.Errorf("wait was not bounded: %v", elapsed)
	}
}

func TestRunWithTimeoutZeroDisablesDeadline(t *testing.T) {
	want := []*model.CandidateTable{{Rows: [][]string{{"a", "b"}}}}
	s := &fakeStrategy{name: "fast", out: want}

	got, err := RunWithTimeout(context.Background(), s, &model.PageData{}, 0)
	if err != nil || len(got) != 1 {
		t.Errorf("got %v, %v", got, err)
	}
}

func TestRunWithTimeoutStrategyError(t *testing.T) {
	s := &fakeStrategy{name: "broken", err: errors.New("backend exploded")}

	_, err := RunWithTimeout(context.Background(), s, &model.PageData{}, time.Second)
	if err == nil || errors.Is(err, ErrDeadline) {
		t.Errorf("error = %v, want the strategy's own error", err)
	}
}

func TestRunWithTimeoutParentCancellation(t *testing.T) {
	s := &fakeStrategy{name: "slow", delay: 500 * time.Millisecond}

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	_, err := RunWithTimeout(ctx, s, &model.PageData{}, time.Minute)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestRegistry(t *testing.T) {
	reg := NewRegistry()
	s := &fakeStrategy{name: "fake"}
	reg.Register(s)

	if got := reg.Get("fake"); got != s {
		t.Errorf("Get returned %v", got)
	}
	if got := reg.Get("missing"); got != nil {
		t.Errorf("Get of unknown name = %v, want nil", got)
	}
	if names := reg.List(); len(names) != 1 || names[0] != "fake" {
		t.Errorf("List = %v", names)
	}
}
