package chain

import (
	"errors"
	"testing"

	"github.com/ib-77/cond/pkg/cond"
)

func TestFrom_Facets(t *testing.T) {
	t.Parallel()

	if !From[int](true).Valid() {
		t.Fatalf("expected valid branch for true")
	}
	if From[int](false).Valid() {
		t.Fatalf("expected invalid branch for false")
	}
	if !If(true).Valid() || If(false).Valid() {
		t.Fatalf("expected If to mirror From")
	}
}

func TestIfFunc_EvaluatesOnce(t *testing.T) {
	t.Parallel()

	calls := 0
	b := IfFunc(func() bool {
		calls++
		return true
	})
	if !b.Valid() || calls != 1 {
		t.Fatalf("expected valid after one call, got valid=%v calls=%d", b.Valid(), calls)
	}
}

func TestRun_ValidThenInert(t *testing.T) {
	t.Parallel()

	first, second := 0, 0
	c := If(true).Run(func() { first++ })
	if first != 1 || !c.Value() {
		t.Fatalf("expected first action once, got calls=%d value=%v", first, c.Value())
	}

	c.ElseIf(true).Run(func() { second++ })
	if second != 0 {
		t.Fatalf("expected second action not to run, got calls=%d", second)
	}
}

func TestRun_InvalidPassesThrough(t *testing.T) {
	t.Parallel()

	calls := 0
	c := If(false).Run(func() { calls++ })
	if calls != 0 || c.Value() {
		t.Fatalf("expected no call and untaken chain, got calls=%d value=%v", calls, c.Value())
	}
}

func TestSet_FirstValidWins(t *testing.T) {
	t.Parallel()

	calls := 0
	c := From[string](false).Set(func() string { return "a" }).
		ElseIf(true).Set(func() string { return "b" }).
		ElseIf(true).Set(func() string {
			calls++
			return "c"
		})

	if v, ok := c.Get().Get(); !ok || v != "b" {
		t.Fatalf("expected 'b', got %v", c.Get())
	}
	if calls != 0 {
		t.Fatalf("expected later supplier not to run, got calls=%d", calls)
	}
}

func TestScenario_Unknown(t *testing.T) {
	t.Parallel()

	n := 10
	end := From[string](n >= 1 && n <= 3).Set(func() string { return "low" }).
		ElseIf(n >= 4 && n <= 6).Set(func() string { return "mid" }).
		ElseIf(n >= 7 && n <= 9).Set(func() string { return "high" }).
		OrElseSet(func() string { return "unknown" })

	if v, ok := end.Get().Get(); !ok || v != "unknown" {
		t.Fatalf("expected 'unknown', got %v", end.Get())
	}
}

func TestOrElse_OnlyWhenNothingTaken(t *testing.T) {
	t.Parallel()

	calls := 0
	If(false).Run(func() {}).ElseIf(false).Run(func() {}).OrElse(func() { calls++ })
	if calls != 1 {
		t.Fatalf("expected default once, got calls=%d", calls)
	}

	If(false).Run(func() {}).ElseIf(true).Run(func() {}).OrElse(func() { calls++ })
	if calls != 1 {
		t.Fatalf("expected default to be skipped, got calls=%d", calls)
	}
}

func TestOrElseSet_KeepsCommittedResult(t *testing.T) {
	t.Parallel()

	calls := 0
	end := From[int](true).Set(func() int { return 1 }).OrElseSet(func() int {
		calls++
		return 2
	})
	if v, _ := end.Get().Get(); v != 1 || calls != 0 {
		t.Fatalf("expected 1 without default, got %v calls=%d", end.Get(), calls)
	}
}

func TestRaise_Valid(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	calls := 0

	later := func() int {
		calls++
		return 1
	}

	end := From[int](true).Raise(func() error { return boom }).
		ElseIf(true).Set(later).
		OrElse(func() { calls++ })

	if !errors.Is(end.Err(), boom) {
		t.Fatalf("expected boom, got %v", end.Err())
	}
	if end.Get().IsSome() || calls != 0 {
		t.Fatalf("expected nothing after raise, got %v calls=%d", end.Get(), calls)
	}
}

func TestRaise_InvalidSkipsSupplier(t *testing.T) {
	t.Parallel()

	calls := 0
	c := From[int](false).Raise(func() error {
		calls++
		return errors.New("boom")
	})
	if c.Err() != nil || calls != 0 {
		t.Fatalf("expected no error, got %v calls=%d", c.Err(), calls)
	}

	c = From[int](true).Set(func() int { return 1 }).ElseIf(true).Raise(func() error {
		calls++
		return errors.New("boom")
	})
	if c.Err() != nil || calls != 0 {
		t.Fatalf("expected taken chain to ignore raise, got %v calls=%d", c.Err(), calls)
	}
}

func TestOrElseRaise(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	if err := From[int](false).Run(func() {}).OrElseRaise(func() error { return boom }).Err(); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if err := From[int](true).Run(func() {}).OrElseRaise(func() error { return boom }).Err(); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestElseIfFunc_LazyAfterTaken(t *testing.T) {
	t.Parallel()

	calls := 0
	p := func() bool {
		calls++
		return true
	}

	b := If(true).Run(func() {}).ElseIfFunc(p)
	if b.Valid() || calls != 0 {
		t.Fatalf("expected invalid branch without evaluating, got valid=%v calls=%d", b.Valid(), calls)
	}

	b = If(false).Run(func() {}).ElseIfFunc(p)
	if !b.Valid() || calls != 1 {
		t.Fatalf("expected valid branch after one call, got valid=%v calls=%d", b.Valid(), calls)
	}
}

func TestExactlyOnce(t *testing.T) {
	t.Parallel()

	for taken := -1; taken < 3; taken++ {
		fired := make([]int, 4)
		p := func(i int) bool { return i == taken }

		If(p(0)).Run(func() { fired[0]++ }).
			ElseIf(p(1)).Run(func() { fired[1]++ }).
			ElseIf(p(2)).Run(func() { fired[2]++ }).
			OrElse(func() { fired[3]++ })

		want := taken
		if taken < 0 {
			want = 3
		}
		for i, n := range fired {
			if (i == want && n != 1) || (i != want && n != 0) {
				t.Fatalf("taken=%d: expected only branch %d to fire, got %v", taken, want, fired)
			}
		}
	}
}

func TestSetAs(t *testing.T) {
	t.Parallel()

	c := SetAs(If(true), func() int { return 5 })
	if v, ok := c.Get().Get(); !ok || v != 5 {
		t.Fatalf("expected 5, got %v", c.Get())
	}

	calls := 0
	c = SetAs(If(true).Run(func() {}).ElseIf(true), func() int {
		calls++
		return 6
	})
	if !c.Value() || c.Get().IsSome() || calls != 0 {
		t.Fatalf("expected taken chain without result, got %v calls=%d", c, calls)
	}

	end := OrElseSetAs(If(false).Run(func() {}), func() string { return "default" })
	if v, _ := end.Get().Get(); v != "default" {
		t.Fatalf("expected 'default', got %v", end.Get())
	}

	end = OrElseSetAs(If(true).Run(func() {}), func() string { return "default" })
	if end.Get().IsSome() {
		t.Fatalf("expected no result, got %v", end.Get())
	}
}

func TestPanicPropagates(t *testing.T) {
	t.Parallel()

	defer func() {
		if rec := recover(); rec != "boom" {
			t.Fatalf("expected panic 'boom', got %v", rec)
		}
	}()
	From[int](true).Set(func() int { panic("boom") })
}

func TestString(t *testing.T) {
	t.Parallel()

	if s := From[int](true).Set(func() int { return 2 }).String(); s != "Condition[value=true, result=Some(2)]" {
		t.Fatalf("unexpected string %q", s)
	}
}

var (
	_ cond.Truth        = Chain[int]{}
	_ cond.Outcome[int] = Chain[int]{}
	_ cond.Outcome[int] = End[int]{}
)
