package game

import "testing"

func TestThrottlerRunsFirstCall(t *testing.T) {
	th := NewThrottler(3)
	var runs []int
	for i := 0; i < 8; i++ {
		th.TryRun(func() { runs = append(runs, i) })
	}

	want := []int{0, 3, 6}
	if len(runs) != len(want) {
		t.Fatalf("runs = %v, want %v", runs, want)
	}
	for i := range want {
		if runs[i] != want[i] {
			t.Errorf("runs = %v, want %v", runs, want)
			break
		}
	}
}

func TestThrottlerEveryCall(t *testing.T) {
	for _, every := range []int{1, 0, -4} {
		th := NewThrottler(every)
		n := 0
		for i := 0; i < 5; i++ {
			th.TryRun(func() { n++ })
		}
		if n != 5 {
			t.Errorf("NewThrottler(%d): ran %d times, want 5", every, n)
		}
	}
}

func TestThrottlerPrime(t *testing.T) {
	th := NewThrottler(10)
	th.TryRun(func() {})

	if th.TryRun(func() {}) {
		t.Fatal("second call should be throttled")
	}
	th.Prime()
	if !th.TryRun(func() {}) {
		t.Error("call after Prime should run")
	}
}
