package notation

import "testing"

func TestCalculateProgress(t *testing.T) {
	tests := []struct {
		current, total, want int
	}{
		{0, 0, 0},
		{3, 0, 0},
		{0, 6, 0},
		{3, 6, 50},
		{4, 6, 67},
		{6, 6, 100},
		{8, 6, 100},
		{-1, 6, 0},
	}
	for _, tc := range tests {
		if got := CalculateProgress(tc.current, tc.total); got != tc.want {
			t.Fatalf("CalculateProgress(%d, %d) = %d, want %d", tc.current, tc.total, got, tc.want)
		}
	}
}

func TestIsComplete(t *testing.T) {
	if !IsComplete(6, 6) || !IsComplete(7, 6) {
		t.Fatal("expected complete at or past total")
	}
	if IsComplete(5, 6) || IsComplete(0, 0) {
		t.Fatal("expected incomplete")
	}
}

func TestIsNearComplete(t *testing.T) {
	if !IsNearComplete(3, 4) {
		t.Fatal("expected 3/4 to be near complete at the 0.75 boundary")
	}
	if IsNearComplete(2, 4) {
		t.Fatal("expected 2/4 not near complete")
	}
	if IsNearComplete(4, 4) {
		t.Fatal("a complete element is not near complete")
	}
	if IsNearComplete(1, 0) {
		t.Fatal("zero total is never near complete")
	}
	if !IsNearCompleteAt(1, 2, 0.5) {
		t.Fatal("expected configured fraction to apply")
	}
}

func TestIsTimerUrgent(t *testing.T) {
	for value, want := range map[int]bool{3: false, 2: true, 1: true, 0: false, -1: false} {
		if got := IsTimerUrgent(value); got != want {
			t.Fatalf("IsTimerUrgent(%d) = %v, want %v", value, got, want)
		}
	}
	if IsTimerUrgentAt(3, 5) != true || IsTimerUrgentAt(6, 5) != false {
		t.Fatal("expected configured threshold to apply")
	}
}
