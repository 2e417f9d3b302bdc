package sizing

import "testing"

func TestTargetHeight(t *testing.T) {
	tests := []struct {
		name  string
		width float32
		timer bool
		want  float32
	}{
		{name: "default width", width: 300, want: 520},
		{name: "default width with timer", width: 300, timer: true, want: 620},
		{name: "wide window", width: 420, want: 760},
		{name: "wide window with timer", width: 420, timer: true, want: 860},
		{name: "housing floor", width: 150, want: 350},
		{name: "housing floor with timer", width: 150, timer: true, want: 420},
		{name: "housing floor boundary", width: 200, want: 350},
		{name: "window floor", width: 215, want: 350},
		{name: "just above window floor", width: 216, want: 352},
		{name: "rounded up", width: 250.3, want: 421},
		{name: "rounded down", width: 250.2, want: 420},
		{name: "zero width", width: 0, want: 350},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TargetHeight(tt.width, tt.timer); got != tt.want {
				t.Errorf("TargetHeight(%v, %v) = %v, want %v", tt.width, tt.timer, got, tt.want)
			}
		})
	}
}

func TestTimerAddsPanelHeightAboveFloor(t *testing.T) {
	// Начиная с ширины 215 базовая высота уже не меньше 350.
	for width := float32(215); width <= 1200; width += 7 {
		diff := TargetHeight(width, true) - TargetHeight(width, false)
		if diff != TimerPanelHeight {
			t.Fatalf("width %v: timer difference = %v, want %v", width, diff, TimerPanelHeight)
		}
	}
}

func TestTargetHeightIsInteger(t *testing.T) {
	for width := float32(100); width < 600; width += 0.37 {
		h := TargetHeight(width, false)
		if h != float32(int(h)) {
			t.Fatalf("TargetHeight(%v) = %v is not an integer", width, h)
		}
		if h < MinWindowHeight {
			t.Fatalf("TargetHeight(%v) = %v below floor", width, h)
		}
	}
}

func TestNeedsCorrection(t *testing.T) {
	tests := []struct {
		reported float32
		target   float32
		want     bool
	}{
		{reported: 520, target: 520, want: false},
		{reported: 530, target: 520, want: false}, // ровно на границе
		{reported: 510, target: 520, want: false},
		{reported: 530.5, target: 520, want: true},
		{reported: 509, target: 520, want: true},
		{reported: 600, target: 520, want: true},
	}

	for _, tt := range tests {
		if got := NeedsCorrection(tt.reported, tt.target); got != tt.want {
			t.Errorf("NeedsCorrection(%v, %v) = %v, want %v", tt.reported, tt.target, got, tt.want)
		}
	}
}
