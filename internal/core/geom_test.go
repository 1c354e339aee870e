package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside top", 15, 5, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestRectSplitLeft(t *testing.T) {
	tests := []struct {
		name     string
		r        Rect
		w, gap   int
		wantLeft Rect
		wantRest Rect
	}{
		{
			name:     "with gap",
			r:        NewRect(0, 0, 40, 10),
			w:        20,
			gap:      2,
			wantLeft: NewRect(0, 0, 20, 10),
			wantRest: NewRect(22, 0, 18, 10),
		},
		{
			name:     "left wider than rect",
			r:        NewRect(5, 1, 10, 3),
			w:        30,
			gap:      1,
			wantLeft: NewRect(5, 1, 10, 3),
			wantRest: NewRect(15, 1, 0, 3),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			left, rest := tc.r.SplitLeft(tc.w, tc.gap)
			if left != tc.wantLeft {
				t.Errorf("left = %+v, expected %+v", left, tc.wantLeft)
			}
			if rest != tc.wantRest {
				t.Errorf("rest = %+v, expected %+v", rest, tc.wantRest)
			}
		})
	}
}

func TestRectSplitTop(t *testing.T) {
	top, rest := NewRect(0, 2, 30, 10).SplitTop(3)
	if top != NewRect(0, 2, 30, 3) {
		t.Errorf("top = %+v", top)
	}
	if rest != NewRect(0, 5, 30, 7) {
		t.Errorf("rest = %+v", rest)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestInputFrameOrder(t *testing.T) {
	f := NewInputFrame()
	f.AddLetter('a')
	f.Set(ActionDelete)
	f.Set(ActionNone)
	f.AddLetter('b')

	events := f.Events()
	if len(events) != 3 {
		t.Fatalf("expected 3 events (ActionNone dropped), got %d", len(events))
	}
	if events[0].Letter != 'a' || events[1].Action != ActionDelete || events[2].Letter != 'b' {
		t.Errorf("events out of order: %+v", events)
	}
	if !f.Has(ActionDelete) || f.Has(ActionConfirm) {
		t.Error("Has() mismatch")
	}

	f.Clear()
	if len(f.Events()) != 0 {
		t.Error("Clear should drop all events")
	}
}

func TestOutcomeSuccess(t *testing.T) {
	wins := 0
	for _, o := range Outcomes {
		if o.Success() {
			wins++
		}
	}
	if wins != 2 || !OutcomeSolved.Success() || !OutcomeWon.Success() {
		t.Errorf("expected solved and won to be the only wins, got %d", wins)
	}
	if OutcomeRevealed.Success() || OutcomeLost.Success() || OutcomeNone.Success() {
		t.Error("revealed, lost and none are not wins")
	}
}
