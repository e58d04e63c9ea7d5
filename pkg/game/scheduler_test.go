package game

import (
	"testing"
	"time"
)

func TestSchedulerFiresOnceWhenDue(t *testing.T) {
	s := NewScheduler()
	calls := 0
	s.After(100*time.Millisecond, func() { calls++ })

	if n := s.Advance(50 * time.Millisecond); n != 0 || calls != 0 {
		t.Fatalf("Fired too early: n=%d calls=%d", n, calls)
	}
	if s.Pending() != 1 {
		t.Fatalf("Expected 1 pending task, got %d", s.Pending())
	}

	s.Advance(50 * time.Millisecond)
	if calls != 1 {
		t.Fatalf("Expected callback at 100ms, calls=%d", calls)
	}

	s.Advance(time.Second)
	if calls != 1 {
		t.Errorf("Callback must fire only once, calls=%d", calls)
	}
	if s.Pending() != 0 {
		t.Errorf("Expected no pending tasks, got %d", s.Pending())
	}
}

func TestSchedulerOrder(t *testing.T) {
	s := NewScheduler()
	var order []string
	s.After(30*time.Millisecond, func() { order = append(order, "c") })
	s.After(10*time.Millisecond, func() { order = append(order, "a") })
	s.After(10*time.Millisecond, func() { order = append(order, "b") })

	s.Advance(time.Second)

	want := []string{"a", "b", "c"}
	if len(order) != len(want) {
		t.Fatalf("Expected %v, got %v", want, order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("Expected %v, got %v", want, order)
			break
		}
	}
}

func TestSchedulerNestedAfterRunsNextAdvance(t *testing.T) {
	s := NewScheduler()
	inner := false
	s.After(0, func() {
		s.After(0, func() { inner = true })
	})

	s.Advance(0)
	if inner {
		t.Error("Task scheduled inside a callback should not run in the same Advance")
	}
	s.Advance(0)
	if !inner {
		t.Error("Nested task should run in the next Advance")
	}
}

func TestSchedulerFrameSteps(t *testing.T) {
	s := NewScheduler()
	fired := false
	s.After(100*time.Millisecond, func() { fired = true })

	frames := 0
	for !fired && frames < 100 {
		s.Advance(SecondsToDuration(1.0 / 60.0))
		frames++
	}
	// 100ms 在 60 FPS 下需要 6~7 帧
	if frames < 6 || frames > 7 {
		t.Errorf("Expected callback after 6-7 frames, got %d", frames)
	}
}

func TestSceneSessionFlags(t *testing.T) {
	s := NewSceneSession()

	if !s.HasFlag("") {
		t.Error("Empty requirement should always be satisfied")
	}
	if s.HasFlag("pinkmouse") {
		t.Error("Flag should not be set initially")
	}

	s.SetFlag("pinkmouse")
	s.SetFlag("")
	if !s.HasFlag("pinkmouse") {
		t.Error("Flag should be set")
	}
	if flags := s.Flags(); len(flags) != 1 || flags[0] != "pinkmouse" {
		t.Errorf("Unexpected flags: %v", flags)
	}
}

func TestDragSession(t *testing.T) {
	var d DragSession
	d.Begin(5, 12, 8)
	if !d.Active || d.Item != 5 || d.OffsetX != 12 || d.OffsetY != 8 {
		t.Errorf("Unexpected session after Begin: %+v", d)
	}
	d.Clear()
	if d.Active || d.Item != 0 {
		t.Errorf("Expected cleared session, got %+v", d)
	}
}
