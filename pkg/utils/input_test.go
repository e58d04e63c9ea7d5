package utils

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func mouse(pressed bool, x, y int) PointerSample {
	return PointerSample{MousePressed: pressed, MouseX: x, MouseY: y}
}

func touches(points ...TouchPoint) PointerSample {
	return PointerSample{Touches: points}
}

func TestPointerTrackerInitialState(t *testing.T) {
	pt := NewPointerTracker()

	if pt.IsActive() {
		t.Error("Expected tracker to be idle initially")
	}

	if events := pt.Update(mouse(false, 10, 10)); len(events) != 0 {
		t.Errorf("Expected no events for idle mouse, got %v", events)
	}

	if x, y := pt.HoverPosition(); x != 10 || y != 10 {
		t.Errorf("Expected hover (10, 10), got (%.0f, %.0f)", x, y)
	}
}

func TestPointerTrackerMouseGesture(t *testing.T) {
	pt := NewPointerTracker()

	steps := []struct {
		name   string
		sample PointerSample
		want   []PointerEventType
	}{
		{"按下", mouse(true, 100, 100), []PointerEventType{PointerDown}},
		{"原地按住", mouse(true, 100, 100), nil},
		{"移动", mouse(true, 130, 120), []PointerEventType{PointerMove}},
		{"抬起", mouse(false, 140, 125), []PointerEventType{PointerUp}},
		{"空闲", mouse(false, 140, 125), nil},
	}

	for _, step := range steps {
		events := pt.Update(step.sample)
		if len(events) != len(step.want) {
			t.Fatalf("%s: expected %d events, got %v", step.name, len(step.want), events)
		}
		for i, ev := range events {
			if ev.Type != step.want[i] {
				t.Errorf("%s: event %d type = %v, want %v", step.name, i, ev.Type, step.want[i])
			}
			if ev.IsTouch {
				t.Errorf("%s: mouse event should not be marked as touch", step.name)
			}
		}
	}
}

func TestPointerTrackerMouseUpPosition(t *testing.T) {
	pt := NewPointerTracker()
	pt.Update(mouse(true, 0, 0))

	events := pt.Update(mouse(false, 320, 240))
	if len(events) != 1 || events[0].Type != PointerUp {
		t.Fatalf("Expected a single up event, got %v", events)
	}
	if events[0].X != 320 || events[0].Y != 240 {
		t.Errorf("Mouse up should report the release position, got (%.0f, %.0f)", events[0].X, events[0].Y)
	}
	if pt.IsActive() {
		t.Error("Tracker should be idle after release")
	}
}

func TestPointerTrackerTouchUsesLastPosition(t *testing.T) {
	pt := NewPointerTracker()

	events := pt.Update(touches(TouchPoint{ID: 7, X: 50, Y: 60}))
	if len(events) != 1 || events[0].Type != PointerDown || !events[0].IsTouch {
		t.Fatalf("Expected touch down, got %v", events)
	}

	events = pt.Update(touches(TouchPoint{ID: 7, X: 80, Y: 90}))
	if len(events) != 1 || events[0].Type != PointerMove {
		t.Fatalf("Expected touch move, got %v", events)
	}

	// 触摸结束时已经拿不到触摸点，使用最后记录的位置
	events = pt.Update(touches())
	if len(events) != 1 || events[0].Type != PointerUp {
		t.Fatalf("Expected touch up, got %v", events)
	}
	if events[0].X != 80 || events[0].Y != 90 {
		t.Errorf("Touch up should use last touch position (80, 90), got (%.0f, %.0f)", events[0].X, events[0].Y)
	}
}

func TestPointerTrackerFollowsFirstTouchOnly(t *testing.T) {
	pt := NewPointerTracker()

	pt.Update(touches(TouchPoint{ID: 1, X: 10, Y: 10}))

	// 第二根手指按下并移动不应该产生事件
	events := pt.Update(touches(
		TouchPoint{ID: 1, X: 10, Y: 10},
		TouchPoint{ID: 2, X: 500, Y: 500},
	))
	if len(events) != 0 {
		t.Errorf("Second touch should be ignored, got %v", events)
	}

	// 第一根手指抬起结束跟踪，即使第二根仍在屏幕上
	events = pt.Update(touches(TouchPoint{ID: 2, X: 510, Y: 510}))
	if len(events) != 1 || events[0].Type != PointerUp {
		t.Fatalf("Expected up when tracked touch ends, got %v", events)
	}

	// 仍在屏幕上的第二根手指不是新的按下
	events = pt.Update(touches(TouchPoint{ID: 2, X: 520, Y: 520}))
	if len(events) != 0 {
		t.Errorf("A touch that was already down should not start a gesture, got %v", events)
	}
}

func TestPointerTrackerTouchBeatsMouse(t *testing.T) {
	pt := NewPointerTracker()

	s := PointerSample{
		MousePressed: true, MouseX: 1, MouseY: 1,
		Touches: []TouchPoint{{ID: ebiten.TouchID(3), X: 200, Y: 200}},
	}
	events := pt.Update(s)
	if len(events) != 1 || !events[0].IsTouch {
		t.Fatalf("Touch should take priority over mouse, got %v", events)
	}
}

func TestPointerTrackerReset(t *testing.T) {
	pt := NewPointerTracker()
	pt.Update(mouse(true, 5, 5))
	pt.Reset()

	if pt.IsActive() {
		t.Error("Expected idle after Reset")
	}
	// 按键仍然按着，不会被当作新的按下
	if events := pt.Update(mouse(true, 6, 6)); len(events) != 0 {
		t.Errorf("Held button after Reset should not produce events, got %v", events)
	}
}
