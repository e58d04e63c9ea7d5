package game

import (
	"cmp"
	"slices"
	"time"
)

// Scheduler 帧驱动的一次性延时回调
//
// 回调只在 Advance 中、在游戏循环的 goroutine 上执行，
// 每个回调最多执行一次，且不可取消。
// 回调执行时它引用的实体可能已经被删除，回调需自行检查。
type Scheduler struct {
	now   time.Duration
	tasks []scheduledTask
}

type scheduledTask struct {
	due time.Duration
	fn  func()
}

// NewScheduler 创建调度器，内部时钟从 0 开始
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// After 在 delay 之后执行 fn
// delay <= 0 时在下一次 Advance 中执行
func (s *Scheduler) After(delay time.Duration, fn func()) {
	if fn == nil {
		return
	}
	if delay < 0 {
		delay = 0
	}
	s.tasks = append(s.tasks, scheduledTask{
		due: s.now + delay,
		fn:  fn,
	})
}

// Advance 推进内部时钟并执行所有到期的回调
//
// 回调按到期时间执行，同一时间按注册顺序。
// 回调中新注册的任务最早在下一次 Advance 执行。
//
// 返回：
//   - int: 本次执行的回调数量
func (s *Scheduler) Advance(dt time.Duration) int {
	if dt > 0 {
		s.now += dt
	}

	var due []scheduledTask
	remaining := s.tasks[:0]
	for _, task := range s.tasks {
		if task.due <= s.now {
			due = append(due, task)
		} else {
			remaining = append(remaining, task)
		}
	}
	// 清掉尾部残留的引用
	clear(s.tasks[len(remaining):])
	s.tasks = remaining

	// tasks 本身按注册顺序排列，稳定排序保证同一时间先注册先执行
	slices.SortStableFunc(due, func(a, b scheduledTask) int {
		return cmp.Compare(a.due, b.due)
	})

	for _, task := range due {
		task.fn()
	}
	return len(due)
}

// Pending 返回尚未执行的回调数量
func (s *Scheduler) Pending() int {
	return len(s.tasks)
}

// SecondsToDuration 把游戏循环的 deltaTime(秒) 转换为 time.Duration
func SecondsToDuration(seconds float64) time.Duration {
	return time.Duration(seconds * float64(time.Second))
}
