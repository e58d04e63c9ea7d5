package config

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchDebounce 同一文件最后一次事件之后静默该时间才上报
// 编辑器保存一个文件通常会先截断再写入，只有最后一次写入后的内容是完整的
const watchDebounce = 100 * time.Millisecond

// Watcher 监听配置覆盖目录中 YAML 文件的变化
//
// 事件在后台 goroutine 中产生，通过 Events 通道交给游戏循环；
// 游戏循环在 Update 中非阻塞地读取，场景状态只在游戏 goroutine 上修改。
type Watcher struct {
	watcher *fsnotify.Watcher
	Events  chan string // 发生变化的文件路径
	Errors  chan error
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once

	fired chan string // 去抖计时器到期的文件
}

// NewWatcher 创建监听器
//
// 参数：
//   - dirs: 要监听的目录（不递归）
//
// 返回：
//   - *Watcher: 已启动的监听器
//   - error: 创建 fsnotify 监听器或添加目录失败
func NewWatcher(dirs ...string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	watcher := &Watcher{
		watcher: w,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
		fired:   make(chan string, 16),
	}
	go watcher.run()
	return watcher, nil
}

// Close 停止监听
// 可以重复调用；返回后 Events 和 Errors 已关闭
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
	})
	return err
}

// Drain 非阻塞地取出所有待处理的变化，同一文件只返回一次
func (w *Watcher) Drain() []string {
	var changed []string
	seen := make(map[string]bool)
	for {
		select {
		case name, ok := <-w.Events:
			if !ok {
				return changed
			}
			if !seen[name] {
				seen[name] = true
				changed = append(changed, name)
			}
		default:
			return changed
		}
	}
}

func (w *Watcher) run() {
	timers := make(map[string]*time.Timer)
	defer func() {
		for _, t := range timers {
			t.Stop()
		}
		close(w.Events)
		close(w.Errors)
		close(w.done)
	}()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !IsConfigFile(event.Name) {
				continue
			}
			w.schedule(timers, event.Name)

		case name := <-w.fired:
			delete(timers, name)
			select {
			case w.Events <- name:
			case <-w.closeCh:
				return
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// 错误通道满时丢弃，避免阻塞监听
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

// schedule 为文件启动或重置去抖计时器
// 计时器在最后一次事件 watchDebounce 之后触发
func (w *Watcher) schedule(timers map[string]*time.Timer, name string) {
	if t, ok := timers[name]; ok && t.Stop() {
		t.Reset(watchDebounce)
		return
	}
	timers[name] = time.AfterFunc(watchDebounce, func() {
		select {
		case w.fired <- name:
		case <-w.closeCh:
		}
	})
}

// IsConfigFile 是否是 YAML 配置文件
func IsConfigFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// SceneIDFromPath 从配置文件路径得到场景ID
// 例如 "/tmp/override/scenes/explore.yaml" -> "explore"
func SceneIDFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
