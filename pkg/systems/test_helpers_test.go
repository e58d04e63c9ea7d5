package systems

import (
	"time"

	"github.com/decker502/bagwalk/pkg/components"
	"github.com/decker502/bagwalk/pkg/config"
	"github.com/decker502/bagwalk/pkg/ecs"
	"github.com/decker502/bagwalk/pkg/entities"
	"github.com/decker502/bagwalk/pkg/game"
)

// frame 60fps 下一帧的时长
const frame = time.Second / 60

// soundCall 记录一次声音调用
type soundCall struct {
	path    string
	volume  float64
	restart bool
}

// fakeSoundPlayer 记录所有声音调用的 game.SoundPlayer
type fakeSoundPlayer struct {
	calls []soundCall
	fail  bool
}

func (f *fakeSoundPlayer) PlaySound(path string, volume float64) bool {
	f.calls = append(f.calls, soundCall{path: path, volume: volume})
	return !f.fail
}

func (f *fakeSoundPlayer) RestartSound(path string) bool {
	f.calls = append(f.calls, soundCall{path: path, restart: true})
	return !f.fail
}

// collectFixture 收集场景的最小实体组合
// 视口 1200x800，背包 200x150 居中于 (500, 325)
type collectFixture struct {
	em         *ecs.EntityManager
	session    *game.SceneSession
	sound      *fakeSoundPlayer
	bag        ecs.EntityID
	items      []ecs.EntityID
	layout     *LayoutSystem
	drag       *DragSystem
	collection *CollectionSystem
	overlay    *CompletionOverlaySystem
}

func testItemLayout() config.ItemLayout {
	return config.ItemLayout{ItemWidth: 100, ItemHeight: 100, Gap: 10, Margin: 40}
}

func newCollectFixture(itemIDs ...string) *collectFixture {
	em := ecs.NewEntityManager()
	f := &collectFixture{
		em:      em,
		session: game.NewSceneSession(),
		sound:   &fakeSoundPlayer{},
	}

	f.bag = entities.NewBagEntity(em, nil, config.BagConfig{Width: 200, Height: 150, Tolerance: config.DefaultDropTolerance})
	for i, id := range itemIDs {
		column := "left"
		if i%2 == 1 {
			column = "right"
		}
		f.items = append(f.items, entities.NewItemEntity(em, nil, config.ItemConfig{ID: id, Column: column}, i, testItemLayout()))
	}

	f.layout = NewLayoutSystem(em, f.bag, testItemLayout())
	f.layout.SetViewport(1200, 800)
	f.layout.Update()

	f.drag = NewDragSystem(em, &f.session.Drag, f.bag, f.sound, "sounds/pickup.mp3")
	f.drag.SetViewport(1200, 800)

	f.collection = NewCollectionSystem(em, f.session.Scheduler, f.bag,
		time.Duration(config.DefaultCompletionDelayMs)*time.Millisecond,
		time.Duration(config.DefaultCompletionFadeMs)*time.Millisecond,
		components.SpriteComponent{Label: "done"})
	f.drag.SetOnDropped(func(ecs.EntityID) { f.collection.OnItemRemoved() })

	f.overlay = NewCompletionOverlaySystem(em)
	return f
}

// tick 模拟一帧：推进调度器、刷新布局
func (f *collectFixture) tick() {
	f.session.Scheduler.Advance(frame)
	f.em.RemoveMarkedEntities()
	f.layout.Update()
	f.overlay.Update(frame.Seconds())
}

// bagRect 返回背包当前的布局矩形
func (f *collectFixture) bagRect() (x, y, w, h float64) {
	pos, _ := ecs.GetComponent[*components.PositionComponent](f.em, f.bag)
	size, _ := ecs.GetComponent[*components.SizeComponent](f.em, f.bag)
	return pos.X, pos.Y, size.Width, size.Height
}

// dropItem 把物品从中心拖到 (x, y) 释放
func (f *collectFixture) dropItem(item ecs.EntityID, x, y float64) DropResult {
	rect, _ := entityRect(f.em, item)
	cx, cy := rect.X+rect.W/2, rect.Y+rect.H/2
	if !f.drag.BeginDrag(item, cx, cy) {
		return DropNone
	}
	f.drag.UpdateDrag(x, y)
	return f.drag.EndDrag(x, y)
}

// exploreFixture 探索场景的最小实体组合
type exploreFixture struct {
	em       *ecs.EntityManager
	session  *game.SceneSession
	sound    *fakeSoundPlayer
	player   ecs.EntityID
	input    *KeyInputSystem
	movement *MovementSystem
	pickups  *PickupSystem
	effects  *EffectSystem
	triggers *TriggerSystem
}

func newExploreFixture(cfg *config.ExploreSceneConfig) *exploreFixture {
	em := ecs.NewEntityManager()
	f := &exploreFixture{
		em:      em,
		session: game.NewSceneSession(),
		sound:   &fakeSoundPlayer{},
	}

	f.player = entities.NewPlayerEntity(em, nil, cfg.Player)
	for _, p := range cfg.Pickups {
		entities.NewPickupEntity(em, nil, p)
	}
	for _, e := range cfg.Effects {
		entities.NewEffectEntity(em, nil, e)
	}
	for i, tr := range cfg.Triggers {
		prop, ok := cfg.PropByID(tr.Target)
		entities.NewTriggerEntity(em, tr, i, prop, ok)
	}

	f.input = NewKeyInputSystem(cfg.KeyBindings)
	f.movement = NewMovementSystem(em, f.input, cfg.Width, cfg.Height)
	f.pickups = NewPickupSystem(em, f.session, f.sound, f.player)
	f.effects = NewEffectSystem(em, f.session.Scheduler)
	f.triggers = NewTriggerSystem(em, f.session, f.sound, f.effects, f.player)
	return f
}

// tick 按探索场景的顺序执行一帧
func (f *exploreFixture) tick() []string {
	f.session.Scheduler.Advance(frame)
	f.movement.Step()
	f.pickups.Update()
	return f.triggers.Update()
}

func (f *exploreFixture) playerPos() (float64, float64) {
	pos, _ := ecs.GetComponent[*components.PositionComponent](f.em, f.player)
	return pos.X, pos.Y
}

func (f *exploreFixture) setPlayerPos(x, y float64) {
	pos, _ := ecs.GetComponent[*components.PositionComponent](f.em, f.player)
	pos.X, pos.Y = x, y
}

// testExploreConfig 返回一个带默认值的探索场景配置
func testExploreConfig(yamlText string) *config.ExploreSceneConfig {
	cfg, err := config.ParseExploreConfig([]byte(yamlText), "test")
	if err != nil {
		panic(err)
	}
	return cfg
}
