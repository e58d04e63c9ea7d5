package scenes

import (
	"fmt"
	"image/color"
	"log"
	"strings"

	"github.com/decker502/bagwalk/pkg/config"
	"github.com/decker502/bagwalk/pkg/ecs"
	"github.com/decker502/bagwalk/pkg/entities"
	"github.com/decker502/bagwalk/pkg/game"
	"github.com/decker502/bagwalk/pkg/modules"
	"github.com/decker502/bagwalk/pkg/systems"
	"github.com/decker502/bagwalk/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

var exploreBackground = color.RGBA{R: 16, G: 16, B: 20, A: 255}

// ExploreScene 探索场景：方向键移动玩家，靠近场景物体时触发一次性事件
//
// 每帧顺序：
//  1. 调度器（效果自动隐藏）
//  2. 键盘事件 -> 按键状态
//  3. 移动并限制在场景范围内
//  4. 道具拾取（包围盒重叠）
//  5. 触发区域（按顺序，轴距离判定）
//  6. 摄像机跟随
type ExploreScene struct {
	deps Deps
	cfg  *config.ExploreSceneConfig

	entityManager *ecs.EntityManager
	session       *game.SceneSession
	keys          *utils.KeyTracker
	heldKeys      func() []string // 恢复时仍按住的按键，默认取自 keys

	inputSystem    *systems.KeyInputSystem
	movementSystem *systems.MovementSystem
	pickupSystem   *systems.PickupSystem
	effectSystem   *systems.EffectSystem
	triggerSystem  *systems.TriggerSystem
	cameraSystem   *systems.CameraSystem
	renderSystem   *systems.RenderSystem

	pause *modules.PauseMenuModule
	face  text.Face

	player        ecs.EntityID
	width, height float64
}

// NewExploreScene 根据配置创建探索场景
//
// 参数：
//   - deps: 共享依赖
//   - cfg: 已校验的场景配置
//
// 返回：
//   - *ExploreScene: 场景实例
func NewExploreScene(deps Deps, cfg *config.ExploreSceneConfig) *ExploreScene {
	em := ecs.NewEntityManager()
	images := deps.images()

	s := &ExploreScene{
		deps:          deps,
		cfg:           cfg,
		entityManager: em,
		session:       game.NewSceneSession(),
		keys:          utils.NewKeyTracker(),
		face:          modules.UIFace(),
	}
	s.heldKeys = s.keys.HeldNames

	entities.NewBackgroundEntity(em, images, cfg.Background, cfg.Width, cfg.Height)
	for _, prop := range cfg.Props {
		entities.NewPropEntity(em, images, prop)
	}
	for _, pickup := range cfg.Pickups {
		entities.NewPickupEntity(em, images, pickup)
	}
	for _, effect := range cfg.Effects {
		entities.NewEffectEntity(em, images, effect)
	}
	for i, trigger := range cfg.Triggers {
		prop, ok := cfg.PropByID(trigger.Target)
		entities.NewTriggerEntity(em, trigger, i, prop, ok)
	}
	s.player = entities.NewPlayerEntity(em, images, cfg.Player)

	s.inputSystem = systems.NewKeyInputSystem(cfg.KeyBindings)
	s.movementSystem = systems.NewMovementSystem(em, s.inputSystem, cfg.Width, cfg.Height)
	s.pickupSystem = systems.NewPickupSystem(em, s.session, deps.Sound, s.player)
	s.effectSystem = systems.NewEffectSystem(em, s.session.Scheduler)
	s.triggerSystem = systems.NewTriggerSystem(em, s.session, deps.Sound, s.effectSystem, s.player)
	s.cameraSystem = systems.NewCameraSystem(em, s.player, cfg.Width, cfg.Height)
	s.renderSystem = systems.NewRenderSystem(em)

	s.pause = modules.NewPauseMenuModule("Paused", modules.PauseMenuCallbacks{
		OnContinue: s.resumeInput,
		OnMainMenu: deps.backToMenu,
	})

	log.Printf("[ExploreScene] 创建场景 %s (%.0fx%.0f)，%d 个触发区域", cfg.ID, cfg.Width, cfg.Height, len(cfg.Triggers))
	return s
}

// OnResize 记录视口尺寸
func (s *ExploreScene) OnResize(width, height int) {
	s.width, s.height = float64(width), float64(height)
	s.cameraSystem.Update(s.width, s.height)
}

// OnExit 离开场景时松开所有按键
func (s *ExploreScene) OnExit() {
	s.inputSystem.Reset()
}

// Update 更新场景
func (s *ExploreScene) Update(deltaTime float64) {
	events := s.keys.Poll()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.pause.Toggle()
		if s.pause.IsActive() {
			s.inputSystem.Reset()
		}
	}
	if s.pause.IsActive() {
		s.pause.Update()
		return
	}

	s.step(deltaTime, events)
}

// resumeInput 关闭暂停菜单后，按暂停期间仍按住的按键重建方向状态
func (s *ExploreScene) resumeInput() {
	s.inputSystem.Reset()
	for _, name := range s.heldKeys() {
		s.inputSystem.KeyDown(name)
	}
}

// step 执行一帧的游戏逻辑
func (s *ExploreScene) step(deltaTime float64, events []utils.KeyEvent) {
	s.session.Scheduler.Advance(game.SecondsToDuration(deltaTime))

	for _, ev := range events {
		s.inputSystem.HandleKeyEvent(ev)
	}

	s.movementSystem.Step()
	s.pickupSystem.Update()
	s.triggerSystem.Update()
	s.cameraSystem.Update(s.width, s.height)
}

// Draw 绘制场景
func (s *ExploreScene) Draw(screen *ebiten.Image) {
	screen.Fill(exploreBackground)

	camX, camY := s.cameraSystem.Position()
	s.renderSystem.Draw(screen, camX, camY)

	status := s.cfg.Title
	if flags := s.session.Flags(); len(flags) > 0 {
		status += fmt.Sprintf("  [%s]", strings.Join(flags, ", "))
	}
	drawHUDText(screen, s.face, status, 12, 12)
	drawHUDText(screen, s.face, "WASD to move, Esc to pause", 12, s.height-24)

	s.pause.Draw(screen)
}
