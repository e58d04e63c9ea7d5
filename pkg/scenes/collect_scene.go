package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/decker502/bagwalk/pkg/components"
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

var collectBackground = color.RGBA{R: 245, G: 238, B: 226, A: 255}

// CollectScene 收集场景：把物品拖进背包
//
// 每帧顺序：
//  1. 指针事件 -> 拖放控制器
//  2. 调度器（完成图延迟）
//  3. 清理已放入背包的物品，重新布局
//  4. 完成图动画
type CollectScene struct {
	deps Deps
	cfg  *config.CollectSceneConfig

	entityManager *ecs.EntityManager
	session       *game.SceneSession
	pointer       *utils.PointerTracker

	layoutSystem     *systems.LayoutSystem
	dragSystem       *systems.DragSystem
	collectionSystem *systems.CollectionSystem
	overlaySystem    *systems.CompletionOverlaySystem
	renderSystem     *systems.RenderSystem

	pause *modules.PauseMenuModule
	face  text.Face

	background ecs.EntityID
	bag        ecs.EntityID

	width, height float64
	cursor        components.CursorStyle
}

// NewCollectScene 根据配置创建收集场景
//
// 参数：
//   - deps: 共享依赖
//   - cfg: 已校验的场景配置
//
// 返回：
//   - *CollectScene: 场景实例，视口尺寸在 OnResize 中设置
func NewCollectScene(deps Deps, cfg *config.CollectSceneConfig) *CollectScene {
	em := ecs.NewEntityManager()
	images := deps.images()

	s := &CollectScene{
		deps:          deps,
		cfg:           cfg,
		entityManager: em,
		session:       game.NewSceneSession(),
		pointer:       utils.NewPointerTracker(),
		face:          modules.UIFace(),
	}

	if cfg.Background != "" {
		s.background = entities.NewBackgroundEntity(em, images, cfg.Background, 0, 0)
		if style, ok := ecs.GetComponent[*components.StyleComponent](em, s.background); ok {
			style.Fixed = true
		}
	}
	s.bag = entities.NewBagEntity(em, images, cfg.Bag)
	for i, item := range cfg.Items {
		entities.NewItemEntity(em, images, item, i, cfg.Layout)
	}

	s.layoutSystem = systems.NewLayoutSystem(em, s.bag, cfg.Layout)
	s.dragSystem = systems.NewDragSystem(em, &s.session.Drag, s.bag, deps.Sound, cfg.PickupSound)
	s.collectionSystem = systems.NewCollectionSystem(em, s.session.Scheduler, s.bag,
		cfg.CompletionDelay(), cfg.CompletionFade(),
		entities.NewCompletionSprite(images, cfg.CompletionImage))
	s.overlaySystem = systems.NewCompletionOverlaySystem(em)
	s.renderSystem = systems.NewRenderSystem(em)

	s.dragSystem.SetOnDropped(func(ecs.EntityID) {
		s.collectionSystem.OnItemRemoved()
	})
	s.collectionSystem.SetOnCompletion(func() {
		log.Printf("[CollectScene] %s: 全部 %d 个物品已收集", cfg.ID, s.collectionSystem.Total())
	})

	s.pause = modules.NewPauseMenuModule("Paused", modules.PauseMenuCallbacks{
		OnMainMenu: deps.backToMenu,
	})

	log.Printf("[CollectScene] 创建场景 %s，%d 个物品", cfg.ID, len(cfg.Items))
	return s
}

// OnResize 视口尺寸变化：重新布局，并让完成图重新对齐背包
func (s *CollectScene) OnResize(width, height int) {
	s.width, s.height = float64(width), float64(height)

	s.layoutSystem.SetViewport(s.width, s.height)
	s.dragSystem.SetViewport(s.width, s.height)
	s.layoutSystem.Update()
	s.overlaySystem.Sync()

	if size, ok := ecs.GetComponent[*components.SizeComponent](s.entityManager, s.background); ok {
		size.Width, size.Height = s.width, s.height
	}
}

// OnExit 离开场景时恢复默认光标
func (s *CollectScene) OnExit() {
	s.dragSystem.CancelDrag()
	ebiten.SetCursorShape(ebiten.CursorShapeDefault)
}

// Update 更新场景
func (s *CollectScene) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.pause.Toggle()
		if s.pause.IsActive() {
			s.dragSystem.CancelDrag()
			s.pointer.Reset()
		}
	}
	if s.pause.IsActive() {
		s.pause.Update()
		s.setCursor(components.CursorDefault)
		return
	}

	s.handlePointer(s.pointer.Poll())
	s.step(deltaTime)

	hx, hy := s.pointer.HoverPosition()
	s.setCursor(s.dragSystem.CursorAt(hx, hy))
}

// handlePointer 把本帧的指针事件交给拖放控制器
func (s *CollectScene) handlePointer(events []utils.PointerEvent) {
	for _, ev := range events {
		s.dragSystem.HandlePointer(ev)
	}
}

// step 推进一帧的非输入逻辑
func (s *CollectScene) step(deltaTime float64) {
	s.session.Scheduler.Advance(game.SecondsToDuration(deltaTime))
	s.entityManager.RemoveMarkedEntities()
	s.layoutSystem.Update()
	s.overlaySystem.Update(deltaTime)
}

// setCursor 光标样式变化时才调用 ebiten
func (s *CollectScene) setCursor(cursor components.CursorStyle) {
	if cursor == s.cursor {
		return
	}
	s.cursor = cursor

	switch cursor {
	case components.CursorGrab:
		ebiten.SetCursorShape(ebiten.CursorShapePointer)
	case components.CursorGrabbing:
		ebiten.SetCursorShape(ebiten.CursorShapeMove)
	default:
		ebiten.SetCursorShape(ebiten.CursorShapeDefault)
	}
}

// Draw 绘制场景
func (s *CollectScene) Draw(screen *ebiten.Image) {
	screen.Fill(collectBackground)
	s.renderSystem.Draw(screen, 0, 0)

	status := fmt.Sprintf("%s  %d/%d", s.cfg.Title, s.collectionSystem.Collected(), s.collectionSystem.Total())
	if s.collectionSystem.IsComplete() {
		status += "  done!"
	}
	drawHUDText(screen, s.face, status, 12, 12)

	s.pause.Draw(screen)
}
