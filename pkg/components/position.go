package components

// PositionComponent 存储实体左上角的世界坐标(像素)
//
// 收集场景中它是物品在流式布局中的位置；
// 拖拽期间的覆盖位置存放在 StyleComponent 中，不修改这里。
type PositionComponent struct {
	X float64
	Y float64
}
