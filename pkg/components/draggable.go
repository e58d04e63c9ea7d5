package components

// 物品所在的列
const (
	ColumnLeft  = 0
	ColumnRight = 1
)

// DraggableComponent 标记可以被拖入背包的物品
type DraggableComponent struct {
	ItemID string // 配置中的物品 ID
	Column int    // ColumnLeft / ColumnRight
	Slot   int    // 在列中的原始顺序，布局和命中测试都按它排序
}

// DropZoneComponent 拖放目标区域（背包）
type DropZoneComponent struct {
	Tolerance float64 // 有效区域向四周扩展的像素
}
