package components

// SizeComponent 存储实体的包围盒尺寸(像素)
type SizeComponent struct {
	Width  float64
	Height float64
}
