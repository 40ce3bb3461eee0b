package menu

import "fmt"

// LayoutConfig 控制页面布局的几何参数。零值字段由 WithDefaults 填充，
// 布局构建器假定收到的配置已经完整，不再逐字段兜底。
type LayoutConfig struct {
	Width        float64 // 画布逻辑宽度（像素）
	FontSize     float64 // 正文字号
	Padding      float64 // 页面内边距
	CardSpacing  float64 // 卡片间距
	CornerRadius float64 // 卡片圆角半径
	Columns      int     // 卡片列数
	MaxPerPage   int     // 主页面每页插件数
	Scale        float64 // 光栅化倍率，1 为逻辑像素与物理像素一比一，宿主构造渲染器时取用
}

// DefaultLayoutConfig 返回默认布局参数。
func DefaultLayoutConfig() LayoutConfig {
	return LayoutConfig{
		Width:        800,
		FontSize:     16,
		Padding:      20,
		CardSpacing:  15,
		CornerRadius: 8,
		Columns:      2,
		MaxPerPage:   10,
		Scale:        1,
	}
}

// WithDefaults 返回填充了默认值的副本。只补零值字段，负数等
// 非法取值原样保留，交给 Validate 拒绝。
func (c LayoutConfig) WithDefaults() LayoutConfig {
	def := DefaultLayoutConfig()
	if c.Width == 0 {
		c.Width = def.Width
	}
	if c.FontSize == 0 {
		c.FontSize = def.FontSize
	}
	if c.Padding == 0 {
		c.Padding = def.Padding
	}
	if c.CardSpacing == 0 {
		c.CardSpacing = def.CardSpacing
	}
	if c.CornerRadius == 0 {
		c.CornerRadius = def.CornerRadius
	}
	if c.Columns == 0 {
		c.Columns = def.Columns
	}
	if c.MaxPerPage == 0 {
		c.MaxPerPage = def.MaxPerPage
	}
	if c.Scale == 0 {
		c.Scale = def.Scale
	}
	return c
}

// Validate 校验布局参数是否可用于构建页面。
func (c LayoutConfig) Validate() error {
	if c.Width <= 0 {
		return fmt.Errorf("画布宽度必须为正数: %g", c.Width)
	}
	if c.FontSize <= 0 {
		return fmt.Errorf("字号必须为正数: %g", c.FontSize)
	}
	if c.Padding < 0 {
		return fmt.Errorf("内边距不能为负数: %g", c.Padding)
	}
	if c.CardSpacing < 0 {
		return fmt.Errorf("卡片间距不能为负数: %g", c.CardSpacing)
	}
	if c.CornerRadius < 0 {
		return fmt.Errorf("圆角半径不能为负数: %g", c.CornerRadius)
	}
	if c.Columns <= 0 {
		return fmt.Errorf("列数必须为正数: %d", c.Columns)
	}
	if c.MaxPerPage <= 0 {
		return fmt.Errorf("每页插件数必须为正数: %d", c.MaxPerPage)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("光栅化倍率必须为正数: %g", c.Scale)
	}
	return nil
}

// TitleFontSize 返回标题字号，固定为正文的 1.5 倍。
func (c LayoutConfig) TitleFontSize() float64 {
	return c.FontSize * 1.5
}

// SubtitleFontSize 返回副标题字号，固定为正文的 0.875 倍。
func (c LayoutConfig) SubtitleFontSize() float64 {
	return c.FontSize * 0.875
}
