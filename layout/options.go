package layout

import "github.com/lumixu/menupic/menu"

// BuildOptions 配置页面构建所需的依赖与展示参数。
type BuildOptions struct {
	Config     menu.LayoutConfig // 布局参数，零值字段按默认值解析
	Theme      menu.Theme        // 配色主题，零值回退到 menu.Light
	Typesetter Typesetter        // 文本测量与折行后端，必填
	IsAdmin    bool              // 影响插件详情页中管理员命令的可见性
}

// Typesetter 负责文本测量与折行，由渲染后端实现，
// 布局与渲染共用同一实例以保证度量一致。
type Typesetter interface {
	// MeasureText 返回单行文本的宽度与标称高度（高度取字号本身）。
	MeasureText(content string, fontSize float64) (width, height float64)
	// LayoutLines 将文本按最大宽度拆成行，lineHeight 为相邻行的行距。
	// 含 CJK 字符的文本逐字折行，其余按空白分词折行；任何一行的实测
	// 宽度不超过 width，超宽的单字或单词独占一行而不会被截断。
	LayoutLines(content string, width, fontSize, lineHeight float64) ([]TextLine, error)
}
