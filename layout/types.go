package layout

// 该文件定义布局结果的绘制指令，供页面构建、渲染与调试 JSON 共用。
// 坐标原点在页面左上角，单位为逻辑像素。

// Result 保存布局后的页面列表。菜单页面一次构建恰好产出一页。
type Result struct {
	Pages []Page `json:"pages"`
}

// Page 记录画布尺寸、背景色与可以直接绘制的元素。
type Page struct {
	Width      float64   `json:"width"`
	Height     float64   `json:"height"`
	Background Color     `json:"background"`
	Texts      []TextBox `json:"texts"`
	Rects      []Rect    `json:"rects,omitempty"`
	Lines      []Line    `json:"lines,omitempty"`
	Circles    []Circle  `json:"circles,omitempty"`
	Badges     []Badge   `json:"badges,omitempty"`
}

// Color 采用 0-255 的 RGB 数值。
type Color struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// TextBox 表示一个已经排好坐标的文本块。
type TextBox struct {
	Content  string     `json:"content"`
	X        float64    `json:"x"`
	Y        float64    `json:"y"`
	Width    float64    `json:"width"`
	FontSize float64    `json:"fontSize"`
	Color    Color      `json:"color"`
	Lines    []TextLine `json:"lines"`
	Height   float64    `json:"height"`
	Align    string     `json:"align,omitempty"` // 水平对齐：left/center/right，默认 left
}

// TextLine 表示排版后的一行文本内容及其宽高。
// GapBefore 为该行与上一行之间的行距，首行恒为 0。
type TextLine struct {
	Content   string  `json:"content"`
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
	GapBefore float64 `json:"gapBefore,omitempty"`
}

// Rect 表示一个矩形，Radius 大于 0 时绘制圆角。
type Rect struct {
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	Radius      float64 `json:"radius,omitempty"`
	StrokeColor Color   `json:"strokeColor"`
	StrokeWidth float64 `json:"strokeWidth"`         // <=0 时由渲染器给默认值
	FillColor   *Color  `json:"fillColor,omitempty"` // 为空表示不填充
}

// Line 表示一条线段。
type Line struct {
	X1    float64 `json:"x1"`
	Y1    float64 `json:"y1"`
	X2    float64 `json:"x2"`
	Y2    float64 `json:"y2"`
	Color Color   `json:"color"`
	Width float64 `json:"width"` // <=0 时由渲染器给默认值
}

// Circle 表示一个圆。
type Circle struct {
	CX          float64 `json:"cx"`
	CY          float64 `json:"cy"`
	R           float64 `json:"r"`
	StrokeColor Color   `json:"strokeColor"`
	StrokeWidth float64 `json:"strokeWidth"`
	FillColor   *Color  `json:"fillColor,omitempty"`
}

// Badge 表示锚定在某个右下角的小标签，例如命令计数或管理员标记。
// Right/Bottom 为锚点：文本右端对齐 Right，文本底边对齐 Bottom。
// 文本宽度由渲染器实测，FillColor 非空时先绘制四周外扩 PadX/PadY 的底板。
type Badge struct {
	Text      string  `json:"text"`
	Right     float64 `json:"right"`
	Bottom    float64 `json:"bottom"`
	FontSize  float64 `json:"fontSize"`
	TextColor Color   `json:"textColor"`
	FillColor *Color  `json:"fillColor,omitempty"`
	PadX      float64 `json:"padX,omitempty"`
	PadY      float64 `json:"padY,omitempty"`
	Radius    float64 `json:"radius,omitempty"`
}
