package layout

// 该文件提供三个页面构建器共用的部分：依赖校验、文本块组装与
// 卡片网格的几何计算。页面内的固定尺寸沿用经典布局，不随配置变化。

import (
	"fmt"

	"github.com/lumixu/menupic/menu"
)

// 页面的固定几何（逻辑像素）。
const (
	mainHeaderHeight   = 80.0  // 主页面头部（标题+计数）高度
	mainCardHeight     = 120.0 // 插件卡片高度
	detailHeaderHeight = 120.0 // 详情页头部（标题+副标题+描述）高度
	commandCardHeight  = 80.0  // 命令卡片高度
	emptyBlockHeight   = 50.0  // 无条目时的占位块高度
	cardInset          = 10.0  // 卡片内容距边框的内缩
	nameIndent         = 40.0  // 名称相对卡片左缘的缩进，给序号留位
	lineGap            = 2.0   // 同一文本块内相邻行的行距
)

// composer 持有一次构建所需的依赖，集中处理缺省解析与主题解析。
type composer struct {
	cfg     menu.LayoutConfig
	palette Palette
	ts      Typesetter
}

func newComposer(kind string, opts BuildOptions) (*composer, error) {
	if opts.Typesetter == nil {
		return nil, &menu.LayoutError{Kind: kind, Err: fmt.Errorf("缺少排版后端")}
	}
	cfg := opts.Config.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, &menu.LayoutError{Kind: kind, Err: err}
	}
	theme := opts.Theme
	if theme == (menu.Theme{}) {
		theme = menu.Light
	}
	palette, err := ResolvePalette(theme)
	if err != nil {
		return nil, &menu.LayoutError{Kind: kind, Err: err}
	}
	return &composer{cfg: cfg, palette: palette, ts: opts.Typesetter}, nil
}

// singleLine 组装一个单行文本块，行宽取实测值，不折行。
func (c *composer) singleLine(content string, x, y, width, size float64, color Color, align string) TextBox {
	w, h := c.ts.MeasureText(content, size)
	return TextBox{
		Content:  content,
		X:        x,
		Y:        y,
		Width:    width,
		FontSize: size,
		Color:    color,
		Lines:    []TextLine{{Content: content, Width: w, Height: h}},
		Height:   h,
		Align:    align,
	}
}

// wrapped 组装一个多行文本块，最多保留 maxLines 行（0 表示不限），
// bottom 为正时再按下边界裁剪：行底越过 bottom 的行被丢弃。
// 返回块的 Height 等于保留行的 Σ(GapBefore+Height)。
func (c *composer) wrapped(content string, x, y, width, size float64, color Color, maxLines int, bottom float64) (TextBox, error) {
	lines, err := c.ts.LayoutLines(content, width, size, size+lineGap)
	if err != nil {
		return TextBox{}, err
	}
	kept := make([]TextLine, 0, len(lines))
	cursor := y
	total := 0.0
	for _, ln := range lines {
		if maxLines > 0 && len(kept) >= maxLines {
			break
		}
		top := cursor + ln.GapBefore
		if bottom > 0 && top+ln.Height > bottom {
			break
		}
		kept = append(kept, ln)
		cursor = top + ln.Height
		total += ln.GapBefore + ln.Height
	}
	return TextBox{
		Content:  content,
		X:        x,
		Y:        y,
		Width:    width,
		FontSize: size,
		Color:    color,
		Lines:    kept,
		Height:   total,
	}, nil
}

// cardWidth 返回网格中单张卡片的宽度。
func (c *composer) cardWidth() float64 {
	cols := float64(c.cfg.Columns)
	return (c.cfg.Width - 2*c.cfg.Padding - c.cfg.CardSpacing*(cols-1)) / cols
}

// cardPos 返回第 i 张卡片的左上角坐标，卡片按行优先填充。
func (c *composer) cardPos(i int, top, cardHeight float64) (float64, float64) {
	col := i % c.cfg.Columns
	row := i / c.cfg.Columns
	x := c.cfg.Padding + float64(col)*(c.cardWidth()+c.cfg.CardSpacing)
	y := top + float64(row)*(cardHeight+c.cfg.CardSpacing)
	return x, y
}

// gridHeight 返回 n 张卡片排满后的内容区高度，n 为 0 时返回占位块高度。
func (c *composer) gridHeight(n int, cardHeight float64) float64 {
	if n == 0 {
		return emptyBlockHeight
	}
	rows := (n + c.cfg.Columns - 1) / c.cfg.Columns
	return float64(rows)*cardHeight + float64(rows-1)*c.cfg.CardSpacing
}

// cardShell 返回卡片的底板矩形：圆角、主题边框与卡片底色。
func (c *composer) cardShell(x, y, w, h float64) Rect {
	fill := c.palette.CardBackground
	return Rect{
		X:           x,
		Y:           y,
		Width:       w,
		Height:      h,
		Radius:      c.cfg.CornerRadius,
		StrokeColor: c.palette.Border,
		StrokeWidth: 1,
		FillColor:   &fill,
	}
}

// emptyNotice 组装占位块中的居中提示文本。
func (c *composer) emptyNotice(text string, top float64) TextBox {
	y := top + (emptyBlockHeight-c.cfg.FontSize)/2
	return c.singleLine(text, 0, y, c.cfg.Width, c.cfg.FontSize, c.palette.Secondary, "center")
}
