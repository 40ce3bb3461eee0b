package canvasrenderer

import (
	"bytes"
	"fmt"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/rasterizer"

	"github.com/lumixu/menupic/fonts"
	"github.com/lumixu/menupic/layout"
	"github.com/lumixu/menupic/renderer"
)

const defaultStrokeWidth = 1.0

// Renderer 通过 github.com/tdewolff/canvas 将布局结果光栅化为 PNG。
// 同一实例同时实现 layout.Typesetter，布局与绘制共用一套字体度量。
type Renderer struct {
	scale    float64
	fontPath string // 显式指定的字体文件，空串表示按平台探测

	fontMu     sync.Mutex
	family     *canvas.FontFamily
	fontSource string // 实际加载的字体来源，内置字体为空串
}

var (
	_ renderer.Renderer = (*Renderer)(nil)
	_ layout.Typesetter = (*Renderer)(nil)
)

// Options 配置画布渲染器。
type Options struct {
	// Scale 为逻辑像素到输出像素的放大倍数，小于等于 0 时取 1。
	Scale float64
	// FontPath 指定字体文件路径。为空时按平台探测系统字体，
	// 探测失败回退到内置字体，构造过程不会因字体缺失出错。
	FontPath string
}

// NewRenderer 创建使用默认配置的渲染器。
func NewRenderer() *Renderer { return NewRendererWithOptions(Options{}) }

// NewRendererWithOptions 创建渲染器。字体在首次使用时加载一次并缓存。
func NewRendererWithOptions(opts Options) *Renderer {
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	return &Renderer{
		scale:    scale,
		fontPath: opts.FontPath,
	}
}

// FontSource 返回实际加载的字体来源路径，内置字体为空串。
// 字体尚未加载时会先触发加载。
func (r *Renderer) FontSource() string {
	if _, err := r.ensureFamily(); err != nil {
		return ""
	}
	r.fontMu.Lock()
	defer r.fontMu.Unlock()
	return r.fontSource
}

// Render 将布局结果编码为 PNG 字节。PNG 为单幅图像，结果必须恰好包含一页。
func (r *Renderer) Render(result *layout.Result) ([]byte, error) {
	if result == nil {
		return nil, fmt.Errorf("渲染结果为空")
	}
	if len(result.Pages) != 1 {
		return nil, fmt.Errorf("PNG 输出要求单页布局, 实际 %d 页", len(result.Pages))
	}
	page := result.Pages[0]
	if page.Width <= 0 || page.Height <= 0 {
		return nil, fmt.Errorf("页面尺寸无效: %g x %g", page.Width, page.Height)
	}

	c := canvas.New(page.Width, page.Height)
	ctx := canvas.NewContext(c)
	ctx.SetCoordSystem(canvas.CartesianIV) // 布局坐标以左上角为原点

	if err := r.drawPage(ctx, page); err != nil {
		return nil, err
	}

	img := rasterizer.Draw(c, canvas.DPMM(r.scale), canvas.DefaultColorSpace)
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("编码 PNG 失败: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) drawPage(ctx *canvas.Context, page layout.Page) error {
	// 背景铺满整页，形状在文本之前绘制
	ctx.SetFillColor(colorFromLayout(page.Background))
	ctx.SetStrokeColor(color.RGBA{0, 0, 0, 0})
	ctx.SetStrokeWidth(0)
	ctx.DrawPath(0, 0, canvas.Rectangle(page.Width, page.Height))

	if err := r.drawRects(ctx, page.Rects); err != nil {
		return err
	}
	if err := r.drawLines(ctx, page.Lines); err != nil {
		return err
	}
	if err := r.drawCircles(ctx, page.Circles); err != nil {
		return err
	}
	for _, tb := range page.Texts {
		if err := r.drawTextBox(ctx, tb); err != nil {
			return err
		}
	}
	return r.drawBadges(ctx, page.Badges)
}

func (r *Renderer) drawTextBox(ctx *canvas.Context, tb layout.TextBox) error {
	face, err := r.fontFace(tb.FontSize, tb.Color)
	if err != nil {
		return err
	}

	lines := tb.Lines
	if len(lines) == 0 {
		lines = []layout.TextLine{{Content: tb.Content, Width: tb.Width, Height: tb.FontSize}}
	}

	// 水平对齐：left（默认）/center/right
	var textAlign canvas.TextAlign
	var anchorX float64
	switch strings.ToLower(tb.Align) {
	case "center":
		textAlign = canvas.Center
		anchorX = tb.X + tb.Width/2
	case "right", "end":
		textAlign = canvas.Right
		anchorX = tb.X + tb.Width
	default:
		textAlign = canvas.Left
		anchorX = tb.X
	}

	cursorY := tb.Y
	for _, line := range lines {
		cursorY += line.GapBefore

		// 基线位置：行顶部加上字体上升部
		baseline := cursorY + face.Metrics().Ascent
		ctx.DrawText(anchorX, baseline, canvas.NewTextLine(face, line.Content, textAlign))

		lineHeight := line.Height
		if lineHeight <= 0 {
			lineHeight = tb.FontSize
		}
		cursorY += lineHeight
	}
	return nil
}

// drawBadges 绘制右下角锚定的标签。文本宽度在绘制时实测，
// FillColor 非空时先画一块四周外扩 PadX/PadY 的圆角底板。
func (r *Renderer) drawBadges(ctx *canvas.Context, badges []layout.Badge) error {
	for _, b := range badges {
		face, err := r.fontFace(b.FontSize, b.TextColor)
		if err != nil {
			return err
		}
		textWidth := face.TextWidth(b.Text)
		textHeight := b.FontSize

		if b.FillColor != nil {
			ctx.SetFillColor(colorFromLayout(*b.FillColor))
			ctx.SetStrokeColor(color.RGBA{0, 0, 0, 0})
			ctx.SetStrokeWidth(0)
			plate := canvas.Rectangle(textWidth+2*b.PadX, textHeight+2*b.PadY)
			if b.Radius > 0 {
				plate = canvas.RoundedRectangle(textWidth+2*b.PadX, textHeight+2*b.PadY, b.Radius)
			}
			ctx.DrawPath(b.Right-textWidth-b.PadX, b.Bottom-textHeight-b.PadY, plate)
		}

		baseline := b.Bottom - textHeight + face.Metrics().Ascent
		ctx.DrawText(b.Right, baseline, canvas.NewTextLine(face, b.Text, canvas.Right))
	}
	return nil
}

// drawLines 绘制线段列表。
func (r *Renderer) drawLines(ctx *canvas.Context, lines []layout.Line) error {
	for _, ln := range lines {
		w := ln.Width
		if w <= 0 {
			w = defaultStrokeWidth
		}
		ctx.SetStrokeColor(colorFromLayout(ln.Color))
		ctx.SetStrokeWidth(w)
		p := &canvas.Path{}
		p.MoveTo(0, 0)
		p.LineTo(ln.X2-ln.X1, ln.Y2-ln.Y1)
		ctx.DrawPath(ln.X1, ln.Y1, p)
	}
	return nil
}

// drawRects 绘制矩形，Radius 大于 0 时画圆角。
func (r *Renderer) drawRects(ctx *canvas.Context, rects []layout.Rect) error {
	for _, rc := range rects {
		w := rc.StrokeWidth
		if w <= 0 {
			w = defaultStrokeWidth
		}
		if rc.FillColor != nil {
			ctx.SetFillColor(colorFromLayout(*rc.FillColor))
		} else {
			ctx.SetFillColor(color.RGBA{0, 0, 0, 0})
		}
		ctx.SetStrokeColor(colorFromLayout(rc.StrokeColor))
		ctx.SetStrokeWidth(w)
		path := canvas.Rectangle(rc.Width, rc.Height)
		if rc.Radius > 0 {
			path = canvas.RoundedRectangle(rc.Width, rc.Height, rc.Radius)
		}
		ctx.DrawPath(rc.X, rc.Y, path)
	}
	return nil
}

// drawCircles 绘制圆形，CX/CY 为圆心。
func (r *Renderer) drawCircles(ctx *canvas.Context, circles []layout.Circle) error {
	for _, c := range circles {
		w := c.StrokeWidth
		if w <= 0 {
			w = defaultStrokeWidth
		}
		if c.FillColor != nil {
			ctx.SetFillColor(colorFromLayout(*c.FillColor))
		} else {
			ctx.SetFillColor(color.RGBA{0, 0, 0, 0})
		}
		ctx.SetStrokeColor(colorFromLayout(c.StrokeColor))
		ctx.SetStrokeWidth(w)
		ctx.DrawPath(c.CX, c.CY, canvas.Circle(c.R))
	}
	return nil
}

func (r *Renderer) fontFace(size float64, col layout.Color) (*canvas.FontFace, error) {
	family, err := r.ensureFamily()
	if err != nil {
		return nil, err
	}
	// Face 接收 pt 字号，布局单位为逻辑像素，这里做一次换算
	return family.Face(size*layout.MmToPt, colorFromLayout(col), canvas.FontRegular, canvas.FontNormal), nil
}

// ensureFamily 在首次使用时加载字体。优先使用显式指定的字体文件，
// 其次按平台探测系统字体，候选不可用时回退到内置字体。
func (r *Renderer) ensureFamily() (*canvas.FontFamily, error) {
	r.fontMu.Lock()
	defer r.fontMu.Unlock()

	if r.family != nil {
		return r.family, nil
	}

	data, source := r.loadFontBytes()
	family := canvas.NewFontFamily(familyName(source))
	if err := family.LoadFont(data, 0, canvas.FontRegular); err != nil {
		// 候选字体解析失败时换用内置字体
		builtin := canvas.NewFontFamily(fonts.BuiltinName)
		if fbErr := builtin.LoadFont(fonts.Builtin(), 0, canvas.FontRegular); fbErr != nil {
			return nil, fmt.Errorf("加载字体失败: %w", err)
		}
		family = builtin
		source = ""
	}

	r.family = family
	r.fontSource = source
	return family, nil
}

func (r *Renderer) loadFontBytes() (data []byte, source string) {
	if r.fontPath != "" {
		if data, err := os.ReadFile(r.fontPath); err == nil && len(data) > 0 {
			return data, r.fontPath
		}
	}
	return fonts.Resolve()
}

func familyName(source string) string {
	if source == "" {
		return fonts.BuiltinName
	}
	base := filepath.Base(source)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func colorFromLayout(c layout.Color) color.Color {
	return canvas.RGBA(float64(c.R)/255.0, float64(c.G)/255.0, float64(c.B)/255.0, 1.0)
}
