package canvasrenderer

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/lumixu/menupic/fonts"
	"github.com/lumixu/menupic/layout"
)

// testPage 构造一张覆盖全部绘制指令类型的小页面。
func testPage(t *testing.T, r *Renderer) layout.Page {
	t.Helper()
	lines, err := r.LayoutLines("hello 菜单", 80, 12, 14)
	if err != nil {
		t.Fatalf("LayoutLines error: %v", err)
	}
	accent := layout.Color{R: 0, G: 122, B: 204}
	return layout.Page{
		Width:      100,
		Height:     50,
		Background: layout.Color{R: 245, G: 245, B: 245},
		Texts: []layout.TextBox{{
			Content:  "hello 菜单",
			X:        10,
			Y:        10,
			Width:    80,
			FontSize: 12,
			Color:    layout.Color{R: 51, G: 51, B: 51},
			Lines:    lines,
		}},
		Rects: []layout.Rect{{
			X: 5, Y: 5, Width: 90, Height: 40, Radius: 4,
			StrokeColor: layout.Color{R: 224, G: 224, B: 224},
			StrokeWidth: 1,
			FillColor:   &layout.Color{R: 255, G: 255, B: 255},
		}},
		Lines: []layout.Line{{
			X1: 10, Y1: 30, X2: 90, Y2: 30,
			Color: layout.Color{R: 224, G: 224, B: 224}, Width: 1,
		}},
		Circles: []layout.Circle{{
			CX: 12, CY: 40, R: 2,
			StrokeColor: layout.Color{R: 102, G: 102, B: 102},
			StrokeWidth: 1,
			FillColor:   &layout.Color{R: 102, G: 102, B: 102},
		}},
		Badges: []layout.Badge{{
			Text:      "3 个命令",
			Right:     90,
			Bottom:    45,
			FontSize:  10,
			TextColor: layout.Color{R: 245, G: 245, B: 245},
			FillColor: &accent,
			PadX:      3,
			PadY:      2,
			Radius:    3,
		}},
	}
}

func TestRenderProducesPNG(t *testing.T) {
	r := newTestRenderer(t, 1)
	page := testPage(t, r)

	data, err := r.Render(&layout.Result{Pages: []layout.Page{page}})
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}

	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not valid PNG: %v", err)
	}
	if cfg.Width != 100 || cfg.Height != 50 {
		t.Fatalf("unexpected image size: %dx%d", cfg.Width, cfg.Height)
	}
}

func TestRenderScaleMultipliesPixels(t *testing.T) {
	r := newTestRenderer(t, 2)
	page := testPage(t, r)

	data, err := r.Render(&layout.Result{Pages: []layout.Page{page}})
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}

	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not valid PNG: %v", err)
	}
	if cfg.Width != 200 || cfg.Height != 100 {
		t.Fatalf("scale=2 should double pixel size, got %dx%d", cfg.Width, cfg.Height)
	}
}

func TestRenderBackgroundFillsCanvas(t *testing.T) {
	r := newTestRenderer(t, 1)
	page := layout.Page{
		Width:      20,
		Height:     10,
		Background: layout.Color{R: 43, G: 43, B: 43},
	}

	data, err := r.Render(&layout.Result{Pages: []layout.Page{page}})
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode PNG: %v", err)
	}

	r32, g32, b32, _ := img.At(0, 0).RGBA()
	got := layout.Color{R: int(r32 >> 8), G: int(g32 >> 8), B: int(b32 >> 8)}
	if got != page.Background {
		t.Fatalf("corner pixel mismatch: got=%+v want=%+v", got, page.Background)
	}
}

func TestRenderRejectsInvalidResults(t *testing.T) {
	r := newTestRenderer(t, 1)
	page := layout.Page{Width: 10, Height: 10}

	if _, err := r.Render(nil); err == nil {
		t.Fatal("nil result must be rejected")
	}
	if _, err := r.Render(&layout.Result{}); err == nil {
		t.Fatal("empty result must be rejected")
	}
	if _, err := r.Render(&layout.Result{Pages: []layout.Page{page, page}}); err == nil {
		t.Fatal("multi-page result must be rejected")
	}
	if _, err := r.Render(&layout.Result{Pages: []layout.Page{{Width: 0, Height: 10}}}); err == nil {
		t.Fatal("zero-width page must be rejected")
	}
}

func TestRenderDeterministic(t *testing.T) {
	r := newTestRenderer(t, 1)
	page := testPage(t, r)
	result := &layout.Result{Pages: []layout.Page{page}}

	first, err := r.Render(result)
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	second, err := r.Render(result)
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Fatal("same layout must render to identical bytes")
	}
}

func TestFontSourceExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "explicit.ttf")
	if err := os.WriteFile(path, fonts.Builtin(), 0o644); err != nil {
		t.Fatalf("write font: %v", err)
	}

	r := NewRendererWithOptions(Options{FontPath: path})
	if got := r.FontSource(); got != path {
		t.Fatalf("FontSource mismatch: got=%q want=%q", got, path)
	}
}

func TestFontSourceBadDataFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.ttf")
	if err := os.WriteFile(path, []byte("not a font"), 0o644); err != nil {
		t.Fatalf("write font: %v", err)
	}

	// 字体数据损坏时换用内置字体而不是报错
	r := NewRendererWithOptions(Options{FontPath: path})
	if got := r.FontSource(); got != "" {
		t.Fatalf("broken font should fall back to builtin, got source %q", got)
	}
	if w, _ := r.MeasureText("abc", 12); w <= 0 {
		t.Fatalf("fallback font must still measure text, got width %g", w)
	}
}
