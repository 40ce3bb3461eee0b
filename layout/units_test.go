package layout

import (
	"math"
	"testing"
)

// TestPxPtRoundTrip 验证 px↔pt 换算的往返精度（允许极小的浮点误差）。
func TestPxPtRoundTrip(t *testing.T) {
	samples := []float64{0, 0.001, 1, 12, 14, 16, 24, 96, 1000}
	for _, px := range samples {
		pt := PxToPt(px)
		back := PtToPx(pt)
		if diff := math.Abs(back - px); diff > 1e-9 {
			t.Fatalf("px→pt→px 往返误差过大: in=%gpx pt=%g back=%g diff=%g", px, pt, back, diff)
		}
	}
	for _, pt := range samples {
		px := PtToPx(pt)
		back := PxToPt(px)
		if diff := math.Abs(back - pt); diff > 1e-9 {
			t.Fatalf("pt→px→pt 往返误差过大: in=%gpt px=%g back=%g diff=%g", pt, px, back, diff)
		}
	}
}

// TestPxToPtScale 验证换算方向：像素数值换成点数应变大。
func TestPxToPtScale(t *testing.T) {
	if got := PxToPt(16); got <= 16 {
		t.Fatalf("16px 应大于 16pt: got=%g", got)
	}
	if got := PtToPx(16); got >= 16 {
		t.Fatalf("16pt 应小于 16px: got=%g", got)
	}
}
