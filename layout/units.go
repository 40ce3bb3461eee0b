package layout

// This file defines unit helpers bridging logical pixels and font points.
// 画布按 1 毫米 = 1 逻辑像素标定，光栅化时由倍率换算为物理像素，
// 字号则需要先转换为点数再交给字体后端。

// Conversion constants between pt and mm.
const (
	PtToMm = 0.352777
	MmToPt = 1.0 / PtToMm
)

// PxToPt 将逻辑像素字号转换为点数。
func PxToPt(px float64) float64 { return px * MmToPt }

// PtToPx 将点数转换为逻辑像素。
func PtToPx(pt float64) float64 { return pt * PtToMm }
