package canvasrenderer

// 该文件实现 layout.Typesetter：文本测量与 CJK 感知的折行。
// 折行时每个候选行都整行重新测量，避免逐段累加宽度产生字距误差。

import (
	"math"
	"strings"

	"github.com/lumixu/menupic/layout"
)

// MeasureText 返回单行文本的宽度与标称高度，高度取字号本身。
func (r *Renderer) MeasureText(content string, fontSize float64) (float64, float64) {
	face, err := r.fontFace(fontSize, layout.Color{})
	if err != nil {
		// 字体不可用时按字号近似：CJK 全宽、其余半宽
		return approximateWidth(content, fontSize), fontSize
	}
	return face.TextWidth(content), fontSize
}

// LayoutLines 将文本折成不超过 width 的行。显式换行符强制分行；
// 含 CJK 字符的段落逐字符折行，其余段落按空白分词折行。
// 超宽的单字或单词独占一行而不会被截断。
func (r *Renderer) LayoutLines(content string, width, fontSize, lineHeight float64) ([]layout.TextLine, error) {
	face, err := r.fontFace(fontSize, layout.Color{})
	if err != nil {
		return nil, err
	}
	measure := func(s string) float64 { return face.TextWidth(s) }

	var lines []layout.TextLine
	normalized := strings.ReplaceAll(content, "\r", "")
	for _, paragraph := range strings.Split(normalized, "\n") {
		for _, seg := range wrapParagraph(paragraph, width, measure) {
			lines = append(lines, layout.TextLine{
				Content: seg,
				Width:   measure(seg),
				Height:  fontSize,
			})
		}
	}
	if len(lines) == 0 {
		lines = []layout.TextLine{{Content: "", Width: 0, Height: fontSize}}
	}

	gap := math.Max(lineHeight-fontSize, 0)
	for i := range lines {
		if i > 0 {
			lines[i].GapBefore = gap
		}
	}
	return lines, nil
}

func wrapParagraph(paragraph string, width float64, measure func(string) float64) []string {
	if paragraph == "" {
		return []string{""}
	}
	if width <= 0 {
		return []string{paragraph}
	}
	if containsCJK(paragraph) {
		return packAtoms(splitRunes(paragraph), "", width, measure)
	}
	return packAtoms(strings.Fields(paragraph), " ", width, measure)
}

// packAtoms 按贪心策略把原子（字符或单词）装进行里。
// 候选行超宽时结束当前行；单个原子超宽时独占一行。
func packAtoms(atoms []string, sep string, width float64, measure func(string) float64) []string {
	var lines []string
	current := ""
	for _, atom := range atoms {
		candidate := atom
		if current != "" {
			candidate = current + sep + atom
		}
		if current == "" || measure(candidate) <= width {
			current = candidate
			continue
		}
		lines = append(lines, current)
		current = atom
	}
	if current != "" {
		lines = append(lines, current)
	}
	if len(lines) == 0 {
		return []string{""}
	}
	return lines
}

func splitRunes(s string) []string {
	atoms := make([]string, 0, len(s))
	for _, r := range s {
		atoms = append(atoms, string(r))
	}
	return atoms
}

// containsCJK 判断文本是否含有 CJK 统一表意文字（U+4E00 到 U+9FFF）。
func containsCJK(s string) bool {
	for _, r := range s {
		if r >= 0x4E00 && r <= 0x9FFF {
			return true
		}
	}
	return false
}

func approximateWidth(content string, fontSize float64) float64 {
	var w float64
	for _, r := range content {
		if r >= 0x4E00 && r <= 0x9FFF {
			w += fontSize
		} else {
			w += fontSize / 2
		}
	}
	return w
}
