package layout

// 该文件实现主题颜色的解析。主题以 #rgb/#rrggbb 字符串存储，
// 页面构建开始时一次性解析成具体 RGB，后续指令只携带解析结果。

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lumixu/menupic/menu"
)

// Palette 是解析后的主题配色。
type Palette struct {
	Background     Color
	Text           Color
	CardBackground Color
	Border         Color
	Primary        Color
	Secondary      Color
}

// ResolvePalette 解析主题中的全部颜色，任何一项非法都返回错误。
func ResolvePalette(t menu.Theme) (Palette, error) {
	var p Palette
	fields := []struct {
		name  string
		value string
		dst   *Color
	}{
		{"background", t.Background, &p.Background},
		{"text", t.Text, &p.Text},
		{"card_background", t.CardBackground, &p.CardBackground},
		{"border", t.Border, &p.Border},
		{"primary", t.Primary, &p.Primary},
		{"secondary", t.Secondary, &p.Secondary},
	}
	for _, f := range fields {
		c, err := ParseColor(f.value)
		if err != nil {
			return Palette{}, fmt.Errorf("主题 %s 的 %s 颜色无效: %w", t.Name, f.name, err)
		}
		*f.dst = c
	}
	return p, nil
}

// ParseColor 解析 #rgb 或 #rrggbb 形式的颜色值。
func ParseColor(value string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(value), "#")
	switch len(hex) {
	case 3:
		r := strings.Repeat(string(hex[0]), 2)
		g := strings.Repeat(string(hex[1]), 2)
		b := strings.Repeat(string(hex[2]), 2)
		return parseChannels(value, r, g, b)
	case 6:
		return parseChannels(value, hex[0:2], hex[2:4], hex[4:6])
	default:
		return Color{}, fmt.Errorf("颜色值 %s 无法解析", value)
	}
}

func parseChannels(raw, r, g, b string) (Color, error) {
	var out Color
	for _, ch := range []struct {
		hex string
		dst *int
	}{{r, &out.R}, {g, &out.G}, {b, &out.B}} {
		v, err := strconv.ParseUint(ch.hex, 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("颜色值 %s 无法解析", raw)
		}
		*ch.dst = int(v)
	}
	return out, nil
}
