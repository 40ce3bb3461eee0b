package menu

import "strings"

// Theme 描述一套界面配色，颜色为 #rrggbb 形式的十六进制字符串，
// 解析推迟到布局阶段。
type Theme struct {
	Name           string
	Background     string
	Text           string
	CardBackground string
	Border         string
	Primary        string
	Secondary      string
}

// 内置主题。
var (
	Light = Theme{
		Name:           "light",
		Background:     "#f5f5f5",
		Text:           "#333333",
		CardBackground: "#ffffff",
		Border:         "#e0e0e0",
		Primary:        "#007acc",
		Secondary:      "#666666",
	}
	Dark = Theme{
		Name:           "dark",
		Background:     "#2b2b2b",
		Text:           "#ffffff",
		CardBackground: "#3c3c3c",
		Border:         "#555555",
		Primary:        "#4a9eff",
		Secondary:      "#cccccc",
	}
)

// ResolveTheme 按名称返回内置主题，未知名称回退到 light。
func ResolveTheme(name string) Theme {
	if strings.EqualFold(name, Dark.Name) {
		return Dark
	}
	return Light
}
