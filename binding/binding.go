package binding

// 该文件实现页面标题模板的占位符替换，例如 "🔧 ${plugin.name}"。

import (
	"fmt"
	"regexp"
	"strings"
)

var placeholder = regexp.MustCompile(`\$\{([^}]*)\}`)

// Interpolate 将文本中的 ${path.to.value} 替换为 data 里对应的值。
// data 为嵌套的 map[string]any。data 为空、路径为空或查无此值时
// 保留原占位符。
func Interpolate(text string, data map[string]any) string {
	if data == nil || !strings.Contains(text, "${") {
		return text
	}
	return placeholder.ReplaceAllStringFunc(text, func(m string) string {
		path := strings.TrimSpace(m[2 : len(m)-1])
		if path == "" {
			return m
		}
		val, ok := lookup(data, strings.Split(path, "."))
		if !ok {
			return m
		}
		return fmt.Sprint(val)
	})
}

// lookup 沿路径逐层取值，途中遇到非 map 节点即视为未命中。
func lookup(node map[string]any, path []string) (any, bool) {
	var cur any = node
	for _, seg := range path {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		if cur, ok = m[seg]; !ok {
			return nil, false
		}
	}
	return cur, true
}
