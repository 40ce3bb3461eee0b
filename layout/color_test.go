package layout

import (
	"testing"

	"github.com/lumixu/menupic/menu"
)

// TestParseColor 覆盖 #rgb 与 #rrggbb 两种形式及非法输入。
func TestParseColor(t *testing.T) {
	cases := []struct {
		in   string
		want Color
	}{
		{"#fff", Color{255, 255, 255}},
		{"#000", Color{0, 0, 0}},
		{"#007acc", Color{0, 122, 204}},
		{"#2b2b2b", Color{43, 43, 43}},
		{"#F5F5F5", Color{245, 245, 245}},
	}
	for _, c := range cases {
		got, err := ParseColor(c.in)
		if err != nil {
			t.Fatalf("解析 %q 失败: %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("解析 %q 错误: got=%+v want=%+v", c.in, got, c.want)
		}
	}

	for _, bad := range []string{"", "red", "#12345", "#gggggg", "007acc7f"} {
		if _, err := ParseColor(bad); err == nil {
			t.Fatalf("非法颜色 %q 应报错", bad)
		}
	}
}

// TestResolvePalette 验证内置主题可完整解析，坏主题报错。
func TestResolvePalette(t *testing.T) {
	p, err := ResolvePalette(menu.Light)
	if err != nil {
		t.Fatalf("解析 light 主题失败: %v", err)
	}
	if p.Primary != (Color{0, 122, 204}) || p.Background != (Color{245, 245, 245}) {
		t.Fatalf("light 主题解析错误: %+v", p)
	}

	if _, err := ResolvePalette(menu.Dark); err != nil {
		t.Fatalf("解析 dark 主题失败: %v", err)
	}

	bad := menu.Light
	bad.Border = "gray"
	if _, err := ResolvePalette(bad); err == nil {
		t.Fatalf("非法主题颜色应报错")
	}
}
