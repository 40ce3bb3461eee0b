package match

import "testing"

// TestPartialRatioWindows 覆盖滑动窗口相似度的典型取值。
func TestPartialRatioWindows(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"status", "status", 100},
		{"基础", "基础功能", 100},
		{"chu", "jichugongneng", 100},
		{"sttus", "status", 60},
		{"zzz", "status", 0},
		{"ABC", "abc", 0},
		{"", "", 100},
		{"a", "", 0},
		{"", "a", 0},
	}
	for _, c := range cases {
		if got := PartialRatio(c.a, c.b); got != c.want {
			t.Fatalf("PartialRatio(%q, %q) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

// TestPartialRatioSymmetric 验证参数顺序不影响结果。
func TestPartialRatioSymmetric(t *testing.T) {
	pairs := [][2]string{
		{"sttus", "status"},
		{"基础", "基础功能"},
		{"help", "helper commands"},
	}
	for _, p := range pairs {
		if a, b := PartialRatio(p[0], p[1]), PartialRatio(p[1], p[0]); a != b {
			t.Fatalf("PartialRatio 不对称: (%q,%q)=%d 交换后=%d", p[0], p[1], a, b)
		}
	}
}
