package match

// 该文件实现部分匹配相似度：较短串在较长串的等长窗口上滑动，
// 取编辑距离最优的窗口，结果为 0..100 的整数百分比。

import (
	"math"

	"github.com/agnivade/levenshtein"
)

// PartialRatio 计算 a 与 b 的部分匹配相似度。
// 两者都为空返回 100，仅一方为空返回 0。比较区分大小写，
// 调用方需要时自行统一大小写。
func PartialRatio(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 && len(rb) == 0 {
		return 100
	}
	if len(ra) == 0 || len(rb) == 0 {
		return 0
	}
	shorter, longer := ra, rb
	if len(shorter) > len(longer) {
		shorter, longer = longer, shorter
	}
	m := len(shorter)
	s := string(shorter)
	best := 0
	for start := 0; start+m <= len(longer); start++ {
		dist := levenshtein.ComputeDistance(s, string(longer[start:start+m]))
		score := int(math.Round(100 * float64(m-dist) / float64(m)))
		if score > best {
			best = score
			if best == 100 {
				break
			}
		}
	}
	return best
}
