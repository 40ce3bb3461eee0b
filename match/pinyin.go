package match

// 该文件实现拼音转写，使中文条目可以用拉丁字母检索。

import (
	"strings"

	"github.com/mozillazg/go-pinyin"
)

var phoneticArgs = newPhoneticArgs()

func newPhoneticArgs() pinyin.Args {
	args := pinyin.NewArgs()
	// 非汉字字符原样保留，名称中的字母数字混排才能参与比较。
	args.Fallback = func(r rune, a pinyin.Args) []string {
		return []string{string(r)}
	}
	return args
}

// PhoneticKey 返回 s 的无声调拼音拼接（小写），非汉字字符原样保留。
func PhoneticKey(s string) string {
	parts := pinyin.LazyPinyin(s, phoneticArgs)
	return strings.ToLower(strings.Join(parts, ""))
}
