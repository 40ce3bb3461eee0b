package fonts

// 该文件负责字体来源的解析：按平台优先级探测系统字体文件，
// 全部缺失时回退到内置字体，渲染不因字体缺失而失败。

import (
	"os"
	"runtime"

	"golang.org/x/image/font/gofont/goregular"
)

// BuiltinName 为内置字体在渲染器中注册的家族名。
const BuiltinName = "Go Regular"

// Builtin 返回内置字体的 TTF 字节，任何平台都可用。
// 内置字体不含 CJK 字形，仅作为系统字体全部缺失时的兜底。
func Builtin() []byte { return goregular.TTF }

// Candidates 返回当前平台的字体候选路径，按优先级从高到低排列。
func Candidates() []string { return candidatesFor(runtime.GOOS) }

func candidatesFor(goos string) []string {
	switch goos {
	case "windows":
		return []string{
			`C:\Windows\Fonts\msyh.ttc`,
			`C:\Windows\Fonts\simhei.ttf`,
			`C:\Windows\Fonts\simsun.ttc`,
			`C:\Windows\Fonts\arial.ttf`,
			`C:\Windows\Fonts\calibri.ttf`,
		}
	case "darwin":
		return []string{
			"/System/Library/Fonts/PingFang.ttc",
			"/System/Library/Fonts/Helvetica.ttc",
			"/System/Library/Fonts/Arial.ttf",
			"/Library/Fonts/Arial Unicode.ttf",
		}
	default:
		return []string{
			"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
			"/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf",
			"/usr/share/fonts/truetype/noto/NotoSansCJK-Regular.ttc",
			"/usr/share/fonts/opentype/noto/NotoSansCJK-Regular.ttc",
			"/usr/share/fonts/truetype/wqy/wqy-microhei.ttc",
			"/usr/share/fonts/truetype/arphic/uming.ttc",
		}
	}
}

// Resolve 返回第一个可读的候选字体内容。没有可用候选时返回内置
// 字体，此时来源路径为空串。解析只在渲染器构造时做一次。
func Resolve() (data []byte, path string) {
	return resolve(Candidates())
}

func resolve(candidates []string) ([]byte, string) {
	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil || len(data) == 0 {
			continue
		}
		return data, path
	}
	return Builtin(), ""
}
