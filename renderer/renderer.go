package renderer

import "github.com/lumixu/menupic/layout"

// Renderer 将布局结果输出为最终图像。
// Render 返回编码后的二进制数据（例如 PNG 字节切片）以及可能的错误。
type Renderer interface {
	Render(result *layout.Result) ([]byte, error)
}
