package menu

// 该文件定义渲染管线的错误类型，Error() 文本即面向用户的提示信息。

import "fmt"

// ResolutionMissError 表示查询没有命中任何插件或命令。
// Plugin 非空时表示在该插件范围内查找命令未果。
type ResolutionMissError struct {
	Query  string
	Plugin string
}

func (e *ResolutionMissError) Error() string {
	if e.Plugin != "" {
		return fmt.Sprintf("在插件 %s 中未找到命令: %s", e.Plugin, e.Query)
	}
	return fmt.Sprintf("未找到插件: %s", e.Query)
}

// LayoutError 表示布局阶段失败，Kind 为页面种类。
type LayoutError struct {
	Kind string
	Err  error
}

func (e *LayoutError) Error() string {
	return fmt.Sprintf("布局 %s 页面失败: %v", e.Kind, e.Err)
}

func (e *LayoutError) Unwrap() error { return e.Err }

// RenderError 表示绘制或编码阶段失败。字体加载失败不属于渲染错误，
// 渲染器会降级到内置字体。
type RenderError struct {
	Kind string
	Err  error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("渲染 %s 页面失败: %v", e.Kind, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }
