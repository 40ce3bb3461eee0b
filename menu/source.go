package menu

import "context"

// Source 提供插件元数据，由宿主机器人或清单文件实现。
// 实现应容忍单个插件的元数据缺陷：跳过有问题的条目并继续，
// 而不是让整次发现失败。
type Source interface {
	Plugins(ctx context.Context) ([]Plugin, error)
}
