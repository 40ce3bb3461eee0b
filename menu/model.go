package menu

// 该文件定义帮助菜单的领域数据：命令、插件与页面，以及可见性推导。

import (
	"sort"
	"strings"
)

// 插件类型。library 类型的插件在发现阶段即被标记为隐藏。
const (
	TypeApplication = "application"
	TypeLibrary     = "library"
)

// 页面种类。
const (
	KindMain          = "main"
	KindPluginDetail  = "plugin_detail"
	KindCommandDetail = "command_detail"
)

// 各页面的默认标题模板，${...} 占位符在渲染前替换。
const (
	DefaultMainTitle    = "📚 插件帮助菜单"
	DefaultPluginTitle  = "🔧 ${plugin.name}"
	DefaultCommandTitle = "⚡ ${command.name}"
)

// Command 描述插件注册的一条命令。
type Command struct {
	Name        string
	Description string
	Usage       string
	Aliases     []string
	Parameters  []string
	Examples    []string
	Hidden      bool
	AdminOnly   bool
}

// Plugin 描述一个已安装的插件及其命令列表。
type Plugin struct {
	Name        string
	Description string
	Version     string
	Author      string
	Homepage    string
	Usage       string
	Commands    []Command
	Hidden      bool
	Type        string
}

// Subtitle 返回 "By 作者 | v版本" 形式的副标题，缺失的部分省略。
func (p Plugin) Subtitle() string {
	parts := make([]string, 0, 2)
	if p.Author != "" {
		parts = append(parts, "By "+p.Author)
	}
	if p.Version != "" {
		parts = append(parts, "v"+p.Version)
	}
	return strings.Join(parts, " | ")
}

// CommandCount 返回未隐藏命令的数量。仅管理员可见的命令照常计入。
func (p Plugin) CommandCount() int {
	n := 0
	for _, c := range p.Commands {
		if !c.Hidden {
			n++
		}
	}
	return n
}

// VisibleCommands 过滤出应展示的命令：showHidden 放开隐藏命令，
// isAdmin 放开仅管理员可见的命令。返回新切片，不修改原列表。
func (p Plugin) VisibleCommands(showHidden, isAdmin bool) []Command {
	out := make([]Command, 0, len(p.Commands))
	for _, c := range p.Commands {
		if c.Hidden && !showHidden {
			continue
		}
		if c.AdminOnly && !isAdmin {
			continue
		}
		out = append(out, c)
	}
	return out
}

// HelpPage 描述一次渲染请求的内容与展示参数。
// Page 大于等于 1 时主页面按分页排版，0 表示完整列表。
type HelpPage struct {
	Title      string
	Plugins    []Plugin
	ShowHidden bool
	Kind       string
	Theme      string
	Page       int
}

// VisiblePlugins 返回应展示的插件。ShowHidden 为真时返回全部。
func (h HelpPage) VisiblePlugins() []Plugin {
	if h.ShowHidden {
		return h.Plugins
	}
	out := make([]Plugin, 0, len(h.Plugins))
	for _, p := range h.Plugins {
		if !p.Hidden {
			out = append(out, p)
		}
	}
	return out
}

// PluginCount 返回可见插件数量。
func (h HelpPage) PluginCount() int {
	return len(h.VisiblePlugins())
}

// SortPlugins 按名称做大小写不敏感的稳定排序，结果即页面上的展示顺序。
func SortPlugins(plugins []Plugin) {
	sort.SliceStable(plugins, func(i, j int) bool {
		return strings.ToLower(plugins[i].Name) < strings.ToLower(plugins[j].Name)
	})
}

// SortCommands 按名称做大小写不敏感的稳定排序。
func SortCommands(commands []Command) {
	sort.SliceStable(commands, func(i, j int) bool {
		return strings.ToLower(commands[i].Name) < strings.ToLower(commands[j].Name)
	})
}
