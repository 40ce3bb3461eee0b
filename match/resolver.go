package match

// 该文件实现插件与命令的解析：序号、精确名称、模糊兜底的三级优先。
// 解析只看候选列表本身，可见性过滤由调用方在解析后自行复查。

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/lumixu/menupic/menu"
)

// DefaultThreshold 为模糊匹配的默认及格线（百分比）。
const DefaultThreshold = 60

// Resolver 将自由文本查询解析为插件或命令。零值可用：
// Threshold 为 0 时取 DefaultThreshold。
type Resolver struct {
	Threshold int  // 模糊匹配及格线
	UsePinyin bool // 是否启用拼音转写匹配
}

// NewResolver 返回启用拼音、使用默认及格线的解析器。
func NewResolver() *Resolver {
	return &Resolver{Threshold: DefaultThreshold, UsePinyin: true}
}

func (r *Resolver) threshold() int {
	if r.Threshold <= 0 {
		return DefaultThreshold
	}
	return r.Threshold
}

// ResolvePlugin 在候选插件中解析查询，候选应按展示顺序排列。
// 优先级：正整数序号 → 大小写不敏感的精确名称 → 融合模糊分数最高者。
// 分数并列时取候选列表中靠前的一个；最高分不及格返回 false。
func (r *Resolver) ResolvePlugin(query string, plugins []menu.Plugin) (menu.Plugin, bool) {
	query = strings.TrimSpace(query)
	if idx, ok := parseIndex(query, len(plugins)); ok {
		return plugins[idx], true
	}
	q := strings.ToLower(query)
	if q == "" {
		return menu.Plugin{}, false
	}
	for _, p := range plugins {
		if strings.ToLower(p.Name) == q {
			return p, true
		}
	}
	bestIdx, bestScore := -1, -1
	for i, p := range plugins {
		if score := r.pluginScore(q, p); score > bestScore {
			bestIdx, bestScore = i, score
		}
	}
	if bestIdx >= 0 && bestScore >= r.threshold() {
		return plugins[bestIdx], true
	}
	return menu.Plugin{}, false
}

// ResolveCommand 在候选命令中解析查询，规则与 ResolvePlugin 相同，
// 模糊阶段用命令的融合分数。
func (r *Resolver) ResolveCommand(query string, commands []menu.Command) (menu.Command, bool) {
	query = strings.TrimSpace(query)
	if idx, ok := parseIndex(query, len(commands)); ok {
		return commands[idx], true
	}
	q := strings.ToLower(query)
	if q == "" {
		return menu.Command{}, false
	}
	for _, c := range commands {
		if strings.ToLower(c.Name) == q {
			return c, true
		}
	}
	bestIdx, bestScore := -1, -1
	for i, c := range commands {
		if score := r.commandScore(q, c); score > bestScore {
			bestIdx, bestScore = i, score
		}
	}
	if bestIdx >= 0 && bestScore >= r.threshold() {
		return commands[bestIdx], true
	}
	return menu.Command{}, false
}

// PluginScore 记录插件的模糊匹配得分。
type PluginScore struct {
	Plugin menu.Plugin
	Score  int
}

// CommandScore 记录命令的模糊匹配得分。
type CommandScore struct {
	Command menu.Command
	Score   int
}

// SearchPlugins 返回得分不低于及格线的插件，按分数稳定降序排列。
func (r *Resolver) SearchPlugins(query string, plugins []menu.Plugin) []PluginScore {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	var out []PluginScore
	for _, p := range plugins {
		if score := r.pluginScore(q, p); score >= r.threshold() {
			out = append(out, PluginScore{Plugin: p, Score: score})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}

// SearchCommands 返回得分不低于及格线的命令，按分数稳定降序排列。
func (r *Resolver) SearchCommands(query string, commands []menu.Command) []CommandScore {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	var out []CommandScore
	for _, c := range commands {
		if score := r.commandScore(q, c); score >= r.threshold() {
			out = append(out, CommandScore{Command: c, Score: score})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}

// pluginScore 融合名称、拼音与描述三路相似度，描述按 0.7 加权。
// 各路分数先取整再比较，保证结果与平台浮点行为无关。
func (r *Resolver) pluginScore(q string, p menu.Plugin) int {
	score := PartialRatio(q, strings.ToLower(p.Name))
	if r.UsePinyin {
		if s := PartialRatio(PhoneticKey(q), PhoneticKey(p.Name)); s > score {
			score = s
		}
	}
	if p.Description != "" {
		if s := weight(PartialRatio(q, strings.ToLower(p.Description)), 0.7); s > score {
			score = s
		}
	}
	return score
}

// commandScore 融合名称与描述两路相似度，描述按 0.8 加权。
func (r *Resolver) commandScore(q string, c menu.Command) int {
	score := PartialRatio(q, strings.ToLower(c.Name))
	if c.Description != "" {
		if s := weight(PartialRatio(q, strings.ToLower(c.Description)), 0.8); s > score {
			score = s
		}
	}
	return score
}

func weight(score int, factor float64) int {
	return int(math.Round(float64(score) * factor))
}

// parseIndex 解析 1 起始的序号。非纯数字、零或超界都视为普通文本。
func parseIndex(query string, n int) (int, bool) {
	if query == "" {
		return 0, false
	}
	for _, r := range query {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	v, err := strconv.Atoi(query)
	if err != nil || v < 1 || v > n {
		return 0, false
	}
	return v - 1, true
}
