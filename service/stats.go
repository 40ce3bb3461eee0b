package service

// 该文件汇总服务的运行状态，String 输出可直接回复到聊天的文本块。

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Stats 是服务状态的一次快照。
type Stats struct {
	Plugins       int // 已加载插件数，含隐藏插件
	Commands      int // 命令总数，含隐藏命令
	HiddenPlugins int
	Theme         string
	CacheEntries  int
	CacheTTL      time.Duration // 缓存关闭时为 0
	Threshold     int
	Admins        int
	PinyinEnabled bool
}

// Stats 拉取一次插件列表并汇总当前运行状态。
func (s *Service) Stats(ctx context.Context) (Stats, error) {
	plugins, err := s.discover(ctx)
	if err != nil {
		return Stats{}, err
	}

	st := Stats{
		Plugins:       len(plugins),
		Theme:         s.theme.Name,
		Threshold:     s.opts.FuzzyThreshold,
		Admins:        len(s.admins),
		PinyinEnabled: !s.opts.DisablePinyin,
	}
	for _, p := range plugins {
		st.Commands += len(p.Commands)
		if p.Hidden {
			st.HiddenPlugins++
		}
	}
	if s.cache != nil {
		st.CacheEntries = s.cache.Len()
		st.CacheTTL = s.cache.TTL()
	}
	return st, nil
}

// String 渲染状态文本块。
func (st Stats) String() string {
	pinyin := "✅ 启用"
	if !st.PinyinEnabled {
		pinyin = "❌ 禁用"
	}
	lines := []string{
		"📊 帮助菜单状态",
		fmt.Sprintf("🔌 已加载插件: %d", st.Plugins),
		fmt.Sprintf("📦 命令总数: %d", st.Commands),
		fmt.Sprintf("🎨 当前主题: %s", st.Theme),
		fmt.Sprintf("💾 缓存图片数: %d", st.CacheEntries),
		fmt.Sprintf("🔍 模糊搜索阈值: %d", st.Threshold),
		fmt.Sprintf("👥 管理员数量: %d", st.Admins),
		fmt.Sprintf("🈯 拼音搜索: %s", pinyin),
		fmt.Sprintf("⏰ 缓存过期时间: %d分钟", int(st.CacheTTL.Minutes())),
	}
	return strings.Join(lines, "\n")
}
