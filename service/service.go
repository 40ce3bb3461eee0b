package service

// 该文件实现帮助菜单的门面：发现插件、解析查询、布局渲染与缓存。
// 宿主只需提供插件来源并把返回的 PNG 字节发给用户。

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode"

	"github.com/lumixu/menupic/binding"
	"github.com/lumixu/menupic/layout"
	"github.com/lumixu/menupic/match"
	"github.com/lumixu/menupic/menu"
	"github.com/lumixu/menupic/renderer"
)

// ErrNotAdmin 表示非管理员调用了管理员专属操作。
var ErrNotAdmin = errors.New("权限不足，仅管理员可执行此操作")

// Options 配置帮助菜单服务，零值字段取默认值。
type Options struct {
	Theme          string            // 主题名，light 或 dark，默认 light
	Layout         menu.LayoutConfig // 布局参数，零值字段按默认值填充
	FuzzyThreshold int               // 模糊匹配及格线，0 取 match.DefaultThreshold
	DisablePinyin  bool              // 关闭拼音转写匹配
	CacheTTL       time.Duration     // 渲染缓存存活时间，0 取 menu.DefaultCacheTTL
	DisableCache   bool              // 关闭渲染缓存
	AdminUsers     []string          // 管理员用户标识列表

	// ShowHiddenToAll 为真时所有用户都能看到隐藏的插件与命令，
	// 默认只有管理员可见。
	ShowHiddenToAll bool

	Titles   Titles               // 页面标题模板，空字段用默认模板
	PlanHook func(*layout.Result) // 渲染前观察布局结果，调试用
	Logger   *slog.Logger         // 为空时使用 slog.Default()
}

// Titles 覆盖各页面的标题模板。模板支持 ${...} 占位符：
// 主页面提供 count，详情页提供 plugin.name 等字段。
type Titles struct {
	Main    string
	Plugin  string
	Command string
}

// Service 是帮助菜单的门面。构造后全部字段只读，
// 共享可变状态只有内部缓存，缓存自带锁，可以并发使用。
type Service struct {
	source   menu.Source
	renderer renderer.Renderer
	ts       layout.Typesetter
	resolver *match.Resolver
	cache    *menu.ImageCache // DisableCache 时为 nil
	theme    menu.Theme
	logger   *slog.Logger
	opts     Options
	admins   map[string]struct{}
}

// New 创建帮助菜单服务。渲染器必须同时实现 layout.Typesetter，
// 布局与绘制才能共用同一套字体度量。
func New(source menu.Source, r renderer.Renderer, opts Options) (*Service, error) {
	if source == nil {
		return nil, fmt.Errorf("插件来源不能为空")
	}
	if r == nil {
		return nil, fmt.Errorf("渲染器不能为空")
	}
	ts, ok := r.(layout.Typesetter)
	if !ok {
		return nil, fmt.Errorf("渲染器未实现排版接口")
	}

	opts.Layout = opts.Layout.WithDefaults()
	if err := opts.Layout.Validate(); err != nil {
		return nil, err
	}
	if opts.FuzzyThreshold <= 0 {
		opts.FuzzyThreshold = match.DefaultThreshold
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	admins := make(map[string]struct{}, len(opts.AdminUsers))
	for _, id := range opts.AdminUsers {
		if id != "" {
			admins[id] = struct{}{}
		}
	}

	var cache *menu.ImageCache
	if !opts.DisableCache {
		cache = menu.NewImageCache(opts.CacheTTL)
	}

	return &Service{
		source:   source,
		renderer: r,
		ts:       ts,
		resolver: &match.Resolver{Threshold: opts.FuzzyThreshold, UsePinyin: !opts.DisablePinyin},
		cache:    cache,
		theme:    menu.ResolveTheme(opts.Theme),
		logger:   opts.Logger,
		opts:     opts,
		admins:   admins,
	}, nil
}

// IsAdmin 报告用户是否在管理员列表中。
func (s *Service) IsAdmin(userID string) bool {
	_, ok := s.admins[userID]
	return ok
}

// CanSeeHidden 报告用户是否能看到隐藏的插件与命令。
func (s *Service) CanSeeHidden(userID string) bool {
	return s.opts.ShowHiddenToAll || s.IsAdmin(userID)
}

// HandleQuery 处理一次帮助查询并返回 PNG 字节。空查询渲染主菜单；
// 第一个词解析插件，剩余部分在该插件内解析命令。解析不区分隐藏
// 条目，命中后按调用者的可见性复查，未通过按未找到处理。
func (s *Service) HandleQuery(ctx context.Context, userID, query string) ([]byte, error) {
	plugins, err := s.discover(ctx)
	if err != nil {
		return nil, err
	}

	isAdmin := s.IsAdmin(userID)
	showHidden := s.CanSeeHidden(userID)
	pluginQuery, commandQuery := splitQuery(query)

	if pluginQuery == "" {
		return s.renderMain(ctx, plugins, showHidden, isAdmin, 0)
	}

	plugin, ok := s.resolver.ResolvePlugin(pluginQuery, plugins)
	if !ok || (plugin.Hidden && !showHidden) {
		s.logger.InfoContext(ctx, "插件解析未命中", "user", userID, "query", pluginQuery)
		return nil, &menu.ResolutionMissError{Query: pluginQuery}
	}

	if commandQuery == "" {
		return s.renderPluginDetail(ctx, plugin, showHidden, isAdmin)
	}

	command, ok := s.resolver.ResolveCommand(commandQuery, plugin.Commands)
	if !ok || (command.Hidden && !showHidden) || (command.AdminOnly && !isAdmin) {
		s.logger.InfoContext(ctx, "命令解析未命中", "user", userID, "plugin", plugin.Name, "query", commandQuery)
		return nil, &menu.ResolutionMissError{Query: commandQuery, Plugin: plugin.Name}
	}
	return s.renderCommandDetail(ctx, plugin, command, showHidden, isAdmin)
}

// RenderMainPage 渲染主菜单的指定分页，页码从 1 开始，超界时取最后
// 一页。单页容量由布局配置的 MaxPerPage 决定。
func (s *Service) RenderMainPage(ctx context.Context, userID string, pageNo int) ([]byte, error) {
	plugins, err := s.discover(ctx)
	if err != nil {
		return nil, err
	}
	if pageNo < 1 {
		pageNo = 1
	}
	return s.renderMain(ctx, plugins, s.CanSeeHidden(userID), s.IsAdmin(userID), pageNo)
}

// ClearCache 清空渲染缓存并返回清除的条目数，仅管理员可执行。
func (s *Service) ClearCache(userID string) (int, error) {
	if !s.IsAdmin(userID) {
		return 0, ErrNotAdmin
	}
	if s.cache == nil {
		return 0, nil
	}
	n := s.cache.Clear()
	s.logger.Info("缓存已清空", "user", userID, "evicted", n)
	return n, nil
}

// PruneCache 移除已过期的缓存条目并返回数量。
func (s *Service) PruneCache() int {
	if s.cache == nil {
		return 0
	}
	return s.cache.Prune()
}

// discover 拉取插件列表并整理成展示顺序：插件与每个插件的命令
// 都按名称做大小写不敏感排序，解析序号即按这个顺序计数。
func (s *Service) discover(ctx context.Context) ([]menu.Plugin, error) {
	plugins, err := s.source.Plugins(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "插件发现失败", "error", err.Error())
		return nil, fmt.Errorf("获取插件列表失败: %w", err)
	}
	menu.SortPlugins(plugins)
	for i := range plugins {
		menu.SortCommands(plugins[i].Commands)
	}
	return plugins, nil
}

func (s *Service) renderMain(ctx context.Context, plugins []menu.Plugin, showHidden, isAdmin bool, pageNo int) ([]byte, error) {
	page := menu.HelpPage{
		Plugins:    plugins,
		ShowHidden: showHidden,
		Kind:       menu.KindMain,
		Theme:      s.theme.Name,
		Page:       pageNo,
	}
	page.Title = s.titleFor(menu.KindMain, map[string]any{"count": page.PluginCount()})

	key := menu.CacheKey{
		Kind:       menu.KindMain,
		Names:      pluginNames(page.VisiblePlugins()),
		ShowHidden: showHidden,
		Theme:      s.theme.Name,
		Page:       pageNo,
	}
	return s.produce(ctx, menu.KindMain, key, isAdmin, func(o layout.BuildOptions) (*layout.Result, error) {
		return layout.BuildMainPage(page, o)
	})
}

func (s *Service) renderPluginDetail(ctx context.Context, plugin menu.Plugin, showHidden, isAdmin bool) ([]byte, error) {
	page := menu.HelpPage{
		Title:      s.titleFor(menu.KindPluginDetail, pluginData(plugin)),
		Plugins:    []menu.Plugin{plugin},
		ShowHidden: showHidden,
		Kind:       menu.KindPluginDetail,
		Theme:      s.theme.Name,
	}

	// 命令卡片随可见性变化，键里带上实际渲染的命令名
	names := []string{plugin.Name}
	for _, c := range plugin.VisibleCommands(showHidden, isAdmin) {
		names = append(names, c.Name)
	}
	key := menu.CacheKey{
		Kind:       menu.KindPluginDetail,
		Names:      names,
		ShowHidden: showHidden,
		Theme:      s.theme.Name,
	}
	return s.produce(ctx, menu.KindPluginDetail, key, isAdmin, func(o layout.BuildOptions) (*layout.Result, error) {
		return layout.BuildPluginDetail(page, plugin, o)
	})
}

func (s *Service) renderCommandDetail(ctx context.Context, plugin menu.Plugin, command menu.Command, showHidden, isAdmin bool) ([]byte, error) {
	data := pluginData(plugin)
	data["command"] = map[string]any{"name": command.Name}
	page := menu.HelpPage{
		Title:      s.titleFor(menu.KindCommandDetail, data),
		Plugins:    []menu.Plugin{plugin},
		ShowHidden: showHidden,
		Kind:       menu.KindCommandDetail,
		Theme:      s.theme.Name,
	}

	key := menu.CacheKey{
		Kind:       menu.KindCommandDetail,
		Names:      []string{plugin.Name, command.Name},
		ShowHidden: showHidden,
		Theme:      s.theme.Name,
	}
	return s.produce(ctx, menu.KindCommandDetail, key, isAdmin, func(o layout.BuildOptions) (*layout.Result, error) {
		return layout.BuildCommandDetail(page, plugin, command, o)
	})
}

// produce 执行布局、调试钩子与渲染，并经缓存去重：相同键的并发
// 请求只渲染一次，缓存未命中或过期时重新渲染。
func (s *Service) produce(ctx context.Context, kind string, key menu.CacheKey, isAdmin bool, build func(layout.BuildOptions) (*layout.Result, error)) ([]byte, error) {
	fill := func() ([]byte, error) {
		result, err := build(layout.BuildOptions{
			Config:     s.opts.Layout,
			Theme:      s.theme,
			Typesetter: s.ts,
			IsAdmin:    isAdmin,
		})
		if err != nil {
			s.logger.ErrorContext(ctx, "布局失败", "kind", kind, "error", err.Error())
			return nil, err
		}
		if s.opts.PlanHook != nil {
			s.opts.PlanHook(result)
		}
		data, err := s.renderer.Render(result)
		if err != nil {
			s.logger.ErrorContext(ctx, "渲染失败", "kind", kind, "error", err.Error())
			return nil, &menu.RenderError{Kind: kind, Err: err}
		}
		return data, nil
	}

	if s.cache == nil {
		return fill()
	}
	return s.cache.GetOrFill(key, fill)
}

// titleFor 取对应页面的标题模板并完成占位符替换。
func (s *Service) titleFor(kind string, data map[string]any) string {
	var tpl string
	switch kind {
	case menu.KindPluginDetail:
		tpl = s.opts.Titles.Plugin
		if tpl == "" {
			tpl = menu.DefaultPluginTitle
		}
	case menu.KindCommandDetail:
		tpl = s.opts.Titles.Command
		if tpl == "" {
			tpl = menu.DefaultCommandTitle
		}
	default:
		tpl = s.opts.Titles.Main
		if tpl == "" {
			tpl = menu.DefaultMainTitle
		}
	}
	return binding.Interpolate(tpl, data)
}

func pluginData(p menu.Plugin) map[string]any {
	return map[string]any{
		"plugin": map[string]any{
			"name":    p.Name,
			"version": p.Version,
			"author":  p.Author,
		},
	}
}

func pluginNames(plugins []menu.Plugin) []string {
	names := make([]string, len(plugins))
	for i, p := range plugins {
		names[i] = p.Name
	}
	return names
}

// splitQuery 把查询拆成插件部分与命令部分，以第一段空白为界。
func splitQuery(query string) (pluginQuery, commandQuery string) {
	query = strings.TrimSpace(query)
	if query == "" {
		return "", ""
	}
	if i := strings.IndexFunc(query, unicode.IsSpace); i >= 0 {
		return query[:i], strings.TrimSpace(query[i:])
	}
	return query, ""
}
