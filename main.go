package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/lumixu/menupic/layout"
	"github.com/lumixu/menupic/manifest"
	"github.com/lumixu/menupic/menu"
	canvasrenderer "github.com/lumixu/menupic/renderer/canvas"
	"github.com/lumixu/menupic/service"
)

// cliConfig 汇总命令行参数。
type cliConfig struct {
	manifestPath string
	query        string
	user         string
	theme        string
	output       string
	debugPath    string
	fontPath     string
	scale        float64
	threshold    int
	page         int
	admin        bool
	showHidden   bool
	noPinyin     bool
	status       bool
}

func main() {
	var cfg cliConfig
	flag.StringVar(&cfg.manifestPath, "manifest", "examples/plugins.toml", "插件清单 TOML 路径")
	flag.StringVar(&cfg.query, "query", "", "帮助查询，空为插件总览，如 \"天气\" 或 \"天气 weather\"")
	flag.StringVar(&cfg.user, "user", "cli", "调用者标识，配合 -admin 决定可见范围")
	flag.StringVar(&cfg.theme, "theme", "light", "主题名，light 或 dark")
	flag.StringVar(&cfg.output, "out", "output/menu.png", "PNG 输出路径")
	flag.StringVar(&cfg.debugPath, "debug", "", "布局调试 JSON 输出路径")
	flag.StringVar(&cfg.fontPath, "font", "", "字体文件路径，空则按平台探测")
	flag.Float64Var(&cfg.scale, "scale", 1, "光栅化倍率")
	flag.IntVar(&cfg.threshold, "threshold", 0, "模糊匹配及格线，0 取默认值")
	flag.IntVar(&cfg.page, "page", 0, "总览分页页码，0 渲染完整列表，仅在 query 为空时生效")
	flag.BoolVar(&cfg.admin, "admin", false, "以管理员身份调用")
	flag.BoolVar(&cfg.showHidden, "show-hidden", false, "对所有用户展示隐藏条目")
	flag.BoolVar(&cfg.noPinyin, "no-pinyin", false, "关闭拼音检索")
	flag.BoolVar(&cfg.status, "status", false, "打印服务状态文本后退出，不渲染图片")
	flag.Parse()

	if err := run(cfg); err != nil {
		log.Fatalf("生成菜单失败: %v", err)
	}
}

// run 串联清单发现、布局与渲染。
func run(cfg cliConfig) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	layoutCfg := menu.LayoutConfig{Scale: cfg.scale}.WithDefaults()
	source := manifest.NewSource(cfg.manifestPath, logger)
	r := canvasrenderer.NewRendererWithOptions(canvasrenderer.Options{
		Scale:    layoutCfg.Scale,
		FontPath: cfg.fontPath,
	})

	var plan *layout.Result
	opts := service.Options{
		Theme:           cfg.theme,
		Layout:          layoutCfg,
		FuzzyThreshold:  cfg.threshold,
		DisablePinyin:   cfg.noPinyin,
		ShowHiddenToAll: cfg.showHidden,
		Logger:          logger,
	}
	if cfg.admin {
		opts.AdminUsers = []string{cfg.user}
	}
	if cfg.debugPath != "" {
		opts.PlanHook = func(res *layout.Result) { plan = res }
	}

	svc, err := service.New(source, r, opts)
	if err != nil {
		return err
	}

	ctx := context.Background()
	if cfg.status {
		stats, err := svc.Stats(ctx)
		if err != nil {
			return err
		}
		fmt.Println(stats.String())
		return nil
	}

	var data []byte
	if cfg.query == "" && cfg.page >= 1 {
		data, err = svc.RenderMainPage(ctx, cfg.user, cfg.page)
	} else {
		data, err = svc.HandleQuery(ctx, cfg.user, cfg.query)
	}
	if err != nil {
		return err
	}

	if cfg.debugPath != "" {
		if err := writeDebug(plan, cfg.debugPath); err != nil {
			return err
		}
	}

	if dir := filepath.Dir(cfg.output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("创建输出目录失败: %w", err)
		}
	}
	if err := os.WriteFile(cfg.output, data, 0o644); err != nil {
		return fmt.Errorf("写入 PNG 文件失败: %w", err)
	}

	fmt.Printf("已生成菜单图片：%s\n", cfg.output)
	return nil
}

func writeDebug(plan *layout.Result, debugPath string) error {
	if dir := filepath.Dir(debugPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("创建调试目录失败: %w", err)
		}
	}
	if err := layout.WriteDebugJSON(plan, debugPath); err != nil {
		return fmt.Errorf("输出调试 JSON 失败: %w", err)
	}
	return nil
}
