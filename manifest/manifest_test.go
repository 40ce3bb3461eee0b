package manifest

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lumixu/menupic/menu"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestPluginsDecodesManifest(t *testing.T) {
	src := NewSource(filepath.Join("testdata", "plugins.toml"), discardLogger())
	plugins, err := src.Plugins(context.Background())
	if err != nil {
		t.Fatalf("解析清单失败: %v", err)
	}
	if len(plugins) != 3 {
		t.Fatalf("插件数量错误: got=%d want=3", len(plugins))
	}

	weather := plugins[0]
	if weather.Name != "天气查询" || weather.Version != "2.1.0" || weather.Author != "lumixu" {
		t.Fatalf("插件元数据错误: %+v", weather)
	}
	if weather.Homepage != "https://example.com/weather" {
		t.Fatalf("主页字段错误: %q", weather.Homepage)
	}
	if len(weather.Commands) != 2 {
		t.Fatalf("命令数量错误: got=%d want=2", len(weather.Commands))
	}

	cmd := weather.Commands[0]
	if cmd.Name != "weather" || cmd.Usage != "/weather <城市>" {
		t.Fatalf("命令字段错误: %+v", cmd)
	}
	if len(cmd.Aliases) != 2 || cmd.Aliases[0] != "天气" {
		t.Fatalf("别名解析错误: %v", cmd.Aliases)
	}
	if len(cmd.Parameters) != 1 || len(cmd.Examples) != 2 {
		t.Fatalf("参数与示例解析错误: %+v", cmd)
	}
	if !weather.Commands[1].Hidden {
		t.Fatalf("hidden 标记未解析")
	}

	if !plugins[1].Commands[1].AdminOnly {
		t.Fatalf("admin_only 标记未解析")
	}
}

// library 类型不对用户提供命令入口，发现阶段即强制隐藏。
func TestLibraryTypeForcedHidden(t *testing.T) {
	src := NewSource(filepath.Join("testdata", "plugins.toml"), discardLogger())
	plugins, err := src.Plugins(context.Background())
	if err != nil {
		t.Fatalf("解析清单失败: %v", err)
	}

	lib := plugins[2]
	if lib.Name != "http-core" {
		t.Fatalf("插件顺序应与清单一致: %+v", lib)
	}
	if lib.Type != menu.TypeLibrary {
		t.Fatalf("类型应归一化为小写: %q", lib.Type)
	}
	if !lib.Hidden {
		t.Fatalf("library 插件应被强制隐藏")
	}
}

func TestSkipsNamelessEntries(t *testing.T) {
	src := NewSource(filepath.Join("testdata", "partial.toml"), discardLogger())
	plugins, err := src.Plugins(context.Background())
	if err != nil {
		t.Fatalf("解析清单失败: %v", err)
	}

	if len(plugins) != 1 {
		t.Fatalf("未命名插件应被跳过: got=%d want=1", len(plugins))
	}
	p := plugins[0]
	if p.Name != "留下的插件" {
		t.Fatalf("保留了错误的插件: %+v", p)
	}
	if len(p.Commands) != 1 || p.Commands[0].Name != "keep" {
		t.Fatalf("未命名命令应被跳过: %+v", p.Commands)
	}
}

func TestMissingManifest(t *testing.T) {
	src := NewSource(filepath.Join("testdata", "absent.toml"), discardLogger())
	if _, err := src.Plugins(context.Background()); err == nil {
		t.Fatalf("文件缺失应报错")
	}
}

func TestMalformedManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.toml")
	if err := os.WriteFile(path, []byte("[[plugins]\nname = 非法"), 0o644); err != nil {
		t.Fatalf("写入临时清单失败: %v", err)
	}

	src := NewSource(path, discardLogger())
	_, err := src.Plugins(context.Background())
	if err == nil {
		t.Fatalf("畸形清单应报错")
	}
	if !strings.Contains(err.Error(), "解析清单") {
		t.Fatalf("错误文案不符: %q", err.Error())
	}
}

func TestPluginsHonorsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	src := NewSource(filepath.Join("testdata", "plugins.toml"), discardLogger())
	if _, err := src.Plugins(ctx); err != context.Canceled {
		t.Fatalf("取消的上下文应立刻返回: %v", err)
	}
}

func TestEmptyManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.toml")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("写入临时清单失败: %v", err)
	}

	src := NewSource(path, discardLogger())
	plugins, err := src.Plugins(context.Background())
	if err != nil {
		t.Fatalf("空清单不应报错: %v", err)
	}
	if len(plugins) != 0 {
		t.Fatalf("空清单应返回空列表: %+v", plugins)
	}
}
