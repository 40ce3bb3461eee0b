package manifest

// 该文件实现 TOML 插件清单的读取，把 [[plugins]] 表转换成领域记录。
// 单个条目缺名只跳过并告警，一次发现不会因为个别坏条目而整体失败。

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/lumixu/menupic/menu"
)

// manifestFile 对应清单文件的顶层结构。
type manifestFile struct {
	Plugins []pluginEntry `toml:"plugins"`
}

type pluginEntry struct {
	Name        string         `toml:"name"`
	Description string         `toml:"description"`
	Version     string         `toml:"version"`
	Author      string         `toml:"author"`
	Homepage    string         `toml:"homepage"`
	Usage       string         `toml:"usage"`
	Type        string         `toml:"type"`
	Hidden      bool           `toml:"hidden"`
	Commands    []commandEntry `toml:"commands"`
}

type commandEntry struct {
	Name        string   `toml:"name"`
	Description string   `toml:"description"`
	Usage       string   `toml:"usage"`
	Aliases     []string `toml:"aliases"`
	Parameters  []string `toml:"parameters"`
	Examples    []string `toml:"examples"`
	Hidden      bool     `toml:"hidden"`
	AdminOnly   bool     `toml:"admin_only"`
}

// Source 从 TOML 清单文件读取插件列表，实现 menu.Source。
// 每次 Plugins 调用重新读取文件，清单改动无需重启即可生效。
type Source struct {
	path   string
	logger *slog.Logger
}

// NewSource 创建指向清单文件的插件来源。logger 为空时用 slog.Default()。
func NewSource(path string, logger *slog.Logger) *Source {
	if logger == nil {
		logger = slog.Default()
	}
	return &Source{path: path, logger: logger}
}

var _ menu.Source = (*Source)(nil)

// Plugins 解析清单并返回插件列表，顺序与清单一致。
func (s *Source) Plugins(ctx context.Context) ([]menu.Plugin, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var file manifestFile
	md, err := toml.DecodeFile(s.path, &file)
	if err != nil {
		return nil, fmt.Errorf("解析清单 %s: %w", s.path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		s.logger.WarnContext(ctx, "清单包含未识别字段", "path", s.path, "keys", strings.Join(keys, ", "))
	}
	return s.convert(ctx, file.Plugins), nil
}

// convert 把清单条目转换为领域记录，坏条目跳过并告警。
func (s *Source) convert(ctx context.Context, entries []pluginEntry) []menu.Plugin {
	plugins := make([]menu.Plugin, 0, len(entries))
	for i, entry := range entries {
		name := strings.TrimSpace(entry.Name)
		if name == "" {
			s.logger.WarnContext(ctx, "忽略未命名插件", "path", s.path, "index", i)
			continue
		}

		p := menu.Plugin{
			Name:        name,
			Description: entry.Description,
			Version:     entry.Version,
			Author:      entry.Author,
			Homepage:    entry.Homepage,
			Usage:       entry.Usage,
			Hidden:      entry.Hidden,
			Type:        normalizeType(entry.Type),
		}
		// library 类型的插件不对用户提供命令入口，强制隐藏
		if p.Type == menu.TypeLibrary {
			p.Hidden = true
		}

		for j, cmd := range entry.Commands {
			cmdName := strings.TrimSpace(cmd.Name)
			if cmdName == "" {
				s.logger.WarnContext(ctx, "忽略未命名命令", "path", s.path, "plugin", name, "index", j)
				continue
			}
			p.Commands = append(p.Commands, menu.Command{
				Name:        cmdName,
				Description: cmd.Description,
				Usage:       cmd.Usage,
				Aliases:     cmd.Aliases,
				Parameters:  cmd.Parameters,
				Examples:    cmd.Examples,
				Hidden:      cmd.Hidden,
				AdminOnly:   cmd.AdminOnly,
			})
		}
		plugins = append(plugins, p)
	}
	return plugins
}

func normalizeType(t string) string {
	t = strings.ToLower(strings.TrimSpace(t))
	if t == "" {
		return menu.TypeApplication
	}
	return t
}
