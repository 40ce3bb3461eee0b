package menu

import "testing"

// TestPluginSubtitle 验证副标题只拼接存在的部分。
func TestPluginSubtitle(t *testing.T) {
	cases := []struct {
		author, version, want string
	}{
		{"张三", "1.2.0", "By 张三 | v1.2.0"},
		{"张三", "", "By 张三"},
		{"", "1.2.0", "v1.2.0"},
		{"", "", ""},
	}
	for _, c := range cases {
		p := Plugin{Name: "demo", Author: c.author, Version: c.version}
		if got := p.Subtitle(); got != c.want {
			t.Fatalf("副标题错误: author=%q version=%q got=%q want=%q", c.author, c.version, got, c.want)
		}
	}
}

// TestCommandCountIgnoresAdminOnly 断言命令计数只排除隐藏命令，
// 管理员命令照常计入。
func TestCommandCountIgnoresAdminOnly(t *testing.T) {
	p := Plugin{
		Name: "工具集",
		Commands: []Command{
			{Name: "run"},
			{Name: "purge", AdminOnly: true},
			{Name: "trace", Hidden: true},
		},
	}
	if got := p.CommandCount(); got != 2 {
		t.Fatalf("命令计数错误: got=%d want=2", got)
	}
}

// TestVisibleCommands 覆盖 showHidden 与 isAdmin 的四种组合。
func TestVisibleCommands(t *testing.T) {
	p := Plugin{
		Name: "工具集",
		Commands: []Command{
			{Name: "run"},
			{Name: "trace", Hidden: true},
			{Name: "purge", AdminOnly: true},
			{Name: "debug", Hidden: true, AdminOnly: true},
		},
	}
	cases := []struct {
		showHidden, isAdmin bool
		want                []string
	}{
		{false, false, []string{"run"}},
		{true, false, []string{"run", "trace"}},
		{false, true, []string{"run", "purge"}},
		{true, true, []string{"run", "trace", "purge", "debug"}},
	}
	for _, c := range cases {
		got := p.VisibleCommands(c.showHidden, c.isAdmin)
		if len(got) != len(c.want) {
			t.Fatalf("showHidden=%v isAdmin=%v 可见数量错误: got=%d want=%d", c.showHidden, c.isAdmin, len(got), len(c.want))
		}
		for i, cmd := range got {
			if cmd.Name != c.want[i] {
				t.Fatalf("showHidden=%v isAdmin=%v 第 %d 个命令错误: got=%q want=%q", c.showHidden, c.isAdmin, i, cmd.Name, c.want[i])
			}
		}
	}
}

// TestVisiblePlugins 验证页面级的隐藏插件过滤。
func TestVisiblePlugins(t *testing.T) {
	page := HelpPage{
		Plugins: []Plugin{
			{Name: "基础功能"},
			{Name: "调试工具", Hidden: true},
			{Name: "天气查询"},
		},
	}
	if got := page.PluginCount(); got != 2 {
		t.Fatalf("隐藏过滤后数量错误: got=%d want=2", got)
	}
	page.ShowHidden = true
	if got := page.PluginCount(); got != 3 {
		t.Fatalf("ShowHidden 下数量错误: got=%d want=3", got)
	}
}

// TestSortPluginsCaseInsensitive 验证展示顺序对大小写不敏感且稳定。
func TestSortPluginsCaseInsensitive(t *testing.T) {
	plugins := []Plugin{
		{Name: "Weather"},
		{Name: "admin"},
		{Name: "Admin"},
		{Name: "base"},
	}
	SortPlugins(plugins)
	want := []string{"admin", "Admin", "base", "Weather"}
	for i, p := range plugins {
		if p.Name != want[i] {
			t.Fatalf("排序结果第 %d 项错误: got=%q want=%q", i, p.Name, want[i])
		}
	}
}

// TestSortCommands 验证命令排序与插件排序使用同一规则。
func TestSortCommands(t *testing.T) {
	commands := []Command{
		{Name: "Status"},
		{Name: "help"},
		{Name: "config"},
	}
	SortCommands(commands)
	want := []string{"config", "help", "Status"}
	for i, c := range commands {
		if c.Name != want[i] {
			t.Fatalf("排序结果第 %d 项错误: got=%q want=%q", i, c.Name, want[i])
		}
	}
}
