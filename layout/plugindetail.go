package layout

// 该文件构建插件详情页：头部（标题、副标题、居中描述）与命令卡片网格。

import (
	"strconv"

	"github.com/lumixu/menupic/menu"
)

// BuildPluginDetail 构建单个插件的命令列表页。
// 命令可见性由 page.ShowHidden 与 opts.IsAdmin 共同决定。
func BuildPluginDetail(page menu.HelpPage, plugin menu.Plugin, opts BuildOptions) (*Result, error) {
	c, err := newComposer(menu.KindPluginDetail, opts)
	if err != nil {
		return nil, err
	}

	commands := plugin.VisibleCommands(page.ShowHidden, opts.IsAdmin)

	gridTop := detailHeaderHeight + c.cfg.Padding
	contentH := c.gridHeight(len(commands), commandCardHeight)
	pg := Page{
		Width:      c.cfg.Width,
		Height:     gridTop + contentH + c.cfg.Padding,
		Background: c.palette.Background,
	}

	title := page.Title
	if title == "" {
		title = "🔧 " + plugin.Name
	}
	y := c.cfg.Padding
	pg.Texts = append(pg.Texts, c.singleLine(title, 0, y, c.cfg.Width, c.cfg.TitleFontSize(), c.palette.Text, "center"))
	y += c.cfg.TitleFontSize() + 5

	if sub := plugin.Subtitle(); sub != "" {
		pg.Texts = append(pg.Texts, c.singleLine(sub, 0, y, c.cfg.Width, c.cfg.SubtitleFontSize(), c.palette.Secondary, "center"))
		y += c.cfg.SubtitleFontSize() + 5
	}

	if plugin.Description != "" {
		// 描述最多两行，且不越过头部与网格的分界。
		desc, err := c.wrapped(plugin.Description, c.cfg.Padding, y, c.cfg.Width-2*c.cfg.Padding, c.cfg.SubtitleFontSize(), c.palette.Secondary, 2, gridTop)
		if err != nil {
			return nil, &menu.LayoutError{Kind: menu.KindPluginDetail, Err: err}
		}
		if len(desc.Lines) > 0 {
			desc.Align = "center"
			pg.Texts = append(pg.Texts, desc)
		}
	}

	if len(commands) == 0 {
		pg.Texts = append(pg.Texts, c.emptyNotice("该插件暂无可用命令", gridTop))
		return &Result{Pages: []Page{pg}}, nil
	}

	cardW := c.cardWidth()
	for i, cmd := range commands {
		x, cy := c.cardPos(i, gridTop, commandCardHeight)
		pg.Rects = append(pg.Rects, c.cardShell(x, cy, cardW, commandCardHeight))

		index := c.singleLine(strconv.Itoa(i+1), x+cardInset, cy+cardInset, nameIndent-cardInset, c.cfg.SubtitleFontSize(), c.palette.Primary, "")
		pg.Texts = append(pg.Texts, index)

		pg.Texts = append(pg.Texts, c.singleLine("/"+cmd.Name, x+nameIndent, cy+cardInset, cardW-nameIndent-cardInset, c.cfg.FontSize, c.palette.Text, ""))

		if cmd.Description != "" {
			desc, err := c.wrapped(cmd.Description, x+cardInset, cy+40, cardW-2*cardInset, c.cfg.SubtitleFontSize(), c.palette.Secondary, 2, cy+commandCardHeight-20)
			if err != nil {
				return nil, &menu.LayoutError{Kind: menu.KindPluginDetail, Err: err}
			}
			if len(desc.Lines) > 0 {
				pg.Texts = append(pg.Texts, desc)
			}
		}

		if cmd.AdminOnly {
			fill := c.palette.Primary
			pg.Badges = append(pg.Badges, Badge{
				Text:      "管理员",
				Right:     x + cardW - cardInset,
				Bottom:    cy + commandCardHeight - cardInset,
				FontSize:  c.cfg.SubtitleFontSize() - 2,
				TextColor: c.palette.Background,
				FillColor: &fill,
				PadX:      3,
				PadY:      2,
				Radius:    3,
			})
		}
	}
	return &Result{Pages: []Page{pg}}, nil
}
