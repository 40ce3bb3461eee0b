package layout

// 该文件构建主菜单页：居中标题、插件计数副标题与插件卡片网格。

import (
	"fmt"
	"strconv"

	"github.com/lumixu/menupic/menu"
)

// BuildMainPage 构建插件总览页。可见插件由 page 的过滤规则选出；
// page.Page 大于等于 1 且插件数超过单页容量时，只排版对应分片，
// 序号仍按完整列表计数，副标题附带页码。
func BuildMainPage(page menu.HelpPage, opts BuildOptions) (*Result, error) {
	c, err := newComposer(menu.KindMain, opts)
	if err != nil {
		return nil, err
	}

	visible := page.VisiblePlugins()
	total := len(visible)

	shown := visible
	start := 0
	totalPages := 1
	if page.Page >= 1 && c.cfg.MaxPerPage > 0 && total > 0 {
		totalPages = (total + c.cfg.MaxPerPage - 1) / c.cfg.MaxPerPage
		pageNo := page.Page
		if pageNo > totalPages {
			pageNo = totalPages
		}
		start = (pageNo - 1) * c.cfg.MaxPerPage
		end := start + c.cfg.MaxPerPage
		if end > total {
			end = total
		}
		shown = visible[start:end]
	}

	gridTop := mainHeaderHeight + c.cfg.Padding
	contentH := c.gridHeight(len(shown), mainCardHeight)
	pg := Page{
		Width:      c.cfg.Width,
		Height:     gridTop + contentH + c.cfg.Padding,
		Background: c.palette.Background,
	}

	title := page.Title
	if title == "" {
		title = menu.DefaultMainTitle
	}
	pg.Texts = append(pg.Texts, c.singleLine(title, 0, c.cfg.Padding, c.cfg.Width, c.cfg.TitleFontSize(), c.palette.Text, "center"))

	subtitle := fmt.Sprintf("共 %d 个插件", total)
	if totalPages > 1 {
		subtitle = fmt.Sprintf("%s · 第 %d/%d 页", subtitle, start/c.cfg.MaxPerPage+1, totalPages)
	}
	subtitleY := c.cfg.Padding + c.cfg.TitleFontSize() + 10
	pg.Texts = append(pg.Texts, c.singleLine(subtitle, 0, subtitleY, c.cfg.Width, c.cfg.SubtitleFontSize(), c.palette.Secondary, "center"))

	if len(shown) == 0 {
		pg.Texts = append(pg.Texts, c.emptyNotice("暂无可用插件", gridTop))
		return &Result{Pages: []Page{pg}}, nil
	}

	cardW := c.cardWidth()
	for i, plugin := range shown {
		x, y := c.cardPos(i, gridTop, mainCardHeight)
		pg.Rects = append(pg.Rects, c.cardShell(x, y, cardW, mainCardHeight))

		index := c.singleLine(strconv.Itoa(start+i+1), x+cardInset, y+cardInset, nameIndent-cardInset, c.cfg.SubtitleFontSize(), c.palette.Primary, "")
		pg.Texts = append(pg.Texts, index)

		name, err := c.wrapped(plugin.Name, x+nameIndent, y+cardInset, cardW-nameIndent-2*cardInset, c.cfg.FontSize, c.palette.Text, 2, 0)
		if err != nil {
			return nil, &menu.LayoutError{Kind: menu.KindMain, Err: err}
		}
		pg.Texts = append(pg.Texts, name)

		if plugin.Description != "" {
			desc, err := c.wrapped(plugin.Description, x+cardInset, y+50, cardW-2*cardInset, c.cfg.SubtitleFontSize(), c.palette.Secondary, 2, y+mainCardHeight-20)
			if err != nil {
				return nil, &menu.LayoutError{Kind: menu.KindMain, Err: err}
			}
			if len(desc.Lines) > 0 {
				pg.Texts = append(pg.Texts, desc)
			}
		}

		if n := plugin.CommandCount(); n > 0 {
			pg.Badges = append(pg.Badges, Badge{
				Text:      fmt.Sprintf("%d 个命令", n),
				Right:     x + cardW - cardInset,
				Bottom:    y + mainCardHeight - cardInset,
				FontSize:  c.cfg.SubtitleFontSize(),
				TextColor: c.palette.Primary,
			})
		}
	}
	return &Result{Pages: []Page{pg}}, nil
}
