package layout

// 该文件构建命令详情页：单列堆叠的描述、用法、别名、参数与示例，
// 只为内容存在的小节分配高度，画布高度随小节累计。

import (
	"strings"

	"github.com/lumixu/menupic/menu"
)

// BuildCommandDetail 构建单条命令的详情页。
func BuildCommandDetail(page menu.HelpPage, plugin menu.Plugin, command menu.Command, opts BuildOptions) (*Result, error) {
	c, err := newComposer(menu.KindCommandDetail, opts)
	if err != nil {
		return nil, err
	}

	contentW := c.cfg.Width - 2*c.cfg.Padding
	pg := Page{Width: c.cfg.Width, Background: c.palette.Background}

	title := page.Title
	if title == "" {
		title = "⚡ " + command.Name
	}
	y := c.cfg.Padding
	pg.Texts = append(pg.Texts, c.singleLine(title, 0, y, c.cfg.Width, c.cfg.TitleFontSize(), c.palette.Text, "center"))
	y += c.cfg.TitleFontSize() + 10

	pg.Texts = append(pg.Texts, c.singleLine("来自插件: "+plugin.Name, 0, y, c.cfg.Width, c.cfg.SubtitleFontSize(), c.palette.Secondary, "center"))
	y += c.cfg.SubtitleFontSize() + 10

	pg.Lines = append(pg.Lines, Line{
		X1:    c.cfg.Padding,
		Y1:    y,
		X2:    c.cfg.Width - c.cfg.Padding,
		Y2:    y,
		Color: c.palette.Border,
		Width: 1,
	})
	y += 15

	if command.Description != "" {
		desc, err := c.wrapped(command.Description, c.cfg.Padding, y, contentW, c.cfg.FontSize, c.palette.Text, 4, 0)
		if err != nil {
			return nil, &menu.LayoutError{Kind: menu.KindCommandDetail, Err: err}
		}
		if len(desc.Lines) > 0 {
			pg.Texts = append(pg.Texts, desc)
			y += desc.Height + 10
		}
	}

	if command.Usage != "" {
		usage, err := c.wrapped(command.Usage, c.cfg.Padding+cardInset, y+cardInset, contentW-2*cardInset, c.cfg.FontSize, c.palette.Text, 3, 0)
		if err != nil {
			return nil, &menu.LayoutError{Kind: menu.KindCommandDetail, Err: err}
		}
		if len(usage.Lines) > 0 {
			boxH := usage.Height + 2*cardInset
			pg.Rects = append(pg.Rects, c.cardShell(c.cfg.Padding, y, contentW, boxH))
			pg.Texts = append(pg.Texts, usage)
			y += boxH + 15
		}
	}

	if len(command.Aliases) > 0 {
		aliases := "别名: " + strings.Join(command.Aliases, " / ")
		pg.Texts = append(pg.Texts, c.singleLine(aliases, c.cfg.Padding, y, contentW, c.cfg.SubtitleFontSize(), c.palette.Secondary, ""))
		y += c.cfg.SubtitleFontSize() + 15
	}

	if len(command.Parameters) > 0 {
		y, err = c.bulletSection(&pg, "参数", command.Parameters, y, contentW)
		if err != nil {
			return nil, &menu.LayoutError{Kind: menu.KindCommandDetail, Err: err}
		}
	}

	if len(command.Examples) > 0 {
		y, err = c.bulletSection(&pg, "示例", command.Examples, y, contentW)
		if err != nil {
			return nil, &menu.LayoutError{Kind: menu.KindCommandDetail, Err: err}
		}
	}

	pg.Height = y + c.cfg.Padding
	return &Result{Pages: []Page{pg}}, nil
}

// bulletSection 输出一个带圆点列表的小节，返回下一个可用的纵坐标。
func (c *composer) bulletSection(pg *Page, heading string, items []string, y, contentW float64) (float64, error) {
	pg.Texts = append(pg.Texts, c.singleLine(heading, c.cfg.Padding, y, contentW, c.cfg.FontSize, c.palette.Text, ""))
	y += c.cfg.FontSize + 8

	for _, item := range items {
		body, err := c.wrapped(item, c.cfg.Padding+14, y, contentW-14, c.cfg.SubtitleFontSize(), c.palette.Secondary, 2, 0)
		if err != nil {
			return 0, err
		}
		if len(body.Lines) == 0 {
			continue
		}
		fill := c.palette.Secondary
		pg.Circles = append(pg.Circles, Circle{
			CX:          c.cfg.Padding + 4,
			CY:          y + c.cfg.SubtitleFontSize()/2,
			R:           2,
			StrokeColor: c.palette.Secondary,
			FillColor:   &fill,
		})
		pg.Texts = append(pg.Texts, body)
		y += body.Height + 6
	}
	return y + 6, nil
}
