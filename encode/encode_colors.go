package encode

import (
	"github.com/fatih/color"

	"github.com/snep-format/go-snep/ir"
)

type Colorable struct {
	Type ir.Type
	Attr ColorAttr
}

type ColorAttr int

const (
	MarkerColor ColorAttr = iota
	NameColor
	ValueColor
	SepColor
	CommentColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, t := range ir.Types() {
		able := Colorable{Type: t, Attr: MarkerColor}
		colors.Map[able] = color.RGB(74, 92, 138).SprintfFunc()
		able.Attr = SepColor
		colors.Map[able] = color.RGB(255, 0, 196).SprintfFunc()
		able.Attr = CommentColor
		colors.Map[able] = color.BlueString
	}

	able := Colorable{Type: ir.AttrType, Attr: NameColor}
	colors.Map[able] = color.RGB(196, 96, 16).SprintfFunc()
	able.Attr = ValueColor
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()

	able = Colorable{Type: ir.ElemType, Attr: NameColor}
	colors.Map[able] = color.RGB(128, 168, 196).SprintfFunc()

	return colors
}

func colorDefault(f string, args ...any) string {
	return color.WhiteString(f, args...)
}

func (c *Colors) Color(t ir.Type, attr ColorAttr, v string) string {
	f, ok := c.Map[Colorable{Type: t, Attr: attr}]
	if !ok {
		f = c.Default
	}
	return f("%s", v)
}
