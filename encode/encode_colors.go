package encode

import (
	"strings"

	"github.com/signadot/rvalue/value"

	"github.com/fatih/color"
)

type Colorable struct {
	Kind value.Kind
	Attr ColorAttr
}

type ColorAttr int

const (
	ValueColor ColorAttr = iota
	LabelColor
	FieldColor
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
	for _, k := range value.Kinds() {
		colors.Map[Colorable{Kind: k, Attr: LabelColor}] = color.RGB(74, 92, 138).SprintfFunc()
		colors.Map[Colorable{Kind: k, Attr: FieldColor}] = color.RGB(128, 168, 196).SprintfFunc()
	}
	colors.Map[Colorable{Kind: value.NullKind, Attr: ValueColor}] = color.RGB(168, 0, 196).SprintfFunc()
	colors.Map[Colorable{Kind: value.IntegerKind, Attr: ValueColor}] = color.RGB(128, 216, 236).SprintfFunc()
	colors.Map[Colorable{Kind: value.RawKind, Attr: ValueColor}] = color.RGB(8, 196, 16).SprintfFunc()
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(k value.Kind, a ColorAttr, s string) string {
	return c.Get(k, a)(s)
}

func (c *Colors) Get(k value.Kind, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Kind: k, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}
