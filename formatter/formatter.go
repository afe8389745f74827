package formatter

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"cmp"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/npillmayer/rngmap"
	"golang.org/x/term"
)

// palette distinguishes section values on a terminal. Values get a color
// assigned in order of first appearance, cycling when the palette is
// exhausted.
var palette = []color.Attribute{
	color.FgCyan,
	color.FgGreen,
	color.FgYellow,
	color.FgMagenta,
	color.FgBlue,
	color.FgRed,
}

// Output writes the sections of a range map to w, one line per section, in
// increasing key order.
func Output[K cmp.Ordered, V comparable](m *rngmap.RangeMap[K, V], w io.Writer) error {
	return output(m, w, 0)
}

// Console writes the sections of a range map to stdout. If stdout is a
// terminal, section values are colored and lines are clipped to the
// terminal width.
func Console[K cmp.Ordered, V comparable](m *rngmap.RangeMap[K, V]) error {
	width := 0
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil {
			width = w
		}
	}
	return output(m, os.Stdout, width)
}

// sectionColumn is the width of the section column, counted in runes;
// interval strings routinely contain multi-byte runes like '∞'.
const sectionColumn = 16

func output[K cmp.Ordered, V comparable](m *rngmap.RangeMap[K, V], w io.Writer, width int) error {
	colors := make(map[V]*color.Color)
	for r, v := range m.Iter() {
		c, ok := colors[v]
		if !ok {
			c = color.New(palette[len(colors)%len(palette)])
			colors[v] = c
		}
		section := r.String()
		if n := utf8.RuneCountInString(section); n < sectionColumn {
			section += strings.Repeat(" ", sectionColumn-n)
		}
		val := fmt.Sprintf("%v", v)
		if width > 0 {
			cut := width - utf8.RuneCountInString(section) - 3 // " → " separator
			if cut >= 0 && cut < utf8.RuneCountInString(val) {
				val = string([]rune(val)[:cut])
			}
		}
		if _, err := fmt.Fprintf(w, "%s → %s\n", section, c.Sprint(val)); err != nil {
			return err
		}
	}
	return nil
}
