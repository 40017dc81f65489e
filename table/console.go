package table

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/

import (
	"bytes"
	"io"
	"os"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// DefaultLineWidth is used if the width of the output device is unknown.
const DefaultLineWidth = 65

const (
	separator = "  "
	ellipsis  = "…"
)

// Config holds parameters for console output.
type Config struct {
	LineWidth int            // maximum line width in fixed width positions
	Context   *uax11.Context // context for East Asian Width calculations
}

// ConfigFromTerminal is a simple helper for creating a Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's width
// and sets the Config.LineWidth parameter accordingly.
func ConfigFromTerminal() *Config {
	return ConfigForWriter(os.Stdout)
}

// ConfigForWriter creates a Config for output to w. If w is a file connected
// to a terminal, the line width is set to the terminal's width, otherwise
// DefaultLineWidth is used.
func ConfigForWriter(w io.Writer) *Config {
	config := &Config{LineWidth: DefaultLineWidth}
	if f, ok := w.(*os.File); ok {
		fd := int(f.Fd())
		if term.IsTerminal(fd) {
			if cols, _, err := term.GetSize(fd); err == nil && cols > 10 {
				config.LineWidth = cols
			}
		}
	}
	tracer().P("format", "console").Infof("setting line length to %d en", config.LineWidth)
	return config
}

// Console renders tables to a console with a fixed width font. Numbers are
// right-aligned, headings and the running sum are colored.
type Console struct {
	Heading *color.Color
	Sum     *color.Color
}

// NewConsole creates a console renderer with a default palette.
func NewConsole() *Console {
	return &Console{
		Heading: color.New(color.Bold),
		Sum:     color.New(color.FgBlue),
	}
}

var graphemesOnce sync.Once

// width returns the number of fixed width positions of s. uax11 counts
// ASCII digits as emoji presentation (keycap bases), therefore pure ASCII
// cells are measured by their length.
func width(s string, ctx *uax11.Context) int {
	if isASCII(s) {
		return len(s)
	}
	graphemesOnce.Do(func() { grapheme.SetupGraphemeClasses() })
	return uax11.StringWidth(grapheme.StringFromString(s), ctx)
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// Render writes table t to w.
//
// If parameter config is nil, a heuristic will create a config from the
// properties of w, if w is a terminal. If the table is wider than
// config.LineWidth, long numbers are abbreviated with an ellipsis.
func (c *Console) Render(t *Table, w io.Writer, config *Config) error {
	if t == nil {
		return ErrNoTable
	}
	if config == nil {
		config = ConfigForWriter(w)
		config.Context = uax11.ContextFromEnvironment()
	}
	ctx := config.Context
	if ctx == nil {
		ctx = uax11.LatinContext
	}
	linewidth := config.LineWidth
	if linewidth <= 0 {
		linewidth = DefaultLineWidth
	}
	lines := make([][3]string, 0, len(t.Rows)+1)
	lines = append(lines, t.Headings())
	for _, row := range t.Rows {
		lines = append(lines, row.cells())
	}
	widths := columnWidths(lines, ctx)
	if total := widths[0] + widths[1] + widths[2] + 2*len(separator); total > linewidth {
		maxw := (linewidth - widths[0] - 2*len(separator)) / 2
		if minw := width(ellipsis, ctx) + 1; maxw < minw {
			maxw = minw
		}
		tracer().Debugf("table too wide (%d en), abbreviating numbers to %d en", total, maxw)
		for i := 1; i < len(lines); i++ {
			for j := 1; j < 3; j++ {
				lines[i][j] = abbreviate(lines[i][j], maxw, ctx)
			}
		}
		widths = columnWidths(lines, ctx)
	}
	var buf bytes.Buffer
	for i, line := range lines {
		for j, cell := range line {
			if j > 0 {
				buf.WriteString(separator)
			}
			buf.WriteString(strings.Repeat(" ", widths[j]-width(cell, ctx)))
			switch {
			case i == 0 && c.Heading != nil:
				c.Heading.Fprint(&buf, cell)
			case j == 2 && c.Sum != nil:
				c.Sum.Fprint(&buf, cell)
			default:
				buf.WriteString(cell)
			}
		}
		buf.WriteByte('\n')
		if i == 0 {
			total := widths[0] + widths[1] + widths[2] + 2*len(separator)
			buf.WriteString(strings.Repeat("-", total))
			buf.WriteByte('\n')
		}
	}
	_, err := w.Write(buf.Bytes())
	return err
}

func columnWidths(lines [][3]string, ctx *uax11.Context) [3]int {
	var widths [3]int
	for _, line := range lines {
		for j, cell := range line {
			if cw := width(cell, ctx); cw > widths[j] {
				widths[j] = cw
			}
		}
	}
	return widths
}

// abbreviate shortens a number to at most maxw positions, replacing trailing
// digits with an ellipsis. Numbers consist of ASCII characters only.
func abbreviate(s string, maxw int, ctx *uax11.Context) string {
	if width(s, ctx) <= maxw {
		return s
	}
	keep := maxw - width(ellipsis, ctx)
	if keep < 1 {
		keep = 1
	}
	return s[:keep] + ellipsis
}
