// Package levels reads Klotski boards from level files.
// This package depends on core but core does not depend on levels.
package levels

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-klotski/internal/games/klotski/core"
)

// block is a board being accumulated by the parser.
type block struct {
	name     string
	line     int
	rows     []string
	rowLines []int

	declared      bool
	width, height int
}

// Parse reads the text level notation and returns the boards in file order.
//
// A line "<Name>" or "<Name [WxH]>" starts a board. A line framed by the
// border glyph is one row of the current board. Blank lines, prose and rows
// before the first header are ignored. A board is sealed when the next header
// or the end of input is reached.
//
// Errors from board validation are *core.LevelFormatError with Line set.
func Parse(r io.Reader) ([]*core.Board, error) {
	var (
		boards []*core.Board
		cur    *block
		lineNo int
	)

	flush := func() error {
		if cur == nil {
			return nil
		}
		b, err := cur.seal()
		if err != nil {
			return err
		}
		boards = append(boards, b)
		cur = nil
		return nil
	}

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		if isHeader(line) {
			if err := flush(); err != nil {
				return nil, err
			}
			cur = parseHeader(line, lineNo)
			continue
		}

		if row, ok := contentRow(line); ok && cur != nil {
			cur.rows = append(cur.rows, row)
			cur.rowLines = append(cur.rowLines, lineNo)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("levels: reading input: %w", err)
	}

	if err := flush(); err != nil {
		return nil, err
	}
	return boards, nil
}

// ParseString is Parse over an in-memory level text.
func ParseString(s string) ([]*core.Board, error) {
	return Parse(strings.NewReader(s))
}

func isHeader(line string) bool {
	return len(line) >= 2 && line[0] == '<' && line[len(line)-1] == '>'
}

// contentRow returns the interior of a border-framed line.
func contentRow(line string) (string, bool) {
	const border = string(core.GlyphBorder)
	if strings.Count(line, border) < 2 {
		return "", false
	}
	if !strings.HasPrefix(line, border) || !strings.HasSuffix(line, border) {
		return "", false
	}
	return line[len(border) : len(line)-len(border)], true
}

// parseHeader splits "<Name [WxH]>" into the board name and optional size.
// The interior is kept as written. A trailing bracket that is not a WxH size
// is part of the name.
func parseHeader(line string, lineNo int) *block {
	name := line[1 : len(line)-1]
	b := &block{name: name, line: lineNo}

	open := strings.LastIndexByte(name, '[')
	if open < 0 || !strings.HasSuffix(name, "]") {
		return b
	}

	w, h, ok := parseSize(name[open+1 : len(name)-1])
	if !ok {
		return b
	}
	b.name = strings.TrimRight(name[:open], " \t")
	b.declared = true
	b.width, b.height = w, h
	return b
}

// parseSize reads "WxH".
func parseSize(s string) (int, int, bool) {
	ws, hs, found := strings.Cut(strings.ToLower(s), "x")
	if !found {
		return 0, 0, false
	}
	w, err := strconv.Atoi(strings.TrimSpace(ws))
	if err != nil || w <= 0 {
		return 0, 0, false
	}
	h, err := strconv.Atoi(strings.TrimSpace(hs))
	if err != nil || h <= 0 {
		return 0, 0, false
	}
	return w, h, true
}

// seal validates the accumulated rows and builds the board.
func (b *block) seal() (*core.Board, error) {
	if b.declared && len(b.rows) > 0 {
		if len(b.rows) != b.height {
			return nil, &core.LevelFormatError{
				Board:   b.name,
				Line:    b.line,
				Message: fmt.Sprintf("board declares %d rows but has %d", b.height, len(b.rows)),
			}
		}
	}

	board, err := core.NewBoard(b.name, b.rows)
	if err != nil {
		var lfe *core.LevelFormatError
		if errors.As(err, &lfe) {
			lfe.Line = b.line
			if lfe.Row > 0 && lfe.Row <= len(b.rowLines) {
				lfe.Line = b.rowLines[lfe.Row-1]
			}
		}
		return nil, err
	}

	if b.declared && board.Width() != b.width {
		return nil, &core.LevelFormatError{
			Board:   b.name,
			Line:    b.line,
			Message: fmt.Sprintf("board declares width %d but rows are %d wide", b.width, board.Width()),
		}
	}
	return board, nil
}
