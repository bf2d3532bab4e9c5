package levels_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-klotski/internal/games/klotski/core"
	"github.com/vovakirdan/tui-klotski/internal/games/klotski/levels"
)

const twoBoards = `
Rows before the first header are notes.
@ignored row@

<First>
@ * @
@ . @

This line is prose and does not end the board.
@###@

<Second [3x1]>
@a*.@   
`

func TestParseBoardsInFileOrder(t *testing.T) {
	boards, err := levels.ParseString(twoBoards)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(boards) != 2 {
		t.Fatalf("expected 2 boards, got %d", len(boards))
	}

	first, second := boards[0], boards[1]
	if first.Name() != "First" || second.Name() != "Second" {
		t.Errorf("unexpected names %q, %q", first.Name(), second.Name())
	}
	if first.Width() != 3 || first.Height() != 3 {
		t.Errorf("First: expected 3x3, got %dx%d", first.Width(), first.Height())
	}
	if first.CellAt(1, 2) != core.WallCell {
		t.Errorf("row after prose should belong to First, got %+v", first.CellAt(1, 2))
	}
	if second.Width() != 3 || second.Height() != 1 {
		t.Errorf("Second: expected 3x1, got %dx%d", second.Width(), second.Height())
	}
}

func TestParseLineClassification(t *testing.T) {
	tests := []struct {
		name  string
		input string
		rows  int
	}{
		{"single border is prose", "<B>\n@*.@\n@\n", 1},
		{"border only at start is prose", "<B>\n@*.@\n@*.\n", 1},
		{"surrounding whitespace is trimmed", "<B>\n   @*.@\t\n", 1},
		{"blank lines skipped", "<B>\n\n@*.@\n\n\n@  @\n", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			boards, err := levels.ParseString(tt.input)
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			if got := boards[0].Height(); got != tt.rows {
				t.Errorf("expected %d rows, got %d", tt.rows, got)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		board   string
		line    int
		message string
	}{
		{
			name:    "inconsistent width",
			input:   "<Good>\n@*.@\n\n<Bad>\n@ * @\n@ .@\n",
			board:   "Bad",
			line:    6,
			message: "inconsistent width",
		},
		{
			name:    "declared height mismatch",
			input:   "<Short [3x3]>\n@ * @\n@ . @\n",
			board:   "Short",
			line:    1,
			message: "declares 3 rows",
		},
		{
			name:    "declared width mismatch",
			input:   "<Narrow [4x1]>\n@*. @\n",
			board:   "Narrow",
			line:    1,
			message: "width 4",
		},
		{
			name:    "no heart",
			input:   "<Heartless>\n@a .@\n",
			board:   "Heartless",
			line:    1,
			message: "no heart",
		},
		{
			name:    "no goal",
			input:   "\n<Aimless>\n@a *@\n",
			board:   "Aimless",
			line:    2,
			message: "no goal",
		},
		{
			name:    "empty name",
			input:   "<>\n@*.@\n",
			board:   "",
			line:    1,
			message: "no name",
		},
		{
			name:    "header without rows",
			input:   "<Empty>\n<Next>\n@*.@\n",
			board:   "Empty",
			line:    1,
			message: "no rows",
		},
		{
			name:    "unknown symbol",
			input:   "<Odd>\n@*.@\n@%%@\n",
			board:   "Odd",
			line:    3,
			message: "unknown cell symbol",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := levels.ParseString(tt.input)
			if !errors.Is(err, core.ErrLevelFormat) {
				t.Fatalf("expected ErrLevelFormat, got %v", err)
			}
			var lfe *core.LevelFormatError
			if !errors.As(err, &lfe) {
				t.Fatalf("expected *LevelFormatError, got %T", err)
			}
			if lfe.Board != tt.board {
				t.Errorf("board: expected %q, got %q", tt.board, lfe.Board)
			}
			if lfe.Line != tt.line {
				t.Errorf("line: expected %d, got %d", tt.line, lfe.Line)
			}
			if !strings.Contains(lfe.Message, tt.message) {
				t.Errorf("message: expected to contain %q, got %q", tt.message, lfe.Message)
			}
		})
	}
}

func TestParseHeaderNames(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   string
		width  int
		height int
	}{
		{"plain", "<Room>\n@*.@\n", "Room", 2, 1},
		{"size declaration", "<Room [2x1]>\n@*.@\n", "Room", 2, 1},
		{"bracket without size", "<Room [2]>\n@*.@\n", "Room [2]", 2, 1},
		{"bracketed word", "<Level [bonus]>\n@*.@\n", "Level [bonus]", 2, 1},
		{"unparsable size", "<Odd [3by1]>\n@*. @\n", "Odd [3by1]", 3, 1},
		{"inner spaces kept", "< Spaced >\n@*.@\n", " Spaced ", 2, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			boards, err := levels.ParseString(tt.input)
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			if len(boards) != 1 {
				t.Fatalf("expected 1 board, got %d", len(boards))
			}
			b := boards[0]
			if b.Name() != tt.want {
				t.Errorf("name: expected %q, got %q", tt.want, b.Name())
			}
			if b.Width() != tt.width || b.Height() != tt.height {
				t.Errorf("size: expected %dx%d, got %dx%d", tt.width, tt.height, b.Width(), b.Height())
			}
		})
	}
}

func TestParseIconBoardIsExempt(t *testing.T) {
	boards, err := levels.ParseString("<Icon>\n@aab@\n@#-#@\n")
	if err != nil {
		t.Fatalf("Icon board should load: %v", err)
	}
	if boards[0].Playable() {
		t.Error("Icon board must not be playable")
	}
}

func TestParseEmptyInput(t *testing.T) {
	boards, err := levels.ParseString("no boards here\n")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(boards) != 0 {
		t.Errorf("expected no boards, got %d", len(boards))
	}
}

func TestClassicPack(t *testing.T) {
	pack, err := levels.Classic()
	if err != nil {
		t.Fatalf("Classic failed: %v", err)
	}
	if pack.ID != levels.ClassicID {
		t.Errorf("expected ID %q, got %q", levels.ClassicID, pack.ID)
	}
	if len(pack.Boards) != 26 {
		t.Fatalf("expected 26 boards, got %d", len(pack.Boards))
	}
	if pack.Boards[0].Name() != "Splash" {
		t.Errorf("expected Splash first, got %q", pack.Boards[0].Name())
	}

	easy, idx, ok := pack.Find("Easy")
	if !ok || idx != 1 {
		t.Fatalf("Easy not found at index 1 (ok=%v, idx=%d)", ok, idx)
	}
	if easy.Width() != 10 || easy.Height() != 11 {
		t.Errorf("Easy: expected 10x11, got %dx%d", easy.Width(), easy.Height())
	}
	if len(easy.SpecialWalls()) != 2 || len(easy.Goals()) != 4 {
		t.Errorf("Easy: unexpected special walls %v or goals %v", easy.SpecialWalls(), easy.Goals())
	}

	for _, b := range pack.Boards {
		if b.IsWon() {
			t.Errorf("%s: board starts won", b.Name())
		}
		if len(b.Goals()) == 0 {
			t.Errorf("%s: no goals", b.Name())
		}
	}

	again, err := levels.Classic()
	if err != nil {
		t.Fatal(err)
	}
	if again.Boards[1] == pack.Boards[1] {
		t.Error("Classic must return fresh boards")
	}
}

func TestPackNextPlayable(t *testing.T) {
	boards, err := levels.ParseString("<A>\n@*.@\n<Icon>\n@ab@\n<C>\n@*.@\n")
	if err != nil {
		t.Fatal(err)
	}
	pack := &levels.Pack{ID: "t", Boards: boards}

	tests := []struct {
		from, want int
	}{
		{0, 2},
		{1, 2},
		{2, 0},
		{-1, 0},
	}
	for _, tt := range tests {
		if got := pack.NextPlayable(tt.from); got != tt.want {
			t.Errorf("NextPlayable(%d): expected %d, got %d", tt.from, tt.want, got)
		}
	}
}
