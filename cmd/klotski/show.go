package main

import (
	"fmt"
	"strings"

	"github.com/gookit/color"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-klotski/internal/core"
	"github.com/vovakirdan/tui-klotski/internal/games/klotski"
	kcore "github.com/vovakirdan/tui-klotski/internal/games/klotski/core"
)

var flagNoColor bool

var showCmd = &cobra.Command{
	Use:   "show <pack> [board]",
	Short: "Print boards in level notation",
	Long: `Print one board, or every board of a pack, in the text level notation.
Renamed pieces (a2, a3, ...) are shown with their assigned names.

Examples:
  klotski show classic
  klotski show classic Easy
  klotski show classic 3 --no-color`,
	Args: cobra.RangeArgs(1, 2),
	Run:  runShow,
}

func init() {
	showCmd.Flags().BoolVar(&flagNoColor, "no-color", false, "Print without colors")
}

// terminalColors maps screen colors to plain terminal styles.
var terminalColors = map[core.Color]color.Style{
	core.ColorRed:           {color.FgRed},
	core.ColorGreen:         {color.FgGreen},
	core.ColorYellow:        {color.FgYellow},
	core.ColorBlue:          {color.FgBlue},
	core.ColorMagenta:       {color.FgMagenta},
	core.ColorCyan:          {color.FgCyan},
	core.ColorWhite:         {color.FgWhite},
	core.ColorBrightRed:     {color.FgLightRed, color.OpBold},
	core.ColorBrightGreen:   {color.FgLightGreen},
	core.ColorBrightYellow:  {color.FgLightYellow},
	core.ColorBrightBlue:    {color.FgLightBlue},
	core.ColorBrightMagenta: {color.FgLightMagenta},
	core.ColorBrightCyan:    {color.FgLightCyan},
	core.ColorBrightWhite:   {color.FgLightWhite, color.OpBold},
	core.ColorOrange:        {color.FgYellow, color.OpBold},
	core.ColorGray:          {color.FgGray},
}

func runShow(_ *cobra.Command, args []string) {
	if flagNoColor {
		color.Disable()
	}

	pack, err := openPack(args[0])
	if err != nil {
		exitf("%v", err)
	}
	theme, err := klotski.ThemeFromConfig(cfg.Theme)
	if err != nil {
		exitf("%v", err)
	}

	if len(args) == 2 {
		i, err := resolveBoard(pack, args[1])
		if err != nil {
			exitf("%v", err)
		}
		fmt.Print(renderColored(pack.Boards[i], theme))
		return
	}

	for i, b := range pack.Boards {
		if i > 0 {
			fmt.Println()
		}
		fmt.Print(renderColored(b, theme))
	}
}

// renderColored prints a board like RenderASCII with every cell colored by theme.
func renderColored(b *kcore.Board, theme klotski.Theme) string {
	var sb strings.Builder

	border := string(kcore.GlyphBorder)
	frame := styleOf(theme.Frame)

	sb.WriteString(color.Style{color.OpBold}.Sprint(b.Name()))
	sb.WriteString(fmt.Sprintf(" : %dx%d\n", b.Width(), b.Height()))
	for y := 0; y < b.Height(); y++ {
		sb.WriteString(frame.Sprint(border))
		for x := 0; x < b.Width(); x++ {
			c := b.CellAt(x, y)
			label := fmt.Sprintf("%*s", b.MaxIDWidth(), b.CellLabel(c))
			sb.WriteString(styleOf(theme.CellColor(c)).Sprint(label))
		}
		sb.WriteString(frame.Sprint(border))
		sb.WriteString("\n")
	}
	return sb.String()
}

func styleOf(c core.Color) color.Style {
	if s, ok := terminalColors[c]; ok {
		return s
	}
	return color.Style{color.FgDefault}
}
