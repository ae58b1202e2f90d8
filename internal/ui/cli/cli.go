// Package cli renders boards as text, for debugging and logging.
package cli

import (
	"fmt"
	"github.com/charmbracelet/lipgloss"
	. "github.com/janpfeifer/goban/internal/goban"
	"golang.org/x/term"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// ColumnLetters used to name the columns, skipping "I" as is customary.
const ColumnLetters = "ABCDEFGHJKLMNOPQRSTUVWXYZ"

var (
	stoneSymbols = [NumPlayers]string{"X", "O"}

	stoneStyles = [NumPlayers]lipgloss.Style{
		lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("178")),
		lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("178")),
	}
	emptyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("94")).Background(lipgloss.Color("178"))
	koStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Background(lipgloss.Color("178"))
	labelStyle  = lipgloss.NewStyle().Faint(true)
	statusStyle = lipgloss.NewStyle().Italic(true)
)

var ansiFilter = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// displayWidth of s removes its color/control sequences and returns the length of what is left.
func displayWidth(s string) int {
	return len(ansiFilter.ReplaceAllString(s, ""))
}

// IntersectionName returns the usual name of an intersection, e.g. "D4": the column letter
// followed by the row number counted from the bottom. Out-of-bound intersections are named
// by their index.
func IntersectionName(b *Board, x Intersection) string {
	if !b.IsOnBoard(x) {
		return x.String()
	}
	row, col := b.RowCol(x)
	return fmt.Sprintf("%c%d", ColumnLetters[col-1], b.Size()+1-row)
}

// Render the board with coordinates, followed by the player to move and the ko, if any.
// If color is true, it uses ANSI colors.
func Render(b *Board, color bool) string {
	size := b.Size()
	labelWidth := len(strconv.Itoa(size))
	style := func(s lipgloss.Style, text string) string {
		if !color {
			return text
		}
		return s.Render(text)
	}

	letters := make([]string, size)
	for col := range size {
		letters[col] = ColumnLetters[col : col+1]
	}
	header := strings.Repeat(" ", labelWidth+1) + style(labelStyle, strings.Join(letters, " "))

	var sb strings.Builder
	sb.WriteString(header)
	sb.WriteByte('\n')
	cells := make([]string, size)
	for row := 1; row <= size; row++ {
		for col := 1; col <= size; col++ {
			x := b.At(row, col)
			switch player := b.StoneAt(x); {
			case player != PlayerInvalid:
				cells[col-1] = style(stoneStyles[player], stoneSymbols[player])
			case b.Ko == x:
				cells[col-1] = style(koStyle, "*")
			default:
				cells[col-1] = style(emptyStyle, ".")
			}
		}
		label := size + 1 - row
		fmt.Fprintf(&sb, "%s %s %s\n",
			style(labelStyle, fmt.Sprintf("%*d", labelWidth, label)),
			strings.Join(cells, " "),
			style(labelStyle, strconv.Itoa(label)))
	}
	sb.WriteString(header)
	sb.WriteByte('\n')

	status := fmt.Sprintf("%s to move", b.ToMove)
	if b.HasKo() {
		status += ", ko at " + IntersectionName(b, b.Ko)
	}
	sb.WriteString(style(statusStyle, status))
	return sb.String()
}

// Print renders the board and prints it centered on the terminal, if stdout is one.
func Print(b *Board, color bool) {
	printCentered(Render(b, color))
}

func printCentered(block string) {
	lines := strings.Split(block, "\n")
	terminalWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		terminalWidth = 0
	}
	blockWidth := 0
	for _, line := range lines {
		blockWidth = max(blockWidth, displayWidth(line))
	}
	indent := max((terminalWidth-blockWidth)/2, 0)
	for _, line := range lines {
		if len(line) == 0 {
			fmt.Println()
			continue
		}
		fmt.Printf("%s%s\n", strings.Repeat(" ", indent), line)
	}
}
