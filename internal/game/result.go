package game

import (
	"fmt"
	"strings"
	"time"

	"github.com/dshills/termracer/internal/game/view"
)

// AverageWordLength is the number of characters counted as one word.
const AverageWordLength = 5

// Outcome says how a race ended.
type Outcome int

const (
	Completed Outcome = iota
	Aborted
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case Completed:
		return "completed"
	case Aborted:
		return "aborted"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Result is the outcome of one race.
type Result struct {
	Outcome  Outcome
	WPM      float64
	Accuracy float64
	Elapsed  time.Duration
	Words    int
	Progress view.Progress
}

// String returns the line printed after a race.
func (r Result) String() string {
	if r.Outcome == Aborted {
		return "Aborted!"
	}
	return fmt.Sprintf("WPM: %d", int(r.WPM))
}

// WPM converts correctly typed characters over elapsed time into words
// per minute.
func WPM(correct int, elapsed time.Duration) float64 {
	if elapsed <= 0 {
		return 0
	}
	return float64(correct) / AverageWordLength / elapsed.Minutes()
}

// WordsPerLine returns how many words fit on one line of a terminal of
// the given width, using fill of the width.
func WordsPerLine(width int, fill float64) int {
	return max(1, int(float64(width/(AverageWordLength+1))*fill))
}

// BuildLines joins words into lines of at most perLine words.
func BuildLines(words []string, perLine int) []string {
	perLine = max(1, perLine)
	lines := make([]string, 0, (len(words)+perLine-1)/perLine)
	for i := 0; i < len(words); i += perLine {
		end := min(i+perLine, len(words))
		lines = append(lines, strings.Join(words[i:end], " "))
	}
	return lines
}
