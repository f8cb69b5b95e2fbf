package view

import "fmt"

// Progress counts typed graphemes.
type Progress struct {
	Correct   int
	Incorrect int
	Total     int
}

// Add returns the component-wise sum of p and other.
func (p Progress) Add(other Progress) Progress {
	return Progress{
		Correct:   p.Correct + other.Correct,
		Incorrect: p.Incorrect + other.Incorrect,
		Total:     p.Total + other.Total,
	}
}

// Accuracy returns the fraction of typed graphemes that are correct.
// It is 1 before anything has been typed.
func (p Progress) Accuracy() float64 {
	typed := p.Correct + p.Incorrect
	if typed == 0 {
		return 1
	}
	return float64(p.Correct) / float64(typed)
}

// Complete reports whether every grapheme is typed correctly.
func (p Progress) Complete() bool {
	return p.Correct == p.Total
}

// String returns e.g. "12/40 (1 wrong)".
func (p Progress) String() string {
	return fmt.Sprintf("%d/%d (%d wrong)", p.Correct, p.Total, p.Incorrect)
}
