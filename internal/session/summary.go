package session

import "fmt"

// Summary holds the data displayed on the summary screen.
type Summary struct {
	DeckSize   int
	Correct    int
	Incorrect  int
	Unanswered int
	TimeTaken  int // seconds
}

// FormatSeconds renders a second count as "Ns", "Nm", or "Nm Ns".
func FormatSeconds(seconds int) string {
	if seconds < 60 {
		return fmt.Sprintf("%ds", seconds)
	}
	mins := seconds / 60
	secs := seconds % 60
	if secs == 0 {
		return fmt.Sprintf("%dm", mins)
	}
	return fmt.Sprintf("%dm %ds", mins, secs)
}
