package ledger

import (
	"time"

	"nsdrink-pos/models"
)

// NextOrderNumber previews the number of the next order from the most recent
// one. The sequence restarts at 1 each calendar month. A last order without a
// year (older records) is compared on month alone.
func NextOrderNumber(last *models.Order, now time.Time) int {
	if last == nil || last.OrderNumber <= 0 {
		return 1
	}
	year, month := Period(now)
	if last.Month != month {
		return 1
	}
	if last.Year != 0 && last.Year != year {
		return 1
	}
	return last.OrderNumber + 1
}

// Period returns the numbering period (year, month) of t.
func Period(t time.Time) (int, int) {
	return t.Year(), int(t.Month())
}
