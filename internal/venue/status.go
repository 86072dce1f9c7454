package venue

import "time"

// Hours is the daily opening window, in whole hours of the venue's
// local day. Close of 24 means open until midnight.
type Hours struct {
	Open  int
	Close int
}

// OpenNow reports whether the venue is open at t.
func (h Hours) OpenNow(t time.Time) bool {
	hour := t.Hour()
	return hour >= h.Open && hour < h.Close
}

// StatusLabel is the indicator text shown next to the clock.
func StatusLabel(open bool) string {
	if open {
		return "Aperto"
	}
	return "Chiuso"
}
