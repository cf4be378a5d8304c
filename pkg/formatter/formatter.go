package formatter

import (
	"fmt"
	"strconv"
	"time"
)

// FormatNumber converts an integer to a string with commas as thousands separators.
// Example: 1234567 -> "1,234,567"
func FormatNumber(n int) string {
	s := strconv.Itoa(n)
	if n < 0 {
		s = s[1:]
	}

	le := len(s)
	if le <= 3 {
		if n < 0 {
			return "-" + s
		}
		return s
	}

	sepCount := (le - 1) / 3

	res := make([]byte, le+sepCount)

	j := len(res) - 1
	for i := le - 1; i >= 0; i-- {
		res[j] = s[i]
		j--
		if (le-i)%3 == 0 && i > 0 {
			res[j] = ','
			j--
		}
	}

	if n < 0 {
		return "-" + string(res)
	}
	return string(res)
}

// TimeAgo renders the distance between t and now in words.
// Example: now minus 90 minutes -> "about 2 hours ago"
func TimeAgo(t, now time.Time) string {
	d := now.Sub(t)
	if d < 0 {
		return "in the future"
	}

	switch {
	case d < 30*time.Second:
		return "less than a minute ago"
	case d < 90*time.Second:
		return "1 minute ago"
	case d < 45*time.Minute:
		return fmt.Sprintf("%d minutes ago", int((d + 30*time.Second) / time.Minute))
	case d < 90*time.Minute:
		return "about 1 hour ago"
	case d < 24*time.Hour:
		return fmt.Sprintf("about %d hours ago", int((d + 30*time.Minute) / time.Hour))
	case d < 42*time.Hour:
		return "1 day ago"
	case d < 30*24*time.Hour:
		return fmt.Sprintf("%d days ago", int((d + 12*time.Hour) / (24 * time.Hour)))
	case d < 60*24*time.Hour:
		return "about 1 month ago"
	case d < 365*24*time.Hour:
		return fmt.Sprintf("%d months ago", int(d/(30*24*time.Hour)))
	case d < 2*365*24*time.Hour:
		return "about 1 year ago"
	default:
		return fmt.Sprintf("%d years ago", int(d/(365*24*time.Hour)))
	}
}
