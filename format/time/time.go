package time

import (
	"strings"
	"time"
)

// DateFormatToTimeLayout converts a date pattern into a Go time layout.
// Both pattern styles are accepted: yyyy-MM-dd HH:mm:ss.SSS and ISO YYYY-MM-DDThh:mm:ss+hh:mm.
// Lowercase h is a 12 hour clock only when the pattern carries the 'a' (AM/PM) marker.
func DateFormatToTimeLayout(dateFormat string) string {
	twelveHour := strings.ContainsRune(dateFormat, 'a')
	builder := strings.Builder{}
	builder.Grow(len(dateFormat) + 8)
	for i := 0; i < len(dateFormat); {
		c := dateFormat[i]
		if c == '\'' { //quoted literal
			end := strings.IndexByte(dateFormat[i+1:], '\'')
			if end == -1 {
				builder.WriteString(dateFormat[i+1:])
				break
			}
			builder.WriteString(dateFormat[i+1 : i+1+end])
			i += end + 2
			continue
		}
		if (c == '+' || c == '-') && strings.HasPrefix(dateFormat[i+1:], "hh") {
			offset := dateFormat[i+1:]
			switch {
			case strings.HasPrefix(offset, "hh:mm"):
				builder.WriteString("Z07:00")
				i += 6
			case strings.HasPrefix(offset, "hhmm"):
				builder.WriteString("Z0700")
				i += 5
			default:
				builder.WriteString("Z07")
				i += 3
			}
			continue
		}
		count := 1
		for i+count < len(dateFormat) && dateFormat[i+count] == c {
			count++
		}
		builder.WriteString(layoutFragment(c, count, twelveHour, dateFormat[i:i+count]))
		i += count
	}
	return builder.String()
}

func layoutFragment(c byte, count int, twelveHour bool, literal string) string {
	switch c {
	case 'y', 'Y':
		if count == 2 {
			return "06"
		}
		return "2006"
	case 'M':
		switch count {
		case 1:
			return "1"
		case 2:
			return "01"
		case 3:
			return "Jan"
		}
		return "January"
	case 'd', 'D':
		switch count {
		case 1:
			return "2"
		case 2:
			return "02"
		}
		return "002"
	case 'H':
		return "15"
	case 'h':
		if !twelveHour {
			return "15"
		}
		if count == 1 {
			return "3"
		}
		return "03"
	case 'm':
		if count == 1 {
			return "4"
		}
		return "04"
	case 's':
		if count == 1 {
			return "5"
		}
		return "05"
	case 'S':
		return strings.Repeat("9", count)
	case 'a':
		return "PM"
	case 'E':
		if count > 3 {
			return "Monday"
		}
		return "Mon"
	case 'z':
		return "MST"
	case 'Z':
		return "Z07:00"
	case 'X':
		switch count {
		case 1:
			return "Z07"
		case 2:
			return "Z0700"
		}
		return "Z07:00"
	}
	return literal
}

// Parse parses value in UTC with layout, tolerating a 'T' separator mismatch, a value
// carrying more precision than the layout and a value shorter than the layout
func Parse(layout, value string) (time.Time, error) {
	if layout == "" {
		layout = time.RFC3339
	}
	if strings.Contains(layout, "T") != strings.Contains(value, "T") {
		layout = strings.Replace(layout, "T", " ", 1)
		value = strings.Replace(value, "T", " ", 1)
	}
	ret, err := time.ParseInLocation(layout, value, time.UTC)
	if err == nil {
		return ret, nil
	}
	switch {
	case len(value) > len(layout):
		value = value[:len(layout)]
	case len(value) < len(layout):
		layout = layout[:len(value)]
	default:
		return ret, err
	}
	return time.ParseInLocation(layout, value, time.UTC)
}
