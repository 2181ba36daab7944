package leaf

import (
	"fmt"
	"math"
	"reflect"
	"strings"
	"time"

	ftime "github.com/viant/morph/format/time"
)

// DefaultTimeLayouts are tried after the caller supplied layouts
var DefaultTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
	time.RFC1123Z,
	time.RFC1123,
	time.ANSIC,
}

// Time converts value to time.Time. Strings are parsed with layouts first, then with
// DefaultTimeLayouts. Integers are unix time: seconds, milliseconds, microseconds or
// nanoseconds depending on magnitude. Floats are fractional unix seconds.
func Time(value interface{}, layouts ...string) (time.Time, error) {
	value = indirect(value)
	switch actual := value.(type) {
	case time.Time:
		return actual, nil
	case string:
		return parseTime(actual, layouts)
	case nil, bool:
		return time.Time{}, unsupported(value, "time.Time")
	}
	rValue := reflect.ValueOf(value)
	switch rValue.Kind() {
	case reflect.String:
		return parseTime(rValue.String(), layouts)
	case reflect.Float32, reflect.Float64:
		f := rValue.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return time.Time{}, outOfRange(f, "time.Time")
		}
		seconds, fraction := math.Modf(f)
		return time.Unix(int64(seconds), int64(fraction*1e9)).UTC(), nil
	}
	unix, err := Int64(value)
	if err != nil {
		return time.Time{}, unsupported(value, "time.Time")
	}
	return unixTime(unix), nil
}

func unixTime(unix int64) time.Time {
	magnitude := unix
	if magnitude < 0 {
		magnitude = -magnitude
	}
	switch {
	case magnitude < 1e11:
		return time.Unix(unix, 0).UTC()
	case magnitude < 1e14:
		return time.UnixMilli(unix).UTC()
	case magnitude < 1e17:
		return time.UnixMicro(unix).UTC()
	}
	return time.Unix(0, unix).UTC()
}

func parseTime(text string, layouts []string) (time.Time, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return time.Time{}, unsupported(text, "time.Time")
	}
	var err error
	for _, candidates := range [][]string{layouts, DefaultTimeLayouts} {
		for _, layout := range candidates {
			var ret time.Time
			if ret, err = time.Parse(layout, text); err == nil {
				return ret, nil
			}
		}
	}
	for _, layout := range layouts { //lenient pass for explicit layouts
		if ret, lErr := ftime.Parse(layout, text); lErr == nil {
			return ret, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse time %q: %w", text, err)
}
