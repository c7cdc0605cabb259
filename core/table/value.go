package table

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Kind is the declared type of a column's values. It selects the column's comparator.
type Kind int

const (
	KindString Kind = iota
	KindNumber
	KindDate
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindDate:
		return "date"
	case KindBool:
		return "bool"
	default:
		return "string"
	}
}

// date layouts tried, in order, when a KindDate value is held as a string.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// Display returns the display string form of v, the form searched by the filter.
func Display(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case int32:
		return strconv.FormatInt(int64(val), 10)
	case uint:
		return strconv.FormatUint(uint64(val), 10)
	case uint64:
		return strconv.FormatUint(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case time.Time:
		if val.IsZero() {
			return ""
		}
		if val.Hour() == 0 && val.Minute() == 0 && val.Second() == 0 {
			return val.Format("2006-01-02")
		}
		return val.Format("2006-01-02 15:04")
	case []string:
		return strings.Join(val, ", ")
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}

// Comparator orders two column values: <0 when a sorts before b, 0 when equal, >0 otherwise.
type Comparator func(a, b interface{}) int

// ComparatorFor returns the comparator of kind.
// Missing (nil) values order before present ones.
func ComparatorFor(kind Kind) Comparator {
	switch kind {
	case KindNumber:
		return compareNumbers
	case KindDate:
		return compareDates
	case KindBool:
		return compareBools
	default:
		return compareStrings
	}
}

func compareMissing(a, b interface{}) (int, bool) {
	switch {
	case a == nil && b == nil:
		return 0, true
	case a == nil:
		return -1, true
	case b == nil:
		return 1, true
	}
	return 0, false
}

func compareStrings(a, b interface{}) int {
	if c, done := compareMissing(a, b); done {
		return c
	}
	return strings.Compare(Display(a), Display(b))
}

func compareNumbers(a, b interface{}) int {
	if c, done := compareMissing(a, b); done {
		return c
	}
	x, okX := toFloat(a)
	y, okY := toFloat(b)
	switch {
	case !okX && !okY:
		return compareStrings(a, b)
	case !okX:
		return -1
	case !okY:
		return 1
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return 0
}

func compareDates(a, b interface{}) int {
	if c, done := compareMissing(a, b); done {
		return c
	}
	x, okX := toTime(a)
	y, okY := toTime(b)
	switch {
	case !okX && !okY:
		return compareStrings(a, b)
	case !okX:
		return -1
	case !okY:
		return 1
	case x.Before(y):
		return -1
	case x.After(y):
		return 1
	}
	return 0
}

func compareBools(a, b interface{}) int {
	if c, done := compareMissing(a, b); done {
		return c
	}
	x, _ := a.(bool)
	y, _ := b.(bool)
	switch {
	case x == y:
		return 0
	case !x:
		return -1
	}
	return 1
}

func toFloat(v interface{}) (float64, bool) {
	switch val := v.(type) {
	case int:
		return float64(val), true
	case int32:
		return float64(val), true
	case int64:
		return float64(val), true
	case uint:
		return float64(val), true
	case uint64:
		return float64(val), true
	case float32:
		return float64(val), true
	case float64:
		return val, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		return f, err == nil
	}
	return 0, false
}

func toTime(v interface{}) (time.Time, bool) {
	switch val := v.(type) {
	case time.Time:
		return val, !val.IsZero()
	case *time.Time:
		if val == nil {
			return time.Time{}, false
		}
		return *val, !val.IsZero()
	case string:
		return parseDate(val)
	}
	return time.Time{}, false
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
