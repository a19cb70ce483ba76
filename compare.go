package gridtable

import (
	"cmp"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// Comparator is a three-way comparison of two raw cell values
// returning a negative number if a sorts before b,
// zero if they are equal, and a positive number otherwise.
type Comparator func(a, b any) int

// DateLayouts are tried in order to parse date strings.
// Layouts without time zone are interpreted in the location
// passed to DateComparator or NewEngine.WithLocation.
var DateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

var defaultComparators = comparatorsFor(time.UTC)

func comparatorsFor(loc *time.Location) map[ColumnType]Comparator {
	return map[ColumnType]Comparator{
		String: CompareStrings,
		Number: CompareNumbers,
		Date:   DateComparator(loc),
		Status: CompareStrings,
	}
}

// CompareValues compares a and b with the comparator of typ.
// Zone-less date strings are interpreted as UTC.
func CompareValues(typ ColumnType, a, b any) int {
	c, ok := defaultComparators[typ]
	if !ok {
		return 0
	}
	return c(a, b)
}

// compareCoerced compares the coerced values of a and b.
// Values that are absent or can't be coerced sort before
// all valid values and are equal to each other.
func compareCoerced[T any](a, b any, coerce func(any) (T, bool), compare func(T, T) int) int {
	av, aOK := coerce(a)
	bv, bOK := coerce(b)
	switch {
	case !aOK && !bOK:
		return 0
	case !aOK:
		return -1
	case !bOK:
		return 1
	}
	return compare(av, bv)
}

// CompareStrings compares the fmt.Sprint representations
// of a and b byte-wise.
func CompareStrings(a, b any) int {
	return compareCoerced(a, b, AsString, strings.Compare)
}

// CompareNumbers compares a and b numerically.
// See AsNumber for the supported values.
func CompareNumbers(a, b any) int {
	return compareCoerced(a, b, AsNumber, compareNumbers)
}

// DateComparator returns a Comparator for date values
// that parses zone-less date strings in loc.
func DateComparator(loc *time.Location) Comparator {
	coerce := func(v any) (time.Time, bool) { return AsTime(v, loc) }
	return func(a, b any) int {
		return compareCoerced(a, b, coerce, time.Time.Compare)
	}
}

// AsString returns the fmt.Sprint representation of
// a present value with pointers dereferenced.
func AsString(value any) (string, bool) {
	if IsAbsent(value) {
		return "", false
	}
	if s, ok := value.(string); ok {
		return s, true
	}
	return fmt.Sprint(deref(value)), true
}

// Numeric is a coerced number.
// Integers keep full precision for comparison,
// unsigned integers above math.MaxInt64 in Uint.
type Numeric struct {
	Float  float64
	Int    int64
	IsInt  bool
	Uint   uint64
	IsUint bool
}

func compareNumbers(a, b Numeric) int {
	switch {
	case a.IsUint && b.IsUint:
		return cmp.Compare(a.Uint, b.Uint)
	case a.IsUint && b.IsInt:
		return 1
	case a.IsInt && b.IsUint:
		return -1
	case a.IsInt && b.IsInt:
		return cmp.Compare(a.Int, b.Int)
	}
	return cmp.Compare(a.Float, b.Float)
}

// AsNumber coerces integer, float and bool values
// as well as numeric strings like json.Number.
// NaN is not a valid number.
func AsNumber(value any) (Numeric, bool) {
	if IsAbsent(value) {
		return Numeric{}, false
	}
	v := reflect.ValueOf(deref(value))
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i := v.Int()
		return Numeric{Float: float64(i), Int: i, IsInt: true}, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := v.Uint()
		return uintNumeric(u), true
	case reflect.Float32, reflect.Float64:
		f := v.Float()
		if math.IsNaN(f) {
			return Numeric{}, false
		}
		return floatNumeric(f), true
	case reflect.Bool:
		if v.Bool() {
			return Numeric{Float: 1, Int: 1, IsInt: true}, true
		}
		return Numeric{IsInt: true}, true
	case reflect.String:
		s := strings.TrimSpace(v.String())
		if s == "" {
			return Numeric{}, false
		}
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return Numeric{Float: float64(i), Int: i, IsInt: true}, true
		}
		if u, err := strconv.ParseUint(s, 10, 64); err == nil {
			return uintNumeric(u), true
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(f) {
			return Numeric{}, false
		}
		return floatNumeric(f), true
	}
	return Numeric{}, false
}

func uintNumeric(u uint64) Numeric {
	if u > math.MaxInt64 {
		return Numeric{Float: float64(u), Uint: u, IsUint: true}
	}
	return Numeric{Float: float64(u), Int: int64(u), IsInt: true}
}

func floatNumeric(f float64) Numeric {
	if f == math.Trunc(f) && f >= math.MinInt64 && f < math.MaxInt64 {
		return Numeric{Float: f, Int: int64(f), IsInt: true}
	}
	return Numeric{Float: f}
}

// AsTime coerces time.Time values, date strings matching
// one of DateLayouts, and integers as Unix milliseconds.
// A nil loc is treated as UTC.
func AsTime(value any, loc *time.Location) (time.Time, bool) {
	if IsAbsent(value) {
		return time.Time{}, false
	}
	if loc == nil {
		loc = time.UTC
	}
	value = deref(value)
	if t, ok := value.(time.Time); ok {
		return t, true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.String:
		return parseTime(strings.TrimSpace(v.String()), loc)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return time.UnixMilli(v.Int()).In(loc), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return time.UnixMilli(int64(v.Uint())).In(loc), true //#nosec G115
	case reflect.Float32, reflect.Float64:
		f := v.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return time.Time{}, false
		}
		return time.UnixMilli(int64(f)).In(loc), true
	}
	return time.Time{}, false
}

func parseTime(s string, loc *time.Location) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range DateLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
