package argparse

import (
	"encoding"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Converter parses a single token into a value.
type Converter[V any] func(token string) (V, error)

// Combiner folds a converted value into a target.
type Combiner[T, V any] func(target *T, value V)

const (
	defaultTimeFormat = "2006-01-02 15:04:05" // no TimeZone!
	dateFormat        = "2006-01-02"
)

var (
	durationType        = reflect.TypeOf(time.Duration(0))
	timeType            = reflect.TypeOf(time.Time{})
	textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()
)

// Assign overwrites the target with the value.
func Assign[T any](target *T, value T) {
	*target = value
}

// Append appends the value to the target slice.
func Append[T any](target *[]T, value T) {
	*target = append(*target, value)
}

type number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Sum adds the value to the target.
func Sum[N number](target *N, value N) {
	*target += value
}

// Convert is the standard converter. See the package documentation for the
// supported types; any other type makes Convert fail.
func Convert[V any](token string) (V, error) {
	var v V
	if err := convertValue(token, reflect.ValueOf(&v).Elem(), ""); err != nil {
		return v, &Error{Token: token, Msg: "failed to parse " + token, Err: err}
	}
	return v, nil
}

// Choice returns a converter that accepts only the keys of choices and
// yields the mapped values.
func Choice[V any](choices map[string]V) Converter[V] {
	names := make([]string, 0, len(choices))
	for k := range choices {
		names = append(names, k)
	}
	sort.Strings(names)

	return func(token string) (V, error) {
		if v, ok := choices[token]; ok {
			return v, nil
		}
		var zero V
		return zero, &Error{
			Token: token,
			Msg: fmt.Sprintf("invalid choice: %s (choose from %s)",
				token, strings.Join(names, ", ")),
		}
	}
}

// convertible reports whether convertValue can produce values of type t.
func convertible(t reflect.Type) bool {
	if t == durationType || t == timeType {
		return true
	}
	if reflect.PointerTo(t).Implements(textUnmarshalerType) {
		return true
	}

	switch t.Kind() {
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return true
	}
	return false
}

// convertValue parses token into v, which must be settable. The format is a
// time.Parse layout and only matters for time.Time; if empty, RFC 3339,
// "2006-01-02 15:04:05" and "2006-01-02" are tried in turn.
func convertValue(token string, v reflect.Value, format string) error {
	switch v.Type() {
	case durationType:
		d, err := time.ParseDuration(token)
		if err != nil {
			return err
		}
		v.SetInt(int64(d))
		return nil

	case timeType:
		t, err := parseTime(token, format)
		if err != nil {
			return err
		}
		v.Set(reflect.ValueOf(t))
		return nil
	}

	if v.CanAddr() && v.Addr().Type().Implements(textUnmarshalerType) {
		return v.Addr().Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(token))
	}

	switch v.Kind() {
	case reflect.String:
		v.SetString(token)

	case reflect.Bool:
		b, err := strconv.ParseBool(token)
		if err != nil {
			return err
		}
		v.SetBool(b)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(token, 10, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetInt(i)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr:
		u, err := strconv.ParseUint(token, 10, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetUint(u)

	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(token, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetFloat(f)

	case reflect.Complex64, reflect.Complex128:
		c, err := strconv.ParseComplex(token, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetComplex(c)

	default:
		return fmt.Errorf("unsupported type %s", v.Type())
	}

	return nil
}

func parseTime(token, format string) (time.Time, error) {
	if format != "" {
		return time.Parse(format, token)
	}

	var err error
	for _, f := range []string{time.RFC3339, defaultTimeFormat, dateFormat} {
		var t time.Time
		if t, err = time.Parse(f, token); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}
