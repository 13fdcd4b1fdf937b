package validation

import (
	"math"
	"reflect"
	"strings"

	"github.com/spf13/cast"
)

// boolStrings are the string spellings accepted for a bool field.
var boolStrings = map[string]bool{
	"1": true, "on": true, "t": true, "true": true, "y": true, "yes": true,
	"0": false, "off": false, "f": false, "false": false, "n": false, "no": false,
}

// fieldValue converts a decoded JSON value to t. Besides exact JSON
// types it accepts what form UIs commonly send: numeric strings and
// integral floats for integers, and yes/no style strings or 0/1 for
// bools. Strings only accept JSON strings. ok is false when raw cannot
// represent t.
func fieldValue(raw any, t reflect.Type) (reflect.Value, bool) {
	switch t.Kind() {
	case reflect.String:
		s, ok := raw.(string)
		if !ok {
			return reflect.Value{}, false
		}
		return reflect.ValueOf(s).Convert(t), true

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, ok := toInt(raw)
		if !ok {
			return reflect.Value{}, false
		}
		v := reflect.New(t).Elem()
		if v.OverflowInt(n) {
			return reflect.Value{}, false
		}
		v.SetInt(n)
		return v, true

	case reflect.Bool:
		b, ok := toBool(raw)
		if !ok {
			return reflect.Value{}, false
		}
		return reflect.ValueOf(b).Convert(t), true
	}

	return reflect.Value{}, false
}

func toInt(raw any) (int64, bool) {
	switch v := raw.(type) {
	case float64, bool:
	case string:
		raw = strings.TrimSpace(v)
	default:
		return 0, false
	}

	f, err := cast.ToFloat64E(raw)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}

func toBool(raw any) (bool, bool) {
	switch v := raw.(type) {
	case bool:
		return v, true
	case string:
		b, ok := boolStrings[strings.ToLower(strings.TrimSpace(v))]
		return b, ok
	case float64:
		if v == 0 || v == 1 {
			return v == 1, true
		}
	}
	return false, false
}
