package param

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"unicode"

	"github.com/edp1096/spicedeck/pkg/unit"
)

var (
	errUnknownKind = errors.New("unknown parameter kind")
	errNil         = errors.New("nil value")
	errNotFinite   = errors.New("not a finite number")
	// ErrPairLength is returned when a float pair does not hold exactly two values.
	ErrPairLength = errors.New("expected exactly two values")
)

type namer interface{ Name() string }

type getNamer interface{ GetName() string }

func toString(raw any) (string, error) {
	switch v := raw.(type) {
	case nil:
		return "", errNil
	case string:
		return v, nil
	case getNamer:
		return v.GetName(), nil
	case namer:
		return v.Name(), nil
	case fmt.Stringer:
		return v.String(), nil
	}
	return fmt.Sprint(raw), nil
}

// toName is toString for references that must stay a single token.
func toName(raw any) (string, error) {
	s, err := toString(raw)
	if err != nil {
		return "", err
	}
	if strings.IndexFunc(s, unicode.IsSpace) >= 0 {
		return "", fmt.Errorf("name %q contains whitespace", s)
	}
	return s, nil
}

func toBool(raw any) (bool, error) {
	switch v := raw.(type) {
	case bool:
		return v, nil
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "on", "true", "1", "yes":
			return true, nil
		case "off", "false", "0", "no":
			return false, nil
		}
		return false, fmt.Errorf("not a boolean: %q", v)
	case nil:
		return false, errNil
	}

	rv := reflect.ValueOf(raw)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint() != 0, nil
	case reflect.Float32, reflect.Float64:
		return rv.Float() != 0, nil
	}
	return false, fmt.Errorf("cannot convert %T to bool", raw)
}

func toInt(raw any) (int, error) {
	switch v := raw.(type) {
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, err
		}
		return i, nil
	case unit.Unit:
		return integral(v.Float())
	case nil:
		return 0, errNil
	}

	rv := reflect.ValueOf(raw)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if rv.Uint() > math.MaxInt {
			return 0, fmt.Errorf("integer overflow: %d", rv.Uint())
		}
		return int(rv.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return integral(rv.Float())
	}
	return 0, fmt.Errorf("cannot convert %T to int", raw)
}

func integral(f float64) (int, error) {
	if math.Trunc(f) != f || math.IsInf(f, 0) {
		return 0, fmt.Errorf("not an integer: %v", f)
	}
	if f >= math.MaxInt || f < math.MinInt {
		return 0, fmt.Errorf("integer overflow: %v", f)
	}
	return int(f), nil
}

func toFloat(raw any) (float64, error) {
	f, err := anyFloat(raw)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, errNotFinite
	}
	return f, nil
}

func anyFloat(raw any) (float64, error) {
	switch v := raw.(type) {
	case string:
		s := strings.TrimSpace(v)
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f, nil
		}
		u, err := unit.Parse(s)
		if err != nil {
			return 0, err
		}
		return u.Float(), nil
	case unit.Unit:
		return v.Float(), nil
	case nil:
		return 0, errNil
	}

	rv := reflect.ValueOf(raw)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return rv.Float(), nil
	}
	return 0, fmt.Errorf("cannot convert %T to float", raw)
}

// toPair accepts any two-element array or slice of numbers, or "a,b".
func toPair(raw any) ([2]float64, error) {
	var items []any
	if s, ok := raw.(string); ok {
		for _, part := range strings.Split(s, ",") {
			items = append(items, part)
		}
	} else {
		rv := reflect.ValueOf(raw)
		if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
			return [2]float64{}, fmt.Errorf("cannot convert %T to float pair", raw)
		}
		for i := 0; i < rv.Len(); i++ {
			items = append(items, rv.Index(i).Interface())
		}
	}

	if len(items) != 2 {
		return [2]float64{}, fmt.Errorf("%w, got %d", ErrPairLength, len(items))
	}

	var pair [2]float64
	for i, item := range items {
		f, err := toFloat(item)
		if err != nil {
			return [2]float64{}, err
		}
		pair[i] = f
	}
	return pair, nil
}
