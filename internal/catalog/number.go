package catalog

import (
	"math"
	"strconv"
	"strings"
)

// Number is a lenient numeric field. Ints, floats and numeric strings are
// accepted; anything else leaves the field unset so the caller's default
// applies.
type Number struct {
	Value float64
	Set   bool
}

func Num(v float64) Number { return Number{Value: v, Set: true} }

func (n *Number) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw interface{}
	if err := unmarshal(&raw); err != nil {
		*n = Number{}
		return nil
	}
	*n = parseNumber(raw)
	return nil
}

func (n Number) MarshalYAML() (interface{}, error) {
	if !n.Set {
		return nil, nil
	}
	return n.Value, nil
}

func parseNumber(raw interface{}) Number {
	var v float64
	switch t := raw.(type) {
	case int:
		v = float64(t)
	case int64:
		v = float64(t)
	case uint64:
		v = float64(t)
	case float64:
		v = t
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return Number{}
		}
		v = f
	default:
		return Number{}
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Number{}
	}
	return Num(v)
}

// Or returns the value, or def when unset.
func (n Number) Or(def float64) float64 {
	if !n.Set {
		return def
	}
	return n.Value
}

// Int truncates toward zero.
func (n Number) Int(def int) int {
	if !n.Set {
		return def
	}
	return int(n.Value)
}
