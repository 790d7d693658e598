// Package number compares JSON numbers against each other and against Go
// numeric values.
package number

import (
	"encoding/json"
	"math"
	"math/big"
	"reflect"
	"strings"
)

// ToFloat64 reads json.Number and any Go integer or float kind as float64.
// Integers beyond 2^53 lose precision here; use Equal to compare them.
func ToFloat64(value any) (float64, bool) {
	if n, ok := value.(json.Number); ok {
		f, err := n.Float64()
		return f, err == nil
	}

	rv := reflect.ValueOf(value)
	switch {
	case !rv.IsValid():
		return 0, false
	case rv.CanInt():
		return float64(rv.Int()), true
	case rv.CanUint():
		return float64(rv.Uint()), true
	case rv.CanFloat():
		return rv.Float(), true
	}

	return 0, false
}

// IsNumber reports whether value is a JSON number or a Go numeric type.
func IsNumber(value any) bool {
	_, ok := ToFloat64(value)
	return ok
}

// Equal compares two numeric values regardless of their Go type, so
// json.Number("5") equals 5 and 5.0. Integers are compared exactly at any
// size; an integer and a float are equal only when the float holds exactly
// that integer. The second result is false when either side is not a number.
func Equal(a, b any) (equal bool, ok bool) {
	if an, isJSON := a.(json.Number); isJSON {
		if bn, isJSON := b.(json.Number); isJSON && an == bn {
			return true, true
		}
	}

	af, ok := ToFloat64(a)
	if !ok {
		return false, false
	}
	bf, ok := ToFloat64(b)
	if !ok {
		return false, false
	}

	ai, aInt := toBigInt(a)
	bi, bInt := toBigInt(b)
	switch {
	case aInt && bInt:
		return ai.Cmp(bi) == 0, true
	case aInt:
		return floatHoldsInt(bf, ai), true
	case bInt:
		return floatHoldsInt(af, bi), true
	}

	if math.IsNaN(af) || math.IsNaN(bf) {
		return false, true
	}
	return af == bf, true
}

// IsZero reports whether value is a number equal to zero.
func IsZero(value any) bool {
	f, ok := ToFloat64(value)
	return ok && f == 0
}

// toBigInt returns the exact value of Go integers and of json.Number text
// written without a fraction or exponent.
func toBigInt(value any) (*big.Int, bool) {
	if n, ok := value.(json.Number); ok {
		if strings.ContainsAny(string(n), ".eE") {
			return nil, false
		}
		return new(big.Int).SetString(string(n), 10)
	}

	rv := reflect.ValueOf(value)
	switch {
	case !rv.IsValid():
		return nil, false
	case rv.CanInt():
		return big.NewInt(rv.Int()), true
	case rv.CanUint():
		return new(big.Int).SetUint64(rv.Uint()), true
	}

	return nil, false
}

func floatHoldsInt(f float64, i *big.Int) bool {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return false
	}

	whole, _ := new(big.Float).SetFloat64(f).Int(nil)
	return whole.Cmp(i) == 0
}
