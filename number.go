package xmlserde

import (
	"fmt"
	"golang.org/x/exp/constraints"
	"strconv"
	"unsafe"
)

// IntData decodes a text node as a signed integer of type T, rejecting
// values that do not fit T's bit width.
func IntData[T constraints.Signed]() Decoder[T] {
	bits := int(unsafe.Sizeof(T(0)) * 8)

	return AndThen(Data, func(text string) Decoder[T] {
		value, err := strconv.ParseInt(text, 10, bits)
		if err != nil {
			return FailWith[T](fmt.Sprintf("Expected an integer, got %q", text))
		}

		return Succeed(T(value))
	})
}

// UintData decodes a text node as an unsigned integer of type T.
func UintData[T constraints.Unsigned]() Decoder[T] {
	bits := int(unsafe.Sizeof(T(0)) * 8)

	return AndThen(Data, func(text string) Decoder[T] {
		value, err := strconv.ParseUint(text, 10, bits)
		if err != nil {
			return FailWith[T](fmt.Sprintf("Expected an unsigned integer, got %q", text))
		}

		return Succeed(T(value))
	})
}

// FloatData decodes a text node as a float of type T.
func FloatData[T constraints.Float]() Decoder[T] {
	bits := int(unsafe.Sizeof(T(0)) * 8)

	return AndThen(Data, func(text string) Decoder[T] {
		value, err := strconv.ParseFloat(text, bits)
		if err != nil {
			return FailWith[T](fmt.Sprintf("Expected a float, got %q", text))
		}

		return Succeed(T(value))
	})
}

// BoolData decodes a text node as a bool, accepting the forms
// [strconv.ParseBool] accepts.
var BoolData Decoder[bool] = AndThen(Data, func(text string) Decoder[bool] {
	value, err := strconv.ParseBool(text)
	if err != nil {
		return FailWith[bool](fmt.Sprintf("Expected a bool, got %q", text))
	}

	return Succeed(value)
})
