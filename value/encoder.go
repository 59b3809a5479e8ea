package value

import (
	"fmt"
)

// Encode converts a number to its ideal value under the schema. Three
// strategies are tried cheapest first:
//
//  1. The plain zero padded decimal string, when the number is
//     non-negative and fits.
//  2. A single out of bounds leading byte followed by ordinary digits,
//     when the number fits between " 0..0" and "~9..9".
//  3. Out of bounds bytes in every position that needs one, each clamped
//     to the schema's byte range.
//
// Numbers outside the schema's representable range are rejected with the
// computed bounds.
func (s Schema) Encode(num int64) (_ Value, err error) {
	defer Error.WrapP(&err)

	err = s.Validate()
	if err != nil {
		return nil, err
	}

	lo, hi := s.Range()
	if num < lo || num > hi {
		return nil, ErrRange.New(
			"%d is outside the representable range [%d, %d] for min char %q and max char %q",
			num,
			lo,
			hi,
			s.MinChar,
			s.MaxChar,
		)
	}

	if s.Length == 0 {
		return Value{}, nil
	}

	if num >= 0 && num <= pow10(s.Length-1) {
		return Value(fmt.Sprintf("%0*d", s.Length, num)), nil
	}

	head := pow10(s.Length - 1)
	loSingle := int64(Digit(' ')) * head
	hiSingle := int64(Digit('~'))*head + head - 1
	if num < loSingle || num > hiSingle {
		return s.multiValue(num), nil
	}

	return singleValue(num, s.Length), nil
}

// singleValue encodes a number using a single out of bounds byte, always
// drawn from the printable range. It walks down from the most significant
// position: once a position receives a nonzero digit, the signed residual
// is guaranteed non-negative and smaller than the remaining positions can
// hold with plain digits, so the rest is the zero padded decimal string.
func singleValue(num int64, length int) Value {
	out := make(Value, 0, length)

	for place := length - 1; ; place-- {
		unit := pow10(place)

		digit := num / unit
		rem := num % unit
		if rem < 0 {
			rem += unit
		}
		// A negative digit with a remainder truncated toward zero:
		// round the digit down so the residual stays non-negative.
		if rem != 0 && digit < 0 {
			digit--
		}

		if place == 0 {
			return append(out, byte('0'+digit))
		}

		if digit != 0 {
			out = append(out, byte('0'+digit))

			return append(out, fmt.Sprintf("%0*d", place, rem)...)
		}

		out = append(out, '0')
	}
}

// multiValue encodes a number using as many out of bounds bytes as needed,
// limited only by the schema's byte range. Each position takes the largest
// digit the range allows toward the running residual; the range check in
// Encode guarantees the residual reaches zero by the last position.
func (s Schema) multiValue(num int64) Value {
	minDigit := int64(s.MinChar) - '0'
	maxDigit := int64(s.MaxChar) - '0'

	out := make(Value, 0, s.Length)

	for place := s.Length - 1; place >= 0; place-- {
		unit := pow10(place)

		digit := num / unit
		if digit < minDigit {
			digit = minDigit
		}
		if digit > maxDigit {
			digit = maxDigit
		}

		num -= digit * unit

		out = append(out, byte('0'+digit))
	}

	return out
}
