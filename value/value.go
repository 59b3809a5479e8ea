package value

import (
	"github.com/zeebo/errs"
)

// Error is the class of all value codec errors.
var Error = errs.Class("value")

// ErrSchema is the class of precondition errors: malformed schemas and
// non-byte characters in textual input.
var ErrSchema = errs.Class("schema")

// ErrRange is the class of range errors: numbers outside the representable
// range of a schema.
var ErrRange = errs.Class("range")

// Value is a TSC value: a fixed-length byte string encoding a number.
// Values are immutable once produced.
type Value []byte

// String returns the value bytes as a string.
func (v Value) String() string {
	return string(v)
}

// Digit returns the digit encoded by a single byte: the byte reinterpreted
// as a signed 8 bit quantity, offset so that '0' is 0. Bytes at or above
// 0x80 encode negative digits.
func Digit(b byte) int {
	return int(int8(b)) - '0'
}

// Decode returns the number encoded by a value of any length, most
// significant byte first. The empty value decodes to 0.
func Decode(v []byte) int64 {
	num := int64(0)
	for _, b := range v {
		num = num*10 + int64(Digit(b))
	}

	return num
}

// DecodeString decodes a textual value, one byte per character. Characters
// that do not fit in a single byte are rejected.
func DecodeString(s string) (_ int64, err error) {
	defer Error.WrapP(&err)

	v := make([]byte, 0, len(s))
	for _, r := range s {
		if r > 0xFF {
			return 0, ErrSchema.New("character %q does not fit in one byte", r)
		}

		v = append(v, byte(r))
	}

	return Decode(v), nil
}
