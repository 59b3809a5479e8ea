package value

import (
	"github.com/hashicorp/go-multierror"
)

// MaxLength is the longest supported output length. Every representable
// range for lengths up to 17 fits in an int64, even with the full byte
// range available (a digit span of 207 per position).
const MaxLength = 17

// Schema describes the shape of encoded values: the output length and the
// smallest and largest byte legal anywhere in the output. A normal digit
// must always be representable, so MinChar may not exceed '0' and MaxChar
// may not fall below '9'.
type Schema struct {
	Length  int
	MinChar byte
	MaxChar byte
}

// Default returns the schema used by vanilla TSC commands: four bytes,
// printable characters only.
func Default() Schema {
	return Schema{
		Length:  4,
		MinChar: ' ',
		MaxChar: '~',
	}
}

// Validate checks the schema preconditions. All violations are reported,
// not just the first.
func (s Schema) Validate() (err error) {
	var group *multierror.Error

	if s.Length < 0 || s.Length > MaxLength {
		group = multierror.Append(group, ErrSchema.New(
			"length %d must be within [0, %d]",
			s.Length,
			MaxLength,
		))
	}

	if s.MinChar > '0' {
		group = multierror.Append(group, ErrSchema.New(
			"min char %q must not exceed '0'",
			s.MinChar,
		))
	}

	if s.MaxChar < '9' {
		group = multierror.Append(group, ErrSchema.New(
			"max char %q must not fall below '9'",
			s.MaxChar,
		))
	}

	if group != nil {
		return Error.Wrap(group)
	}

	return nil
}

// Range returns the closed interval of numbers representable by the
// schema. The low bound decodes MinChar repeated over the whole length.
// The high bound uses the raw byte span MaxChar-'0': constraint bytes
// above 0x7F extend the range upward, matching how the clamped encoding
// strategy spends them.
func (s Schema) Range() (lo, hi int64) {
	unit := repunit(s.Length)

	return int64(Digit(s.MinChar)) * unit, (int64(s.MaxChar) - '0') * unit
}

// repunit returns the base 10 repunit of the given length: 1, 11, 111, ...
// The repunit times a digit is the value with that digit in every position.
func repunit(length int) int64 {
	unit := int64(0)
	for i := 0; i < length; i++ {
		unit = unit*10 + 1
	}

	return unit
}

// pow10 returns 10^n for n >= 0.
func pow10(n int) int64 {
	p := int64(1)
	for i := 0; i < n; i++ {
		p *= 10
	}

	return p
}
