package tsc

import (
	"github.com/cavetools/tsc/value"
)

// Decode returns the number encoded by a value of any length.
func Decode(v []byte) int64 {
	return value.Decode(v)
}

// DecodeString decodes a textual value, one byte per character.
func DecodeString(s string) (int64, error) {
	return value.DecodeString(s)
}

// Encode converts a number to a vanilla four byte value.
func Encode(num int64) (value.Value, error) {
	return value.Default().Encode(num)
}
