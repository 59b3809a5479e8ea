// Package value converts between numbers and fixed-length TSC values.
//
// A TSC value is a short byte string read as a base 10 number with one
// digit per byte, most significant byte first. The byte '0' is the digit
// 0, so the four byte value "1234" is the number 1234. Bytes outside
// '0'..'9' are still digits: each byte is reinterpreted as a signed 8 bit
// quantity and offset by '0', which lets a single byte carry a digit far
// outside 0..9. For example:
//
//  "0000" =  0*1000 +  0*100 +  0*10 +  0 =     0
//  "000/" =  0*1000 +  0*100 +  0*10 + -1 =    -1
//  ":000" = 10*1000 +  0*100 +  0*10 +  0 = 10000
//  "10/01" (length 5) = 9901
//
// Encoding picks the "ideal" value for a number: the plain zero padded
// decimal string when the number fits, otherwise a single out of bounds
// leading byte followed by ordinary digits, otherwise out of bounds bytes
// in as many positions as needed, clamped to the schema's byte range.
// The three strategies cover the schema's representable range without
// gaps, and are tried cheapest first so the common case is plain ASCII
// digits.
package value
