// Package tsc converts between numbers and the fixed-length values used
// by TSC, the scripting format of Cave Story and its mods.
//
// The root package covers the common path with vanilla defaults: four
// byte values built from printable characters. Custom lengths and byte
// ranges live in the value subpackage; the flags subpackage maps flag
// numbers onto memory bits and emits <FL± commands, and the script
// subpackage generates scripts that dispatch on an integer held in flags.
package tsc
