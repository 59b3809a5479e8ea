package script

import (
	"fmt"
	"io"
	"math/bits"
	"strings"

	"github.com/calebcase/oops"
	"github.com/zeebo/errs"

	"github.com/cavetools/tsc/value"
)

// Error is the class of all script generator errors.
var Error = errs.Class("script")

// ErrSchema is the class of precondition errors on the generator schema.
var ErrSchema = errs.Class("schema")

// Behavior produces the script text appended to the event for a value.
type Behavior func(val int64) string

// DefaultBehavior is a placeholder behavior naming the decoded value.
func DefaultBehavior(val int64) string {
	return fmt.Sprintf("BEHAVIOR %d", val)
}

// Schema describes a dispatch script.
//
// Event is the number of the first generated event; a TSC value converts
// with value.Decode. Flags holds the flag values carrying the integer,
// least significant bit first. MaxVal limits how many events are
// generated; zero or less means one event per representable value.
// Credits switches to the credits opcodes. A nil Behavior falls back to
// DefaultBehavior.
type Schema struct {
	Event    int64
	Flags    []value.Value
	MaxVal   int64
	Credits  bool
	Behavior Behavior
}

// Validate checks the schema preconditions.
func (s Schema) Validate() (err error) {
	if len(s.Flags) > 62 {
		return ErrSchema.New("%d flags exceed the supported width of 62 bits", len(s.Flags))
	}

	return nil
}

// Encoder writes a dispatch script to a writer.
type Encoder struct {
	schema Schema
	w      io.Writer
}

// NewEncoder returns a new encoder.
func NewEncoder(schema Schema, w io.Writer) *Encoder {
	return &Encoder{
		schema: schema,
		w:      w,
	}
}

// Encode writes one event per value in [0, max), where max is the lesser
// of MaxVal and the number of values the flags can hold. Each event jumps
// to the event for val|1<<i for every flag index i at or above val's
// highest set bit, skipping targets at or beyond max, then runs the
// behavior text for val.
func (e *Encoder) Encode() (err error) {
	defer Error.WrapP(&err)

	err = e.schema.Validate()
	if err != nil {
		return err
	}

	capacity := int64(1) << uint(len(e.schema.Flags))

	max := e.schema.MaxVal
	if max <= 0 || max > capacity {
		max = capacity
	}

	label, jump := "#", "<FLJ"
	if e.schema.Credits {
		label, jump = "l", "f"
	}

	behavior := e.schema.Behavior
	if behavior == nil {
		behavior = DefaultBehavior
	}

	schema := value.Default()

	for val := int64(0); val < max; val++ {
		eve, err := schema.Encode(e.schema.Event + val)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintf(e.w, "%s%s\n", label, eve)
		if err != nil {
			return oops.Trace(err)
		}

		// Bits below the highest set bit are already decided by the
		// jumps that reached this event.
		jumps := ""
		for i := bits.Len64(uint64(val)); i < len(e.schema.Flags); i++ {
			target := val | 1<<uint(i)
			if target >= max {
				continue
			}

			tv, err := schema.Encode(e.schema.Event + target)
			if err != nil {
				return err
			}

			jumps += fmt.Sprintf("%s%s:%s", jump, e.schema.Flags[i], tv)
		}

		if jumps != "" {
			_, err = fmt.Fprintln(e.w, jumps)
			if err != nil {
				return oops.Trace(err)
			}
		}

		_, err = fmt.Fprintln(e.w, behavior(val))
		if err != nil {
			return oops.Trace(err)
		}
	}

	return nil
}

// Generate returns the dispatch script for a schema as a string.
func Generate(schema Schema) (_ string, err error) {
	defer Error.WrapP(&err)

	var buf strings.Builder

	err = NewEncoder(schema, &buf).Encode()
	if err != nil {
		return "", err
	}

	return buf.String(), nil
}
