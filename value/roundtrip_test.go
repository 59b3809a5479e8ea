package value_test

import (
	"fmt"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"

	"github.com/cavetools/tsc/value"
)

// Decoding re-derives the encoded number exactly, for every number every
// strategy can be asked for, as long as the schema stays within the signed
// byte range.
func TestRoundtrip(t *testing.T) {
	schemas := []value.Schema{
		value.Default(),
		{Length: 2, MinChar: ' ', MaxChar: '~'},
		{Length: 3, MinChar: 0x00, MaxChar: '~'},
		{Length: 4, MinChar: '0', MaxChar: '9'},
		{Length: 1, MinChar: ' ', MaxChar: '~'},
	}

	for i, schema := range schemas {
		t.Run(fmt.Sprintf("[%d]%s", i, spew.Sprintf("%v", schema)), func(t *testing.T) {
			require.NoError(t, schema.Validate())

			lo, hi := schema.Range()
			t.Logf("Range: [%d, %d]\n", lo, hi)

			for num := lo; num <= hi; num++ {
				v, err := schema.Encode(num)
				if err != nil {
					t.Fatalf("encode %d: %+v", num, err)
				}

				got := value.Decode(v)
				if got != num {
					t.Fatalf("round trip %d: %s decodes to %d", num, spew.Sdump(v), got)
				}
			}
		})
	}
}

// The default charset bounds are sharp: both neighbors just outside the
// range are rejected, both edges inside it round trip.
func TestRoundtripEdges(t *testing.T) {
	schema := value.Default()
	lo, hi := schema.Range()

	for _, num := range []int64{lo, hi} {
		v, err := schema.Encode(num)
		require.NoError(t, err)
		require.Equal(t, num, value.Decode(v))
	}

	for _, num := range []int64{lo - 1, hi + 1} {
		_, err := schema.Encode(num)
		require.Error(t, err)
		require.True(t, value.ErrRange.Has(err))
	}
}
