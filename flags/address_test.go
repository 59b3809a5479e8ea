package flags

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewAddress(t *testing.T) {
	type TC struct {
		offset int64
		bit    int
		want   Address
	}

	tcs := []TC{
		{0, 0, Address{0, 0}},
		{0, 7, Address{0, 7}},
		{0, 8, Address{1, 0}},
		{0, 9, Address{1, 1}},
		{2, 17, Address{4, 1}},
		{0, -1, Address{-1, 7}},
		{1, -9, Address{-1, 7}},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d](%d,%d)", i, tc.offset, tc.bit), func(t *testing.T) {
			require.Equal(t, tc.want, NewAddress(tc.offset, tc.bit))
		})
	}
}

func TestAddressArithmetic(t *testing.T) {
	t.Run("add carries", func(t *testing.T) {
		require.Equal(t, Address{1, 2}, Address{0, 7}.Add(Address{0, 3}))
		require.Equal(t, Address{2, 0}, Address{1, 0}.Add(Address{0, 8}))
	})

	t.Run("sub borrows", func(t *testing.T) {
		require.Equal(t, Address{0, 7}, Address{1, 0}.Sub(Address{0, 1}))
		require.Equal(t, Address{-1, 7}, Address{0, 0}.Sub(Address{0, 1}))
	})

	t.Run("bit counts", func(t *testing.T) {
		a := Address{0x49DDA0, 0}

		require.Equal(t, Address{0x49DDA1, 0}, a.AddBits(8))
		require.Equal(t, Address{0x49DD9F, 7}, a.SubBits(1))
		require.Equal(t, int64(19), Address{2, 3}.Bits())
	})

	t.Run("composition is associative", func(t *testing.T) {
		a := Address{3, 5}
		b := Address{0, 6}
		c := Address{1, 7}

		require.Equal(t, a.Add(b).Add(c), a.Add(b.Add(c)))
	})

	t.Run("ordering", func(t *testing.T) {
		require.True(t, Address{0, 7}.Less(Address{1, 0}))
		require.False(t, Address{1, 0}.Less(Address{0, 7}))
		require.False(t, Address{1, 0}.Less(Address{1, 0}))
	})
}

func TestAddressString(t *testing.T) {
	require.Equal(t, "0x49dda0, bit 0", Freeware.String())
	require.Equal(t, "0x49de3a, bit 2", Address{0x49DE3A, 2}.String())
}
