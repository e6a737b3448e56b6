package wsaddr

import (
	"errors"
	"testing"

	"github.com/function61/gokit/testing/assert"
)

func TestEncodeUnscopedIsIdentity(t *testing.T) {
	for local := MinLocal; local <= MaxLocal; local++ {
		id, err := Encode(0, local)
		assert.Ok(t, err)
		assert.Equal(t, id, local)
	}
}

func TestEncodeIsUniqueAcrossOrdinals(t *testing.T) {
	seen := map[int]Address{}

	for ordinal := 0; ordinal <= MaxOrdinal; ordinal++ {
		for local := MinLocal; local <= MaxLocal; local++ {
			id, err := Encode(ordinal, local)
			assert.Ok(t, err)

			if prev, dup := seen[id]; dup {
				t.Fatalf("id %d produced by both %s and %s", id, prev, Address{ordinal, local})
			}
			seen[id] = Address{ordinal, local}
		}
	}

	assert.Equal(t, len(seen), 90)
}

func TestEncode(t *testing.T) {
	for _, tc := range []struct {
		ordinal int
		local   int
		output  int
	}{
		{0, 5, 5},
		{1, 1, 11},
		{2, 4, 24},
		{3, 1, 31},
		{3, 9, 39},
		{9, 9, 99},
	} {
		tc := tc // pin

		t.Run(Address{tc.ordinal, tc.local}.String(), func(t *testing.T) {
			id, err := Encode(tc.ordinal, tc.local)
			assert.Ok(t, err)
			assert.Equal(t, id, tc.output)
		})
	}
}

func TestEncodeRejectsOutOfRange(t *testing.T) {
	for _, addr := range []Address{
		{0, 0},
		{0, 10},
		{2, 0},
		{2, -1},
		{-1, 3},
		{10, 1}, // more than nine ringed monitors is a known limitation
	} {
		_, err := addr.Encode()
		assert.Assert(t, errors.Is(err, ErrInvalidWorkspace))
	}
}

func TestDecodeRoundTrips(t *testing.T) {
	for ordinal := 0; ordinal <= MaxOrdinal; ordinal++ {
		for local := MinLocal; local <= MaxLocal; local++ {
			id, err := Encode(ordinal, local)
			assert.Ok(t, err)

			addr, err := Decode(id)
			assert.Ok(t, err)
			assert.Equal(t, addr, Address{Ordinal: ordinal, Local: local})
		}
	}
}

func TestDecodeRejectsNonComposite(t *testing.T) {
	for _, id := range []int{0, -3, 10, 20, 100, 123} {
		_, err := Decode(id)
		assert.Assert(t, errors.Is(err, ErrInvalidWorkspace))
	}
}
