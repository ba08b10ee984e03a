package packbits

import (
	"testing"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromRoaring(t *testing.T) {
	rb := roaring.BitmapOf(0, 2, 65, 100000)

	b := FromRoaring(rb)
	assert.Equal(t, 4, b.Count())
	assert.Equal(t, []int{0, 2, 65, 100000}, b.ToSlice())
	require.NoError(t, b.Validate())

	assert.True(t, FromRoaring(roaring.New()).IsEmpty())
}

func TestToRoaring(t *testing.T) {
	b := FromInts(0, 2, 65, 100000)

	rb := b.ToRoaring()
	assert.Equal(t, uint64(4), rb.GetCardinality())
	assert.True(t, rb.Contains(0))
	assert.True(t, rb.Contains(65))
	assert.True(t, rb.Contains(100000))
	assert.False(t, rb.Contains(1))
}

func TestRoaringRoundTrip(t *testing.T) {
	b := FromRange(100, 1000)
	got := FromRoaring(b.ToRoaring())
	assert.True(t, b.Equal(got))
}
