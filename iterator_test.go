package segmentmap

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajwerner/segmentmap/segment"
)

func TestIteratorAscending(t *testing.T) {
	const n = 100
	rng := rand.New(rand.NewSource(7))
	order := rng.Perm(n)

	m := New[int, int]()
	for _, i := range order {
		m.Insert(segment.New(2*i, 2*i+1), i)
	}

	var got []Entry[int, int]
	for it := m.Iter(); it.Next(); {
		got = append(got, Entry[int, int]{Segment: it.Segment(), Value: it.Value()})
	}
	require.Len(t, got, n)
	for i, entry := range got {
		assert.Equal(t, e(2*i, 2*i+1, i), entry)
	}
}

// Descending insertion builds a pure left spine, forcing the traversal
// stack past its inline array and into the spilled slice.
func TestIteratorDeepStack(t *testing.T) {
	const n = 100
	m := New[int, int]()
	for i := n - 1; i >= 0; i-- {
		m.Insert(segment.New(2*i, 2*i+1), i)
	}

	it := m.Iter()
	for i := 0; i < n; i++ {
		require.True(t, it.Next(), "entry %d", i)
		assert.Equal(t, segment.New(2*i, 2*i+1), it.Segment())
		assert.Equal(t, i, it.Value())
	}
	assert.False(t, it.Next())
}

func TestIteratorExhausted(t *testing.T) {
	m := Of(e(0, 6, 0), e(6, 12, 1))
	it := m.Iter()
	for it.Next() {
	}
	assert.False(t, it.Next())
	assert.False(t, it.Next())

	assert.False(t, New[int, int]().Iter().Next())
}

func TestIteratorSetValue(t *testing.T) {
	m := Of(e(0, 6, 0), e(6, 12, 1), e(12, 18, 2))
	for it := m.Iter(); it.Next(); {
		it.SetValue(it.Value() * 10)
	}
	assert.Equal(t, []Entry[int, int]{e(0, 6, 0), e(6, 12, 10), e(12, 18, 20)}, entries(m))
}

func TestAll(t *testing.T) {
	m := Of(e(0, 6, 0), e(6, 12, 1), e(12, 18, 2))

	var got []Entry[int, int]
	for seg, v := range m.All() {
		got = append(got, Entry[int, int]{Segment: seg, Value: v})
	}
	assert.Equal(t, []Entry[int, int]{e(0, 6, 0), e(6, 12, 1), e(12, 18, 2)}, got)

	var segs []segment.Segment[int]
	for seg := range m.Segments() {
		segs = append(segs, seg)
	}
	assert.Equal(t, []segment.Segment[int]{
		segment.New(0, 6), segment.New(6, 12), segment.New(12, 18),
	}, segs)

	var values []int
	for v := range m.Values() {
		values = append(values, v)
	}
	assert.Equal(t, []int{0, 1, 2}, values)
}

func TestAllEarlyBreak(t *testing.T) {
	m := Of(e(0, 6, 0), e(6, 12, 1), e(12, 18, 2))
	var seen int
	for range m.All() {
		seen++
		if seen == 2 {
			break
		}
	}
	assert.Equal(t, 2, seen)
}

func TestStringFormat(t *testing.T) {
	assert.Equal(t, "{}", New[int, int]().String())
	assert.Equal(t, "{[0, 6):0, [6, 12):1}", Of(e(0, 6, 0), e(6, 12, 1)).String())
}
