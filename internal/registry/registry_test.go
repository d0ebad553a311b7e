package registry

import "testing"

import "github.com/stretchr/testify/require"

func TestInsertConsistency(t *testing.T) {
	r := New()
	tr := Triple{Client: 1, Frame: 2, Title: 3}
	r.Insert(tr)

	got, ok := r.LookupByClient(1)
	require.True(t, ok)
	require.Equal(t, tr, got)

	got, ok = r.LookupByFrame(2)
	require.True(t, ok)
	require.Equal(t, tr, got)

	got, ok = r.LookupByTitle(3)
	require.True(t, ok)
	require.Equal(t, tr, got)

	require.Equal(t, 1, r.ClientCount())
	require.Equal(t, 1, r.FrameCount())
	require.Equal(t, 1, r.TitleCount())
}

func TestFramingIdempotence(t *testing.T) {
	r := New()
	tr := Triple{Client: 1, Frame: 2, Title: 3}
	r.Insert(tr)
	r.Insert(tr)

	require.Equal(t, 1, r.ClientCount())
	require.Equal(t, 1, r.FrameCount())
	require.Equal(t, 1, r.TitleCount())
}

func TestUnframingCompleteness(t *testing.T) {
	r := New()
	tr := Triple{Client: 1, Frame: 2, Title: 3}
	r.Insert(tr)

	removed, ok := r.RemoveByClient(1)
	require.True(t, ok)
	require.Equal(t, tr, removed)

	_, ok = r.LookupByClient(1)
	require.False(t, ok)
	_, ok = r.LookupByFrame(2)
	require.False(t, ok)
	_, ok = r.LookupByTitle(3)
	require.False(t, ok)

	require.Equal(t, 0, r.ClientCount())
	require.Equal(t, 0, r.FrameCount())
	require.Equal(t, 0, r.TitleCount())
}

func TestRemoveByClientOnUnknownIsNoop(t *testing.T) {
	r := New()
	_, ok := r.RemoveByClient(99)
	require.False(t, ok)
}

func TestRemoveAsyncTornTriple(t *testing.T) {
	r := New()
	tr := Triple{Client: 1, Frame: 2, Title: 3}
	r.Insert(tr)

	// Client destroyed first: only the client index entry disappears.
	r.RemoveAsync(1)
	_, ok := r.LookupByClient(1)
	require.False(t, ok)
	// The frame/title index entries are still present, but now resolve
	// to nothing because the triple they point at is gone: a torn
	// lookup, not a crash.
	_, ok = r.LookupByFrame(2)
	require.False(t, ok)
	require.Equal(t, 0, r.ClientCount())
	require.Equal(t, 1, r.FrameCount())
	require.Equal(t, 1, r.TitleCount())

	// Frame's own DestroyNotify arrives later and cleans up its entry
	// without touching the title entry, which is still present.
	r.RemoveAsync(2)
	require.Equal(t, 0, r.FrameCount())
	require.Equal(t, 1, r.TitleCount())

	r.RemoveAsync(3)
	require.Equal(t, 0, r.TitleCount())
}

func TestNoIDInMoreThanOneIndex(t *testing.T) {
	r := New()
	r.Insert(Triple{Client: 1, Frame: 2, Title: 3})
	r.Insert(Triple{Client: 4, Frame: 5, Title: 6})

	_, ok := r.LookupByClient(2)
	require.False(t, ok)
	_, ok = r.LookupByFrame(1)
	require.False(t, ok)
	_, ok = r.LookupByTitle(1)
	require.False(t, ok)
}
