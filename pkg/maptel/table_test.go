package maptel

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Insert(t *testing.T) {
	r, rec := newTestRegistry()
	h := r.Create()

	require.NoError(t, r.Insert(h, "100", "200"))

	dst, ok, err := r.Lookup(h, "100")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "200", dst)

	e, found := rec.last(EventInserted)
	require.True(t, found)
	assert.Equal(t, "100", e.Source)
	assert.Equal(t, "200", e.Destination)
	assert.Equal(t, "insert", e.Op)
}

func TestRegistry_Insert_Overwrites(t *testing.T) {
	r := New()
	h := r.Create()

	mustInsert(r, h, "1", "2", "1", "3")

	dst, _, err := r.Lookup(h, "1")
	require.NoError(t, err)
	assert.Equal(t, "3", dst)

	size, err := r.Size(h)
	require.NoError(t, err)
	assert.Equal(t, 1, size)
}

func TestRegistry_Insert_Idempotent(t *testing.T) {
	r := New()
	h := r.Create()

	require.NoError(t, r.Insert(h, "1", "2"))
	once, err := r.Entries(h)
	require.NoError(t, err)

	require.NoError(t, r.Insert(h, "1", "2"))
	twice, err := r.Entries(h)
	require.NoError(t, err)

	assert.Equal(t, once, twice)
}

// TestRegistry_Insert_Invalid verifies validation and the all-or-nothing rule.
func TestRegistry_Insert_Invalid(t *testing.T) {
	long := strings.Repeat("1", MaxNumberLength+1)

	testCases := []struct {
		name   string
		src    string
		dst    string
		reason string
	}{
		{"empty source", "", "1", "empty"},
		{"empty destination", "1", "", "empty"},
		{"source too long", long, "1", "too long"},
		{"destination too long", "1", long, "too long"},
		{"letters", "12a", "1", "non-digit character"},
		{"plus prefix", "+48123", "1", "non-digit character"},
		{"space", "1", "1 2", "non-digit character"},
		{"unicode digit", "١٢", "1", "non-digit character"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := New()
			h := r.Create()

			err := r.Insert(h, tc.src, tc.dst)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidNumber))

			var numErr *NumberError
			require.True(t, errors.As(err, &numErr))
			assert.Equal(t, "insert", numErr.Op)
			assert.Equal(t, tc.reason, numErr.Reason)

			size, err := r.Size(h)
			require.NoError(t, err)
			assert.Equal(t, 0, size, "nothing may be written on failure")
		})
	}
}

func TestRegistry_Insert_MaxLength(t *testing.T) {
	r := New()
	h := r.Create()
	longest := strings.Repeat("9", MaxNumberLength)

	require.NoError(t, r.Insert(h, longest, "1"))
	require.NoError(t, r.Insert(h, "2", longest))
}

func TestRegistry_Insert_InvalidHandle(t *testing.T) {
	r, rec := newTestRegistry()

	err := r.Insert(3, "1", "2")
	assert.ErrorIs(t, err, ErrInvalidHandle)

	e, ok := rec.last(EventRejected)
	require.True(t, ok)
	assert.Equal(t, "insert", e.Op)
	assert.Equal(t, Handle(3), e.Handle)
}

// TestRegistry_Insert_HandleCheckedFirst verifies handle errors win over number errors.
func TestRegistry_Insert_HandleCheckedFirst(t *testing.T) {
	r := New()
	err := r.Insert(0, "", "")
	assert.ErrorIs(t, err, ErrInvalidHandle)
	assert.NotErrorIs(t, err, ErrInvalidNumber)
}

func TestRegistry_Insert_TablesIndependent(t *testing.T) {
	r := New()
	h1 := r.Create()
	h2 := r.Create()

	mustInsert(r, h1, "1", "2")

	entries, err := r.Entries(h2)
	require.NoError(t, err)
	assert.Empty(t, entries)

	got, err := r.Resolve(h2, "1")
	require.NoError(t, err)
	assert.Equal(t, "1", got)
}

func TestRegistry_Erase(t *testing.T) {
	r, rec := newTestRegistry()
	h := r.Create()
	mustInsert(r, h, "1", "2")

	require.NoError(t, r.Erase(h, "1"))

	_, ok, err := r.Lookup(h, "1")
	require.NoError(t, err)
	assert.False(t, ok)

	e, found := rec.last(EventErased)
	require.True(t, found)
	assert.Equal(t, "1", e.Source)
}

func TestRegistry_Erase_Missing(t *testing.T) {
	m := newFakeMetrics()
	r, rec := newTestRegistry(WithMetricsRecorder(m))
	h := r.Create()
	mustInsert(r, h, "1", "2")

	require.NoError(t, r.Erase(h, "999"))

	_, found := rec.last(EventEraseMissing)
	assert.True(t, found)
	_, found = rec.last(EventErased)
	assert.False(t, found)

	assert.Equal(t, 0, m.mutations["erase"])

	size, err := r.Size(h)
	require.NoError(t, err)
	assert.Equal(t, 1, size)
}

func TestRegistry_Erase_Invalid(t *testing.T) {
	r := New()

	assert.ErrorIs(t, r.Erase(0, "1"), ErrInvalidHandle)

	h := r.Create()
	assert.ErrorIs(t, r.Erase(h, ""), ErrInvalidNumber)
	assert.ErrorIs(t, r.Erase(h, "1-2"), ErrInvalidNumber)
}

func TestRegistry_Lookup_DoesNotFollowChain(t *testing.T) {
	r := New()
	h := r.Create()
	mustInsert(r, h, "1", "2", "2", "3")

	dst, ok, err := r.Lookup(h, "1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "2", dst)
}

func TestRegistry_Lookup_Invalid(t *testing.T) {
	r := New()
	_, _, err := r.Lookup(0, "1")
	assert.ErrorIs(t, err, ErrInvalidHandle)

	h := r.Create()
	_, _, err = r.Lookup(h, "abc")
	assert.ErrorIs(t, err, ErrInvalidNumber)
}

func TestRegistry_Entries_IsCopy(t *testing.T) {
	r := New()
	h := r.Create()
	mustInsert(r, h, "1", "2")

	entries, err := r.Entries(h)
	require.NoError(t, err)
	entries["1"] = "9"
	entries["5"] = "6"

	fresh, err := r.Entries(h)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"1": "2"}, fresh)
}

func TestRegistry_Entries_InvalidHandle(t *testing.T) {
	r := New()
	_, err := r.Entries(1)
	assert.ErrorIs(t, err, ErrInvalidHandle)

	_, err = r.Size(1)
	assert.ErrorIs(t, err, ErrInvalidHandle)
}

func TestRegistry_MutationMetrics(t *testing.T) {
	m := newFakeMetrics()
	r := New(WithMetricsRecorder(m))
	h := r.Create()

	mustInsert(r, h, "1", "2", "3", "4")
	require.NoError(t, r.Erase(h, "1"))

	assert.Equal(t, 2, m.mutations["insert"])
	assert.Equal(t, 1, m.mutations["erase"])
}
