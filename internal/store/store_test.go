package store_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/store"
)

func seed() []model.Todo {
	return []model.Todo{
		{ID: 1, Title: "A", Completed: false},
		{ID: 2, Title: "B", Completed: true},
	}
}

func titles(todos []*model.Todo) []string {
	out := make([]string, 0, len(todos))
	for _, t := range todos {
		out = append(out, t.Title)
	}
	return out
}

func TestListKeepsSeedOrder(t *testing.T) {
	s := store.New(seed())

	got := s.List()
	require.Len(t, got, 2)
	assert.Equal(t, model.Todo{ID: 1, Title: "A"}, *got[0])
	assert.Equal(t, model.Todo{ID: 2, Title: "B", Completed: true}, *got[1])
}

func TestNewCopiesSeed(t *testing.T) {
	in := seed()
	s := store.New(in)

	in[0].Title = "changed"

	got, err := s.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "A", got.Title)
}

func TestGet(t *testing.T) {
	s := store.New(seed())

	for _, id := range []int{1, 2} {
		got, err := s.Get(id)
		require.NoError(t, err)
		assert.Equal(t, id, got.ID)
	}
}

func TestGetReturnsSharedRecord(t *testing.T) {
	s := store.New(seed())

	got, err := s.Get(1)
	require.NoError(t, err)
	got.Title = "edited"

	assert.Equal(t, "edited", s.List()[0].Title)
}

func TestGetMissing(t *testing.T) {
	s := store.New(seed())

	got, err := s.Get(99)
	assert.Nil(t, got)
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrNotFound)

	var nf *store.NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "99", nf.ID)
	assert.Contains(t, nf.Message, "99")
	assert.Equal(t, nf.Message, err.Error())
}

func TestComplete(t *testing.T) {
	s := store.New(seed())

	got, err := s.Complete(1)
	require.NoError(t, err)
	assert.Equal(t, model.Todo{ID: 1, Title: "A", Completed: true}, *got)

	again, err := s.Get(1)
	require.NoError(t, err)
	assert.Same(t, got, again)
	assert.True(t, s.List()[0].Completed)
}

func TestCompleteAlreadyDone(t *testing.T) {
	s := store.New(seed())

	got, err := s.Complete(2)
	require.NoError(t, err)
	assert.True(t, got.Completed)
}

func TestCompleteMissingChangesNothing(t *testing.T) {
	s := store.New(seed())

	got, err := s.Complete(99)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.Contains(t, err.Error(), "99")

	assert.False(t, s.List()[0].Completed)
	assert.Len(t, s.List(), 2)
}

func TestDelete(t *testing.T) {
	s := store.New(seed())

	msg, err := s.Delete(1)
	require.NoError(t, err)
	assert.Equal(t, store.DeletedMessage, msg)

	_, err = s.Get(1)
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.Equal(t, []string{"B"}, titles(s.List()))
}

func TestDeleteMissing(t *testing.T) {
	s := store.New(seed())

	msg, err := s.Delete(99)
	assert.Empty(t, msg)
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.Contains(t, err.Error(), "99")
	assert.Len(t, s.List(), 2)
}

func TestDeleteDoesNotDisturbEarlierList(t *testing.T) {
	s := store.New(seed())
	before := s.List()

	_, err := s.Delete(1)
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B"}, titles(before))
}

func TestCreateAppends(t *testing.T) {
	s := store.New(seed())

	got := s.Create(model.Draft{Title: "X"})
	assert.Equal(t, 3, got.ID)
	assert.Equal(t, "X", got.Title)
	assert.False(t, got.Completed)

	found, err := s.Get(3)
	require.NoError(t, err)
	assert.Same(t, got, found)
	assert.Equal(t, []string{"A", "B", "X"}, titles(s.List()))
}

func TestCreateKeepsSuppliedCompleted(t *testing.T) {
	s := store.New(seed())
	done := true

	got := s.Create(model.Draft{Title: "X", Completed: &done})
	assert.True(t, got.Completed)
}

func TestCreateNeverReusesDeletedMax(t *testing.T) {
	s := store.New(seed())

	_, err := s.Delete(2)
	require.NoError(t, err)
	first := s.Create(model.Draft{Title: "X"})
	second := s.Create(model.Draft{Title: "Y"})

	assert.Equal(t, 3, first.ID)
	assert.Equal(t, 4, second.ID)
}

type fixedIDs int

func (f fixedIDs) NextID([]*model.Todo) int { return int(f) }

func TestCreateWithInjectedGenerator(t *testing.T) {
	s := store.New(seed(), store.WithIDGenerator(fixedIDs(42)))

	got := s.Create(model.Draft{Title: "X"})
	assert.Equal(t, 42, got.ID)
}

func TestCreateOnEmptyStore(t *testing.T) {
	s := store.New(nil)

	got := s.Create(model.Draft{Title: "first"})
	assert.Equal(t, 1, got.ID)
	assert.Len(t, s.List(), 1)
}

func TestRandomRangeBounds(t *testing.T) {
	g := store.RandomRange{Rand: rand.New(rand.NewSource(7))}

	for i := 0; i < 1000; i++ {
		id := g.NextID(nil)
		assert.GreaterOrEqual(t, id, 4)
		assert.LessOrEqual(t, id, 13)
	}
}

func TestRandomRangeIsDeterministicWithSeed(t *testing.T) {
	a := store.RandomRange{Rand: rand.New(rand.NewSource(1))}
	b := store.RandomRange{Rand: rand.New(rand.NewSource(1))}

	for i := 0; i < 10; i++ {
		assert.Equal(t, a.NextID(nil), b.NextID(nil))
	}
}

func TestParseID(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"1", 1},
		{" 42 ", 42},
		{"+7", 7},
		{"-3", -3},
		{"12abc", 12},
		{"007", 7},
		{"0x2", 2},
		{"0X1f", 31},
		{"-0x10", -16},
		{"0x1g", 1},
		{"0", 0},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := store.ParseID(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseIDRejects(t *testing.T) {
	for _, in := range []string{"", "abc", "-", " x1", "0x", "0xg", "99999999999999999999999"} {
		t.Run(in, func(t *testing.T) {
			_, err := store.ParseID(in)
			assert.ErrorIs(t, err, store.ErrNotFound)

			var nf *store.NotFoundError
			require.True(t, errors.As(err, &nf))
			assert.Equal(t, in, nf.ID)
		})
	}
}

func TestNotFoundKeepsCallerText(t *testing.T) {
	err := store.NotFound("12abc")

	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.Equal(t, "12abc", err.ID)
	assert.Equal(t, "todo with id 12abc not found", err.Error())
}
