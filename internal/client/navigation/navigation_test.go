package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/mimamsa/internal/client/models"
)

var dune = BookPayload{Book: models.Book{ID: 7, Title: "Dune"}}

func TestStack_LIFO(t *testing.T) {
	var s Stack
	_, ok := s.Pop()
	assert.False(t, ok)

	s.Push(Entry{Screen: Home})
	s.Push(Entry{Screen: Poems})
	s.Push(Entry{Screen: BookDetail, Payload: dune})
	assert.Equal(t, 3, s.Len())

	top, ok := s.Peek()
	require.True(t, ok)
	assert.Equal(t, BookDetail, top.Screen)
	assert.Equal(t, 3, s.Len())

	for _, want := range []Screen{BookDetail, Poems, Home} {
		e, ok := s.Pop()
		require.True(t, ok)
		assert.Equal(t, want, e.Screen)
	}
	assert.Zero(t, s.Len())

	s.Push(Entry{Screen: Profile})
	s.Reset()
	_, ok = s.Peek()
	assert.False(t, ok)
}

func TestNavigator_StartsAtHome(t *testing.T) {
	n := NewNavigator()
	s, p := n.Current()
	assert.Equal(t, Home, s)
	assert.Nil(t, p)
	assert.Zero(t, n.Depth())
}

func TestNavigator_NavigateThenBackRestoresPosition(t *testing.T) {
	n := NewNavigator()
	require.NoError(t, n.Navigate(BookDetail, dune))
	before, beforePayload := n.Current()

	require.NoError(t, n.Navigate(Reader, dune))
	n.Back()

	s, p := n.Current()
	assert.Equal(t, before, s)
	assert.Equal(t, beforePayload, p)
}

func TestNavigator_BackAfterManyPushes(t *testing.T) {
	n := NewNavigator()
	path := []struct {
		s Screen
		p Payload
	}{
		{Profile, nil},
		{Poems, nil},
		{BookDetail, dune},
		{Reader, dune},
	}
	for _, step := range path {
		require.NoError(t, n.Navigate(step.s, step.p))
	}

	for i := len(path) - 2; i >= 0; i-- {
		n.Back()
		s, p := n.Current()
		assert.Equal(t, path[i].s, s)
		assert.Equal(t, path[i].p, p)
	}
	n.Back()
	s, _ := n.Current()
	assert.Equal(t, Home, s)
}

func TestNavigator_BackOnEmptyHistoryIsIdempotent(t *testing.T) {
	n := NewNavigator()
	require.NoError(t, n.Navigate(Profile, nil))
	n.Back()

	for i := 0; i < 3; i++ {
		n.Back()
		s, p := n.Current()
		assert.Equal(t, Home, s)
		assert.Nil(t, p)
		assert.Zero(t, n.Depth())
	}
}

func TestNavigator_SameScreenTwiceIsNotDeduplicated(t *testing.T) {
	n := NewNavigator()
	require.NoError(t, n.Navigate(Poems, nil))
	require.NoError(t, n.Navigate(Poems, nil))
	assert.Equal(t, 2, n.Depth())

	n.Back()
	s, _ := n.Current()
	assert.Equal(t, Poems, s)
}

func TestNavigator_Reset(t *testing.T) {
	n := NewNavigator()
	require.NoError(t, n.Navigate(BookDetail, dune))
	require.NoError(t, n.Navigate(Reader, dune))

	n.Reset()
	s, p := n.Current()
	assert.Equal(t, Home, s)
	assert.Nil(t, p)
	assert.Zero(t, n.Depth())
}

func TestNavigator_PayloadMismatch(t *testing.T) {
	tests := []struct {
		name string
		s    Screen
		p    Payload
	}{
		{"book screen without book", BookDetail, nil},
		{"reader without book", Reader, nil},
		{"edit without book", EditBook, nil},
		{"plain screen with book", Profile, dune},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := NewNavigator()
			err := n.Navigate(tt.s, tt.p)
			require.ErrorIs(t, err, ErrPayloadMismatch)

			s, _ := n.Current()
			assert.Equal(t, Home, s)
			assert.Zero(t, n.Depth())
		})
	}
}

func TestNavigator_UnknownScreenResolvesToHome(t *testing.T) {
	n := NewNavigator()
	require.NoError(t, n.Navigate(Profile, nil))
	require.NoError(t, n.Navigate(Screen(99), nil))

	s, _ := n.Current()
	assert.Equal(t, Home, s)
	assert.Equal(t, 2, n.Depth())
}

func TestResolve(t *testing.T) {
	for s := Home; s < screenCount; s++ {
		assert.Equal(t, s, Resolve(s))
	}
	assert.Equal(t, Home, Resolve(Screen(-1)))
	assert.Equal(t, Home, Resolve(screenCount))
}

func TestParseScreen(t *testing.T) {
	for s := Home; s < screenCount; s++ {
		got, ok := ParseScreen(s.String())
		require.True(t, ok, s.String())
		assert.Equal(t, s, got)
	}

	got, ok := ParseScreen("BOOKDETAIL")
	assert.True(t, ok)
	assert.Equal(t, BookDetail, got)

	got, ok = ParseScreen("settings")
	assert.False(t, ok)
	assert.Equal(t, Home, got)

	assert.Equal(t, "unknown", Screen(42).String())
}

func TestAdminOnly(t *testing.T) {
	admin := map[Screen]bool{
		AdminPanel: true, ManageAuthors: true, AddBook: true, EditBook: true, ManagePoems: true,
	}
	for s := Home; s < screenCount; s++ {
		assert.Equal(t, admin[s], AdminOnly(s), s.String())
	}
}
