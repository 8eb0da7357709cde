package navigation

// Entry is one remembered position in the history.
type Entry struct {
	Screen  Screen
	Payload Payload
}

// Stack is an unbounded LIFO of history entries. The zero value is empty
// and ready to use.
type Stack struct {
	entries []Entry
}

func (s *Stack) Push(e Entry) {
	s.entries = append(s.entries, e)
}

// Pop removes and returns the newest entry. ok is false when the stack is
// empty.
func (s *Stack) Pop() (e Entry, ok bool) {
	n := len(s.entries)
	if n == 0 {
		return Entry{}, false
	}
	e = s.entries[n-1]
	s.entries[n-1] = Entry{}
	s.entries = s.entries[:n-1]
	return e, true
}

// Peek returns the newest entry without removing it.
func (s *Stack) Peek() (Entry, bool) {
	if len(s.entries) == 0 {
		return Entry{}, false
	}
	return s.entries[len(s.entries)-1], true
}

func (s *Stack) Len() int {
	return len(s.entries)
}

func (s *Stack) Reset() {
	clear(s.entries)
	s.entries = s.entries[:0]
}
