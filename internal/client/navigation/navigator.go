package navigation

// Navigator tracks the current screen and its history. It is not safe for
// concurrent use; the controller serializes access.
type Navigator struct {
	current Screen
	payload Payload
	history Stack
}

// NewNavigator returns a navigator on Home with empty history.
func NewNavigator() *Navigator {
	return &Navigator{current: Home}
}

func (n *Navigator) Current() (Screen, Payload) {
	return n.current, n.payload
}

// Navigate pushes the current position and moves to s. Repeated navigation
// to the same screen pushes again. On error nothing changes.
func (n *Navigator) Navigate(s Screen, p Payload) error {
	s = Resolve(s)
	if err := checkPayload(s, p); err != nil {
		return err
	}
	n.history.Push(Entry{Screen: n.current, Payload: n.payload})
	n.current, n.payload = s, p
	return nil
}

// Back returns to the previous position, or to Home when there is none.
func (n *Navigator) Back() {
	if e, ok := n.history.Pop(); ok {
		n.current, n.payload = e.Screen, e.Payload
		return
	}
	n.current, n.payload = Home, nil
}

// Reset moves to Home and forgets the history.
func (n *Navigator) Reset() {
	n.history.Reset()
	n.current, n.payload = Home, nil
}

// Depth is the number of positions Back can return through.
func (n *Navigator) Depth() int {
	return n.history.Len()
}
