package xmlstream

import "github.com/lestrrat-go/xmlstream/internal/stack"

type tagStack struct {
	stack.Strings
}

func (s *tagStack) Push(name string) {
	s.Strings.Push(name)
}

// Pop removes and returns the most recently opened tag name. The
// second return value is false when the stack is empty, in which case
// the name is empty.
func (s *tagStack) Pop() (string, bool) {
	name, ok := s.PeekOne()
	if !ok {
		return "", false
	}
	s.Strings.Pop()
	return name, true
}

func (s *tagStack) PeekOne() (string, bool) {
	l := s.Strings.Peek(1)
	if len(l) != 1 {
		return "", false
	}
	return l[0], true
}
