package xmlstream

import (
	"iter"

	"github.com/lestrrat-go/strcursor"
	"github.com/lestrrat-go/xmlstream/internal/orderedmap"
)

// Attributes is the parsed form of a start tag's raw attribute string.
// Iteration order is the order of first appearance in the source; a
// repeated name keeps its slot but takes the last value.
type Attributes struct {
	values *orderedmap.Map[string, string]
}

func (a *Attributes) Len() int {
	return a.values.Len()
}

func (a *Attributes) Get(name string) (string, bool) {
	return a.values.Get(name)
}

func (a *Attributes) Range() iter.Seq2[string, string] {
	return a.values.Range()
}

func isBlankRune(r rune) bool {
	return r == 0x20 || (0x9 <= r && r <= 0xa) || r == 0xd
}

// ParseAttributes parses the raw attribute string captured from a start
// tag, such as ` foo="1" bar='2'`. Values are returned verbatim, with
// no entity resolution.
func ParseAttributes(raw string) (*Attributes, error) {
	attrs := &Attributes{values: orderedmap.New[string, string]()}
	cur := strcursor.New([]byte(raw))

	for {
		for isBlankRune(cur.Peek(1)) {
			cur.Advance(1)
		}
		if cur.Done() {
			return attrs, nil
		}

		name, err := parseAttributeName(cur)
		if err != nil {
			return nil, err
		}

		value, err := parseAttributeValue(cur)
		if err != nil {
			return nil, err
		}

		attrs.values.Set(name, value)
	}
}

// parseAttributeName consumes up to and including the '=' that follows
// the name.
func parseAttributeName(cur *strcursor.Cursor) (string, error) {
	n := 0
	sawBlank := false
	for {
		if !cur.HasChars(n + 1) {
			return "", ErrAttributeValueExpected
		}
		r := cur.Peek(n + 1)
		if r == '=' {
			break
		}
		if isBlankRune(r) {
			sawBlank = true
		}
		n++
	}
	if sawBlank {
		return "", ErrAttributeNameWhitespace
	}
	name := cur.Consume(n)
	cur.Advance(1)
	return name, nil
}

func parseAttributeValue(cur *strcursor.Cursor) (string, error) {
	if cur.Done() {
		return "", ErrAttributeValueExpected
	}
	quote := cur.Peek(1)
	if quote != '"' && quote != '\'' {
		return "", ErrUnquotedAttributeValue
	}
	cur.Advance(1)

	n := 0
	for {
		if !cur.HasChars(n + 1) {
			return "", ErrUnclosedAttributeValue
		}
		if cur.Peek(n+1) == quote {
			break
		}
		n++
	}
	value := cur.Consume(n)
	cur.Advance(1)
	return value, nil
}
