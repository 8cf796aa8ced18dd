package xmlstream

import (
	"errors"
	"strings"
)

var (
	ErrAttributeNameWhitespace = errors.New("Attribute names may not contain whitespace")
	ErrAttributeValueExpected  = errors.New("Expected a value for the attribute")
	ErrHyphenInComment         = errors.New("Unexpected -- inside comment")
	ErrTagNameWhitespace       = errors.New("Tag names may not start with whitespace")
	ErrTokenizerFinished       = errors.New("tokenizer is finished")
	ErrUnclosedAttributeValue  = errors.New("Unclosed attribute value")
	ErrUnclosedCDATA           = errors.New("Unclosed CDATA section")
	ErrUnclosedComment         = errors.New("Unclosed comment")
	ErrUnclosedPI              = errors.New("Unclosed processing instruction")
	ErrUnclosedTag             = errors.New("Unclosed tag")
	ErrUnquotedAttributeValue  = errors.New("Attribute values should be quoted")
)

// ErrMismatchedTag is returned when a closing tag does not match the
// tag popped off the open-tag stack. Name holds the popped name, which
// is empty when the stack itself was empty.
type ErrMismatchedTag struct {
	Name string
}

func (e ErrMismatchedTag) Error() string {
	return "Unclosed tag: " + e.Name
}

// ErrDanglingTags is returned by Finish when tags remain open at the
// end of input. Names are in stack order, bottom to top.
type ErrDanglingTags struct {
	Names []string
}

func (e ErrDanglingTags) Error() string {
	return "Unclosed tags: " + strings.Join(e.Names, ",")
}

// ErrUnrecognizedSequence is returned when "<!" is followed by
// something that can not begin a comment or a CDATA section.
type ErrUnrecognizedSequence struct {
	Ch byte
}

func (e ErrUnrecognizedSequence) Error() string {
	return "Unrecognized sequence: <!" + string(e.Ch)
}
