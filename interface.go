package xmlstream

import (
	"github.com/lestrrat-go/xmlstream/sax"
)

// pendingKind identifies the token that was cut off by a chunk
// boundary and is waiting for more input.
type pendingKind int

const (
	pendingNone pendingKind = iota
	pendingText
	pendingCData
	pendingComment
	pendingPI
	pendingMarkupDecl
	pendingTagLike
)

func (k pendingKind) String() string {
	switch k {
	case pendingNone:
		return "none"
	case pendingText:
		return "text"
	case pendingCData:
		return "cdata"
	case pendingComment:
		return "comment"
	case pendingPI:
		return "processing instruction"
	case pendingMarkupDecl:
		return "markup declaration"
	case pendingTagLike:
		return "tag"
	}
	return "unknown"
}

// Tokenizer is an incremental, chunk-at-a-time XML tokenizer. It emits
// events to the registered sax.Handler as soon as each token is fully
// determined, and carries unfinished tokens across chunk boundaries.
//
// A Tokenizer is single-use: create it, Feed it chunks in order, Finish
// it once, then discard it. It retains only the buffer of at most one
// in-flight token and the stack of open tag names.
type Tokenizer struct {
	sax      sax.Handler
	userData sax.Context

	pending pendingKind
	buffer  string

	openTags tagStack

	chunkSize int
	started   bool
	finished  bool
	err       error
}

// Option configures a Tokenizer.
type Option func(*Tokenizer)

// WithContext sets the opaque user data value passed as the first
// argument to every sax.Handler callback.
func WithContext(ctx sax.Context) Option {
	return func(t *Tokenizer) {
		t.userData = ctx
	}
}

// WithChunkSize sets the read size used by ParseReader.
func WithChunkSize(n int) Option {
	return func(t *Tokenizer) {
		if n > 0 {
			t.chunkSize = n
		}
	}
}

// New creates a Tokenizer that reports events to h.
func New(h sax.Handler, options ...Option) *Tokenizer {
	t := &Tokenizer{
		sax:       h,
		chunkSize: defaultChunkSize,
	}
	for _, o := range options {
		o(t)
	}
	return t
}

// startTag is the payload handed to sax.Handler.StartElement.
type startTag struct {
	name        string
	rawAttrs    string
	selfClosing bool
}

func (e startTag) Name() string {
	return e.name
}

func (e startTag) RawAttributes() string {
	return e.rawAttrs
}

func (e startTag) SelfClosing() bool {
	return e.selfClosing
}
