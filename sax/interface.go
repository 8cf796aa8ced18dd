package sax

// Context is an opaque value that the tokenizer passes back, untouched,
// as the first argument of every callback. Register one via the
// tokenizer's WithContext option.
type Context interface{}

// StartTag describes an opening (or self-closing) tag as it appeared in
// the source. RawAttributes returns everything between the tag name and
// the closing delimiter, untouched, including the leading whitespace.
type StartTag interface {
	Name() string
	RawAttributes() string
	SelfClosing() bool
}

// Handler receives tokenizer events in document order. Returning a
// non-nil error from any callback aborts the session with that error.
type Handler interface {
	StartDocument(Context) error
	EndDocument(Context) error
	Characters(Context, []byte) error
	CDataBlock(Context, []byte) error
	Comment(Context, []byte) error
	ProcessingInstruction(Context, []byte) error
	StartElement(Context, StartTag) error
	EndElement(Context, string) error
}

// CDataBlockFunc defines the function type for SAX2.CDataBlockHandler
type CDataBlockFunc func(ctx Context, content []byte) error

// CharactersFunc defines the function type for SAX2.CharactersHandler
type CharactersFunc func(ctx Context, content []byte) error

// CommentFunc defines the function type for SAX2.CommentHandler
type CommentFunc func(ctx Context, content []byte) error

// EndDocumentFunc defines the function type for SAX2.EndDocumentHandler
type EndDocumentFunc func(ctx Context) error

// EndElementFunc defines the function type for SAX2.EndElementHandler
type EndElementFunc func(ctx Context, name string) error

// ProcessingInstructionFunc defines the function type for SAX2.ProcessingInstructionHandler
type ProcessingInstructionFunc func(ctx Context, content []byte) error

// StartDocumentFunc defines the function type for SAX2.StartDocumentHandler
type StartDocumentFunc func(ctx Context) error

// StartElementFunc defines the function type for SAX2.StartElementHandler
type StartElementFunc func(ctx Context, elem StartTag) error

// SAX2 is a Handler whose behavior is assembled out of individual
// callback functions. Unset callbacks are no-ops.
type SAX2 struct {
	CDataBlockHandler            CDataBlockFunc
	CharactersHandler            CharactersFunc
	CommentHandler               CommentFunc
	EndDocumentHandler           EndDocumentFunc
	EndElementHandler            EndElementFunc
	ProcessingInstructionHandler ProcessingInstructionFunc
	StartDocumentHandler         StartDocumentFunc
	StartElementHandler          StartElementFunc
}
