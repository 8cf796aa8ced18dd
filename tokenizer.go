package xmlstream

import (
	"strings"

	"github.com/lestrrat-go/xmlstream/internal/debug"
)

const (
	commentOpen  = "<!--"
	commentClose = "-->"
	cdataOpen    = "<![CDATA["
	cdataClose   = "]]>"
	piClose      = "?>"
)

func isBlankCh(c byte) bool {
	return c == 0x20 || (0x9 <= c && c <= 0xa) || c == 0xd
}

// hasPrefixPartial reports whether s is a proper prefix of full. It is
// used to decide if a truncated chunk tail could still grow into the
// given delimiter.
func hasPrefixPartial(s, full string) bool {
	return len(s) < len(full) && full[:len(s)] == s
}

// Feed hands the tokenizer the next chunk of the document. Tokens that
// complete within the accumulated input are reported to the sax handler
// in document order before Feed returns. A token cut off by the end of
// the chunk is buffered and resumed on the next Feed.
//
// The first Feed of a session fires StartDocument. Once Feed returns a
// non-nil error the tokenizer is dead: the same error is returned from
// every subsequent call.
func (t *Tokenizer) Feed(chunk string) error {
	if t.err != nil {
		return t.err
	}
	if t.finished {
		return ErrTokenizerFinished
	}

	if !t.started {
		t.started = true
		if err := t.sax.StartDocument(t.userData); err != nil {
			t.err = err
			return err
		}
	}

	buf := t.buffer + chunk
	t.buffer = ""
	t.pending = pendingNone

	if err := t.scan(buf); err != nil {
		t.err = err
		return err
	}
	return nil
}

func (t *Tokenizer) scan(buf string) error {
	pos := 0
	for pos < len(buf) {
		if debug.Enabled {
			debug.Printf("scan: pos=%d pending=%s", pos, t.pending)
		}
		if buf[pos] != '<' {
			// Character data runs to the next '<'.
			i := strings.IndexByte(buf[pos:], '<')
			if i == -1 {
				t.stall(pendingText, buf[pos:])
				return nil
			}
			if err := t.sax.Characters(t.userData, []byte(buf[pos:pos+i])); err != nil {
				return err
			}
			pos += i
			continue
		}

		rest := buf[pos:]
		if len(rest) < 2 {
			t.stall(pendingTagLike, rest)
			return nil
		}

		switch rest[1] {
		case '!':
			n, err := t.scanMarkupDecl(rest)
			if err != nil {
				return err
			}
			if n == 0 {
				return nil
			}
			pos += n
		case '?':
			i := strings.Index(rest[2:], piClose)
			if i == -1 {
				t.stall(pendingPI, rest)
				return nil
			}
			if err := t.sax.ProcessingInstruction(t.userData, []byte(rest[2:2+i])); err != nil {
				return err
			}
			pos += 2 + i + len(piClose)
		case '/':
			i := strings.IndexByte(rest[2:], '>')
			if i == -1 {
				t.stall(pendingTagLike, rest)
				return nil
			}
			if err := t.closeTag(rest[2 : 2+i]); err != nil {
				return err
			}
			pos += 2 + i + 1
		default:
			i := strings.IndexByte(rest[1:], '>')
			if i == -1 {
				t.stall(pendingTagLike, rest)
				return nil
			}
			if err := t.openTag(rest[1 : 1+i]); err != nil {
				return err
			}
			pos += 1 + i + 1
		}
	}
	return nil
}

// scanMarkupDecl handles input starting with "<!". It returns the
// number of bytes consumed, or 0 when the tokenizer stalled waiting for
// more input.
func (t *Tokenizer) scanMarkupDecl(rest string) (int, error) {
	if hasPrefixPartial(rest, commentOpen) || hasPrefixPartial(rest, cdataOpen) {
		t.stall(pendingMarkupDecl, rest)
		return 0, nil
	}

	switch {
	case strings.HasPrefix(rest, commentOpen):
		return t.scanComment(rest)
	case strings.HasPrefix(rest, cdataOpen):
		i := strings.Index(rest[len(cdataOpen):], cdataClose)
		if i == -1 {
			t.stall(pendingCData, rest)
			return 0, nil
		}
		if err := t.sax.CDataBlock(t.userData, []byte(rest[len(cdataOpen):len(cdataOpen)+i])); err != nil {
			return 0, err
		}
		return len(cdataOpen) + i + len(cdataClose), nil
	default:
		return 0, ErrUnrecognizedSequence{Ch: rest[2]}
	}
}

func (t *Tokenizer) scanComment(rest string) (int, error) {
	// A "--" inside the body must be immediately followed by '>'.
	// Search from the opening delimiter for the first "--" and check
	// what comes after it.
	i := strings.Index(rest[len(commentOpen):], "--")
	if i == -1 {
		t.stall(pendingComment, rest)
		return 0, nil
	}
	after := len(commentOpen) + i + 2
	if after >= len(rest) {
		// Can not yet tell whether this "--" closes the comment.
		t.stall(pendingComment, rest)
		return 0, nil
	}
	if rest[after] != '>' {
		return 0, ErrHyphenInComment
	}
	if err := t.sax.Comment(t.userData, []byte(rest[len(commentOpen):len(commentOpen)+i])); err != nil {
		return 0, err
	}
	return after + 1, nil
}

// openTag handles the interior of "<...>" (both delimiters stripped).
func (t *Tokenizer) openTag(interior string) error {
	selfClosing := false
	if strings.HasSuffix(interior, "/") {
		selfClosing = true
		interior = interior[:len(interior)-1]
	}
	if len(interior) > 0 && isBlankCh(interior[0]) {
		return ErrTagNameWhitespace
	}

	name := interior
	rawAttrs := ""
	for i := 0; i < len(interior); i++ {
		if isBlankCh(interior[i]) {
			name = interior[:i]
			rawAttrs = interior[i:]
			break
		}
	}

	if debug.Enabled {
		debug.Printf("openTag: name=%q selfClosing=%t", name, selfClosing)
	}

	ev := startTag{name: name, rawAttrs: rawAttrs, selfClosing: selfClosing}
	if err := t.sax.StartElement(t.userData, ev); err != nil {
		return err
	}
	if !selfClosing {
		t.openTags.Push(name)
	}
	return nil
}

// closeTag handles the interior of "</...>" (delimiters stripped). The
// name is compared verbatim against the most recently opened tag.
func (t *Tokenizer) closeTag(name string) error {
	popped, ok := t.openTags.Pop()
	if !ok || popped != name {
		t.openTags.Reset()
		return ErrMismatchedTag{Name: popped}
	}
	return t.sax.EndElement(t.userData, name)
}

func (t *Tokenizer) stall(kind pendingKind, buf string) {
	if debug.Enabled {
		debug.Printf("stall: kind=%s buffered=%d bytes", kind, len(buf))
	}
	t.pending = kind
	t.buffer = buf
}

// Finish tells the tokenizer the document is complete. A pending text
// run is flushed as a final Characters event; any other pending token
// means the input was truncated mid-token and yields the corresponding
// unclosed-token error. Tags left open produce ErrDanglingTags. On
// success EndDocument fires.
//
// Finish is terminal either way. Subsequent calls return the stored
// error, or ErrTokenizerFinished after a clean finish.
func (t *Tokenizer) Finish() error {
	if t.err != nil {
		return t.err
	}
	if t.finished {
		return ErrTokenizerFinished
	}
	t.finished = true

	if !t.started {
		t.started = true
		if err := t.sax.StartDocument(t.userData); err != nil {
			t.err = err
			return err
		}
	}

	if err := t.flushPending(); err != nil {
		t.err = err
		return err
	}

	if names := t.openTags.Items(); len(names) > 0 {
		t.err = ErrDanglingTags{Names: names}
		return t.err
	}

	if err := t.sax.EndDocument(t.userData); err != nil {
		t.err = err
		return err
	}
	return nil
}

func (t *Tokenizer) flushPending() error {
	kind := t.pending
	buf := t.buffer
	t.pending = pendingNone
	t.buffer = ""

	switch kind {
	case pendingNone:
		return nil
	case pendingText:
		return t.sax.Characters(t.userData, []byte(buf))
	case pendingCData:
		return ErrUnclosedCDATA
	case pendingComment:
		return ErrUnclosedComment
	case pendingPI:
		return ErrUnclosedPI
	}
	return ErrUnclosedTag
}

// Parse tokenizes input as a complete document in one call.
func (t *Tokenizer) Parse(input string) error {
	if err := t.Feed(input); err != nil {
		return err
	}
	return t.Finish()
}
