package xmlstream

import (
	"bytes"
	"io"

	"golang.org/x/text/transform"

	"github.com/lestrrat-go/xmlstream/encoding"
	"github.com/lestrrat-go/xmlstream/internal/debug"
	"github.com/lestrrat-go/xmlstream/sax"
)

const defaultChunkSize = 4096

const encUTF8 = "utf-8"

var (
	patUTF16LE4B = []byte{0x3C, 0x00, 0x3F, 0x00}
	patUTF16BE4B = []byte{0x00, 0x3C, 0x00, 0x3F}
	patUTF8      = []byte{0xEF, 0xBB, 0xBF}
	patUTF16LE2B = []byte{0xFF, 0xFE}
	patUTF16BE2B = []byte{0xFE, 0xFF}
)

// detectEncoding sniffs the first bytes of the document for a byte
// order mark or a recognizable "<?" pattern. It returns the encoding
// name and the number of BOM bytes to skip. Anything it does not
// recognize is treated as UTF-8.
func detectEncoding(b []byte) (string, int) {
	if debug.Enabled {
		debug.Printf("START detectEncoding")
		defer debug.Printf("END   detectEncoding")
	}

	if len(b) >= 4 {
		p := b[:4]
		if bytes.Equal(p, patUTF16LE4B) {
			// no BOM
			return "utf-16le", 0
		}
		if bytes.Equal(p, patUTF16BE4B) {
			// no BOM
			return "utf-16be", 0
		}
	}

	if len(b) >= 3 {
		if bytes.Equal(b[:3], patUTF8) {
			return encUTF8, 3
		}
	}

	if len(b) >= 2 {
		p := b[:2]
		if bytes.Equal(p, patUTF16LE2B) {
			return "utf-16le", 2
		}
		if bytes.Equal(p, patUTF16BE2B) {
			return "utf-16be", 2
		}
	}

	return encUTF8, 0
}

// ParseReader tokenizes the document from rd, feeding it to the
// tokenizer in fixed-size chunks and finishing at EOF. The byte stream
// is decoded to UTF-8 first: the encoding is sniffed from the head of
// the input and defaults to UTF-8.
func (t *Tokenizer) ParseReader(rd io.Reader) error {
	buf := make([]byte, t.chunkSize)
	first := true

	for {
		n, rerr := rd.Read(buf)
		if n > 0 {
			chunk := buf[:n]
			if first {
				first = false
				name, skip := detectEncoding(chunk)
				chunk = chunk[skip:]
				if name != encUTF8 {
					enc := encoding.Load(name)
					rest := io.MultiReader(bytes.NewReader(chunk), rd)
					rd = transform.NewReader(rest, enc.NewDecoder())
					buf = make([]byte, t.chunkSize)
					continue
				}
			}
			if err := t.Feed(string(chunk)); err != nil {
				return err
			}
		}
		if rerr == io.EOF {
			return t.Finish()
		}
		if rerr != nil {
			if t.err == nil {
				t.err = rerr
			}
			return rerr
		}
	}
}

// ParseReader tokenizes a complete document from rd, reporting events
// to h.
func ParseReader(rd io.Reader, h sax.Handler, options ...Option) error {
	return New(h, options...).ParseReader(rd)
}

// ParseString tokenizes a complete document held in memory, reporting
// events to h.
func ParseString(input string, h sax.Handler, options ...Option) error {
	return New(h, options...).Parse(input)
}
