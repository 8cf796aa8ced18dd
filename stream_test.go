package xmlstream

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/lestrrat-go/xmlstream/sax"
	"github.com/stretchr/testify/require"
)

func TestDetectBOM(t *testing.T) {
	data := map[string][][]byte{
		"utf-8":    {{0x3C, 0x61, 0x3E, 0x3C}, {0xEF, 0xBB, 0xBF, 0x3C}},
		"utf-16le": {{0x3C, 0x00, 0x3F, 0x00}, {0xFF, 0xFE, 0x3C, 0x00}},
		"utf-16be": {{0x00, 0x3C, 0x00, 0x3F}, {0xFE, 0xFF, 0x00, 0x3C}},
	}

	for expected, inputs := range data {
		for i, input := range inputs {
			t.Logf("checking %s (%d)", expected, i)
			name, _ := detectEncoding(input)
			require.Equal(t, expected, name, "detectEncoding returns as expected for %#v", input)
		}
	}
}

func TestDetectBOMSkip(t *testing.T) {
	name, skip := detectEncoding([]byte{0xEF, 0xBB, 0xBF, '<', 'a', '>'})
	require.Equal(t, "utf-8", name, "UTF-8 BOM should be detected")
	require.Equal(t, 3, skip, "the BOM bytes should be skipped")

	name, skip = detectEncoding([]byte{'<', 'a', '>'})
	require.Equal(t, "utf-8", name, "BOM-less input should default to UTF-8")
	require.Equal(t, 0, skip, "nothing should be skipped")
}

func recorderEvents() (*sax.SAX2, *[]string) {
	var events []string
	s := sax.New()
	s.CharactersHandler = func(_ sax.Context, data []byte) error {
		events = append(events, fmt.Sprintf("text:%s", data))
		return nil
	}
	s.ProcessingInstructionHandler = func(_ sax.Context, data []byte) error {
		events = append(events, fmt.Sprintf("pi:%s", data))
		return nil
	}
	s.StartElementHandler = func(_ sax.Context, elem sax.StartTag) error {
		events = append(events, fmt.Sprintf("open:%s", elem.Name()))
		return nil
	}
	s.EndElementHandler = func(_ sax.Context, name string) error {
		events = append(events, fmt.Sprintf("close:%s", name))
		return nil
	}
	return s, &events
}

func TestParseReader(t *testing.T) {
	const input = `<a><b>hello</b></a>`
	expected := []string{"open:a", "open:b", "text:hello", "close:b", "close:a"}

	for _, size := range []int{1, 2, 3, 7, 4096} {
		t.Run(fmt.Sprintf("chunk size %d", size), func(t *testing.T) {
			h, events := recorderEvents()
			tok := New(h, WithChunkSize(size))
			require.NoError(t, tok.ParseReader(bytes.NewReader([]byte(input))), "ParseReader should succeed")
			require.Equal(t, expected, *events, "events should not depend on chunk size")
		})
	}
}

func TestParseReaderUTF8BOM(t *testing.T) {
	input := append([]byte{0xEF, 0xBB, 0xBF}, []byte(`<a>x</a>`)...)
	h, events := recorderEvents()
	require.NoError(t, ParseReader(bytes.NewReader(input), h), "ParseReader should succeed")
	require.Equal(t, []string{"open:a", "text:x", "close:a"}, *events, "BOM should not reach the tokenizer")
}

func encodeUTF16(s string, bigEndian bool, withBOM bool) []byte {
	var buf bytes.Buffer
	if withBOM {
		if bigEndian {
			buf.Write([]byte{0xFE, 0xFF})
		} else {
			buf.Write([]byte{0xFF, 0xFE})
		}
	}
	for _, r := range s {
		if bigEndian {
			buf.WriteByte(byte(r >> 8))
			buf.WriteByte(byte(r))
		} else {
			buf.WriteByte(byte(r))
			buf.WriteByte(byte(r >> 8))
		}
	}
	return buf.Bytes()
}

func TestParseReaderUTF16(t *testing.T) {
	// The BOM-less variants are only detectable when the document
	// begins with "<?".
	const doc = `<?pi?><a>x</a>`
	expected := []string{"pi:pi", "open:a", "text:x", "close:a"}

	tests := map[string][]byte{
		"LE with BOM":    encodeUTF16(doc, false, true),
		"BE with BOM":    encodeUTF16(doc, true, true),
		"LE without BOM": encodeUTF16(doc, false, false),
		"BE without BOM": encodeUTF16(doc, true, false),
	}

	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			h, events := recorderEvents()
			require.NoError(t, ParseReader(bytes.NewReader(input), h), "ParseReader should succeed")
			require.Equal(t, expected, *events, "decoded events should match")
		})
	}
}
