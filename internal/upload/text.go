package upload

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// sniffSize is how much of a document is inspected to pick its charset.
const sniffSize = 4096

// textExtensions are the plain-text document types. The ingestion pipeline
// reads their bytes as UTF-8 and silently drops anything that does not
// decode, so accented vendor names in legacy exports would be lost. PDFs and
// images are parsed by the pipeline itself and are sent untouched.
var textExtensions = map[string]bool{
	".txt": true,
	".csv": true,
	".tsv": true,
	".md":  true,
}

func isText(name string) bool {
	return textExtensions[strings.ToLower(filepath.Ext(name))]
}

// byteOrderMarks maps a leading BOM to the decoder for the rest of the file.
// A nil decoder means the content is UTF-8 and only the mark is dropped.
var byteOrderMarks = []struct {
	mark    []byte
	decoder encoding.Encoding
}{
	{mark: []byte{0xEF, 0xBB, 0xBF}},
	{mark: []byte{0xFF, 0xFE}, decoder: unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)},
	{mark: []byte{0xFE, 0xFF}, decoder: unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)},
}

// detectedCharsets are the chardet results decoded explicitly. Anything else
// is read as Windows-1252, the charset spreadsheet exports default to.
var detectedCharsets = map[string]encoding.Encoding{
	"UTF-8":      nil,
	"ISO-8859-9": charmap.ISO8859_9,
}

// toUTF8 wraps r so the document reaches the pipeline as UTF-8.
func toUTF8(r io.Reader) (io.Reader, error) {
	br := bufio.NewReaderSize(r, sniffSize)

	head, err := br.Peek(sniffSize)
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return nil, fmt.Errorf("sniffing charset: %w", err)
	}

	for _, bom := range byteOrderMarks {
		if bytes.HasPrefix(head, bom.mark) {
			_, _ = br.Discard(len(bom.mark))
			return decode(br, bom.decoder), nil
		}
	}

	return decode(br, sniff(head)), nil
}

// sniff picks the charset of a document without a BOM. It returns nil for
// content that is already UTF-8.
func sniff(head []byte) encoding.Encoding {
	if utf8.Valid(head) {
		return nil
	}

	res, err := chardet.NewTextDetector().DetectBest(head)
	if err == nil {
		if enc, ok := detectedCharsets[res.Charset]; ok {
			return enc
		}
	}

	return charmap.Windows1252
}

func decode(r io.Reader, enc encoding.Encoding) io.Reader {
	if enc == nil {
		return r
	}

	return transform.NewReader(r, enc.NewDecoder())
}
