package dictionary

import (
	"fmt"
	"iter"
)

// Record is one dictionary line: a headword and, for words that inflect, the
// descriptor of its schema.
type Record struct {
	Word   string `msgpack:"word"`
	Schema string `msgpack:"schema,omitempty"`
	Line   int    `msgpack:"line,omitempty"`
}

// Source yields records in dictionary order. Reading stops at the first error.
type Source interface {
	Records() iter.Seq2[Record, error]
}

// MalformedError reports a line whose field count does not match Options.Fields.
type MalformedError struct {
	Line   int
	Fields int
	Want   int
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("line %d: got %d fields, want %d", e.Line, e.Fields, e.Want)
}

// EncodingError reports a line that is not valid UTF-8 after decoding,
// usually a windows-1251 file read with the utf-8 encoding.
type EncodingError struct {
	Line int
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("line %d: invalid utf-8, check the dictionary encoding", e.Line)
}

// Records adapts an in-memory slice to a Source.
type Records []Record

func (rs Records) Records() iter.Seq2[Record, error] {
	return func(yield func(Record, error) bool) {
		for _, r := range rs {
			if !yield(r, nil) {
				return
			}
		}
	}
}

// Collect drains src into a slice.
func Collect(src Source) ([]Record, error) {
	var out []Record
	for r, err := range src.Records() {
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}
