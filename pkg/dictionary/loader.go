package dictionary

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"github.com/edsrzf/mmap-go"
	"golang.org/x/text/encoding/charmap"
)

// Supported text encodings.
const (
	EncodingUTF8        = "utf-8"
	EncodingWindows1251 = "windows-1251"
)

// ErrClosed is returned when reading a File after Close.
var ErrClosed = errors.New("dictionary file closed")

// Options control how text dictionaries are decoded.
type Options struct {
	// Fields per line: 2 for word and schema, 1 for a plain word list.
	Fields int
	// Encoding of the text, EncodingUTF8 when empty.
	Encoding string
}

func (o Options) validate() (Options, error) {
	if o.Fields != 1 && o.Fields != 2 {
		return o, fmt.Errorf("unsupported field count %d", o.Fields)
	}
	switch strings.ToLower(o.Encoding) {
	case "", "utf-8", "utf8":
		o.Encoding = EncodingUTF8
	case "windows-1251", "cp1251":
		o.Encoding = EncodingWindows1251
	default:
		return o, fmt.Errorf("unsupported encoding %q", o.Encoding)
	}
	return o, nil
}

// Read decodes a text dictionary from r, transparently handling gzip. The
// returned sequence consumes r and can be ranged over once.
func Read(r io.Reader, opts Options) iter.Seq2[Record, error] {
	return func(yield func(Record, error) bool) {
		opts, err := opts.validate()
		if err != nil {
			yield(Record{}, err)
			return
		}
		readText(r, opts, yield)
	}
}

func readText(r io.Reader, opts Options, yield func(Record, error) bool) {
	br := bufio.NewReader(r)
	if head, _ := br.Peek(len(gzipMagic)); bytes.Equal(head, gzipMagic) {
		zr, err := gzip.NewReader(br)
		if err != nil {
			yield(Record{}, fmt.Errorf("failed to open gzip stream: %w", err))
			return
		}
		defer zr.Close()
		r = zr
	} else {
		r = br
	}
	if opts.Encoding == EncodingWindows1251 {
		r = charmap.Windows1251.NewDecoder().Reader(r)
	}

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSuffix(scanner.Text(), "\r")
		if text == "" {
			continue
		}
		if !utf8.ValidString(text) {
			yield(Record{}, &EncodingError{Line: line})
			return
		}
		fields := strings.Split(text, "\t")
		if len(fields) != opts.Fields {
			yield(Record{}, &MalformedError{Line: line, Fields: len(fields), Want: opts.Fields})
			return
		}
		rec := Record{Word: fields[0], Line: line}
		if opts.Fields == 2 {
			rec.Schema = fields[1]
		}
		if !yield(rec, nil) {
			return
		}
	}
	if err := scanner.Err(); err != nil {
		yield(Record{}, fmt.Errorf("failed to read line %d: %w", line+1, err))
	}
}

// File is a dictionary mapped into memory. Records can be ranged over any
// number of times until Close.
type File struct {
	path   string
	opts   Options
	format FileFormat

	mu   sync.RWMutex
	data mmap.MMap
	open bool
}

// Open maps the dictionary at path read-only and detects its format.
func Open(path string, opts Options) (*File, error) {
	opts, err := opts.validate()
	if err != nil {
		return nil, fmt.Errorf("dictionary %s: %w", path, err)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dictionary %s: %w", path, err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat dictionary %s: %w", path, err)
	}

	f := &File{path: path, opts: opts, open: true}
	if info.Size() > 0 {
		f.data, err = mmap.Map(file, mmap.RDONLY, 0)
		if err != nil {
			return nil, fmt.Errorf("failed to map dictionary %s: %w", path, err)
		}
	}
	f.format = sniff(f.data, path)

	log.Debugf("Mapped dictionary %s (%d bytes, %s)", path, len(f.data), f.format)
	return f, nil
}

// Path returns the file the dictionary was opened from.
func (f *File) Path() string { return f.path }

// Format returns the detected format.
func (f *File) Format() FileFormat { return f.format }

// Records implements Source.
func (f *File) Records() iter.Seq2[Record, error] {
	return func(yield func(Record, error) bool) {
		f.mu.RLock()
		defer f.mu.RUnlock()
		if !f.open {
			yield(Record{}, ErrClosed)
			return
		}

		r := bytes.NewReader(f.data)
		if f.format != FormatSnapshot {
			readText(r, f.opts, yield)
			return
		}

		records, err := ReadSnapshot(r, f.opts.Fields)
		if err != nil {
			yield(Record{}, fmt.Errorf("dictionary %s: %w", f.path, err))
			return
		}
		for _, rec := range records {
			if !yield(rec, nil) {
				return
			}
		}
	}
}

// Close unmaps the file.
func (f *File) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.open {
		return nil
	}
	f.open = false
	if f.data == nil {
		return nil
	}
	err := f.data.Unmap()
	f.data = nil
	if err != nil {
		return fmt.Errorf("failed to unmap dictionary %s: %w", f.path, err)
	}
	return nil
}
