package dictionary

import (
	"bytes"
	"compress/gzip"
	"errors"
	"iter"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
)

const adjectivesTSV = "красный\t2|ый,ого\n\nсиний\t2|ий,его\r\nновый\t2|ый,ого\n"

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func gzipped(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write(data)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestReadText(t *testing.T) {
	got, err := Collect(Records(nil))
	require.NoError(t, err)
	assert.Empty(t, got)

	var records []Record
	for r, err := range Read(strings.NewReader(adjectivesTSV), Options{Fields: 2}) {
		require.NoError(t, err)
		records = append(records, r)
	}

	want := []Record{
		{Word: "красный", Schema: "2|ый,ого", Line: 1},
		{Word: "синий", Schema: "2|ий,его", Line: 3},
		{Word: "новый", Schema: "2|ый,ого", Line: 4},
	}
	assert.Equal(t, want, records)
}

func TestReadMalformed(t *testing.T) {
	input := "красный\t2|ый\nсиний\n"

	var seen int
	var gotErr error
	for _, err := range Read(strings.NewReader(input), Options{Fields: 2}) {
		if err != nil {
			gotErr = err
			break
		}
		seen++
	}

	assert.Equal(t, 1, seen)
	var malformed *MalformedError
	require.True(t, errors.As(gotErr, &malformed))
	assert.Equal(t, 2, malformed.Line)
	assert.Equal(t, 1, malformed.Fields)
}

func TestReadBadOptions(t *testing.T) {
	for _, opts := range []Options{{Fields: 3}, {Fields: 1, Encoding: "koi8-r"}} {
		_, err := Collect(sourceFunc(Read(strings.NewReader("a"), opts)))
		assert.Error(t, err)
	}
}

func TestOpenGzipWindows1251(t *testing.T) {
	encoded, err := charmap.Windows1251.NewEncoder().String("быстро\nмедленно\n")
	require.NoError(t, err)
	path := writeFile(t, "adverbs.bin", gzipped(t, []byte(encoded)))

	f, err := Open(path, Options{Fields: 1, Encoding: "cp1251"})
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, FormatGzip, f.Format())
	for range 2 {
		records, err := Collect(f)
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "быстро", records[0].Word)
		assert.Equal(t, "медленно", records[1].Word)
	}
}

func TestOpenWindows1251AsUTF8(t *testing.T) {
	encoded, err := charmap.Windows1251.NewEncoder().String("быстро\nмедленно\n")
	require.NoError(t, err)
	f, err := Open(writeFile(t, "adverbs.tsv", []byte(encoded)), Options{Fields: 1})
	require.NoError(t, err)
	defer f.Close()

	_, err = Collect(f)
	var encErr *EncodingError
	require.True(t, errors.As(err, &encErr))
	assert.Equal(t, 1, encErr.Line)
}

func TestOpenEmptyFile(t *testing.T) {
	f, err := Open(writeFile(t, "empty.tsv", nil), Options{Fields: 2})
	require.NoError(t, err)

	records, err := Collect(f)
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.NoError(t, f.Close())
}

func TestOpenMissing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.tsv"), Options{Fields: 2})
	assert.Error(t, err)
}

func TestReadAfterClose(t *testing.T) {
	f, err := Open(writeFile(t, "adj.tsv", []byte(adjectivesTSV)), Options{Fields: 2})
	require.NoError(t, err)
	require.NoError(t, f.Close())
	require.NoError(t, f.Close())

	_, err = Collect(f)
	assert.ErrorIs(t, err, ErrClosed)
}

func TestSnapshotRoundTrip(t *testing.T) {
	src := Records{
		{Word: "синий", Schema: "2|ий,его", Line: 1},
		{Word: "красный", Schema: "2|ый,ого", Line: 2},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteSnapshot(&buf, 2, src))
	path := writeFile(t, "adj.msgpack", buf.Bytes())

	f, err := Open(path, Options{Fields: 2})
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, FormatSnapshot, f.Format())

	got, err := Collect(f)
	require.NoError(t, err)
	assert.Equal(t, []Record(src), got)

	_, err = ReadSnapshot(bytes.NewReader(buf.Bytes()), 1)
	assert.Error(t, err)
}

func TestSnapshotBadMagic(t *testing.T) {
	_, err := ReadSnapshot(strings.NewReader("not msgpack at all"), 0)
	assert.Error(t, err)
}

type sourceFunc iter.Seq2[Record, error]

func (s sourceFunc) Records() iter.Seq2[Record, error] { return iter.Seq2[Record, error](s) }
