package dictionary

import (
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

const (
	snapshotMagic   = "LINGVO"
	snapshotVersion = 1
)

type snapshot struct {
	Magic   string   `msgpack:"magic"`
	Version int      `msgpack:"version"`
	Fields  int      `msgpack:"fields"`
	Records []Record `msgpack:"records"`
}

// WriteSnapshot drains src and writes it to w as a msgpack snapshot. Record
// order is preserved.
func WriteSnapshot(w io.Writer, fields int, src Source) error {
	records, err := Collect(src)
	if err != nil {
		return fmt.Errorf("failed to collect records: %w", err)
	}
	snap := snapshot{
		Magic:   snapshotMagic,
		Version: snapshotVersion,
		Fields:  fields,
		Records: records,
	}
	if err := msgpack.NewEncoder(w).Encode(&snap); err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return nil
}

// ReadSnapshot decodes a snapshot. A fields value of 0 accepts any layout.
func ReadSnapshot(r io.Reader, fields int) ([]Record, error) {
	var snap snapshot
	if err := msgpack.NewDecoder(r).Decode(&snap); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	if snap.Magic != snapshotMagic {
		return nil, fmt.Errorf("bad snapshot magic %q", snap.Magic)
	}
	if snap.Version != snapshotVersion {
		return nil, fmt.Errorf("unsupported snapshot version %d", snap.Version)
	}
	if fields != 0 && snap.Fields != fields {
		return nil, fmt.Errorf("snapshot has %d fields per record, want %d", snap.Fields, fields)
	}
	return snap.Records, nil
}
