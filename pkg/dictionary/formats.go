package dictionary

import (
	"bytes"
	"path/filepath"
	"strings"
)

// FileFormat represents different dictionary file formats
type FileFormat int

const (
	FormatUnknown  FileFormat = iota
	FormatText                // tab separated lines
	FormatGzip                // gzip compressed text
	FormatSnapshot            // msgpack snapshot written by WriteSnapshot
)

// FormatInfo contains metadata about a dictionary file format
type FormatInfo struct {
	Format      FileFormat
	Description string
	Extensions  []string
}

var supportedFormats = map[FileFormat]FormatInfo{
	FormatText: {
		Format:      FormatText,
		Description: "Tab Separated Dictionary",
		Extensions:  []string{".tsv", ".txt"},
	},
	FormatGzip: {
		Format:      FormatGzip,
		Description: "Gzip Compressed Dictionary",
		Extensions:  []string{".gz", ".bin"},
	},
	FormatSnapshot: {
		Format:      FormatSnapshot,
		Description: "Msgpack Dictionary Snapshot",
		Extensions:  []string{".msgpack"},
	},
}

var gzipMagic = []byte{0x1f, 0x8b}

func (f FileFormat) String() string {
	if info, ok := supportedFormats[f]; ok {
		return info.Description
	}
	return "unknown"
}

// sniff decides the format from the leading bytes, falling back to the
// file extension for snapshots, which carry no fixed magic.
func sniff(head []byte, filename string) FileFormat {
	if bytes.HasPrefix(head, gzipMagic) {
		return FormatGzip
	}
	if strings.EqualFold(filepath.Ext(filename), ".msgpack") {
		return FormatSnapshot
	}
	return FormatText
}

// GetFormatInfo returns information about a specific format
func GetFormatInfo(format FileFormat) (FormatInfo, bool) {
	info, exists := supportedFormats[format]
	return info, exists
}
