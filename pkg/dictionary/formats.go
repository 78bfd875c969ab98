package dictionary

import (
	"fmt"
	"path/filepath"
	"strings"
)

// FileFormat represents different dictionary file formats
type FileFormat int

const (
	FormatUnknown FileFormat = iota
	FormatJSON               // word -> score JSON object
	FormatMsgpack            // word -> score msgpack map
	FormatText               // newline separated words
)

// FormatInfo contains metadata about a dictionary file format
type FormatInfo struct {
	Format      FileFormat
	Description string
	Extensions  []string
	Snapshot    bool // holds scores and can be written back
}

var supportedFormats = map[FileFormat]FormatInfo{
	FormatJSON: {
		Format:      FormatJSON,
		Description: "JSON Score Snapshot",
		Extensions:  []string{".json"},
		Snapshot:    true,
	},
	FormatMsgpack: {
		Format:      FormatMsgpack,
		Description: "Msgpack Score Snapshot",
		Extensions:  []string{".msgpack", ".mpk"},
		Snapshot:    true,
	},
	FormatText: {
		Format:      FormatText,
		Description: "Plain Text Word List",
		Extensions:  []string{".txt"},
	},
}

func (f FileFormat) String() string {
	if info, ok := supportedFormats[f]; ok {
		return info.Description
	}
	return "unknown"
}

// DetectFileFormat picks a format from the file extension.
func DetectFileFormat(filename string) (FileFormat, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	for format, info := range supportedFormats {
		for _, e := range info.Extensions {
			if e == ext {
				return format, nil
			}
		}
	}
	return FormatUnknown, fmt.Errorf("unable to detect format for file %s", filename)
}

// DetectSnapshotFormat is DetectFileFormat restricted to snapshot formats.
func DetectSnapshotFormat(filename string) (FileFormat, error) {
	format, err := DetectFileFormat(filename)
	if err != nil {
		return FormatUnknown, err
	}
	if !supportedFormats[format].Snapshot {
		return FormatUnknown, fmt.Errorf("file %s is a %s, not a snapshot", filename, format)
	}
	return format, nil
}

// GetFormatInfo returns information about a specific format
func GetFormatInfo(format FileFormat) (FormatInfo, bool) {
	info, exists := supportedFormats[format]
	return info, exists
}
