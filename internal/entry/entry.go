package entry

import (
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Kind represents the type of filesystem entry.
type Kind uint8

const (
	KindFile    Kind = 0
	KindDir     Kind = 1
	KindSymlink Kind = 2
	KindOther   Kind = 3
)

func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDir:
		return "dir"
	case KindSymlink:
		return "symlink"
	default:
		return "other"
	}
}

// KindFromMode derives the Kind from an os.FileMode.
func KindFromMode(mode os.FileMode) Kind {
	switch {
	case mode.IsRegular():
		return KindFile
	case mode.IsDir():
		return KindDir
	case mode&os.ModeSymlink != 0:
		return KindSymlink
	default:
		return KindOther
	}
}

// UnknownType is the label used for files whose type could not be guessed.
const UnknownType = "Unknown"

// FileType is either a recognized MIME type or Unknown.
// The zero value is Unknown.
type FileType struct {
	mime string
}

// Unknown is the FileType for files whose type lookup failed or came back empty.
var Unknown = FileType{}

// Recognized returns a FileType for a MIME string. An empty string is Unknown.
func Recognized(mime string) FileType {
	return FileType{mime: mime}
}

// Known reports whether the type was recognized.
func (t FileType) Known() bool {
	return t.mime != ""
}

func (t FileType) String() string {
	if t.mime == "" {
		return UnknownType
	}
	return t.mime
}

// FileRecord is one scanned file.
type FileRecord struct {
	Folder string
	Name   string
	Bytes  int64   // Apparent size (st_size)
	SizeKB float64 // Bytes / 1024 rounded to 2 decimals
	Type   FileType
}

// NewFileRecord builds a record, deriving SizeKB from bytes.
func NewFileRecord(folder, name string, bytes int64, typ FileType) FileRecord {
	return FileRecord{
		Folder: folder,
		Name:   name,
		Bytes:  bytes,
		SizeKB: float64(centiKB(bytes)) / 100,
		Type:   typ,
	}
}

// Path returns the full path of the file.
func (r FileRecord) Path() string {
	return filepath.Join(r.Folder, r.Name)
}

// CentiKB returns SizeKB as an integer count of hundredths of a kilobyte.
func (r FileRecord) CentiKB() int64 {
	return centiKB(r.Bytes)
}

func centiKB(bytes int64) int64 {
	// bytes*100/1024 is exact in binary, so halves are real halves and
	// round to even.
	return int64(math.RoundToEven(float64(bytes) * 100 / 1024))
}

// FormatKB prints a size with at least one decimal, e.g. 2.0 or 0.25.
func FormatKB(kb float64) string {
	s := strconv.FormatFloat(kb, 'f', -1, 64)
	if strings.Contains(s, ".") {
		return s
	}
	return s + ".0"
}

// ScanError represents an error encountered during scanning.
type ScanError struct {
	Path    string
	Message string
}

// Totals holds whole-scan counters.
type Totals struct {
	Files   int64
	Bytes   int64
	CentiKB int64
}

// SizeKB returns the summed record sizes in kilobytes.
func (t Totals) SizeKB() float64 {
	return float64(t.CentiKB) / 100
}
