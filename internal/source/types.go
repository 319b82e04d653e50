package source

type (
	// FileID uniquely identifies a source buffer within a FileSet.
	FileID uint32
	// FileFlags encodes metadata about a source buffer.
	FileFlags uint8
)

const (
	// FileVirtual indicates the buffer was added from memory (test, stdin, etc.).
	FileVirtual FileFlags = 1 << iota
)

// File captures metadata and content for a single source buffer.
// Content is kept byte-for-byte as provided: the front end is lossless and
// never normalizes line endings or strips byte-order marks.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32
	Hash    [32]byte
	Flags   FileFlags
}

// LineCol represents a human-readable position in a source buffer.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based
}
