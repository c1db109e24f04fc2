package source

// FileID indexes a file inside its FileSet.
type FileID uint32

// FileFlags records how the content was loaded and normalised.
type FileFlags uint8

const (
	FileVirtual        FileFlags = 1 << iota // added from memory: tests, MCP requests
	FileHadBOM                               // a UTF-8 BOM was stripped
	FileNormalizedCRLF                       // CRLF line ends became LF
	FileTranscoded                           // decoded from a legacy charset
)

// File is one loaded header. Content is UTF-8 with LF line ends, so byte
// offsets in spans are stable across platforms.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32 // offsets of every '\n'
	Hash    [32]byte // sha256 of Content, the cache key
	Flags   FileFlags
}

// LineCol is a 1-based position; Col counts bytes.
type LineCol struct {
	Line uint32
	Col  uint32
}
