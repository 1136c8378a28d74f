package snippet

import (
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strings"
)

// Snippet is one code excerpt associated with a security finding, captured
// verbatim from a scan export. Snippets are immutable once produced.
type Snippet struct {
	// ID is the stable identifier of the snippet, unique within a scan.
	// Extraction layers that lack a native hash can derive one with DeriveID.
	ID string `json:"id" yaml:"id"`

	// Code is the raw snippet text.
	Code string `json:"code" yaml:"code"`

	// File is the path of the source file the snippet originates from.
	File string `json:"file,omitempty" yaml:"file,omitempty"`

	// Line is the 1-based starting line of the snippet in File.
	Line int `json:"line,omitempty" yaml:"line,omitempty"`
}

// New creates a Snippet with a content-derived id.
func New(code, file string, line int) Snippet {
	return Snippet{
		ID:   DeriveID(file, line, code),
		Code: code,
		File: file,
		Line: line,
	}
}

// DeriveID builds a deterministic, content-addressable snippet id from the
// originating location and code text. The id is the base64url encoding of
// the first 12 bytes of the SHA-256 digest over a canonical
// "file:line:code" string, so the same snippet always produces the same id
// across scans and processes.
func DeriveID(file string, line int, code string) string {
	canonical := fmt.Sprintf("%s:%d:%s", strings.TrimSpace(file), line, code)
	sum := sha256.Sum256([]byte(canonical))
	return base64.RawURLEncoding.EncodeToString(sum[:12])
}
