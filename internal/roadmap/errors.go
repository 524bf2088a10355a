package roadmap

import (
	"errors"
	"fmt"
)

// Extraction failures. Every one aborts the whole extraction.
var (
	ErrFileAccess       = errors.New("map file not accessible")
	ErrMalformed        = errors.New("malformed map document")
	ErrMissingAttribute = errors.New("missing attribute")
)

// PathError reports where in the document an extraction step failed.
// Each path step is tag[n], n counting the preceding siblings with the same tag.
type PathError struct {
	Path string
	Err  error
}

func (e *PathError) Error() string { return fmt.Sprintf("%s: %v", e.Path, e.Err) }

func (e *PathError) Unwrap() error { return e.Err }
