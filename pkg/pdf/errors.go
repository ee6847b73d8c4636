package pdf

import (
	"github.com/pkg/errors"
)

// Structural errors are raised synchronously and abort the failing call
// with no partial state committed. Input-defaulting problems (malformed
// colors, unknown font names) are never surfaced as errors; they resolve
// to safe defaults and are logged at low severity.
var (
	// ErrNoColumns is returned when a table is drawn without any columns
	ErrNoColumns = errors.New("table: no columns defined")

	// ErrNoTarget is returned when a table renderer has no document bound
	ErrNoTarget = errors.New("table: no output target bound")

	// ErrFinalized is returned by draw calls after the document has been
	// serialized; a document is consumed exactly once
	ErrFinalized = errors.New("document already finalized")
)
