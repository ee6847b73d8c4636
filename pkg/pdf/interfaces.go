package pdf

// Sink persists a finalized byte stream and returns an identifier for it.
// Storage, sharing and retention are the sink's concern; the document core
// performs a single write and never retries.
type Sink interface {
	// Save writes data under the given name and returns a sink-assigned
	// identifier for the stored blob
	Save(name string, data []byte) (string, error)
}

// RowSource supplies table body data as a sequence of key to string-value
// mappings. Host-specific query mechanisms implement this.
type RowSource interface {
	// Rows returns the records in display order
	Rows() ([]Row, error)
}

// StaticRows is a RowSource over an in-memory slice
type StaticRows []Row

// Rows returns the slice unchanged
func (s StaticRows) Rows() ([]Row, error) {
	return []Row(s), nil
}
