package wordhord

// Entry represents one headword and its definition recovered from the
// dictionary document.
type Entry struct {
	Word       string `json:"word"`
	Definition string `json:"definition"`
}

// Validate returns an error if the entry contains invalid fields.
func (e *Entry) Validate() error {
	if e.Word == "" {
		return Errorf(EINVALID, "entry word required")
	}
	return nil
}

// Extractor recovers dictionary entries from an HTML document.
type Extractor interface {
	// Extract parses html and returns its entries in document order.
	// Returns EMALFORMED if a paragraph marked as an entry cannot be parsed;
	// no partial result is returned in that case.
	Extract(html string) ([]*Entry, error)
}
