package aisprint

// FileRecord is a read-only projection of a stored file. Only the fields
// the lister requests are populated; Drive's full metadata is not modeled.
type FileRecord struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
