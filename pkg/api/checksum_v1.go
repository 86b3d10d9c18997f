// pkg/api/checksum_v1.go
package api

// ChecksumV1 is the stable JSON/JSONL schema for one checksummed sequence.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type ChecksumV1 struct {
	ID          string `json:"id"`
	Description string `json:"description,omitempty"`
	Type        string `json:"type"` // "seguid" | "slseguid" | "scseguid" | "dlseguid" | "dcseguid"
	Length      int    `json:"length"`
	Checksum    string `json:"checksum"`
	Message     string `json:"message,omitempty"`
	SourceFile  string `json:"source_file,omitempty"`
}
