// Package shellfs contains core domain types shared by the in-memory
// filesystem and the shell front end that drives it
package shellfs

// FileType tags which variant a filesystem node holds
type FileType int

const (
	PlainType FileType = iota
	DirectoryType
)

// String renders the type tag the way diagnostics print it
func (t FileType) String() string {
	switch t {
	case PlainType:
		return "PLAIN_TYPE"
	case DirectoryType:
		return "DIRECTORY_TYPE"
	default:
		return "UNKNOWN_TYPE"
	}
}
