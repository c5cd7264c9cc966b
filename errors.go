package shellfs

import "errors"

// ErrorKind classifies a [FileError]
type ErrorKind int

const (
	// InvalidOperation means the node variant does not support the operation
	InvalidOperation ErrorKind = iota + 1
	// NotFound means a directory has no entry with the requested name
	NotFound
	// IsADirectory means a file read was attempted on a directory
	IsADirectory
	// AlreadyExists means the requested name is already taken
	AlreadyExists
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidOperation:
		return "InvalidOperation"
	case NotFound:
		return "NotFound"
	case IsADirectory:
		return "IsADirectory"
	case AlreadyExists:
		return "AlreadyExists"
	default:
		return "Unknown"
	}
}

// Sentinels for use with errors.Is; they match any FileError of the same kind.
var (
	ErrInvalidOperation = &FileError{Kind: InvalidOperation}
	ErrNotFound         = &FileError{Kind: NotFound}
	ErrIsADirectory     = &FileError{Kind: IsADirectory}
	ErrAlreadyExists    = &FileError{Kind: AlreadyExists}
)

// FileError is the error returned by every filesystem operation.
// Presentation (command prefixes, coloring) is left to the caller.
type FileError struct {
	Kind ErrorKind
	Name string // entry name the operation was about, if any
	Msg  string // overrides the default text for the kind when set
}

func (e *FileError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	switch e.Kind {
	case NotFound:
		return e.Name + ": No such file or directory"
	case IsADirectory:
		return e.Name + " is a directory"
	case AlreadyExists:
		return e.Name + ": File exists"
	case InvalidOperation:
		return "is a plain file"
	default:
		return "unknown file error"
	}
}

// Is reports a match for any FileError with the same Kind
func (e *FileError) Is(target error) bool {
	t, ok := target.(*FileError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf returns the kind of the first FileError in err's chain, or 0
func KindOf(err error) ErrorKind {
	var fe *FileError
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return 0
}

// NewNotFound returns a NotFound error for name
func NewNotFound(name string) error {
	return &FileError{Kind: NotFound, Name: name}
}

// NewIsADirectory returns an IsADirectory error for name
func NewIsADirectory(name string) error {
	return &FileError{Kind: IsADirectory, Name: name}
}

// NewAlreadyExists returns an AlreadyExists error for name
func NewAlreadyExists(name string) error {
	return &FileError{Kind: AlreadyExists, Name: name}
}

// NewInvalidOperation returns an InvalidOperation error. An empty msg yields
// the plain file wording used when a directory-shaped operation hits a file.
func NewInvalidOperation(name, msg string) error {
	return &FileError{Kind: InvalidOperation, Name: name, Msg: msg}
}
