package hierarchy

import "errors"

var (
	// ErrInvalidTarget is returned when a structural operation is attempted
	// on the wrong node kind, e.g. adding a child to a tag or duplicating
	// a tag.
	ErrInvalidTarget = errors.New("operation not valid for this node kind")

	// ErrBlankName is returned when a node name is empty after trimming
	// whitespace.
	ErrBlankName = errors.New("name must not be blank")

	// ErrRootImmutable is returned when the root folder would be removed,
	// moved or duplicated.
	ErrRootImmutable = errors.New("the root folder cannot be removed, moved or duplicated")

	// ErrCycle is returned when a move would make a folder a descendant of
	// itself, including dropping a node onto itself.
	ErrCycle = errors.New("move would make the node its own descendant")

	// ErrNotFound is returned when a node id does not resolve in this
	// hierarchy.
	ErrNotFound = errors.New("node not found")

	// ErrLoad is returned when a hierarchy document cannot be decoded. The
	// caller's in-memory hierarchy is left untouched.
	ErrLoad = errors.New("invalid hierarchy document")
)
