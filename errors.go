package flexcache

import "errors"

// Sentinel errors returned by Cache operations. Check with errors.Is.
var (
	// ErrInvalidArgument is returned for an empty key, a negative byte
	// size, or any other statically invalid argument.
	ErrInvalidArgument = errors.New("flexcache: invalid argument")

	// ErrDuplicateKey is returned by Insert when the key is already
	// present. Any buffers already produced by configured copy hooks for
	// the failing call are released before the error is returned.
	ErrDuplicateKey = errors.New("flexcache: duplicate key")

	// ErrOutOfMemory is returned when a configured KeyCopyFunc or
	// ValueCopyFunc reports allocation failure. The engine rolls back any
	// partially acquired resources for the call before returning it.
	ErrOutOfMemory = errors.New("flexcache: out of memory")
)
