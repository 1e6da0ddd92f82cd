package datastruct

import "go.llib.dev/datastruct/pkg/errorkit"

const (
	// ErrEmpty is returned by operations that require at least one element,
	// while the container has none.
	ErrEmpty errorkit.Error = "datastruct: container is empty"
	// ErrIndexOutOfBounds is returned on positional access outside of [0, Len).
	ErrIndexOutOfBounds errorkit.Error = "datastruct: index is out of bounds"
	// ErrInvalidCursor is returned when a cursor is used after a mutation invalidated it,
	// or when the cursor belongs to a different container instance.
	ErrInvalidCursor errorkit.Error = "datastruct: invalidated cursor"
	// ErrNotFound is returned on a key lookup miss where the key was expected to exist.
	ErrNotFound errorkit.Error = "datastruct: key not found"
)
