package maze

import "errors"

// Maze-related errors. Callers match them with errors.Is; the returned errors
// carry the coordinates and maze configuration as context.
var (
	ErrOutOfRange          = errors.New("index out of range")
	ErrInvalidFormat       = errors.New("invalid maze format")
	ErrIO                  = errors.New("maze i/o failure")
	ErrUnsupportedShape    = errors.New("unsupported cell shape")
	ErrInvalidDimensions   = errors.New("invalid maze dimensions")
	ErrUnknownStrategy     = errors.New("unknown generation strategy")
	ErrGenerationInvariant = errors.New("generation invariant violated")
)
