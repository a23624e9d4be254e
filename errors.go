package hctree

// Error is the wrapper type for errors specific to this package.
type Error string

func (e Error) Error() string { return "hctree: " + string(e) }

var (
	// ErrDomain reports a request that the code cannot serve, such as
	// encoding a symbol that had zero frequency when the tree was built.
	// It indicates a defect in the caller, not in the data.
	ErrDomain error = Error("symbol outside the code's alphabet")

	// ErrCorrupt reports a header or coded stream that cannot have been
	// produced by this package.
	ErrCorrupt error = Error("stream is corrupted")

	// ErrTooLarge reports an input whose length does not fit in the
	// container's 32-bit length prefix.
	ErrTooLarge error = Error("input is too large")
)
