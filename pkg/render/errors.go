package render

// RenderError is the only error the engine itself produces. Tree
// traversal, class registration, and stylesheet assembly cannot fail;
// the single failure point is converting rendered bytes to a string
// when the bytes are not valid UTF-8, which can only happen when the
// input tree carried invalid UTF-8 to begin with.
//
// Stream cancellation is not an error: a cancelled stream stops
// cleanly and closes its channel.
type RenderError struct {
	Message string
}

// Error implements the error interface.
func (e *RenderError) Error() string {
	return e.Message
}
