package llm

import "fmt"

// GenerationError indicates the external generation service could not
// fulfill the request (invalid key, quota, network). Handlers map it to
// 503 rather than 500 to signal transience to the caller.
type GenerationError struct {
	Message string
	Cause   error
}

func (e *GenerationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *GenerationError) Unwrap() error {
	return e.Cause
}
