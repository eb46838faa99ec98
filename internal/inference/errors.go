package inference

import "errors"

// Sentinel errors returned by the model adapter. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrModelLoadFailed is returned when the model artifact cannot be
	// read or the interpreter cannot be constructed from it.
	ErrModelLoadFailed = errors.New("failed to load model artifact")

	// ErrTensorAllocationFailed is returned when the interpreter cannot
	// allocate its internal tensors at startup.
	ErrTensorAllocationFailed = errors.New("failed to allocate model tensors")

	// ErrInvokeFailed is returned when a forward pass does not complete.
	ErrInvokeFailed = errors.New("model invocation failed")

	// ErrBadInputSize is returned when the supplied tensor does not match
	// the model's expected input element count.
	ErrBadInputSize = errors.New("input tensor size mismatch")

	// ErrUnexpectedOutputShape is returned when the model's output vector
	// does not have one value per known category.
	ErrUnexpectedOutputShape = errors.New("unexpected model output shape")
)
