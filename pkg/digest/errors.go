package digest

import (
	"errors"
	"fmt"
)

var (
	// ErrLengthOverflow is returned when absorbed input would exceed the
	// algorithm's maximum input length, or squeezed output would exceed 2^64-1 bytes.
	ErrLengthOverflow = errors.New("digest: maximum length exceeded")

	// ErrWrongAlgorithm is returned when an operation does not apply to the
	// state's algorithm.
	ErrWrongAlgorithm = errors.New("digest: operation not supported by algorithm")

	// ErrInvalidParameter is returned for unknown algorithms and bad lengths.
	ErrInvalidParameter = errors.New("digest: invalid parameter")

	// ErrOperationOrder is returned for operations that are not valid in the
	// state's current phase.
	ErrOperationOrder = errors.New("digest: operation out of order")

	// ErrNotExtendable is returned by Squeeze on a fixed-length algorithm.
	ErrNotExtendable = fmt.Errorf("%w: not an extendable-output function", ErrWrongAlgorithm)

	// ErrReleased is returned by any operation on a State after Free.
	ErrReleased = fmt.Errorf("%w: state released", ErrOperationOrder)

	// ErrUninitialized is returned by operations on a zero State.
	ErrUninitialized = fmt.Errorf("%w: state not created with New", ErrInvalidParameter)
)
