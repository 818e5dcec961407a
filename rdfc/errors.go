package rdfc

import "errors"

var (
	// ErrShapeMismatch reports input or reference data of the wrong shape.
	ErrShapeMismatch = errors.New("rdfc: shape mismatch")
	// ErrInvalidConfiguration reports an unusable sampling rate, notch
	// frequency, order count or duration.
	ErrInvalidConfiguration = errors.New("rdfc: invalid configuration")
	// ErrFilterDesign reports a conditioning filter that cannot be designed
	// at the requested sampling rate.
	ErrFilterDesign = errors.New("rdfc: filter design failed")
	// ErrSeriesTooShort reports a correlation series that became shorter
	// than the rolling window before the last order.
	ErrSeriesTooShort = errors.New("rdfc: series too short")
	// ErrReference reports a missing or malformed reference pattern.
	ErrReference = errors.New("rdfc: invalid reference pattern")
)
