package design

import "errors"

var (
	// ErrInvalidParams reports band edges, ripple or Q values that cannot
	// describe a realizable filter at the given sample rate.
	ErrInvalidParams = errors.New("design: invalid parameters")

	// ErrDesignFailed reports a numerically degenerate design.
	ErrDesignFailed = errors.New("design: design failed")
)
