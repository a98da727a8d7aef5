package network

import "errors"

var (
	// ErrInvalidPartition signals a partition whose groups are not an exact
	// set-partition of the current peer ids. Topology misuse, fail fast.
	ErrInvalidPartition = errors.New("invalid network partition")

	// ErrInvalidPeer signals a peer id that is negative, unknown, or equal to
	// its counterpart where two distinct peers are required.
	ErrInvalidPeer = errors.New("invalid peer id")
)
