package generator

import (
	"errors"
	"time"
)

var (
	// ErrInvalidBlockID is returned when the block id falls outside the
	// open range (0,100).
	ErrInvalidBlockID = errors.New("block_id must be in the range (0,100)")

	// ErrInvalidTimestamp is returned when the unix time does not map to
	// a usable UTC calendar date.
	ErrInvalidTimestamp = errors.New("unixtime is invalid")
)

// Make mints an ID for namespace at the current wall-clock time.
func (r *Registry) Make(namespace string, blockID int) (uint64, error) {
	return r.MakeAt(namespace, blockID, time.Now().Unix())
}

// MakeAt mints an ID for namespace at an explicit unix time.
// Validation short-circuits: the counter is never advanced on a failed
// call. The namespace must have been Init-ed; see NextSeed.
func (r *Registry) MakeAt(namespace string, blockID int, unixtime int64) (uint64, error) {
	if blockID <= 0 || blockID >= 100 {
		return 0, ErrInvalidBlockID
	}
	t := time.Unix(unixtime, 0).UTC()
	if t.Year() < 1 {
		return 0, ErrInvalidTimestamp
	}
	return Encode(t, blockID, r.NextSeed(namespace)), nil
}
