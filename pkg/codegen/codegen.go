// Package codegen generates human-readable document codes: a prefix plus a
// zero-padded sequence number, with a timestamp-based fallback when the
// sequential code is already taken. Uniqueness is check-then-use, best
// effort only; callers must still handle collisions at the database level.
package codegen

import (
	"fmt"
	"time"
)

// Sequential builds "<prefix><count+1>" zero-padded to six digits,
// e.g. Sequential("DH", 41) == "DH000042".
func Sequential(prefix string, count int64) string {
	return fmt.Sprintf("%s%06d", prefix, count+1)
}

// Fallback builds a timestamp-based code used when the sequential code
// collides with an existing row.
func Fallback(prefix string) string {
	return fmt.Sprintf("%s%d", prefix, time.Now().UnixMilli())
}
