package mathutil

import (
	"errors"
	"fmt"
)

// Epsilon is the magnitude below which a vector or quaternion is treated as zero.
const Epsilon = 1e-12

// ErrDomain is matched by every DomainError via errors.Is.
var ErrDomain = errors.New("mathutil: domain error")

// DomainError reports an operation that is undefined for its input,
// e.g. normalizing a zero-length vector.
type DomainError struct {
	Op     string
	Reason string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("mathutil: %s: %s", e.Op, e.Reason)
}

func (e *DomainError) Is(target error) bool {
	return target == ErrDomain
}

func domainErr(op, reason string) error {
	return &DomainError{Op: op, Reason: reason}
}
