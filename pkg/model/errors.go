package model

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is returned when an index falls outside [0, length).
	ErrOutOfRange = errors.New("index out of range")

	// ErrEmptyCollection is returned when a collection is built with no records.
	ErrEmptyCollection = errors.New("tutorial collection is empty")
)

// OutOfRangeError carries the offending index and the collection length.
type OutOfRangeError struct {
	Index  int
	Length int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("index %d out of range [0, %d)", e.Index, e.Length)
}

// Is lets errors.Is match ErrOutOfRange.
func (e *OutOfRangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

// CheckIndex returns an *OutOfRangeError unless 0 <= index < length.
func CheckIndex(index, length int) error {
	if index < 0 || index >= length {
		return &OutOfRangeError{Index: index, Length: length}
	}
	return nil
}
