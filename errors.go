package dynarray

import "github.com/pkg/errors"

// ErrIndexOutOfRange is returned by At when the index is not within
// [0, Len()). Test for it with errors.Is.
var ErrIndexOutOfRange = errors.New("index out of range")

func outOfRange(index, size int) error {
	return errors.Wrapf(ErrIndexOutOfRange, "index %d with length %d", index, size)
}
