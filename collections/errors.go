package collections

import "errors"

var (
	ErrKeyNotFound  = errors.New("key not found")
	ErrElemExisted  = errors.New("element already in set")
	ErrElemNotFound = errors.New("element not in set")
)
