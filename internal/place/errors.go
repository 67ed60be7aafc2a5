package place

import "errors"

var ErrNotFound = errors.New("not found")
var ErrDuplicate = errors.New("already in your list")
var ErrNotOwned = errors.New("belongs to another user")
var ErrInvalidInput = errors.New("invalid input")
