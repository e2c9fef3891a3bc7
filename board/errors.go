package board

import "errors"

var (
	ErrOccupied  = errors.New("position already occupied")
	ErrBadFormat = errors.New("badly formatted board")
)
