package tax

import "errors"

var (
	ErrBracketNotFound = errors.New("tax bracket not found")
	ErrBracketOverlap  = errors.New("tax bracket overlaps an existing bracket")
	ErrInvalidTaxType  = errors.New("invalid tax type")
)
