package catalog

import "errors"

var (
	ErrVisaNotFound     = errors.New("visa type not found")
	ErrQuestionNotFound = errors.New("question not found")
	ErrInvalidCatalog   = errors.New("invalid catalog data")
)
