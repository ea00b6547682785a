package core

import (
	"errors"
)

var (
	ErrConfiguration = errors.New("invalid recipient type")
	ErrType          = errors.New("unsupported value type")
	ErrFormat        = errors.New("invalid field format")
	ErrRequiredField = errors.New("required field missing")
	ErrRange         = errors.New("amount out of range")
	ErrRecordTooLong = errors.New("record exceeds maximum length")
)
