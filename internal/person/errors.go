package person

import "errors"

var (
	// ErrFormat marks a malformed record line: wrong field count, or a date,
	// number or position that cannot be parsed.
	ErrFormat = errors.New("invalid format of input string")

	// ErrFutureBirthDate marks a birth date later than the current moment.
	ErrFutureBirthDate = errors.New("birth date cannot be in the future")
)
