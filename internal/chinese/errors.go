package chinese

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDate is returned for a Chinese date that names no real day.
	ErrInvalidDate = errors.New("invalid chinese date")

	// ErrOracleFailure is returned when the ephemeris produces a value the
	// calendar cannot use.
	ErrOracleFailure = errors.New("astronomical oracle failure")

	// ErrOutOfRange is returned for days and dates outside MinYear..MaxYear.
	ErrOutOfRange = errors.New("date out of supported range")
)

// DateError describes why a Chinese date was rejected.
type DateError struct {
	Date   Date
	Reason string
}

func (e *DateError) Error() string {
	return fmt.Sprintf("%s %s: %s", ErrInvalidDate, e.Date, e.Reason)
}

func (e *DateError) Unwrap() error {
	return ErrInvalidDate
}

// IsInvalidDate reports whether err was caused by an invalid Chinese date.
func IsInvalidDate(err error) bool {
	return errors.Is(err, ErrInvalidDate)
}
