package service

import (
	"fmt"
	"unicode/utf8"

	appErrors "github.com/noah-isme/campus-services/pkg/errors"
)

// publicIDLength is the length of a canonical UUID string.
const publicIDLength = 36

// checkPublicID rejects identifiers that cannot be a UUID before any store is touched.
func checkPublicID(resource, id string) error {
	if utf8.RuneCountInString(id) != publicIDLength {
		return appErrors.Clone(appErrors.ErrInvalidInput, fmt.Sprintf("The %s ID needs to be %d characters: %s", resource, publicIDLength, id))
	}
	return nil
}

// streamError separates a consumer failure from a store failure so the
// former is returned untouched.
type streamError struct{ err error }

func (e streamError) Error() string { return e.err.Error() }
func (e streamError) Unwrap() error { return e.err }
