package errors

import (
	"unicode"
)

// maxElementIDLength bounds caller-supplied DOM ids.
const maxElementIDLength = 256

// ValidateElementID checks a caller-supplied DOM element id before it is
// spliced into an HTML attribute and a JavaScript string literal.
//
// Rules:
//   - No empty ids
//   - No whitespace or control characters
//   - No quotes, angle brackets, backslashes or ampersands
//   - Maximum length of 256 characters
func ValidateElementID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidElementID, "element id cannot be empty")
	}
	if len(id) > maxElementIDLength {
		return New(ErrCodeInvalidElementID, "element id too long (max %d characters)", maxElementIDLength)
	}
	for _, r := range id {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidElementID, "element id contains whitespace or control characters")
		}
		switch r {
		case '"', '\'', '<', '>', '\\', '&', '`':
			return New(ErrCodeInvalidElementID, "element id contains invalid character: %q", r)
		}
	}
	return nil
}
