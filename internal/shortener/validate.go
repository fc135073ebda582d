package shortener

import "regexp"

const (
	// SlugLength is the number of characters in a generated slug.
	SlugLength = 5
	// KeyLength is the number of characters in a generated key.
	KeyLength = 20
)

// Alphabet is the character set slugs and keys are drawn from.
const Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

var (
	slugPattern = regexp.MustCompile(`^[0-9a-z]{5}$`)
	keyPattern  = regexp.MustCompile(`^[0-9a-z]{20}$`)

	// Requires a http/https scheme and a host; path, query and fragment are free-form.
	fullURLPattern = regexp.MustCompile(`^https?://[0-9A-Za-z]([0-9A-Za-z-]*[0-9A-Za-z])?(\.[0-9A-Za-z]([0-9A-Za-z-]*[0-9A-Za-z])?)*(:\d{1,5})?(/[^\s]*)?$`)
)

// ValidSlug reports whether s is syntactically a slug.
func ValidSlug(s Slug) bool {
	return slugPattern.MatchString(string(s))
}

// ValidKey reports whether k is syntactically a key.
func ValidKey(k Key) bool {
	return keyPattern.MatchString(string(k))
}

// ValidURL reports whether raw matches the full-URL syntax pattern.
func ValidURL(raw string) bool {
	return fullURLPattern.MatchString(raw)
}
