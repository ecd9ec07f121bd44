package util

import (
	"regexp"
	"unicode"
)

var usernameValidCharsRegex = regexp.MustCompile(`^[A-Za-z0-9\-._@]+$`)

// IsValidUsername validates the forum username taken from an SSH session.
// Returns (true, "") if valid, or (false, "error message") if invalid.
func IsValidUsername(username string) (bool, string) {
	if len(username) == 0 {
		return false, "Username must be at least 1 character"
	}

	if len(username) > 100 {
		return false, "Username must be at most 100 characters"
	}

	if !usernameValidCharsRegex.MatchString(username) {
		return false, "Username contains invalid characters. Only A-Z, a-z, 0-9, and -._@ are allowed"
	}

	for _, r := range username {
		if unicode.IsControl(r) || !unicode.IsPrint(r) {
			return false, "Username contains non-printable characters"
		}
	}

	return true, ""
}
