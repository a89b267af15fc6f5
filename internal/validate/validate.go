package validate

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	reSlug   = regexp.MustCompile(`^[a-z0-9](?:[a-z0-9-]{0,62})$`)
	reID     = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
	reEmail  = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	rePhone  = regexp.MustCompile(`^\+?[0-9][0-9 ]{5,19}$`)
	rePostal = regexp.MustCompile(`^[0-9]{4,10}$`)
)

// Slug validates a merchant slug as it appears in the URL path.
func Slug(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reSlug.MatchString(s)
}

// ID validates a product or variant identifier.
func ID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reID.MatchString(s)
}

func Email(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s) > 80 {
		return "", false
	}
	return s, reEmail.MatchString(s)
}

// Phone is optional at checkout: empty passes, anything else must look like
// a phone number.
func Phone(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", true
	}
	return s, rePhone.MatchString(s)
}

func Qty(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 1
	}
	// Hard cap to keep abuse out; real stock limits apply later.
	if n > 99 {
		return 99
	}
	return n
}

// UpdateQty parses a cart-update quantity. Zero, negatives and garbage all
// map to 0, which callers treat as line removal.
func UpdateQty(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	if n > 99 {
		return 99
	}
	return n
}

// Name validates a displayable customer name.
func Name(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 60 {
		return "", false
	}
	return s, true
}

// City is optional unless a street is given; length-checked only.
func City(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) > 60 {
		return "", false
	}
	return s, true
}

// Postal is optional: empty passes.
func Postal(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", true
	}
	return s, rePostal.MatchString(s)
}

// Notes truncates free-form order notes to a sane length.
func Notes(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > 500 {
		s = s[:500]
	}
	return s
}
