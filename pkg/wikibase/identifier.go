package wikibase

import (
	"fmt"
	"regexp"
	"strings"
)

// Identifier names one item in the knowledge graph, like "Q42".
//
// Values of this type are always normalized (upper case "Q" + digits).
// Use ParseIdentifier to get one.
type Identifier string

var identifierPattern = regexp.MustCompile(`^Q[0-9]+$`)

// ParseIdentifier validates the shape of an item identifier.
//
// Matching is case-insensitive; the result is upper-cased ("q42" -> "Q42").
//
// # Returns
//
// - Identifier: normalized identifier
//
// - error: ErrInvalidIdentifier (wrapped) when s is empty or malformed.
func ParseIdentifier(s string) (Identifier, error) {
	if s == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidIdentifier)
	}
	u := strings.ToUpper(s)
	if !identifierPattern.MatchString(u) {
		return "", fmt.Errorf("%w: %q", ErrInvalidIdentifier, s)
	}
	return Identifier(u), nil
}

func (id Identifier) String() string {
	return string(id)
}
