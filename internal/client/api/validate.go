package api

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	minCustomLength = 3
	maxCustomLength = 20
)

var alnumOnly = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

// reservedWords cannot be used as custom short codes; they collide with
// application routes or common infrastructure names. Mirrors the server's
// list so rejection happens before the request is sent.
var reservedWords = map[string]struct{}{
	"admin": {}, "api": {}, "www": {}, "mail": {}, "ftp": {}, "localhost": {},
	"about": {}, "contact": {}, "help": {}, "support": {}, "login": {},
	"logout": {}, "register": {}, "signup": {}, "signin": {}, "dashboard": {},
	"settings": {}, "profile": {}, "account": {}, "delete": {}, "edit": {},
	"create": {}, "update": {}, "new": {}, "old": {}, "test": {}, "demo": {},
	"example": {}, "shorten": {}, "url": {}, "link": {}, "stats": {},
	"analytics": {}, "report": {}, "export": {}, "import": {}, "search": {},
	"filter": {}, "sort": {}, "page": {}, "next": {}, "prev": {}, "first": {},
	"last": {}, "home": {},
}

// ValidateCustomShort checks a caller-supplied short code. An empty code is
// valid (the server generates one).
func ValidateCustomShort(customShort string) error {
	if customShort == "" {
		return nil
	}
	if len(customShort) < minCustomLength {
		return fmt.Errorf("custom short code must be at least %d characters", minCustomLength)
	}
	if len(customShort) > maxCustomLength {
		return fmt.Errorf("custom short code must be at most %d characters", maxCustomLength)
	}
	if !alnumOnly.MatchString(customShort) {
		return fmt.Errorf("custom short code must contain only alphanumeric characters (a-z, A-Z, 0-9)")
	}
	if _, ok := reservedWords[strings.ToLower(customShort)]; ok {
		return fmt.Errorf("'%s' is a reserved word and cannot be used", customShort)
	}
	return nil
}
