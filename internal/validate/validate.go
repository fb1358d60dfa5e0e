package validate

import (
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	reEmail = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	reBlood = regexp.MustCompile(`^(A|B|AB|O)[+-]$`)
)

func Email(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s) > 100 {
		return "", false
	}
	return s, reEmail.MatchString(s)
}

func BloodGroup(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, reBlood.MatchString(s)
}

// ObjectID parses a 24-char hex document id.
func ObjectID(s string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(strings.TrimSpace(s))
	return id, err == nil
}

// StatusFilter normalizes an optional status query value. Frontends send the
// literal strings "null" and "undefined" when nothing is selected; those and
// the empty string mean "no filter".
func StatusFilter(s string) (string, bool) {
	s = strings.TrimSpace(s)
	switch s {
	case "", "null", "undefined":
		return "", false
	}
	return s, true
}
