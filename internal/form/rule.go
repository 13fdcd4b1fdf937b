package form

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is shared by every rule. *validator.Validate caches struct
// and tag parsing and is safe for concurrent use.
var validate = validator.New()

// Rule is a single (predicate, message) pair bound to one field.
type Rule[R any] struct {
	// Field is the JSON name of the checked field.
	Field   string
	Check   func(R) bool
	Message string
}

// firstFailure evaluates rules in order and stops at the first failure.
func firstFailure[R any](req R, rules []Rule[R]) (Rule[R], bool) {
	for _, rule := range rules {
		if !rule.Check(req) {
			return rule, true
		}
	}
	return Rule[R]{}, false
}

func trimmed(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}

// requiredText fails when the field is absent or blank after trimming.
func requiredText[R any](field string, get func(R) *string, message string) Rule[R] {
	return Rule[R]{
		Field: field,
		Check: func(r R) bool {
			return trimmed(get(r)) != ""
		},
		Message: message,
	}
}

// textMatching requires the trimmed value to fully match re.
func textMatching[R any](field string, get func(R) *string, re *regexp.Regexp, message string) Rule[R] {
	return Rule[R]{
		Field: field,
		Check: func(r R) bool {
			return re.MatchString(trimmed(get(r)))
		},
		Message: message,
	}
}

// textContaining requires re to match somewhere in the trimmed value.
func textContaining[R any](field string, get func(R) *string, re *regexp.Regexp, message string) Rule[R] {
	return Rule[R]{
		Field: field,
		Check: func(r R) bool {
			return re.FindStringIndex(trimmed(get(r))) != nil
		},
		Message: message,
	}
}

// textSatisfying checks the trimmed value against validator tags,
// e.g. "alphanum" or "email".
func textSatisfying[R any](field string, get func(R) *string, tag string, message string) Rule[R] {
	return Rule[R]{
		Field: field,
		Check: func(r R) bool {
			return validate.Var(trimmed(get(r)), tag) == nil
		},
		Message: message,
	}
}

// present fails when the field was not sent.
func present[R any, T any](field string, get func(R) *T, message string) Rule[R] {
	return Rule[R]{
		Field: field,
		Check: func(r R) bool {
			return get(r) != nil
		},
		Message: message,
	}
}

// intSatisfying checks an integer against validator tags such as
// "min=1", "max=50" or "oneof=1 2 3". An absent value fails.
func intSatisfying[R any](field string, get func(R) *int, tag string, message string) Rule[R] {
	return Rule[R]{
		Field: field,
		Check: func(r R) bool {
			v := get(r)
			return v != nil && validate.Var(*v, tag) == nil
		},
		Message: message,
	}
}

// mustBeTrue fails when the field is absent or false.
func mustBeTrue[R any](field string, get func(R) *bool, message string) Rule[R] {
	return Rule[R]{
		Field: field,
		Check: func(r R) bool {
			v := get(r)
			return v != nil && *v
		},
		Message: message,
	}
}
