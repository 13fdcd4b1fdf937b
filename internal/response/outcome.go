package response

// OutcomeKind tags the variant held by an Outcome.
type OutcomeKind int

const (
	KindValid OutcomeKind = iota
	KindInvalid
	KindForced
)

func (k OutcomeKind) String() string {
	switch k {
	case KindValid:
		return "valid"
	case KindInvalid:
		return "invalid"
	case KindForced:
		return "forced"
	}
	return "unknown"
}

// Outcome is the result of validating one form:
//   - Valid: every rule passed.
//   - Invalid: the first failing rule's message.
//   - Forced: a form-specific branch demanded a status code
//     (the Buttons reject/pending options).
type Outcome struct {
	Kind    OutcomeKind
	Message string
	Code    int
}

// Valid returns the passing outcome.
func Valid() Outcome {
	return Outcome{Kind: KindValid}
}

// Invalid returns a field failure carrying message.
func Invalid(message string) Outcome {
	return Outcome{Kind: KindInvalid, Message: message}
}

// Forced returns an outcome that maps to the generic body of code.
func Forced(code int) Outcome {
	return Outcome{Kind: KindForced, Code: code}
}
