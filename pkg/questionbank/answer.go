package questionbank

// AnswerKind discriminates the two answer shapes a question can take.
type AnswerKind int

const (
	AnswerSingle AnswerKind = iota
	AnswerMultiple
)

// AnswerValue is a tagged union: exactly one token for a single-choice
// question, or a non-empty token set for a multi-select question. The zero
// value is an empty single answer and never validates.
type AnswerValue struct {
	kind   AnswerKind
	single string
	tokens []string
}

// SingleAnswer wraps one option token.
func SingleAnswer(token string) AnswerValue {
	return AnswerValue{kind: AnswerSingle, single: token}
}

// MultipleAnswer wraps a set of option tokens.
func MultipleAnswer(tokens ...string) AnswerValue {
	copied := make([]string, len(tokens))
	copy(copied, tokens)
	return AnswerValue{kind: AnswerMultiple, tokens: copied}
}

func (a AnswerValue) Kind() AnswerKind { return a.kind }

// Tokens returns the answer's tokens regardless of shape.
func (a AnswerValue) Tokens() []string {
	if a.kind == AnswerSingle {
		if a.single == "" {
			return nil
		}
		return []string{a.single}
	}
	return a.tokens
}

// Single returns the token of a single-shaped answer, or "" otherwise.
func (a AnswerValue) Single() string {
	if a.kind == AnswerSingle {
		return a.single
	}
	return ""
}

// MatchesCardinality reports whether the answer shape fits the question:
// single questions take exactly one token, multi-select questions take a
// non-empty set.
func (a AnswerValue) MatchesCardinality(q Question) bool {
	if q.Multiple {
		return a.kind == AnswerMultiple && len(a.tokens) > 0
	}
	return a.kind == AnswerSingle && a.single != ""
}
