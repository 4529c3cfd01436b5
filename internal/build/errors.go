package build

import "fmt"

// Rule identifies which validation rule a document failed.
type Rule string

const (
	RuleNotAnObject           Rule = "not_an_object"
	RuleMissingOrInvalidName  Rule = "missing_or_invalid_name"
	RuleMissingOrInvalidRace  Rule = "missing_or_invalid_race"
	RuleMissingOrInvalidSteps Rule = "missing_or_invalid_steps"
	RuleInvalidStep           Rule = "invalid_step"
)

// ValidationError reports the first rule a document violated. For
// RuleInvalidStep, StepIndex identifies the offending step; for
// document-level rules it is -1.
//
// Validation failures are user-facing and non-fatal: the previously active
// document, if any, stays in effect.
type ValidationError struct {
	Rule      Rule
	StepIndex int
}

func (e *ValidationError) Error() string {
	switch e.Rule {
	case RuleNotAnObject:
		return "build document is not a JSON object"
	case RuleMissingOrInvalidName:
		return "build document is missing a text \"name\""
	case RuleMissingOrInvalidRace:
		return "build document is missing a text \"race\""
	case RuleMissingOrInvalidSteps:
		return "build document is missing a \"steps\" array"
	case RuleInvalidStep:
		return fmt.Sprintf("step %d is malformed (needs text \"time\", numeric \"supply\", text \"action\")", e.StepIndex)
	}
	return fmt.Sprintf("build document failed validation (%s)", e.Rule)
}

// ParseError wraps a JSON decode failure. Like validation failures it is
// recoverable; a document that cannot be parsed simply never replaces the
// current one.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("build document is not valid JSON: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
