// Package build defines the build-order document model and its validator.
// A document arrives as untrusted JSON (embedded default, cached file,
// uploaded file, or remote URL) and must pass Validate before the rest of
// the application trusts it.
package build

import (
	"encoding/json"
)

// BuildStep is one scheduled action: a game-clock timestamp, the supply
// count at that point, and a description of what to do.
type BuildStep struct {
	Time   string  `json:"time"`
	Supply float64 `json:"supply"`
	Action string  `json:"action"`
}

// BuildDocument is an ordered build-order schedule. Step order is
// significant; it defines the execution sequence.
//
// Raw holds the original JSON bytes so the document can be cached verbatim,
// unknown fields included. The schema is forward-compatible: extra keys on
// the document or on any step are accepted and ignored, never rejected.
type BuildDocument struct {
	Name  string      `json:"name"`
	Race  string      `json:"race"`
	Steps []BuildStep `json:"steps"`

	Raw []byte `json:"-"`
}

// ParseDocument decodes and validates raw JSON bytes into a BuildDocument.
// Malformed JSON yields a *ParseError; a well-formed value with the wrong
// shape yields a *ValidationError. The returned document retains the input
// bytes in Raw.
func ParseDocument(data []byte) (*BuildDocument, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &ParseError{Err: err}
	}
	if err := Validate(raw); err != nil {
		return nil, err
	}

	var doc BuildDocument
	// Validate guarantees the recognized fields decode cleanly; steps may
	// still carry extra keys, which encoding/json drops from the typed view
	// while Raw preserves them.
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &ParseError{Err: err}
	}
	doc.Raw = data
	return &doc, nil
}

// Validate checks that an untrusted decoded JSON value conforms to the
// build-order shape. Rules apply top-down and short-circuit on the first
// failure:
//
//  1. the value must be a non-null object
//  2. "name" must be text
//  3. "race" must be text (any string; races are not a closed enum)
//  4. "steps" must be an array (it may be empty)
//  5. each step, in order, must be an object with text "time", numeric
//     "supply", and text "action"
//
// Unknown keys at either level never cause failure. Validate has no side
// effects and does not mutate its argument.
func Validate(raw any) error {
	obj, ok := raw.(map[string]any)
	if !ok || obj == nil {
		return &ValidationError{Rule: RuleNotAnObject, StepIndex: -1}
	}
	if _, ok := obj["name"].(string); !ok {
		return &ValidationError{Rule: RuleMissingOrInvalidName, StepIndex: -1}
	}
	if _, ok := obj["race"].(string); !ok {
		return &ValidationError{Rule: RuleMissingOrInvalidRace, StepIndex: -1}
	}
	steps, ok := obj["steps"].([]any)
	if !ok {
		return &ValidationError{Rule: RuleMissingOrInvalidSteps, StepIndex: -1}
	}
	for i, s := range steps {
		step, ok := s.(map[string]any)
		if !ok || step == nil {
			return &ValidationError{Rule: RuleInvalidStep, StepIndex: i}
		}
		if _, ok := step["time"].(string); !ok {
			return &ValidationError{Rule: RuleInvalidStep, StepIndex: i}
		}
		if _, ok := step["supply"].(float64); !ok {
			return &ValidationError{Rule: RuleInvalidStep, StepIndex: i}
		}
		if _, ok := step["action"].(string); !ok {
			return &ValidationError{Rule: RuleInvalidStep, StepIndex: i}
		}
	}
	return nil
}
