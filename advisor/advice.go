package advisor

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/etnz/zenith"
	"github.com/pkg/errors"
)

// Advice is the structured answer of the model.
type Advice struct {
	Reasoning   string
	Suggestions []Suggestion // in the model's order
}

// Suggestion is a single rebalancing suggestion.
type Suggestion struct {
	Action     Action
	Label      string // action as answered by the model
	Asset      string
	Percentage zenith.Percent // target allocation
	Rationale  string
}

// wire format, pointers detect missing fields.
type wireAdvice struct {
	Reasoning   *string           `json:"reasoning"`
	Suggestions *[]wireSuggestion `json:"suggestions"`
}

type wireSuggestion struct {
	Action     *string  `json:"action"`
	Asset      *string  `json:"asset"`
	Percentage *float64 `json:"percentage"`
	Rationale  *string  `json:"rationale"`
}

// ParseAdvice strictly decodes a model answer: exactly one JSON object with all the
// required fields and no unknown ones.
func ParseAdvice(text []byte) (*Advice, error) {
	dec := json.NewDecoder(bytes.NewReader(text))
	dec.DisallowUnknownFields()

	var w wireAdvice
	if err := dec.Decode(&w); err != nil {
		return nil, errors.Wrap(err, "decoding advice")
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("unexpected data after the advice object")
	}

	if w.Reasoning == nil {
		return nil, errors.New("missing field \"reasoning\"")
	}
	if w.Suggestions == nil {
		return nil, errors.New("missing field \"suggestions\"")
	}

	advice := &Advice{
		Reasoning:   *w.Reasoning,
		Suggestions: make([]Suggestion, 0, len(*w.Suggestions)),
	}
	for i, s := range *w.Suggestions {
		switch {
		case s.Action == nil:
			return nil, errors.Errorf("suggestion %d: missing field \"action\"", i)
		case s.Asset == nil:
			return nil, errors.Errorf("suggestion %d: missing field \"asset\"", i)
		case s.Percentage == nil:
			return nil, errors.Errorf("suggestion %d: missing field \"percentage\"", i)
		case s.Rationale == nil:
			return nil, errors.Errorf("suggestion %d: missing field \"rationale\"", i)
		}
		advice.Suggestions = append(advice.Suggestions, Suggestion{
			Action:     ParseAction(*s.Action),
			Label:      *s.Action,
			Asset:      *s.Asset,
			Percentage: zenith.Pct(*s.Percentage),
			Rationale:  *s.Rationale,
		})
	}
	return advice, nil
}
