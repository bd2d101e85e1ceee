package lab

import (
	"fmt"
	"strings"
)

// Hypothesis is the learner's prediction of what heating naphthalene does.
type Hypothesis string

const (
	HypothesisUnset Hypothesis = ""
	MeltsFirst      Hypothesis = "melts-first"
	Sublimates      Hypothesis = "sublimates"
	NoChange        Hypothesis = "no-change"
)

// CorrectHypothesis is what the experiment demonstrates.
const CorrectHypothesis = Sublimates

// Hypotheses lists the selectable choices in display order.
var Hypotheses = []Hypothesis{MeltsFirst, Sublimates, NoChange}

var hypothesisLabels = map[Hypothesis]string{
	MeltsFirst: "It will melt first, then evaporate",
	Sublimates: "It will pass directly from solid to gas (sublimate)",
	NoChange:   "Nothing will change",
}

// Label returns the human-readable text of h. Unset and unknown values
// read as "Not specified".
func (h Hypothesis) Label() string {
	if l, ok := hypothesisLabels[h]; ok {
		return l
	}
	return "Not specified"
}

func (h Hypothesis) Valid() bool {
	_, ok := hypothesisLabels[h]
	return ok
}

func (h Hypothesis) String() string {
	if h == HypothesisUnset {
		return "unset"
	}
	return string(h)
}

// ParseHypothesis accepts the canonical names plus the 1-based menu index.
func ParseHypothesis(s string) (Hypothesis, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	switch v {
	case "", "unset", "none":
		return HypothesisUnset, nil
	case "1":
		return MeltsFirst, nil
	case "2":
		return Sublimates, nil
	case "3":
		return NoChange, nil
	}
	h := Hypothesis(v)
	if !h.Valid() {
		return HypothesisUnset, fmt.Errorf("%w: %q", ErrUnknownHypothesis, s)
	}
	return h, nil
}
