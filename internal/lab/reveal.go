package lab

// Reveal is the outcome shown on the final step.
type Reveal struct {
	Correct  bool
	Headline string
	Choice   string
	Answer   string
	Body     string
}

const answerText = "Naphthalene passed directly from solid to gas (it sublimated)"

// RevealFor compares h with CorrectHypothesis and builds the matching message.
func RevealFor(h Hypothesis) Reveal {
	if h == CorrectHypothesis {
		return Reveal{
			Correct:  true,
			Headline: "Congratulations! Your hypothesis was correct",
			Choice:   h.Label(),
			Answer:   answerText,
			Body: "Naphthalene really did go straight from solid to gas. Some substances " +
				"can vaporize without ever reaching their melting point.",
		}
	}
	return Reveal{
		Correct:  false,
		Headline: "Your hypothesis was not correct",
		Choice:   h.Label(),
		Answer:   answerText,
		Body:     "That's fine! Science is a learning process, and now you know the right answer.",
	}
}
