package tutorial

// Step is a 1-based position in the tutorial.
type Step int

const (
	StepWelcome Step = iota + 1
	StepSafety
	StepHypothesis
	StepExperiment
	StepObservations
	StepExplanation
	StepResults
)

// TotalSteps is the length of the flow.
const TotalSteps = int(StepResults)

type StepInfo struct {
	Title string
	Body  []string
}

var stepInfo = map[Step]StepInfo{
	StepWelcome: {
		Title: "Sublimation of Naphthalene",
		Body: []string{
			"In this experiment you will heat naphthalene and watch what happens to it.",
			"Some substances turn straight from a solid into a gas without melting first.",
			"This change is called sublimation. The reverse, gas to solid, is called deposition.",
		},
	},
	StepSafety: {
		Title: "Safety Briefing",
		Body: []string{
			"Wear safety goggles and gloves for the whole experiment.",
			"Naphthalene vapor is harmful: work in a well-ventilated room.",
			"Never touch the heater or the hot glassware.",
			"Keep flammable materials away from the heat source.",
			"Tell your instructor right away if anything goes wrong.",
		},
	},
	StepHypothesis: {
		Title: "Make a Hypothesis",
		Body: []string{
			"What do you think will happen when naphthalene is heated?",
		},
	},
	StepExperiment: {
		Title: "Run the Experiment",
		Body: []string{
			"A watch glass with naphthalene sits on the heater.",
			"A cold glass is held above it to catch the vapor.",
			"Start the experiment and watch the temperature and the apparatus.",
		},
	},
	StepObservations: {
		Title: "Observations",
		Body: []string{
			"These are the readings recorded during the experiment.",
		},
	},
	StepExplanation: {
		Title: "What Happened?",
		Body: []string{
			"The naphthalene shrank without turning into a liquid: it sublimated.",
			"The white vapor rose and met the cold glass.",
			"On the cold surface the vapor turned straight back into solid crystals: deposition.",
			"Frost on a winter window forms the same way from water vapor.",
		},
	},
	StepResults: {
		Title: "Results",
		Body: []string{
			"Let's compare your hypothesis with what the experiment showed.",
		},
	},
}

// Info returns the content of step s.
func (s Step) Info() StepInfo { return stepInfo[s] }

func (s Step) Valid() bool { return s >= StepWelcome && s <= StepResults }
