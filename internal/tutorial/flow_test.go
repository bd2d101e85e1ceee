package tutorial_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/sublab/internal/lab"
	"github.com/san-kum/sublab/internal/sim"
	"github.com/san-kum/sublab/internal/surface"
	"github.com/san-kum/sublab/internal/tutorial"
)

var _ = Describe("A learner's walk through the experiment", func() {
	var (
		rec     *surface.Recorder
		session *tutorial.Session
	)

	BeforeEach(func() {
		rec = &surface.Recorder{}
		session = tutorial.NewSession(rec, nil)
		session.Init()

		Expect(session.Advance()).To(BeTrue())
		session.AcknowledgeSafety(true)
		Expect(session.Advance()).To(BeTrue())
		Expect(session.SelectHypothesis(lab.Sublimates)).To(BeTrue())
		Expect(session.Advance()).To(BeTrue())
		Expect(session.Step()).To(Equal(tutorial.StepExperiment))
	})

	Context("when the experiment runs to the end", func() {
		var run int

		BeforeEach(func() {
			var ok bool
			run, ok = session.StartExperiment()
			Expect(ok).To(BeTrue())
			for i := 0; i < lab.CompletionMinute; i++ {
				session.TickRun(run)
			}
		})

		It("completes and stops running", func() {
			st := session.State()
			Expect(st.Experiment.Status).To(Equal(sim.Completed))
			Expect(st.Experiment.Running()).To(BeFalse())
			Expect(st.Experiment.Elapsed).To(Equal(lab.CompletionMinute))
		})

		It("records observations at the even minutes and at minute 13", func() {
			var minutes []int
			for _, o := range session.State().Experiment.Observations {
				minutes = append(minutes, o.Time)
			}
			Expect(minutes).To(Equal([]int{2, 4, 6, 8, 10, 12, 13}))
		})

		It("publishes a row for each observation", func() {
			Expect(rec.Of("observation")).To(HaveLen(7))
		})

		It("unlocks the results without advancing on its own", func() {
			Expect(session.Step()).To(Equal(tutorial.StepExperiment))
			Expect(session.CanAdvance()).To(BeTrue())
		})

		It("congratulates the learner on the last step", func() {
			for session.Advance() {
			}
			Expect(session.Step()).To(Equal(tutorial.StepResults))

			results := rec.Of("result")
			Expect(results).To(HaveLen(1))
			Expect(results[0].(surface.ResultRevealed).Reveal.Correct).To(BeTrue())
		})

		It("ignores further ticks", func() {
			Expect(session.TickRun(run)).To(BeFalse())
			Expect(session.State().Experiment.Observations).To(HaveLen(7))
		})
	})

	Context("when the learner restarts mid-run", func() {
		It("returns to the defaults", func() {
			run, _ := session.StartExperiment()
			session.TickRun(run)
			session.TickRun(run)

			session.Restart()

			st := session.State()
			Expect(st.Step).To(Equal(tutorial.StepWelcome))
			Expect(st.SafetyAcknowledged).To(BeFalse())
			Expect(st.Hypothesis).To(Equal(lab.HypothesisUnset))
			Expect(st.Experiment.Status).To(Equal(sim.Idle))
			Expect(st.Experiment.Temperature).To(Equal(lab.RoomTemperature))
			Expect(st.Experiment.Elapsed).To(BeZero())
			Expect(st.Experiment.Observations).To(BeEmpty())
		})
	})

	Context("when the learner uses the navigation keys", func() {
		It("never leaves the step range", func() {
			for i := 0; i < 20; i++ {
				session.Retreat()
			}
			Expect(session.Step()).To(Equal(tutorial.StepWelcome))
			for i := 0; i < 20; i++ {
				session.Advance()
			}
			Expect(session.Step()).To(Equal(tutorial.StepExperiment))
		})
	})
})
