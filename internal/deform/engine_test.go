package deform_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/bgsbgsbgs42/SpaghettificationApp/internal/astro"
	"github.com/bgsbgsbgs42/SpaghettificationApp/internal/deform"
)

var _ = Describe("Engine", func() {
	var (
		eng    *deform.Engine
		sample astro.Sample
	)

	BeforeEach(func() {
		eng = deform.NewEngine()

		obj, err := astro.Properties(astro.BlackHole, 10)
		Expect(err).NotTo(HaveOccurred())
		sample, err = astro.NewSample(obj, 100)
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("while idle", func() {
		It("emits the identity command", func() {
			cmd := eng.Advance(0.5, sample)
			Expect(cmd).To(Equal(deform.Identity()))
		})

		It("accumulates no stretch however much time passes", func() {
			eng.Advance(100, sample)
			Expect(eng.Stretch()).To(BeZero())
		})

		It("still records the latest sample for display", func() {
			eng.Advance(0.1, sample)
			Expect(eng.LastSample()).To(Equal(sample))
		})
	})

	Describe("after Trigger", func() {
		BeforeEach(func() {
			eng.Trigger()
		})

		It("reports active", func() {
			Expect(eng.Active()).To(BeTrue())
		})

		It("ramps the stretch factor at 0.3 per second", func() {
			eng.Advance(1, sample)
			Expect(eng.Stretch()).To(BeNumerically("~", 0.3, 1e-12))
		})

		It("saturates exactly on the fourth one-second tick", func() {
			for i := 0; i < 3; i++ {
				eng.Advance(1, sample)
			}
			Expect(eng.Stretch()).To(BeNumerically("<", 1))

			eng.Advance(1, sample)
			Expect(eng.Stretch()).To(Equal(1.0))
		})

		It("never overshoots full stretch", func() {
			for i := 0; i < 20; i++ {
				eng.Advance(1, sample)
			}
			Expect(eng.Stretch()).To(Equal(1.0))
		})

		It("treats a negative delta as zero", func() {
			eng.Advance(1, sample)
			before := eng.Stretch()
			eng.Advance(-5, sample)
			Expect(eng.Stretch()).To(Equal(before))
		})

		It("shrinks laterally while stretching longitudinally", func() {
			cmd := eng.Advance(1, sample)
			s := eng.Stretch()

			Expect(cmd.Scale.X).To(BeNumerically("~", 1-0.5*s, 1e-12))
			Expect(cmd.Scale.Z).To(Equal(cmd.Scale.X))
			Expect(cmd.Scale.Y).To(BeNumerically("~", 1+10*s, 1e-12))
			Expect(cmd.Scale.Y).To(BeNumerically(">=", 1))
		})

		It("commands a constant inward drift", func() {
			cmd := eng.Advance(0.5, sample)
			Expect(cmd.Velocity).To(Equal(deform.Vec3{Z: -10}))
		})

		It("ignores repeated triggers", func() {
			eng.Advance(1, sample)
			eng.Trigger()
			Expect(eng.Stretch()).To(BeNumerically("~", 0.3, 1e-12))
		})

		It("does not let the sample pace the ramp", func() {
			hot, err := astro.NewSample(astro.Object{Kind: astro.BlackHole, MassSolar: 100, RadiusKm: 295}, 30)
			Expect(err).NotTo(HaveOccurred())

			eng.Advance(1, hot)
			Expect(eng.Stretch()).To(BeNumerically("~", 0.3, 1e-12))
		})
	})

	Describe("after Stop", func() {
		BeforeEach(func() {
			eng.Trigger()
			eng.Advance(2, sample)
			eng.Stop()
		})

		It("freezes the stretch factor", func() {
			frozen := eng.Stretch()
			eng.Advance(10, sample)
			Expect(eng.Stretch()).To(Equal(frozen))
		})

		It("emits identity commands despite the frozen factor", func() {
			Expect(eng.Stretch()).To(BeNumerically(">", 0))
			cmd := eng.Advance(0.5, sample)
			Expect(cmd).To(Equal(deform.Identity()))
		})

		It("resumes from the frozen factor on a fresh trigger", func() {
			frozen := eng.Stretch()
			eng.Trigger()
			eng.Advance(1, sample)
			Expect(eng.Stretch()).To(BeNumerically("~", frozen+0.3, 1e-12))
		})
	})

	Describe("Reset", func() {
		It("returns a stretching engine to a clean idle", func() {
			eng.Trigger()
			eng.Advance(3, sample)
			eng.Reset()

			Expect(eng.Active()).To(BeFalse())
			Expect(eng.Stretch()).To(BeZero())
		})

		It("clears a frozen factor too", func() {
			eng.Trigger()
			eng.Advance(2, sample)
			eng.Stop()
			eng.Reset()

			Expect(eng.Stretch()).To(BeZero())
		})

		It("is a no-op on an idle engine", func() {
			eng.Reset()
			Expect(eng.Active()).To(BeFalse())
			Expect(eng.Stretch()).To(BeZero())
		})
	})

	Describe("a zero delta", func() {
		It("changes nothing in any state", func() {
			eng.Advance(0, sample)
			Expect(eng.Stretch()).To(BeZero())

			eng.Trigger()
			eng.Advance(1, sample)
			before := eng.Stretch()
			eng.Advance(0, sample)
			Expect(eng.Stretch()).To(Equal(before))
		})
	})
})
