package model

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("StagnationTracker", func() {
	var tracker StagnationTracker

	BeforeEach(func() {
		tracker.Reset()
	})

	observe := func(s *Simulator, steps int) {
		for range steps {
			tracker.Observe(s.Grid())
			s.Step()
		}
	}

	It("needs a few observations before reporting", func() {
		s := newDefined(func() [][]int {
			b := emptyBoard(6)
			stamp(b, block, 2, 2)
			return b
		}())
		observe(s, 2)
		Expect(tracker.IsStagnant(s.Grid())).To(BeFalse())
		observe(s, 1)
		Expect(tracker.IsStagnant(s.Grid())).To(BeTrue())
	})

	It("detects a period-2 oscillator", func() {
		b := emptyBoard(5)
		stamp(b, blinker, 1, 2)
		s := newDefined(b)
		observe(s, 4)
		Expect(tracker.IsStagnant(s.Grid())).To(BeTrue())
	})

	It("does not flag a glider in open space", func() {
		b := emptyBoard(20)
		stamp(b, glider, 1, 1)
		s := newDefined(b)
		observe(s, 4)
		Expect(tracker.IsStagnant(s.Grid())).To(BeFalse())
	})
})
