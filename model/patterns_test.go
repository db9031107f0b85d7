package model

import (
	"math/rand/v2"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Pattern", func() {
	rng := func() *rand.Rand { return rand.New(rand.NewPCG(4, 0)) }

	It("builds square boards accepted by DefineBoard", func() {
		for _, name := range Patterns() {
			board, err := Pattern(name, 12, 0.1, rng())
			Expect(err).NotTo(HaveOccurred(), name)
			Expect(board).To(HaveLen(12))

			s, _ := New(3)
			Expect(s.DefineBoard(board)).To(Succeed(), name)
			Expect(s.Size()).To(Equal(12))
		}
	})

	It("places a blinker that oscillates", func() {
		board, err := Pattern("blinker", 7, 0, nil)
		Expect(err).NotTo(HaveOccurred())
		s := newDefined(board)
		s.Run(2, false)
		Expect(boardOf(s.View())).To(Equal(board))
	})

	It("rejects unknown names and bad sizes", func() {
		_, err := Pattern("pulsar", 10, 0, rng())
		Expect(err).To(MatchError(ContainSubstring("unknown pattern")))

		_, err = Pattern("glider", 0, 0, rng())
		Expect(err).To(MatchError(ErrInvalidSize))
	})

	It("lists pattern names in order", func() {
		Expect(Patterns()).To(Equal([]string{"blinker", "block", "glider", "interesting", "random"}))
	})
})
