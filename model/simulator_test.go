package model

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Simulator", func() {
	Describe("New", func() {
		It("creates a random square binary board", func() {
			s, err := New(16, WithSeed(7))
			Expect(err).NotTo(HaveOccurred())
			Expect(s.Size()).To(Equal(16))

			view := s.View()
			Expect(view).To(HaveLen(16))
			for _, row := range view {
				Expect(row).To(HaveLen(16))
				for _, c := range row {
					Expect(c).To(BeNumerically("<=", 1))
				}
			}
		})

		It("is reproducible for a fixed seed", func() {
			a, _ := New(12, WithSeed(42))
			b, _ := New(12, WithSeed(42))
			Expect(a.View()).To(Equal(b.View()))
		})

		It("rejects non-positive sizes", func() {
			for _, size := range []int{0, -3} {
				s, err := New(size)
				Expect(s).To(BeNil())
				Expect(err).To(MatchError(ErrInvalidSize))

				var verr *ValidationError
				Expect(errors.As(err, &verr)).To(BeTrue())
			}
		})
	})

	Describe("DefineBoard", func() {
		var s *Simulator

		BeforeEach(func() {
			var err error
			s, err = New(4, WithSeed(3))
			Expect(err).NotTo(HaveOccurred())
		})

		It("rejects a non-square board and keeps the grid", func() {
			before := s.View()
			err := s.DefineBoard([][]int{{0, 1, 0}, {1, 0, 1}})
			Expect(err).To(MatchError(ErrNotSquare))
			Expect(err.Error()).To(Equal("board must be square"))
			Expect(s.View()).To(Equal(before))
			Expect(s.Size()).To(Equal(4))
		})

		DescribeTable("rejects malformed boards and keeps the grid",
			func(candidate [][]int) {
				before := s.View()
				err := s.DefineBoard(candidate)
				Expect(err).To(MatchError(ErrNotNumeric))
				Expect(err.Error()).To(Equal("board must be a numeric grid"))
				Expect(s.View()).To(Equal(before))
			},
			Entry("nil", [][]int(nil)),
			Entry("no rows", [][]int{}),
			Entry("ragged", [][]int{{0, 1}, {1}}),
			Entry("non-binary value", [][]int{{0, 2}, {1, 0}}),
			Entry("negative value", [][]int{{0, -1}, {1, 0}}),
		)

		It("replaces the grid cell for cell and updates the size", func() {
			candidate := [][]int{
				{1, 0, 0},
				{0, 1, 0},
				{0, 0, 1},
			}
			Expect(s.DefineBoard(candidate)).To(Succeed())
			Expect(s.Size()).To(Equal(3))
			Expect(boardOf(s.View())).To(Equal(candidate))
		})

		It("copies the candidate", func() {
			candidate := [][]int{{1, 1}, {1, 1}}
			Expect(s.DefineBoard(candidate)).To(Succeed())
			candidate[0][0] = 0
			Expect(s.View()[0][0]).To(Equal(uint8(1)))
		})

		It("resets the generation counter", func() {
			s.Run(3, false)
			Expect(s.Generation()).To(Equal(3))
			Expect(s.DefineBoard([][]int{{0}})).To(Succeed())
			Expect(s.Generation()).To(BeZero())
		})
	})

	Describe("Step", func() {
		It("is deterministic for a fixed board", func() {
			seed, _ := New(20, WithSeed(99))
			board := boardOf(seed.View())

			a := newDefined(board)
			b := newDefined(board)
			a.Step()
			b.Step()
			Expect(a.View()).To(Equal(b.View()))
		})

		It("kills a lone live cell in a corner", func() {
			for _, corner := range [][2]int{{0, 0}, {0, 4}, {4, 0}, {4, 4}} {
				board := emptyBoard(5)
				board[corner[0]][corner[1]] = 1
				s := newDefined(board)

				Expect(s.Grid().CountNeighbors(corner[1], corner[0])).To(BeZero())
				s.Step()
				Expect(s.Population()).To(BeZero())
			}
		})

		It("never counts more than 3 neighbors for a corner cell", func() {
			board := [][]int{
				{1, 1, 1},
				{1, 1, 1},
				{1, 1, 1},
			}
			s := newDefined(board)
			Expect(s.Grid().CountNeighbors(0, 0)).To(Equal(3))
			Expect(s.Grid().CountNeighbors(2, 2)).To(Equal(3))
			Expect(s.Grid().CountNeighbors(1, 0)).To(Equal(5))
			Expect(s.Grid().CountNeighbors(1, 1)).To(Equal(8))
		})

		It("gives birth to a dead cell with exactly 3 neighbors", func() {
			s := newDefined([][]int{
				{1, 1, 0},
				{1, 0, 0},
				{0, 0, 0},
			})
			s.Step()
			view := s.View()
			Expect(view[1][1]).To(Equal(uint8(1)))
			Expect(view[2][2]).To(Equal(uint8(0)))
		})

		It("keeps a block still life unchanged", func() {
			board := emptyBoard(6)
			stamp(board, block, 2, 2)
			s := newDefined(board)

			for range 10 {
				s.Step()
				Expect(boardOf(s.View())).To(Equal(board))
			}
		})

		It("oscillates a blinker with period 2", func() {
			horizontal := emptyBoard(5)
			stamp(horizontal, [][]int{{1, 1, 1}}, 1, 2)
			vertical := emptyBoard(5)
			stamp(vertical, [][]int{{1}, {1}, {1}}, 2, 1)

			s := newDefined(horizontal)
			s.Step()
			Expect(boardOf(s.View())).To(Equal(vertical))
			s.Step()
			Expect(boardOf(s.View())).To(Equal(horizontal))
		})

		It("keeps the size and counts generations", func() {
			s, _ := New(9, WithSeed(5))
			s.Step()
			s.Step()
			Expect(s.Size()).To(Equal(9))
			Expect(s.Generation()).To(Equal(2))
		})
	})

	Describe("Run", func() {
		It("steps exactly n times and captures n independent snapshots", func() {
			s, _ := New(10, WithSeed(11))
			reference := newDefined(boardOf(s.View()))

			history := s.Run(5, true)
			Expect(s.Generation()).To(Equal(5))
			Expect(history).To(HaveLen(5))

			for i, snap := range history {
				reference.Step()
				Expect(snap).To(Equal(reference.View()), "generation %d", i+1)
				Expect(&snap[0][0]).NotTo(BeIdenticalTo(&s.Grid().cells[0][0]))
			}

			live := s.View()
			history[4][0][0] ^= 1
			Expect(s.View()).To(Equal(live))
		})

		It("returns nil without capture", func() {
			s, _ := New(4, WithSeed(1))
			Expect(s.Run(3, false)).To(BeNil())
			Expect(s.Generation()).To(Equal(3))
		})

		It("treats zero and negative steps as a no-op", func() {
			s, _ := New(4, WithSeed(1))
			before := s.View()
			Expect(s.Run(0, true)).To(BeEmpty())
			Expect(s.Run(-2, true)).To(BeEmpty())
			Expect(s.View()).To(Equal(before))
			Expect(s.Generation()).To(BeZero())
		})
	})

	Describe("Stream", func() {
		It("hands every generation to the callback", func() {
			s, _ := New(8, WithSeed(2))
			var gens []int
			err := s.Stream(context.Background(), 4, func(gen int, b Board) error {
				gens = append(gens, gen)
				Expect(b.Size()).To(Equal(8))
				return nil
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(gens).To(Equal([]int{1, 2, 3, 4}))
		})

		It("stops on the first callback error", func() {
			s, _ := New(8, WithSeed(2))
			boom := errors.New("boom")
			err := s.Stream(context.Background(), 10, func(gen int, _ Board) error {
				if gen == 3 {
					return boom
				}
				return nil
			})
			Expect(errors.Is(err, boom)).To(BeTrue())
			Expect(s.Generation()).To(Equal(3))
		})

		It("stops when the context is cancelled", func() {
			s, _ := New(8, WithSeed(2))
			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			err := s.Stream(ctx, 10, func(int, Board) error { return nil })
			Expect(errors.Is(err, context.Canceled)).To(BeTrue())
			Expect(s.Generation()).To(BeZero())
		})
	})
})
