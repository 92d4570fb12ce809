package replay_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/algoviz/internal/replay"
	"github.com/san-kum/algoviz/internal/sorts"
)

var _ = Describe("Scheduler", func() {
	var (
		clock *manualClock
		rec   *recorder
		s     *replay.Scheduler
		input []int
		req   replay.Request
	)

	BeforeEach(func() {
		clock = &manualClock{}
		rec = &recorder{}
		s = replay.New(rec.Render, replay.WithClock(clock))
		input = []int{6, 5, 4, 3, 2, 1}
		req = sortRequest("Bubble Sort", sorts.Bubble, input)
	})

	It("starts idle", func() {
		Expect(s.State()).To(Equal(replay.Idle))
		Expect(s.Active()).To(BeNil())
		Expect(s.Stop()).To(BeFalse())
		Expect(rec.Frames()).To(BeEmpty())
	})

	Context("while running", func() {
		var sess *replay.Session

		BeforeEach(func() {
			sess = s.Start(req)
		})

		It("arms the first tick immediately", func() {
			Expect(s.State()).To(Equal(replay.Running))
			Expect(clock.All()).To(HaveLen(1))
			Expect(clock.All()[0].delay).To(BeZero())
			Expect(rec.Frames()).To(BeEmpty())
		})

		It("applies exactly one move per tick", func() {
			clock.Fire()
			clock.Fire()
			frames := rec.Frames()
			Expect(frames).To(HaveLen(2))
			want, err := req.Log[:2].Replay(input)
			Expect(err).NotTo(HaveOccurred())
			Expect(frames[1].Array).To(Equal(want))
			Expect(clock.Pending()).To(Equal(1))
		})

		It("returns to idle once the log is exhausted", func() {
			clock.Drain()
			Expect(s.State()).To(Equal(replay.Idle))
			Expect(sess.Done()).To(BeClosed())
			Expect(sess.Outcome()).To(Equal(replay.OutcomeSorted))
			Expect(rec.Last().Array).To(Equal([]int{1, 2, 3, 4, 5, 6}))
		})

		Describe("Stop", func() {
			BeforeEach(func() {
				clock.Fire()
				clock.Fire()
				clock.Fire()
			})

			It("leaves the array as of the last applied move", func() {
				Expect(s.Stop()).To(BeTrue())

				want, err := req.Log[:3].Replay(input)
				Expect(err).NotTo(HaveOccurred())
				last := rec.Last()
				Expect(last.Array).To(Equal(want))
				Expect(last.Outcome).To(Equal(replay.OutcomeStopped))
				Expect(last.Detail).To(Equal("Sorting stopped."))
			})

			It("cancels the pending tick", func() {
				s.Stop()
				Expect(clock.Pending()).To(BeZero())
				Expect(clock.Fire()).To(BeFalse())
				Expect(rec.Frames()).To(HaveLen(4))
			})

			It("settles in idle and finishes the session", func() {
				s.Stop()
				Expect(s.State()).To(Equal(replay.Idle))
				Expect(sess.Done()).To(BeClosed())
				Expect(sess.Outcome()).To(Equal(replay.OutcomeStopped))
				Expect(s.Stop()).To(BeFalse())
			})

			It("ignores a tick that was already due", func() {
				stale := clock.All()[3]
				s.Stop()
				stale.fn()
				Expect(rec.Frames()).To(HaveLen(4))
			})
		})

		Describe("restarting", func() {
			var second replay.Request

			BeforeEach(func() {
				clock.Fire()
				second = sortRequest("Selection Sort", sorts.Selection, []int{3, 1, 2})
			})

			It("stops the old session before the new one renders", func() {
				next := s.Start(second)
				Expect(sess.Done()).To(BeClosed())
				Expect(sess.Outcome()).To(Equal(replay.OutcomeStopped))
				Expect(next.ID()).NotTo(Equal(sess.ID()))

				clock.Drain()
				frames := rec.Frames()
				Expect(frames[1].Outcome).To(Equal(replay.OutcomeStopped))
				Expect(frames[len(frames)-1].Array).To(Equal([]int{1, 2, 3}))
			})

			It("never applies a move from the old log", func() {
				var oldTicks []*manualTimer
				oldTicks = append(oldTicks, clock.All()...)
				s.Start(second)

				for _, t := range oldTicks {
					t.fn()
				}
				clock.Drain()

				for _, f := range rec.Frames()[2:] {
					Expect(f.Array).To(HaveLen(3))
				}
				Expect(rec.Last().Outcome).To(Equal(replay.OutcomeSorted))
				Expect(rec.Last().Label).To(HavePrefix("Selection Sort"))
			})
		})
	})

	It("reports the stopped state while the stop frame renders", func() {
		var seen []replay.State
		s = replay.New(func(f replay.Frame) {
			if f.Outcome == replay.OutcomeStopped {
				seen = append(seen, s.State())
			}
		}, replay.WithClock(clock))

		s.Start(req)
		clock.Fire()
		s.Stop()

		Expect(seen).To(Equal([]replay.State{replay.Stopped}))
		Expect(s.State()).To(Equal(replay.Idle))
	})
})
