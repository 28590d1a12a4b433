package background_test

import (
	"errors"
	"math"
	"math/rand"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/netbg/internal/background"
	"github.com/san-kum/netbg/internal/event"
	"github.com/san-kum/netbg/internal/field"
	"github.com/san-kum/netbg/internal/render"
	"github.com/san-kum/netbg/internal/schedule"
)

const seed = 1234

var _ = Describe("Engine", func() {
	var (
		bus    *event.Bus
		frame  *schedule.Frame
		rec    *render.Recorder
		target *background.StaticTarget
		engine *background.Engine
	)

	BeforeEach(func() {
		bus = event.NewBus()
		frame = schedule.NewFrame()
		rec = &render.Recorder{}
		target = &background.StaticTarget{Width: 800, Height: 600, Surface: rec}
		opts := background.DefaultOptions()
		opts.Seed = seed
		engine = background.New(bus, frame, opts)
	})

	AfterEach(func() {
		engine.Detach()
	})

	Describe("Attach", func() {
		It("builds a store from the density law and starts the loop", func() {
			Expect(engine.Attach(target, false)).To(Succeed())
			Expect(engine.Attached()).To(BeTrue())
			Expect(engine.Snapshot().Particles).To(HaveLen(32))
			Expect(frame.Running()).To(BeTrue())
			Expect(bus.Listeners(event.Resize)).To(Equal(1))
			Expect(bus.Listeners(event.PointerMove)).To(Equal(1))
			Expect(bus.Listeners(event.PointerLeave)).To(Equal(1))
		})

		It("paints a frame per tick", func() {
			Expect(engine.Attach(target, true)).To(Succeed())
			Expect(frame.Fire()).To(BeTrue())
			Expect(frame.Fire()).To(BeTrue())

			Expect(engine.Frames()).To(BeEquivalentTo(2))
			Expect(rec.Clears).To(Equal(2))
			Expect(rec.Count(render.OpCircle)).To(Equal(32))
			Expect(engine.Stats().Particles).To(Equal(32))
		})

		It("fails with ErrSurfaceUnavailable and sets nothing up", func() {
			cause := errors.New("no 2d context")
			target.Err = cause

			err := engine.Attach(target, false)
			Expect(err).To(MatchError(background.ErrSurfaceUnavailable))
			Expect(errors.Is(err, cause)).To(BeTrue())
			Expect(engine.Attached()).To(BeFalse())
			Expect(frame.Running()).To(BeFalse())
			Expect(bus.Total()).To(BeZero())
		})

		It("treats a nil surface as unavailable", func() {
			target.Surface = nil
			Expect(engine.Attach(target, false)).To(MatchError(background.ErrSurfaceUnavailable))
			Expect(bus.Total()).To(BeZero())
		})

		It("does not double the loop when attached twice", func() {
			Expect(engine.Attach(target, false)).To(Succeed())
			Expect(engine.Attach(target, false)).To(Succeed())
			Expect(bus.Total()).To(Equal(3))

			frame.Fire()
			Expect(engine.Frames()).To(BeEquivalentTo(1))
		})
	})

	Describe("Detach", func() {
		It("is idempotent and leaves nothing scheduled or subscribed", func() {
			Expect(engine.Attach(target, false)).To(Succeed())
			engine.Detach()
			engine.Detach()

			Expect(engine.Attached()).To(BeFalse())
			Expect(frame.Running()).To(BeFalse())
			Expect(frame.Fire()).To(BeFalse())
			Expect(bus.Total()).To(BeZero())
		})

		It("is safe after a failed attach", func() {
			target.Err = errors.New("gone")
			Expect(engine.Attach(target, false)).NotTo(Succeed())
			Expect(engine.Detach).NotTo(Panic())
			Expect(bus.Total()).To(BeZero())
		})

		It("stops reacting to events", func() {
			Expect(engine.Attach(target, false)).To(Succeed())
			engine.Detach()
			bus.Publish(event.NewResize(4000, 3000))
			Expect(engine.Snapshot().Particles).To(HaveLen(32))
		})
	})

	Describe("layout events", func() {
		It("regenerates the store within the new bounds on resize", func() {
			Expect(engine.Attach(target, false)).To(Succeed())
			bus.Publish(event.NewResize(4000, 3000))

			snap := engine.Snapshot()
			Expect(snap.Width).To(Equal(4000.0))
			Expect(snap.Height).To(Equal(3000.0))
			Expect(snap.Particles).To(HaveLen(100))

			bus.Publish(event.NewResize(300, 200))
			snap = engine.Snapshot()
			Expect(snap.Particles).To(HaveLen(4))
			for _, p := range snap.Particles {
				Expect(p.X).To(BeNumerically(">=", 0))
				Expect(p.X).To(BeNumerically("<=", 300))
				Expect(p.Y).To(BeNumerically(">=", 0))
				Expect(p.Y).To(BeNumerically("<=", 200))
			}
		})
	})

	Describe("pointer events", func() {
		It("tracks presence and absence", func() {
			Expect(engine.Attach(target, false)).To(Succeed())
			Expect(engine.Snapshot().Pointer.Present()).To(BeFalse())

			bus.Publish(event.NewPointerMove(120, 80))
			x, y, ok := engine.Snapshot().Pointer.Position()
			Expect(ok).To(BeTrue())
			Expect(x).To(Equal(120.0))
			Expect(y).To(Equal(80.0))

			bus.Publish(event.NewPointerLeave())
			Expect(engine.Snapshot().Pointer.Present()).To(BeFalse())
		})

		It("draws pointer links only while present", func() {
			Expect(engine.Attach(target, false)).To(Succeed())
			bus.Publish(event.NewPointerMove(400, 300))
			frame.Fire()

			expected := 0
			for _, p := range engine.Snapshot().Particles {
				if math.Hypot(p.X-400, p.Y-300) < render.DefaultPointerDistance {
					expected++
				}
			}
			Expect(engine.Stats().PointerLinks).To(Equal(expected))

			bus.Publish(event.NewPointerLeave())
			frame.Fire()
			Expect(engine.Stats().PointerLinks).To(BeZero())
		})
	})

	Describe("theme switch", func() {
		It("restarts from a fresh store with the new palette", func() {
			Expect(engine.Attach(target, false)).To(Succeed())
			for i := 0; i < 50; i++ {
				frame.Fire()
			}
			Expect(engine.Palette()).To(Equal(render.SchemeTeal.Light))

			Expect(engine.SetTheme(true)).To(Succeed())
			Expect(engine.Dark()).To(BeTrue())
			Expect(engine.Palette()).To(Equal(render.SchemeTeal.Dark))
			Expect(engine.Frames()).To(BeZero())

			fresh := field.Initialize(rand.New(rand.NewSource(seed)), 800, 600, field.DefaultParams())
			Expect(engine.Snapshot().Particles).To(Equal(fresh))
			Expect(bus.Total()).To(Equal(3))
			Expect(frame.Running()).To(BeTrue())
		})

		It("drops the pointer on restart", func() {
			Expect(engine.Attach(target, false)).To(Succeed())
			bus.Publish(event.NewPointerMove(10, 10))
			Expect(engine.SetTheme(true)).To(Succeed())
			Expect(engine.Snapshot().Pointer.Present()).To(BeFalse())
		})

		It("is a no-op when the flag is unchanged", func() {
			Expect(engine.Attach(target, true)).To(Succeed())
			frame.Fire()
			Expect(engine.SetTheme(true)).To(Succeed())
			Expect(engine.Frames()).To(BeEquivalentTo(1))
		})

		It("requires an attached engine", func() {
			Expect(engine.SetTheme(true)).To(MatchError(background.ErrNotAttached))
		})

		It("restarts on scheme change", func() {
			Expect(engine.Attach(target, true)).To(Succeed())
			frame.Fire()
			Expect(engine.SetScheme(render.SchemeOcean)).To(Succeed())
			Expect(engine.Palette()).To(Equal(render.SchemeOcean.Dark))
			Expect(engine.Frames()).To(BeZero())
		})
	})

	Describe("with a ticker", func() {
		It("runs concurrently with events and stops on detach", func() {
			tk := schedule.NewTicker(240)
			opts := background.DefaultOptions()
			opts.Seed = seed
			e := background.New(bus, tk, opts)
			Expect(e.Attach(target, true)).To(Succeed())

			for i := 0; i < 20; i++ {
				bus.Publish(event.NewPointerMove(float64(i*10), 100))
				bus.Publish(event.NewResize(800+float64(i), 600))
			}
			Eventually(e.Frames, time.Second).Should(BeNumerically(">=", 3))

			e.Detach()
			n := e.Frames()
			Consistently(e.Frames, 50*time.Millisecond).Should(Equal(n))
			Expect(tk.Running()).To(BeFalse())
			Expect(bus.Total()).To(BeZero())
		})
	})
})
