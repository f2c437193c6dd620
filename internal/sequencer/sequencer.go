package sequencer

import (
	"sync"

	"github.com/Zachkp/gridpath/internal/layout"
	"github.com/Zachkp/gridpath/internal/logger"
	"github.com/Zachkp/gridpath/internal/search"
	"github.com/sirupsen/logrus"
)

const subscriberBuffer = 8

// Sequencer runs one animation cycle. It is safe for concurrent use; every
// event is applied under a single lock, so phases never overlap and at most
// one timer is outstanding.
type Sequencer struct {
	mu      sync.Mutex
	cfg     Config
	clock   Clock
	planner Planner
	log     logrus.FieldLogger
	onCycle func(CycleReport)

	state   State
	timer   Timer
	timerID uint64
	closed  bool

	subs    map[int]chan Snapshot
	nextSub int
}

// Option customises a Sequencer built by New.
type Option func(*Sequencer)

func WithClock(c Clock) Option { return func(s *Sequencer) { s.clock = c } }

func WithPlanner(p Planner) Option { return func(s *Sequencer) { s.planner = p } }

func WithLogger(l logrus.FieldLogger) Option { return func(s *Sequencer) { s.log = l } }

// WithCycleHook is called, under the sequencer lock, each time a full path
// has been revealed. It must not call back into the Sequencer.
func WithCycleHook(f func(CycleReport)) Option { return func(s *Sequencer) { s.onCycle = f } }

// New returns an idle sequencer on the real clock with the default Generator
// as planner. Nothing runs until Configure.
func New(cfg Config, opts ...Option) *Sequencer {
	cfg = cfg.normalized()
	s := &Sequencer{
		cfg:   cfg,
		clock: RealClock{},
		log:   logger.Log,
		state: NewState(),
		subs:  make(map[int]chan Snapshot),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.planner == nil {
		s.planner = NewGenerator(cfg)
	}
	return s
}

// Configure starts, or restarts, the cycle on the given grid. An invalid grid
// leaves the sequencer idle.
func (s *Sequencer) Configure(grid search.Grid, reserved []layout.Rect) {
	s.apply(Configure{Grid: grid, Reserved: reserved})
}

// Suspend stops the cycle where it is. Nothing advances until Resume.
func (s *Sequencer) Suspend() { s.apply(Suspend{}) }

// Resume discards the suspended cycle and starts over on the new grid.
func (s *Sequencer) Resume(grid search.Grid, reserved []layout.Rect) {
	s.apply(Resume{Grid: grid, Reserved: reserved})
}

func (s *Sequencer) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Snapshot()
}

// Subscribe returns a channel of snapshots, one per applied event. A slow
// reader loses older frames, never the newest.
func (s *Sequencer) Subscribe() (<-chan Snapshot, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch := make(chan Snapshot, subscriberBuffer)
	if s.closed {
		close(ch)
		return ch, func() {}
	}
	id := s.nextSub
	s.nextSub++
	s.subs[id] = ch
	ch <- s.state.Snapshot()

	return ch, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if sub, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(sub)
		}
	}
}

// Close stops the timer and closes every subscription. Later calls are no-ops.
func (s *Sequencer) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.stopTimer()
	for id, ch := range s.subs {
		close(ch)
		delete(s.subs, id)
	}
}

func (s *Sequencer) apply(ev Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.dispatch(ev)
}

// dispatch runs ev and any events its effects produce, then publishes once.
func (s *Sequencer) dispatch(ev Event) {
	queue := []Event{ev}
	for len(queue) > 0 {
		ev, queue = queue[0], queue[1:]

		before := s.state.Phase
		next, effs := Transition(s.cfg, s.state, ev)
		s.state = next
		if next.Phase != before {
			s.log.WithFields(logrus.Fields{
				"from":  before,
				"to":    next.Phase,
				"cycle": next.Cycle,
			}).Debug("phase changed")
		}

		for _, eff := range effs {
			switch eff.Kind {
			case EffectCancel:
				s.stopTimer()
			case EffectSchedule:
				s.startTimer(eff)
			case EffectGenerate:
				queue = append(queue, s.generate(eff.Epoch))
			case EffectCycleComplete:
				if s.onCycle != nil {
					s.onCycle(s.state.report())
				}
			}
		}

		if next.Phase == PhaseRetry && before != PhaseRetry {
			s.log.WithFields(logrus.Fields{
				"grid":    next.Grid,
				"retries": next.Retries,
			}).Info("no path found, regenerating layout")
		}
	}
	s.publish()
}

func (s *Sequencer) generate(epoch int) Event {
	board, result := s.planner.Plan(s.state.Grid, s.state.Reserved)
	s.log.WithFields(logrus.Fields{
		"grid":   s.state.Grid,
		"walls":  len(board.Walls),
		"start":  board.Start.String(),
		"end":    board.End.String(),
		"steps":  len(result.SearchSteps),
		"length": len(result.Path),
	}).Debug("layout generated")
	return Generated{Epoch: epoch, Board: board, Result: result}
}

func (s *Sequencer) startTimer(eff Effect) {
	s.stopTimer()
	s.timerID++
	id := s.timerID
	s.timer = s.clock.AfterFunc(eff.Delay, func() { s.fire(id) })
}

func (s *Sequencer) stopTimer() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.timerID++
}

// fire ignores callbacks from timers that were stopped or replaced after they
// had already been handed to the runtime.
func (s *Sequencer) fire(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || id != s.timerID {
		return
	}
	s.timer = nil
	s.dispatch(Tick{})
}

func (s *Sequencer) publish() {
	if len(s.subs) == 0 {
		return
	}
	snap := s.state.Snapshot()
	for _, ch := range s.subs {
		select {
		case ch <- snap:
			continue
		default:
		}
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- snap:
		default:
		}
	}
}
