package application

import (
	"sync"
	"time"

	"github.com/bnema/ai-accounts-manager/internal/domain"
	"github.com/bnema/ai-accounts-manager/internal/ports"
)

// Projector turns one nullable target instant into a stream of countdown
// snapshots on a fixed cadence. Retargeting recomputes immediately instead of
// waiting for the next tick; once a snapshot reports expiry no further ticks
// are scheduled until the target changes. Stop disposes the timer for good.
type Projector struct {
	clock    ports.Clock
	interval time.Duration
	emit     func(domain.Countdown)
	done     chan struct{}

	mu      sync.Mutex
	target  *time.Time
	epoch   int
	stopped bool
}

func NewProjector(clock ports.Clock, interval time.Duration, emit func(domain.Countdown)) *Projector {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if interval <= 0 {
		interval = time.Second
	}

	return &Projector{
		clock:    clock,
		interval: interval,
		emit:     emit,
		done:     make(chan struct{}),
	}
}

// SetTarget replaces the projected instant (nil clears it) and emits the
// recomputed countdown right away. A non-expired target starts a fresh tick
// loop; the loop for any previous target dies on its next tick.
func (p *Projector) SetTarget(target *time.Time) {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return
	}
	if target != nil {
		t := *target
		target = &t
	}
	p.target = target
	p.epoch++
	epoch := p.epoch
	p.mu.Unlock()

	countdown := domain.ComputeCountdown(target, p.clock.Now())
	p.emit(countdown)

	if countdown.IsExpired {
		return
	}

	go p.run(epoch)
}

// Stop cancels the projector; no further ticks are scheduled and later
// SetTarget calls become no-ops.
func (p *Projector) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.stopped {
		return
	}
	p.stopped = true
	close(p.done)
}

func (p *Projector) run(epoch int) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-p.done:
			return
		case <-ticker.C:
		}

		p.mu.Lock()
		if p.stopped || p.epoch != epoch {
			p.mu.Unlock()
			return
		}
		target := p.target
		p.mu.Unlock()

		countdown := domain.ComputeCountdown(target, p.clock.Now())
		p.emit(countdown)

		if countdown.IsExpired {
			return
		}
	}
}
