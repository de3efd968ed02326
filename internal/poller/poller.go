// Package poller drives resolution cycles: a fixed-cadence ticker while live
// auto-refresh is on, plus immediate cycles on selection changes and manual
// refreshes. Every cycle carries a monotonically increasing sequence number
// and a response is only applied if no newer cycle already landed, so slow
// fetches can never roll the dashboard back to stale data.
package poller

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"traffic-dashboard/internal/model"
)

type Resolver interface {
	Resolve(ctx context.Context, sel model.Selection, now time.Time) (model.Snapshot, error)
}

type Poller struct {
	resolver Resolver
	interval time.Duration
	log      zerolog.Logger

	mu        sync.RWMutex
	selection model.Selection
	snapshot  model.Snapshot
	applied   uint64
	nextSeq   uint64

	refresh chan struct{}
	stop    chan struct{}
	done    chan struct{}
}

func New(resolver Resolver, interval time.Duration, initial model.Selection, log zerolog.Logger) *Poller {
	return &Poller{
		resolver:  resolver,
		interval:  interval,
		log:       log,
		selection: initial,
		refresh:   make(chan struct{}, 1),
		stop:      make(chan struct{}),
		done:      make(chan struct{}),
	}
}

// Run blocks until Stop is called. In-flight fetches are not cancelled on
// selection changes; the sequence guard discards their results instead.
func (p *Poller) Run() {
	defer close(p.done)

	p.startCycle()

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-p.stop:
			return
		case <-p.refresh:
			p.startCycle()
		case <-ticker.C:
			if p.Selection().Polls() {
				p.startCycle()
			}
		}
	}
}

func (p *Poller) Stop() {
	close(p.stop)
	<-p.done
}

// Refresh schedules an immediate cycle. Coalesces if one is already pending.
func (p *Poller) Refresh() {
	select {
	case p.refresh <- struct{}{}:
	default:
	}
}

func (p *Poller) Snapshot() model.Snapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.snapshot
}

func (p *Poller) Selection() model.Selection {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.selection
}

// SetSelection swaps the active selection and triggers an immediate cycle.
func (p *Poller) SetSelection(sel model.Selection) {
	p.mu.Lock()
	p.selection = sel
	p.mu.Unlock()
	p.Refresh()
}

// startCycle captures now and the selection once, assigns the next sequence
// number and resolves in the background so a slow upstream cannot block the
// ticker.
func (p *Poller) startCycle() {
	p.mu.Lock()
	p.nextSeq++
	seq := p.nextSeq
	sel := p.selection
	p.mu.Unlock()

	now := time.Now()
	cycleID := uuid.New()

	go func() {
		snapshot, err := p.resolver.Resolve(context.Background(), sel, now)
		if err != nil {
			p.log.Warn().Err(err).Uint64("seq", seq).Str("cycle_id", cycleID.String()).Msg("resolution cycle failed")
			return
		}
		snapshot.Sequence = seq
		p.apply(snapshot, cycleID)
	}()
}

func (p *Poller) apply(snapshot model.Snapshot, cycleID uuid.UUID) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if snapshot.Sequence <= p.applied {
		p.log.Debug().
			Uint64("seq", snapshot.Sequence).
			Uint64("applied", p.applied).
			Str("cycle_id", cycleID.String()).
			Msg("discarding stale cycle result")
		return
	}
	p.applied = snapshot.Sequence
	p.snapshot = snapshot
}
