package hal

import (
	"context"
	"time"
)

// Pacer limits a loop to a fixed rate by sleeping until the next deadline.
//
// Deadlines advance by a fixed period regardless of how long the frame took,
// so short frames absorb long ones. If the loop falls more than one period
// behind, the schedule restarts from now instead of bursting.
type Pacer struct {
	period time.Duration
	next   time.Time

	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error
}

// NewPacer returns a pacer for fps frames per second. fps <= 0 disables
// pacing.
func NewPacer(fps float64) *Pacer {
	p := &Pacer{now: time.Now, sleep: sleepCtx}
	if fps > 0 {
		p.period = time.Duration(float64(time.Second) / fps)
	}
	return p
}

// Period returns the frame period, or 0 when pacing is disabled.
func (p *Pacer) Period() time.Duration { return p.period }

// Wait sleeps until the next frame deadline.
func (p *Pacer) Wait(ctx context.Context) error {
	if p.period <= 0 {
		return ctx.Err()
	}
	now := p.now()
	if p.next.IsZero() {
		p.next = now
	}
	p.next = p.next.Add(p.period)
	if d := p.next.Sub(now); d > 0 {
		return p.sleep(ctx, d)
	}
	if now.Sub(p.next) > p.period {
		p.next = now
	}
	return ctx.Err()
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
