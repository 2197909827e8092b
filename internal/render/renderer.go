package render

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/veaveberg/qreate/internal/corner"
	"github.com/veaveberg/qreate/pkg/log"
)

var (
	// ErrSuperseded is returned by a run whose input was replaced before it
	// finished. Its result is discarded.
	ErrSuperseded = errors.New("render: superseded by a newer input")
	// ErrNotReady means no successful run has completed for the latest input.
	ErrNotReady = errors.New("render: not ready")
)

// Renderer keeps the document for the most recent input. A new Update
// cancels the run in flight; only the latest input may publish a result.
type Renderer struct {
	pipeline *Pipeline

	mu        sync.Mutex
	seq       uint64
	cancel    context.CancelFunc
	current   *Document
	placement corner.Placement
	ready     bool
}

func NewRenderer(p *Pipeline) *Renderer {
	return &Renderer{
		pipeline:  p,
		placement: corner.DefaultPlacement(),
	}
}

// Update renders in and publishes the result unless a newer Update started
// meanwhile, in which case it returns ErrSuperseded.
func (r *Renderer) Update(ctx context.Context, in Input) (*Document, error) {
	return r.execute(r.begin(ctx), in)
}

// run is one generation pass. Its id is fixed when the input arrives, not
// when the pass is scheduled.
type run struct {
	id     uint64
	ctx    context.Context
	cancel context.CancelFunc
}

// begin numbers a new run and cancels the one in flight.
func (r *Renderer) begin(ctx context.Context) run {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	if r.cancel != nil {
		r.cancel()
	}
	runCtx, cancel := context.WithCancel(ctx)
	r.cancel = cancel
	r.ready = false
	return run{id: r.seq, ctx: runCtx, cancel: cancel}
}

func (r *Renderer) execute(rn run, in Input) (*Document, error) {
	defer rn.cancel()
	doc, err := r.pipeline.Generate(rn.ctx, in)
	return r.finish(rn, doc, err)
}

// finish publishes the outcome of rn if no newer run has begun.
func (r *Renderer) finish(rn run, doc *Document, err error) (*Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if rn.id != r.seq {
		log.Debug(log.Fields{"run": rn.id, "latest": r.seq}, "[render.Renderer] discarding superseded run")
		return nil, ErrSuperseded
	}
	r.cancel = nil

	if err != nil {
		r.current = nil
		return nil, err
	}
	r.current = doc
	r.placement = doc.Placement
	r.ready = true
	return doc, nil
}

// Current returns the published document, or ErrNotReady.
func (r *Renderer) Current() (*Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.ready || r.current == nil {
		return nil, ErrNotReady
	}
	return r.current, nil
}

func (r *Renderer) Ready() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ready
}

// Placement returns the corner placement of the last published document,
// or the default placement before the first one.
func (r *Renderer) Placement() corner.Placement {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.placement
}

// Watch renders every input received on inputs once it has been stable for
// debounce, and passes each non-superseded result to onResult. Calls to
// onResult never overlap and never go back to an older input than one already
// delivered. onResult runs without the renderer lock held, so it may call
// Current, Ready or Placement. A pending input is flushed when inputs is
// closed. Watch returns once ctx is done or inputs is closed and every started
// run has finished.
func (r *Renderer) Watch(ctx context.Context, inputs <-chan Input, debounce time.Duration, onResult func(*Document, error)) {
	var (
		wg        sync.WaitGroup
		pending   *Input
		deliverMu sync.Mutex
		delivered uint64
	)
	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer wg.Wait()

	fire := func() {
		in := *pending
		pending = nil
		rn := r.begin(ctx)
		wg.Add(1)
		go func() {
			defer wg.Done()
			doc, err := r.execute(rn, in)
			if errors.Is(err, ErrSuperseded) {
				return
			}

			deliverMu.Lock()
			defer deliverMu.Unlock()
			if rn.id <= delivered {
				return
			}
			delivered = rn.id
			onResult(doc, err)
		}()
	}

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case in, ok := <-inputs:
			if !ok {
				timer.Stop()
				if pending != nil {
					fire()
				}
				return
			}
			pending = &in
			if debounce <= 0 {
				fire()
				continue
			}
			timer.Reset(debounce)
		case <-timer.C:
			if pending != nil {
				fire()
			}
		}
	}
}
