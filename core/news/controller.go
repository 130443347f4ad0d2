// ABOUTME: Fetch-merge controller owning the news grid state
// ABOUTME: Starts a fetch cycle on every page change and cancels superseded cycles

package news

import (
	"context"
	"fmt"
	"sync"

	"newsgrid/core/domain"
	"newsgrid/core/interfaces"
)

// PageFetcher fetches and merges one page of news
type PageFetcher interface {
	FetchPage(ctx context.Context, page int) domain.PageResult
}

// Controller owns a State and runs fetch cycles for it.
//
// Every page change (and the initial Start) begins a new cycle. Starting a
// cycle cancels the context of the previous one, and its result is discarded
// by generation if it still arrives.
type Controller struct {
	fetcher PageFetcher
	logger  interfaces.Logger
	metrics interfaces.Metrics

	mu      sync.Mutex
	state   State
	parent  context.Context
	cancel  context.CancelFunc
	started bool
	closed  bool
	subs    map[int]chan State
	nextSub int

	wg sync.WaitGroup
}

// NewController creates a controller at page 1. No request is made until Start.
func NewController(fetcher PageFetcher, deps interfaces.Dependencies) *Controller {
	c := &Controller{
		fetcher: fetcher,
		logger:  deps.Logger,
		metrics: deps.Metrics,
		state:   NewState(),
		parent:  context.Background(),
		subs:    make(map[int]chan State),
	}
	if c.logger == nil {
		c.logger = nopLogger{}
	}
	if c.metrics == nil {
		c.metrics = interfaces.NopMetrics{}
	}
	return c
}

// Start runs the first cycle with the current page. Cycles derive their
// context from ctx. Calling Start more than once has no effect.
func (c *Controller) Start(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.started || c.closed {
		return
	}
	c.started = true
	if ctx != nil {
		c.parent = ctx
	}
	c.beginLocked()
}

// Next advances the page and starts a cycle for it
func (c *Controller) Next() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return c.state
	}
	c.state = c.state.Next()
	c.pageChangedLocked()
	return c.state
}

// Previous goes back one page and starts a cycle for it. At page 1 nothing
// happens and false is returned.
func (c *Controller) Previous() (State, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return c.state, false
	}
	next, changed := c.state.Previous()
	if !changed {
		return c.state, false
	}
	c.state = next
	c.pageChangedLocked()
	return c.state, true
}

// Refresh starts a new cycle for the current page
func (c *Controller) Refresh() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || !c.started {
		return c.state
	}
	c.beginLocked()
	return c.state
}

// State returns a snapshot of the current state
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Subscribe returns a channel that always holds the latest state. The
// current state is delivered immediately. Intermediate states may be skipped
// by slow readers. The returned func unsubscribes and closes the channel.
func (c *Controller) Subscribe() (<-chan State, func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ch := make(chan State, 1)
	if c.closed {
		close(ch)
		return ch, func() {}
	}

	id := c.nextSub
	c.nextSub++
	c.subs[id] = ch
	ch <- c.state

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			c.mu.Lock()
			defer c.mu.Unlock()
			if sub, ok := c.subs[id]; ok {
				delete(c.subs, id)
				close(sub)
			}
		})
	}
}

// Close cancels any in-flight cycle, closes all subscriptions and waits for
// background work to finish.
func (c *Controller) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	for id, ch := range c.subs {
		delete(c.subs, id)
		close(ch)
	}
	c.mu.Unlock()

	c.wg.Wait()
}

func (c *Controller) pageChangedLocked() {
	if c.started {
		c.beginLocked()
		return
	}
	c.publishLocked()
}

func (c *Controller) beginLocked() {
	if c.cancel != nil {
		c.cancel()
	}

	c.state = c.state.BeginCycle()
	ctx, cancel := context.WithCancel(c.parent)
	c.cancel = cancel

	gen, page := c.state.Generation, c.state.Page
	c.logger.Debug("Fetch cycle started", map[string]interface{}{
		"page":       page,
		"generation": gen,
	})
	c.publishLocked()

	c.wg.Add(1)
	go c.run(ctx, cancel, gen, page)
}

func (c *Controller) run(ctx context.Context, cancel context.CancelFunc, gen uint64, page int) {
	defer c.wg.Done()
	defer cancel()

	var result domain.PageResult
	func() {
		defer func() {
			if r := recover(); r != nil {
				result = domain.PageResult{
					Page:     page,
					Articles: []domain.Article{},
					Err:      fmt.Errorf("fetch cycle panicked: %v", r),
				}
			}
		}()
		result = c.fetcher.FetchPage(ctx, page)
	}()

	c.complete(gen, result)
}

func (c *Controller) complete(gen uint64, result domain.PageResult) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}

	next, ok := c.state.CompleteCycle(gen, result)
	if !ok {
		c.metrics.CycleSuperseded()
		c.logger.Debug("Discarding superseded fetch cycle", map[string]interface{}{
			"page":       result.Page,
			"generation": gen,
			"current":    c.state.Generation,
		})
		return
	}

	c.state = next
	c.cancel = nil
	if result.Err != nil {
		c.logger.Error("Fetch cycle failed", map[string]interface{}{
			"page":  result.Page,
			"error": result.Err.Error(),
		})
	}
	c.publishLocked()
}

func (c *Controller) publishLocked() {
	if c.closed {
		return
	}
	for _, ch := range c.subs {
		select {
		case <-ch:
		default:
		}
		ch <- c.state
	}
}
