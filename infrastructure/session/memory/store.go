// ABOUTME: In-memory session registry for live news controllers using go-cache
// ABOUTME: Sessions expire after an idle TTL and eviction closes their controller

package memory

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"newsgrid/core/errors"
	"newsgrid/core/interfaces"
	"newsgrid/core/news"
)

// Store keeps one Controller per session id
type Store struct {
	// mu serializes deletes so each session is reported deleted once
	mu sync.Mutex

	cache    *cache.Cache
	ttl      time.Duration
	logger   interfaces.Logger
	onChange func(active int)
}

// Option customizes a Store
type Option func(*Store)

// WithLogger logs session lifecycle events
func WithLogger(logger interfaces.Logger) Option {
	return func(s *Store) { s.logger = logger }
}

// WithCountObserver is called with the number of live sessions after every
// add or eviction.
func WithCountObserver(fn func(active int)) Option {
	return func(s *Store) { s.onChange = fn }
}

// NewStore creates a registry whose sessions expire after ttl without access.
// A cleanupInterval of zero disables the background janitor; Sweep can then
// be called explicitly.
func NewStore(ttl, cleanupInterval time.Duration, opts ...Option) *Store {
	s := &Store{
		cache: cache.New(ttl, cleanupInterval),
		ttl:   ttl,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.cache.OnEvicted(func(id string, v interface{}) {
		if c, ok := v.(*news.Controller); ok {
			c.Close()
		}
		s.log("Session closed", map[string]interface{}{"session_id": id})
		s.notify()
	})

	return s
}

// Add registers c under a fresh id
func (s *Store) Add(c *news.Controller) string {
	id := uuid.New().String()
	s.cache.Set(id, c, s.ttl)
	s.log("Session created", map[string]interface{}{"session_id": id})
	s.notify()
	return id
}

// Get returns the controller for id and extends its idle deadline
func (s *Store) Get(id string) (*news.Controller, error) {
	v, ok := s.cache.Get(id)
	if !ok {
		return nil, &errors.NotFoundError{Resource: "session", ID: id}
	}
	c := v.(*news.Controller)

	// Replace fails if the session was deleted or expired after the lookup,
	// so a closed controller is never reinserted.
	if err := s.cache.Replace(id, c, s.ttl); err != nil {
		return nil, &errors.NotFoundError{Resource: "session", ID: id}
	}
	return c, nil
}

// Delete removes and closes the session
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.cache.Get(id); !ok {
		return &errors.NotFoundError{Resource: "session", ID: id}
	}
	s.cache.Delete(id)
	return nil
}

// Count reports live sessions, including expired ones not yet swept
func (s *Store) Count() int {
	return s.cache.ItemCount()
}

// Sweep evicts expired sessions now
func (s *Store) Sweep() {
	s.cache.DeleteExpired()
}

// Close evicts every session
func (s *Store) Close() {
	s.cache.DeleteExpired()
	for id := range s.cache.Items() {
		s.cache.Delete(id)
	}
}

func (s *Store) notify() {
	if s.onChange != nil {
		s.onChange(s.cache.ItemCount())
	}
}

func (s *Store) log(msg string, fields map[string]interface{}) {
	if s.logger != nil {
		s.logger.Debug(msg, fields)
	}
}
