// Package pool manages a bounded set of reusable lexer.Lexer values keyed
// by a session identifier, so a long-running host process lexing many
// independent documents doesn't allocate a fresh Lexer (and its backing
// stack array) per document.
package pool

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/google/uuid"

	"github.com/db47h/xmllex/lexer"
)

// Pool hands out *lexer.Lexer values by session ID. Every Lexer that
// leaves the cache — whether released by End or pushed out by LRU
// pressure — is reset and kept on a free list, so Begin only allocates a
// new Lexer when the free list is empty.
type Pool struct {
	cache *lru.Cache[uuid.UUID, *lexer.Lexer]
	free  []*lexer.Lexer
}

// New returns a Pool that holds at most size sessions at once. Exceeding
// size evicts the least recently used session's Lexer onto the free list
// rather than dropping it.
func New(size int) (*Pool, error) {
	p := &Pool{}
	c, err := lru.NewWithEvict[uuid.UUID, *lexer.Lexer](size, func(_ uuid.UUID, l *lexer.Lexer) {
		l.Reset()
		p.free = append(p.free, l)
	})
	if err != nil {
		return nil, fmt.Errorf("pool: %w", err)
	}
	p.cache = c
	return p, nil
}

// Begin starts a new session and returns its ID and a Lexer, drawn from
// the free list when one is available rather than always allocating.
func (p *Pool) Begin() (uuid.UUID, *lexer.Lexer) {
	id := uuid.New()
	var l *lexer.Lexer
	if n := len(p.free); n > 0 {
		l = p.free[n-1]
		p.free = p.free[:n-1]
	} else {
		l = lexer.New()
	}
	p.cache.Add(id, l)
	return id, l
}

// Get returns the Lexer for an in-progress session, or false if id isn't
// known (never begun, or evicted for lack of room).
func (p *Pool) Get(id uuid.UUID) (*lexer.Lexer, bool) {
	return p.cache.Get(id)
}

// End releases a session's Lexer back to the pool for reuse. Removing it
// from the cache triggers the same eviction callback Begin's LRU pressure
// uses, so the Lexer is reset and pushed onto the free list exactly once,
// regardless of which path returned it.
func (p *Pool) End(id uuid.UUID) {
	p.cache.Remove(id)
}

// Len reports how many sessions are currently held.
func (p *Pool) Len() int {
	return p.cache.Len()
}
