package pool

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBeginGetEnd(t *testing.T) {
	p, err := New(4)
	assert.NoError(t, err)

	id, l := p.Begin()
	assert.NotNil(t, l)

	got, ok := p.Get(id)
	assert.True(t, ok)
	assert.Same(t, l, got)

	p.End(id)
	_, ok = p.Get(id)
	assert.False(t, ok)
}

func TestEvictionUnderPressure(t *testing.T) {
	p, err := New(2)
	assert.NoError(t, err)

	id1, _ := p.Begin()
	_, _ = p.Begin()
	_, _ = p.Begin() // evicts id1, the least recently used

	_, ok := p.Get(id1)
	assert.False(t, ok)
	assert.Equal(t, 2, p.Len())
}

func TestEndRecyclesLexerForReuse(t *testing.T) {
	p, err := New(4)
	assert.NoError(t, err)

	id, l := p.Begin()
	p.End(id)

	_, l2 := p.Begin()
	assert.Same(t, l, l2)
}

func TestEvictionRecyclesLexerForReuse(t *testing.T) {
	p, err := New(1)
	assert.NoError(t, err)

	_, l1 := p.Begin()
	_, _ = p.Begin() // evicts the first session's Lexer onto the free list

	_, l3 := p.Begin()
	assert.Same(t, l1, l3)
}
