package store

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/db47h/xmllex/lexer"
)

func TestRunRecordsEvents(t *testing.T) {
	s, err := Open(":memory:", slog.Default())
	require.NoError(t, err)

	s.NewRun(true, func() bool { return false }, func() bool { return false })
	s.Emit(lexer.KindElementName, 2, 3, []byte("x p y"), nil)
	s.EmitSimple(lexer.KindElementOpenEnd)
	s.AdvanceLine(3)
	s.Finish(false)

	assert.True(t, s.HTML())

	var events []Event
	require.NoError(t, s.db.Where("run_id = ?", s.run.ID).Order("seq").Find(&events).Error)
	require.Len(t, events, 2)
	assert.Equal(t, "p", events[0].Text)
	assert.False(t, events[0].IsSimple)
	assert.True(t, events[1].IsSimple)

	var run Run
	require.NoError(t, s.db.First(&run, "id = ?", s.run.ID).Error)
	assert.Equal(t, 3, run.Lines)
	assert.False(t, run.Errored)
}

func TestHTMLScriptAndStyleDelegateToCallbacks(t *testing.T) {
	s, err := Open(":memory:", slog.Default())
	require.NoError(t, err)

	s.NewRun(true, func() bool { return true }, func() bool { return false })
	assert.True(t, s.HTMLScript())
	assert.False(t, s.HTMLStyle())
}

func TestHTMLScriptWithoutCallbacksDefaultsFalse(t *testing.T) {
	s, err := Open(":memory:", slog.Default())
	require.NoError(t, err)

	s.NewRun(false, nil, nil)
	assert.False(t, s.HTMLScript())
	assert.False(t, s.HTMLStyle())
}

func TestFinishMarksErrored(t *testing.T) {
	s, err := Open(":memory:", slog.Default())
	require.NoError(t, err)

	s.NewRun(false, nil, nil)
	s.Finish(true)

	var run Run
	require.NoError(t, s.db.First(&run, "id = ?", s.run.ID).Error)
	assert.True(t, run.Errored)
}
