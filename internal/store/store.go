// Package store persists a lexer run's event stream to SQLite via GORM,
// for offline inspection of what a scan produced. It is a lexer.Host
// implementation; nothing in the lexer package depends on it.
package store

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/ncruces/go-strftime"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/db47h/xmllex/lexer"
)

// Event is one recorded lexer.Host call, keyed by its run and its
// sequence number within that run.
type Event struct {
	ID       uint   `gorm:"primaryKey"`
	RunID    string `gorm:"index"`
	Seq      int
	Kind     string
	Text     string
	IsSimple bool
}

// Run records one Advance-driven scan: when it started, how many lines it
// flushed, and whether it ended in the error machine.
type Run struct {
	ID        string `gorm:"primaryKey"`
	StartedAt time.Time
	Lines     int
	Errored   bool
}

// Store is a lexer.Host that writes every event to a SQLite database via
// GORM, grounded on btouchard-gmx's gorm.Open(sqlite.Open(...)) +
// AutoMigrate pattern.
type Store struct {
	db      *gorm.DB
	log     *slog.Logger
	run     Run
	seq     int
	html    bool
	isScrpt func() bool
	isStyle func() bool
}

// Open opens (creating if needed) a SQLite database at path and prepares
// it to record lexer runs.
func Open(path string, log *slog.Logger) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}
	if err := db.AutoMigrate(&Run{}, &Event{}); err != nil {
		return nil, fmt.Errorf("store: migrate: %w", err)
	}
	if log == nil {
		log = slog.Default()
	}
	return &Store{db: db, log: log}, nil
}

// NewRun starts recording a new run, identified by a fresh UUID. html,
// isScript, and isStyle answer the lexer.Host queries of the same name;
// Store has no opinion of its own about the document being scanned.
func (s *Store) NewRun(html bool, isScript, isStyle func() bool) {
	s.run = Run{ID: uuid.NewString(), StartedAt: time.Now()}
	s.seq = 0
	s.html = html
	s.isScrpt = isScript
	s.isStyle = isStyle
	if err := s.db.Create(&s.run).Error; err != nil {
		s.log.Error("store: failed to record run start", "err", err)
	}
}

// Finish marks the current run complete and logs a human-readable summary.
func (s *Store) Finish(errored bool) {
	s.run.Errored = errored
	s.db.Save(&s.run)
	s.log.Info("lexer run finished",
		"run_id", s.run.ID,
		"started", strftime.Format("%Y-%m-%d %H:%M:%S", s.run.StartedAt),
		"events", s.seq,
		"lines", s.run.Lines,
		"errored", errored,
	)
}

func (s *Store) record(kind lexer.Kind, text string, simple bool) {
	s.seq++
	ev := Event{RunID: s.run.ID, Seq: s.seq, Kind: kind.String(), Text: text, IsSimple: simple}
	if err := s.db.Create(&ev).Error; err != nil {
		s.log.Error("store: failed to record event", "err", err, "kind", kind)
	}
}

// Emit implements lexer.Host.
func (s *Store) Emit(kind lexer.Kind, start, end int, buf []byte, enc any) {
	s.record(kind, string(buf[start:end]), false)
}

// EmitSimple implements lexer.Host.
func (s *Store) EmitSimple(kind lexer.Kind) {
	s.record(kind, "", true)
}

// AdvanceLine implements lexer.Host.
func (s *Store) AdvanceLine(n int) {
	s.run.Lines += n
}

// HTML implements lexer.Host.
func (s *Store) HTML() bool { return s.html }

// HTMLScript implements lexer.Host.
func (s *Store) HTMLScript() bool {
	if s.isScrpt == nil {
		return false
	}
	return s.isScrpt()
}

// HTMLStyle implements lexer.Host.
func (s *Store) HTMLStyle() bool {
	if s.isStyle == nil {
		return false
	}
	return s.isStyle()
}
