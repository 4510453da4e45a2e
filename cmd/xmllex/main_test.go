package main

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/db47h/xmllex/lexer"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
		"bogus": slog.LevelWarn,
		"":      slog.LevelWarn,
	}
	for in, want := range cases {
		assert.Equal(t, want, parseLevel(in), "parseLevel(%q)", in)
	}
}

func TestPrintHostTracksLastElementForRawText(t *testing.T) {
	h := newPrintHost("doc.html", nil, true, false)

	h.Emit(lexer.KindElementName, 0, 6, []byte("script"), nil)
	assert.True(t, h.HTMLScript())
	assert.False(t, h.HTMLStyle())

	h.Emit(lexer.KindElementName, 0, 5, []byte("style"), nil)
	assert.False(t, h.HTMLScript())
	assert.True(t, h.HTMLStyle())

	h.Emit(lexer.KindElementName, 0, 1, []byte("p"), nil)
	assert.False(t, h.HTMLScript())
	assert.False(t, h.HTMLStyle())
}

func TestPrintHostCountsEveryEvent(t *testing.T) {
	h := newPrintHost("doc.xml", nil, false, false)
	h.Emit(lexer.KindText, 0, 4, []byte("text"), nil)
	h.EmitSimple(lexer.KindElementOpenEnd)
	assert.Equal(t, 2, h.count)
}

func TestPrintHostWithoutHTMLNeverReportsRawText(t *testing.T) {
	h := newPrintHost("doc.xml", nil, false, false)
	h.Emit(lexer.KindElementName, 0, 6, []byte("script"), nil)
	assert.False(t, h.HTMLScript())
}

func TestPrintHostErrorReportPointsAtLastToken(t *testing.T) {
	data := []byte("<a>\nbad</a>")
	h := newPrintHost("doc.xml", data, false, false)

	h.Emit(lexer.KindText, 0, 4, data, nil) // "<a>\n", records line 2 at offset 4
	h.Emit(lexer.KindText, 4, 7, data, nil) // "bad", on line 2

	report := h.errorReport()
	assert.Contains(t, report, "doc.xml:2:")
	assert.Contains(t, report, "bad</a>")
}
