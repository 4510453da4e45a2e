package lexer

import (
	"testing"

	"github.com/go-test/deep"
)

// event is a flattened, string-rendered recording of one Host call, easy to
// compare against a table of expectations with deep.Equal.
type event struct {
	kind Kind
	text string // for ranged kinds: buf[start:end]; empty for simple kinds
}

type recorder struct {
	events     []event
	lines      int
	html       bool
	htmlScript bool
	htmlStyle  bool
}

func (r *recorder) Emit(kind Kind, start, end int, buf []byte, enc any) {
	r.events = append(r.events, event{kind: kind, text: string(buf[start:end])})
}

func (r *recorder) EmitSimple(kind Kind) {
	r.events = append(r.events, event{kind: kind})
}

func (r *recorder) AdvanceLine(n int) { r.lines += n }
func (r *recorder) HTML() bool        { return r.html }
func (r *recorder) HTMLScript() bool  { return r.htmlScript }
func (r *recorder) HTMLStyle() bool   { return r.htmlStyle }

func scan(t *testing.T, h *recorder, input string) {
	t.Helper()
	l := New()
	l.Advance(h, []byte(input), nil)
	if l.Current() == MachineError {
		t.Fatalf("scan of %q ended in the error machine", input)
	}
	if l.Depth() != 0 {
		t.Errorf("scan of %q ended with non-zero stack depth %d", input, l.Depth())
	}
}

func TestSimpleElement(t *testing.T) {
	h := &recorder{}
	scan(t, h, "<p>hi</p>")

	want := []event{
		{kind: KindElementName, text: "p"},
		{kind: KindElementOpenEnd},
		{kind: KindText, text: "hi"},
		{kind: KindElementName, text: "p"},
		{kind: KindElementEnd},
	}
	if diff := deep.Equal(h.events, want); diff != nil {
		t.Error(diff)
	}
}

func TestNamespacedAttributeAndSelfClose(t *testing.T) {
	h := &recorder{}
	scan(t, h, `<a:b xmlns:a="x"/>`)

	want := []event{
		{kind: KindElementNS, text: "a"},
		{kind: KindElementName, text: "b"},
		{kind: KindAttributeNS, text: "xmlns"},
		{kind: KindAttribute, text: "a"},
		{kind: KindStringDquote},
		{kind: KindStringBody, text: "x"},
		{kind: KindStringDquote},
		{kind: KindElementEnd},
		{kind: KindElementOpenEnd},
	}
	if diff := deep.Equal(h.events, want); diff != nil {
		t.Error(diff)
	}
}

func TestCommentWithInteriorDashes(t *testing.T) {
	h := &recorder{}
	scan(t, h, "<!-- a--b -->")

	want := []event{
		{kind: KindCommentStart},
		{kind: KindCommentBody, text: " a--b "},
		{kind: KindCommentEnd},
	}
	if diff := deep.Equal(h.events, want); diff != nil {
		t.Error(diff)
	}
}

func TestProcessingInstructionVsXMLDecl(t *testing.T) {
	h := &recorder{}
	scan(t, h, `<?xml version="1.0"?><?target data?>`)

	want := []event{
		{kind: KindXMLDeclStart},
		{kind: KindAttribute, text: "version"},
		{kind: KindStringDquote},
		{kind: KindStringBody, text: "1.0"},
		{kind: KindStringDquote},
		{kind: KindXMLDeclEnd},
		{kind: KindProcInsStart},
		{kind: KindProcInsName, text: "target"},
		{kind: KindProcInsBody, text: " data"},
		{kind: KindProcInsEnd},
	}
	if diff := deep.Equal(h.events, want); diff != nil {
		t.Error(diff)
	}
}

func TestHTMLScriptRawText(t *testing.T) {
	h := &recorder{html: true, htmlScript: true}
	scan(t, h, "<script>a<b</script>")

	want := []event{
		{kind: KindElementName, text: "script"},
		{kind: KindElementOpenEnd},
		{kind: KindText, text: "a<b"},
		{kind: KindElementName, text: "script"},
		{kind: KindElementEnd},
	}
	if diff := deep.Equal(h.events, want); diff != nil {
		t.Error(diff)
	}
}

func TestStrayLessThanInText(t *testing.T) {
	h := &recorder{}
	scan(t, h, "hello < world")

	want := []event{
		{kind: KindText, text: "hello < world"},
	}
	if diff := deep.Equal(h.events, want); diff != nil {
		t.Error(diff)
	}
}

func TestTextThenLessThanAtEOF(t *testing.T) {
	h := &recorder{}
	scan(t, h, "hello<")

	want := []event{
		{kind: KindText, text: "hello<"},
	}
	if diff := deep.Equal(h.events, want); diff != nil {
		t.Error(diff)
	}
}

func TestCDataWithDoubleBracketNotClosing(t *testing.T) {
	h := &recorder{}
	scan(t, h, "<![CDATA[a]]b]]>")

	want := []event{
		{kind: KindCDataStart},
		{kind: KindCDataBody, text: "a]]b"},
		{kind: KindCDataEnd},
	}
	if diff := deep.Equal(h.events, want); diff != nil {
		t.Error(diff)
	}
}

func TestEmptyInput(t *testing.T) {
	h := &recorder{}
	scan(t, h, "")
	if len(h.events) != 0 {
		t.Errorf("expected no events for empty input, got %v", h.events)
	}
}

// TestResumability feeds the same document in one shot and split across
// many tiny chunks, and checks the resulting event streams agree — the
// split points deliberately land inside names, tag heads, and comment
// bodies. Line accounting is not compared, since spec.md §8 allows
// advance_line flushes to land at different points without affecting
// correctness.
func TestResumability(t *testing.T) {
	const doc = `<?xml version="1.0"?>
<root xmlns:a="urn:x">
  <a:child attr='v' bare>text<!-- c -->more</a:child>
  <br/>
</root>`

	whole := &recorder{}
	scan(t, whole, doc)
	if whole.events == nil {
		t.Fatal("expected events from whole-document scan")
	}

	for chunkSize := 1; chunkSize <= 3; chunkSize++ {
		h := &recorder{}
		l := New()
		data := []byte(doc)
		for i := 0; i < len(data); i += chunkSize {
			end := i + chunkSize
			if end > len(data) {
				end = len(data)
			}
			l.Advance(h, data[i:end], nil)
		}
		if l.Current() == MachineError {
			t.Fatalf("chunkSize=%d: ended in error machine", chunkSize)
		}
		if l.Depth() != 0 {
			t.Errorf("chunkSize=%d: ended with non-zero depth %d", chunkSize, l.Depth())
		}
		if diff := deep.Equal(h.events, whole.events); diff != nil {
			t.Errorf("chunkSize=%d: event stream diverged: %v", chunkSize, diff)
		}
	}
}

func TestResetIsIdempotent(t *testing.T) {
	l := New()
	h := &recorder{}
	l.Advance(h, []byte("<p>hi</p>"), nil)
	l.Reset()
	l.Reset()
	if l.Current() != MachineMain {
		t.Fatalf("Reset: expected main, got %v", l.Current())
	}
	if l.Depth() != 0 {
		t.Fatalf("Reset: expected depth 0, got %d", l.Depth())
	}
	h2 := &recorder{}
	l.Advance(h2, []byte("<p>hi</p>"), nil)
	if diff := deep.Equal(h2.events, []event{
		{kind: KindElementName, text: "p"},
		{kind: KindElementOpenEnd},
		{kind: KindText, text: "hi"},
		{kind: KindElementName, text: "p"},
		{kind: KindElementEnd},
	}); diff != nil {
		t.Error(diff)
	}
}
