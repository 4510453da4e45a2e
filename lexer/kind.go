package lexer

// Kind identifies the semantic meaning of an emitted token event.
//
// Ranged kinds carry a [start, end) byte range into the buffer passed to
// Advance and are materialized into strings by the host, in the declared
// encoding. Simple kinds carry no range: they signal a delimiter such as
// -->, ]]>, ?> or a closing quote.
type Kind int

const (
	KindText Kind = iota

	KindCommentStart
	KindCommentBody
	KindCommentEnd

	KindCDataStart
	KindCDataBody
	KindCDataEnd

	KindProcInsStart
	KindProcInsName
	KindProcInsBody
	KindProcInsEnd

	KindDoctypeStart
	KindDoctypeName
	KindDoctypeType
	KindDoctypeInline
	KindDoctypeEnd

	KindXMLDeclStart
	KindXMLDeclEnd

	KindElementNS
	KindElementName
	KindElementEnd
	KindElementOpenEnd

	KindAttributeNS
	KindAttribute

	KindStringSquote
	KindStringDquote
	KindStringBody
)

var kindNames = [...]string{
	KindText:            "text",
	KindCommentStart:     "comment_start",
	KindCommentBody:      "comment_body",
	KindCommentEnd:       "comment_end",
	KindCDataStart:       "cdata_start",
	KindCDataBody:        "cdata_body",
	KindCDataEnd:         "cdata_end",
	KindProcInsStart:     "proc_ins_start",
	KindProcInsName:      "proc_ins_name",
	KindProcInsBody:      "proc_ins_body",
	KindProcInsEnd:       "proc_ins_end",
	KindDoctypeStart:     "doctype_start",
	KindDoctypeName:      "doctype_name",
	KindDoctypeType:      "doctype_type",
	KindDoctypeInline:    "doctype_inline",
	KindDoctypeEnd:       "doctype_end",
	KindXMLDeclStart:     "xml_decl_start",
	KindXMLDeclEnd:       "xml_decl_end",
	KindElementNS:        "element_ns",
	KindElementName:      "element_name",
	KindElementEnd:       "element_end",
	KindElementOpenEnd:   "element_open_end",
	KindAttributeNS:      "attribute_ns",
	KindAttribute:        "attribute",
	KindStringSquote:     "string_squote",
	KindStringDquote:     "string_dquote",
	KindStringBody:       "string_body",
}

func (k Kind) String() string {
	if int(k) >= 0 && int(k) < len(kindNames) {
		return "on_" + kindNames[k]
	}
	return "on_unknown"
}

// Ranged reports whether k carries a byte range (as opposed to being a
// token-less signal).
func (k Kind) Ranged() bool {
	switch k {
	case KindCommentStart, KindCommentEnd, KindCDataStart, KindCDataEnd,
		KindProcInsStart, KindProcInsEnd, KindDoctypeStart, KindDoctypeEnd,
		KindXMLDeclStart, KindXMLDeclEnd, KindElementEnd, KindElementOpenEnd,
		KindStringSquote, KindStringDquote:
		return false
	default:
		return true
	}
}
