package lexer

// Machine identifies one of the lexer's sub-automata. cs (the "current
// state" register) always holds one of these values; it is the target of
// every transition, whether a local one within a machine or a jump to a
// different machine.
type Machine int

const (
	// MachineMain is the top-level dispatcher: text, tag opens, declaration
	// opens.
	MachineMain Machine = iota
	MachineCommentBody
	MachineCDataBody
	MachineProcInsBody
	MachineStringSquote
	MachineStringDquote
	MachineDoctype
	MachineDoctypeInline
	MachineXMLDecl
	MachineElementName
	MachineElementClose
	MachineElementCloseTail
	MachineAttributePre
	MachineUnquotedAttributeValue
	MachineQuotedAttributeValue
	MachineElementHead
	MachineHTMLElementHead
	MachineText
	MachineHTMLScript
	MachineHTMLStyle
	// MachineError is the DFA's absorbing error state: once entered, Advance
	// stops emitting events for the remainder of every subsequent call until
	// Reset is called.
	MachineError
)

var machineNames = [...]string{
	MachineMain:                   "main",
	MachineCommentBody:            "comment_body",
	MachineCDataBody:              "cdata_body",
	MachineProcInsBody:            "proc_ins_body",
	MachineStringSquote:           "string_squote",
	MachineStringDquote:           "string_dquote",
	MachineDoctype:                "doctype",
	MachineDoctypeInline:          "doctype_inline",
	MachineXMLDecl:                "xml_decl",
	MachineElementName:            "element_name",
	MachineElementClose:           "element_close",
	MachineElementCloseTail:       "element_close_tail",
	MachineAttributePre:           "attribute_pre",
	MachineUnquotedAttributeValue: "unquoted_attribute_value",
	MachineQuotedAttributeValue:   "quoted_attribute_value",
	MachineElementHead:            "element_head",
	MachineHTMLElementHead:        "html_element_head",
	MachineText:                   "text",
	MachineHTMLScript:             "html_script",
	MachineHTMLStyle:              "html_style",
	MachineError:                  "error",
}

func (m Machine) String() string {
	if int(m) >= 0 && int(m) < len(machineNames) {
		return machineNames[m]
	}
	return "invalid"
}

// maxDepth bounds the state stack. Every live path in the grammar pushes at
// most one frame per nesting of {attribute value, xml-decl value, doctype
// literal} inside {element head, xml decl, doctype}, so a depth of 8 leaves
// ample headroom without requiring a dynamically sized stack.
const maxDepth = 8

// action is the "act" register: the last-committed action id in a
// longest-match dispatch. main's "<?" dispatch records which candidate it
// chose here; nothing reads it back, since that dispatch scans the whole
// candidate name before branching instead of backtracking. See cursor.go.
type action int

const (
	actNone action = iota
	actProcInsCandidate
	actXMLDeclCandidate
	actDoctypeName
	actDoctypeType
)
