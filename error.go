package xmlserde

import (
	"slices"
	"strconv"
	"strings"
)

// DecodeError describes a failed decode as a chain of context frames around a
// leaf cause. The leaf carries the failure message and the offending node;
// each enclosing frame records one layer of context, either a single
// annotation ("While decoding child 3") or a group summary for a whole failed
// traversal ("In tag foo"). Context is attached innermost-first, so rendering
// reads from the most specific cause outward.
type DecodeError struct {
	// Message and Value describe the leaf cause. Value may be nil if the
	// error was not bound to a node.
	Message string
	Value   Value

	// Label and Group describe a context frame wrapping Cause.
	Label string
	Group bool
	Cause *DecodeError
}

// NewError returns a leaf error that is not bound to any node.
func NewError(message string) *DecodeError {
	return &DecodeError{Message: message}
}

// FailAt returns a leaf error bound to the node on which decoding failed.
func FailAt(message string, at Value) *DecodeError {
	return &DecodeError{Message: message, Value: at}
}

// Tagged wraps e with one additional context frame.
func (e *DecodeError) Tagged(label string) *DecodeError {
	return &DecodeError{Label: label, Cause: e}
}

// GroupTagged wraps e with a frame summarizing a failed aggregate, such as
// the traversal of a whole children list. [Children] and [PickChildren] apply
// it exactly once per call.
func (e *DecodeError) GroupTagged(label string) *DecodeError {
	return &DecodeError{Label: label, Group: true, Cause: e}
}

// Error renders the failure as a multi-line trace, leaf cause first, each
// enclosing frame indented one level further. The leaf line includes the
// offending node serialized back to markup.
func (e *DecodeError) Error() string {
	var lines []string
	for err := e; err != nil; err = err.Cause {
		lines = append(lines, err.line())
	}

	// e is the outermost frame; the trace starts at the leaf
	slices.Reverse(lines)

	var sb strings.Builder
	for depth, line := range lines {
		if depth > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(strings.Repeat("  ", depth))
		sb.WriteString(line)
	}

	return sb.String()
}

func (e *DecodeError) line() string {
	if e.Cause != nil {
		return e.Label
	}

	if e.Value == nil {
		return e.Message
	}

	return e.Message + ": in " + fragment(e.Value)
}

// fragment gives a textual form of a node for error traces.
func fragment(v Value) string {
	switch v := v.(type) {
	case Text:
		return strconv.Quote(string(v))
	default:
		text, err := EncodeString(v)
		if err != nil {
			return ""
		}
		return text
	}
}
