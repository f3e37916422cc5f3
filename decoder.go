package xmlserde

import (
	"fmt"
	"github.com/beevik/etree"
)

// A Decoder extracts a value of type T from one node of an XML tree. Decoders
// are stateless function values: they hold no reference to any tree until
// applied, and applying one either yields a value or a [DecodeError] carrying
// the full context of the failure.
type Decoder[T any] func(Value) (T, *DecodeError)

// Succeed returns a decoder that ignores its input and yields value.
func Succeed[T any](value T) Decoder[T] {
	return func(Value) (T, *DecodeError) {
		return value, nil
	}
}

// FailWith returns a decoder that always fails with message, bound to
// whatever node it is applied to.
func FailWith[T any](message string) Decoder[T] {
	return func(v Value) (T, *DecodeError) {
		var zero T
		return zero, FailAt(message, v)
	}
}

// Tag succeeds exactly when the input is an element whose tag name equals
// name. Matching is case-sensitive.
func Tag(name string) Decoder[struct{}] {
	return func(v Value) (struct{}, *DecodeError) {
		el, ok := v.(*Element)
		if !ok || el.Tag != name {
			return struct{}{}, FailAt(fmt.Sprintf("Expected a tag with name %q", name), v)
		}

		return struct{}{}, nil
	}
}

// AnyTag yields the tag name of an element, whatever it is.
var AnyTag Decoder[string] = func(v Value) (string, *DecodeError) {
	el, ok := v.(*Element)
	if !ok {
		return "", FailAt("Expected a Tag", v)
	}

	return el.Tag, nil
}

// Data yields the content of a text node.
var Data Decoder[string] = func(v Value) (string, *DecodeError) {
	text, ok := v.(Text)
	if !ok {
		return "", FailAt("Expected Data", v)
	}

	return string(text), nil
}

// AttrOpt looks up an attribute on an element. A missing attribute yields
// nil; a present attribute yields a pointer to its value, so an empty value
// is still distinguishable from an absent one. Text nodes have no attributes
// and fail.
func AttrOpt(name string) Decoder[*string] {
	return func(v Value) (*string, *DecodeError) {
		el, ok := v.(*Element)
		if !ok {
			return nil, FailAt("Expected a Tag", v)
		}

		if value, ok := el.Attr(name); ok {
			return &value, nil
		}

		return nil, nil
	}
}

// Attr looks up an attribute on an element and fails if it is absent.
func Attr(name string) Decoder[string] {
	opt := AttrOpt(name)

	return func(v Value) (string, *DecodeError) {
		value, err := opt(v)
		if err != nil {
			return "", err
		}

		if value == nil {
			return "", FailAt(fmt.Sprintf("Expected an attribute named %q", name), v)
		}

		return *value, nil
	}
}

// Attrs yields all attributes of an element in document order.
var Attrs Decoder[[]Attribute] = func(v Value) ([]Attribute, *DecodeError) {
	el, ok := v.(*Element)
	if !ok {
		return nil, FailAt("Expected a Tag", v)
	}

	return el.Attrs, nil
}

// Map applies f to the result of d.
func Map[A, B any](d Decoder[A], f func(A) B) Decoder[B] {
	return func(v Value) (B, *DecodeError) {
		value, err := d(v)
		if err != nil {
			var zero B
			return zero, err
		}

		return f(value), nil
	}
}

// AndThen sequences two decoders: the decoder returned by f is applied to the
// same node d was. If d fails, f is never invoked and the failure passes
// through unchanged.
func AndThen[A, B any](d Decoder[A], f func(A) Decoder[B]) Decoder[B] {
	return func(v Value) (B, *DecodeError) {
		value, err := d(v)
		if err != nil {
			var zero B
			return zero, err
		}

		return f(value)(v)
	}
}

// Children applies d to every child of an element, in document order, and
// collects the results. The first failing child aborts the traversal: its
// error is tagged with the child's zero-based position and the whole result
// is group-tagged with the parent's tag name.
func Children[T any](d Decoder[T]) Decoder[[]T] {
	return PickChildren(Succeed(d))
}

// PickChildren generalizes [Children] to heterogeneous child lists. For each
// child the selector decides how that child should be decoded, or whether it
// applies at all: a selector failure silently skips the child, which is the
// mechanism for tolerating unrecognized tags among siblings. When the
// selector succeeds, the decoder it yields is applied to the same child, and
// a failure there aborts the traversal, tagged as in [Children]. Results keep
// document order.
func PickChildren[T any](selector Decoder[Decoder[T]]) Decoder[[]T] {
	return func(v Value) ([]T, *DecodeError) {
		el, ok := v.(*Element)
		if !ok {
			return nil, FailAt("Expected a Tag", v)
		}

		var decoded []T
		for idx, child := range el.Children {
			d, err := selector(child)
			if err != nil {
				// not applicable to this child
				continue
			}

			value, err := d(child)
			if err != nil {
				err = err.Tagged(fmt.Sprintf("While decoding child %d", idx))
				return nil, err.GroupTagged("In tag " + el.Tag)
			}

			decoded = append(decoded, value)
		}

		return decoded, nil
	}
}

// Decode applies d to an already-constructed tree value.
func Decode[T any](d Decoder[T], v Value) (T, *DecodeError) {
	return d(v)
}

// DecodeString parses text into a tree and applies d to its root element.
// Malformed markup, or a document without a root element, yields an error
// tagged "Parse error"; parsing is not retried.
func DecodeString[T any](d Decoder[T], text string) (T, *DecodeError) {
	var zero T

	doc := etree.NewDocument()
	if err := doc.ReadFromString(text); err != nil {
		return zero, NewError(err.Error()).Tagged("Parse error")
	}

	root := doc.Root()
	if root == nil {
		return zero, NewError("document has no root element").Tagged("Parse error")
	}

	return d(fromEtree(root))
}
