package xmlserde

import (
	"fmt"
	"github.com/beevik/etree"
	"github.com/samber/lo"
)

// Value is a single node of an XML tree: either an [*Element] or a [Text]
// leaf. The set of implementations is closed; consumers switch exhaustively
// over the two variants. Comment nodes are dropped while the tree is built
// from parsed input and never reach a decoder.
type Value interface {
	value()
}

// Attribute is one name/value pair of an [Element], in document order.
type Attribute struct {
	Name  string
	Value string
}

// Element is an XML element: a tag name, its attributes in document order,
// and its child nodes in document order. A parsed tree is never mutated;
// decoders only read it.
type Element struct {
	Tag      string
	Attrs    []Attribute
	Children []Value
}

// Text is the character content between markup, including whitespace.
type Text string

func (*Element) value() {}
func (Text) value()     {}

// Attr looks up an attribute by name. It returns the value of the first
// attribute with that name and true, or "" and false if no such attribute
// exists. An absent attribute is not an error.
func (e *Element) Attr(name string) (string, bool) {
	for _, attr := range e.Attrs {
		if attr.Name == name {
			return attr.Value, true
		}
	}

	return "", false
}

// fromEtree converts a parsed etree element into a Value tree. Comments are
// dropped. Any other token kind (processing instruction, directive) indicates
// a tree this codec does not model and is a contract violation.
func fromEtree(el *etree.Element) *Element {
	attrs := lo.Map(el.Attr, func(attr etree.Attr, _ int) Attribute {
		return Attribute{Name: attr.Key, Value: attr.Value}
	})

	var children []Value
	for _, token := range el.Child {
		switch token := token.(type) {
		case *etree.Element:
			children = append(children, fromEtree(token))

		case *etree.CharData:
			children = append(children, Text(token.Data))

		case *etree.Comment:
			// never visible to decoders

		default:
			panic(fmt.Sprintf("unsupported node kind %T", token))
		}
	}

	return &Element{Tag: el.Tag, Attrs: attrs, Children: children}
}

// attach appends v (and its subtree) to parent as etree tokens. Elements are
// created with plain unprefixed tags; no namespace decoration is added.
func attach(parent *etree.Element, v Value) {
	switch v := v.(type) {
	case *Element:
		el := parent.CreateElement(v.Tag)
		for _, attr := range v.Attrs {
			el.CreateAttr(attr.Name, attr.Value)
		}
		for _, child := range v.Children {
			attach(el, child)
		}

	case Text:
		parent.CreateText(string(v))

	default:
		panic(fmt.Sprintf("unsupported node kind %T", v))
	}
}
