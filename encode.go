package xmlserde

import (
	"github.com/beevik/etree"
)

// Elem builds an element with the given tag name, attributes and children.
// Later duplicate attribute names overwrite earlier ones; children keep their
// order. The element carries no namespace, so serialized output is plain
// unprefixed XML.
func Elem(tag string, attrs []Attribute, children ...Value) *Element {
	el := &Element{Tag: tag, Children: children}
	for _, attr := range attrs {
		el.setAttr(attr.Name, attr.Value)
	}

	return el
}

// CharData builds a text node holding s. The content is stored unescaped;
// escaping happens during serialization.
func CharData(s string) Text {
	return Text(s)
}

func (e *Element) setAttr(name, value string) {
	for idx, attr := range e.Attrs {
		if attr.Name == name {
			e.Attrs[idx].Value = value
			return
		}
	}

	e.Attrs = append(e.Attrs, Attribute{Name: name, Value: value})
}

// EncodeString serializes a tree value to markup text through a short-lived
// etree document. Escaping and quoting are etree's responsibility.
func EncodeString(v Value) (string, error) {
	doc := etree.NewDocument()
	attach(&doc.Element, v)

	return doc.WriteToString()
}
