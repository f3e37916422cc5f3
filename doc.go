// Package xmlserde provides a typed codec for XML documents. A [Decoder] is a
// pure function from a parsed [Value] to a typed result or a [DecodeError]
// describing exactly where decoding went wrong. Decoders are built from small
// primitives ([Tag], [Data], [Attr], ...) and composed with [Map], [AndThen],
// [Children] and [PickChildren], similar in spirit to [json.Unmarshal] but
// with the structure of the target spelled out as combinators.
//
// The dual direction builds a [Value] tree with [Elem] and [CharData] and
// serializes it back to markup text with [EncodeString]. Parsing and
// serialization are delegated to [github.com/beevik/etree]; this package only
// walks the tree.
package xmlserde
