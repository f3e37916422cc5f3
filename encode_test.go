package xmlserde

import (
	"github.com/stretchr/testify/require"
	"testing"
)

func TestElem(t *testing.T) {
	el := Elem("user",
		[]Attribute{{Name: "name", Value: "albert"}},
		Elem("age", nil, CharData("21")),
	)

	require.Equal(t, "user", el.Tag)
	require.Equal(t, []Attribute{{Name: "name", Value: "albert"}}, el.Attrs)
	require.Len(t, el.Children, 1)
}

func TestElemDuplicateAttrsOverwrite(t *testing.T) {
	el := Elem("a", []Attribute{
		{Name: "k", Value: "1"},
		{Name: "x", Value: "2"},
		{Name: "k", Value: "3"},
	})

	require.Equal(t, []Attribute{
		{Name: "k", Value: "3"},
		{Name: "x", Value: "2"},
	}, el.Attrs)
}

func TestEncodeString(t *testing.T) {
	el := Elem("a",
		[]Attribute{{Name: "k", Value: "1"}},
		Elem("b", nil),
		CharData("hello"),
	)

	text, err := EncodeString(el)
	require.NoError(t, err)
	require.Equal(t, `<a k="1"><b/>hello</a>`, text)
}

func TestEncodeStringEscapes(t *testing.T) {
	text, err := EncodeString(Elem("a", nil, CharData("fish & <chips>")))
	require.NoError(t, err)
	require.Equal(t, `<a>fish &amp; &lt;chips&gt;</a>`, text)
}

func TestEncodeStringText(t *testing.T) {
	text, err := EncodeString(CharData("hello"))
	require.NoError(t, err)
	require.Equal(t, "hello", text)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	el := Elem("feed",
		[]Attribute{{Name: "version", Value: "1"}},
		Elem("title", nil, CharData("news")),
		Elem("item", []Attribute{{Name: "id", Value: "1"}}, CharData("first")),
		Elem("item", []Attribute{{Name: "id", Value: "2"}}, CharData("second")),
	)

	text, err := EncodeString(el)
	require.NoError(t, err)

	identity := Decoder[Value](func(v Value) (Value, *DecodeError) { return v, nil })

	reparsed, decodeErr := DecodeString(identity, text)
	require.Nil(t, decodeErr)

	again, err := EncodeString(reparsed)
	require.NoError(t, err)
	require.Equal(t, text, again)
}
