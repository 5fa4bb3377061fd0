package llmtext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestDecoder() *Decoder {
	return NewDecoder(zap.NewNop())
}

func TestDecodeListDirect(t *testing.T) {
	d := newTestDecoder()

	list := d.DecodeList(`[{"a": 1}, {"a": 2}]`)
	require.Len(t, list, 2)
	first, ok := list[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(1), first["a"])
}

func TestDecodeListFencedBlock(t *testing.T) {
	d := newTestDecoder()

	text := "Here are your questions:\n```json\n[{\"question\": \"Q1\"}]\n```\nEnjoy!"
	list := d.DecodeList(text)
	require.Len(t, list, 1)

	// Fenced content must decode to the same structure as decoding it directly.
	direct := d.DecodeList(`[{"question": "Q1"}]`)
	assert.Equal(t, direct, list)
}

func TestDecodeListFenceWithoutLanguageTag(t *testing.T) {
	d := newTestDecoder()

	text := "```\n[1, 2, 3]\n```"
	list := d.DecodeList(text)
	assert.Len(t, list, 3)
}

func TestDecodeListBracketSpan(t *testing.T) {
	d := newTestDecoder()

	text := `Sure! The result is [{"a": 1}] as requested.`
	list := d.DecodeList(text)
	require.Len(t, list, 1)
}

func TestDecodeListTruncatedArray(t *testing.T) {
	d := newTestDecoder()

	list := d.DecodeList(`[{"a":1},{"a":2`)
	require.Len(t, list, 1)
	elem, ok := list[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(1), elem["a"])
}

func TestDecodeListTruncatedNestedStrings(t *testing.T) {
	d := newTestDecoder()

	// Separators inside strings must not split elements.
	list := d.DecodeList(`[{"q":"a, b, and c"},{"q":"d [e] f"},{"q":"cut of`)
	require.Len(t, list, 2)
}

func TestDecodeListTrailingComma(t *testing.T) {
	d := newTestDecoder()

	list := d.DecodeList(`[{"a": 1}, {"a": 2},]`)
	assert.Len(t, list, 2)
}

func TestDecodeListBareKeys(t *testing.T) {
	d := newTestDecoder()

	list := d.DecodeList(`[{question: "Q1"}, {question: "Q2"}]`)
	require.Len(t, list, 2)
	first, ok := list[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Q1", first["question"])
}

func TestDecodeListWrapperObject(t *testing.T) {
	d := newTestDecoder()

	for _, wrapper := range []string{"questions", "results", "data", "items"} {
		list := d.DecodeList(`{"` + wrapper + `": [{"a": 1}]}`)
		assert.Len(t, list, 1, "wrapper %q should unwrap", wrapper)
	}

	// Multi-key objects are not unwrapped.
	assert.Empty(t, d.DecodeList(`{"questions": [{"a":1}], "meta": 2}`))
}

func TestDecodeListGarbage(t *testing.T) {
	d := newTestDecoder()

	assert.Empty(t, d.DecodeList("I could not generate any questions, sorry."))
	assert.Empty(t, d.DecodeList(""))
}

func TestDecodeMapDirect(t *testing.T) {
	d := newTestDecoder()

	m := d.DecodeMap(`{"Easy": "simple", "Hard": "tough"}`)
	assert.Equal(t, "simple", m["Easy"])
}

func TestDecodeMapFencedAndProse(t *testing.T) {
	d := newTestDecoder()

	m := d.DecodeMap("Here you go:\n```json\n{\"Easy\": \"simple\"}\n```")
	assert.Equal(t, "simple", m["Easy"])

	m = d.DecodeMap(`The tiers are {"Easy": "simple"} as described.`)
	assert.Equal(t, "simple", m["Easy"])
}

func TestDecodeMapGarbage(t *testing.T) {
	d := newTestDecoder()

	m := d.DecodeMap("no structure here")
	assert.NotNil(t, m)
	assert.Empty(t, m)
}

func TestSanitizeStrayQuotes(t *testing.T) {
	d := newTestDecoder()

	list := d.DecodeList(`[{"q": "the "big" one"}]`)
	require.Len(t, list, 1)
	elem, ok := list[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, `the "big" one`, elem["q"])
}

func TestRecoverTruncatedArrayEscapedQuotes(t *testing.T) {
	elems, ok := recoverTruncatedArray(`[{"q":"he said \"hi\""},{"q":"partial`)
	require.True(t, ok)
	assert.Len(t, elems, 1)
}

func TestExtractFencedBlock(t *testing.T) {
	block, ok := extractFencedBlock("prefix ```json\n[1]\n``` suffix")
	require.True(t, ok)
	assert.Equal(t, "[1]", block)

	_, ok = extractFencedBlock("no fences at all")
	assert.False(t, ok)

	_, ok = extractFencedBlock("``` unterminated")
	assert.False(t, ok)
}
