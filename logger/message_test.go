package logger

import (
	"errors"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mordilloSan/go-console-logger/platform"
)

type lookupError struct{ key string }

func (e *lookupError) Error() string { return "missing " + e.key }

type brokenStringer struct{}

func (brokenStringer) String() string { panic("unreachable state") }

type node struct {
	Name string
	Next *node
}

type user struct {
	ID   int    `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

func TestLift(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   any
		want Arg
	}{
		{"string", "hi", Text("hi")},
		{"bytes", []byte("raw"), Text("raw")},
		{"int", 42, Text("42")},
		{"bool", true, Text("true")},
		{"error", errors.New("boom"), Text("boom")},
		{"stringer", 2 * time.Second, Text("2s")},
		{"nil", nil, Text("<nil>")},
		{"text", Text("kept"), Text("kept")},
		{"map", map[string]int{"a": 1}, Object{Value: map[string]int{"a": 1}}},
		{"slice", []int{1, 2}, Object{Value: []int{1, 2}}},
		{"struct", user{ID: 1}, Object{Value: user{ID: 1}}},
		{"forced", AsObject("s"), Object{Value: "s"}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Lift(tc.in), tc.name)
	}

	ptr := &user{ID: 2}
	assert.Equal(t, Object{Value: ptr}, Lift(ptr))
}

func TestLift_NilPointers(t *testing.T) {
	t.Parallel()

	var u *url.URL
	var lerr *lookupError
	var up *user
	var err error = lerr

	assert.Equal(t, Text("<nil>"), Lift(u))
	assert.Equal(t, Text("<nil>"), Lift(lerr))
	assert.Equal(t, Text("<nil>"), Lift(err))
	assert.Equal(t, Text("<nil>"), Lift(up))
}

func TestLift_PanickingStringer(t *testing.T) {
	t.Parallel()

	var got Arg
	require.NotPanics(t, func() { got = Lift(brokenStringer{}) })
	assert.Contains(t, string(got.(Text)), "unreachable state")
}

func TestLogger_NeverPanicsOnOddArguments(t *testing.T) {
	t.Parallel()

	loop := &node{Name: "a"}
	loop.Next = loop
	self := map[string]any{}
	self["self"] = self
	nested := []any{1, nil}
	nested[1] = nested

	var u *url.URL
	var lerr *lookupError
	var nilMap map[string]int
	var nilSlice []string

	args := []any{
		nil, u, lerr, brokenStringer{}, nilMap, nilSlice,
		func() {}, make(chan int), loop, self, nested,
		[]any{loop, self}, AsObject(func() {}), AsObject(loop),
	}

	for _, enc := range []ObjectEncoder{JSONEncoder{}, YAMLEncoder{}} {
		rec := &recorder{}
		log := New(Config{Platform: platform.Descriptor{SandboxedWorker: true}, Console: rec, Encoder: enc})

		for _, arg := range args {
			require.NotPanics(t, func() { log.Info("value:", arg) }, "%T %T", enc, arg)
		}
		require.NotPanics(t, func() { _ = formatMessage(enc, args) }, "%T", enc)
		assert.Len(t, rec.Calls(), len(args))
	}
}

func TestObject_CyclicValues(t *testing.T) {
	t.Parallel()

	loop := &node{Name: "a"}
	loop.Next = &node{Name: "b", Next: loop}
	assert.Equal(t, "\n<cyclic *logger.node>\n", Object{Value: loop}.stringify(YAMLEncoder{}))

	self := map[string]any{}
	self["self"] = self
	assert.Equal(t, "\n<cyclic map[string]interface {}>\n", Object{Value: self}.stringify(JSONEncoder{}))

	shared := &node{Name: "leaf"}
	got := Object{Value: []*node{shared, shared}}.stringify(JSONEncoder{})
	assert.Contains(t, got, `"leaf"`)
}

func TestFormatMessage_Accumulator(t *testing.T) {
	t.Parallel()

	enc := JSONEncoder{}
	assert.Equal(t, "", formatMessage(enc, nil))
	assert.Equal(t, "message1 message2", formatMessage(enc, []any{"message1", "message2"}))
	assert.Equal(t, "a 1 true", formatMessage(enc, []any{"a", 1, true}))
	assert.Equal(t, "line\nnext", formatMessage(enc, []any{"line\n", "next"}))
	assert.Equal(t, "  padded", formatMessage(enc, []any{"  padded"}))
}

func TestFormatMessage_ObjectsStartOnOwnLine(t *testing.T) {
	t.Parallel()

	got := formatMessage(JSONEncoder{}, []any{"user", user{ID: 7, Name: "ada"}, "loaded"})
	assert.Equal(t, "user \n{\n  \"id\": 7,\n  \"name\": \"ada\"\n}\nloaded", got)

	got = formatMessage(JSONEncoder{}, []any{map[string]any{"k": "<v>"}})
	assert.Equal(t, "\n{\n  \"k\": \"<v>\"\n}\n", got)
}

func TestYAMLEncoder(t *testing.T) {
	t.Parallel()

	got := formatMessage(YAMLEncoder{}, []any{"cfg", map[string]any{"db": map[string]any{"port": 5432}}})
	assert.Equal(t, "cfg \ndb:\n  port: 5432\n", got)
}

func TestObject_UnencodableFallsBack(t *testing.T) {
	t.Parallel()

	ch := make(chan int)
	got := Object{Value: ch}.stringify(JSONEncoder{})
	require.True(t, strings.HasPrefix(got, "\n0x"), got)
	assert.True(t, strings.HasSuffix(got, "\n"))
}

func TestEncoderByName(t *testing.T) {
	t.Parallel()

	enc, ok := EncoderByName("")
	require.True(t, ok)
	assert.Equal(t, JSONEncoder{}, enc)

	enc, ok = EncoderByName("YAML")
	require.True(t, ok)
	assert.Equal(t, YAMLEncoder{}, enc)

	_, ok = EncoderByName("xml")
	assert.False(t, ok)
}

func TestLoggerUsesConfiguredEncoder(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	log := New(Config{
		Platform: platform.Descriptor{SandboxedWorker: true},
		Console:  rec,
		Encoder:  YAMLEncoder{},
	})
	log.Info(user{ID: 1, Name: "x"})

	require.Len(t, rec.Calls(), 1)
	assert.Equal(t, "\nid: 1\nname: x\n", rec.message(0))
}
