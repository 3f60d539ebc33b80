package logger

import (
	"fmt"
	"reflect"
	"strings"
)

// Arg is one message argument: either Text or Object.
type Arg interface {
	stringify(enc ObjectEncoder) string
}

// Text is a primitive argument rendered as-is.
type Text string

// Object is a structured argument serialized on its own lines by the logger's ObjectEncoder.
type Object struct {
	Value any
}

// AsObject marks v for structured serialization regardless of its type.
func AsObject(v any) Object {
	return Object{Value: v}
}

func (t Text) stringify(ObjectEncoder) string {
	return string(t)
}

func (o Object) stringify(enc ObjectEncoder) (out string) {
	if cyclic(reflect.ValueOf(o.Value), map[uintptr]bool{}) {
		return fmt.Sprintf("\n<cyclic %T>\n", o.Value)
	}
	defer func() {
		if r := recover(); r != nil {
			out = "\n" + fmt.Sprintf("%+v\n", o.Value)
		}
	}()

	body, err := enc.Encode(o.Value)
	if err != nil {
		body = fmt.Sprintf("%+v\n", o.Value)
	}
	return "\n" + body
}

// cyclic reports whether v reaches a pointer, map or slice that is already
// on the current path. Encoders and fmt recurse forever on such values.
func cyclic(v reflect.Value, path map[uintptr]bool) bool {
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice:
		if v.IsNil() {
			return false
		}
		p := v.Pointer()
		if path[p] {
			return true
		}
		path[p] = true
		defer delete(path, p)
	}

	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			return false
		}
		return cyclic(v.Elem(), path)
	case reflect.Map:
		iter := v.MapRange()
		for iter.Next() {
			if cyclic(iter.Value(), path) {
				return true
			}
		}
	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			if cyclic(v.Index(i), path) {
				return true
			}
		}
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			if cyclic(v.Field(i), path) {
				return true
			}
		}
	}
	return false
}

// Lift classifies a plain Go value. Strings, errors, Stringers, bools and
// numbers become Text; maps, slices, arrays, structs and pointers to them
// become Object. Values that already are an Arg are returned unchanged.
// Nil pointers render as <nil>, and a panicking Error or String method
// falls back to fmt.Sprint.
func Lift(v any) (arg Arg) {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer && rv.IsNil() {
		return Text("<nil>")
	}

	defer func() {
		if r := recover(); r != nil {
			arg = Text(fmt.Sprint(v))
		}
	}()

	switch x := v.(type) {
	case nil:
		return Text("<nil>")
	case Arg:
		return x
	case string:
		return Text(x)
	case []byte:
		return Text(x)
	case error:
		return Text(x.Error())
	case fmt.Stringer:
		return Text(x.String())
	}

	if rv.Kind() == reflect.Pointer {
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct:
		return Object{Value: v}
	default:
		return Text(fmt.Sprint(v))
	}
}

// formatMessage joins arguments into one string. An argument directly
// follows a trailing newline, starts an empty message as-is, and is
// otherwise separated by a single space.
func formatMessage(enc ObjectEncoder, args []any) string {
	var b strings.Builder
	for _, a := range args {
		s := Lift(a).stringify(enc)
		if b.Len() > 0 && !strings.HasSuffix(b.String(), "\n") {
			b.WriteByte(' ')
		}
		b.WriteString(s)
	}
	return b.String()
}
