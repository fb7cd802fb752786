// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jfeed_test

import (
	"testing"

	"github.com/creachadair/jfeed"
	"github.com/creachadair/mds/mtest"
	"github.com/google/go-cmp/cmp"
)

func TestNodeShape(t *testing.T) {
	node, err := jfeed.Parse([]byte(`{"a": 1, "b": [true, false, null], "c": "x"}`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	defer node.Release()

	if got, want := node.Kind(), jfeed.Object; got != want {
		t.Errorf("Root kind: got %v, want %v", got, want)
	}
	if got, want := node.Len(), 3; got != want {
		t.Fatalf("Root len: got %d, want %d", got, want)
	}
	if got := node.Key(); got != "" {
		t.Errorf("Root key: got %q, want empty", got)
	}

	// Members arrive in document order, carrying their keys.
	wantKeys := []string{"a", "b", "c"}
	for i, kid := range node.Children() {
		if got := kid.Key(); got != wantKeys[i] {
			t.Errorf("Child %d key: got %q, want %q", i, got, wantKeys[i])
		}
		if kid != node.Child(i) {
			t.Errorf("Child %d: Children and Child disagree", i)
		}
	}

	if got := node.Find("a").Float64(); got != 1 {
		t.Errorf(`Find("a"): got %v, want 1`, got)
	}
	b := node.Find("b")
	if b == nil || b.Kind() != jfeed.Array {
		t.Fatalf(`Find("b"): got %v, want an array`, b)
	}
	if got, want := b.Len(), 3; got != want {
		t.Fatalf(`Find("b") len: got %d, want %d`, got, want)
	}
	if got := b.Child(0); got.Kind() != jfeed.Bool || !got.Bool() {
		t.Errorf("b[0]: got %v %v, want true", got.Kind(), got.Bool())
	}
	if got := b.Child(1); got.Kind() != jfeed.Bool || got.Bool() {
		t.Errorf("b[1]: got %v %v, want false", got.Kind(), got.Bool())
	}
	if got := b.Child(2); got.Kind() != jfeed.Null {
		t.Errorf("b[2]: got %v, want null", got.Kind())
	}

	// Array elements have no keys.
	if got := b.Child(0).Key(); got != "" {
		t.Errorf("b[0] key: got %q, want empty", got)
	}

	if got := node.Find("c").Text(); got != "x" {
		t.Errorf(`Find("c"): got %q, want "x"`, got)
	}
	if got := node.Find("nonesuch"); got != nil {
		t.Errorf(`Find("nonesuch"): got %v, want nil`, got)
	}
}

func TestInterface(t *testing.T) {
	tests := []struct {
		input string
		want  any
	}{
		{`null`, nil},
		{`true`, true},
		{`"foo"`, "foo"},
		{`[]`, []any{}},
		{`{}`, map[string]any{}},
		{`[1, "two", false, null]`, []any{1.0, "two", false, nil}},
		{`{"n": -2.5, "m": {"deep": [[]]}}`,
			map[string]any{"n": -2.5, "m": map[string]any{"deep": []any{[]any{}}}}},
		{`{"k":1,"k":2}`, map[string]any{"k": 2.0}}, // later duplicates win
	}
	for _, tc := range tests {
		node, err := jfeed.Parse([]byte(tc.input))
		if err != nil {
			t.Errorf("Parse %#q failed: %v", tc.input, err)
			continue
		}
		if diff := cmp.Diff(tc.want, node.Interface()); diff != "" {
			t.Errorf("Interface %#q: (-want, +got):\n%s", tc.input, diff)
		}
		node.Release()
	}
}

func TestUntypedNode(t *testing.T) {
	// The zero node has no value yet, so conversion and rendering are
	// programmer errors.
	mtest.MustPanic(t, func() { new(jfeed.Node).Interface() })
	mtest.MustPanic(t, func() { new(jfeed.Node).JSON() })

	var n jfeed.Node
	if got := n.Kind(); got != jfeed.Untyped {
		t.Errorf("Zero node kind: got %v, want %v", got, jfeed.Untyped)
	}
}

func TestKindString(t *testing.T) {
	for _, tc := range []struct {
		kind jfeed.Kind
		want string
	}{
		{jfeed.Untyped, "untyped"},
		{jfeed.Object, "object"},
		{jfeed.Array, "array"},
		{jfeed.String, "string"},
		{jfeed.Number, "number"},
		{jfeed.Bool, "bool"},
		{jfeed.Null, "null"},
		{jfeed.Kind(99), "invalid"},
	} {
		if got := tc.kind.String(); got != tc.want {
			t.Errorf("Kind(%d).String: got %q, want %q", int(tc.kind), got, tc.want)
		}
	}
}

func TestReleaseNil(t *testing.T) {
	var n *jfeed.Node
	n.Release() // must not panic
}
