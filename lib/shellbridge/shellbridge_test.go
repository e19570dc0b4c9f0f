// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package shellbridge

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/bureau-foundation/attrwire/lib/jsontree"
)

func TestMangleRoundTrip(t *testing.T) {
	names := []string{
		"simple", "with space", "dash-ed", "under_score", "x", "xab",
		"x78", "", "weird'quote", "tab\there", "ünïcode", "123",
	}
	seen := map[string]string{}
	for _, name := range names {
		segment := mangleSegment(name)
		if strings.ContainsAny(segment, " _'\"\t") {
			t.Errorf("mangleSegment(%q) = %q contains unsafe bytes", name, segment)
		}
		if prev, dup := seen[segment]; dup {
			t.Errorf("names %q and %q collide on segment %q", prev, name, segment)
		}
		seen[segment] = name
		back, err := unmangleSegment(segment)
		if err != nil {
			t.Errorf("unmangleSegment(%q): %v", segment, err)
		} else if back != name {
			t.Errorf("round trip %q -> %q -> %q", name, segment, back)
		}
	}
}

func TestUnmangleRejectsBadEscapes(t *testing.T) {
	for _, segment := range []string{"x", "x1", "xzz", "abcx1"} {
		if _, err := unmangleSegment(segment); err == nil {
			t.Errorf("unmangleSegment(%q) accepted a bad escape", segment)
		}
	}
}

func TestShellQuote(t *testing.T) {
	cases := map[string]string{
		"plain":   "'plain'",
		"":        "''",
		"it's":    `'it'\''s'`,
		"a b\n$c": "'a b\n$c'",
	}
	for in, want := range cases {
		if got := shellQuote(in); got != want {
			t.Errorf("shellQuote(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestExportOutput(t *testing.T) {
	root, err := jsontree.Parse([]byte(`{"name":"lan","up":true,"ports":[1,2]}`))
	if err != nil {
		t.Fatal(err)
	}
	var sb strings.Builder
	if err := Export(&sb, root, "J"); err != nil {
		t.Fatalf("Export: %v", err)
	}
	want := strings.Join([]string{
		"J_TYPE='object'",
		"J_KEYS='name up ports'",
		"J_TYPE_name='string'",
		"J_VAL_name='lan'",
		"J_TYPE_up='bool'",
		"J_VAL_up='1'",
		"J_TYPE_ports='array'",
		"J_KEYS_ports='0 1'",
		"J_TYPE_ports_0='int'",
		"J_VAL_ports_0='1'",
		"J_TYPE_ports_1='int'",
		"J_VAL_ports_1='2'",
		"",
	}, "\n")
	if diff := cmp.Diff(want, sb.String()); diff != "" {
		t.Errorf("export mismatch (-want +got):\n%s", diff)
	}
}

func TestExportRejectsBadPrefix(t *testing.T) {
	root := jsontree.NewObject()
	for _, prefix := range []string{"", "1J", "J-X", "J X"} {
		var sb strings.Builder
		if err := Export(&sb, root, prefix); err == nil {
			t.Errorf("prefix %q accepted", prefix)
		}
	}
}

// namespace parses Export output into a lookup table, standing in for
// a shell that eval'd the assignments into its environment.
func namespace(t *testing.T, root *jsontree.Node, prefix string) func(string) (string, bool) {
	t.Helper()
	var sb strings.Builder
	if err := Export(&sb, root, prefix); err != nil {
		t.Fatalf("Export: %v", err)
	}
	vars := map[string]string{}
	for _, line := range strings.Split(strings.TrimSuffix(sb.String(), "\n"), "\n") {
		name, quoted, found := strings.Cut(line, "=")
		if !found {
			t.Fatalf("unparsable export line %q", line)
		}
		value := strings.TrimSuffix(strings.TrimPrefix(quoted, "'"), "'")
		vars[name] = strings.ReplaceAll(value, `'\''`, "'")
	}
	return func(name string) (string, bool) {
		v, ok := vars[name]
		return v, ok
	}
}

// treeValue flattens a document for comparison.
func treeValue(n *jsontree.Node) any {
	switch n.Kind() {
	case jsontree.Object:
		m := map[string]any{}
		for i := 0; i < n.Len(); i++ {
			m[n.Key(i)] = treeValue(n.At(i))
		}
		return m
	case jsontree.Array:
		s := []any{}
		for i := 0; i < n.Len(); i++ {
			s = append(s, treeValue(n.At(i)))
		}
		return s
	case jsontree.String:
		return n.Str()
	case jsontree.Bool:
		return n.Bool()
	case jsontree.Int:
		return n.Int()
	case jsontree.Double:
		return n.Float()
	default:
		return nil
	}
}

func TestRoundTrip(t *testing.T) {
	documents := []string{
		`{"name":"eth0","mtu":1500,"up":true,"gw":null}`,
		`{"servers":[{"host":"a","weight":1.5},{"host":"b","weight":2}]}`,
		`{"empty obj":{},"empty arr":[],"it's":"quoted"}`,
		`[]`,
		`[1,[2,[3]]]`,
		`"bare string"`,
	}
	for _, doc := range documents {
		t.Run(doc, func(t *testing.T) {
			root, err := jsontree.Parse([]byte(doc))
			if err != nil {
				t.Fatal(err)
			}
			rebuilt, err := Import(namespace(t, root, "JTEST"), "JTEST")
			if err != nil {
				t.Fatalf("Import: %v", err)
			}
			if diff := cmp.Diff(treeValue(root), treeValue(rebuilt)); diff != "" {
				t.Errorf("round trip mismatch (-orig +rebuilt):\n%s", diff)
			}
		})
	}
}

func TestImportRejectsBrokenNamespace(t *testing.T) {
	base := map[string]string{
		"J_TYPE":   "object",
		"J_KEYS":   "a",
		"J_TYPE_a": "int",
		"J_VAL_a":  "7",
	}
	mutate := func(key, value string) func(string) (string, bool) {
		vars := map[string]string{}
		for k, v := range base {
			vars[k] = v
		}
		if value == "" {
			delete(vars, key)
		} else {
			vars[key] = value
		}
		return func(name string) (string, bool) {
			v, ok := vars[name]
			return v, ok
		}
	}
	cases := map[string]func(string) (string, bool){
		"missing root type": mutate("J_TYPE", ""),
		"unknown type":      mutate("J_TYPE_a", "float"),
		"missing value":     mutate("J_VAL_a", ""),
		"bad int":           mutate("J_VAL_a", "seven"),
		"bad key escape":    mutate("J_KEYS", "x1"),
	}
	for name, lookup := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := Import(lookup, "J"); err == nil {
				t.Error("Import accepted a broken namespace")
			}
		})
	}
}
