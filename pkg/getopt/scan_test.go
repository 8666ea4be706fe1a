// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package getopt

import (
	"errors"
	"reflect"
	"testing"
)

func mustSpec(t *testing.T, s string) Spec {
	t.Helper()
	spec, err := ParseSpec(s)
	if err != nil {
		t.Fatalf("ParseSpec(%q) failed: %v", s, err)
	}
	return spec
}

func TestFindDetachedLongValue(t *testing.T) {
	v := newVector([]string{"prog", "--threads", "max", "foo.c"})
	m, ok, err := v.find(mustSpec(t, "threads"), false)
	if err != nil || !ok {
		t.Fatalf("find = ok %v, err %v", ok, err)
	}
	if m.Name != "threads" || m.Value != "max" || !m.HasValue {
		t.Errorf("match = %+v, want threads=max", m)
	}
	if want := []bool{false, true, true, false}; !reflect.DeepEqual(v.consumed, want) {
		t.Errorf("consumed = %v, want %v", v.consumed, want)
	}
}

func TestFindShortNeedsAttachedValue(t *testing.T) {
	v := newVector([]string{"prog", "-o", "file"})
	_, ok, err := v.find(mustSpec(t, "o|out"), false)
	if !ok {
		t.Fatalf("find did not match")
	}
	var missing *MissingValueError
	if !errors.As(err, &missing) {
		t.Fatalf("find error = %v, want MissingValueError", err)
	}
	if missing.Option != "-o" {
		t.Errorf("Option = %q, want %q", missing.Option, "-o")
	}
	if v.consumed[2] {
		t.Errorf("value slot consumed for short option")
	}
}

func TestFindLongMissingValue(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "end of args", args: []string{"prog", "--out"}},
		{name: "next is option", args: []string{"prog", "--out", "-v"}},
		{name: "next is terminator", args: []string{"prog", "--out", "--", "x"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newVector(tt.args)
			_, _, err := v.find(mustSpec(t, "o|out"), false)
			if !errors.Is(err, ErrMissingValue) {
				t.Fatalf("find error = %v, want ErrMissingValue", err)
			}
		})
	}
}

func TestFindLongSkipsConsumedValueSlot(t *testing.T) {
	v := newVector([]string{"prog", "--out", "x"})
	v.consumed[2] = true
	if _, _, err := v.find(mustSpec(t, "out"), false); !errors.Is(err, ErrMissingValue) {
		t.Fatalf("find error = %v, want ErrMissingValue", err)
	}
}

func TestFindBoolStyleNoValue(t *testing.T) {
	v := newVector([]string{"prog", "--verbose", "file"})
	m, ok, err := v.find(mustSpec(t, "verbose"), true)
	if err != nil || !ok {
		t.Fatalf("find = ok %v, err %v", ok, err)
	}
	if m.HasValue {
		t.Errorf("bool-style match took a value: %+v", m)
	}
	if v.consumed[2] {
		t.Errorf("bool-style option consumed the next argument")
	}
}

func TestFindStopsAtTerminator(t *testing.T) {
	v := newVector([]string{"prog", "--", "-x"})
	_, ok, err := v.find(mustSpec(t, "x"), true)
	if err != nil || ok {
		t.Fatalf("find = ok %v, err %v; want no match", ok, err)
	}
}

func TestFindSkipsProgramNameAndConsumed(t *testing.T) {
	v := newVector([]string{"-x", "-x", "-x"})
	v.consumed[1] = true
	_, ok, err := v.find(mustSpec(t, "x"), true)
	if err != nil || !ok {
		t.Fatalf("find = ok %v, err %v", ok, err)
	}
	if want := []bool{false, true, true}; !reflect.DeepEqual(v.consumed, want) {
		t.Errorf("consumed = %v, want %v", v.consumed, want)
	}
}

func TestCompact(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		consumed []int
		want     []string
		wantErr  string
	}{
		{
			name:     "drops consumed",
			args:     []string{"prog", "-v", "a", "--out", "x", "b"},
			consumed: []int{1, 3, 4},
			want:     []string{"prog", "a", "b"},
		},
		{
			name: "lone terminator",
			args: []string{"prog", "--"},
			want: []string{"prog"},
		},
		{
			name: "after terminator is positional",
			args: []string{"prog", "a", "--", "-x", "--", "--y=1"},
			want: []string{"prog", "a", "-x", "--", "--y=1"},
		},
		{
			name:    "unrecognized before terminator",
			args:    []string{"prog", "a", "-x", "--", "b"},
			wantErr: "-x",
		},
		{
			name:    "lone dash",
			args:    []string{"prog", "-"},
			wantErr: "-",
		},
		{
			name: "empty",
			args: nil,
			want: []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newVector(tt.args)
			for _, i := range tt.consumed {
				v.consumed[i] = true
			}
			got, err := v.compact()
			if tt.wantErr != "" {
				var unrec *UnrecognizedOptionError
				if !errors.As(err, &unrec) {
					t.Fatalf("compact error = %v, want UnrecognizedOptionError", err)
				}
				if unrec.Arg != tt.wantErr {
					t.Errorf("Arg = %q, want %q", unrec.Arg, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("compact failed: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("compact = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestCompactIdempotent(t *testing.T) {
	v := newVector([]string{"prog", "-v", "a", "b"})
	v.consumed[1] = true
	once, err := v.compact()
	if err != nil {
		t.Fatalf("compact failed: %v", err)
	}
	twice, err := newVector(once).compact()
	if err != nil {
		t.Fatalf("second compact failed: %v", err)
	}
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("compact not idempotent: %#v then %#v", once, twice)
	}
}
