// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package options

import (
	"io"
	"testing"
)

func TestResolve_Implications(t *testing.T) {
	tests := []struct {
		name  string
		input Options
		want  Options
	}{
		{
			name:  "zero value unchanged",
			input: Options{},
			want:  Options{},
		},
		{
			name:  "number-nonblank implies number",
			input: Options{NumberNonBlank: true},
			want:  Options{NumberNonBlank: true, NumberLines: true},
		},
		{
			name:  "show-ends implies show-nonprinting",
			input: Options{ShowEnds: true},
			want:  Options{ShowEnds: true, ShowNonPrinting: true},
		},
		{
			name:  "show-tabs implies show-nonprinting",
			input: Options{ShowTabs: true},
			want:  Options{ShowTabs: true, ShowNonPrinting: true},
		},
		{
			name:  "lock and unbuffered imply nothing",
			input: Options{Lock: true, Unbuffered: true},
			want:  Options{Lock: true, Unbuffered: true},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := test.input.Resolve()
			if got != test.want {
				t.Errorf("Resolve() = %+v, want %+v", got, test.want)
			}
			if again := got.Resolve(); again != got {
				t.Errorf("Resolve() not idempotent: %+v then %+v", got, again)
			}
		})
	}
}

func TestCooked(t *testing.T) {
	tests := []struct {
		name    string
		options Options
		want    bool
	}{
		{"none", Options{}, false},
		{"unbuffered only", Options{Unbuffered: true}, false},
		{"lock only", Options{Lock: true}, false},
		{"number", Options{NumberLines: true}, true},
		{"number-nonblank", Options{NumberNonBlank: true}, true},
		{"squeeze", Options{SqueezeBlank: true}, true},
		{"show-ends", Options{ShowEnds: true}, true},
		{"show-tabs", Options{ShowTabs: true}, true},
		{"show-nonprinting", Options{ShowNonPrinting: true}, true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := test.options.Resolve().Cooked(); got != test.want {
				t.Errorf("Cooked() = %v, want %v", got, test.want)
			}
		})
	}
}

func TestNewFlagSet_CombinedShorthand(t *testing.T) {
	var options Options
	flagSet := NewFlagSet("cat", &options)

	if err := flagSet.Parse([]string{"-bs", "-u", "file1", "-", "file2"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if !options.NumberNonBlank || !options.SqueezeBlank || !options.Unbuffered {
		t.Errorf("expected -b -s -u set, got %+v", options)
	}
	if options.NumberLines {
		t.Error("NumberLines should only be set by Resolve, not by parsing")
	}

	args := flagSet.Args()
	if len(args) != 3 || args[0] != "file1" || args[1] != "-" || args[2] != "file2" {
		t.Errorf("unexpected positional args: %v", args)
	}
}

func TestNewFlagSet_LongNames(t *testing.T) {
	var options Options
	flagSet := NewFlagSet("cat", &options)

	if err := flagSet.Parse([]string{"--show-ends", "--show-tabs", "--lock"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !options.ShowEnds || !options.ShowTabs || !options.Lock {
		t.Errorf("expected long flags set, got %+v", options)
	}
}

func TestNewFlagSet_UnknownFlag(t *testing.T) {
	var options Options
	flagSet := NewFlagSet("cat", &options)
	flagSet.SetOutput(io.Discard)

	if err := flagSet.Parse([]string{"-z"}); err == nil {
		t.Fatal("expected error for unknown flag -z")
	}
}

func TestBindFlags_EmbeddedAndString(t *testing.T) {
	type params struct {
		Options
		Config string `flag:"config" desc:"configuration file"`
		Skip   int
	}

	var p params
	flagSet := NewFlagSet("cat", &p)

	if err := flagSet.Parse([]string{"-n", "--config", "/etc/cat.yaml"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !p.NumberLines {
		t.Error("embedded -n not bound")
	}
	if p.Config != "/etc/cat.yaml" {
		t.Errorf("Config = %q, want /etc/cat.yaml", p.Config)
	}
}

func TestBindFlags_RejectsNonPointer(t *testing.T) {
	if err := BindFlags(Options{}, NewFlagSet("x", &Options{})); err == nil {
		t.Fatal("expected error for non-pointer params")
	}
}

func TestBindFlags_UnsupportedType(t *testing.T) {
	type params struct {
		Count int `flag:"count"`
	}
	var p params
	if err := BindFlags(&p, NewFlagSet("x", &struct{}{})); err == nil {
		t.Fatal("expected error for unsupported int field")
	}
}
