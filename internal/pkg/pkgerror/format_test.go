package pkgerror

import (
	"errors"
	"testing"
)

func TestSubstitute(t *testing.T) {
	tests := []struct {
		name string
		tmpl string
		args []any
		want string
	}{
		{name: "no placeholders", tmpl: "Invalid credentials", want: "Invalid credentials"},
		{name: "single", tmpl: "Parameter {0} required", args: []any{"id"}, want: "Parameter id required"},
		{name: "reordered", tmpl: "{1} before {0}", args: []any{"a", "b"}, want: "b before a"},
		{name: "repeated", tmpl: "{0}-{0}", args: []any{7}, want: "7-7"},
		{name: "escaped braces", tmpl: "{{literal}} {0}", args: []any{"x"}, want: "{literal} x"},
		{name: "utf8", tmpl: "Parámetro {0} inválido", args: []any{"año"}, want: "Parámetro año inválido"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := substitute(tt.tmpl, tt.args)
			if err != nil {
				t.Fatalf("substitute: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestSubstituteErrors(t *testing.T) {
	tests := []struct {
		name string
		tmpl string
		args []any
		want error
	}{
		{name: "missing arg", tmpl: "{0} and {1}", args: []any{"a"}, want: ErrArgumentCount},
		{name: "extra arg", tmpl: "{0}", args: []any{"a", "b"}, want: ErrArgumentCount},
		{name: "gap counts as slot", tmpl: "{1}", args: []any{"a"}, want: ErrArgumentCount},
		{name: "unclosed", tmpl: "Parameter {0", args: []any{"a"}, want: ErrMalformedTemplate},
		{name: "stray close", tmpl: "Parameter 0}", want: ErrMalformedTemplate},
		{name: "empty index", tmpl: "Parameter {}", want: ErrMalformedTemplate},
		{name: "named", tmpl: "Parameter {name}", args: []any{"a"}, want: ErrMalformedTemplate},
		{name: "signed", tmpl: "Parameter {-1}", args: []any{"a"}, want: ErrMalformedTemplate},
		{name: "format suffix", tmpl: "Code {0:00}", args: []any{1}, want: ErrMalformedTemplate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := substitute(tt.tmpl, tt.args)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
			if got != "" {
				t.Fatalf("expected no partial output, got %q", got)
			}
		})
	}
}

func TestPrefix(t *testing.T) {
	if got := prefix(1); got != "(E01) " {
		t.Fatalf("unexpected prefix: %q", got)
	}
	if got := prefix(90); got != "(E90) " {
		t.Fatalf("unexpected prefix: %q", got)
	}
	if got := prefix(120); got != "(E120) " {
		t.Fatalf("unexpected prefix: %q", got)
	}
}
