package termstyle

import "testing"

func TestBold_Enabled(t *testing.T) {
	SetEnabled(true)
	defer SetEnabled(false)

	got := Bold("hello")
	want := "\033[1mhello\033[0m"
	if got != want {
		t.Errorf("Bold(\"hello\") = %q, want %q", got, want)
	}
}

func TestBold_Disabled(t *testing.T) {
	SetEnabled(false)

	got := Bold("hello")
	if got != "hello" {
		t.Errorf("Bold(\"hello\") with disabled = %q, want %q", got, "hello")
	}
}

func TestEmptyString_Unwrapped(t *testing.T) {
	SetEnabled(true)
	defer SetEnabled(false)

	if got := Red(""); got != "" {
		t.Errorf("Red(\"\") = %q, want empty", got)
	}
}

func TestColors_Enabled(t *testing.T) {
	SetEnabled(true)
	defer SetEnabled(false)

	tests := []struct {
		name string
		fn   func(string) string
		code string
	}{
		{"Dim", Dim, "\033[2m"},
		{"Red", Red, "\033[31m"},
		{"Green", Green, "\033[32m"},
		{"Yellow", Yellow, "\033[33m"},
		{"Cyan", Cyan, "\033[36m"},
	}
	for _, tt := range tests {
		got := tt.fn("x")
		want := tt.code + "x\033[0m"
		if got != want {
			t.Errorf("%s(\"x\") = %q, want %q", tt.name, got, want)
		}
	}
}
