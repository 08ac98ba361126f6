package display

import (
	"strings"
	"testing"
)

func TestWrapShortText(t *testing.T) {
	tests := []string{"", "a", "LED: ON", "exactly16chars!!", "  padded  "}
	for _, text := range tests {
		l1, l2 := Wrap(text)
		if l1 != text || l2 != "" {
			t.Errorf("Wrap(%q) = (%q, %q), want (%q, \"\")", text, l1, l2, text)
		}
	}
}

func TestWrapSplitsOnSpace(t *testing.T) {
	l1, l2 := Wrap("This is a longer message")
	if l1 != "This is a longer" {
		t.Errorf("Unexpected line1 %q", l1)
	}
	if l2 != "message" {
		t.Errorf("Unexpected line2 %q", l2)
	}
}

func TestWrapSplitsAtLastSpaceBeforeLimit(t *testing.T) {
	l1, l2 := Wrap("Hello wonderful world")
	if l1 != "Hello wonderful" {
		t.Errorf("Unexpected line1 %q", l1)
	}
	if l2 != "world" {
		t.Errorf("Unexpected line2 %q", l2)
	}
}

func TestWrapHardSplitWithoutSpace(t *testing.T) {
	l1, l2 := Wrap("abcdefghijklmnopqrstuvwxyz")
	if l1 != "abcdefghijklmnop" {
		t.Errorf("Unexpected line1 %q", l1)
	}
	if l2 != "qrstuvwxyz" {
		t.Errorf("Unexpected line2 %q", l2)
	}
}

func TestWrapTruncatesSecondLine(t *testing.T) {
	text := "Nie rozumiem polecenia. Spróbuj: hello, status, led on, led off."
	l1, l2 := Wrap(text)
	if l1 != "Nie rozumiem" {
		t.Errorf("Unexpected line1 %q", l1)
	}
	if !strings.HasSuffix(l2, Ellipsis) {
		t.Errorf("Expected ellipsis, got %q", l2)
	}
	if Width(l2) != LineWidth {
		t.Errorf("Expected truncated line of %d chars, got %d (%q)", LineWidth, Width(l2), l2)
	}
	if l2 != "polecenia. Spró"+Ellipsis {
		t.Errorf("Unexpected line2 %q", l2)
	}
}

func TestWrapSecondLineExactlyFitsIsNotTruncated(t *testing.T) {
	l1, l2 := Wrap("first line here 0123456789abcdef")
	if l1 != "first line here" {
		t.Errorf("Unexpected line1 %q", l1)
	}
	if l2 != "0123456789abcdef" {
		t.Errorf("Unexpected line2 %q", l2)
	}
}

func TestWrapCountsCharactersNotBytes(t *testing.T) {
	text := "ąęółśżźćńąęółśżźćń"
	l1, l2 := Wrap(text)
	if Width(l1) != LineWidth {
		t.Errorf("Expected %d characters on line1, got %d", LineWidth, Width(l1))
	}
	if l2 != "ćń" {
		t.Errorf("Unexpected line2 %q", l2)
	}
}

func TestWrapLengthInvariant(t *testing.T) {
	inputs := []string{
		strings.Repeat("x", 100),
		strings.Repeat("ab ", 40),
		strings.Repeat(" ", 40),
		" leading space and a fairly long tail of words",
		"sixteen-chars-ok then more and more and more words",
		"a                 b",
		"Cześć! Jestem gotowy 🤖 i czekam na polecenia",
	}
	for n := 0; n < 40; n++ {
		inputs = append(inputs, strings.Repeat("w ", n)+strings.Repeat("z", n))
	}

	for _, in := range inputs {
		l1, l2 := Wrap(in)
		if Width(l1) > LineWidth || Width(l2) > LineWidth {
			t.Errorf("Wrap(%q) produced over-long lines (%q, %q)", in, l1, l2)
		}
	}
}
