package render

import "testing"

func TestStripOffsetZeroShowsCurrentPage(t *testing.T) {
	got := Strip("PPPPP", "CCCCC", "NNNNN", 5, 0)
	if got != "CCCCC" {
		t.Fatalf("Strip offset 0 = %q, want %q", got, "CCCCC")
	}
}

func TestStripPositiveOffsetRevealsPrevious(t *testing.T) {
	got := Strip("PPPPP", "CCCCC", "NNNNN", 5, 2)
	if got != "PPCCC" {
		t.Fatalf("Strip offset 2 = %q, want %q", got, "PPCCC")
	}
}

func TestStripNegativeOffsetRevealsNext(t *testing.T) {
	got := Strip("PPPPP", "CCCCC", "NNNNN", 5, -2)
	if got != "CCCNN" {
		t.Fatalf("Strip offset -2 = %q, want %q", got, "CCCNN")
	}
}

func TestStripClampsOffsetToOnePage(t *testing.T) {
	if got := Strip("PPPPP", "CCCCC", "NNNNN", 5, 12); got != "PPPPP" {
		t.Fatalf("Strip over-dragged right = %q, want %q", got, "PPPPP")
	}
	if got := Strip("PPPPP", "CCCCC", "NNNNN", 5, -12); got != "NNNNN" {
		t.Fatalf("Strip over-dragged left = %q, want %q", got, "NNNNN")
	}
}

func TestStripPadsUnevenHeights(t *testing.T) {
	got := Strip("PPPPP", "CCCCC\nccccc", "NNNNN", 5, 2)
	want := "PPCCC\n  ccc"
	if got != want {
		t.Fatalf("Strip uneven heights = %q, want %q", got, want)
	}
}

func TestStripPadsShortLines(t *testing.T) {
	got := Strip("PP", "CC", "NN", 5, 2)
	if got != "  CC " {
		t.Fatalf("Strip short lines = %q, want %q", got, "  CC ")
	}
}
