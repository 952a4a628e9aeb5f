package view

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestRender_Placeholder(t *testing.T) {
	if got := Render(ViewState{}); got != "Loading..." {
		t.Fatalf("Render() = %q, want Loading...", got)
	}
	if got := Render(ViewState{EmptyPlaceholder: "wait"}); got != "wait" {
		t.Fatalf("Render() = %q, want wait", got)
	}
}

func TestRender_ModalOverlay(t *testing.T) {
	base := strings.Repeat(strings.Repeat(".", 20)+"\n", 5)
	base = strings.TrimSuffix(base, "\n")

	out := Render(ViewState{
		Width:        20,
		Height:       5,
		BaseContent:  base,
		ModalContent: "MODAL",
		ShowModal:    true,
	})

	lines := strings.Split(ansi.Strip(out), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[2], "MODAL") {
		t.Fatalf("expected modal on middle line, got %q", lines[2])
	}
	if !strings.HasPrefix(lines[0], "....") {
		t.Fatalf("expected base content outside modal, got %q", lines[0])
	}
}
