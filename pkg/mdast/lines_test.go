package mdast_test

import (
	"testing"

	"github.com/lazypower/VoidReader-sub001/pkg/mdast"
)

func TestLineIndex(t *testing.T) {
	t.Parallel()

	t.Run("empty source has one line", func(t *testing.T) {
		t.Parallel()

		ix := mdast.NewLineIndex(nil)
		if ix.LineCount() != 1 {
			t.Errorf("LineCount() = %d, want 1", ix.LineCount())
		}
		if ix.Line(1) != "" {
			t.Errorf("Line(1) = %q, want empty", ix.Line(1))
		}
	})

	t.Run("trailing newline yields trailing empty line", func(t *testing.T) {
		t.Parallel()

		ix := mdast.NewLineIndex([]byte("a\nb\n"))
		if ix.LineCount() != 3 {
			t.Fatalf("LineCount() = %d, want 3", ix.LineCount())
		}
		if got := ix.Line(2); got != "b" {
			t.Errorf("Line(2) = %q, want b", got)
		}
		if got := ix.Line(3); got != "" {
			t.Errorf("Line(3) = %q, want empty", got)
		}
	})

	t.Run("no trailing newline", func(t *testing.T) {
		t.Parallel()

		ix := mdast.NewLineIndex([]byte("a\nbc"))
		if ix.LineCount() != 2 {
			t.Fatalf("LineCount() = %d, want 2", ix.LineCount())
		}
		if got := ix.Line(2); got != "bc" {
			t.Errorf("Line(2) = %q, want bc", got)
		}
	})

	t.Run("out of range returns empty", func(t *testing.T) {
		t.Parallel()

		ix := mdast.NewLineIndex([]byte("a\n"))
		if got := ix.Line(0); got != "" {
			t.Errorf("Line(0) = %q, want empty", got)
		}
		if got := ix.Line(99); got != "" {
			t.Errorf("Line(99) = %q, want empty", got)
		}
	})

	t.Run("position lookup", func(t *testing.T) {
		t.Parallel()

		ix := mdast.NewLineIndex([]byte("ab\ncd\nef"))

		tests := []struct {
			offset   int
			wantLine int
			wantCol  int
		}{
			{0, 1, 1},
			{1, 1, 2},
			{3, 2, 1},
			{4, 2, 2},
			{6, 3, 1},
		}
		for _, tt := range tests {
			line, col := ix.PositionFor(tt.offset)
			if line != tt.wantLine || col != tt.wantCol {
				t.Errorf("PositionFor(%d) = %d:%d, want %d:%d",
					tt.offset, line, col, tt.wantLine, tt.wantCol)
			}
		}
	})

	t.Run("line starts", func(t *testing.T) {
		t.Parallel()

		ix := mdast.NewLineIndex([]byte("ab\ncd\n"))
		if got := ix.LineStart(1); got != 0 {
			t.Errorf("LineStart(1) = %d, want 0", got)
		}
		if got := ix.LineStart(2); got != 3 {
			t.Errorf("LineStart(2) = %d, want 3", got)
		}
	})
}

func TestWalkAndFind(t *testing.T) {
	t.Parallel()

	root := mdast.NewNode(mdast.NodeDocument)
	heading := mdast.NewNode(mdast.NodeHeading)
	para := mdast.NewNode(mdast.NodeParagraph)
	text := mdast.NewNode(mdast.NodeText)
	mdast.AppendChild(para, text)
	mdast.AppendChild(root, heading)
	mdast.AppendChild(root, para)

	t.Run("walk visits depth first", func(t *testing.T) {
		t.Parallel()

		var kinds []mdast.NodeKind
		err := mdast.Walk(root, func(n *mdast.Node) error {
			kinds = append(kinds, n.Kind)
			return nil
		})
		if err != nil {
			t.Fatalf("Walk() error = %v", err)
		}

		want := []mdast.NodeKind{
			mdast.NodeDocument, mdast.NodeHeading, mdast.NodeParagraph, mdast.NodeText,
		}
		if len(kinds) != len(want) {
			t.Fatalf("visited %d nodes, want %d", len(kinds), len(want))
		}
		for i := range want {
			if kinds[i] != want[i] {
				t.Errorf("visit %d = %v, want %v", i, kinds[i], want[i])
			}
		}
	})

	t.Run("find by kind", func(t *testing.T) {
		t.Parallel()

		headings := mdast.FindByKind(root, mdast.NodeHeading)
		if len(headings) != 1 {
			t.Errorf("found %d headings, want 1", len(headings))
		}
	})
}
