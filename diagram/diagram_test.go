package diagram

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"chess-rules/chessmg"
	"chess-rules/notation"
)

func TestWriteStartPosition(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, chessmg.StartingPosition(), Options{}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "<?xml") || !strings.Contains(out, "</svg>") {
		t.Fatalf("not an SVG document:\n%s", out)
	}
	if got := strings.Count(out, "<rect"); got != 64 {
		t.Fatalf("squares: got %d want 64", got)
	}
	if got := strings.Count(out, "♟"); got != 8 {
		t.Fatalf("black pawns: got %d want 8", got)
	}
	if !strings.Contains(out, notation.StartFEN) {
		t.Fatalf("title does not carry the FEN")
	}
	if !strings.Contains(out, `width="384"`) {
		t.Fatalf("default board should be 8x48 pixels wide")
	}
}

func TestWriteHighlightAndCoordinates(t *testing.T) {
	m := chessmg.Move{From: chessmg.E2, To: chessmg.E4, Kind: chessmg.DoublePawnPush, Piece: chessmg.Pawn}
	p := chessmg.StartingPosition()
	var buf bytes.Buffer
	opts := Options{SquareSize: 40, Highlight: MoveHighlight(m), Coordinates: true}
	if err := Write(&buf, p.Apply(m), opts); err != nil {
		t.Fatalf("Write: %v", err)
	}
	out := buf.String()
	if got := strings.Count(out, "<rect"); got != 66 {
		t.Fatalf("rects: got %d want 66", got)
	}
	if !strings.Contains(out, `width="360"`) {
		t.Fatalf("board with margins should be 360 pixels wide")
	}
	if !strings.Contains(out, ">a</text>") || !strings.Contains(out, ">8</text>") {
		t.Fatalf("coordinates missing")
	}
}

func TestOriginFlip(t *testing.T) {
	if x, y := origin(0, 0, 10, 0, false); x != 0 || y != 70 {
		t.Fatalf("a1 unflipped: got %d,%d want 0,70", x, y)
	}
	if x, y := origin(0, 0, 10, 0, true); x != 70 || y != 0 {
		t.Fatalf("a1 flipped: got %d,%d want 70,0", x, y)
	}
	if x, y := origin(7, 7, 10, 5, false); x != 75 || y != 5 {
		t.Fatalf("h8 with margin: got %d,%d want 75,5", x, y)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteReportsWriterError(t *testing.T) {
	err := Write(failingWriter{}, chessmg.StartingPosition(), Options{})
	if !errors.Is(err, ErrWrite) {
		t.Fatalf("got %v want ErrWrite", err)
	}
}
