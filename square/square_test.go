package square

import (
	"errors"
	"testing"
)

func TestFromNotation(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		notation string
		want     Square
		wantErr  error
	}{
		{
			name:     "ok a1",
			notation: "a1",
			want:     A1,
			wantErr:  nil,
		},
		{
			name:     "ok e4",
			notation: "e4",
			want:     E4,
			wantErr:  nil,
		},
		{
			name:     "ok h8",
			notation: "h8",
			want:     H8,
			wantErr:  nil,
		},
		{
			name:     "bad empty",
			notation: "",
			wantErr:  ErrInvalidNotation,
		},
		{
			name:     "bad short",
			notation: "a",
			wantErr:  ErrInvalidNotation,
		},
		{
			name:     "bad file",
			notation: "i4",
			wantErr:  ErrInvalidNotation,
		},
		{
			name:     "bad rank high",
			notation: "a9",
			wantErr:  ErrInvalidNotation,
		},
		{
			name:     "bad rank low",
			notation: "a0",
			wantErr:  ErrInvalidNotation,
		},
		{
			name:     "bad long",
			notation: "a1b",
			wantErr:  ErrInvalidNotation,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := FromNotation(tt.notation)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("unexpected error: got=%v want=%v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("unexpected result: got=%v want=%v", got, tt.want)
			}
			if gotNt := got.Notation(); gotNt != tt.notation {
				t.Errorf("notation does not round-trip: got=%s want=%s", gotNt, tt.notation)
			}
		})
	}
}

func TestDirectionTo(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		from, to Square
		want     Direction
	}{
		{name: "north", from: A1, to: A8, want: DirectionN},
		{name: "northeast", from: A1, to: H8, want: DirectionNE},
		{name: "east", from: A1, to: H1, want: DirectionE},
		{name: "southeast", from: D4, to: G1, want: DirectionSE},
		{name: "south", from: D4, to: D1, want: DirectionS},
		{name: "southwest", from: H8, to: A1, want: DirectionSW},
		{name: "west", from: D4, to: A4, want: DirectionW},
		{name: "northwest", from: D4, to: A7, want: DirectionNW},
		{name: "short diagonal", from: D4, to: E5, want: DirectionNE},
		{name: "off line", from: D4, to: E6, want: DirectionNone},
		{name: "off line knight", from: A1, to: B3, want: DirectionNone},
		{name: "same square", from: D4, to: D4, want: DirectionNone},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.from.DirectionTo(tt.to); got != tt.want {
				t.Errorf("unexpected direction: got=%v want=%v", got, tt.want)
			}
			if tt.want != DirectionNone {
				if back := tt.to.DirectionTo(tt.from); back != tt.want.Opposite() {
					t.Errorf("reverse direction mismatch: got=%v want=%v", back, tt.want.Opposite())
				}
				if !tt.from.IsValidMove(tt.to) {
					t.Error("IsValidMove should hold on a compass line")
				}
			} else if tt.from.IsValidMove(tt.to) {
				t.Error("IsValidMove should not hold off line")
			}
		})
	}
}

func TestDistance(t *testing.T) {
	t.Parallel()
	tests := []struct {
		from, to Square
		want     int
	}{
		{from: A1, to: H8, want: 7},
		{from: A1, to: A1, want: 0},
		{from: D4, to: D6, want: 2},
		{from: D4, to: E5, want: 1},
		{from: C2, to: F2, want: 3},
		{from: H1, to: A8, want: 7},
		{from: B3, to: C7, want: 4},
	}

	for _, tt := range tests {
		if got := tt.from.Distance(tt.to); got != tt.want {
			t.Errorf("unexpected distance %s-%s: got=%d want=%d", tt.from, tt.to, got, tt.want)
		}
		if back := tt.to.Distance(tt.from); back != tt.want {
			t.Errorf("distance not symmetric %s-%s: got=%d want=%d", tt.to, tt.from, back, tt.want)
		}
	}
}

func TestMoveDest(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		from  Square
		dir   Direction
		steps int
		want  Square
		ok    bool
	}{
		{name: "north", from: D4, dir: DirectionN, steps: 2, want: D6, ok: true},
		{name: "northeast to corner", from: D4, dir: DirectionNE, steps: 4, want: H8, ok: true},
		{name: "zero steps", from: D4, dir: DirectionS, steps: 0, want: D4, ok: true},
		{name: "off south", from: A1, dir: DirectionSW, steps: 1, ok: false},
		{name: "off north", from: H8, dir: DirectionNE, steps: 1, ok: false},
		{name: "off west wraps nowhere", from: B1, dir: DirectionNW, steps: 2, ok: false},
		{name: "no direction", from: D4, dir: DirectionNone, steps: 1, ok: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := tt.from.MoveDest(tt.dir, tt.steps)
			if ok != tt.ok {
				t.Fatalf("unexpected ok: got=%v want=%v", ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("unexpected destination: got=%v want=%v", got, tt.want)
			}
		})
	}
}

func TestAdjacent(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		sq   Square
		want int
	}{
		{name: "corner", sq: A1, want: 3},
		{name: "edge", sq: A4, want: 5},
		{name: "center", sq: D4, want: 8},
		{name: "top corner", sq: H8, want: 3},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			adj := tt.sq.Adjacent()
			if len(adj) != tt.want {
				t.Fatalf("unexpected neighbor count: got=%d want=%d", len(adj), tt.want)
			}
			for _, n := range adj {
				if !n.Valid() {
					t.Errorf("invalid neighbor %d", n)
				}
				if tt.sq.Distance(n) != 1 {
					t.Errorf("neighbor %s not at distance 1 from %s", n, tt.sq)
				}
			}
		})
	}
}
