package board

import "testing"

func TestNotation(t *testing.T) {
	t.Parallel()
	tests := []struct {
		notation string
		wantErr  bool
	}{
		{notation: DefaultStartingNotation, wantErr: false},
		{notation: "8/8/8/8/8/8/8/8 w 0 60", wantErr: false},
		{notation: "8/2w2b2/1b4w1/3wb3/2bw1w2/8/1b4b1/8 w 17 120", wantErr: false},
		{notation: "wwww4/8/8/8/8/8/8/4bbbb w 2 10", wantErr: false},
		{notation: "b7/1w6/2b5/3w4/4b3/5w2/6b1/7w b 5 40", wantErr: false},
		{notation: "1bbbbbb1/w6w/w6w/w6w/w6w/w6w/w6w/1bbbbbb1 w 119 120", wantErr: false},
		{notation: "", wantErr: true},
		{notation: "invalid notation", wantErr: true},
		{notation: "8/8/8/8/8/8/8/8 w 0", wantErr: true},
		{notation: "8/8/8/8/8/8/8/8 w 0 60 extrasegment", wantErr: true},
		{notation: "8/8/8/8/8/8/8 w 0 60", wantErr: true},
		{notation: "8/8/8/8/8/8/8/8/8 w 0 60", wantErr: true},
		{notation: "x7/8/8/8/8/8/8/8 w 0 60", wantErr: true},
		{notation: "9/8/8/8/8/8/8/8 w 0 60", wantErr: true},
		{notation: "7/8/8/8/8/8/8/8 w 0 60", wantErr: true},
		{notation: "w8/8/8/8/8/8/8/8 w 0 60", wantErr: true},
		{notation: "8/8/8/8/8/8/8/8 x 0 60", wantErr: true},
		{notation: "8/8/8/8/8/8/8/8 w -1 60", wantErr: true},
		{notation: "8/8/8/8/8/8/8/8 w abc 60", wantErr: true},
		{notation: "8/8/8/8/8/8/8/8 w 0 0", wantErr: true},
		{notation: "8/8/8/8/8/8/8/8 w 0 -5", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.notation, func(t *testing.T) {
			t.Parallel()

			b, err := NewBoard(WithNotation(tt.notation))
			if tt.wantErr {
				if err == nil {
					t.Error("error expected: got=nil")
				}
				return
			}
			if err != nil {
				t.Fatal("unexpected error:", err)
			}

			if gotNt := b.Notation(); gotNt != tt.notation {
				t.Errorf("unexpected notation: got=%s want=%s", gotNt, tt.notation)
			}
		})
	}
}

func TestNotationDefault(t *testing.T) {
	t.Parallel()
	b, err := NewBoard()
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if got := b.Notation(); got != DefaultStartingNotation {
		t.Errorf("unexpected notation: got=%s want=%s", got, DefaultStartingNotation)
	}
	if b.Turn() != PieceBlack {
		t.Errorf("Black moves first: got=%s", b.Turn())
	}
	if b.MoveLimit() != 60 {
		t.Errorf("unexpected move limit: got=%d want=60", b.MoveLimit())
	}
}
