package chainquiz

import "testing"

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in      string
		want    Difficulty
		wantErr bool
	}{
		{"easy", DifficultyEasy, false},
		{"intermediate", DifficultyIntermediate, false},
		{"hard", DifficultyHard, false},
		{"", "", true},
		{"EASY", "", true},
		{"medium", "", true},
	}

	for _, tt := range tests {
		got, err := ParseDifficulty(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseDifficulty(%q): expected error, got %q", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDifficulty(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseDifficulty(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDifficultiesOrder(t *testing.T) {
	ds := Difficulties()
	want := []Difficulty{DifficultyEasy, DifficultyIntermediate, DifficultyHard}
	if len(ds) != len(want) {
		t.Fatalf("got %d difficulties, want %d", len(ds), len(want))
	}
	for i := range want {
		if ds[i] != want[i] {
			t.Errorf("difficulty %d = %q, want %q", i, ds[i], want[i])
		}
	}
}
