package allotment

import "testing"

func TestNextID(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"CS22B001", "CS22B002", true},
		{"CS22B009", "CS22B010", true},
		{"A99", "A100", true},
		{"0", "1", true},
		{"007", "008", true},
		{"ROLL", "ROLL", false},
		{"", "", false},
		{"12A", "12A", false},
		{"X123456789012345678901234567890", "X123456789012345678901234567891", true},
	}

	for _, tt := range tests {
		got, ok := NextID(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("NextID(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestPrevID(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"CS22B010", "CS22B009", true},
		{"A100", "A099", true},
		{"A000", "A000", true},
		{"0", "0", true},
		{"ROLL", "ROLL", false},
	}

	for _, tt := range tests {
		got, ok := PrevID(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("PrevID(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestNextPrevRoundTrip(t *testing.T) {
	id := "EE21B045"
	next, _ := NextID(id)
	back, _ := PrevID(next)
	if back != id {
		t.Errorf("PrevID(NextID(%q)) = %q", id, back)
	}
}
