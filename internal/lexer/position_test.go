package lexer

import (
	"testing"
)

func TestPosition_String(t *testing.T) {
	tests := []struct {
		name     string
		pos      Position
		expected string
	}{
		{
			name:     "valid position",
			pos:      Position{Line: 3, Column: 15, Offset: 40},
			expected: "3:15",
		},
		{
			name:     "zero position",
			pos:      Position{},
			expected: "0:0",
		},
		{
			name:     "line 1 column 1",
			pos:      Position{Line: 1, Column: 1},
			expected: "1:1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.pos.String()
			if result != tt.expected {
				t.Errorf("Position.String() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestPosition_IsValid(t *testing.T) {
	if (Position{}).IsValid() {
		t.Error("zero Position should be invalid")
	}
	if !(Position{Line: 1, Column: 1}).IsValid() {
		t.Error("Position{1, 1} should be valid")
	}
}

func TestPosition_BeforeAfter(t *testing.T) {
	tests := []struct {
		name   string
		pos    Position
		other  Position
		before bool
		after  bool
	}{
		{"pos before other", Position{Offset: 10}, Position{Offset: 20}, true, false},
		{"pos after other", Position{Offset: 30}, Position{Offset: 20}, false, true},
		{"pos equals other", Position{Offset: 20}, Position{Offset: 20}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pos.Before(tt.other); got != tt.before {
				t.Errorf("Position.Before() = %v, want %v", got, tt.before)
			}
			if got := tt.pos.After(tt.other); got != tt.after {
				t.Errorf("Position.After() = %v, want %v", got, tt.after)
			}
		})
	}
}

func TestItoa(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "0"},
		{7, "7"},
		{42, "42"},
		{1000, "1000"},
		{-12, "-12"},
	}

	for _, tt := range tests {
		if got := itoa(tt.n); got != tt.want {
			t.Errorf("itoa(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestSpan_String(t *testing.T) {
	single := Span{
		Start: Position{Line: 1, Column: 5},
		End:   Position{Line: 1, Column: 9},
	}
	if got := single.String(); got != "1:5-9" {
		t.Errorf("Span.String() = %q, want %q", got, "1:5-9")
	}

	multi := Span{
		Start: Position{Line: 1, Column: 5},
		End:   Position{Line: 2, Column: 3},
	}
	if got := multi.String(); got != "1:5-2:3" {
		t.Errorf("Span.String() = %q, want %q", got, "1:5-2:3")
	}
}

func TestSpan_Contains(t *testing.T) {
	span := Span{
		Start: Position{Line: 1, Column: 5, Offset: 4},
		End:   Position{Line: 1, Column: 10, Offset: 9},
	}

	tests := []struct {
		name     string
		pos      Position
		expected bool
	}{
		{"position at start", Position{Line: 1, Column: 5, Offset: 4}, true},
		{"position in middle", Position{Line: 1, Column: 7, Offset: 6}, true},
		{"position at end", Position{Line: 1, Column: 10, Offset: 9}, true},
		{"position before start", Position{Line: 1, Column: 3, Offset: 2}, false},
		{"position after end", Position{Line: 1, Column: 15, Offset: 14}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := span.Contains(tt.pos)
			if result != tt.expected {
				t.Errorf("Span.Contains() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestSpan_Length(t *testing.T) {
	tests := []struct {
		name     string
		span     Span
		expected int
	}{
		{
			name: "normal span",
			span: Span{
				Start: Position{Line: 1, Offset: 10},
				End:   Position{Line: 1, Offset: 20},
			},
			expected: 10,
		},
		{
			name: "zero length span",
			span: Span{
				Start: Position{Line: 1, Offset: 10},
				End:   Position{Line: 1, Offset: 10},
			},
			expected: 0,
		},
		{
			name: "invalid span (end before start)",
			span: Span{
				Start: Position{Line: 1, Offset: 20},
				End:   Position{Line: 0, Offset: 10},
			},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.span.Length()
			if result != tt.expected {
				t.Errorf("Span.Length() = %v, want %v", result, tt.expected)
			}
		})
	}
}
