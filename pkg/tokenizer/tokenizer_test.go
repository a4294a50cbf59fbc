package tokenizer

import (
	"context"
	"testing"
)

func TestWordCount_Cost(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{
			name:     "empty",
			input:    "",
			expected: 0,
		},
		{
			name:     "whitespace only",
			input:    "   \n\t ",
			expected: 0,
		},
		{
			name:     "single word",
			input:    "hello",
			expected: 1,
		},
		{
			name:     "ten words rounds up",
			input:    "one two three four five six seven eight nine ten",
			expected: 13,
		},
		{
			name:     "two words",
			input:    "hello world",
			expected: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WordCount{}.Cost(tt.input)
			if got != tt.expected {
				t.Errorf("Cost(%q) = %d, want %d", tt.input, got, tt.expected)
			}
		})
	}
}

func TestWordCount_Monotonic(t *testing.T) {
	wc := WordCount{}
	prev := 0
	text := ""
	for i := 0; i < 20; i++ {
		text += "word "
		cost := wc.Cost(text)
		if cost < prev {
			t.Fatalf("cost decreased from %d to %d at %d words", prev, cost, i+1)
		}
		prev = cost
	}
}

func TestNew_ReturnsUsableEstimator(t *testing.T) {
	est := New(context.Background())
	if est == nil {
		t.Fatal("New returned nil")
	}
	if cost := est.Cost("hello world"); cost <= 0 {
		t.Errorf("Cost(\"hello world\") = %d, want > 0", cost)
	}
	if cost := est.Cost(""); cost != 0 {
		t.Errorf("Cost(\"\") = %d, want 0", cost)
	}
}
