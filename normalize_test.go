package textkey

import "testing"

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "simple text",
			input:    "Hello World",
			expected: "hello world",
		},
		{
			name:     "leading and trailing whitespace",
			input:    "  Hello   World  ",
			expected: "hello world",
		},
		{
			name:     "internal run collapse",
			input:    "a \t\n b\r\nc",
			expected: "a b c",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "whitespace only",
			input:    "   ",
			expected: "",
		},
		{
			name:     "tabs and newlines only",
			input:    "\t\n\r ",
			expected: "",
		},
		{
			name:     "unicode whitespace",
			input:    "Hello  World",
			expected: "hello world",
		},
		{
			name:     "non-ascii lowercase",
			input:    "HÉLLO WÖRLD",
			expected: "héllo wörld",
		},
		{
			name:     "cyrillic",
			input:    "ПРИВЕТ\tМИР",
			expected: "привет мир",
		},
		{
			name:     "already normalized",
			input:    "hello world",
			expected: "hello world",
		},
		{
			name:     "single word",
			input:    "\n\nHello\n\n",
			expected: "hello",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NormalizeText(tt.input)
			if result != tt.expected {
				t.Errorf("NormalizeText(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestNormalizeText_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"Hello World",
		"  MIXED \t case\n input  ",
		"ПРИВЕТ МИР",
		"a b c",
	}

	for _, input := range inputs {
		once := NormalizeText(input)
		twice := NormalizeText(once)
		if once != twice {
			t.Errorf("NormalizeText not idempotent for %q: %q != %q", input, once, twice)
		}
	}
}

func TestNormalizeText_NoEdgeSpaces(t *testing.T) {
	inputs := []string{" x ", "\tx\t", "x ", " x", "  a  b  "}

	for _, input := range inputs {
		result := NormalizeText(input)
		if len(result) == 0 {
			continue
		}
		if result[0] == ' ' || result[len(result)-1] == ' ' {
			t.Errorf("NormalizeText(%q) = %q has edge whitespace", input, result)
		}
	}
}
