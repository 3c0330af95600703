package cssom

import "testing"

func display(input string) string {
	ts := Tokenize(input, false)
	return Display(ts.All())
}

func TestTokenizeIdent(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple", "color", "IDENT(color) EOF"},
		{"leading hyphen", "-moz-foo", "IDENT(-moz-foo) EOF"},
		{"escape", `\26 B`, "IDENT(&B) EOF"},
		{"numeric escape full", `\000026B`, "IDENT(&B) EOF"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := display(tt.input)
			if got != tt.expected {
				t.Errorf("Tokenize(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestTokenizeString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"double quotes", `"hello"`, "STRING(hello) EOF"},
		{"single quotes", `'world'`, "STRING(world) EOF"},
		{"escaped quote", `"a\"b"`, `STRING(a"b) EOF`},
		{"unterminated at EOF", "\"abc", "EOF"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := display(tt.input)
			if got != tt.expected {
				t.Errorf("Tokenize(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestTokenizeNumber(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"integer", "42", "INT(42) EOF"},
		{"decimal", "3.14", "NUMBER(3.14) EOF"},
		{"signed", "+5", "INT(+5) EOF"},
		{"percentage", "50%", "PERCENTAGE(50) EOF"},
		{"dimension", "10px", "DIM(10, px) EOF"},
		{"exponent", "1e3", "NUMBER(1000.0) EOF"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := display(tt.input)
			if got != tt.expected {
				t.Errorf("Tokenize(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestTokenizeHash(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		flag     HashFlag
	}{
		{"id-like", "#header", HashID},
		{"unrestricted", "#1a2b", HashUnrestricted},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := Tokenize(tt.input, false)
			tok := ts.Next()
			if tok.Kind != Hash {
				t.Fatalf("Kind = %v, want Hash", tok.Kind)
			}
			if tok.HashFlag != tt.flag {
				t.Errorf("HashFlag = %v, want %v", tok.HashFlag, tt.flag)
			}
		})
	}
}

func TestTokenizePunctuation(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"colon semicolon", ":;", "COLON SEMICOLON EOF"},
		{"braces", "{}", "OPEN-CURLY CLOSE-CURLY EOF"},
		{"brackets", "[]", "OPEN-SQUARE CLOSE-SQUARE EOF"},
		{"parens", "()", "OPEN-PAREN CLOSE-PAREN EOF"},
		{"comma", ",", "COMMA EOF"},
		{"cdo cdc", "<!---->", "CDO CDC EOF"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := display(tt.input)
			if got != tt.expected {
				t.Errorf("Tokenize(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestTokenizeComment(t *testing.T) {
	got := display("/* comment */a")
	want := "IDENT(a) EOF"
	if got != want {
		t.Errorf("Tokenize(comment+a) = %q, want %q", got, want)
	}
}

func TestTokenizeFunction(t *testing.T) {
	got := display("rgb(")
	want := "FUNCTION(rgb) EOF"
	if got != want {
		t.Errorf("Tokenize(rgb() = %q, want %q", got, want)
	}
}

func TestTokenizeURL(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"unquoted", "url(foo.png)", "URL(foo.png) EOF"},
		{"quoted becomes function", `url("foo.png")`, "FUNCTION(url) STRING(foo.png) CLOSE-PAREN EOF"},
		{"bad url recovers at close paren", "url(foo bar)", "BADURL EOF"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := display(tt.input)
			if got != tt.expected {
				t.Errorf("Tokenize(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestTokenizeUnicodeRange(t *testing.T) {
	ts := Tokenize("U+26", true)
	tok := ts.Next()
	if tok.Kind != UnicodeRange {
		t.Fatalf("Kind = %v, want UnicodeRange", tok.Kind)
	}
	if tok.RangeStart != 0x26 || tok.RangeEnd != 0x26 {
		t.Errorf("RangeStart/End = %x/%x, want 26/26", tok.RangeStart, tok.RangeEnd)
	}
}

func TestTokenizeWhitespaceCollapse(t *testing.T) {
	got := display("a   b\t\nc")
	want := "IDENT(a) WS IDENT(b) WS IDENT(c) EOF"
	if got != want {
		t.Errorf("Tokenize(a b c) = %q, want %q", got, want)
	}
}
