// Package glyph is the static 5x5 font used to scroll text across the matrix.
package glyph

const (
	// Width is the number of columns in a glyph
	Width = 5
	// Height is the number of rows in a glyph
	Height = 5

	first = 0x20
	last  = 0x7e
)

// Glyph is an immutable 5x5 pixel pattern. Each element is one row; bit 4 is
// the leftmost column and bit 0 the rightmost.
type Glyph [Height]uint8

// Blank is returned for characters the table does not cover
var Blank Glyph

// Lookup returns the pattern for c, or Blank when c is not printable ASCII.
// It is safe to call from any goroutine.
func Lookup(c byte) Glyph {
	if !Supported(c) {
		return Blank
	}
	return table[c-first]
}

// Supported reports whether the table holds a pattern for c
func Supported(c byte) bool {
	return c >= first && c <= last
}

// Lit reports whether the pixel at (row, col) is on. Coordinates outside the
// glyph are off.
func (g Glyph) Lit(row, col int) bool {
	if row < 0 || row >= Height || col < 0 || col >= Width {
		return false
	}
	return g[row]&(1<<(Width-1-col)) != 0
}

// table covers printable ASCII, indexed from first
var table = [last - first + 1]Glyph{
	{0b00000, 0b00000, 0b00000, 0b00000, 0b00000}, // ' '
	{0b00100, 0b00100, 0b00100, 0b00000, 0b00100}, // '!'
	{0b01010, 0b01010, 0b00000, 0b00000, 0b00000}, // '"'
	{0b01010, 0b11111, 0b01010, 0b11111, 0b01010}, // '#'
	{0b01111, 0b10100, 0b01110, 0b00101, 0b11110}, // '$'
	{0b11001, 0b11010, 0b00100, 0b01011, 0b10011}, // '%'
	{0b01100, 0b10010, 0b01101, 0b10010, 0b01101}, // '&'
	{0b00100, 0b00100, 0b00000, 0b00000, 0b00000}, // '\''
	{0b00010, 0b00100, 0b00100, 0b00100, 0b00010}, // '('
	{0b01000, 0b00100, 0b00100, 0b00100, 0b01000}, // ')'
	{0b00000, 0b01010, 0b00100, 0b01010, 0b00000}, // '*'
	{0b00000, 0b00100, 0b01110, 0b00100, 0b00000}, // '+'
	{0b00000, 0b00000, 0b00000, 0b00100, 0b01000}, // ','
	{0b00000, 0b00000, 0b01110, 0b00000, 0b00000}, // '-'
	{0b00000, 0b00000, 0b00000, 0b00000, 0b00100}, // '.'
	{0b00001, 0b00010, 0b00100, 0b01000, 0b10000}, // '/'
	{0b01110, 0b10011, 0b10101, 0b11001, 0b01110}, // '0'
	{0b00100, 0b01100, 0b00100, 0b00100, 0b01110}, // '1'
	{0b11100, 0b00010, 0b01100, 0b10000, 0b11110}, // '2'
	{0b11110, 0b00010, 0b00100, 0b10010, 0b01100}, // '3'
	{0b00110, 0b01010, 0b10010, 0b11111, 0b00010}, // '4'
	{0b11111, 0b10000, 0b11110, 0b00001, 0b11110}, // '5'
	{0b00010, 0b00100, 0b01110, 0b10001, 0b01110}, // '6'
	{0b11111, 0b00010, 0b00100, 0b01000, 0b10000}, // '7'
	{0b01110, 0b10001, 0b01110, 0b10001, 0b01110}, // '8'
	{0b01110, 0b10001, 0b01110, 0b00100, 0b01000}, // '9'
	{0b00000, 0b00100, 0b00000, 0b00100, 0b00000}, // ':'
	{0b00000, 0b00100, 0b00000, 0b00100, 0b01000}, // ';'
	{0b00010, 0b00100, 0b01000, 0b00100, 0b00010}, // '<'
	{0b00000, 0b01110, 0b00000, 0b01110, 0b00000}, // '='
	{0b01000, 0b00100, 0b00010, 0b00100, 0b01000}, // '>'
	{0b01110, 0b00001, 0b00110, 0b00000, 0b00100}, // '?'
	{0b01110, 0b10001, 0b10111, 0b10000, 0b01110}, // '@'
	{0b01100, 0b10010, 0b11110, 0b10010, 0b10010}, // 'A'
	{0b11100, 0b10010, 0b11100, 0b10010, 0b11100}, // 'B'
	{0b01110, 0b10000, 0b10000, 0b10000, 0b01110}, // 'C'
	{0b11100, 0b10010, 0b10010, 0b10010, 0b11100}, // 'D'
	{0b11110, 0b10000, 0b11100, 0b10000, 0b11110}, // 'E'
	{0b11110, 0b10000, 0b11100, 0b10000, 0b10000}, // 'F'
	{0b01110, 0b10000, 0b10011, 0b10001, 0b01110}, // 'G'
	{0b10010, 0b10010, 0b11110, 0b10010, 0b10010}, // 'H'
	{0b11100, 0b01000, 0b01000, 0b01000, 0b11100}, // 'I'
	{0b11111, 0b00010, 0b00010, 0b10010, 0b01100}, // 'J'
	{0b10010, 0b10100, 0b11000, 0b10100, 0b10010}, // 'K'
	{0b10000, 0b10000, 0b10000, 0b10000, 0b11110}, // 'L'
	{0b10001, 0b11011, 0b10101, 0b10001, 0b10001}, // 'M'
	{0b10001, 0b11001, 0b10101, 0b10011, 0b10001}, // 'N'
	{0b01100, 0b10010, 0b10010, 0b10010, 0b01100}, // 'O'
	{0b11100, 0b10010, 0b11100, 0b10000, 0b10000}, // 'P'
	{0b01100, 0b10010, 0b10010, 0b01100, 0b00110}, // 'Q'
	{0b11100, 0b10010, 0b11100, 0b10010, 0b10001}, // 'R'
	{0b01110, 0b10000, 0b01100, 0b00010, 0b11100}, // 'S'
	{0b11111, 0b00100, 0b00100, 0b00100, 0b00100}, // 'T'
	{0b10010, 0b10010, 0b10010, 0b10010, 0b01100}, // 'U'
	{0b10001, 0b10001, 0b10001, 0b01010, 0b00100}, // 'V'
	{0b10001, 0b10001, 0b10101, 0b11011, 0b10001}, // 'W'
	{0b10010, 0b10010, 0b01100, 0b10010, 0b10010}, // 'X'
	{0b10001, 0b01010, 0b00100, 0b00100, 0b00100}, // 'Y'
	{0b11110, 0b00100, 0b01000, 0b10000, 0b11110}, // 'Z'
	{0b01110, 0b01000, 0b01000, 0b01000, 0b01110}, // '['
	{0b10000, 0b01000, 0b00100, 0b00010, 0b00001}, // '\\'
	{0b01110, 0b00010, 0b00010, 0b00010, 0b01110}, // ']'
	{0b00100, 0b01010, 0b00000, 0b00000, 0b00000}, // '^'
	{0b00000, 0b00000, 0b00000, 0b00000, 0b11111}, // '_'
	{0b01000, 0b00100, 0b00000, 0b00000, 0b00000}, // '`'
	{0b00000, 0b01110, 0b10010, 0b10010, 0b01111}, // 'a'
	{0b10000, 0b10000, 0b11100, 0b10010, 0b11100}, // 'b'
	{0b00000, 0b01110, 0b10000, 0b10000, 0b01110}, // 'c'
	{0b00010, 0b00010, 0b01110, 0b10010, 0b01110}, // 'd'
	{0b01100, 0b10010, 0b11100, 0b10000, 0b01110}, // 'e'
	{0b00110, 0b01000, 0b11100, 0b01000, 0b01000}, // 'f'
	{0b01110, 0b10010, 0b01110, 0b00010, 0b01100}, // 'g'
	{0b10000, 0b10000, 0b11100, 0b10010, 0b10010}, // 'h'
	{0b01000, 0b00000, 0b01000, 0b01000, 0b01000}, // 'i'
	{0b00010, 0b00000, 0b00010, 0b00010, 0b01100}, // 'j'
	{0b10000, 0b10100, 0b11000, 0b10100, 0b10010}, // 'k'
	{0b01000, 0b01000, 0b01000, 0b01000, 0b00110}, // 'l'
	{0b00000, 0b11011, 0b10101, 0b10101, 0b10001}, // 'm'
	{0b00000, 0b11100, 0b10010, 0b10010, 0b10010}, // 'n'
	{0b00000, 0b01100, 0b10010, 0b10010, 0b01100}, // 'o'
	{0b00000, 0b11100, 0b10010, 0b11100, 0b10000}, // 'p'
	{0b00000, 0b01110, 0b10010, 0b01110, 0b00010}, // 'q'
	{0b00000, 0b01110, 0b10000, 0b10000, 0b10000}, // 'r'
	{0b00000, 0b00110, 0b01000, 0b00100, 0b11000}, // 's'
	{0b01000, 0b01000, 0b01110, 0b01000, 0b00111}, // 't'
	{0b00000, 0b10010, 0b10010, 0b10010, 0b01111}, // 'u'
	{0b00000, 0b10001, 0b10001, 0b01010, 0b00100}, // 'v'
	{0b00000, 0b10001, 0b10101, 0b10101, 0b01010}, // 'w'
	{0b00000, 0b10010, 0b01100, 0b01100, 0b10010}, // 'x'
	{0b00000, 0b10010, 0b01110, 0b00010, 0b01100}, // 'y'
	{0b00000, 0b11110, 0b00100, 0b01000, 0b11110}, // 'z'
	{0b00110, 0b00100, 0b01100, 0b00100, 0b00110}, // '{'
	{0b00100, 0b00100, 0b00100, 0b00100, 0b00100}, // '|'
	{0b01100, 0b00100, 0b00110, 0b00100, 0b01100}, // '}'
	{0b00000, 0b00000, 0b01101, 0b10110, 0b00000}, // '~'
}
