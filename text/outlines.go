package text

// outlines holds every printable ASCII glyph as polylines on a 4×8 grid:
// cap height 0, x-height 3, baseline 6, descender 8.
var outlines = map[rune][][]int{
	' ':  {},
	'!':  {{2, 0, 2, 4}, {2, 5, 2, 6}},
	'"':  {{1, 0, 1, 2}, {3, 0, 3, 2}},
	'#':  {{1, 0, 1, 6}, {3, 0, 3, 6}, {0, 2, 4, 2}, {0, 4, 4, 4}},
	'$':  {{4, 1, 1, 1, 0, 2, 1, 3, 3, 3, 4, 4, 3, 5, 0, 5}, {2, 0, 2, 6}},
	'%':  {{0, 6, 4, 0}, {0, 0, 1, 0, 1, 1, 0, 1, 0, 0}, {3, 5, 4, 5, 4, 6, 3, 6, 3, 5}},
	'&':  {{4, 6, 1, 2, 1, 1, 2, 0, 3, 1, 3, 2, 0, 4, 0, 5, 1, 6, 2, 6, 4, 4}},
	'\'': {{2, 0, 2, 2}},
	'(':  {{3, 0, 1, 2, 1, 4, 3, 6}},
	')':  {{1, 0, 3, 2, 3, 4, 1, 6}},
	'*':  {{2, 1, 2, 5}, {0, 2, 4, 4}, {0, 4, 4, 2}},
	'+':  {{2, 1, 2, 5}, {0, 3, 4, 3}},
	',':  {{2, 5, 2, 6, 1, 7}},
	'-':  {{1, 3, 3, 3}},
	'.':  {{2, 5, 2, 6}},
	'/':  {{0, 6, 4, 0}},

	'0': {{1, 0, 3, 0, 4, 1, 4, 5, 3, 6, 1, 6, 0, 5, 0, 1, 1, 0}, {0, 5, 4, 1}},
	'1': {{1, 1, 2, 0, 2, 6}, {1, 6, 3, 6}},
	'2': {{0, 1, 1, 0, 3, 0, 4, 1, 4, 2, 0, 6, 4, 6}},
	'3': {{0, 0, 4, 0, 2, 2, 3, 2, 4, 3, 4, 5, 3, 6, 1, 6, 0, 5}},
	'4': {{3, 6, 3, 0, 0, 4, 4, 4}},
	'5': {{4, 0, 0, 0, 0, 2, 3, 2, 4, 3, 4, 5, 3, 6, 0, 6}},
	'6': {{3, 0, 1, 0, 0, 1, 0, 5, 1, 6, 3, 6, 4, 5, 4, 4, 3, 3, 0, 3}},
	'7': {{0, 0, 4, 0, 1, 6}},
	'8': {{1, 0, 3, 0, 4, 1, 4, 2, 3, 3, 1, 3, 0, 4, 0, 5, 1, 6, 3, 6, 4, 5, 4, 4, 3, 3}, {1, 3, 0, 2, 0, 1, 1, 0}},
	'9': {{4, 3, 1, 3, 0, 2, 0, 1, 1, 0, 3, 0, 4, 1, 4, 5, 3, 6, 1, 6}},

	':': {{2, 1, 2, 2}, {2, 4, 2, 5}},
	';': {{2, 1, 2, 2}, {2, 4, 2, 6, 1, 7}},
	'<': {{4, 0, 0, 3, 4, 6}},
	'=': {{0, 2, 4, 2}, {0, 4, 4, 4}},
	'>': {{0, 0, 4, 3, 0, 6}},
	'?': {{0, 1, 1, 0, 3, 0, 4, 1, 4, 2, 2, 3, 2, 4}, {2, 5, 2, 6}},
	'@': {{3, 4, 3, 2, 1, 2, 1, 4, 3, 4, 4, 3, 4, 1, 3, 0, 1, 0, 0, 1, 0, 5, 1, 6, 4, 6}},

	'A': {{0, 6, 2, 0, 4, 6}, {1, 3, 3, 3}},
	'B': {{0, 0, 0, 6, 3, 6, 4, 5, 4, 4, 3, 3, 0, 3}, {0, 0, 3, 0, 4, 1, 4, 2, 3, 3}},
	'C': {{4, 1, 3, 0, 1, 0, 0, 1, 0, 5, 1, 6, 3, 6, 4, 5}},
	'D': {{0, 0, 0, 6, 2, 6, 4, 4, 4, 2, 2, 0, 0, 0}},
	'E': {{4, 0, 0, 0, 0, 6, 4, 6}, {0, 3, 3, 3}},
	'F': {{4, 0, 0, 0, 0, 6}, {0, 3, 3, 3}},
	'G': {{4, 1, 3, 0, 1, 0, 0, 1, 0, 5, 1, 6, 3, 6, 4, 5, 4, 3, 2, 3}},
	'H': {{0, 0, 0, 6}, {4, 0, 4, 6}, {0, 3, 4, 3}},
	'I': {{1, 0, 3, 0}, {2, 0, 2, 6}, {1, 6, 3, 6}},
	'J': {{4, 0, 4, 5, 3, 6, 1, 6, 0, 5}},
	'K': {{0, 0, 0, 6}, {4, 0, 0, 4}, {1, 3, 4, 6}},
	'L': {{0, 0, 0, 6, 4, 6}},
	'M': {{0, 6, 0, 0, 2, 3, 4, 0, 4, 6}},
	'N': {{0, 6, 0, 0, 4, 6, 4, 0}},
	'O': {{1, 0, 3, 0, 4, 1, 4, 5, 3, 6, 1, 6, 0, 5, 0, 1, 1, 0}},
	'P': {{0, 6, 0, 0, 3, 0, 4, 1, 4, 2, 3, 3, 0, 3}},
	'Q': {{1, 0, 3, 0, 4, 1, 4, 5, 3, 6, 1, 6, 0, 5, 0, 1, 1, 0}, {2, 4, 4, 7}},
	'R': {{0, 6, 0, 0, 3, 0, 4, 1, 4, 2, 3, 3, 0, 3}, {2, 3, 4, 6}},
	'S': {{4, 1, 3, 0, 1, 0, 0, 1, 0, 2, 1, 3, 3, 3, 4, 4, 4, 5, 3, 6, 1, 6, 0, 5}},
	'T': {{0, 0, 4, 0}, {2, 0, 2, 6}},
	'U': {{0, 0, 0, 5, 1, 6, 3, 6, 4, 5, 4, 0}},
	'V': {{0, 0, 2, 6, 4, 0}},
	'W': {{0, 0, 1, 6, 2, 3, 3, 6, 4, 0}},
	'X': {{0, 0, 4, 6}, {4, 0, 0, 6}},
	'Y': {{0, 0, 2, 3, 4, 0}, {2, 3, 2, 6}},
	'Z': {{0, 0, 4, 0, 0, 6, 4, 6}},

	'[':  {{3, 0, 1, 0, 1, 7, 3, 7}},
	'\\': {{0, 0, 4, 6}},
	']':  {{1, 0, 3, 0, 3, 7, 1, 7}},
	'^':  {{0, 2, 2, 0, 4, 2}},
	'_':  {{0, 8, 4, 8}},
	'`':  {{1, 0, 2, 1}},

	'a': {{1, 3, 3, 3, 4, 4, 4, 6}, {4, 5, 3, 6, 1, 6, 0, 5, 1, 4, 4, 4}},
	'b': {{0, 0, 0, 6, 3, 6, 4, 5, 4, 4, 3, 3, 0, 3}},
	'c': {{4, 3, 1, 3, 0, 4, 0, 5, 1, 6, 4, 6}},
	'd': {{4, 0, 4, 6, 1, 6, 0, 5, 0, 4, 1, 3, 4, 3}},
	'e': {{0, 4, 4, 4, 3, 3, 1, 3, 0, 4, 0, 5, 1, 6, 4, 6}},
	'f': {{3, 0, 2, 0, 1, 1, 1, 6}, {0, 3, 3, 3}},
	'g': {{4, 3, 4, 7, 3, 8, 0, 8}, {4, 3, 1, 3, 0, 4, 0, 5, 1, 6, 4, 6}},
	'h': {{0, 0, 0, 6}, {0, 4, 1, 3, 3, 3, 4, 4, 4, 6}},
	'i': {{2, 3, 2, 6}, {2, 1, 2, 2}},
	'j': {{3, 3, 3, 7, 2, 8, 0, 8}, {3, 1, 3, 2}},
	'k': {{0, 0, 0, 6}, {4, 3, 0, 5}, {2, 4, 4, 6}},
	'l': {{1, 0, 2, 0, 2, 6}, {1, 6, 3, 6}},
	'm': {{0, 6, 0, 3}, {0, 4, 1, 3, 2, 4, 2, 6}, {2, 4, 3, 3, 4, 4, 4, 6}},
	'n': {{0, 3, 0, 6}, {0, 4, 1, 3, 3, 3, 4, 4, 4, 6}},
	'o': {{1, 3, 3, 3, 4, 4, 4, 5, 3, 6, 1, 6, 0, 5, 0, 4, 1, 3}},
	'p': {{0, 3, 0, 8}, {0, 3, 3, 3, 4, 4, 4, 5, 3, 6, 0, 6}},
	'q': {{4, 3, 4, 8}, {4, 3, 1, 3, 0, 4, 0, 5, 1, 6, 4, 6}},
	'r': {{0, 3, 0, 6}, {0, 4, 1, 3, 4, 3}},
	's': {{4, 3, 1, 3, 0, 4, 4, 5, 3, 6, 0, 6}},
	't': {{1, 1, 1, 5, 2, 6, 3, 6}, {0, 3, 3, 3}},
	'u': {{0, 3, 0, 5, 1, 6, 3, 6, 4, 5}, {4, 3, 4, 6}},
	'v': {{0, 3, 2, 6, 4, 3}},
	'w': {{0, 3, 1, 6, 2, 4, 3, 6, 4, 3}},
	'x': {{0, 3, 4, 6}, {4, 3, 0, 6}},
	'y': {{0, 3, 2, 6}, {4, 3, 2, 6, 1, 8}},
	'z': {{0, 3, 4, 3, 0, 6, 4, 6}},

	'{': {{3, 0, 2, 1, 2, 2, 1, 3, 2, 4, 2, 6, 3, 7}},
	'|': {{2, 0, 2, 8}},
	'}': {{1, 0, 2, 1, 2, 2, 3, 3, 2, 4, 2, 6, 1, 7}},
	'~': {{0, 3, 1, 2, 3, 4, 4, 3}},
}
