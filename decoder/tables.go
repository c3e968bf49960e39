package decoder

// unknownGlyph is emitted for a morse pattern no table recognises,
// a dedicated sentinel glyph rather than echoing the raw pattern
// back in brackets.
const unknownGlyph = "□" // □

// prosignTable is checked before the ordinary language dictionaries:
// some prosign codes collide with punctuation codes in the plain
// letter tables (".-.-." is both <AR> and, in some tables, "+"), so
// prosigns take priority and render wrapped in angle brackets.
var prosignTable = map[string]string{
	".-.-.":   "<AR>",
	"...-.-":  "<SK>",
	"-...-":   "<BT>",
	"-.-.-":   "<CT>",
	"-.--.":   "<KN>",
	".-...":   "<AS>",
	"........": "<HH>",
	"...-.":   "<SN>",
	"..-.-":    "<INT>",
}

// latinTable is the standard international Morse alphabet: letters,
// digits, and punctuation, the same ITU table regardless of decoding
// regime.
var latinTable = map[string]string{
	".-": "A", "-...": "B", "-.-.": "C", "-..": "D", ".": "E",
	"..-.": "F", "--.": "G", "....": "H", "..": "I", ".---": "J",
	"-.-": "K", ".-..": "L", "--": "M", "-.": "N", "---": "O",
	".--.": "P", "--.-": "Q", ".-.": "R", "...": "S", "-": "T",
	"..-": "U", "...-": "V", ".--": "W", "-..-": "X", "-.--": "Y",
	"--..": "Z",

	"-----": "0", ".----": "1", "..---": "2", "...--": "3", "....-": "4",
	".....": "5", "-....": "6", "--...": "7", "---..": "8", "----.": "9",

	".-.-.-": ".", "--..--": ",", "..--..": "?", ".----.": "'",
	"-.-.--": "!", "-..-.": "/", "-.--.": "(", "-.--.-": ")",
	".-...": "&", "---...": ":", "-.-.-.": ";", "-...-": "=",
	".-.-.": "+", "-....-": "-", "..--.-": "_", ".-..-.": "\"",
	"...-..-": "$", ".--.-.": "@",
}

// cyrillicTable is the standard Morse mapping for the Russian
// alphabet. "..-." is ambiguous between Ф and Э depending on
// convention; this table keeps only Ф, since it has no other
// competing code while Э's mapping is itself convention-dependent.
var cyrillicTable = map[string]string{
	".-":   "А",
	"-...": "Б",
	".--":  "В",
	"--.":  "Г",
	"-..":  "Д",
	".":    "Е",
	"...-": "Ж",
	"--..": "З",
	"..":   "И",
	".---": "Й",
	"-.-":  "К",
	".-..": "Л",
	"--":   "М",
	"-.":   "Н",
	"---":  "О",
	".--.": "П",
	".-.":  "Р",
	"...":  "С",
	"-":    "Т",
	"..-":  "У",
	"..-.": "Ф", // ambiguous with Э in the source table; see comment above
	"----": "Ч",
	"----.": "Ш",
	"--.-": "Щ",
	".--.-.": "Ъ",
	"-.--": "Ы",
	"-..-": "Ь",
	"..-..": "Э",
	"..--": "Ю",
	".-.-": "Я",
	"-.-.": "Ц",
	"...." : "Х",
}

// decodeLetter converts one morse pattern to its rendered character,
// checking prosigns first, then the requested language table, falling
// back to the unknown glyph.
func decodeLetter(pattern string, cyrillic bool) string {
	if ch, ok := prosignTable[pattern]; ok {
		return ch
	}
	table := latinTable
	if cyrillic {
		table = cyrillicTable
	}
	if ch, ok := table[pattern]; ok {
		return ch
	}
	return unknownGlyph
}
