package textwidth

// Curated list of code points that render two columns wide on the terminals
// we target, layered over the standard East-Asian-width tables. The tables
// alone undercount emoji-presentation characters, which is exactly the class
// of glyph that used to shear frame borders.
//
// Extension policy: add a range only together with a regression test
// reproducing the miscount (see width_test.go).
var wideExceptions = [...]struct{ lo, hi rune }{
	{0x231a, 0x231b},   // watch, hourglass
	{0x23e9, 0x23ec},   // playback arrows
	{0x23f0, 0x23f3},   // alarm clock .. hourglass with sand
	{0x25fd, 0x25fe},   // small squares
	{0x2614, 0x2615},   // umbrella with rain, hot beverage
	{0x2648, 0x2653},   // zodiac
	{0x267f, 0x267f},   // wheelchair symbol
	{0x2693, 0x2693},   // anchor
	{0x26a1, 0x26a1},   // high voltage
	{0x26aa, 0x26ab},   // medium circles
	{0x26bd, 0x26be},   // soccer, baseball
	{0x26c4, 0x26c5},   // snowman, sun behind cloud
	{0x26ce, 0x26ce},   // ophiuchus
	{0x26d4, 0x26d4},   // no entry
	{0x26ea, 0x26ea},   // church
	{0x26f2, 0x26f3},   // fountain, golf
	{0x26f5, 0x26f5},   // sailboat
	{0x26fa, 0x26fa},   // tent
	{0x26fd, 0x26fd},   // fuel pump
	{0x2705, 0x2705},   // check mark button
	{0x270a, 0x270b},   // raised fist, raised hand
	{0x2728, 0x2728},   // sparkles
	{0x274c, 0x274c},   // cross mark
	{0x274e, 0x274e},   // cross mark button
	{0x2753, 0x2755},   // question/exclamation ornaments
	{0x2757, 0x2757},   // heavy exclamation
	{0x2795, 0x2797},   // heavy plus/minus/division
	{0x27b0, 0x27b0},   // curly loop
	{0x27bf, 0x27bf},   // double curly loop
	{0x2b1b, 0x2b1c},   // large squares
	{0x2b50, 0x2b50},   // star
	{0x2b55, 0x2b55},   // hollow red circle
	{0x1f004, 0x1f004}, // mahjong red dragon
	{0x1f0cf, 0x1f0cf}, // joker
	{0x1f18e, 0x1f18e}, // AB button
	{0x1f191, 0x1f19a}, // squared CL .. VS
	{0x1f201, 0x1f202}, // squared katakana
	{0x1f21a, 0x1f21a}, // squared CJK "free"
	{0x1f22f, 0x1f22f}, // squared CJK "reserved"
	{0x1f232, 0x1f23a}, // squared CJK ideographs
	{0x1f250, 0x1f251}, // circled ideographs
	{0x1f300, 0x1f5ff}, // symbols and pictographs
	{0x1f600, 0x1f64f}, // emoticons
	{0x1f680, 0x1f6ff}, // transport and map symbols
	{0x1f900, 0x1f9ff}, // supplemental symbols and pictographs
	{0x1fa70, 0x1faff}, // symbols and pictographs extended-A
}

func isWideException(r rune) bool {
	for _, e := range wideExceptions {
		if r >= e.lo && r <= e.hi {
			return true
		}
	}
	return false
}
