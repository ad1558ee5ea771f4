package dtmf

// NoKey is returned by DecodeKeypad when zero or more than one row or
// column tone is simultaneously detected.
const NoKey = 0

// keypadMatrix maps (row, col) to the pressed key, row 0..3 against
// RowFrequenciesHz, col 0..3 against ColFrequenciesHz. Grounded in the
// teacher's dtmf.go rc2char table; retains the D-on-1633Hz association the
// teacher uses even though production DTMF only standardizes A-D against
// 1633 Hz in that one column, per spec §9's explicit instruction to keep
// it.
var keypadMatrix = [4][4]byte{
	{'1', '2', '3', 'A'},
	{'4', '5', '6', 'B'},
	{'7', '8', '9', 'C'},
	{'*', '0', '#', 'D'},
}

// DecodeKeypad is a pure function mapping the eight tone-detection flags
// (0..3 row, 4..7 column) to a single pressed key. It holds no state. A key
// is reported pressed iff exactly one row tone and exactly one column tone
// are simultaneously detected; any other combination — none, or more than
// one tone in either group — decodes to NoKey, per spec §3/§4.6. The
// individual tone flags remain independently observable via Table even
// when DecodeKeypad reports NoKey.
func DecodeKeypad(tones [NumTones]bool) (key byte, ok bool) {
	var row, col = -1, -1

	for i := 0; i < 4; i++ {
		if tones[i] {
			if row != -1 {
				return NoKey, false
			}

			row = i
		}
	}

	for i := 4; i < NumTones; i++ {
		if tones[i] {
			if col != -1 {
				return NoKey, false
			}

			col = i - 4
		}
	}

	if row == -1 || col == -1 {
		return NoKey, false
	}

	return keypadMatrix[row][col], true
}

// FrequenciesForKey inverts keypadMatrix: given one of the sixteen DTMF key
// characters (case-insensitive for A-D), it returns the row and column
// frequencies that together encode it. Used by the tone generator (spec
// §4.8) to synthesize a key press without duplicating the matrix.
func FrequenciesForKey(key byte) (rowHz, colHz int, ok bool) {
	if key >= 'a' && key <= 'd' {
		key -= 'a' - 'A'
	}

	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			if keypadMatrix[row][col] == key {
				return RowFrequenciesHz[row], ColFrequenciesHz[col], true
			}
		}
	}

	return 0, 0, false
}
