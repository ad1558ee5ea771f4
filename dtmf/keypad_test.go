package dtmf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeKeypad_AllSixteenCombinations(t *testing.T) {
	var expected = [4][4]byte{
		{'1', '2', '3', 'A'},
		{'4', '5', '6', 'B'},
		{'7', '8', '9', 'C'},
		{'*', '0', '#', 'D'},
	}

	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			var tones [NumTones]bool
			tones[row] = true
			tones[4+col] = true

			var key, ok = DecodeKeypad(tones)

			assert.True(t, ok)
			assert.Equal(t, expected[row][col], key)
		}
	}
}

func TestDecodeKeypad_NoTonesIsNoKey(t *testing.T) {
	var key, ok = DecodeKeypad([NumTones]bool{})

	assert.False(t, ok)
	assert.Equal(t, byte(NoKey), key)
}

func TestDecodeKeypad_AmbiguousRowsOrColumnsIsNoKey(t *testing.T) {
	var twoRows [NumTones]bool
	twoRows[0] = true
	twoRows[1] = true
	twoRows[4] = true

	var _, ok = DecodeKeypad(twoRows)
	assert.False(t, ok)

	var twoCols [NumTones]bool
	twoCols[0] = true
	twoCols[4] = true
	twoCols[5] = true

	_, ok = DecodeKeypad(twoCols)
	assert.False(t, ok)
}

func TestDecodeKeypad_OnlyRowOrOnlyColumnIsNoKey(t *testing.T) {
	var onlyRow [NumTones]bool
	onlyRow[2] = true

	var _, ok = DecodeKeypad(onlyRow)
	assert.False(t, ok)

	var onlyCol [NumTones]bool
	onlyCol[6] = true

	_, ok = DecodeKeypad(onlyCol)
	assert.False(t, ok)
}

func TestFrequenciesForKey_RoundTripsWithKeypadMatrix(t *testing.T) {
	for _, key := range []byte("123A456B789C*0#D") {
		var rowHz, colHz, ok = FrequenciesForKey(key)
		assert.True(t, ok, "key %q should resolve", key)

		var tones [NumTones]bool
		for i, f := range RowFrequenciesHz {
			if f == rowHz {
				tones[i] = true
			}
		}

		for i, f := range ColFrequenciesHz {
			if f == colHz {
				tones[4+i] = true
			}
		}

		var decoded, decodedOK = DecodeKeypad(tones)
		assert.True(t, decodedOK)
		assert.Equal(t, key, decoded)
	}
}

func TestFrequenciesForKey_LowercaseAndUnknown(t *testing.T) {
	var rowHz, colHz, ok = FrequenciesForKey('a')
	assert.True(t, ok)
	assert.Equal(t, RowFrequenciesHz[0], rowHz)
	assert.Equal(t, ColFrequenciesHz[3], colHz)

	_, _, ok = FrequenciesForKey('Z')
	assert.False(t, ok)
}
