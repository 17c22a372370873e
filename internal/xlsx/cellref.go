package xlsx

import "strconv"

// ColumnLetters converts a 1-based column index to its spreadsheet
// letter label: 1 -> "A", 26 -> "Z", 27 -> "AA". This is bijective
// base-26 with no zero digit. Index must be >= 1.
func ColumnLetters(index int) string {
	var letters []byte
	for index > 0 {
		index--
		letters = append(letters, byte('A'+index%26))
		index /= 26
	}
	for i, j := 0, len(letters)-1; i < j; i, j = i+1, j-1 {
		letters[i], letters[j] = letters[j], letters[i]
	}
	return string(letters)
}

// CellRef builds an A1-style cell address from 1-based column and row
// indexes.
func CellRef(col, row int) string {
	return ColumnLetters(col) + strconv.Itoa(row)
}
