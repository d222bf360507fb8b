package targeting

// labelSpace is the number of distinct two-letter labels (AA..ZZ).
const labelSpace = 26 * 26

// Encode converts a zero-based cell index to a two-letter label.
// 0 -> AA, 1 -> AB, ..., 25 -> AZ, 26 -> BA, ..., 675 -> ZZ.
// Indices beyond 675 wrap around, so grids with more than 676 cells
// reuse labels and only the last cell with a given label is reachable.
func Encode(index int) string {
	i := index % labelSpace
	if i < 0 {
		i += labelSpace
	}
	return string([]byte{'A' + byte(i/26), 'A' + byte(i%26)})
}
