package parallel

// Band is a contiguous run of rows [Y0, Y1).
type Band struct {
	Y0, Y1 int
}

// Height returns the number of rows in the band.
func (b Band) Height() int {
	return b.Y1 - b.Y0
}

// Split divides height rows into bands of at most bandHeight rows. The
// bands are in order, disjoint and cover every row. A bandHeight of 0 or
// less yields a single band.
func Split(height, bandHeight int) []Band {
	if height <= 0 {
		return nil
	}
	if bandHeight <= 0 || bandHeight > height {
		bandHeight = height
	}

	bands := make([]Band, 0, (height+bandHeight-1)/bandHeight)
	for y := 0; y < height; y += bandHeight {
		bands = append(bands, Band{Y0: y, Y1: min(y+bandHeight, height)})
	}
	return bands
}
