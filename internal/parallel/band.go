package parallel

// Band is a contiguous range of canvas rows [Start, End).
type Band struct {
	Start int
	End   int
}

// Rows returns the number of rows covered by the band.
func (b Band) Rows() int {
	return b.End - b.Start
}

// Bands splits height rows into at most count contiguous,
// non-overlapping bands that together cover [0, height) exactly.
// When height does not divide evenly, the remainder rows are spread
// one per band from the top. Fewer than count bands are returned when
// height < count (each band holds at least one row).
func Bands(height, count int) []Band {
	if height <= 0 {
		return nil
	}
	if count < 1 {
		count = 1
	}
	if count > height {
		count = height
	}

	per := height / count
	extra := height % count

	bands := make([]Band, count)
	start := 0
	for i := range bands {
		rows := per
		if i < extra {
			rows++
		}
		bands[i] = Band{Start: start, End: start + rows}
		start += rows
	}
	return bands
}
