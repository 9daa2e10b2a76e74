package render

import "strings"

// Chart draws a fixed-height column chart of values, one column per value,
// suitable for terminal elevation profiles. Flat input renders a single
// baseline row.
func Chart(values []float64, height int) string {
	if len(values) == 0 || height < 1 {
		return ""
	}

	minV, maxV := values[0], values[0]
	for _, v := range values {
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}

	span := maxV - minV
	if span == 0 {
		return strings.Repeat("#", len(values)) + "\n"
	}

	// Column heights, 1..height (every column draws at least its baseline).
	levels := make([]int, len(values))
	for i, v := range values {
		levels[i] = 1 + int((v-minV)/span*float64(height-1)+0.5)
		if levels[i] > height {
			levels[i] = height
		}
	}

	var sb strings.Builder
	for row := height; row >= 1; row-- {
		line := make([]byte, len(values))
		for i, lvl := range levels {
			if lvl >= row {
				line[i] = '#'
			} else {
				line[i] = ' '
			}
		}
		sb.Write(line)
		sb.WriteByte('\n')
	}

	return sb.String()
}
