package readingorder

import (
	"math"
	"sort"
)

// detectColumns clusters the nodes' left-x coordinates into column
// positions. The sorted coordinates are scanned once; a gap larger than
// gapThreshold starts a new column. Each returned position is the mean
// left-x of its cluster, ascending.
func detectColumns(nodes []spatialNode, gapThreshold float64) []float64 {
	if len(nodes) == 0 {
		return nil
	}

	xs := make([]float64, len(nodes))
	for i, sn := range nodes {
		xs[i] = sn.box.Left()
	}
	sort.Float64s(xs)

	var columns []float64
	clusterSum := xs[0]
	clusterCount := 1
	previous := xs[0]

	for _, x := range xs[1:] {
		if x-previous > gapThreshold {
			columns = append(columns, clusterSum/float64(clusterCount))
			clusterSum = 0
			clusterCount = 0
		}
		clusterSum += x
		clusterCount++
		previous = x
	}
	columns = append(columns, clusterSum/float64(clusterCount))

	return columns
}

// nearestColumn returns the index of the column position closest to x, or
// -1 when no column lies within gapThreshold.
func nearestColumn(x float64, columns []float64, gapThreshold float64) int {
	best := -1
	bestDistance := math.MaxFloat64

	for i, pos := range columns {
		d := math.Abs(x - pos)
		if d < bestDistance {
			best = i
			bestDistance = d
		}
	}

	if best >= 0 && bestDistance <= gapThreshold {
		return best
	}
	return -1
}
