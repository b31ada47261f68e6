package format

import (
	"math/big"

	"github.com/doubledesc/dd/row"
)

// PointFromDisk converts a disk-layout point row (homogenizing
// coordinate first: [h, x_1, ..., x_d]) to the internal layout
// ([x_1, ..., x_d, h]) documented on the row package.
func PointFromDisk(disk []int64) row.Row {
	n := len(disk)
	out := make(row.Row, n)
	for i := 1; i < n; i++ {
		out[i-1] = big.NewInt(disk[i])
	}
	out[n-1] = big.NewInt(disk[0])
	return out
}

// PointToDisk is PointFromDisk's inverse, used by PrintVertices.
func PointToDisk(r row.Row) []int64 {
	n := r.Len()
	out := make([]int64, n)
	out[0] = r[n-1].Int64()
	for i := 0; i < n-1; i++ {
		out[i+1] = r[i].Int64()
	}
	return out
}

// IneqFromDisk converts a disk-layout inequality row ([b, a_1, ...,
// a_d], representing a.x <= b) to the internal layout ([-a_1, ...,
// -a_d, b]) documented on the row package.
func IneqFromDisk(disk []int64) row.Row {
	n := len(disk)
	out := make(row.Row, n)
	for i := 1; i < n; i++ {
		out[i-1] = big.NewInt(-disk[i])
	}
	out[n-1] = big.NewInt(disk[0])
	return out
}

// IneqToDisk is IneqFromDisk's inverse, used by PrettyPrint.
func IneqToDisk(r row.Row) []int64 {
	n := r.Len()
	out := make([]int64, n)
	out[0] = r[n-1].Int64()
	for i := 0; i < n-1; i++ {
		out[i+1] = -r[i].Int64()
	}
	return out
}

// PointsFromDisk converts every row of disk with PointFromDisk.
func PointsFromDisk(disk [][]int64) row.Matrix {
	out := make(row.Matrix, len(disk))
	for i, d := range disk {
		out[i] = PointFromDisk(d)
	}
	return out
}

// IneqsFromDisk converts every row of disk with IneqFromDisk.
func IneqsFromDisk(disk [][]int64) row.Matrix {
	out := make(row.Matrix, len(disk))
	for i, d := range disk {
		out[i] = IneqFromDisk(d)
	}
	return out
}
