package linear_model

import (
	"sort"

	"gonum.org/v1/gonum/mat"
)

// extractClasses returns the sorted unique integer labels in y.
func extractClasses(y mat.Matrix) []int {
	rows, _ := y.Dims()
	classMap := make(map[int]bool)
	for i := 0; i < rows; i++ {
		classMap[int(y.At(i, 0))] = true
	}

	classes := make([]int, 0, len(classMap))
	for class := range classMap {
		classes = append(classes, class)
	}
	sort.Ints(classes)
	return classes
}

// binaryTargets converts labels to 0/1 against the given positive class.
func binaryTargets(y mat.Matrix, positive int) []float64 {
	rows, _ := y.Dims()
	target := make([]float64, rows)
	for i := 0; i < rows; i++ {
		if int(y.At(i, 0)) == positive {
			target[i] = 1
		}
	}
	return target
}

func copyCoef(coef [][]float64) [][]float64 {
	if coef == nil {
		return nil
	}
	out := make([][]float64, len(coef))
	for i, row := range coef {
		out[i] = make([]float64, len(row))
		copy(out[i], row)
	}
	return out
}

func copyVec(v []float64) []float64 {
	if v == nil {
		return nil
	}
	out := make([]float64, len(v))
	copy(out, v)
	return out
}
