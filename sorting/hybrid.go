package sorting

import "math/bits"

const (
	// DefaultThreshold 이 길이 미만 구간은 삽입정렬 (HybridQuickSort)
	DefaultThreshold = 16
	// DefaultMergeThreshold 이 길이 이하 구간은 삽입정렬 (HybridMergeSort)
	DefaultMergeThreshold = 15
	// DefaultDepthFactor 깊이 예산 = factor * floor(log2(n))
	DefaultDepthFactor = 2
)

// DepthLimit 크기 n 입력의 초기 깊이 예산. n < 2 이면 0
func DepthLimit(n, factor int) int {
	if n < 2 {
		return 0
	}
	return factor * (bits.Len(uint(n)) - 1)
}

// orDefault 0 이하 설정값은 기본값으로
func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}

// hybridTrace nil이 아니면 HybridQuickSort가 구간마다 고른 전략을 알린다 (테스트 관찰용)
var hybridTrace func(strategy string, left, right int)

// HybridQuickSort 퀵 + 힙 + 삽입 하이브리드 (introsort 변형).
//
// 호출마다 순서대로 판단한다:
//  1. 구간 길이 < Threshold 이면 삽입정렬
//  2. 깊이 예산 <= 0 이면 남은 구간 전체를 힙정렬
//  3. 그 외에는 파티션 후 양쪽을 예산-1로 재귀
type HybridQuickSort struct {
	// Threshold 0 이하이면 DefaultThreshold
	Threshold int
	// DepthFactor 0 이하이면 DefaultDepthFactor
	DepthFactor int
}

func (HybridQuickSort) Name() string { return "HybridSort" }

func (h HybridQuickSort) Sort(seq []int, left, right int) {
	mustRange(seq, left, right)
	depth := DepthLimit(right-left+1, orDefault(h.DepthFactor, DefaultDepthFactor))
	introSort(seq, left, right, depth, orDefault(h.Threshold, DefaultThreshold))
}

// SortDepth 깊이 예산을 직접 지정해서 정렬
func (h HybridQuickSort) SortDepth(seq []int, left, right, depth int) {
	mustRange(seq, left, right)
	introSort(seq, left, right, depth, orDefault(h.Threshold, DefaultThreshold))
}

func introSort(arr []int, left, right, depth, threshold int) {
	if left >= right {
		return
	}

	if right-left+1 < threshold {
		observe("insertion", left, right)
		insertionSort(arr, left, right)
		return
	}

	if depth <= 0 {
		observe("heap", left, right)
		heapSort(arr, left, right)
		return
	}

	observe("partition", left, right)
	p := partition(arr, left, right)
	introSort(arr, left, p-1, depth-1, threshold)
	introSort(arr, p+1, right, depth-1, threshold)
}

func observe(strategy string, left, right int) {
	if hybridTrace != nil {
		hybridTrace(strategy, left, right)
	}
}
