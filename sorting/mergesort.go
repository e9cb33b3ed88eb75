package sorting

// MergeSort 기준 머지소트 (컷오프 없음)
type MergeSort struct{}

func (MergeSort) Name() string { return "MergeSort" }

func (MergeSort) Sort(seq []int, left, right int) {
	mustRange(seq, left, right)
	if left >= right {
		return
	}
	buf := make([]int, right-left+1)
	mergeSort(seq, buf, left, right, 0)
}

// HybridMergeSort 머지소트 + 삽입정렬. 길이가 Threshold 이하인 구간은 삽입정렬
type HybridMergeSort struct {
	// Threshold 0 이하이면 DefaultMergeThreshold
	Threshold int
}

func (HybridMergeSort) Name() string { return "HybridMergeSort" }

func (h HybridMergeSort) Sort(seq []int, left, right int) {
	mustRange(seq, left, right)
	if left >= right {
		return
	}
	buf := make([]int, right-left+1)
	mergeSort(seq, buf, left, right, orDefault(h.Threshold, DefaultMergeThreshold))
}

// mergeSort buf는 최상위 호출에서 한 번만 할당하고 모든 병합 단계가 재사용한다
func mergeSort(arr, buf []int, left, right, threshold int) {
	if right-left+1 <= threshold {
		insertionSort(arr, left, right)
		return
	}
	if left >= right {
		return
	}

	mid := left + (right-left)/2
	mergeSort(arr, buf, left, mid, threshold)
	mergeSort(arr, buf, mid+1, right, threshold)
	merge(arr, buf, left, mid, right)
}

// merge arr[left..mid]와 arr[mid+1..right]를 병합
func merge(arr, buf []int, left, mid, right int) {
	tmp := buf[:right-left+1]
	copy(tmp, arr[left:right+1])

	n1 := mid - left + 1
	i, j, k := 0, n1, left

	for i < n1 && j < len(tmp) {
		if tmp[i] <= tmp[j] {
			arr[k] = tmp[i]
			i++
		} else {
			arr[k] = tmp[j]
			j++
		}
		k++
	}

	// 남은 요소들 한 번에 복사
	k += copy(arr[k:], tmp[i:n1])
	copy(arr[k:], tmp[j:])
}
