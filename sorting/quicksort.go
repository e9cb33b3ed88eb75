package sorting

// QuickSort 기준 퀵소트. 마지막 원소 피벗, 깊이 제한 없음.
//
// 역순이나 이미 정렬된 입력에서는 O(n^2)이고 재귀 깊이도 O(n)까지 간다.
// 고루틴 스택은 필요에 따라 늘어나므로(기본 최대 1GB) 벤치마크 크기(1만 개)에서는 문제없지만
// 수백만 개 규모의 적대적 입력에는 HybridQuickSort를 쓸 것.
type QuickSort struct{}

func (QuickSort) Name() string { return "QuickSort" }

func (QuickSort) Sort(seq []int, left, right int) {
	mustRange(seq, left, right)
	quickSort(seq, left, right)
}

func quickSort(arr []int, left, right int) {
	if left >= right {
		return
	}
	p := partition(arr, left, right)
	quickSort(arr, left, p-1)
	quickSort(arr, p+1, right)
}

// Partition arr[right]를 피벗으로 구간을 나누고 피벗의 최종 위치를 반환한다.
// 반환 후 [left, p)는 피벗 이하, (p, right]는 피벗 초과.
func Partition(arr []int, left, right int) int {
	mustRange(arr, left, right)
	if left > right {
		return left
	}
	return partition(arr, left, right)
}

// 로무토 파티션
func partition(arr []int, left, right int) int {
	pivot := arr[right]
	i := left

	for j := left; j < right; j++ {
		if arr[j] <= pivot {
			arr[i], arr[j] = arr[j], arr[i]
			i++
		}
	}
	arr[i], arr[right] = arr[right], arr[i]
	return i
}

// ThreeWayQuickSort 튜닝된 퀵소트 (3-way 파티셔닝 + 중앙값 피벗 + 삽입정렬 컷오프).
// 피벗과 같은 값들은 한 번에 제자리로 모이므로 중복이 많은 입력에 강하다.
// 작은 쪽만 재귀하므로 스택 깊이는 O(log n)
type ThreeWayQuickSort struct {
	// Cutoff 이 크기 이하 구간은 삽입정렬. 0 이하이면 DefaultThreshold
	Cutoff int
}

func (ThreeWayQuickSort) Name() string { return "ThreeWayQuickSort" }

func (q ThreeWayQuickSort) Sort(seq []int, left, right int) {
	mustRange(seq, left, right)
	threeWayQuickSort(seq, left, right, orDefault(q.Cutoff, DefaultThreshold))
}

func threeWayQuickSort(arr []int, left, right, cutoff int) {
	for right-left+1 > cutoff {
		eqLo, eqHi := partition3Way(arr, left, right)

		// 피벗과 같은 구간 [eqLo, eqHi]는 이미 제자리. 작은 쪽을 재귀, 큰 쪽은 반복
		if eqLo-left < right-eqHi {
			threeWayQuickSort(arr, left, eqLo-1, cutoff)
			left = eqHi + 1
		} else {
			threeWayQuickSort(arr, eqHi+1, right, cutoff)
			right = eqLo - 1
		}
	}
	insertionSort(arr, left, right)
}

// partition3Way 중앙값 피벗 기준 3분할.
// 반환 후 arr[left..eqLo-1] < pivot, arr[eqLo..eqHi] == pivot, arr[eqHi+1..right] > pivot
func partition3Way(arr []int, left, right int) (eqLo, eqHi int) {
	m := medianIndex(arr, left, left+(right-left)/2, right)
	arr[left], arr[m] = arr[m], arr[left]
	pivot := arr[left]

	eqLo, eqHi = left, right
	for i := left + 1; i <= eqHi; {
		switch v := arr[i]; {
		case v < pivot:
			arr[eqLo], arr[i] = v, arr[eqLo]
			eqLo++
			i++
		case v > pivot:
			arr[i], arr[eqHi] = arr[eqHi], v
			eqHi--
		default:
			i++
		}
	}
	return eqLo, eqHi
}

// medianIndex 세 위치 중 값이 중앙인 위치. 배열은 건드리지 않는다
func medianIndex(arr []int, a, b, c int) int {
	x, y, z := arr[a], arr[b], arr[c]
	switch {
	case (x <= y && y <= z) || (z <= y && y <= x):
		return b
	case (y <= x && x <= z) || (z <= x && x <= y):
		return a
	default:
		return c
	}
}
