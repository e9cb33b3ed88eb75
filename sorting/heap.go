package sorting

// HeapSort 구간 힙정렬. 입력 순서와 무관하게 O(n log n)
type HeapSort struct{}

func (HeapSort) Name() string { return "HeapSort" }

func (HeapSort) Sort(seq []int, left, right int) {
	mustRange(seq, left, right)
	heapSort(seq, left, right)
}

// heapSort 인덱스는 모두 left 기준 오프셋
func heapSort(arr []int, left, right int) {
	n := right - left + 1

	// 마지막 내부 노드부터 bottom-up으로 최대 힙 구성
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(arr, left, n, i)
	}

	for i := n - 1; i > 0; i-- {
		arr[left], arr[left+i] = arr[left+i], arr[left]
		siftDown(arr, left, i, 0)
	}
}

// siftDown 노드와 두 자식 중 가장 큰 값을 위로 올린다.
// 동률이면 노드, 그다음 왼쪽 자식이 우선
func siftDown(arr []int, base, n, i int) {
	for {
		largest := i
		l, r := 2*i+1, 2*i+2

		if l < n && arr[base+l] > arr[base+largest] {
			largest = l
		}
		if r < n && arr[base+r] > arr[base+largest] {
			largest = r
		}
		if largest == i {
			return
		}

		arr[base+i], arr[base+largest] = arr[base+largest], arr[base+i]
		i = largest
	}
}
