package sorting

// InsertionSort 작은 구간용 삽입정렬
type InsertionSort struct{}

func (InsertionSort) Name() string { return "InsertionSort" }

func (InsertionSort) Sort(seq []int, left, right int) {
	mustRange(seq, left, right)
	insertionSort(seq, left, right)
}

// 삽입정렬: 큰 원소를 오른쪽으로 밀고 빈 자리에 key를 놓는다
func insertionSort(arr []int, low, high int) {
	for i := low + 1; i <= high; i++ {
		key := arr[i]
		j := i - 1

		for j >= low && arr[j] > key {
			arr[j+1] = arr[j]
			j--
		}
		arr[j+1] = key
	}
}
