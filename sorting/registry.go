package sorting

import (
	"sort"

	"github.com/cockroachdb/errors"
)

// Options 이름으로 전략을 만들 때 쓰는 파라미터
type Options struct {
	Threshold      int
	MergeThreshold int
	DepthFactor    int
}

var builders = map[string]func(Options) Sorter{
	"QuickSort":         func(Options) Sorter { return QuickSort{} },
	"HybridSort":        func(o Options) Sorter { return HybridQuickSort{Threshold: o.Threshold, DepthFactor: o.DepthFactor} },
	"MergeSort":         func(Options) Sorter { return MergeSort{} },
	"HybridMergeSort":   func(o Options) Sorter { return HybridMergeSort{Threshold: o.MergeThreshold} },
	"ThreeWayQuickSort": func(o Options) Sorter { return ThreeWayQuickSort{Cutoff: o.Threshold} },
	"HeapSort":          func(Options) Sorter { return HeapSort{} },
	"InsertionSort":     func(Options) Sorter { return InsertionSort{} },
}

// Lookup 벤치마크 이름으로 전략 생성
func Lookup(name string, opts Options) (Sorter, error) {
	build, ok := builders[name]
	if !ok {
		return nil, errors.Newf("unknown algorithm %q", name)
	}
	return build(opts), nil
}

// Names 등록된 전략 이름 (정렬된 순서)
func Names() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
