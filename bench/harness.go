package bench

import (
	"context"
	"log/slog"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/dustin/go-humanize"

	"github.com/rlaau/sortbench/gen"
	"github.com/rlaau/sortbench/sorting"
)

// Harness 분포 x 크기 x 알고리즘 조합마다 정렬 시간을 잰다.
//
// 입력은 (분포, 크기)마다 한 번만 생성하고, 알고리즘마다 원본을 복사해서 넘긴다.
// 측정 구간에는 정렬 호출만 들어가며 생성과 복사 비용은 제외된다.
type Harness struct {
	Generator     *gen.Generator
	Distributions []gen.Distribution
	Sizes         []int
	Sorters       []sorting.Sorter

	// Logger nil이면 slog.Default()
	Logger *slog.Logger
	// Metrics nil이면 기록하지 않음
	Metrics *Metrics
}

// Run 모든 조합을 실행하고 결과를 분포, 크기, 알고리즘 순서로 반환한다.
// 시도 사이에 ctx가 취소되면 그때까지의 결과와 ctx.Err()를 반환한다
func (h *Harness) Run(ctx context.Context) ([]Record, error) {
	if h.Generator == nil {
		return nil, errors.New("harness: nil generator")
	}
	if len(h.Sorters) == 0 {
		return nil, errors.New("harness: no sorters")
	}

	logger := h.Logger
	if logger == nil {
		logger = slog.Default()
	}

	results := make([]Record, 0, len(h.Distributions)*len(h.Sizes)*len(h.Sorters))

	for _, dist := range h.Distributions {
		for _, size := range h.Sizes {
			data, err := h.Generator.Generate(dist, size)
			if err != nil {
				return results, errors.Wrapf(err, "generate %s/%d", dist, size)
			}

			logger.Info("benchmarking",
				"distribution", string(dist),
				"size", humanize.Comma(int64(size)),
				"algorithms", len(h.Sorters))

			for _, s := range h.Sorters {
				if err := ctx.Err(); err != nil {
					return results, err
				}

				// 알고리즘마다 원본 그대로의 입력을 받는다
				testData := make([]int, len(data))
				copy(testData, data)

				elapsed := Measure(s, testData)
				record := NewRecord(string(dist), s.Name(), size, elapsed)
				results = append(results, record)
				h.Metrics.Observe(record)

				logger.Debug("trial",
					"label", record.Label,
					"size", size,
					"elapsed", elapsed)
			}
		}
	}

	return results, nil
}

// Measure 정렬 호출 한 번의 벽시계 시간
func Measure(s sorting.Sorter, data []int) time.Duration {
	start := time.Now()
	sorting.SortAll(s, data)
	return time.Since(start)
}
