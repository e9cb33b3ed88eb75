// Package bench 정렬 알고리즘 벤치마크 하네스와 결과 저장소
package bench

import (
	"strconv"
	"time"
)

// CSVHeader 결과 테이블 헤더
const CSVHeader = "ArrayType,ArraySize,ExecutionTime(ms)"

// Record 한 번의 (분포, 알고리즘, 크기) 측정 결과. 생성 후 변경하지 않는다
type Record struct {
	Label        string        `json:"label"`
	Distribution string        `json:"distribution"`
	Algorithm    string        `json:"algorithm"`
	Size         int           `json:"size"`
	Elapsed      time.Duration `json:"elapsed_ns"`
}

// NewRecord 라벨은 "<분포>_<알고리즘>"
func NewRecord(distribution, algorithm string, size int, elapsed time.Duration) Record {
	return Record{
		Label:        distribution + "_" + algorithm,
		Distribution: distribution,
		Algorithm:    algorithm,
		Size:         size,
		Elapsed:      elapsed,
	}
}

// ElapsedMillis 밀리초 단위 (내림)
func (r Record) ElapsedMillis() int64 {
	return r.Elapsed.Milliseconds()
}

// CSVLine 헤더와 같은 필드 순서의 한 줄 (개행 없음)
func (r Record) CSVLine() string {
	return r.Label + "," + strconv.Itoa(r.Size) + "," + strconv.FormatInt(r.ElapsedMillis(), 10)
}
