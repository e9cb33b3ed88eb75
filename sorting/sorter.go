// Package sorting 제자리(in-place) 비교 정렬 전략 모음.
//
// 모든 전략은 닫힌 구간 [left, right]만 정렬하며 구간 밖 원소는 건드리지 않는다.
// left == right+1 은 빈 구간이고 아무 일도 하지 않는다.
package sorting

import "github.com/cockroachdb/errors"

// ErrInvalidRange 구간이 시퀀스 범위를 벗어났을 때
var ErrInvalidRange = errors.New("invalid range")

// Sorter 벤치마크 하네스가 의존하는 정렬 전략 인터페이스
type Sorter interface {
	// Name 결과 테이블에 기록되는 알고리즘 이름
	Name() string
	// Sort seq[left..right]를 오름차순으로 제자리 정렬한다.
	// 잘못된 구간이면 ErrInvalidRange로 panic 한다.
	Sort(seq []int, left, right int)
}

// CheckRange 구간 유효성 검사
func CheckRange(seq []int, left, right int) error {
	if left < 0 || right >= len(seq) || left > right+1 {
		return errors.Wrapf(ErrInvalidRange, "[%d, %d] on sequence of length %d", left, right, len(seq))
	}
	return nil
}

// 전제 조건 위반은 복구 대상이 아니므로 즉시 중단
func mustRange(seq []int, left, right int) {
	if err := CheckRange(seq, left, right); err != nil {
		panic(err)
	}
}

// SortAll 시퀀스 전체 정렬
func SortAll(s Sorter, seq []int) {
	s.Sort(seq, 0, len(seq)-1)
}
