// Package gen 벤치마크 입력 데이터 생성기
package gen

import (
	"math/rand/v2"
	"time"

	"github.com/cockroachdb/errors"
)

// Distribution 입력 분포 종류
type Distribution string

const (
	Random       Distribution = "Random"
	Reverse      Distribution = "Reverse"
	NearlySorted Distribution = "NearlySorted"
)

// Distributions 지원하는 분포 목록
var Distributions = []Distribution{Random, Reverse, NearlySorted}

// ParseDistribution 이름으로 분포 찾기
func ParseDistribution(name string) (Distribution, error) {
	for _, d := range Distributions {
		if string(d) == name {
			return d, nil
		}
	}
	return "", errors.Newf("unknown distribution %q", name)
}

// Generator 시드 고정이 가능한 입력 생성기.
// 고루틴 안전하지 않음
type Generator struct {
	rng *rand.Rand

	// Min, Max Random 분포의 값 범위 (양끝 포함)
	Min, Max int
	// Swaps NearlySorted 분포의 임의 교환 횟수
	Swaps int
}

// New seed가 0이면 현재 시각으로 시드
func New(seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{
		rng:   rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15)),
		Min:   0,
		Max:   6000,
		Swaps: 10,
	}
}

// Random [min, max] 균등 분포 랜덤 배열. max < min 이면 에러
func (g *Generator) Random(size, min, max int) ([]int, error) {
	if max < min {
		return nil, errors.Newf("empty value range [%d, %d]", min, max)
	}

	// 부호 없는 폭으로 계산해야 int 전체 범위에서도 넘치지 않는다.
	// span == 0 은 2^64개 값 전체를 뜻한다
	span := uint64(max) - uint64(min) + 1

	data := make([]int, size)
	for i := range data {
		var off uint64
		if span == 0 {
			off = g.rng.Uint64()
		} else {
			off = g.rng.Uint64N(span)
		}
		data[i] = int(uint64(min) + off)
	}
	return data, nil
}

// Descending size..1 역순 배열 (Reverse 분포)
func Descending(size int) []int {
	data := make([]int, size)
	for i := range data {
		data[i] = size - i
	}
	return data
}

// NearlySorted 0..size-1 항등 배열에 swaps번 임의 교환.
// 같은 인덱스가 뽑히면 교환은 아무 일도 하지 않는다
func (g *Generator) NearlySorted(size, swaps int) []int {
	data := make([]int, size)
	for i := range data {
		data[i] = i
	}
	if size == 0 {
		return data
	}
	for range swaps {
		a, b := g.rng.IntN(size), g.rng.IntN(size)
		data[a], data[b] = data[b], data[a]
	}
	return data
}

// Generate 분포에 맞는 입력 생성. 범위와 교환 횟수는 Generator 설정을 따른다
func (g *Generator) Generate(dist Distribution, size int) ([]int, error) {
	if size < 0 {
		return nil, errors.Newf("negative size %d", size)
	}
	switch dist {
	case Random:
		return g.Random(size, g.Min, g.Max)
	case Reverse:
		return Descending(size), nil
	case NearlySorted:
		return g.NearlySorted(size, g.Swaps), nil
	default:
		return nil, errors.Newf("unknown distribution %q", dist)
	}
}
