// Package config 벤치마크 설정. 기본값 -> YAML 파일 -> 환경 변수 순서로 덮어쓴다
package config

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/rlaau/sortbench/bench"
	"github.com/rlaau/sortbench/gen"
	"github.com/rlaau/sortbench/sorting"
)

// 환경 변수
const (
	EnvConfigPath = "SORTBENCH_CONFIG"
	EnvOutputDir  = "SORTBENCH_OUTPUT_DIR"
	EnvSeed       = "SORTBENCH_SEED"
	EnvLogLevel   = "SORTBENCH_LOG_LEVEL"

	DefaultConfigPath = "sortbench.yaml"
)

// Config 실험 파라미터 전체
type Config struct {
	Sizes         []int    `yaml:"sizes"`
	Distributions []string `yaml:"distributions"`
	Algorithms    []string `yaml:"algorithms"`

	Sort   SortConfig   `yaml:"sort"`
	Input  InputConfig  `yaml:"input"`
	Output OutputConfig `yaml:"output"`

	// LogLevel debug, info, warn, error
	LogLevel string `yaml:"log_level"`
}

// SortConfig 하이브리드 정렬 파라미터
type SortConfig struct {
	Threshold      int `yaml:"threshold"`
	MergeThreshold int `yaml:"merge_threshold"`
	DepthFactor    int `yaml:"depth_factor"`
}

// InputConfig 입력 생성 파라미터
type InputConfig struct {
	Min   int `yaml:"min"`
	Max   int `yaml:"max"`
	Swaps int `yaml:"swaps"`
	// Seed 0이면 실행마다 다른 시드
	Seed int64 `yaml:"seed"`
}

// OutputConfig 결과 저장 위치
type OutputConfig struct {
	Dir   string   `yaml:"dir"`
	Sinks []string `yaml:"sinks"`
	// MetricsFile 비어 있으면 메트릭 파일을 쓰지 않는다
	MetricsFile string `yaml:"metrics_file"`
}

// Default 기본 실험 설정
func Default() Config {
	return Config{
		Sizes:         []int{500, 1000, 2000, 5000, 10000},
		Distributions: []string{string(gen.Random), string(gen.Reverse), string(gen.NearlySorted)},
		Algorithms:    []string{"QuickSort", "HybridSort"},
		Sort: SortConfig{
			Threshold:      sorting.DefaultThreshold,
			MergeThreshold: sorting.DefaultMergeThreshold,
			DepthFactor:    sorting.DefaultDepthFactor,
		},
		Input: InputConfig{
			Min:   0,
			Max:   6000,
			Swaps: 10,
		},
		Output: OutputConfig{
			Dir:   ".",
			Sinks: []string{"csv"},
		},
		LogLevel: "info",
	}
}

// Load 기본값에서 시작해 파일과 환경 변수를 반영하고 검증한다.
// path가 비어 있으면 SORTBENCH_CONFIG, 그것도 없으면 sortbench.yaml. 파일이 없으면 기본값 사용
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path == "" {
		path = DefaultConfigPath
	}

	if err := loadFile(path, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "load config file %s", path)
	}
	if err := loadEnv(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrap(err, "invalid config")
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

func loadEnv(cfg *Config) error {
	if v := os.Getenv(EnvOutputDir); v != "" {
		cfg.Output.Dir = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return errors.Wrapf(err, "parse %s", EnvSeed)
		}
		cfg.Input.Seed = seed
	}
	return nil
}

// Validate 설정 검증
func (c Config) Validate() error {
	if len(c.Sizes) == 0 {
		return errors.New("sizes must not be empty")
	}
	for _, size := range c.Sizes {
		if size < 0 {
			return errors.Newf("negative size %d", size)
		}
	}
	if len(c.Distributions) == 0 {
		return errors.New("distributions must not be empty")
	}
	for _, d := range c.Distributions {
		if _, err := gen.ParseDistribution(d); err != nil {
			return err
		}
	}
	if len(c.Algorithms) == 0 {
		return errors.New("algorithms must not be empty")
	}
	for _, a := range c.Algorithms {
		if _, err := sorting.Lookup(a, c.SortOptions()); err != nil {
			return err
		}
	}
	if c.Sort.Threshold < 1 {
		return errors.Newf("sort.threshold must be >= 1, got %d", c.Sort.Threshold)
	}
	if c.Sort.MergeThreshold < 1 {
		return errors.Newf("sort.merge_threshold must be >= 1, got %d", c.Sort.MergeThreshold)
	}
	if c.Sort.DepthFactor < 1 {
		return errors.Newf("sort.depth_factor must be >= 1, got %d", c.Sort.DepthFactor)
	}
	if c.Input.Max < c.Input.Min {
		return errors.Newf("input.max (%d) < input.min (%d)", c.Input.Max, c.Input.Min)
	}
	if c.Input.Swaps < 0 {
		return errors.Newf("input.swaps must be >= 0, got %d", c.Input.Swaps)
	}
	if len(c.Output.Sinks) == 0 {
		return errors.New("output.sinks must not be empty")
	}
	for _, kind := range c.Output.Sinks {
		if _, err := bench.NewSink(kind, c.Output.Dir); err != nil {
			return err
		}
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// SortOptions 정렬 전략 생성용 파라미터
func (c Config) SortOptions() sorting.Options {
	return sorting.Options{
		Threshold:      c.Sort.Threshold,
		MergeThreshold: c.Sort.MergeThreshold,
		DepthFactor:    c.Sort.DepthFactor,
	}
}

// Level 로그 레벨 파싱
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return level, errors.Wrapf(err, "log_level %q", c.LogLevel)
	}
	return level, nil
}

// Sorters 설정된 알고리즘 목록을 순서대로 생성
func (c Config) Sorters() ([]sorting.Sorter, error) {
	sorters := make([]sorting.Sorter, 0, len(c.Algorithms))
	for _, name := range c.Algorithms {
		s, err := sorting.Lookup(name, c.SortOptions())
		if err != nil {
			return nil, err
		}
		sorters = append(sorters, s)
	}
	return sorters, nil
}

// DistributionList 설정된 분포 목록
func (c Config) DistributionList() ([]gen.Distribution, error) {
	dists := make([]gen.Distribution, 0, len(c.Distributions))
	for _, name := range c.Distributions {
		d, err := gen.ParseDistribution(name)
		if err != nil {
			return nil, err
		}
		dists = append(dists, d)
	}
	return dists, nil
}

// Generator 입력 생성기
func (c Config) Generator() *gen.Generator {
	g := gen.New(c.Input.Seed)
	g.Min, g.Max, g.Swaps = c.Input.Min, c.Input.Max, c.Input.Swaps
	return g
}

// SinkList 설정된 결과 저장소 목록
func (c Config) SinkList() ([]bench.Sink, error) {
	sinks := make([]bench.Sink, 0, len(c.Output.Sinks))
	for _, kind := range c.Output.Sinks {
		s, err := bench.NewSink(kind, c.Output.Dir)
		if err != nil {
			return nil, err
		}
		sinks = append(sinks, s)
	}
	return sinks, nil
}
