package bench

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
)

// Sink 결과 테이블 저장소
type Sink interface {
	Write(records []Record) error
	// Location 저장 위치 (로그용)
	Location() string
}

// 기본 파일 이름
const (
	CSVFileName      = "sorting_results.csv"
	MarkdownFileName = "sorting_results.md"
	JSONFileName     = "sorting_results.json"
	BoltFileName     = "sorting_results.bolt"
	BadgerDirName    = "sorting_results.badger"
	PebbleDirName    = "sorting_results.pebble"
)

// SinkKinds 지원하는 저장소 종류
var SinkKinds = []string{"csv", "markdown", "json", "bolt", "badger", "pebble"}

// NewSink 종류 이름으로 dir 아래 기본 파일명 저장소 생성
func NewSink(kind, dir string) (Sink, error) {
	switch kind {
	case "csv":
		return CSVSink{Path: filepath.Join(dir, CSVFileName)}, nil
	case "markdown":
		return MarkdownSink{Path: filepath.Join(dir, MarkdownFileName)}, nil
	case "json":
		return JSONSink{Path: filepath.Join(dir, JSONFileName)}, nil
	case "bolt":
		return BoltSink{Path: filepath.Join(dir, BoltFileName)}, nil
	case "badger":
		return BadgerSink{Dir: filepath.Join(dir, BadgerDirName)}, nil
	case "pebble":
		return PebbleSink{Dir: filepath.Join(dir, PebbleDirName)}, nil
	default:
		return nil, errors.Newf("unknown sink %q", kind)
	}
}

// writeFile 버퍼링된 파일 쓰기
func writeFile(path string, fn func(w *bufio.Writer) error) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}

	writer := bufio.NewWriterSize(file, 32*1024)
	if err := fn(writer); err != nil {
		file.Close()
		return errors.Wrapf(err, "write %s", path)
	}
	if err := writer.Flush(); err != nil {
		file.Close()
		return errors.Wrapf(err, "flush %s", path)
	}
	return errors.Wrapf(file.Close(), "close %s", path)
}

// CSVSink 기준 결과 형식. 필드에 구분자가 없으므로 따옴표 처리는 하지 않는다
type CSVSink struct {
	Path string
}

func (s CSVSink) Location() string { return s.Path }

func (s CSVSink) Write(records []Record) error {
	return writeFile(s.Path, func(w *bufio.Writer) error {
		return WriteCSV(w, records)
	})
}

// WriteCSV 헤더 + 레코드당 한 줄
func WriteCSV(w io.Writer, records []Record) error {
	var builder strings.Builder
	builder.Grow((len(records) + 1) * 32)

	builder.WriteString(CSVHeader)
	builder.WriteByte('\n')
	for _, r := range records {
		builder.WriteString(r.CSVLine())
		builder.WriteByte('\n')
	}

	_, err := io.WriteString(w, builder.String())
	return err
}

// MarkdownSink 분포별 표로 정리한 보고서
type MarkdownSink struct {
	Path string
}

func (s MarkdownSink) Location() string { return s.Path }

func (s MarkdownSink) Write(records []Record) error {
	return writeFile(s.Path, func(w *bufio.Writer) error {
		return WriteMarkdown(w, records)
	})
}

// WriteMarkdown 분포마다 (크기 x 알고리즘) 표와 알고리즘별 합계
func WriteMarkdown(w io.Writer, records []Record) error {
	var builder strings.Builder
	builder.Grow(64 * 1024)

	builder.WriteString("# 정렬 알고리즘 벤치마크 결과\n\n")
	builder.WriteString(fmt.Sprintf("실행 시간: %s\n", time.Now().Format("2006-01-02 15:04:05")))
	builder.WriteString(fmt.Sprintf("CPU 코어 수: %d\n", runtime.NumCPU()))
	builder.WriteString(fmt.Sprintf("GOMAXPROCS: %d\n\n", runtime.GOMAXPROCS(0)))

	for _, dist := range uniq(records, func(r Record) string { return r.Distribution }) {
		subset := filter(records, func(r Record) bool { return r.Distribution == dist })
		algorithms := uniq(subset, func(r Record) string { return r.Algorithm })
		sizes := uniq(subset, func(r Record) string { return fmt.Sprint(r.Size) })

		builder.WriteString(fmt.Sprintf("## %s\n\n", dist))

		// 테이블 헤더
		builder.WriteString("| 크기 |")
		for _, algo := range algorithms {
			builder.WriteString(" " + algo + " |")
		}
		builder.WriteString("\n|------|")
		for range algorithms {
			builder.WriteString("------|")
		}
		builder.WriteString("\n")

		for _, size := range sizes {
			builder.WriteString("| " + size + " |")
			for _, algo := range algorithms {
				cell := "-"
				for _, r := range subset {
					if r.Algorithm == algo && fmt.Sprint(r.Size) == size {
						cell = r.Elapsed.Round(time.Microsecond).String()
						break
					}
				}
				builder.WriteString(" " + cell + " |")
			}
			builder.WriteString("\n")
		}

		// 요약 통계
		builder.WriteString("\n| 알고리즘 | 합계 |\n|----------|------|\n")
		for _, algo := range algorithms {
			var total time.Duration
			for _, r := range subset {
				if r.Algorithm == algo {
					total += r.Elapsed
				}
			}
			builder.WriteString(fmt.Sprintf("| %s | %v |\n", algo, total.Round(time.Microsecond)))
		}
		builder.WriteString("\n")
	}

	_, err := io.WriteString(w, builder.String())
	return err
}

// 처음 나온 순서를 유지한 중복 제거
func uniq(records []Record, key func(Record) string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, r := range records {
		k := key(r)
		if !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	return out
}

func filter(records []Record, keep func(Record) bool) []Record {
	var out []Record
	for _, r := range records {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

// JSONSink 들여쓰기 된 JSON 배열
type JSONSink struct {
	Path string
}

func (s JSONSink) Location() string { return s.Path }

type jsonRecord struct {
	Record
	ElapsedMillis int64 `json:"elapsed_ms"`
}

func (s JSONSink) Write(records []Record) error {
	return writeFile(s.Path, func(w *bufio.Writer) error {
		out := make([]jsonRecord, len(records))
		for i, r := range records {
			out[i] = jsonRecord{Record: r, ElapsedMillis: r.ElapsedMillis()}
		}

		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(out)
	})
}
