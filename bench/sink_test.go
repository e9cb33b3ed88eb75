package bench

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecords() []Record {
	return []Record{
		NewRecord("Random", "QuickSort", 500, 1500*time.Microsecond),
		NewRecord("Random", "HybridSort", 500, 900*time.Microsecond),
		NewRecord("Reverse", "QuickSort", 10000, 212*time.Millisecond+700*time.Microsecond),
		NewRecord("Reverse", "HybridSort", 10000, 3*time.Millisecond),
	}
}

func sampleLines() []string {
	return []string{
		"Random_QuickSort,500,1",
		"Random_HybridSort,500,0",
		"Reverse_QuickSort,10000,212",
		"Reverse_HybridSort,10000,3",
	}
}

func TestRecord(t *testing.T) {
	r := NewRecord("NearlySorted", "MergeSort", 2000, 1999*time.Microsecond)
	assert.Equal(t, "NearlySorted_MergeSort", r.Label)
	assert.Equal(t, int64(1), r.ElapsedMillis())
	assert.Equal(t, "NearlySorted_MergeSort,2000,1", r.CSVLine())
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleRecords()))

	want := "ArrayType,ArraySize,ExecutionTime(ms)\n" + strings.Join(sampleLines(), "\n") + "\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))
	assert.Equal(t, CSVHeader+"\n", buf.String())
}

func TestCSVSink(t *testing.T) {
	sink, err := NewSink("csv", t.TempDir())
	require.NoError(t, err)
	require.NoError(t, sink.Write(sampleRecords()))

	data, err := os.ReadFile(sink.Location())
	require.NoError(t, err)
	assert.Equal(t, CSVHeader+"\n"+strings.Join(sampleLines(), "\n")+"\n", string(data))
	assert.Equal(t, CSVFileName, filepath.Base(sink.Location()))
}

func TestCSVSinkBadPath(t *testing.T) {
	sink := CSVSink{Path: filepath.Join(t.TempDir(), "missing", "out.csv")}
	assert.Error(t, sink.Write(sampleRecords()))
}

func TestJSONSink(t *testing.T) {
	sink, err := NewSink("json", t.TempDir())
	require.NoError(t, err)
	require.NoError(t, sink.Write(sampleRecords()))

	data, err := os.ReadFile(sink.Location())
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded, 4)
	assert.Equal(t, "Reverse_QuickSort", decoded[2]["label"])
	assert.Equal(t, 212.0, decoded[2]["elapsed_ms"])
	assert.Equal(t, 10000.0, decoded[2]["size"])
}

func TestMarkdownSink(t *testing.T) {
	sink, err := NewSink("markdown", t.TempDir())
	require.NoError(t, err)
	require.NoError(t, sink.Write(sampleRecords()))

	data, err := os.ReadFile(sink.Location())
	require.NoError(t, err)
	report := string(data)

	assert.Contains(t, report, "## Random\n")
	assert.Contains(t, report, "## Reverse\n")
	assert.Contains(t, report, "| 크기 | QuickSort | HybridSort |")
	assert.Contains(t, report, "| 500 | 1.5ms | 900µs |")
	assert.Contains(t, report, "| QuickSort | 212.7ms |")
}

func TestKVSinksRoundTrip(t *testing.T) {
	for _, kind := range []string{"bolt", "badger", "pebble"} {
		t.Run(kind, func(t *testing.T) {
			dir := t.TempDir()
			sink, err := NewSink(kind, dir)
			require.NoError(t, err)

			// 두 번째 쓰기는 이전 테이블을 대체한다
			require.NoError(t, sink.Write(append(sampleRecords(), sampleRecords()...)))
			require.NoError(t, sink.Write(sampleRecords()))

			lines, err := readKV(kind, sink.Location())
			require.NoError(t, err)
			assert.Equal(t, sampleLines(), lines)
		})
	}
}

func TestKVSinkPreservesOrderPastByteBoundary(t *testing.T) {
	var records []Record
	for i := range 300 {
		records = append(records, NewRecord("Random", "QuickSort", i, 0))
	}

	sink := BoltSink{Path: filepath.Join(t.TempDir(), BoltFileName)}
	require.NoError(t, sink.Write(records))

	lines, err := ReadBolt(sink.Location())
	require.NoError(t, err)
	require.Len(t, lines, 300)
	for i, line := range lines {
		assert.Equal(t, records[i].CSVLine(), line)
	}
}

func readKV(kind, location string) ([]string, error) {
	switch kind {
	case "bolt":
		return ReadBolt(location)
	case "badger":
		return ReadBadger(location)
	default:
		return ReadPebble(location)
	}
}

func TestNewSinkUnknown(t *testing.T) {
	_, err := NewSink("parquet", t.TempDir())
	assert.ErrorContains(t, err, `unknown sink "parquet"`)

	for _, kind := range SinkKinds {
		_, err := NewSink(kind, t.TempDir())
		assert.NoError(t, err, kind)
	}
}

func TestMetricsTextfile(t *testing.T) {
	m := NewMetrics()
	for _, r := range sampleRecords() {
		m.Observe(r)
	}

	path := filepath.Join(t.TempDir(), "sortbench.prom")
	require.NoError(t, m.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `sortbench_trials_total{algorithm="QuickSort",distribution="Reverse"} 1`)
	assert.Contains(t, string(data), "sortbench_sort_duration_seconds_bucket")

	var nilMetrics *Metrics
	nilMetrics.Observe(sampleRecords()[0])
	assert.NoError(t, nilMetrics.WriteTextfile(path))
}
