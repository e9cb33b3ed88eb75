package bench

import (
	"bytes"
	"encoding/binary"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/pebble"
	"github.com/dgraph-io/badger/v3"
	"go.etcd.io/bbolt"
)

// 임베디드 KV 저장소에 결과 테이블을 저장한다.
// 키는 8바이트 빅엔디언 레코드 순번이라 바이트 순서 = 레코드 순서,
// 값은 CSV 한 줄. 쓰기 전에 기존 테이블은 비운다.

const bucketName = "sorting_results"

func recordKey(i int) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, uint64(i))
	return key
}

// BoltSink bbolt 단일 파일
type BoltSink struct {
	Path string
}

func (s BoltSink) Location() string { return s.Path }

func (s BoltSink) Write(records []Record) error {
	db, err := bbolt.Open(s.Path, 0600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return errors.Wrapf(err, "open bbolt %s", s.Path)
	}
	defer db.Close()

	err = db.Update(func(tx *bbolt.Tx) error {
		if tx.Bucket([]byte(bucketName)) != nil {
			if err := tx.DeleteBucket([]byte(bucketName)); err != nil {
				return err
			}
		}
		b, err := tx.CreateBucket([]byte(bucketName))
		if err != nil {
			return err
		}
		for i, r := range records {
			if err := b.Put(recordKey(i), []byte(r.CSVLine())); err != nil {
				return err
			}
		}
		return nil
	})
	return errors.Wrapf(err, "write bbolt %s", s.Path)
}

// ReadBolt 저장된 CSV 줄을 순서대로 읽는다
func ReadBolt(path string) ([]string, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{ReadOnly: true, Timeout: time.Second})
	if err != nil {
		return nil, errors.Wrapf(err, "open bbolt %s", path)
	}
	defer db.Close()

	var lines []string
	err = db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(bucketName))
		if b == nil {
			return errors.Newf("bucket %q not found", bucketName)
		}
		return b.ForEach(func(_, v []byte) error {
			lines = append(lines, string(v))
			return nil
		})
	})
	return lines, errors.Wrapf(err, "read bbolt %s", path)
}

// BadgerSink BadgerDB 디렉터리
type BadgerSink struct {
	Dir string
}

func (s BadgerSink) Location() string { return s.Dir }

func (s BadgerSink) Write(records []Record) error {
	db, err := badger.Open(badger.DefaultOptions(s.Dir).WithLogger(nil))
	if err != nil {
		return errors.Wrapf(err, "open badger %s", s.Dir)
	}
	defer db.Close()

	if err := db.DropAll(); err != nil {
		return errors.Wrapf(err, "reset badger %s", s.Dir)
	}

	wb := db.NewWriteBatch()
	for i, r := range records {
		if err := wb.Set(recordKey(i), []byte(r.CSVLine())); err != nil {
			wb.Cancel()
			return errors.Wrapf(err, "write badger %s", s.Dir)
		}
	}
	return errors.Wrapf(wb.Flush(), "flush badger %s", s.Dir)
}

// ReadBadger 저장된 CSV 줄을 순서대로 읽는다
func ReadBadger(dir string) ([]string, error) {
	db, err := badger.Open(badger.DefaultOptions(dir).WithLogger(nil))
	if err != nil {
		return nil, errors.Wrapf(err, "open badger %s", dir)
	}
	defer db.Close()

	var lines []string
	err = db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			v, err := it.Item().ValueCopy(nil)
			if err != nil {
				return err
			}
			lines = append(lines, string(v))
		}
		return nil
	})
	return lines, errors.Wrapf(err, "read badger %s", dir)
}

// PebbleSink PebbleDB 디렉터리
type PebbleSink struct {
	Dir string
}

func (s PebbleSink) Location() string { return s.Dir }

// 8바이트 키 전체를 덮는 삭제 범위
var (
	pebbleKeyStart = make([]byte, 8)
	pebbleKeyEnd   = bytes.Repeat([]byte{0xff}, 9)
)

func (s PebbleSink) Write(records []Record) error {
	db, err := pebble.Open(s.Dir, &pebble.Options{})
	if err != nil {
		return errors.Wrapf(err, "open pebble %s", s.Dir)
	}
	defer db.Close()

	batch := db.NewBatch()
	defer batch.Close()
	if err := batch.DeleteRange(pebbleKeyStart, pebbleKeyEnd, nil); err != nil {
		return errors.Wrapf(err, "reset pebble %s", s.Dir)
	}
	for i, r := range records {
		if err := batch.Set(recordKey(i), []byte(r.CSVLine()), nil); err != nil {
			return errors.Wrapf(err, "write pebble %s", s.Dir)
		}
	}
	return errors.Wrapf(batch.Commit(pebble.Sync), "commit pebble %s", s.Dir)
}

// ReadPebble 저장된 CSV 줄을 순서대로 읽는다
func ReadPebble(dir string) ([]string, error) {
	db, err := pebble.Open(dir, &pebble.Options{ReadOnly: true})
	if err != nil {
		return nil, errors.Wrapf(err, "open pebble %s", dir)
	}
	defer db.Close()

	it, err := db.NewIter(&pebble.IterOptions{})
	if err != nil {
		return nil, errors.Wrapf(err, "iterate pebble %s", dir)
	}

	var lines []string
	for it.First(); it.Valid(); it.Next() {
		lines = append(lines, string(it.Value()))
	}
	if err := it.Close(); err != nil {
		return nil, errors.Wrapf(err, "iterate pebble %s", dir)
	}
	return lines, nil
}
