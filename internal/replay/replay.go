// Package replay persists finished harness runs so later tooling can
// diff report output without re-running the compiler.
package replay

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"
)

// Bump when the payload layout changes; mismatched files are rejected
// instead of being misread.
const schemaVersion uint16 = 1

// Record is one finished invocation.
type Record struct {
	Name        string
	Dir         string
	Args        string
	ExitCode    int
	Lines       []string
	StderrLines []string
}

type payload struct {
	Schema  uint16
	Records []Record
}

// Write stores records atomically: encode into a temp file next to the
// destination, then rename over it.
func Write(path string, records []Record) error {
	data, err := msgpack.Marshal(payload{Schema: schemaVersion, Records: records})
	if err != nil {
		return fmt.Errorf("encode replay file: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".replay-*")
	if err != nil {
		return fmt.Errorf("create replay file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write replay file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close replay file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace replay file: %w", err)
	}
	return nil
}

// Read loads records written by Write.
func Read(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read replay file: %w", err)
	}
	var p payload
	if err := msgpack.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decode replay file %q: %w", path, err)
	}
	if p.Schema != schemaVersion {
		return nil, fmt.Errorf("replay file %q: schema %d, want %d", path, p.Schema, schemaVersion)
	}
	return p.Records, nil
}
