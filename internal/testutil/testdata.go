package testutil

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

// LoadJSON loads a JSON fixture from testdata relative to the repo root.
// Numbers decode as json.Number so integer fields survive comparison.
func LoadJSON(t *testing.T, rel string, v any) {
	t.Helper()
	data := readTestdata(t, rel)
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		t.Fatalf("decode %s: %v", rel, err)
	}
}

// LoadRecord decodes a hex fixture into the raw record bytes it encodes.
func LoadRecord(t *testing.T, rel string) []byte {
	t.Helper()
	data := bytes.TrimSpace(readTestdata(t, rel))
	buf := make([]byte, hex.DecodedLen(len(data)))
	n, err := hex.Decode(buf, data)
	if err != nil {
		t.Fatalf("decode hex %s: %v", rel, err)
	}
	return buf[:n]
}

func readTestdata(t *testing.T, rel string) []byte {
	t.Helper()
	candidates := []string{
		filepath.Join("testdata", rel),
		filepath.Join("..", "testdata", rel),
		filepath.Join("..", "..", "testdata", rel),
	}
	for _, path := range candidates {
		if data, err := os.ReadFile(path); err == nil {
			return data
		}
	}
	t.Fatalf("unable to locate testdata file %s", rel)
	return nil
}
