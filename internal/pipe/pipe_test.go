package pipe

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"bytewatch/pkg/transferwatch"
)

func newWatch(t *testing.T) *transferwatch.TransferWatch {
	t.Helper()
	w, err := transferwatch.New(transferwatch.Config{})
	if err != nil {
		t.Fatalf("transferwatch.New: %v", err)
	}
	return w
}

func TestReaderCounts(t *testing.T) {
	watch := newWatch(t)
	payload := strings.Repeat("x", 70000)

	r := NewReader(strings.NewReader(payload), watch)
	n, err := io.Copy(io.Discard, r)
	if err != nil {
		t.Fatalf("Copy: %v", err)
	}
	if n != int64(len(payload)) {
		t.Fatalf("copied %d bytes, want %d", n, len(payload))
	}
	if got := watch.Total().Count(); got != int64(len(payload)) {
		t.Errorf("watch total = %d, want %d", got, len(payload))
	}
}

func TestWriterCounts(t *testing.T) {
	watch := newWatch(t)
	var sink bytes.Buffer

	w := NewWriter(&sink, watch)
	if _, err := w.Write([]byte("hello")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if _, err := w.Write([]byte(" world")); err != nil {
		t.Fatalf("Write: %v", err)
	}

	if sink.String() != "hello world" {
		t.Errorf("sink = %q", sink.String())
	}
	if got := watch.Total().Count(); got != 11 {
		t.Errorf("watch total = %d, want 11", got)
	}
}

func TestOpenSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.bin")
	if err := os.WriteFile(path, []byte("0123456789"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	src, err := OpenSource(path)
	if err != nil {
		t.Fatalf("OpenSource: %v", err)
	}
	defer src.Close()

	if src.Size != 10 {
		t.Errorf("Size = %d, want 10", src.Size)
	}
	data, err := io.ReadAll(src)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if string(data) != "0123456789" {
		t.Errorf("read %q", data)
	}
}

func TestOpenSourceMissing(t *testing.T) {
	if _, err := OpenSource(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("OpenSource on missing file succeeded, want error")
	}
}

func TestCreateSink(t *testing.T) {
	t.Run("File", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "out.bin")
		sink, err := CreateSink(path)
		if err != nil {
			t.Fatalf("CreateSink: %v", err)
		}
		if _, err := sink.Write([]byte("data")); err != nil {
			t.Fatalf("Write: %v", err)
		}
		if err := sink.Close(); err != nil {
			t.Fatalf("Close: %v", err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("ReadFile: %v", err)
		}
		if string(data) != "data" {
			t.Errorf("wrote %q", data)
		}
	})

	t.Run("Discard", func(t *testing.T) {
		sink, err := CreateSink("")
		if err != nil {
			t.Fatalf("CreateSink: %v", err)
		}
		if _, err := sink.Write([]byte("data")); err != nil {
			t.Fatalf("Write: %v", err)
		}
		if err := sink.Close(); err != nil {
			t.Fatalf("Close: %v", err)
		}
	})
}
