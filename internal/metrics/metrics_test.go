package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCollector_Records(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordAPIResponse("articles", 200, 20*time.Millisecond)
	c.RecordAPIResponse("articles", 429, time.Millisecond)
	c.RecordCacheHit()
	c.RecordCacheHit()
	c.RecordCacheMiss()
	c.RecordCacheRepair()
	c.RecordRowPriced()
	c.RecordRowFailed()
	c.RecordShortageRetry()
	c.RecordPriceUpdates(101)

	if got := testutil.ToFloat64(c.apiResponses.WithLabelValues("articles", "429")); got != 1 {
		t.Errorf("429 responses = %v, want 1", got)
	}
	if got := testutil.ToFloat64(c.cacheLookups.WithLabelValues("hit")); got != 2 {
		t.Errorf("cache hits = %v, want 2", got)
	}
	if got := testutil.ToFloat64(c.rows.WithLabelValues("failed")); got != 1 {
		t.Errorf("failed rows = %v, want 1", got)
	}
	if got := testutil.ToFloat64(c.priceUpdates); got != 101 {
		t.Errorf("price updates = %v, want 101", got)
	}
}

func TestWriteTextfile(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)
	c.RecordShortageRetry()

	path := filepath.Join(t.TempDir(), "mpu.prom")
	if err := WriteTextfile(path, reg); err != nil {
		t.Fatalf("WriteTextfile: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read textfile: %v", err)
	}
	if !strings.Contains(string(data), "mpu_shortage_retries_total 1") {
		t.Errorf("textfile missing shortage counter:\n%s", data)
	}
}
