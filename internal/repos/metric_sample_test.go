package repos

import (
	"reflect"
	"strings"
	"testing"

	"github.com/wellpulse/wellpulse-backend/internal/types"
)

// Every nullable metric column must be in the merge set, otherwise a partial
// sync from one source would null out readings a different source already
// stored for the same day.
func TestMetricSampleMergeColumns_CoverAllNullableMetrics(t *testing.T) {
	merged := make(map[string]bool, len(metricSampleMergeColumns))
	for _, col := range metricSampleMergeColumns {
		if merged[col] {
			t.Fatalf("duplicate merge column %q", col)
		}
		merged[col] = true
	}

	wanted := make(map[string]bool)
	st := reflect.TypeOf(types.MetricSample{})
	for i := 0; i < st.NumField(); i++ {
		field := st.Field(i)
		if field.Type.Kind() != reflect.Ptr {
			continue
		}
		col := gormColumn(field.Tag.Get("gorm"))
		if col == "" {
			// relation field, not a metric column
			continue
		}
		wanted[col] = true
		if !merged[col] {
			t.Fatalf("nullable column %q missing from merge set: a sync would null it", col)
		}
	}
	for col := range merged {
		if !wanted[col] {
			t.Fatalf("merge column %q has no matching nullable field", col)
		}
	}
}

func gormColumn(tag string) string {
	for _, part := range strings.Split(tag, ";") {
		if strings.HasPrefix(part, "column:") {
			return strings.TrimPrefix(part, "column:")
		}
	}
	return ""
}
