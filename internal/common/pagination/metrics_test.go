package pagination

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestGetPageRangeBucket(t *testing.T) {
	tests := []struct {
		w    Window
		want string
	}{
		{w: Window{Page: 1}, want: "1-10"},
		{w: Window{Page: 10}, want: "1-10"},
		{w: Window{Page: 11}, want: "11-50"},
		{w: Window{Page: 51}, want: "51-100"},
		{w: Window{Page: 101}, want: "100+"},
		{w: Window{Page: 1, ShowingAll: true}, want: "all"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, getPageRangeBucket(tt.w))
	}
}

func TestRecordRequest(t *testing.T) {
	before := testutil.ToFloat64(RequestsTotal.WithLabelValues("metrics-test", "200", "1-10"))
	RecordRequest("metrics-test", 200, Window{Page: 2, PageSize: 10, Total: 30})
	after := testutil.ToFloat64(RequestsTotal.WithLabelValues("metrics-test", "200", "1-10"))
	assert.Equal(t, before+1, after)
}

func TestRecordClamped(t *testing.T) {
	before := testutil.ToFloat64(ClampedTotal.WithLabelValues("metrics-test"))
	RecordClamped("metrics-test")
	assert.Equal(t, before+1, testutil.ToFloat64(ClampedTotal.WithLabelValues("metrics-test")))
}
