package health

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReportHealthy(t *testing.T) {
	tests := []struct {
		name   string
		checks []CheckResult
		want   bool
	}{
		{name: "no checks", want: true},
		{name: "all healthy", checks: []CheckResult{{Name: "a", Healthy: true}, {Name: "b", Healthy: true}}, want: true},
		{name: "one failing", checks: []CheckResult{{Name: "a", Healthy: true}, {Name: "b", Error: "down"}}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &Report{Checks: tt.checks}
			assert.Equal(t, tt.want, r.Healthy())
		})
	}
}
