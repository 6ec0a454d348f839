//go:build unit

package invoiceno_test

import (
	"testing"

	"invopay/internal/pkg/invoiceno"

	"github.com/stretchr/testify/assert"
)

func TestGenerate(t *testing.T) {
	tests := []struct {
		name  string
		count int
		want  string
	}{
		{name: "first invoice", count: 0, want: "INV-000001"},
		{name: "continues sequence", count: 41, want: "INV-000042"},
		{name: "grows past padding", count: 1000000, want: "INV-1000001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, invoiceno.Generate(tt.count))
		})
	}
}
