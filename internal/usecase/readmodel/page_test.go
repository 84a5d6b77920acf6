//go:build unit

package readmodel_test

import (
	"testing"

	"shareit/internal/usecase/readmodel"

	"github.com/stretchr/testify/assert"
)

func TestNewPage(t *testing.T) {
	tests := []struct {
		name       string
		from, size int
		want       readmodel.Page
	}{
		{name: "first page", from: 0, size: 10, want: readmodel.Page{Offset: 0, Limit: 10}},
		{name: "aligned offset", from: 20, size: 10, want: readmodel.Page{Offset: 20, Limit: 10}},
		{name: "unaligned offset rounds down to page start", from: 5, size: 2, want: readmodel.Page{Offset: 4, Limit: 2}},
		{name: "offset inside first page", from: 3, size: 10, want: readmodel.Page{Offset: 0, Limit: 10}},
		{name: "negative from clamps", from: -1, size: 5, want: readmodel.Page{Offset: 0, Limit: 5}},
		{name: "non-positive size yields empty window", from: 4, size: 0, want: readmodel.Page{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, readmodel.NewPage(tt.from, tt.size))
		})
	}
}
