package outwriter

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/huangsam/trustspot/internal/contract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateFormatters(t *testing.T) {
	fmtFloat, intFmt := createFormatters(1)
	assert.Equal(t, "3.1", fmtFloat(3.14159))
	assert.Equal(t, "%d", intFmt)

	fmtFloat, _ = createFormatters(3)
	assert.Equal(t, "3.142", fmtFloat(3.14159))

	fmtFloat, _ = createFormatters(0)
	assert.Equal(t, "3", fmtFloat(3.14159))
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	err := writeJSON(&buf, map[string]int{"score": 42})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"score": 42`)
}

func TestWriteCSVWithHeader(t *testing.T) {
	var buf bytes.Buffer
	err := writeCSVWithHeader(&buf, []string{"a", "b"}, func(w *csv.Writer) error {
		return w.Write([]string{"1", "2"})
	})
	require.NoError(t, err)
	assert.Equal(t, "a,b\n1,2\n", buf.String())
}

func TestGetMaxTableNameWidth(t *testing.T) {
	tests := []struct {
		name  string
		width int
		want  int
	}{
		{"narrow override clamps to minimum", 40, 12},
		{"wide override clamps to maximum", 200, 50},
		{"mid-range override", 100, 38},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &contract.Config{Width: tt.width}
			assert.Equal(t, tt.want, getMaxTableNameWidth(cfg))
		})
	}
}

func TestTruncateName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     string
	}{
		{"short name untouched", "lodash", 20, "lodash"},
		{"exact fit untouched", "lodash", 6, "lodash"},
		{"keeps the tail", "@angular/platform-browser-dynamic", 20, "...r-browser-dynamic"},
		{"tiny width", "lodash", 3, "lod"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncateName(tt.input, tt.maxWidth)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, len(got), tt.maxWidth)
		})
	}
}

func TestYesNo(t *testing.T) {
	assert.Equal(t, "yes", yesNo(true))
	assert.Equal(t, "no", yesNo(false))
}
