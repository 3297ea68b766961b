package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetPlainLabel(t *testing.T) {
	tests := []struct {
		name  string
		score float64
		want  string
	}{
		{"trusted at boundary", 80, TrustedValue},
		{"trusted high", 100, TrustedValue},
		{"moderate", 65, ModerateValue},
		{"caution at boundary", 40, CautionValue},
		{"critical", 39.9, CriticalValue},
		{"critical at zero", 0, CriticalValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetPlainLabel(tt.score))
		})
	}
}

func TestGetColorLabelContainsPlainLabel(t *testing.T) {
	for _, score := range []float64{95, 70, 50, 10} {
		assert.Contains(t, GetColorLabel(score), GetPlainLabel(score))
	}
}

func TestShouldIgnore(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		excludes []string
		want     bool
	}{
		{"exact match", "lodash", []string{"lodash"}, true},
		{"no match", "lodash", []string{"react"}, false},
		{"glob scope", "@corp/logger", []string{"@corp/*"}, true},
		{"glob miss", "@other/logger", []string{"@corp/*"}, false},
		{"prefix pattern", "internal/tools", []string{"internal/"}, true},
		{"suffix pattern", "plugin.test", []string{".test"}, true},
		{"empty excludes", "anything", nil, false},
		{"blank pattern skipped", "anything", []string{" ", ""}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShouldIgnore(tt.path, tt.excludes))
		})
	}
}

func TestParseBoolString(t *testing.T) {
	tests := []struct {
		input   string
		want    bool
		wantErr bool
	}{
		{"yes", true, false},
		{"YES", true, false},
		{"true", true, false},
		{"1", true, false},
		{"no", false, false},
		{"False", false, false},
		{"0", false, false},
		{"maybe", false, true},
		{"", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseBoolString(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
