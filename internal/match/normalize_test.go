package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"nn.MaxPool2d", "maxpool2d"},
		{"F.max_pool2d", "maxpool2d"},
		{"torch.nn.functional.max_pool2d", "maxpool2d"},
		{"torch.nn.Conv2d", "conv2d"},
		{"torch.flatten", "flatten"},
		{".size", "size"},
		{"P.ReLU", "relu"},
		{"custom", "custom"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeName(tt.input))
		})
	}
}

func TestSimilarityNormalized(t *testing.T) {
	assert.InDelta(t, 1.0, Similarity("", ""), 1e-9)
	assert.InDelta(t, 0.0, Similarity("abc", ""), 1e-9)
	assert.InDelta(t, 0.5, Similarity("ab", "ac"), 1e-9)
	assert.InDelta(t, 1.0, NameSimilarity("nn.MaxPool2d", "F.max_pool2d"), 1e-9)
}
