package property

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractSquareFootage(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		want   int
		wantOK bool
	}{
		{"grouped sq ft", "This home has 1,500 sq ft of living space", 1500, true},
		{"grouped thousands", "1,234 sq ft", 1234, true},
		{"below range", "75 sq ft", 0, false},
		{"out of range both ways", "Lot size: 60000 sq ft, interior 80 sq ft", 0, false},
		{"sqft suffix", "Beds 3 Baths 2 2,150 sqft", 2150, true},
		{"sq. ft. with dots", "Approx. 980 Sq. Ft.", 980, true},
		{"square feet", "1,800 Square Feet", 1800, true},
		{"sq prefix only", "Living area 1,100 sq.m", 1100, true},
		{"square footage label", "Square Footage: 2,400", 2400, true},
		{"square word", "about 640 square", 640, true},
		{"upper bound inclusive", "50,000 sq ft estate", 50000, true},
		{"lower bound inclusive", "100 sq ft shed", 100, true},
		{"no numbers", "Contact agent for details", 0, false},
		{"empty", "", 0, false},
		{"plain digits sq ft", "2500 sq ft", 2500, true},
		{"plain digits sqft", "1234 sqft", 1234, true},
		{"plain digits after label", "Square footage: 2400", 2400, true},
		{"plain digits above range", "60000 sq ft", 0, false},
		{"plain digits square feet", "Interior 3200 square feet", 3200, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractSquareFootage(tt.text)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractSquareFootage_PatternPriority(t *testing.T) {
	got, ok := ExtractSquareFootage("Square footage: 2,000. Listed at 1,800 sqft")
	assert.True(t, ok)
	assert.Equal(t, 1800, got)
}

func TestExtractSquareFootage_OutOfRangeFallsThroughToLaterPattern(t *testing.T) {
	// The sq ft figure is implausible, the labelled figure is not.
	got, ok := ExtractSquareFootage("Lot 90 sq ft. Square footage: 1,250")
	assert.True(t, ok)
	assert.Equal(t, 1250, got)
}
