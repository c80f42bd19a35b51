package policygen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageSettings_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		page    PageSettings
		wantErr error
	}{
		{"defaults", DefaultPageSettings(), nil},
		{"letter landscape upper case", PageSettings{Size: "LETTER", Orientation: "Landscape", Margin: 1}, nil},
		{"unknown size", PageSettings{Size: "a3", Orientation: OrientationPortrait, Margin: 1}, ErrInvalidPageSize},
		{"unknown orientation", PageSettings{Size: PageSizeA4, Orientation: "sideways", Margin: 1}, ErrInvalidOrientation},
		{"margin too small", PageSettings{Size: PageSizeA4, Orientation: OrientationPortrait, Margin: 0.1}, ErrInvalidMargin},
		{"margin too large", PageSettings{Size: PageSizeA4, Orientation: OrientationPortrait, Margin: 3.5}, ErrInvalidMargin},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.page.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestPageSettings_Dimensions(t *testing.T) {
	t.Parallel()

	w, h := PageSettings{Size: PageSizeLetter, Orientation: OrientationPortrait}.dimensions()
	assert.Equal(t, [2]float64{8.5, 11}, [2]float64{w, h})

	w, h = PageSettings{Size: "A4", Orientation: OrientationLandscape}.dimensions()
	assert.Equal(t, [2]float64{11.69, 8.27}, [2]float64{w, h})

	w, h = PageSettings{Size: "tabloid"}.dimensions()
	assert.Equal(t, [2]float64{8.27, 11.69}, [2]float64{w, h})
}
