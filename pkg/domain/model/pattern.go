package model

import (
	"encoding/hex"
	"image"

	"github.com/m-mizutani/commit-timeline/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// HashBits decodes a hex digest into its bits, most significant bit of each
// byte first. The result always holds 4 bits per hex character.
func HashBits(hash string) ([]uint8, error) {
	raw, err := hex.DecodeString(hash)
	if err != nil {
		return nil, goerr.Wrap(types.ErrValidationFailed, "hash is not a hex string",
			goerr.V("hash", hash),
			goerr.V("cause", err.Error()),
		)
	}

	bits := make([]uint8, 0, len(raw)*8)
	for _, b := range raw {
		for shift := 7; shift >= 0; shift-- {
			bits = append(bits, (b>>uint(shift))&1)
		}
	}
	return bits, nil
}

// HashPattern is a canvas of Width x Height pixels divided into Scale x Scale cells.
type HashPattern struct {
	Width  int
	Height int
	Scale  int
}

// DefaultHashPattern is the 80x128 canvas with 4px cells shown next to each commit
var DefaultHashPattern = HashPattern{Width: 80, Height: 128, Scale: 4}

func (x HashPattern) Validate() error {
	if x.Scale <= 0 || x.Width < x.Scale || x.Height < x.Scale {
		return goerr.Wrap(types.ErrInvalidOption, "invalid hash pattern size",
			goerr.V("width", x.Width),
			goerr.V("height", x.Height),
			goerr.V("scale", x.Scale),
		)
	}
	return nil
}

// Cells returns the cells to fill for the hash. Bit i maps to column
// i mod (Width/Scale) and row i mod (Height/Scale); both coordinates follow
// the same index, so the pattern is a diagonal wrap and not a row-major grid.
// A cell may be returned more than once when bits wrap around.
func (x HashPattern) Cells(hash string) ([]image.Rectangle, error) {
	if err := x.Validate(); err != nil {
		return nil, err
	}
	bits, err := HashBits(hash)
	if err != nil {
		return nil, err
	}

	cols, rows := x.Width/x.Scale, x.Height/x.Scale

	var cells []image.Rectangle
	for i, bit := range bits {
		if bit != 1 {
			continue
		}
		px := (i % cols) * x.Scale
		py := (i % rows) * x.Scale
		cells = append(cells, image.Rect(px, py, px+x.Scale, py+x.Scale))
	}
	return cells, nil
}
