package render

import (
	"image"
	"image/color"
	"strings"
)

const asciiRamp = "@%#*+=-:. "

// ASCII renders img as text cols characters wide, darkest pixels as '@'
// and white as ' '. Rows are sampled at twice the column step to make up
// for the height of terminal cells.
func ASCII(img image.Image, cols int) string {
	b := img.Bounds()
	if cols <= 0 || b.Empty() {
		return ""
	}
	step := float64(b.Dx()) / float64(cols)
	rows := int(float64(b.Dy()) / (step * 2))
	if rows < 1 {
		rows = 1
	}
	var sb strings.Builder
	sb.Grow(rows * (cols + 1))
	for r := 0; r < rows; r++ {
		y := b.Min.Y + int((float64(r)+0.5)*step*2)
		if y >= b.Max.Y {
			y = b.Max.Y - 1
		}
		for c := 0; c < cols; c++ {
			x := b.Min.X + int((float64(c)+0.5)*step)
			if x >= b.Max.X {
				x = b.Max.X - 1
			}
			g := color.GrayModel.Convert(img.At(x, y)).(color.Gray)
			sb.WriteByte(asciiRamp[int(g.Y)*(len(asciiRamp)-1)/255])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
