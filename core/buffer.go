package core

// Point represents a 2D pixel coordinate
type Point struct {
	X, Y int
}

// PixelBuffer is a 2D grid of colors with dirty tracking
// Pixels are square, the terminal surface packs two rows into one cell
type PixelBuffer struct {
	width  int
	height int
	pixels []RGB
	dirty  bool
}

// NewPixelBuffer creates a black buffer with the given dimensions
func NewPixelBuffer(width, height int) *PixelBuffer {
	width, height = max(width, 0), max(height, 0)
	return &PixelBuffer{
		width:  width,
		height: height,
		pixels: make([]RGB, width*height),
	}
}

// Width returns the buffer width
func (b *PixelBuffer) Width() int {
	return b.width
}

// Height returns the buffer height
func (b *PixelBuffer) Height() int {
	return b.height
}

// Resize resizes the buffer, preserving existing content where possible
func (b *PixelBuffer) Resize(newWidth, newHeight int) {
	newWidth, newHeight = max(newWidth, 0), max(newHeight, 0)
	if newWidth == b.width && newHeight == b.height {
		return
	}

	next := make([]RGB, newWidth*newHeight)
	for y := 0; y < min(b.height, newHeight); y++ {
		copy(next[y*newWidth:y*newWidth+min(b.width, newWidth)], b.pixels[y*b.width:])
	}

	b.width = newWidth
	b.height = newHeight
	b.pixels = next
	b.dirty = true
}

// Get returns the pixel at the given position
func (b *PixelBuffer) Get(x, y int) (RGB, bool) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return RGB{}, false
	}
	return b.pixels[y*b.width+x], true
}

// Set sets the pixel at the given position and marks the buffer dirty
func (b *PixelBuffer) Set(x, y int, c RGB) bool {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return false
	}
	b.pixels[y*b.width+x] = c
	b.dirty = true
	return true
}

// FillRect paints the half-open pixel span [x0,x1) x [y0,y1), clipped to the buffer
func (b *PixelBuffer) FillRect(x0, y0, x1, y1 int, c RGB) int {
	x0, y0 = max(x0, 0), max(y0, 0)
	x1, y1 = min(x1, b.width), min(y1, b.height)
	if x0 >= x1 || y0 >= y1 {
		return 0
	}
	for y := y0; y < y1; y++ {
		row := b.pixels[y*b.width+x0 : y*b.width+x1]
		for i := range row {
			row[i] = c
		}
	}
	b.dirty = true
	return (x1 - x0) * (y1 - y0)
}

// Clear fills the entire buffer
func (b *PixelBuffer) Clear(c RGB) {
	for i := range b.pixels {
		b.pixels[i] = c
	}
	b.dirty = true
}

// IsDirty reports whether the buffer changed since the last ClearDirty
func (b *PixelBuffer) IsDirty() bool {
	return b.dirty
}

// ClearDirty clears the dirty flag
func (b *PixelBuffer) ClearDirty() {
	b.dirty = false
}

// Row returns a copy of row y
func (b *PixelBuffer) Row(y int) []RGB {
	if y < 0 || y >= b.height {
		return nil
	}
	line := make([]RGB, b.width)
	copy(line, b.pixels[y*b.width:(y+1)*b.width])
	return line
}
