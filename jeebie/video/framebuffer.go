package video

import "math/rand"

// PaletteIndex is the four-level shade the PPU emits per pixel: 0 is the
// lightest shade, 3 the darkest. The core never resolves an index to a
// color itself; mapping an index to an RGB triple is a sink concern.
type PaletteIndex byte

const (
	White     PaletteIndex = 0
	LightGrey PaletteIndex = 1
	DarkGrey  PaletteIndex = 2
	Black     PaletteIndex = 3
)

const (
	FramebufferWidth  = 160
	FramebufferHeight = 144
	FramebufferSize   = FramebufferWidth * FramebufferHeight
)

// ByteToIndex converts a 2-bit color value, as read out of a palette
// register (BGP/OBP0/OBP1), into the framebuffer's index space. Color
// value 0 is the hardware's lightest shade, so it maps to White here.
func ByteToIndex(value byte) PaletteIndex {
	switch value & 0x03 {
	case 0:
		return White
	case 1:
		return LightGrey
	case 2:
		return DarkGrey
	default:
		return Black
	}
}

// FrameBuffer holds one rendered frame as a row-major grid of palette
// indices, ready to be handed to a sink.
type FrameBuffer struct {
	width  uint
	height uint
	buffer []PaletteIndex
}

func NewFrameBuffer() *FrameBuffer {
	return &FrameBuffer{
		width:  FramebufferWidth,
		height: FramebufferHeight,
		buffer: make([]PaletteIndex, FramebufferSize),
	}
}

func (fb FrameBuffer) GetPixel(x, y uint) PaletteIndex {
	return fb.buffer[y*fb.width+x]
}

func (fb *FrameBuffer) SetPixel(x, y uint, index PaletteIndex) {
	fb.buffer[y*fb.width+x] = index
}

// ToSlice returns the frame as a flat, row-major slice of palette indices.
func (fb *FrameBuffer) ToSlice() []PaletteIndex {
	return fb.buffer
}

// Clear resets the framebuffer to an all-white frame.
func (fb *FrameBuffer) Clear() {
	for i := range fb.buffer {
		fb.buffer[i] = White
	}
}

// DrawNoise fills the framebuffer with random indices; used by front-ends
// to show activity before the first real frame is ready.
func (fb *FrameBuffer) DrawNoise() {
	for i := range fb.buffer {
		fb.buffer[i] = PaletteIndex(rand.Uint32() % 4)
	}
}

// ToBinaryData returns one byte per pixel, each holding a palette index
// in 0..3, for test comparison.
func (fb *FrameBuffer) ToBinaryData() []byte {
	data := make([]byte, len(fb.buffer))
	for i, px := range fb.buffer {
		data[i] = byte(px)
	}
	return data
}
