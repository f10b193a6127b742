//go:build !tinygo

package hal

import "sync"

// hostFramebuffer is an RGB565 little-endian pixel buffer shared between the
// runtime goroutine (writer) and the window (reader).
type hostFramebuffer struct {
	mu     sync.Mutex
	width  int
	height int
	stride int
	buf    []byte
}

func newHostFramebuffer(width, height int) *hostFramebuffer {
	stride := width * 2
	return &hostFramebuffer{
		width:  width,
		height: height,
		stride: stride,
		buf:    make([]byte, stride*height),
	}
}

func (f *hostFramebuffer) Width() int  { return f.width }
func (f *hostFramebuffer) Height() int { return f.height }

func (f *hostFramebuffer) ClearRGB(r, g, b uint8) {
	f.fillRect(0, 0, f.width, f.height, r, g, b)
}

func (f *hostFramebuffer) fillRect(x0, y0, w, h int, r, g, b uint8) {
	f.mu.Lock()
	defer f.mu.Unlock()

	pixel := pack565(r, g, b)
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	for y := y0; y < y0+h; y++ {
		if y < 0 || y >= f.height {
			continue
		}
		for x := x0; x < x0+w; x++ {
			if x < 0 || x >= f.width {
				continue
			}
			off := y*f.stride + x*2
			f.buf[off] = lo
			f.buf[off+1] = hi
		}
	}
}

func (f *hostFramebuffer) setPixel(x, y int, r, g, b uint8) {
	f.fillRect(x, y, 1, 1, r, g, b)
}

func (f *hostFramebuffer) pixelAt(x, y int) (r, g, b uint8) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return 0, 0, 0
	}
	off := y*f.stride + x*2
	return unpack565(uint16(f.buf[off]) | uint16(f.buf[off+1])<<8)
}

func (f *hostFramebuffer) snapshotRGB565(dst []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(dst, f.buf)
}

// pack565 keeps the top 5/6/5 bits of each channel.
func pack565(r, g, b uint8) uint16 {
	return uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3)
}

// unpack565 expands back to 8 bits per channel; 0 and full scale survive
// the round trip exactly.
func unpack565(p uint16) (r, g, b uint8) {
	r = uint8(uint32(p>>11&0x1F) * 255 / 31)
	g = uint8(uint32(p>>5&0x3F) * 255 / 63)
	b = uint8(uint32(p&0x1F) * 255 / 31)
	return r, g, b
}
