package texture

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// TGA image type constants.
const (
	TGATypeUncompressed = 2  // Uncompressed true-color
	TGATypeRLE          = 10 // RLE compressed true-color
)

// TGA decoding errors.
var (
	ErrTGATooShort    = errors.New("TGA data too short")
	ErrTGAUnsupported = errors.New("unsupported TGA variant")
	ErrTGATruncated   = errors.New("TGA data truncated")
)

// DecodeTGA decodes uncompressed or RLE true-color (24/32 bpp) TGA data.
// Model textures exported for game engines frequently ship as TGA, which
// the standard library does not register.
func DecodeTGA(data []byte) (*image.RGBA, error) {
	if len(data) < 18 {
		return nil, ErrTGATooShort
	}

	idLength := int(data[0])
	colorMapType := data[1]
	imageType := int(data[2])
	width := int(data[12]) | int(data[13])<<8
	height := int(data[14]) | int(data[15])<<8
	bpp := int(data[16])
	topToBottom := data[17]&0x20 != 0

	switch {
	case colorMapType != 0:
		return nil, fmt.Errorf("%w: color-mapped", ErrTGAUnsupported)
	case imageType != TGATypeUncompressed && imageType != TGATypeRLE:
		return nil, fmt.Errorf("%w: type %d", ErrTGAUnsupported, imageType)
	case bpp != 24 && bpp != 32:
		return nil, fmt.Errorf("%w: %d bpp", ErrTGAUnsupported, bpp)
	}

	offset := 18 + idLength
	if offset > len(data) {
		return nil, ErrTGATruncated
	}

	r := &tgaReader{
		img:         image.NewRGBA(image.Rect(0, 0, width, height)),
		src:         data[offset:],
		width:       width,
		height:      height,
		bpp:         bpp / 8,
		topToBottom: topToBottom,
	}

	var err error
	if imageType == TGATypeUncompressed {
		err = r.readRaw(width * height)
	} else {
		err = r.readRLE()
	}
	if err != nil {
		return nil, err
	}
	return r.img, nil
}

type tgaReader struct {
	img         *image.RGBA
	src         []byte
	pos         int
	pixel       int
	width       int
	height      int
	bpp         int
	topToBottom bool
}

// next reads one BGR(A) pixel from the source stream.
func (r *tgaReader) next() (color.RGBA, error) {
	if r.pos+r.bpp > len(r.src) {
		return color.RGBA{}, ErrTGATruncated
	}
	p := r.src[r.pos : r.pos+r.bpp]
	r.pos += r.bpp
	c := color.RGBA{R: p[2], G: p[1], B: p[0], A: 255}
	if r.bpp == 4 {
		c.A = p[3]
	}
	return c, nil
}

// put writes c at the current pixel, converting bottom-up rows to top-down.
func (r *tgaReader) put(c color.RGBA) {
	x := r.pixel % r.width
	y := r.pixel / r.width
	if !r.topToBottom {
		y = r.height - 1 - y
	}
	r.img.SetRGBA(x, y, c)
	r.pixel++
}

func (r *tgaReader) readRaw(count int) error {
	total := r.width * r.height
	for i := 0; i < count && r.pixel < total; i++ {
		c, err := r.next()
		if err != nil {
			return err
		}
		r.put(c)
	}
	return nil
}

func (r *tgaReader) readRLE() error {
	total := r.width * r.height
	for r.pixel < total {
		if r.pos >= len(r.src) {
			return ErrTGATruncated
		}
		header := r.src[r.pos]
		r.pos++
		count := int(header&0x7F) + 1

		if header&0x80 == 0 {
			if err := r.readRaw(count); err != nil {
				return err
			}
			continue
		}

		c, err := r.next()
		if err != nil {
			return err
		}
		for i := 0; i < count && r.pixel < total; i++ {
			r.put(c)
		}
	}
	return nil
}
