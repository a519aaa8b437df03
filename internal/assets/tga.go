package assets

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// TGA image types.
const (
	tgaTrueColor    = 2
	tgaGray         = 3
	tgaTrueColorRLE = 10
	tgaGrayRLE      = 11
)

var errTGATruncated = errors.New("tga: pixel data truncated")

// DecodeTGA decodes an uncompressed or RLE TGA image. Height maps are usually
// 8-bit grayscale (types 3 and 11); 24 and 32-bit true color (types 2 and 10)
// is accepted too.
func DecodeTGA(data []byte) (image.Image, error) {
	if len(data) < 18 {
		return nil, errors.New("tga: header too short")
	}

	idLength := int(data[0])
	if data[1] != 0 {
		return nil, errors.New("tga: color-mapped images not supported")
	}
	imageType := data[2]
	width := int(data[12]) | int(data[13])<<8
	height := int(data[14]) | int(data[15])<<8
	bpp := int(data[16])
	topToBottom := data[17]&0x20 != 0

	gray := imageType == tgaGray || imageType == tgaGrayRLE
	rle := imageType == tgaTrueColorRLE || imageType == tgaGrayRLE
	switch {
	case imageType != tgaTrueColor && imageType != tgaGray && !rle:
		return nil, fmt.Errorf("tga: unsupported image type %d", imageType)
	case gray && bpp != 8:
		return nil, fmt.Errorf("tga: unsupported grayscale depth %d", bpp)
	case !gray && bpp != 24 && bpp != 32:
		return nil, fmt.Errorf("tga: unsupported color depth %d", bpp)
	}

	offset := 18 + idLength
	if offset > len(data) {
		return nil, errTGATruncated
	}

	d := tgaDecoder{
		src:    data[offset:],
		width:  width,
		height: height,
		bytes:  bpp / 8,
		flip:   !topToBottom,
	}
	if gray {
		img := image.NewGray(image.Rect(0, 0, width, height))
		d.set = func(x, y int, px []byte) { img.SetGray(x, y, color.Gray{Y: px[0]}) }
		if err := d.decode(rle); err != nil {
			return nil, err
		}
		return img, nil
	}
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	d.set = func(x, y int, px []byte) {
		// Stored as BGR(A)
		a := uint8(255)
		if len(px) == 4 {
			a = px[3]
		}
		img.SetNRGBA(x, y, color.NRGBA{R: px[2], G: px[1], B: px[0], A: a})
	}
	if err := d.decode(rle); err != nil {
		return nil, err
	}
	return img, nil
}

type tgaDecoder struct {
	src           []byte
	width, height int
	bytes         int
	flip          bool // rows stored bottom-up
	set           func(x, y int, px []byte)
	pos           int
	pixel         int
}

func (d *tgaDecoder) decode(rle bool) error {
	total := d.width * d.height
	for d.pixel < total {
		if !rle {
			px, err := d.next()
			if err != nil {
				return err
			}
			d.put(px)
			continue
		}

		if d.pos >= len(d.src) {
			return errTGATruncated
		}
		packet := d.src[d.pos]
		d.pos++
		count := int(packet&0x7F) + 1

		if packet&0x80 != 0 {
			// Run: one pixel repeated
			px, err := d.next()
			if err != nil {
				return err
			}
			for i := 0; i < count && d.pixel < total; i++ {
				d.put(px)
			}
			continue
		}
		for i := 0; i < count && d.pixel < total; i++ {
			px, err := d.next()
			if err != nil {
				return err
			}
			d.put(px)
		}
	}
	return nil
}

func (d *tgaDecoder) next() ([]byte, error) {
	if d.pos+d.bytes > len(d.src) {
		return nil, errTGATruncated
	}
	px := d.src[d.pos : d.pos+d.bytes]
	d.pos += d.bytes
	return px, nil
}

func (d *tgaDecoder) put(px []byte) {
	x, y := d.pixel%d.width, d.pixel/d.width
	if d.flip {
		y = d.height - 1 - y
	}
	d.set(x, y, px)
	d.pixel++
}
