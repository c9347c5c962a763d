package media

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF decoder
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder

	"github.com/bbrks/go-blurhash"
	_ "golang.org/x/image/webp" // Register WebP decoder
)

const (
	// blurHashSize bounds the thumbnail the BlurHash is computed from.
	blurHashSize = 64

	// MaxDimension caps width and height, checked from the header before decoding.
	MaxDimension = 8192
)

// extensions maps decoder format names to stored file extensions.
var extensions = map[string]string{
	"jpeg": ".jpg",
	"png":  ".png",
	"gif":  ".gif",
	"webp": ".webp",
}

// DecodedImage is an uploaded image that passed decoding.
type DecodedImage struct {
	Format string
	Width  int
	Height int
	img    image.Image
}

// Extension returns the file extension matching the image format.
func (d *DecodedImage) Extension() string {
	return extensions[d.Format]
}

// Decode checks that data is a complete JPEG, PNG, GIF or WebP image.
func Decode(data []byte) (*DecodedImage, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty image")
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image header: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || cfg.Width > MaxDimension || cfg.Height > MaxDimension {
		return nil, fmt.Errorf("image dimensions %dx%d exceed %dx%d", cfg.Width, cfg.Height, MaxDimension, MaxDimension)
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	if _, ok := extensions[format]; !ok {
		return nil, fmt.Errorf("unsupported image format %q", format)
	}

	bounds := img.Bounds()
	return &DecodedImage{
		Format: format,
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		img:    img,
	}, nil
}

// BlurHash returns a compact placeholder string for the image using 4x3 components.
func (d *DecodedImage) BlurHash() (string, error) {
	hash, err := blurhash.Encode(4, 3, thumbnail(d.img))
	if err != nil {
		return "", fmt.Errorf("encode blurhash: %w", err)
	}
	return hash, nil
}

// thumbnail scales img down with nearest-neighbour sampling so that neither
// side exceeds blurHashSize.
func thumbnail(img image.Image) image.Image {
	bounds := img.Bounds()
	srcWidth, srcHeight := bounds.Dx(), bounds.Dy()
	if srcWidth <= blurHashSize && srcHeight <= blurHashSize {
		return img
	}

	dstWidth, dstHeight := blurHashSize, blurHashSize
	if srcWidth > srcHeight {
		dstHeight = max(1, srcHeight*blurHashSize/srcWidth)
	} else {
		dstWidth = max(1, srcWidth*blurHashSize/srcHeight)
	}

	dst := image.NewRGBA(image.Rect(0, 0, dstWidth, dstHeight))
	xRatio := float64(srcWidth) / float64(dstWidth)
	yRatio := float64(srcHeight) / float64(dstHeight)
	for y := 0; y < dstHeight; y++ {
		for x := 0; x < dstWidth; x++ {
			dst.Set(x, y, img.At(bounds.Min.X+int(float64(x)*xRatio), bounds.Min.Y+int(float64(y)*yRatio)))
		}
	}
	return dst
}
