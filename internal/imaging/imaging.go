package imaging

import (
	"bufio"
	"bytes"
	"errors"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"net/http"

	"github.com/chai2010/webp"
	xdraw "golang.org/x/image/draw"
)

const jpegQuality = 90

// MaxPixels limita largura x altura antes da decodificação completa.
const MaxPixels = 40_000_000

var (
	ErrUnsupportedFormat = errors.New("unsupported image format")
	ErrTooLarge          = errors.New("image dimensions too large")
)

// Decode reconhece JPEG, PNG, GIF e WebP pelo conteúdo, não pela extensão.
// As dimensões são lidas do cabeçalho primeiro; imagens acima de MaxPixels
// são recusadas sem alocar o bitmap.
func Decode(r io.Reader) (image.Image, error) {
	br := bufio.NewReader(r)
	head, _ := br.Peek(512)

	var (
		decodeConfig func(io.Reader) (image.Config, error)
		decode       func(io.Reader) (image.Image, error)
	)
	switch http.DetectContentType(head) {
	case "image/webp":
		decodeConfig, decode = webp.DecodeConfig, webp.Decode
	case "image/jpeg", "image/png", "image/gif":
		decodeConfig = func(r io.Reader) (image.Config, error) {
			cfg, _, err := image.DecodeConfig(r)
			return cfg, err
		}
		decode = func(r io.Reader) (image.Image, error) {
			img, _, err := image.Decode(r)
			return img, err
		}
	default:
		return nil, ErrUnsupportedFormat
	}

	// o que DecodeConfig consumir é reposto na frente do restante
	var consumed bytes.Buffer
	cfg, err := decodeConfig(io.TeeReader(br, &consumed))
	if err != nil {
		return nil, err
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || int64(cfg.Width)*int64(cfg.Height) > MaxPixels {
		return nil, ErrTooLarge
	}

	return decode(io.MultiReader(&consumed, br))
}

// Square recorta o centro da imagem no lado menor.
func Square(img image.Image) image.Image {
	b := img.Bounds()
	side := b.Dx()
	if b.Dy() < side {
		side = b.Dy()
	}

	x0 := b.Min.X + (b.Dx()-side)/2
	y0 := b.Min.Y + (b.Dy()-side)/2
	src := image.Rect(x0, y0, x0+side, y0+side)

	dst := image.NewRGBA(image.Rect(0, 0, side, side))
	xdraw.Copy(dst, image.Point{}, img, src, xdraw.Src, nil)
	return dst
}

// Resize reduz uma imagem quadrada para maxSide; não amplia.
func Resize(img image.Image, maxSide int) image.Image {
	b := img.Bounds()
	if maxSide <= 0 || b.Dx() <= maxSide {
		return img
	}

	dst := image.NewRGBA(image.Rect(0, 0, maxSide, maxSide))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst
}

// Normalize transforma um upload qualquer na miniatura quadrada em JPEG.
func Normalize(r io.Reader, maxSide int) ([]byte, error) {
	img, err := Decode(r)
	if err != nil {
		return nil, err
	}

	thumb := Resize(Square(img), maxSide)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, thumb, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
