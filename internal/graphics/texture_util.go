package graphics

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/go-gl/gl/v4.1-core/gl"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// decodeImage loads the image file at path, rejects images that are not 3- or
// 4-channel, flips the rows so row 0 sits at the bottom (GL texture origin),
// and converts to NRGBA. The returned channel count is the source image's,
// before conversion.
func decodeImage(path string) (*image.NRGBA, int, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("could not open texture file: %v", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, 0, fmt.Errorf("could not decode image %s: %v", path, err)
	}

	channels := channelCount(img)
	if channels != 3 && channels != 4 {
		return nil, channels, fmt.Errorf("image %s has %d channels, only RGB and RGBA are supported", path, channels)
	}

	return flipVertical(img), channels, nil
}

// channelCount reports the color channels of the decoded image's native
// representation.
func channelCount(img image.Image) int {
	switch img.(type) {
	case *image.Gray, *image.Gray16, *image.Alpha, *image.Alpha16:
		return 1
	case *image.YCbCr:
		return 3
	default:
		return 4
	}
}

// flipVertical converts img to NRGBA with its rows in bottom-up order.
func flipVertical(img image.Image) *image.NRGBA {
	bounds := img.Bounds()
	rgba := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)

	stride := rgba.Stride
	height := bounds.Dy()
	tmp := make([]byte, stride)
	for y := 0; y < height/2; y++ {
		top := rgba.Pix[y*stride : (y+1)*stride]
		bottom := rgba.Pix[(height-1-y)*stride : (height-y)*stride]
		copy(tmp, top)
		copy(top, bottom)
		copy(bottom, tmp)
	}
	return rgba
}

// uploadTexture creates a GL texture from the decoded pixels: repeat
// wrapping, linear filtering, mipmapped. Swappable in tests.
var uploadTexture = func(rgba *image.NRGBA) uint32 {
	var texture uint32
	gl.GenTextures(1, &texture)
	gl.BindTexture(gl.TEXTURE_2D, texture)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		gl.RGBA8,
		int32(rgba.Rect.Size().X),
		int32(rgba.Rect.Size().Y),
		0,
		gl.RGBA,
		gl.UNSIGNED_BYTE,
		gl.Ptr(rgba.Pix),
	)
	gl.GenerateMipmap(gl.TEXTURE_2D)

	gl.BindTexture(gl.TEXTURE_2D, 0)

	return texture
}
