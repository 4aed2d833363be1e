package classifier

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif" // register GIF decoder
	"image/jpeg"
	_ "image/png" // register PNG decoder
	"net/http"

	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

const (
	jpegMIME    = "image/jpeg"
	jpegQuality = 90
)

// toJPEG returns the image as JPEG bytes. JPEG input is passed through untouched.
func toJPEG(data []byte) ([]byte, error) {
	if http.DetectContentType(data) == jpegMIME {
		return data, nil
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("re-encode %s image as jpeg: %w", format, err)
	}
	return buf.Bytes(), nil
}
