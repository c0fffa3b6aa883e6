package assets

import (
	"bytes"
	"embed"
	"image"
	_ "image/png"
	"log"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed *
var assetsFS embed.FS

var imageCache = map[string]*ebiten.Image{}

// Asset paths by key.
func BackgroundPath(key string) string { return "bg/" + key + ".png" }
func PortraitPath(key string) string { return "portraits/" + key + ".png" }

const StartScreenPath = "ui/startscreen.png"

// DecodeImage decodes an embedded image by assets-relative path.
func DecodeImage(path string) (image.Image, error) {
	b, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	return img, nil
}

// LoadImage loads an embedded asset by assets-relative path.
func LoadImage(path string) (*ebiten.Image, error) {
	img, err := DecodeImage(path)
	if err != nil {
		return nil, err
	}
	return ebiten.NewImageFromImage(img), nil
}

// LoadFile loads an embedded asset by assets-relative path.
func LoadFile(path string) ([]byte, error) {
	clean := cleanAssetPath(path)
	return assetsFS.ReadFile(clean)
}

// ImageOr returns the embedded image at path, or the image built by fallback
// when the asset is not shipped. Results are cached by path.
func ImageOr(path string, fallback func() image.Image) *ebiten.Image {
	clean := cleanAssetPath(path)
	if img, ok := imageCache[clean]; ok {
		return img
	}
	img, err := LoadImage(clean)
	if err != nil {
		if fallback == nil {
			log.Printf("assets: %s: %v", clean, err)
			return nil
		}
		img = ebiten.NewImageFromImage(fallback())
	}
	imageCache[clean] = img
	return img
}

// Forget drops cached images so edited art is picked up again.
func Forget(paths ...string) {
	for _, p := range paths {
		delete(imageCache, cleanAssetPath(p))
	}
}

func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	if filepath.IsAbs(path) {
		s := filepath.ToSlash(path)
		if idx := strings.LastIndex(s, "/assets/"); idx >= 0 {
			return s[idx+len("/assets/"):]
		}
		return filepath.Base(path)
	}
	s := filepath.ToSlash(path)
	if strings.HasPrefix(s, "assets/") {
		return strings.TrimPrefix(s, "assets/")
	}
	return s
}
