package placeholders

import (
	"fmt"
	"hash/fnv"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"

	"github.com/milk9111/portraitquest/levels"
)

// Sizes of the generated art. Street backgrounds match the logical canvas.
const (
	StreetWidth    = 960
	StreetHeight   = 540
	InteriorWidth  = 480
	InteriorHeight = 200
	PortraitWidth  = 160
	PortraitHeight = 200
	SpriteWidth    = 16
	SpriteHeight   = 32
)

// Palette holds the colors the generator draws with.
var Palette = struct {
	SkyTop     color.RGBA
	SkyBottom  color.RGBA
	Street     color.RGBA
	Curb       color.RGBA
	Facade     color.RGBA
	Window     color.RGBA
	DoorShop   color.RGBA
	DoorStudio color.RGBA
	DoorBonus  color.RGBA
	Skin       color.RGBA
	Shirt      color.RGBA
	Pants      color.RGBA
	Hair       color.RGBA
	Night      color.RGBA
}{
	SkyTop:     color.RGBA{92, 148, 252, 255},
	SkyBottom:  color.RGBA{188, 222, 255, 255},
	Street:     color.RGBA{72, 72, 80, 255},
	Curb:       color.RGBA{150, 150, 156, 255},
	Facade:     color.RGBA{176, 120, 96, 255},
	Window:     color.RGBA{240, 228, 160, 255},
	DoorShop:   color.RGBA{90, 56, 40, 255},
	DoorStudio: color.RGBA{40, 40, 40, 255},
	DoorBonus:  color.RGBA{60, 110, 70, 255},
	Skin:       color.RGBA{240, 196, 160, 255},
	Shirt:      color.RGBA{255, 91, 127, 255},
	Pants:      color.RGBA{48, 64, 120, 255},
	Hair:       color.RGBA{60, 40, 30, 255},
	Night:      color.RGBA{11, 13, 20, 255},
}

var portraitFrames = map[string]color.RGBA{
	"perfect": {232, 196, 64, 255},
	"good":    {96, 180, 96, 255},
	"okay":    {200, 150, 80, 255},
	"fail":    {150, 80, 80, 255},
}

// Street draws a street backdrop with one facade per door so the markers line
// up with the door positions of sc.
func Street(sc *levels.Scene) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, StreetWidth, StreetHeight))
	horizon := StreetHeight * 3 / 5
	for y := 0; y < horizon; y++ {
		t := float64(y) / float64(horizon)
		fillRect(img, image.Rect(0, y, StreetWidth, y+1), mix(Palette.SkyTop, Palette.SkyBottom, t))
	}
	fillRect(img, image.Rect(0, horizon, StreetWidth, StreetHeight), Palette.Street)
	fillRect(img, image.Rect(0, StreetHeight-40, StreetWidth, StreetHeight-32), Palette.Curb)

	if sc == nil {
		return img
	}
	for _, d := range sc.Doors {
		cx := int(d.PX * StreetWidth)
		body := tint(Palette.Facade, d.Name)
		top := horizon - 220 + int(hash(d.Name)%60)
		fillRect(img, image.Rect(cx-70, top, cx+70, StreetHeight-40), body)
		for wx := cx - 54; wx < cx+54; wx += 36 {
			fillRect(img, image.Rect(wx, top+20, wx+20, top+48), Palette.Window)
		}
		fillRect(img, image.Rect(cx-18, StreetHeight-120, cx+18, StreetHeight-40), doorColor(d.EffectiveKind()))
	}
	return img
}

// Interior draws a shop backdrop tinted by key.
func Interior(key string) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, InteriorWidth, InteriorHeight))
	wall := tint(Palette.Facade, key)
	fillRect(img, img.Bounds(), Lighten(wall, 0.35))
	fillRect(img, image.Rect(0, InteriorHeight*2/3, InteriorWidth, InteriorHeight), Darken(wall, 0.6))
	fillRect(img, image.Rect(InteriorWidth/4, InteriorHeight/2, InteriorWidth*3/4, InteriorHeight*2/3+10), Darken(wall, 0.8))
	for x := 24; x < InteriorWidth-24; x += 48 {
		fillRect(img, image.Rect(x, 24, x+32, 56), Darken(wall, 0.9))
	}
	return img
}

// Portrait draws a framed face for a portrait key.
func Portrait(key string) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, PortraitWidth, PortraitHeight))
	frame, ok := portraitFrames[key]
	if !ok {
		frame = Palette.Curb
	}
	fillRect(img, img.Bounds(), frame)
	fillRect(img, image.Rect(8, 8, PortraitWidth-8, PortraitHeight-8), Lighten(frame, 0.7))
	fillCircle(img, PortraitWidth/2, PortraitHeight/2-10, 40, Palette.Skin)
	fillRect(img, image.Rect(PortraitWidth/2-50, PortraitHeight-60, PortraitWidth/2+50, PortraitHeight-8), Palette.Shirt)
	return img
}

// Walker draws the player facing right. The walking frame spreads the legs.
func Walker(walking bool) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, SpriteWidth, SpriteHeight))
	fillRect(img, image.Rect(5, 0, 11, 3), Palette.Hair)
	fillRect(img, image.Rect(5, 3, 11, 9), Palette.Skin)
	fillRect(img, image.Rect(10, 5, 11, 6), Palette.Night)
	fillRect(img, image.Rect(4, 9, 12, 20), Palette.Shirt)
	if walking {
		fillRect(img, image.Rect(3, 20, 7, 32), Palette.Pants)
		fillRect(img, image.Rect(9, 20, 13, 32), Palette.Pants)
	} else {
		fillRect(img, image.Rect(5, 20, 8, 32), Palette.Pants)
		fillRect(img, image.Rect(8, 20, 11, 32), Palette.Pants)
	}
	return img
}

// StartScreen is the backdrop behind the start prompt.
func StartScreen() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, StreetWidth, StreetHeight))
	fillRect(img, img.Bounds(), Palette.Night)
	for i, key := range []string{"fail", "okay", "good", "perfect"} {
		x := 120 + i*190
		frame := Portrait(key)
		draw.Draw(img, frame.Bounds().Add(image.Pt(x, 140)), frame, image.Point{}, draw.Over)
	}
	return img
}

// GenerateAll writes every placeholder the game looks up into dir, using the
// same layout as the embedded assets.
func GenerateAll(dir string, scenes map[string]*levels.Scene) error {
	out := map[string]image.Image{
		"ui/startscreen.png": StartScreen(),
		"sprites/idle.png":   Walker(false),
		"sprites/walk.png":   Walker(true),
	}
	for _, sc := range scenes {
		out["bg/"+sc.Background+".png"] = Street(sc)
		for _, d := range sc.Doors {
			if d.Interior != "" {
				out["bg/"+d.Interior+".png"] = Interior(d.Interior)
			}
		}
	}
	for key := range portraitFrames {
		out["portraits/"+key+".png"] = Portrait(key)
	}

	for rel, img := range out {
		path := filepath.Join(dir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("placeholders: %w", err)
		}
		if err := SavePNG(img, path); err != nil {
			return fmt.Errorf("placeholders: save %s: %w", rel, err)
		}
	}
	return nil
}

// SavePNG saves an image to a PNG file
func SavePNG(img image.Image, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return png.Encode(file, img)
}

// Darken returns a darker version of a color
func Darken(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}

// Lighten returns a lighter version of a color
func Lighten(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) + (255-float64(c.R))*factor),
		G: uint8(float64(c.G) + (255-float64(c.G))*factor),
		B: uint8(float64(c.B) + (255-float64(c.B))*factor),
		A: c.A,
	}
}

func doorColor(kind levels.DoorKind) color.RGBA {
	switch kind {
	case levels.DoorStudio:
		return Palette.DoorStudio
	case levels.DoorBonus:
		return Palette.DoorBonus
	}
	return Palette.DoorShop
}

func fillRect(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	draw.Draw(img, r.Intersect(img.Bounds()), &image.Uniform{c}, image.Point{}, draw.Src)
}

func fillCircle(img *image.RGBA, cx, cy, radius int, c color.RGBA) {
	for y := cy - radius; y <= cy+radius; y++ {
		for x := cx - radius; x <= cx+radius; x++ {
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy <= radius*radius {
				img.Set(x, y, c)
			}
		}
	}
}

func mix(a, b color.RGBA, t float64) color.RGBA {
	lerp := func(x, y uint8) uint8 { return uint8(float64(x) + (float64(y)-float64(x))*t) }
	return color.RGBA{R: lerp(a.R, b.R), G: lerp(a.G, b.G), B: lerp(a.B, b.B), A: 255}
}

// tint shifts base by a stable amount derived from key.
func tint(base color.RGBA, key string) color.RGBA {
	h := hash(key)
	return color.RGBA{
		R: uint8((int(base.R) + int(h%80)) % 256),
		G: uint8((int(base.G) + int(h/80%80)) % 256),
		B: uint8((int(base.B) + int(h/6400%80)) % 256),
		A: 255,
	}
}

func hash(s string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(s))
	return h.Sum32()
}
