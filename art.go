package main

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/portraitquest/assets"
	"github.com/milk9111/portraitquest/levels"
	"github.com/milk9111/portraitquest/placeholders"
)

// Art lookups fall back to generated placeholders when a PNG is not shipped.

func backgroundImage(sc *levels.Scene) *ebiten.Image {
	if sc == nil {
		return nil
	}
	return assets.ImageOr(assets.BackgroundPath(sc.Background), func() image.Image {
		return placeholders.Street(sc)
	})
}

func interiorImage(key string) *ebiten.Image {
	if key == "" {
		return nil
	}
	return assets.ImageOr(assets.BackgroundPath(key), func() image.Image {
		return placeholders.Interior(key)
	})
}

func portraitImage(key string) *ebiten.Image {
	return assets.ImageOr(assets.PortraitPath(key), func() image.Image {
		return placeholders.Portrait(key)
	})
}

func spriteImage(path string, walking bool) *ebiten.Image {
	return assets.ImageOr(path, func() image.Image {
		return placeholders.Walker(walking)
	})
}

func startScreenImage() *ebiten.Image {
	return assets.ImageOr(assets.StartScreenPath, func() image.Image {
		return placeholders.StartScreen()
	})
}
