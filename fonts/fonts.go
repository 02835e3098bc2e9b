package fonts

import (
	"fmt"

	"github.com/automoto/tilerush/config"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Title      FontName = "title"
	TileNumber FontName = "tile-number"
	Hint       FontName = "hint"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]font.Face{}
)

// LoadDefaults parses the bundled Go fonts at the sizes in config.Font.
func LoadDefaults() error {
	if err := LoadFontWithSize(Title, gobold.TTF, config.Font.TitleSize); err != nil {
		return err
	}
	if err := LoadFontWithSize(TileNumber, gobold.TTF, config.Font.TileNumberSize); err != nil {
		return err
	}
	return LoadFontWithSize(Hint, goregular.TTF, config.Font.HintSize)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", name, err)
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{
		Size:    size,
		Hinting: font.HintingFull,
	})
	return nil
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
