package assets

import (
	"bytes"
	"fmt"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/goregular"
)

// Weight selects one of the bundled Go font sources.
type Weight int

const (
	Regular Weight = iota
	Medium
	Bold
)

var (
	sourcesOnce sync.Once
	sources     map[Weight]*text.GoTextFaceSource
	sourcesErr  error

	facesMu sync.Mutex
	faces   = map[faceKey]*text.GoTextFace{}
)

type faceKey struct {
	weight Weight
	size   float64
}

// LoadFonts parses the bundled fonts. Calling it at startup surfaces parse
// errors early; Face calls it lazily otherwise.
func LoadFonts() error {
	sourcesOnce.Do(func() {
		ttfs := map[Weight][]byte{
			Regular: goregular.TTF,
			Medium:  gomedium.TTF,
			Bold:    gobold.TTF,
		}
		sources = make(map[Weight]*text.GoTextFaceSource, len(ttfs))
		for weight, ttf := range ttfs {
			src, err := text.NewGoTextFaceSource(bytes.NewReader(ttf))
			if err != nil {
				sourcesErr = fmt.Errorf("assets: parse font %d: %w", weight, err)
				return
			}
			sources[weight] = src
		}
	})
	return sourcesErr
}

// Face returns a cached face for the weight and pixel size.
func Face(weight Weight, size float64) *text.GoTextFace {
	if err := LoadFonts(); err != nil {
		log.Fatalf("assets: %v", err)
	}
	key := faceKey{weight: weight, size: size}

	facesMu.Lock()
	defer facesMu.Unlock()
	if f, ok := faces[key]; ok {
		return f
	}
	src, ok := sources[weight]
	if !ok {
		src = sources[Regular]
	}
	f := &text.GoTextFace{Source: src, Size: size}
	faces[key] = f
	return f
}
