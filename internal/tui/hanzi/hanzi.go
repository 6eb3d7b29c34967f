// Package hanzi renders Chinese headwords as large half-block art for the
// reader's detail pane.
package hanzi

import (
	"image"
	"image/color"
	"image/draw"
	"os"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Common system locations of CJK-capable fonts.
var fontPaths = []string{
	// macOS
	"/System/Library/Fonts/STHeiti Light.ttc",
	"/System/Library/Fonts/PingFang.ttc",
	"/System/Library/Fonts/Hiragino Sans GB.ttc",
	"/Library/Fonts/Arial Unicode.ttf",
	// Linux
	"/usr/share/fonts/opentype/noto/NotoSansCJK-Regular.ttc",
	"/usr/share/fonts/noto-cjk/NotoSansCJK-Regular.ttc",
	"/usr/share/fonts/truetype/noto/NotoSansCJK-Regular.ttc",
	"/usr/share/fonts/truetype/droid/DroidSansFallbackFull.ttf",
	// Windows
	"C:\\Windows\\Fonts\\msyh.ttc",
	"C:\\Windows\\Fonts\\simsun.ttc",
}

var (
	faceOnce sync.Once
	face     font.Face

	cacheMu sync.Mutex
	cache   = map[string]string{}
)

func loadFace() font.Face {
	faceOnce.Do(func() {
		for _, path := range fontPaths {
			data, err := os.ReadFile(path)
			if err != nil {
				continue
			}
			if f := parseFace(data); f != nil {
				face = f
				return
			}
		}
	})
	return face
}

func parseFace(data []byte) font.Face {
	opts := &opentype.FaceOptions{Size: 64, DPI: 72}

	if coll, err := opentype.ParseCollection(data); err == nil && coll.NumFonts() > 0 {
		if fnt, err := coll.Font(0); err == nil {
			if f, err := opentype.NewFace(fnt, opts); err == nil {
				return f
			}
		}
	}
	if fnt, err := opentype.Parse(data); err == nil {
		if f, err := opentype.NewFace(fnt, opts); err == nil {
			return f
		}
	}
	return nil
}

// Available reports whether a CJK font was found on this system.
func Available() bool {
	return loadFace() != nil
}

// Render draws word as half-block art of cols x rows terminal cells,
// caching results. It returns "" when no CJK font is available.
func Render(word string, cols, rows int) string {
	if word == "" || !Available() {
		return ""
	}

	key := word + "\x00" + string(rune(cols)) + string(rune(rows))
	cacheMu.Lock()
	cached, ok := cache[key]
	cacheMu.Unlock()
	if ok {
		return cached
	}

	rendered := render(word, cols, rows)

	cacheMu.Lock()
	cache[key] = rendered
	cacheMu.Unlock()
	return rendered
}

func render(word string, cols, rows int) string {
	f := loadFace()

	d := &font.Drawer{Src: image.White, Face: f}
	textWidth := d.MeasureString(word).Ceil()
	metrics := f.Metrics()
	textHeight := (metrics.Ascent + metrics.Descent).Ceil()

	const padding = 4
	srcWidth := textWidth + padding*2
	srcHeight := textHeight + padding*2

	srcImg := image.NewGray(image.Rect(0, 0, srcWidth, srcHeight))
	draw.Draw(srcImg, srcImg.Bounds(), &image.Uniform{color.Black}, image.Point{}, draw.Src)

	d.Dst = srcImg
	d.Dot = fixed.P(padding, padding+metrics.Ascent.Ceil())
	d.DrawString(word)

	scaled := scaleDown(srcImg, cols, rows*2)
	return toHalfBlocks(scaled, cols, rows)
}

// scaleDown shrinks a grayscale image with area averaging.
func scaleDown(src *image.Gray, dstWidth, dstHeight int) *image.Gray {
	srcWidth := src.Bounds().Max.X
	srcHeight := src.Bounds().Max.Y
	dst := image.NewGray(image.Rect(0, 0, dstWidth, dstHeight))

	xRatio := float64(srcWidth) / float64(dstWidth)
	yRatio := float64(srcHeight) / float64(dstHeight)

	for dy := 0; dy < dstHeight; dy++ {
		for dx := 0; dx < dstWidth; dx++ {
			sx1 := int(float64(dx) * xRatio)
			sy1 := int(float64(dy) * yRatio)
			sx2 := min(int(float64(dx+1)*xRatio), srcWidth)
			sy2 := min(int(float64(dy+1)*yRatio), srcHeight)

			var sum, count int
			for sy := sy1; sy < sy2; sy++ {
				for sx := sx1; sx < sx2; sx++ {
					sum += int(src.GrayAt(sx, sy).Y)
					count++
				}
			}
			if count > 0 {
				dst.SetGray(dx, dy, color.Gray{Y: uint8(sum / count)})
			}
		}
	}
	return dst
}

// toHalfBlocks maps pairs of vertical pixels onto ▀ ▄ █ cells.
func toHalfBlocks(img *image.Gray, cols, rows int) string {
	const threshold = 40

	var b strings.Builder
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			top := brightness(img, col, row*2) > threshold
			bottom := brightness(img, col, row*2+1) > threshold

			switch {
			case top && bottom:
				b.WriteRune('█')
			case top:
				b.WriteRune('▀')
			case bottom:
				b.WriteRune('▄')
			default:
				b.WriteRune(' ')
			}
		}
		if row < rows-1 {
			b.WriteRune('\n')
		}
	}
	return b.String()
}

func brightness(img *image.Gray, x, y int) uint8 {
	if x < 0 || y < 0 || x >= img.Bounds().Max.X || y >= img.Bounds().Max.Y {
		return 0
	}
	return img.GrayAt(x, y).Y
}
