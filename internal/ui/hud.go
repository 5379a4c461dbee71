//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"math"

	"voxelspace/internal/camera"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const hudPadding = 6

// HUD renders the frame rate and camera pose in the top-left corner.
type HUD struct {
	panel *ebiten.Image
}

// NewHUD constructs a HUD.
func NewHUD() *HUD {
	panel := ebiten.NewImage(1, 1)
	panel.Fill(color.RGBA{A: 0x90})
	return &HUD{panel: panel}
}

// Draw renders the overlay onto screen.
func (h *HUD) Draw(screen *ebiten.Image, fps float64, cam *camera.Camera) {
	if h == nil {
		return
	}
	face := basicfont.Face7x13
	lines := []string{
		fmt.Sprintf("%.1f fps", fps),
		fmt.Sprintf("%.0f,%.0f  %.0f°", cam.X, cam.Y, cam.NormalizedHeading()*180/math.Pi),
	}

	width := 0
	for _, line := range lines {
		if b := text.BoundString(face, line); b.Dx() > width {
			width = b.Dx()
		}
	}
	lineHeight := face.Metrics().Height.Ceil()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(width+2*hudPadding), float64(len(lines)*lineHeight+2*hudPadding))
	screen.DrawImage(h.panel, op)

	for i, line := range lines {
		y := hudPadding + (i+1)*lineHeight - 3
		text.Draw(screen, line, face, hudPadding, y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
	}
}
