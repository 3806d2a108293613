package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/automoto/sigmaplatformer/components"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font/gofont/goregular"
)

// HUD shows the level, coin and death counters in the top-left corner.
type HUD struct {
	UI *ebitenui.UI

	levelLabel  *widget.Label
	coinsLabel  *widget.Label
	deathsLabel *widget.Label

	face text.Face
}

// NewHUD builds the HUD widgets.
func NewHUD() (*HUD, error) {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load hud font: %w", err)
	}
	h := &HUD{
		face: &text.GoTextFace{
			Source: fontSource,
			Size:   16,
		},
	}
	h.buildUI()
	return h, nil
}

func (h *HUD) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{0, 0, 0, 120})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(6)),
			widget.RowLayoutOpts.Spacing(16),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	h.levelLabel = h.newLabel(color.White)
	h.coinsLabel = h.newLabel(color.RGBA{255, 255, 100, 255})
	h.deathsLabel = h.newLabel(color.RGBA{255, 120, 120, 255})
	panel.AddChild(h.levelLabel)
	panel.AddChild(h.coinsLabel)
	panel.AddChild(h.deathsLabel)

	rootContainer.AddChild(panel)

	h.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (h *HUD) newLabel(c color.Color) *widget.Label {
	return widget.NewLabel(
		widget.LabelOpts.Text("", &h.face, &widget.LabelColor{
			Idle: c,
		}),
	)
}

// Counters returns the HUD captions for a session.
func Counters(s *components.SessionData) (level, coins, deaths string) {
	return fmt.Sprintf("Level %d", s.Level),
		fmt.Sprintf("Coins %d", s.Coins),
		fmt.Sprintf("Deaths %d", s.Deaths)
}

// Update refreshes the labels from the session and runs the UI.
func (h *HUD) Update(w donburi.World) {
	if entry, ok := components.Session.First(w); ok {
		h.levelLabel.Label, h.coinsLabel.Label, h.deathsLabel.Label = Counters(components.Session.Get(entry))
	}
	h.UI.Update()
}

func (h *HUD) Draw(_ *ecs.ECS, screen *ebiten.Image) {
	h.UI.Draw(screen)
}
