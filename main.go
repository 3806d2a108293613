// sigmaplatformer is a side-scrolling platformer played over Tiled maps
// named sigmamap<N>.tmx.
//
// Usage:
//
//	sigmaplatformer                 - Play from the configured start level
//	sigmaplatformer validate [dir]  - Check every level map in dir
package main

import (
	"image"
	"io"
	"os"

	"github.com/automoto/sigmaplatformer/config"
	"github.com/automoto/sigmaplatformer/fonts"
	"github.com/automoto/sigmaplatformer/scenes"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame() (*Game, error) {
	if err := fonts.LoadDefaults(); err != nil {
		return nil, err
	}
	return &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewPlatformerScene(),
	}, nil
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

// Close releases the scene if it holds resources.
func (g *Game) Close() error {
	if c, ok := g.scene.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

var rootCmd = &cobra.Command{
	Use:   "sigmaplatformer",
	Short: "Side-scrolling platformer over Tiled maps",
	Long: `Runs the platformer from sigmamap<start_level>.tmx. Walk right past
the end of a map to load the next one.

Controls:
  Left/A, Right/D  move
  Up/W             jump, or climb on a ladder`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runGame,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runGame(cmd *cobra.Command, args []string) error {
	game, err := NewGame()
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)

	err = ebiten.RunGame(game)
	if cerr := game.Close(); err == nil {
		err = cerr
	}
	return err
}

func main() {
	log.SetDefault(log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          "sigma",
		ReportTimestamp: true,
	}))

	if err := config.LoadSettings(""); err != nil {
		log.Fatal("settings", "err", err)
	}

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
