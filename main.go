package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/iburimskiy/motioncraft/internal/config"
	"github.com/iburimskiy/motioncraft/internal/game"
	"github.com/iburimskiy/motioncraft/internal/showcase"
)

var (
	widthFlag     = flag.Int("width", config.WindowWidth, "initial window width")
	heightFlag    = flag.Int("height", config.WindowHeight, "initial window height")
	particlesFlag = flag.Bool("particles", true, "draw the particle background")
	countFlag     = flag.Int("count", config.ParticleCount, "number of background particles")
	seedFlag      = flag.Uint64("seed", 0, "particle random seed (0 = random)")
	endpointFlag  = flag.String("endpoint", config.ContactEndpoint, "contact form endpoint")
	mediaFlag     = flag.String("media", "", "comma separated audio previews for the showcase tiles")
	debugFlag     = flag.Bool("debug", false, "write logs to "+logDir+"/"+logFileName)
)

var tileTitles = []string{"Brand film", "Product explainer", "Interface motion"}

func main() {
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	tiles := loadTiles(splitMedia(*mediaFlag))

	g := game.New(game.Options{
		Particles: *particlesFlag,
		Count:     *countFlag,
		Seed:      *seedFlag,
		Endpoint:  *endpointFlag,
		Tiles:     tiles,
	})
	defer g.Close()

	ebiten.SetWindowSize(*widthFlag, *heightFlag)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(ebiten.SyncWithFPS)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		fmt.Fprintf(os.Stderr, "motioncraft: %v\n", err)
		os.Exit(1)
	}
}

func splitMedia(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// loadTiles builds one tile per title, attaching the given media in order.
// A clip that fails to load leaves its tile empty.
func loadTiles(media []string) []*showcase.Tile {
	tiles := make([]*showcase.Tile, len(tileTitles))
	for i, title := range tileTitles {
		tiles[i] = showcase.NewTile(title, nil)
		if i >= len(media) {
			continue
		}
		clip, err := showcase.OpenClip(media[i])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Preview %q unavailable: %v (continuing without it)\n", title, err)
			continue
		}
		log.Printf("showcase: %q previews %s", title, media[i])
		tiles[i].SetPlayer(clip)
	}
	if len(media) > len(tileTitles) {
		log.Printf("showcase: ignoring %d extra media files", len(media)-len(tileTitles))
	}
	return tiles
}
