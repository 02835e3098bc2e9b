package main

import (
	"context"
	"errors"
	"flag"
	"image"
	"log"
	"time"

	"github.com/automoto/tilerush/config"
	"github.com/automoto/tilerush/fonts"
	"github.com/automoto/tilerush/scenes"
	"github.com/automoto/tilerush/telemetry"
	"github.com/hajimehoshi/ebiten/v2"
	"go.opentelemetry.io/otel/trace"
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(tracer trace.Tracer) *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewGameScene(tracer),
	}
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	if err := config.LoadDotEnv(); err != nil {
		log.Printf("No .env loaded: %v", err)
	}
	for _, err := range config.ApplyEnv() {
		log.Printf("Warning: ignoring environment value: %v", err)
	}
	config.Bind(flag.CommandLine)
	flag.Parse()

	tracer := telemetry.NoopTracer()
	if telemetry.Enabled() {
		shutdown, err := telemetry.Setup(context.Background())
		if err != nil {
			log.Printf("Warning: telemetry disabled: %v", err)
		} else {
			tracer = telemetry.Tracer("session")
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(ctx); err != nil {
					log.Printf("Warning: telemetry shutdown: %v", err)
				}
			}()
		}
	}

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetTPS(config.C.TPS)

	if err := ebiten.RunGame(NewGame(tracer)); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
