// Command dotgames runs the handheld's game core against the terminal
// simulator: arrow keys are the joystick, space or enter the button,
// q / Esc / Ctrl-C leaves. A .env file or DOTGAMES_* variables tune
// audio and brightness.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"
	"github.com/joho/godotenv"

	"dotgames/game"
	"dotgames/game/snake"
	"dotgames/input"
	"dotgames/max7219"
	"dotgames/noise"
	"dotgames/periph"
	"dotgames/sim"
)

var muteFlag = flag.Bool("mute", false, "Disable event sounds")

func main() {
	// A .env file is optional; the environment alone works too.
	_ = godotenv.Load()
	flag.Parse()

	cfg := sim.LoadConfig()
	if *muteFlag {
		cfg.AudioEnabled = false
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create terminal screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	// Restore the terminal before printing a crash, or the trace is
	// unreadable inside the alternate screen.
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "dotgames crashed: %v\n", r)
			fmt.Fprintf(os.Stderr, "%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	// Wire the board: simulator pins below, the real drivers above.
	matrix := sim.NewMatrix(screen)
	keypad := sim.NewKeypad(screen, matrix.Redraw)

	display := max7219.New(matrix.LoadPin(), matrix.ClkPin(), matrix.DinPin())
	display.Configure()
	display.SetIntensity(cfg.Intensity)

	clock := periph.NewSystemClock()
	stick := input.NewJoystick(keypad.XPin(), keypad.YPin(), keypad.ButtonPin())

	var sound game.Sounder
	if cfg.AudioEnabled {
		beeper, err := sim.NewBeeper(cfg)
		if err != nil {
			// Non-fatal, the game runs fine silent.
			log.Printf("audio init failed: %v", err)
		} else {
			sound = beeper
		}
	}

	console := &game.Console{
		Display:  display,
		Joystick: input.NewPoller(stick, clock),
		Rand:     noise.NewGenerator(sim.NewNoisePin()),
		Clock:    clock,
		Sound:    sound,
		Stop:     keypad.Quit(),
	}

	// Selection hands one game to the host loop; the round cycle runs
	// until the player quits.
	menu := game.NewSelectionScreen(snake.New())
	chosen, ok := menu.Run(console)
	if !ok {
		return
	}
	for !console.Stopped() {
		chosen.Play(console)
		if console.Stopped() {
			return
		}
		chosen.GameOver(console)
		chosen.Reset()
	}
}
