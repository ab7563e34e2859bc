package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"ninarow/config"
	"ninarow/engine"
	"ninarow/game"
	"ninarow/player"
	"ninarow/searcher"
)

// main is the terminal presentation layer: it renders the board, maps
// typed coordinates into the active human player, and steps the engine
// once per loop iteration.
func main() {
	configPath := flag.String("config", "", "path to a yaml config file; environment variables override")
	flag.Parse()

	conf, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	initLogger(conf)

	gameCfg, err := conf.Game()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid game configuration")
	}

	playerX, err := buildPlayer(conf, conf.PlayerX)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid player X")
	}
	playerO, err := buildPlayer(conf, conf.PlayerO)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid player O")
	}

	eng, err := engine.New(gameCfg, playerX, playerO, engine.WithLogger(log.Logger))
	if err != nil {
		log.Fatal().Err(err).Msg("unable to start game")
	}

	fmt.Printf("%d-in-a-row on a %dx%d board, X: %s, O: %s\n\n",
		gameCfg.WinLength, gameCfg.Size, gameCfg.Size, conf.PlayerX, conf.PlayerO)
	fmt.Print(eng.Board())

	input := bufio.NewScanner(os.Stdin)
	for {
		res, mv, err := eng.Step()
		if err != nil {
			if errors.Is(err, game.ErrIllegalMove) {
				fmt.Printf("%v, try again\n", err)
				continue
			}
			log.Fatal().Err(err).Msg("game aborted")
		}
		if mv != nil {
			fmt.Printf("\n%s plays (%d,%d)\n", mv.Mark, mv.Row, mv.Col)
			fmt.Print(eng.Board())
		}
		if res.Status != game.InProgress {
			printOutcome(res)
			return
		}
		if mv == nil {
			if err := promptHuman(eng, input); err != nil {
				log.Fatal().Err(err).Msg("input closed")
			}
		}
	}
}

func promptHuman(eng *engine.Engine, input *bufio.Scanner) error {
	fmt.Printf("%s to move (row col): ", eng.Turn())
	if !input.Scan() {
		if err := input.Err(); err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		return errors.New("stdin closed")
	}
	var row, col int
	if _, err := fmt.Sscanf(input.Text(), "%d %d", &row, &col); err != nil {
		fmt.Println("expected two numbers, e.g. \"1 2\"")
		return nil
	}
	return eng.Submit(row, col)
}

func printOutcome(res game.Result) {
	switch res.Status {
	case game.Won:
		fmt.Printf("\n%s wins along %v\n", res.Winner, res.Line)
	case game.Drawn:
		fmt.Println("\ndraw")
	}
}

func buildPlayer(conf *config.Config, kind string) (player.Player, error) {
	switch kind {
	case config.KindHuman:
		return player.NewHuman(), nil
	case config.KindRandom:
		return player.NewRandom(conf.RandomSeed), nil
	case config.KindMinimax:
		options := []searcher.Option{
			searcher.WithMetrics(searcher.NewCollector()),
			searcher.WithLogger(log.Logger),
		}
		if conf.MaxDepth > 0 {
			options = append(options, searcher.WithMaxDepth(conf.MaxDepth))
		}
		if conf.TimeLimitMs > 0 {
			options = append(options, searcher.WithTimeLimit(time.Duration(conf.TimeLimitMs)*time.Millisecond))
		}
		return player.NewMinimax(options...), nil
	default:
		return nil, fmt.Errorf("unknown player kind %q", kind)
	}
}

func initLogger(conf *config.Config) {
	level, err := zerolog.ParseLevel(conf.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
}
