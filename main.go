package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"tetris/engine"
	"tetris/experiments"
	"tetris/experiments/metrics"
	"tetris/meta"
	"tetris/searcher"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "failed to load .env: %v\n", err)
		os.Exit(1)
	}

	experiment := flag.String("experiment", getenv("TETRIS_EXPERIMENT", "play"), "play, evaluation, beam or parallelization")
	level := flag.String("level", getenv("TETRIS_LOG_LEVEL", "info"), "Log level")
	root := flag.String("root", getenv("TETRIS_ROOT", "."), "Directory experiment records are written under")
	seed := flag.Uint64("seed", getenvUint("TETRIS_SEED", 1), "Master seed")
	games := flag.Int("games", getenvInt("TETRIS_GAMES", meta.GAMES), "Games per agent")
	workers := flag.Int("workers", getenvInt("TETRIS_WORKERS", meta.WORKERS), "Games played concurrently")
	maxPieces := flag.Int("pieces", getenvInt("TETRIS_MAX_PIECES", meta.MAX_PIECES), "Maximum pieces per game")
	goroutines := flag.Int("goroutines", getenvInt("TETRIS_GOROUTINES", meta.GO_ROUTINES), "Goroutines evaluating placements")
	width := flag.Int("width", getenvInt("TETRIS_BEAM_WIDTH", meta.BEAM_WIDTH), "Beam width")
	depth := flag.Int("depth", getenvInt("TETRIS_BEAM_DEPTH", meta.BEAM_DEPTH), "Pieces searched ahead")
	evalLimit := flag.Int("limit", getenvInt("TETRIS_EVAL_LIMIT", meta.EVAL_LIMIT), "Boards evaluated per lookahead")
	hold := flag.Bool("hold", getenv("TETRIS_HOLD", "false") == "true", "Consider the hold slot")
	scorer := flag.String("scorer", getenv("TETRIS_SCORER", "classic"), "classic or modern")
	weights := flag.String("weights", getenv("TETRIS_WEIGHTS", ""), "Space separated heuristic weights")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	lvl, err := zerolog.ParseLevel(*level)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(lvl)

	w := meta.DefaultWeights
	if *weights != "" {
		w, err = parseWeights(*weights)
		if err != nil {
			log.Fatal().Err(err).Msg("invalid weights")
		}
	}

	agent := metrics.AgentConfig{
		ID:         1,
		Scorer:     *scorer,
		Goroutines: *goroutines,
		BeamWidth:  *width,
		Depth:      *depth,
		EvalLimit:  *evalLimit,
		Hold:       *hold,
		Weights:    w,
	}
	config := experiments.Config{
		Root:      *root,
		Games:     *games,
		Workers:   *workers,
		MaxPieces: *maxPieces,
		Seed:      *seed,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch *experiment {
	case "play":
		err = play(agent, *seed, *maxPieces)
	case "evaluation":
		_, err = experiments.RunEvaluation(ctx, config, agent)
	case "beam":
		_, err = experiments.RunBeamExperiment(ctx, config, w)
	case "parallelization":
		_, err = experiments.RunParallelizationExperiment(ctx, config, w)
	default:
		err = fmt.Errorf("unknown experiment %q", *experiment)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}
}

// play runs a single game and prints the final board.
func play(config metrics.AgentConfig, seed uint64, maxPieces int) error {
	scorer, err := experiments.ScorerByName(config.Scorer)
	if err != nil {
		return err
	}
	if len(config.Weights) != len(searcher.DefaultHeuristic()) {
		return fmt.Errorf("got %d weights for %d features", len(config.Weights), len(searcher.DefaultHeuristic()))
	}

	options := []searcher.Option{searcher.WithGoroutines(config.Goroutines), searcher.WithBeam(config.BeamWidth, config.Depth), searcher.WithEvalLimit(config.EvalLimit)}
	if config.Hold {
		options = append(options, searcher.WithHold())
	}
	e := engine.LocalEngine(searcher.New(config.Weights, options...), scorer, seed, maxPieces)

	gameMetric, _ := e.Run()
	log.Info().Msgf("score %g, %d pieces, %d lines, %d t-spins, %d perfect clears in %s",
		gameMetric.Score, gameMetric.Pieces, gameMetric.Lines, gameMetric.TSpins, gameMetric.PerfectClears, gameMetric.Duration)
	fmt.Println(e.Game)
	return nil
}

func parseWeights(s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ' ' || r == ',' })
	weights := make([]float64, len(fields))
	for i, f := range fields {
		w, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("weight %d: %w", i, err)
		}
		weights[i] = w
	}
	return weights, nil
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func getenvInt(k string, d int) int {
	if v, err := strconv.Atoi(os.Getenv(k)); err == nil {
		return v
	}
	return d
}

func getenvUint(k string, d uint64) uint64 {
	if v, err := strconv.ParseUint(os.Getenv(k), 10, 64); err == nil {
		return v
	}
	return d
}
