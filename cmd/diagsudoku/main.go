package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"svw.info/diagsudoku/internal/domain"
	"svw.info/diagsudoku/internal/generator"
	"svw.info/diagsudoku/internal/grid"
	"svw.info/diagsudoku/internal/hint"
	"svw.info/diagsudoku/internal/infrastructure/storage"
	"svw.info/diagsudoku/internal/ports"
	"svw.info/diagsudoku/internal/solver"
	"svw.info/diagsudoku/internal/topology"
	"svw.info/diagsudoku/internal/usecase"
	"svw.info/diagsudoku/internal/validator"
)

func parseVariant(s string) domain.Variant {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "classic":
		return domain.Classic
	default:
		return domain.Diagonal
	}
}

func parseDifficulty(s string) domain.Difficulty {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return domain.Easy
	case "hard":
		return domain.Hard
	case "expert":
		return domain.Expert
	default:
		return domain.Medium
	}
}

func parseTier(s string) domain.StrategyTier {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "singles":
		return domain.StrategySingles
	default:
		return domain.StrategyPairs
	}
}

// readGrid takes the puzzle from the first argument, or from stdin when the
// argument is empty or "-". Whitespace is stripped so multi-line grids work.
func readGrid(arg string) (string, error) {
	if arg != "" && arg != "-" {
		return strings.Join(strings.Fields(arg), ""), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return strings.Join(strings.Fields(string(data)), ""), nil
}

func main() {
	variantStr := flag.String("variant", "diagonal", "constraint variant: diagonal|classic")
	levelStr := flag.String("log-level", "info", "debug|info|warn|error")
	traceDir := flag.String("trace-dir", "", "persist assignment traces under this directory")
	timeout := flag.Duration("timeout", 30*time.Second, "abort solving after this long")
	genStr := flag.String("generate", "", "generate a puzzle instead of solving: easy|medium|hard|expert")
	seed := flag.Int64("seed", 0, "generator seed (0 = current time)")
	hintOnly := flag.Bool("hint", false, "print the next logical step instead of solving")
	tierStr := flag.String("max-tier", "pairs", "highest hint tier: singles|pairs")
	flag.Parse()

	lvl := slog.LevelInfo
	switch strings.ToLower(*levelStr) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))

	variant := parseVariant(*variantStr)
	topo := topology.New(variant)
	s := solver.NewConstraintSolver(topo)
	g := generator.NewUniqueGenerator(s, topo)
	v := validator.New(topo)
	h := hint.NewLogical(topo)
	var st ports.TraceStore
	if *traceDir != "" {
		st = storage.NewFS(*traceDir)
	}
	uc := usecase.NewService(s, g, v, h, st)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if *genStr != "" {
		sd := *seed
		if sd == 0 {
			sd = time.Now().UnixNano()
		}
		p, stats, err := uc.Generate(ctx, sd, parseDifficulty(*genStr))
		if err != nil {
			logger.Error("generate failed", "err", err)
			os.Exit(1)
		}
		logger.Info("generated", "variant", *variantStr, "difficulty", *genStr,
			"seed", sd, "nodes", stats.Nodes, "dur", stats.Duration.Round(time.Millisecond))
		fmt.Println(p.Grid)
		return
	}

	input, err := readGrid(flag.Arg(0))
	if err != nil {
		logger.Error("reading puzzle", "err", err)
		os.Exit(1)
	}
	values, err := grid.Parse(input)
	if err != nil {
		logger.Error("invalid puzzle", "err", err)
		os.Exit(1)
	}

	if *hintOnly {
		hh, found, err := uc.Hint(ctx, values, parseTier(*tierStr))
		if err != nil {
			logger.Error("hint failed", "err", err)
			os.Exit(1)
		}
		if !found {
			fmt.Println("no hint available at this tier")
			return
		}
		fmt.Println(hh.Message)
		return
	}

	solved, trace, stats, err := uc.Solve(ctx, values)
	if err != nil {
		if errors.Is(err, solver.ErrUnsolvable) {
			logger.Error("no solution", "err", err, "nodes", stats.Nodes,
				"dur", stats.Duration.Round(time.Millisecond))
		} else {
			logger.Error("solve aborted", "err", err)
		}
		os.Exit(1)
	}
	if ok, conflicts, _ := uc.Validate(ctx, solved); !ok {
		logger.Error("solver produced an invalid board", "conflicts", conflicts)
		os.Exit(1)
	}
	logger.Info("solved", "variant", *variantStr, "nodes", stats.Nodes,
		"assignments", len(trace.Steps), "dur", stats.Duration.Round(time.Millisecond))
	fmt.Print(grid.Render(solved))

	// Trace persistence is playback-only; failures must never undo a solve.
	if st != nil {
		rec := &domain.TraceRecord{
			ID:        strconv.FormatInt(time.Now().UnixNano(), 10),
			Grid:      input,
			Variant:   variant,
			Solved:    true,
			CreatedAt: time.Now().UnixNano(),
			Steps:     trace.Steps,
		}
		if err := uc.SaveTrace(ctx, rec); err != nil {
			logger.Warn("trace not saved", "err", err)
		} else {
			logger.Info("trace saved", "id", rec.ID, "steps", len(rec.Steps))
		}
	}
}
