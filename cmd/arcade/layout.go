package main

import (
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilt-arcade/internal/config"
	"github.com/vovakirdan/tilt-arcade/internal/core"
	"github.com/vovakirdan/tilt-arcade/internal/games/tilt"
	"github.com/vovakirdan/tilt-arcade/internal/placement"
	"github.com/vovakirdan/tilt-arcade/internal/storage"
)

var (
	flagRuns      int
	flagClears    int
	flagSave      bool
	flagHistory   int
	flagLayoutFor string
	flagNoPreview bool
)

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Run the item placer without playing",
	Long: `Lay out boards headless and report what the placer did.

Each run places pickups, hazards and holes on a level plate with the
ball at its center, then counts fallbacks (items placed after every
attempt failed) and pairs closer than their required spacing.

Examples:
  arcade layout --seed 42
  arcade layout --runs 200 --no-preview
  arcade layout --difficulty hard --clears 5
  arcade layout --runs 20 --save
  arcade layout --history 10`,
	Run: runLayout,
}

func init() {
	layoutCmd.Flags().IntVar(&flagRuns, "runs", 1, "Number of layouts to generate (seeds increase by one)")
	layoutCmd.Flags().IntVar(&flagClears, "clears", 0, "Rounds won so far, for difficulty progression")
	layoutCmd.Flags().BoolVar(&flagSave, "save", false, "Record each run in the placement_sessions table")
	layoutCmd.Flags().IntVar(&flagHistory, "history", 0, "List the N most recent recorded runs and exit")
	layoutCmd.Flags().StringVar(&flagLayoutFor, "game", "tilt", "Game ID recorded with saved runs")
	layoutCmd.Flags().BoolVar(&flagNoPreview, "no-preview", false, "Skip the board preview")
	layoutCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	layoutCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// layoutRun is the outcome of one placement session.
type layoutRun struct {
	seed       int64
	stats      placement.Stats
	violations int // pairs too close, fallbacks included
	strict     int // pairs too close where neither is a fallback
}

func runLayout(_ *cobra.Command, _ []string) {
	logger := newLogger("arcade")

	if flagHistory > 0 {
		printLayoutHistory()
		return
	}

	tilt.SetConfigPath(flagConfig)
	tilt.SetDifficultyPreset(flagDifficulty)
	cfg, err := tilt.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	diff := config.NewDifficultyManager(cfg.Difficulty)

	var store *storage.Store
	if flagSave {
		store, err = storage.Open(flagDBPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
			os.Exit(1)
		}
		defer store.Close()
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	runs := max(1, flagRuns)

	results := make([]layoutRun, 0, runs)
	for i := range runs {
		s := seed + int64(i)
		board := tilt.NewBoard(cfg, diff, flagClears, placement.NewRandSource(s), logger)
		items, err := board.Place()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: seed %d: %v\n", s, err)
			os.Exit(1)
		}

		run := layoutRun{seed: s, stats: board.Sampler.Stats()}
		run.violations, run.strict = placement.Violations(items, board.Sampler.Config())
		results = append(results, run)

		if i == 0 && !flagNoPreview {
			fmt.Println(renderPreview(board, items))
			fmt.Println()
		}

		if store != nil {
			id, err := store.SavePlacementSession(storage.PlacementSession{
				GameID:    flagLayoutFor,
				Seed:      s,
				Requested: placement.Total(run.stats.Requested),
				Placed:    placement.Total(run.stats.Placed),
				Fallbacks: placement.Total(run.stats.Fallbacks),
				Attempts:  run.stats.Attempts,
			})
			if err != nil {
				logger.Warn("cannot record layout", "seed", s, "error", err)
			} else {
				logger.Debug("layout recorded", "id", id, "seed", s)
			}
		}
	}

	printLayoutSummary(results)
}

// printLayoutSummary prints per-category totals over all runs.
func printLayoutSummary(results []layoutRun) {
	if len(results) == 1 {
		fmt.Printf("Seed %d\n\n", results[0].seed)
	} else {
		fmt.Printf("%d runs, seeds %d..%d\n\n", len(results), results[0].seed, results[len(results)-1].seed)
	}

	fmt.Printf("  %-12s  %-9s  %-7s  %s\n", "Category", "Requested", "Placed", "Fallbacks")
	fmt.Printf("  %-12s  %-9s  %-7s  %s\n", "--------", "---------", "------", "---------")
	for _, c := range []placement.Category{placement.Collectible, placement.Hazard, placement.Hole} {
		var req, placed, fb int
		for _, r := range results {
			req += r.stats.Requested[c]
			placed += r.stats.Placed[c]
			fb += r.stats.Fallbacks[c]
		}
		fmt.Printf("  %-12s  %-9d  %-7d  %d\n", c, req, placed, fb)
	}

	var attempts, violations, strict, fallbackRuns int
	for _, r := range results {
		attempts += r.stats.Attempts
		violations += r.violations
		strict += r.strict
		if placement.Total(r.stats.Fallbacks) > 0 {
			fallbackRuns++
		}
	}
	fmt.Println()
	fmt.Printf("Attempts:            %d (%.1f per run)\n", attempts, float64(attempts)/float64(len(results)))
	fmt.Printf("Runs with fallbacks: %d/%d\n", fallbackRuns, len(results))
	fmt.Printf("Spacing violations:  %d (%d between sampled items)\n", violations, strict)
}

// printLayoutHistory lists recorded runs.
func printLayoutHistory() {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	sessions, err := store.RecentPlacementSessions("", flagHistory)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving layouts: %v\n", err)
		return
	}
	if len(sessions) == 0 {
		fmt.Println("No layouts recorded yet.")
		fmt.Println()
		fmt.Println("Run 'arcade layout --save' to record one.")
		return
	}

	fmt.Printf("  %-36s  %-10s  %-20s  %-7s  %-9s  %s\n", "ID", "Game", "Seed", "Placed", "Fallbacks", "Date")
	for _, p := range sessions {
		fmt.Printf("  %-36s  %-10s  %-20d  %-7s  %-9d  %s\n",
			p.ID, p.GameID, p.Seed, fmt.Sprintf("%d/%d", p.Placed, p.Requested), p.Fallbacks,
			p.CreatedAt.Format("2006-01-02 15:04"))
	}
}

var previewBorder = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("240"))

// Preview glyph styles follow the in-game board palette.
var (
	previewPlate    = glyphStyle(core.ColorPlateLow)
	previewPickup   = glyphStyle(core.ColorPickup)
	previewHazard   = glyphStyle(core.ColorHazard)
	previewHole     = glyphStyle(core.ColorHole)
	previewFallback = glyphStyle(core.ColorFallback).Bold(true)
	previewBall     = glyphStyle(core.ColorBall).Bold(true)
	previewLegend   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func glyphStyle(c core.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c.ANSI()))
}

const previewRows = 21

// renderPreview draws the board from above, one glyph per item. Terminal
// cells are about twice as tall as wide, so columns are doubled.
func renderPreview(board *tilt.Board, items []placement.PlacedItem) string {
	rows, cols := previewRows, 2*previewRows
	half := board.Plate.HalfSize

	grid := make([][]string, rows)
	for y := range grid {
		grid[y] = make([]string, cols)
		for x := range grid[y] {
			grid[y][x] = previewPlate.Render(string(tilt.PlateChar))
		}
	}

	cell := func(px, pz float64) (int, int) {
		x := int(math.Round((px + half) / (2 * half) * float64(cols-1)))
		y := int(math.Round((half - pz) / (2 * half) * float64(rows-1)))
		return min(max(x, 0), cols-1), min(max(y, 0), rows-1)
	}

	for _, it := range items {
		x, y := cell(it.Position.X(), it.Position.Z())
		var glyph rune
		style := previewPickup
		switch it.Category {
		case placement.Collectible:
			glyph = tilt.PickupChar
		case placement.Hazard:
			glyph, style = tilt.HazardChar, previewHazard
		case placement.Hole:
			glyph, style = tilt.HoleChar, previewHole
		}
		if it.Fallback {
			style = previewFallback
		}
		grid[y][x] = style.Render(string(glyph))
	}

	bx, by := cell(board.Ball.Pos.X(), board.Ball.Pos.Z())
	grid[by][bx] = previewBall.Render(string(tilt.BallChar))

	lines := make([]string, rows)
	for y := range grid {
		lines[y] = strings.Join(grid[y], "")
	}

	legend := previewLegend.Render(fmt.Sprintf("%c pickup  %c hazard  %c hole  %c ball  orange: fallback",
		tilt.PickupChar, tilt.HazardChar, tilt.HoleChar, tilt.BallChar))
	return lipgloss.JoinVertical(lipgloss.Left, previewBorder.Render(strings.Join(lines, "\n")), legend)
}
