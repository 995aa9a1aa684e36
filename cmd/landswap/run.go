package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/zhouning/landswap/adjacency"
	"github.com/zhouning/landswap/config"
	"github.com/zhouning/landswap/engine"
	"github.com/zhouning/landswap/featureio"
	"github.com/zhouning/landswap/scorer"
)

var (
	okColor   = color.New(color.FgGreen)
	warnColor = color.New(color.FgYellow, color.Bold)
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the swap optimization",
	Long: `Read the input feature collection, build the adjacency graph, load the
scorer checkpoint, and run the configured number of swap rounds.
Interrupt (Ctrl-C) stops cleanly at the next round boundary and still
writes a conserved partial result.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return err
		}
		if pairsFlag > 0 {
			cfg.Pairs = pairsFlag
		}
		log := newLogger()

		ds, err := readDataset(log, cfg)
		if err != nil {
			return err
		}
		graph, err := buildGraph(log, cfg, ds)
		if err != nil {
			return err
		}

		net, err := scorer.Load(cfg.Weights)
		if err != nil {
			return err
		}
		log.Info("checkpoint loaded",
			slog.String("path", cfg.Weights),
			slog.Int("k_parcel", net.KParcel()),
			slog.Int("k_global", net.KGlobal()))

		eng, err := engine.New(ds.Store, graph, net)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		sink := engine.SinkFunc(func(round, total int, avgSlope, contiguity float64) {
			fmt.Printf("\rround %d/%d  slope %.3f  contiguity %.3f", round, total, avgSlope, contiguity)
			if round == total {
				fmt.Println()
			}
		})
		res, err := eng.Run(ctx, engine.Config{Pairs: cfg.Pairs, Sink: sink})
		if err != nil {
			return err
		}
		if res.Canceled {
			fmt.Println()
			warnColor.Printf("interrupted after %d/%d pairs; writing partial result\n",
				res.CompletedPairs, res.EffectivePairs)
		}

		out, err := os.Create(cfg.Output)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer out.Close()
		counts, err := ds.Write(out, res, featureOptions(cfg))
		if err != nil {
			return err
		}

		printSummary(res, counts)

		return nil
	},
}

func init() {
	runCmd.Flags().IntVarP(&pairsFlag, "pairs", "n", 0, "override the configured pair count")
}

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func featureOptions(cfg *config.Run) featureio.Options {
	return featureio.Options{
		LabelProperty:  cfg.LabelField,
		SlopeProperty:  cfg.SlopeField,
		AreaProperty:   cfg.AreaField,
		FarmlandLabels: cfg.FarmlandLabels,
		ForestLabels:   cfg.ForestLabels,
	}
}

func readDataset(log *slog.Logger, cfg *config.Run) (*featureio.Dataset, error) {
	f, err := os.Open(cfg.Input)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	ds, err := featureio.Read(f, featureOptions(cfg))
	if err != nil {
		return nil, err
	}
	log.Info("dataset loaded",
		slog.String("path", cfg.Input),
		slog.Int("parcels", ds.Store.Len()))

	return ds, nil
}

// buildGraph picks the adjacency strategy: a precomputed pair table
// when one is configured (or strategy=pairs), the geometric fallback
// otherwise.
func buildGraph(log *slog.Logger, cfg *config.Run, ds *featureio.Dataset) (*adjacency.Graph, error) {
	var builder adjacency.Builder
	strategy := cfg.Adjacency
	if strategy == "auto" {
		if cfg.NeighborPairs != "" {
			strategy = "pairs"
		} else {
			strategy = "geometry"
		}
	}
	switch strategy {
	case "pairs":
		pairs, err := loadPairTable(cfg.NeighborPairs)
		if err != nil {
			return nil, err
		}
		builder = adjacency.PairListBuilder{N: ds.Store.Len(), Pairs: pairs}
	default:
		builder = adjacency.GeometryBuilder{Geoms: ds.Geoms}
	}

	graph, err := builder.Build()
	if err != nil {
		return nil, err
	}
	avg := 0.0
	if graph.Len() > 0 {
		avg = 2 * float64(graph.EdgeCount()) / float64(graph.Len())
	}
	log.Info("adjacency graph built",
		slog.String("strategy", strategy),
		slog.Int("edges", graph.EdgeCount()),
		slog.Float64("avg_neighbors", avg))

	return graph, nil
}

// loadPairTable reads a "src,nbr" CSV of parcel index pairs.
func loadPairTable(path string) ([][2]int32, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open neighbor pairs: %w", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read neighbor pairs: %w", err)
	}
	pairs := make([][2]int32, 0, len(rows))
	for _, row := range rows {
		if len(row) != 2 {
			return nil, fmt.Errorf("read neighbor pairs: want 2 columns, got %d", len(row))
		}
		src, err := strconv.Atoi(row[0])
		if err != nil {
			return nil, fmt.Errorf("read neighbor pairs: %w", err)
		}
		nbr, err := strconv.Atoi(row[1])
		if err != nil {
			return nil, fmt.Errorf("read neighbor pairs: %w", err)
		}
		pairs = append(pairs, [2]int32{int32(src), int32(nbr)})
	}

	return pairs, nil
}

func printSummary(res *engine.Result, counts featureio.WriteCounts) {
	fmt.Printf("run %s\n", res.RunID)
	fmt.Printf("pairs: %d completed of %d requested (%d effective)\n",
		res.CompletedPairs, res.RequestedPairs, res.EffectivePairs)
	fmt.Printf("avg slope:  %.3f -> %.3f (%+.2f%%)\n",
		res.InitialAvgSlope, res.FinalAvgSlope, res.SlopeChangePct)
	fmt.Printf("contiguity: %.3f -> %.3f\n", res.InitialContiguity, res.FinalContiguity)
	fmt.Printf("conversions: %d farmland->forest, %d forest->farmland\n",
		counts.ToForest, counts.ToFarm)
	if counts.Conserved() {
		okColor.Println("farmland count conserved (FC=0)")
	} else {
		warnColor.Printf("farmland count NOT conserved: %+d\n", counts.ToFarm-counts.ToForest)
	}
	if res.Partial() && !res.Canceled {
		warnColor.Printf("only %d of %d requested pairs were possible\n",
			res.CompletedPairs, res.RequestedPairs)
	}
}
