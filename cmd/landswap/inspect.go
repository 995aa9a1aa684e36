package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zhouning/landswap/config"
	"github.com/zhouning/landswap/metrics"
	"github.com/zhouning/landswap/parcel"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Print dataset statistics without optimizing",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return err
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

		s := ds.Store
		fmt.Printf("parcels: %d\n", s.Len())
		fmt.Printf("  farmland: %d\n", s.Count(parcel.Farmland))
		fmt.Printf("  forest:   %d\n", s.Count(parcel.Forest))
		fmt.Printf("  other:    %d\n", s.Count(parcel.Other))
		fmt.Printf("edges: %d\n", graph.EdgeCount())

		minDeg, maxDeg := -1, 0
		for i := 0; i < graph.Len(); i++ {
			d := graph.Degree(i)
			if minDeg < 0 || d < minDeg {
				minDeg = d
			}
			if d > maxDeg {
				maxDeg = d
			}
		}
		fmt.Printf("degree: min %d, max %d\n", minDeg, maxDeg)
		fmt.Printf("avg farmland slope: %.3f\n", metrics.AverageSlope(s))
		fmt.Printf("farmland contiguity: %.3f\n", metrics.Contiguity(s, graph))

		return nil
	},
}
