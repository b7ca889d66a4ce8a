// Copyright 2025 The go-linear Authors. SPDX-License-Identifier: Apache-2.0

// Command linear inspects the compute environment and benchmarks the
// vector kernels.
//
// Usage:
//
//	linear info
//	linear bench --size 1000000 --workers 8
//
// Configuration can also come from LINEAR_* environment variables, e.g.
// LINEAR_WORKERS=4.
package main

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/ajroetker/go-highway/hwy"
	"github.com/pbnjay/memory"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sys/cpu"

	"github.com/ajroetker/go-linear/linear"
	"github.com/ajroetker/go-linear/linear/gpu"
	"github.com/ajroetker/go-linear/linear/lehmer"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "linear",
		Short:         "Single-precision vector and matrix toolkit",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := zerolog.InfoLevel
			if verbose {
				level = zerolog.DebugLevel
			}
			log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
				Level(level).
				With().Timestamp().Logger()
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().Int("workers", 0, "worker count for parallel operations (0 = GOMAXPROCS)")

	viper.SetEnvPrefix("LINEAR")
	viper.AutomaticEnv()
	viper.BindPFlag("workers", root.PersistentFlags().Lookup("workers"))

	root.AddCommand(newInfoCmd(), newBenchCmd())
	return root
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show CPU, memory and device capabilities",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "arch:        %s\n", runtime.GOARCH)
			fmt.Fprintf(out, "cpus:        %d\n", runtime.GOMAXPROCS(0))
			fmt.Fprintf(out, "memory:      %.1f GiB\n", float64(memory.TotalMemory())/(1<<30))
			fmt.Fprintf(out, "simd:        %s (%d float32 lanes)\n", hwy.CurrentName(), hwy.MaxLanes[float32]())

			switch runtime.GOARCH {
			case "amd64":
				fmt.Fprintf(out, "features:    sse4.2=%v avx2=%v avx512=%v\n",
					cpu.X86.HasSSE42, cpu.X86.HasAVX2, cpu.X86.HasAVX512F)
			case "arm64":
				fmt.Fprintf(out, "features:    asimd=%v\n", cpu.ARM64.HasASIMD)
			}

			dev := gpu.DefaultDevice()
			defer dev.Free()
			fmt.Fprintf(out, "device:      %s (%s)\n", dev.Name(), dev.Type())
			return nil
		},
	}
}

func newBenchCmd() *cobra.Command {
	var size int
	var iters int

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Benchmark serial vs pooled element-wise addition",
		RunE: func(cmd *cobra.Command, args []string) error {
			workers := viper.GetInt("workers")
			if workers <= 0 {
				workers = runtime.GOMAXPROCS(0)
			}
			log.Debug().Int("size", size).Int("workers", workers).Msg("benchmark config")

			s := lehmer.NewState(lehmer.DefaultSeed)
			a := linear.New(size)
			b := linear.New(size)
			for i := range a.Data {
				a.Data[i] = s.Float32InRange(-1, 1)
				b.Data[i] = s.Float32InRange(-1, 1)
			}

			serial := benchmark(iters, func() error {
				_, err := a.Add(b)
				return err
			})

			p := linear.NewParallel(workers)
			defer p.Close()
			pooled := benchmark(iters, func() error {
				_, err := p.Add(a, b)
				return err
			})

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "size:     %d elements\n", size)
			fmt.Fprintf(out, "workers:  %d\n", workers)
			fmt.Fprintf(out, "serial:   %v/op\n", serial)
			fmt.Fprintf(out, "pooled:   %v/op\n", pooled)
			if pooled > 0 {
				fmt.Fprintf(out, "speedup:  %.2fx\n", float64(serial)/float64(pooled))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&size, "size", 1_000_000, "vector length")
	cmd.Flags().IntVar(&iters, "iters", 50, "iterations per measurement")
	return cmd
}

// benchmark reports the mean wall time of fn over iters runs.
func benchmark(iters int, fn func() error) time.Duration {
	if iters <= 0 {
		iters = 1
	}
	start := time.Now()
	for range iters {
		if err := fn(); err != nil {
			log.Error().Err(err).Msg("benchmark iteration failed")
			return 0
		}
	}
	return time.Since(start) / time.Duration(iters)
}
