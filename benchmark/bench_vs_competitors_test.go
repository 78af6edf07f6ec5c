package benchmark_test

import (
	"testing"

	"github.com/dzonerzy/go-params/params"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/urfave/cli/v2"
)

// Benchmark flat flag parsing: a presence flag, two valued options and a
// trailing positional. Schema construction is inside the loop for every
// library, since all four keep per-parse state in the flag set.

var flatArgs = []string{"-a", "-c", "10", "-i", "2.5", "192.168.0.1"}

func BenchmarkFlatFlags_GoParams(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		var (
			audible     bool
			count       int
			interval    float64
			destination string
		)
		ps := params.New()
		_ = params.Bind(ps, &audible, params.Optional, "-a")
		_ = params.Bind(ps, &count, params.Optional, "-c", "--count")
		_ = params.Bind(ps, &interval, params.Optional, "-i", "--interval")
		_ = params.Bind(ps, &destination, params.Required, "destination")
		if err := ps.Parse(flatArgs); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFlatFlags_Pflag(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		fs := pflag.NewFlagSet("bench", pflag.ContinueOnError)
		fs.BoolP("audible", "a", false, "Audible output")
		fs.IntP("count", "c", 0, "Count")
		fs.Float64P("interval", "i", 0, "Interval")
		if err := fs.Parse(flatArgs); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFlatFlags_Cobra(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		rootCmd := &cobra.Command{
			Use:  "bench",
			Args: cobra.ArbitraryArgs,
			Run:  func(_ *cobra.Command, _ []string) {},
		}
		rootCmd.Flags().BoolP("audible", "a", false, "Audible output")
		rootCmd.Flags().IntP("count", "c", 0, "Count")
		rootCmd.Flags().Float64P("interval", "i", 0, "Interval")
		rootCmd.SetArgs(flatArgs)
		if err := rootCmd.Execute(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFlatFlags_Urfave(b *testing.B) {
	args := append([]string{"bench"}, flatArgs...)
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		app := &cli.App{
			Name: "bench",
			Flags: []cli.Flag{
				&cli.BoolFlag{Name: "audible", Aliases: []string{"a"}, Usage: "Audible output"},
				&cli.IntFlag{Name: "count", Aliases: []string{"c"}, Usage: "Count"},
				&cli.Float64Flag{Name: "interval", Aliases: []string{"i"}, Usage: "Interval"},
			},
			Action: func(_ *cli.Context) error { return nil },
		}
		if err := app.Run(args); err != nil {
			b.Fatal(err)
		}
	}
}

// Benchmark short-option clusters: three presence flags in one token.

var clusterArgs = []string{"-xyz"}

func BenchmarkShortCluster_GoParams(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		var x, y, z bool
		ps := params.New()
		_ = params.Bind(ps, &x, params.Optional, "-x")
		_ = params.Bind(ps, &y, params.Optional, "-y")
		_ = params.Bind(ps, &z, params.Optional, "-z")
		if err := ps.Parse(clusterArgs); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkShortCluster_Pflag(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		fs := pflag.NewFlagSet("bench", pflag.ContinueOnError)
		fs.BoolP("xray", "x", false, "")
		fs.BoolP("yell", "y", false, "")
		fs.BoolP("zoom", "z", false, "")
		if err := fs.Parse(clusterArgs); err != nil {
			b.Fatal(err)
		}
	}
}

// Benchmark the long --name=value form against the same schema.

var longArgs = []string{"--count=10", "--interval=2.5", "dest"}

func BenchmarkLongEquals_GoParams(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		var count int
		var interval float64
		var dest string
		ps := params.New()
		_ = params.Bind(ps, &count, params.Optional, "--count")
		_ = params.Bind(ps, &interval, params.Optional, "--interval")
		_ = params.Bind(ps, &dest, params.Optional, "dest")
		if err := ps.Parse(longArgs); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkLongEquals_Pflag(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		fs := pflag.NewFlagSet("bench", pflag.ContinueOnError)
		fs.Int("count", 0, "Count")
		fs.Float64("interval", 0, "Interval")
		if err := fs.Parse(longArgs); err != nil {
			b.Fatal(err)
		}
	}
}
