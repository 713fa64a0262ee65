package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"safecracker/internal/app"
	"sort"
	"syscall"

	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts app.Options

	root := &cobra.Command{
		Use:   "safecracker",
		Short: "Crack the safe: open boxes until three matching multipliers pay out",
		// Без подкоманды запускается игра
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.NewApp(opts).Play(cmd.Context())
		},
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&opts.EnvPath, "env", ".env", "path to .env file")
	root.PersistentFlags().StringVar(&opts.ConfigPath, "config", "config.yaml", "path to YAML game config")

	root.AddCommand(
		&cobra.Command{
			Use:   "play",
			Short: "Play one round in the terminal",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return app.NewApp(opts).Play(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "serve",
			Short: "Serve the game over HTTP",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return app.NewApp(opts).Serve(cmd.Context())
			},
		},
		newSimulateCmd(&opts),
	)
	return root
}

func newSimulateCmd(opts *app.Options) *cobra.Command {
	var rounds, wager int

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Play many rounds and report RTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			report, err := app.NewApp(*opts).Simulate(cmd.Context(), rounds, wager)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			st := report.Stats
			fmt.Fprintf(out, "rounds:          %d\n", report.Rounds)
			fmt.Fprintf(out, "wager:           %d\n", report.Wager)
			fmt.Fprintf(out, "total wagered:   %s\n", st.TotalWager)
			fmt.Fprintf(out, "total paid:      %s\n", st.TotalPayout)
			fmt.Fprintf(out, "rtp:             %s%%\n", st.RTP.StringFixed(2))
			fmt.Fprintf(out, "window rtp:      %s%%\n", st.WindowRTP.StringFixed(2))
			fmt.Fprintf(out, "average reveals: %s\n", st.AverageReveals.StringFixed(2))
			fmt.Fprintf(out, "max reveals:     %d\n", report.MaxReveals)
			fmt.Fprintf(out, "elapsed:         %s\n", report.Elapsed)

			fmt.Fprintln(out, "wins by multiplier:")
			for _, m := range sortedKeys(st.WinsByMult) {
				fmt.Fprintf(out, "  x%d: %d\n", m, st.WinsByMult[m])
			}
			fmt.Fprintln(out, "reveals to win:")
			for _, n := range sortedKeys(st.RevealHistogram) {
				fmt.Fprintf(out, "  %d: %d\n", n, st.RevealHistogram[n])
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&rounds, "rounds", 0, "number of rounds (default from config)")
	cmd.Flags().IntVar(&wager, "wager", 0, "wager per round (default from config)")
	return cmd
}

func sortedKeys(m map[int]int) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
