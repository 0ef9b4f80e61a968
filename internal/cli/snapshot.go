package cli

import (
	"fmt"

	"coriolis-view/internal/config"
	"coriolis-view/internal/logging"
	"coriolis-view/internal/snapshot"

	"github.com/spf13/cobra"
)

func newSnapshotCommand(opts *options) *cobra.Command {
	so := snapshot.Options{}

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Render a frame without a window and write the views as PNG files.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := snapshot.Run(cmd.Context(), opts.settings.Simulation, so, logging.GetLogger())
			if err != nil {
				return fmt.Errorf("snapshot: %w", err)
			}
			out := cmd.OutOrStdout()
			for _, f := range res.Files {
				fmt.Fprintln(out, f)
			}
			fmt.Fprintf(out, "t=%.3fs launches=%d resets=%d out=%d\n",
				res.Time, res.Stats.Launches, res.Stats.Resets, res.Stats.OutOfBounds)
			return nil
		},
	}

	f := cmd.Flags()
	f.IntVar(&so.Frames, "frames", 120, "number of frames to simulate")
	f.Float64Var(&so.DeltaTime, "dt", 1.0/60, "fixed frame time in seconds")
	f.IntVar(&so.LaunchAt, "launch-at", -1, "frame at which to launch, negative to never launch")
	f.IntVar(&so.Size, "size", config.ScreenHeight-config.HUDHeight, "edge of each square view in pixels")
	f.StringVarP(&so.OutDir, "out", "o", ".", "output directory")
	return cmd
}
