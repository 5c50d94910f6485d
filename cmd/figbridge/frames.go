package main

import (
	"github.com/spf13/cobra"

	"github.com/phanxgames/figbridge"
	"github.com/phanxgames/figbridge/config"
	"github.com/phanxgames/figbridge/figmafile"
)

var framesCmd = &cobra.Command{
	Use:   "frames FILE",
	Short: "List the top-level frames of a cached file response",
	Args:  cobra.ExactArgs(1),
	RunE:  runFrames,
}

func init() {
	rootCmd.AddCommand(framesCmd)
}

func runFrames(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	file, err := figmafile.Load(args[0])
	if err != nil {
		return err
	}

	frames := file.TopLevelFrames()
	if len(frames) == 0 {
		cmd.Println("No frames found.")
		return nil
	}
	want := figbridge.Vec2{X: cfg.Frames.Width, Y: cfg.Frames.Height}
	for _, f := range frames {
		size := f.Size()
		status := "ok"
		if !size.Near(want, cfg.Frames.SizeTolerance) {
			status = "size mismatch"
		}
		cmd.Printf("%-24s %gx%g  %s\n", f.Name, size.X, size.Y, status)
	}
	return nil
}
