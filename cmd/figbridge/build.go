package main

import (
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"

	"github.com/phanxgames/figbridge"
)

var buildJSON bool

var buildCmd = &cobra.Command{
	Use:   "build FILE",
	Short: "Build the scene tree for a cached file response",
	Long: `Builds the scene tree for FILE and prints it as an indented outline,
followed by the diagnostics the build reported.`,
	Args: cobra.ExactArgs(1),
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().BoolVar(&buildJSON, "json", false, "print a JSON summary instead of the tree")
	rootCmd.AddCommand(buildCmd)
}

// buildSummary is the --json output of the build command.
type buildSummary struct {
	ID          string              `json:"id"`
	File        string              `json:"file"`
	Nodes       int                 `json:"nodes"`
	Frames      []string            `json:"frames"`
	Active      string              `json:"active,omitempty"`
	Diagnostics []diagnosticSummary `json:"diagnostics"`
}

type diagnosticSummary struct {
	Kind    string `json:"kind"`
	Node    string `json:"node,omitempty"`
	Key     string `json:"key,omitempty"`
	Message string `json:"message"`
}

func runBuild(cmd *cobra.Command, args []string) error {
	p, err := newPipeline(cmd, args[0])
	if err != nil {
		return err
	}
	res, err := p.build()
	if err != nil {
		return fmt.Errorf("build failed: %w", err)
	}

	if buildJSON {
		return outputBuildJSON(cmd, p, res)
	}

	out := cmd.OutOrStdout()
	if err := figbridge.Dump(out, p.scene.Root()); err != nil {
		return err
	}
	cmd.Println()
	cmd.Printf("%d nodes, %d frames, %d diagnostics\n", res.Nodes, res.Frames.Len(), len(res.Diagnostics))
	for _, d := range res.Diagnostics {
		cmd.Printf("  %s\n", d)
	}
	return nil
}

func outputBuildJSON(cmd *cobra.Command, p *pipeline, res *figbridge.BuildResult) error {
	s := buildSummary{
		ID:          res.ID,
		File:        p.file.Name,
		Nodes:       res.Nodes,
		Frames:      res.Frames.Names(),
		Diagnostics: make([]diagnosticSummary, 0, len(res.Diagnostics)),
	}
	if a := res.Frames.Active(); a != nil {
		s.Active = a.Source.Name
	}
	for _, d := range res.Diagnostics {
		s.Diagnostics = append(s.Diagnostics, diagnosticSummary{
			Kind:    d.Kind.String(),
			Node:    d.NodeName,
			Key:     d.Key,
			Message: d.Message,
		})
	}
	data, err := sonic.ConfigStd.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
