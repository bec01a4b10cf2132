package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/knitlab/knitgraph/knit"
)

var (
	exportInput  string
	exportOutput string
)

func init() {
	exportCmd.Flags().StringVar(&exportInput, "input", "data/knit.json", "Path to the knit metadata file")
	exportCmd.Flags().StringVar(&exportOutput, "output", "nodes_edges.json", "Path to write the assembled graph")
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the assembled graph as JSON",
	Long:  "Read the knit metadata file, assemble the provider/consumer graph, and write it to a file",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(exportInput)
		if err != nil {
			return fmt.Errorf("read metadata: %w", err)
		}

		classes, err := knit.DecodeClasses(data)
		if err != nil {
			return fmt.Errorf("decode metadata: %w", err)
		}

		graph := knit.Assemble(classes)

		out, err := json.MarshalIndent(graph, "", "  ")
		if err != nil {
			return fmt.Errorf("encode graph: %w", err)
		}
		if err := os.WriteFile(exportOutput, out, 0o644); err != nil {
			return fmt.Errorf("write graph: %w", err)
		}

		successColor := color.New(color.FgGreen, color.Bold)
		successColor.Printf("Wrote %d nodes and %d edges to %s\n",
			len(graph.Nodes), len(graph.Edges), exportOutput)
		return nil
	},
}
