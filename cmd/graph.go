package cmd

import (
	"log"

	"github.com/sanger-pathogens/visiogen/config"
	"github.com/sanger-pathogens/visiogen/internal/visiogen"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// graphCmd designs probes against the core segments of a variation graph
var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Design probes for the core segments of a GFA reference graph",
	Long: `
Identify the segments of a GFA variation graph that are consistently
present across haplotypes and design probes from them. When the graph
carries explicit P paths, a segment is core when it occurs exactly once
in every path; otherwise the graph's main spine is walked and bubble
regions are excluded.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := visiogen.DesignFromGraph(config.New()); err != nil {
			log.Fatalf("%v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)

	graphCmd.Flags().StringP("gfa", "g", "", "path to the reference graph GFA")
	graphCmd.MarkFlagRequired("gfa")

	viper.BindPFlag("gfa", graphCmd.Flags().Lookup("gfa"))
}
