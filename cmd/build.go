package cmd

import (
	"log"

	"github.com/sanger-pathogens/visiogen/config"
	"github.com/sanger-pathogens/visiogen/internal/visiogen"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// buildCmd builds one off-target index shard per FASTA file
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build off-target k-mer indexes from a directory of FASTA files",
	Long: `
Build one exact-membership k-mer index per FASTA file in the off-target
directory. Each index is written next to its source and is later loaded
by the gff and graph commands to screen candidate probes. Canonical
indexes treat a k-mer and its reverse complement as one entry.`,
	Run: func(cmd *cobra.Command, args []string) {
		c := config.New()

		// this directory is optional elsewhere, required here
		if err := visiogen.RequireDir(c.OffTargetDir, "the build command"); err != nil {
			cmd.Help()
			log.Fatalf("%v", err)
		}

		pool := visiogen.NewPool(c.Threads)
		if err := visiogen.BuildIndexes(pool, c.OffTargetDir, c.Kmers.KmerSize, c.Canonical, c.Recursive); err != nil {
			log.Fatalf("%v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)

	buildCmd.Flags().BoolP("canonical", "c", true, "index canonical k-mers")

	viper.BindPFlag("canonical", buildCmd.Flags().Lookup("canonical"))
}
