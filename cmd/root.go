// Package cmd is for command line interactions with the visiogen application
package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/sanger-pathogens/visiogen/config"
	"github.com/sanger-pathogens/visiogen/internal/visiogen"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "visiogen",
	Short: `Design k-mer probes that uniquely identify a genomic region.
Targets come from a FASTA+GFF pair or from the core segments of a GFA graph`,
	Version:           "0.1.0",
	PersistentPreRun:  setUpLogging,
	SilenceUsage:      true,
	DisableAutoGenTag: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

// setUpLogging tees the run log into visiogen_<timestamp>.log next to
// the working directory, keeping warnings on the console.
func setUpLogging(cmd *cobra.Command, args []string) {
	name := fmt.Sprintf("visiogen_%s.log", time.Now().Format("01-02_15-04-05"))
	f, err := os.Create(name)
	if err != nil {
		log.Printf("failed to create run log %s: %v", name, err)
		return
	}
	visiogen.SetLogOutput(io.MultiWriter(os.Stderr, f))
}

func init() {
	config.SetDefaults()

	rootCmd.PersistentFlags().IntP("threads", "t", 0, "number of worker goroutines (0 = all available cores)")
	rootCmd.PersistentFlags().StringP("off-target-dir", "i", "", "directory containing off-target FASTA/index files")
	rootCmd.PersistentFlags().Int("max-hits", config.DefaultMaxHits, "maximum number of index shards a k-mer may hit")
	rootCmd.PersistentFlags().BoolP("recursive", "r", false, "recursively search directories for files")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log per-probe coordinates")
	rootCmd.PersistentFlags().StringP("out", "o", "", "path to write the probe report to")

	rootCmd.PersistentFlags().IntP("kmer-size", "k", config.DefaultKmerSize, "width of each probe k-mer")
	rootCmd.PersistentFlags().StringP("center-base", "b", "", "required base at the probe junction (blank = no constraint)")
	rootCmd.PersistentFlags().IntP("min-gc", "l", config.DefaultMinGC, "minimum GC percentage of each probe half")
	rootCmd.PersistentFlags().IntP("max-gc", "m", config.DefaultMaxGC, "maximum GC percentage of each probe half")
	rootCmd.PersistentFlags().Bool("allow-outside", false, "keep probes that also occur outside the target region")
	rootCmd.PersistentFlags().Bool("skip-gc", false, "skip GC filtering")
	rootCmd.PersistentFlags().IntP("probes", "n", 0, "keep only the N best-scoring probes per gene (0 = all)")

	viper.BindPFlag("threads", rootCmd.PersistentFlags().Lookup("threads"))
	viper.BindPFlag("off-target-dir", rootCmd.PersistentFlags().Lookup("off-target-dir"))
	viper.BindPFlag("max-hits", rootCmd.PersistentFlags().Lookup("max-hits"))
	viper.BindPFlag("recursive", rootCmd.PersistentFlags().Lookup("recursive"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("out", rootCmd.PersistentFlags().Lookup("out"))
	viper.BindPFlag("kmer-size", rootCmd.PersistentFlags().Lookup("kmer-size"))
	viper.BindPFlag("center-base", rootCmd.PersistentFlags().Lookup("center-base"))
	viper.BindPFlag("min-gc", rootCmd.PersistentFlags().Lookup("min-gc"))
	viper.BindPFlag("max-gc", rootCmd.PersistentFlags().Lookup("max-gc"))
	viper.BindPFlag("allow-outside", rootCmd.PersistentFlags().Lookup("allow-outside"))
	viper.BindPFlag("skip-gc", rootCmd.PersistentFlags().Lookup("skip-gc"))
	viper.BindPFlag("probes", rootCmd.PersistentFlags().Lookup("probes"))
}
