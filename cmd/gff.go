package cmd

import (
	"log"

	"github.com/sanger-pathogens/visiogen/config"
	"github.com/sanger-pathogens/visiogen/internal/visiogen"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// gffCmd designs probes against genes named in a GFF3 annotation
var gffCmd = &cobra.Command{
	Use:   "gff",
	Short: "Design probes for genes in a FASTA + GFF3 annotation pair",
	Long: `
Tile the target FASTA into k-mers and design probes for each named gene.
Gene coordinates and strand come from the GFF3 annotation; probes are
restricted to the gene's region, filtered on GC content and junction
base, and optionally screened against off-target indexes built with
"visiogen build".`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := visiogen.DesignFromGFF(config.New()); err != nil {
			log.Fatalf("%v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(gffCmd)

	gffCmd.Flags().StringP("annotation", "a", "", "path to the GFF3 annotation")
	gffCmd.Flags().StringP("fasta", "f", "", "path to the target FASTA")
	gffCmd.Flags().StringSliceP("genes", "g", nil, "comma-separated list of gene names")

	gffCmd.MarkFlagRequired("annotation")
	gffCmd.MarkFlagRequired("fasta")
	gffCmd.MarkFlagRequired("genes")

	viper.BindPFlag("annotation", gffCmd.Flags().Lookup("annotation"))
	viper.BindPFlag("fasta", gffCmd.Flags().Lookup("fasta"))
	viper.BindPFlag("genes", gffCmd.Flags().Lookup("genes"))
}
