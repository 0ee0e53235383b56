// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"log"

	"github.com/spf13/viper"
)

// Default probe design settings. These match the values the tool has
// shipped with historically and can all be overridden from the command line.
const (
	// DefaultKmerSize is the probe width in bases
	DefaultKmerSize = 50

	// DefaultMinGC and DefaultMaxGC bound the GC percentage of each probe half
	DefaultMinGC = 44
	DefaultMaxGC = 72

	// DefaultMaxHits is the maximum number of off-target index shards a
	// k-mer may appear in before it counts against its probe
	DefaultMaxHits = 5
)

// KmerConfig holds the per-probe settings shared by the gff and graph commands
type KmerConfig struct {
	// width of each probe k-mer
	KmerSize int `mapstructure:"kmer-size"`

	// required base at the probe junction. Empty means no constraint
	CenterBase string `mapstructure:"center-base"`

	// inclusive GC percentage bounds applied to each half of a probe
	MinGC int `mapstructure:"min-gc"`
	MaxGC int `mapstructure:"max-gc"`

	// keep probes with locations outside the target region
	// (any-location-inside rather than all-locations-inside)
	AllowOutside bool `mapstructure:"allow-outside"`

	// skip GC filtering entirely
	SkipGC bool `mapstructure:"skip-gc"`

	// keep only the N best-scoring probes per gene. 0 keeps all
	Probes int `mapstructure:"probes"`
}

// Config is the root-level settings struct and is a mix of settings
// available from the command line and their defaults
type Config struct {
	// number of worker goroutines. 0 means all available cores
	Threads int `mapstructure:"threads"`

	// directory with off-target FASTA files and/or index shards
	OffTargetDir string `mapstructure:"off-target-dir"`

	// maximum permitted off-target shard hits per k-mer
	MaxHits int `mapstructure:"max-hits"`

	// search the off-target directory recursively
	Recursive bool `mapstructure:"recursive"`

	// log per-probe coordinates
	Verbose bool `mapstructure:"verbose"`

	// path to write the probe report to. Empty means a timestamped default
	Out string `mapstructure:"out"`

	// probe settings
	Kmers KmerConfig `mapstructure:",squash"`

	// build canonical k-mer indexes (k-mer and reverse complement
	// treated as one entry)
	Canonical bool `mapstructure:"canonical"`

	// path to a GFF3 annotation (gff command)
	Annotation string `mapstructure:"annotation"`

	// path to the target FASTA (gff command)
	Fasta string `mapstructure:"fasta"`

	// gene names to design probes against (gff command)
	Genes []string `mapstructure:"genes"`

	// path to a GFA reference graph (graph command)
	GFA string `mapstructure:"gfa"`
}

// SetDefaults registers the default value of every setting with Viper.
// Called once from /cmd before any flags are bound.
func SetDefaults() {
	viper.SetDefault("threads", 0)
	viper.SetDefault("max-hits", DefaultMaxHits)
	viper.SetDefault("kmer-size", DefaultKmerSize)
	viper.SetDefault("min-gc", DefaultMinGC)
	viper.SetDefault("max-gc", DefaultMaxGC)
	viper.SetDefault("canonical", true)
}

// New returns a new Config struct populated by Viper settings
// (defaults and/or command line arguments)
func New() Config {
	var c Config

	if err := viper.Unmarshal(&c); err != nil {
		log.Fatalf("unable to decode settings into struct, %v", err)
	}

	return c
}
