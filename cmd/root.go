// Package cmd is for command line interactions with the oeis library
package cmd

import (
	"log"
	"os"
	"time"

	"github.com/jjtimmons/goeis/config"
	"github.com/jjtimmons/goeis/oeis"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// stderr is for logging to Stderr (without an annoying timestamp)
	stderr = log.New(os.Stderr, "", 0)
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use: "oeis",
	Short: `Look up integer sequences in the On-Line Encyclopedia of Integer Sequences.
Fetch a sequence by its A-number, query its terms, or search by terms`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		stderr.Fatalf("%v", err)
	}
}

// set flags
func init() {
	RootCmd.PersistentFlags().String("base-url", config.DefaultBaseURL, "root URL of the OEIS server")
	RootCmd.PersistentFlags().Duration("timeout", 30*time.Second, "limit on each request, 0 for none")
	RootCmd.PersistentFlags().Bool("verbose", false, "log each request to stderr")

	// Bind the parameters to viper
	viper.BindPFlag("base-url", RootCmd.PersistentFlags().Lookup("base-url"))
	viper.BindPFlag("timeout", RootCmd.PersistentFlags().Lookup("timeout"))
	viper.BindPFlag("verbose", RootCmd.PersistentFlags().Lookup("verbose"))
}

// newClient makes a client from the settings in viper
func newClient() *oeis.Client {
	c := oeis.NewClient(config.New())
	c.Logger = stderr
	return c
}

// fetch looks up the sequence with the A-number in arg, and its b-file if full is set
func fetch(cmd *cobra.Command, arg string, full bool) (*oeis.Sequence, error) {
	id, err := oeis.ParseID(arg)
	if err != nil {
		return nil, err
	}

	s, err := oeis.Fetch(cmd.Context(), newClient(), id)
	if err != nil {
		return nil, err
	}

	if full {
		if err := s.ReplaceWithFull(cmd.Context()); err != nil {
			return nil, err
		}
	}
	return s, nil
}
