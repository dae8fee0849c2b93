package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/kytnacode/jrpcdec/bench"
)

func newGenCommand() *cobra.Command {
	var (
		fields int
		output string
	)

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Write a generated corpus",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if output == "" {
				return bench.GenerateCorpus(cmd.OutOrStdout(), fields)
			}

			f, err := os.Create(output)
			if err != nil {
				return errors.Wrap(err, "create output")
			}

			if err := bench.GenerateCorpus(f, fields); err != nil {
				f.Close()
				return err
			}

			return errors.Wrap(f.Close(), "close output")
		},
	}

	cmd.Flags().IntVar(&fields, "fields", bench.DefaultGenerateFields, "unknown members in the corpus")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file, standard output when empty")

	return cmd
}
