package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bastiangx/lingvo/internal/utils"
	"github.com/bastiangx/lingvo/pkg/config"
	"github.com/bastiangx/lingvo/pkg/dictionary"
	"github.com/bastiangx/lingvo/pkg/morph"
	"github.com/bastiangx/lingvo/pkg/server"
	"github.com/bastiangx/lingvo/pkg/suggest"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

func newInfoCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "info <file>",
		Short: "Show format and record count of a dictionary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := opts.open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			n := 0
			for _, err := range f.Records() {
				if err != nil {
					return err
				}
				n++
			}
			info, _ := dictionary.GetFormatInfo(f.Format())
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "path:    %s\n", f.Path())
			fmt.Fprintf(out, "format:  %s %v\n", f.Format(), info.Extensions)
			fmt.Fprintf(out, "records: %d\n", n)
			return nil
		},
	}
}

func newDumpCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "dump <file>",
		Short: "Print a dictionary as text, sorted by suffix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := load(opts, args[0])
			if err != nil {
				return err
			}
			w := bufio.NewWriter(cmd.OutOrStdout())
			for rec, err := range src.Records() {
				if err != nil {
					return err
				}
				if rec.Schema == "" {
					fmt.Fprintln(w, rec.Word)
				} else {
					fmt.Fprintf(w, "%s\t%s\n", rec.Word, rec.Schema)
				}
			}
			return w.Flush()
		},
	}
}

func newConvertCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "convert <in> <out>",
		Short: "Write a dictionary as a msgpack snapshot",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fields, err := opts.fields()
			if err != nil {
				return err
			}
			src, err := load(opts, args[0])
			if err != nil {
				return err
			}
			if err := utils.EnsureDir(filepath.Dir(args[1])); err != nil {
				return err
			}

			out, err := os.Create(args[1])
			if err != nil {
				return err
			}
			if err := dictionary.WriteSnapshot(out, fields, src); err != nil {
				out.Close()
				return err
			}
			if err := out.Close(); err != nil {
				return err
			}
			log.Debugf("Wrote snapshot to %s", args[1])
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", args[1])
			return nil
		},
	}
}

func newFindCmd(opts *rootOptions) *cobra.Command {
	var (
		mode          string
		comparability string
		limit         int
	)
	cmd := &cobra.Command{
		Use:   "find <file> <word>",
		Short: "Look a word up and print its paradigm as JSON",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			limits := config.DefaultConfig().Server
			limits.CacheSize = 0

			var (
				adjectives *morph.Adjectives
				adverbs    *morph.Adverbs
				err        error
			)
			if opts.kind == suggest.KindAdverb {
				adjectives, _ = morph.NewAdjectives(dictionary.Records(nil))
				adverbs, err = morph.LoadAdverbs(args[0], opts.encoding)
			} else {
				adjectives, err = morph.LoadAdjectives(args[0], opts.encoding)
			}
			if err != nil {
				return err
			}
			engine := server.NewEngine(adjectives, adverbs, limits)

			words, err := engine.Lookup(opts.kind, mode, args[1], comparability, limit)
			if err != nil {
				return err
			}
			if len(words) == 0 {
				return fmt.Errorf("%q not found", args[1])
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			enc.SetEscapeHTML(false)
			return enc.Encode(words)
		},
	}
	cmd.Flags().StringVarP(&mode, "mode", "m", server.ModeOne, "lookup mode: one, similar or all")
	cmd.Flags().StringVarP(&comparability, "comparability", "c", "", "comparable, incomparable or empty for any")
	cmd.Flags().IntVarP(&limit, "limit", "l", 0, "maximum results for mode all")
	return cmd
}

// load builds the dictionary for the selected kind, so records come back
// in suffix order.
func load(opts *rootOptions, path string) (dictionary.Source, error) {
	f, err := opts.open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if opts.kind == suggest.KindAdverb {
		return morph.NewAdverbs(f)
	}
	return morph.NewAdjectives(f)
}
