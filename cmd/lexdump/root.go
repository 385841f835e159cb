package main

import (
	"fmt"
	"strings"

	"github.com/bastiangx/lingvo/internal/logger"
	"github.com/bastiangx/lingvo/pkg/dictionary"
	"github.com/bastiangx/lingvo/pkg/suggest"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	kind     string
	encoding string
	debug    bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "lexdump",
		Short: "Inspect and convert lingvo dictionaries",
		Long: `lexdump reads adjective and adverb dictionaries in any supported format
(text, gzip text, msgpack snapshot).

Examples:
  lexdump info data/adjectives.tsv
  lexdump dump data/adjectives.tsv | head
  lexdump convert data/adjectives.tsv adjectives.msgpack
  lexdump find data/adjectives.tsv прекрасный --mode similar`,
		SilenceUsage: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			logger.Setup(opts.debug)
		},
	}

	pflags := cmd.PersistentFlags()
	pflags.StringVarP(&opts.kind, "kind", "k", suggest.KindAdjective, "dictionary kind: adjective or adverb")
	pflags.StringVarP(&opts.encoding, "encoding", "e", dictionary.EncodingUTF8, "text encoding: utf-8 or windows-1251")
	pflags.BoolVarP(&opts.debug, "debug", "d", false, "enable debug logging")

	cmd.AddCommand(
		newInfoCmd(opts),
		newDumpCmd(opts),
		newConvertCmd(opts),
		newFindCmd(opts),
	)
	return cmd
}

// fields returns the record width for the selected kind.
func (o *rootOptions) fields() (int, error) {
	switch strings.ToLower(o.kind) {
	case suggest.KindAdjective:
		return 2, nil
	case suggest.KindAdverb:
		return 1, nil
	}
	return 0, fmt.Errorf("unknown kind %q", o.kind)
}

func (o *rootOptions) open(path string) (*dictionary.File, error) {
	fields, err := o.fields()
	if err != nil {
		return nil, err
	}
	return dictionary.Open(path, dictionary.Options{Fields: fields, Encoding: o.encoding})
}
