package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/repr"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/soniclang/sonic"
)

var lexFormat string

type tokenJSON struct {
	Type    string `json:"type"`
	Content string `json:"content"`
	Start   int    `json:"start"`
}

var (
	lexCmd = &cobra.Command{
		Use:   "lex [files...]",
		Short: "Dump the token stream of Sonic source files to stdout",
		Long:  "Dump the token stream of the given Sonic source files to stdout. With no arguments, reads source from stdin.",
		RunE: func(cmd *cobra.Command, args []string) error {
			var docs []*sonic.Document
			if len(args) == 0 {
				b, err := io.ReadAll(os.Stdin)
				if err != nil {
					return errors.Wrap(err, "reading stdin")
				}
				docs = append(docs, sonic.LexString("<stdin>", string(b)))
			} else {
				for _, p := range args {
					d, err := sonic.LexFile(p)
					if err != nil {
						return err
					}
					docs = append(docs, d)
				}
			}

			var failed sonic.LexErrors
			for _, d := range docs {
				if err := dumpTokens(d); err != nil {
					return err
				}
				if d.HasError() {
					fmt.Fprintln(os.Stderr, d.DocumentError().Diagnostic())
					failed.Errors = append(failed.Errors, *d.DocumentError())
				}
			}
			if len(failed.Errors) > 0 {
				return failed
			}
			return nil
		},
	}
)

func dumpTokens(d *sonic.Document) error {
	switch lexFormat {
	case "text":
		for _, t := range d.Tokens {
			fmt.Printf("%6d  %-32s %q\n", t.Start, t.Describe(), t.Content)
		}
		return nil
	case "json":
		out := make([]tokenJSON, 0, len(d.Tokens))
		for _, t := range d.Tokens {
			out = append(out, tokenJSON{Type: t.Describe(), Content: t.Content, Start: t.Start})
		}
		b, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(b))
		return nil
	case "repr":
		repr.Println(d.Tokens)
		return nil
	default:
		return errors.Errorf("unknown format %q, expected text, json or repr", lexFormat)
	}
}

func init() {
	lexCmd.Flags().StringVar(&lexFormat, "format", "text", "output format: text, json or repr")
	rootCmd.AddCommand(lexCmd)
}
