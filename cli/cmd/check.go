package cmd

import (
	"fmt"

	"github.com/labstack/gommon/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/soniclang/sonic"
	"github.com/soniclang/sonic/soniclexer"
)

var (
	checkCmd = &cobra.Command{
		Use:   "check [files...]",
		Short: "Lex Sonic source files and report the first lexical error in each",
		Long:  "Lex the given Sonic source files and report the first lexical error in each. With no arguments, checks the files matched by the include globs in sonic.yaml.",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logrus.StandardLogger()
			if verbose {
				logger.SetLevel(logrus.DebugLevel)
			}

			files, err := resolveFiles(args)
			if err != nil {
				return err
			}
			if noColor {
				color.Disable()
			}

			docs, err := sonic.LexAll(files, logger)
			ok := 0
			for _, d := range docs {
				if !d.HasError() {
					ok++
					continue
				}
				p := soniclexer.PositionOf(d.Source, d.Err.Pos)
				fmt.Printf("%s %s\n",
					color.Bold(fmt.Sprintf("%s:%d:%d:", d.File, p.Line, p.Col)),
					color.Red(d.Err.Kind.Message()))
				if near := soniclexer.NearContext(d.Source, d.Err.Pos); near != "" {
					fmt.Printf("  near: %s\n", color.Yellow(near))
				}
			}
			logger.WithField("ok", ok).WithField("failed", len(docs)-ok).Info("checked")
			return err
		},
	}
)

func init() {
	rootCmd.AddCommand(checkCmd)
}
