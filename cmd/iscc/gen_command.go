package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"isccgen/internal/identify"
)

func newGenCommand(ctx *commandContext) *cobra.Command {
	var req identify.Request

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate the ISCC code for a single file",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := ctx.ensureRuntime(cmd)
			if err != nil {
				return err
			}
			code, err := rt.pipeline.Generate(commandCtx(cmd), req)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), code.String())
			return nil
		},
	}

	cmd.Flags().StringVarP(&req.Path, "file", "f", "", "File to generate the code for")
	cmd.Flags().StringVarP(&req.Title, "title", "t", "", "Title of the work")
	cmd.Flags().StringVarP(&req.Extra, "extra", "e", "", "Extra metadata")
	cmd.Flags().BoolVarP(&req.Guess, "guess", "g", false, "Guess title and extra from the file content")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
