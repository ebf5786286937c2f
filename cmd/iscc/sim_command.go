package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"isccgen/internal/iscc/digest"
)

func newSimCommand() *cobra.Command {
	var a, b string

	cmd := &cobra.Command{
		Use:         "sim",
		Short:       "Estimate the similarity of two ISCC components",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			similarity, err := digest.Similarity(a, b)
			if err != nil {
				return fmt.Errorf("compare components: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Estimated Similarity: %.2f %%\n", similarity)
			return nil
		},
	}

	cmd.Flags().StringVarP(&a, "a", "a", "", "First component")
	cmd.Flags().StringVarP(&b, "b", "b", "", "Second component")
	_ = cmd.MarkFlagRequired("a")
	_ = cmd.MarkFlagRequired("b")
	return cmd
}
