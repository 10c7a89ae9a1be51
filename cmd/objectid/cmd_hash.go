package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kbukum/objectid/objectid"
)

func newHashCmd(a *app) *cobra.Command {
	var alg string

	cmd := &cobra.Command{
		Use:   "hash <file>",
		Short: "Print the 16-byte content hash of a file as hex",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read file: %w", err)
			}

			algorithm := a.codec.Hash()
			if alg != "" {
				algorithm = objectid.HashAlgorithm(alg)
			}
			sum, err := objectid.ContentHash(algorithm, content)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(sum))
			return nil
		},
	}

	names := make([]string, 0, len(objectid.HashAlgorithms()))
	for _, h := range objectid.HashAlgorithms() {
		names = append(names, string(h))
	}
	cmd.Flags().StringVar(&alg, "alg", "", "Hash algorithm ("+strings.Join(names, ", ")+"); default from config")

	return cmd
}
