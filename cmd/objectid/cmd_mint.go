package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kbukum/objectid/errors"
	"github.com/kbukum/objectid/logger"
	"github.com/kbukum/objectid/objectid"
)

func newMintCmd(a *app) *cobra.Command {
	var (
		payloadHex  string
		payloadUUID string
		contentFile string
	)

	cmd := &cobra.Command{
		Use:   "mint <type>",
		Short: "Mint a new identifier",
		Long: `Mint a new identifier for a registered object type.

Mutable types get a random payload and take no flags. Immutable types need
one of --payload with 16 bytes of hex, --uuid with an existing UUID key, or
--content-file whose content hash becomes the payload.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			typeName := args[0]

			var (
				id  string
				err error
			)
			switch {
			case cmd.Flags().Changed("content-file"):
				var content []byte
				content, err = os.ReadFile(contentFile)
				if err != nil {
					return fmt.Errorf("failed to read content file: %w", err)
				}
				id, err = a.codec.MintContent(typeName, content)
			case cmd.Flags().Changed("payload"):
				var payload []byte
				payload, err = hex.DecodeString(payloadHex)
				if err != nil {
					return errors.InvalidArgument("payload is not valid hex").WithCause(err)
				}
				id, err = a.codec.Mint(typeName, payload)
			case cmd.Flags().Changed("uuid"):
				var payload []byte
				payload, err = objectid.PayloadFromUUID(payloadUUID)
				if err != nil {
					return err
				}
				id, err = a.codec.Mint(typeName, payload)
			default:
				id, err = a.codec.Mint(typeName, nil)
			}
			if err != nil {
				return err
			}

			logger.Get("cli").Debug("identifier minted", logger.Fields(logger.FieldObjectType, typeName))
			fmt.Fprintln(cmd.OutOrStdout(), id)
			return nil
		},
	}

	cmd.Flags().StringVar(&payloadHex, "payload", "", "Payload for an immutable type, 32 hex characters")
	cmd.Flags().StringVar(&payloadUUID, "uuid", "", "UUID whose 16 bytes become the payload of an immutable type")
	cmd.Flags().StringVar(&contentFile, "content-file", "", "File whose content hash becomes the payload")
	cmd.MarkFlagsMutuallyExclusive("payload", "uuid", "content-file")

	return cmd
}
