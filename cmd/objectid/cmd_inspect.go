package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newTypeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "type <id>",
		Short: "Print the object type of an identifier",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := a.codec.TypeOf(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), name)
			return nil
		},
	}
}

// inspection is the JSON printed by the inspect command.
type inspection struct {
	ID      string `json:"id"`
	Version int    `json:"version"`
	Type    string `json:"type"`
	Tag     int    `json:"tag"`
	Mutable bool   `json:"mutable"`
	Payload string `json:"payload"`
	UUID    string `json:"payload_uuid"`
}

func newInspectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <id>",
		Short: "Decode an identifier and print its fields as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := a.codec.Parse(args[0])
			if err != nil {
				return err
			}
			def, _ := a.codec.Describe(id)

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(inspection{
				ID:      id.String(),
				Version: int(id.Version()),
				Type:    def.Name,
				Tag:     int(id.Type()),
				Mutable: def.Mutable,
				Payload: id.PayloadHex(),
				UUID:    id.PayloadUUID(),
			})
		},
	}
}
