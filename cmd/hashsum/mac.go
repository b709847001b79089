package main

import (
	"encoding/hex"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"hashcore/pkg/hmac"
)

func (a *app) newMACCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mac --key hex [files...]",
		Short: "Print the HMAC of each file, or of stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			alg, err := a.algorithm()
			if err != nil {
				return err
			}
			key, err := hexFlag(cmd.Flags(), "key")
			if err != nil {
				return err
			}
			defer clear(key)

			m, err := hmac.New(alg, key)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			return eachInput(cmd, args, func(name string, r io.Reader) error {
				m.Reset()
				n, err := io.Copy(m, r)
				if err != nil {
					return err
				}
				tag, err := m.Tag()
				if err != nil {
					return err
				}
				a.logger.Printf("%s: authenticated %d bytes with hmac-%s", name, n, alg)
				_, err = fmt.Fprintf(w, "%s  %s\n", hex.EncodeToString(tag), name)
				return err
			})
		},
	}
	cmd.Flags().String("key", "", "hex-encoded key")
	cobra.CheckErr(cmd.MarkFlagRequired("key"))
	return cmd
}
