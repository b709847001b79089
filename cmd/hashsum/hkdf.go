package main

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"hashcore/pkg/hkdf"
)

func (a *app) newHKDFCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hkdf --ikm hex [--salt hex] [--info hex] [-n length]",
		Short: "Derive key material with HKDF",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.v.BindPFlag("length", cmd.Flags().Lookup("length")); err != nil {
				return err
			}
			alg, err := a.algorithm()
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			ikm, err := hexFlag(flags, "ikm")
			if err != nil {
				return err
			}
			defer clear(ikm)
			salt, err := hexFlag(flags, "salt")
			if err != nil {
				return err
			}
			info, err := hexFlag(flags, "info")
			if err != nil {
				return err
			}

			n := a.v.GetInt("length")
			if n == 0 {
				n = alg.Size()
			}
			prk, err := hkdf.Extract(alg, salt, ikm)
			if err != nil {
				return err
			}
			defer clear(prk)
			okm, err := hkdf.Expand(alg, prk, info, n)
			if err != nil {
				return err
			}
			a.logger.Printf("derived %d bytes with hkdf-%s", n, alg)

			w := cmd.OutOrStdout()
			if prkOnly, _ := flags.GetBool("prk"); prkOnly {
				_, err = fmt.Fprintln(w, hex.EncodeToString(prk))
				return err
			}
			_, err = fmt.Fprintln(w, hex.EncodeToString(okm))
			return err
		},
	}
	flags := cmd.Flags()
	flags.String("ikm", "", "hex-encoded input keying material")
	flags.String("salt", "", "hex-encoded salt (default: hash-length zero bytes)")
	flags.String("info", "", "hex-encoded context info")
	flags.IntP("length", "n", 0, "output length in bytes (default: digest length)")
	flags.Bool("prk", false, "print the extracted pseudorandom key instead of the output")
	cobra.CheckErr(cmd.MarkFlagRequired("ikm"))
	return cmd
}
