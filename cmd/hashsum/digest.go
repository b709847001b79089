package main

import (
	"encoding/hex"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"hashcore/pkg/digest"
)

func (a *app) newDigestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "digest [files...]",
		Short: "Print the digest of each file, or of stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			alg, err := a.algorithm()
			if err != nil {
				return err
			}
			if alg.Extendable() {
				return fmt.Errorf("%s: use 'hashsum xof': %w", alg, digest.ErrNotExtendable)
			}
			return a.hashInputs(cmd, args, alg, func(s *digest.State) ([]byte, error) {
				out := make([]byte, alg.Size())
				return out, s.Digest(out)
			})
		},
	}
}

func (a *app) newXOFCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "xof [files...]",
		Short: "Print SHAKE output of the requested length for each file, or for stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.v.BindPFlag("length", cmd.Flags().Lookup("length")); err != nil {
				return err
			}
			alg, err := a.algorithm()
			if err != nil {
				return err
			}
			if !alg.Extendable() {
				return fmt.Errorf("%s: %w", alg, digest.ErrNotExtendable)
			}
			n := a.v.GetInt("length")
			if n == 0 {
				n = alg.DefaultSize()
			}
			if n < 0 {
				return fmt.Errorf("length %d: %w", n, digest.ErrInvalidParameter)
			}
			return a.hashInputs(cmd, args, alg, func(s *digest.State) ([]byte, error) {
				out := make([]byte, n)
				return out, s.Squeeze(out)
			})
		},
	}
	cmd.Flags().IntP("length", "n", 0, "output length in bytes (default: algorithm's security-matched length)")
	return cmd
}

// hashInputs streams every input through a fresh state and prints
// "<hex>  <name>" lines.
func (a *app) hashInputs(cmd *cobra.Command, names []string, alg digest.Algorithm, final func(*digest.State) ([]byte, error)) error {
	s, err := digest.New(alg)
	if err != nil {
		return err
	}
	defer s.Free()

	w := cmd.OutOrStdout()
	return eachInput(cmd, names, func(name string, r io.Reader) error {
		s.Reset()
		n, err := io.Copy(s, r)
		if err != nil {
			return err
		}
		sum, err := final(s)
		if err != nil {
			return err
		}
		a.logger.Printf("%s: hashed %d bytes with %s", name, n, alg)
		_, err = fmt.Fprintf(w, "%s  %s\n", hex.EncodeToString(sum), name)
		return err
	})
}
