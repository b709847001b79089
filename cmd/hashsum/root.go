package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"hashcore/pkg/digest"
)

// app carries the per-invocation configuration shared by all commands.
type app struct {
	cfgFile string
	v       *viper.Viper
	logger  *log.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:           "hashsum",
		Short:         "Hash, MAC and derive keys with SHA-2, SHA-3 and SHAKE",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initConfig(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.hashsum/hashsum.yaml)")
	flags.StringP("algorithm", "a", "sha2-256", "hash algorithm (see 'hashsum algorithms')")
	flags.BoolP("verbose", "v", false, "log progress to stderr")
	for _, name := range []string{"algorithm", "verbose"} {
		cobra.CheckErr(a.v.BindPFlag(name, flags.Lookup(name)))
	}

	root.AddCommand(
		a.newDigestCmd(),
		a.newXOFCmd(),
		a.newMACCmd(),
		a.newHKDFCmd(),
		a.newAlgorithmsCmd(),
	)
	return root
}

func (a *app) initConfig(cmd *cobra.Command) error {
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		home, err := homedir.Expand("~/.hashsum")
		if err != nil {
			return fmt.Errorf("locate config directory: %w", err)
		}
		a.v.AddConfigPath(home)
		a.v.SetConfigName("hashsum")
	}

	// Environment variable support
	a.v.SetEnvPrefix("hashsum")
	a.v.AutomaticEnv()
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	var notFound viper.ConfigFileNotFoundError
	if err := a.v.ReadInConfig(); err != nil && (a.cfgFile != "" || !errors.As(err, &notFound)) {
		return fmt.Errorf("read config: %w", err)
	}

	w := io.Discard
	if a.v.GetBool("verbose") {
		w = cmd.ErrOrStderr()
	}
	a.logger = log.New(w, "", log.Ltime)
	if used := a.v.ConfigFileUsed(); used != "" {
		a.logger.Printf("using config file %s", used)
	}
	return nil
}

func (a *app) algorithm() (digest.Algorithm, error) {
	return digest.ParseAlgorithm(a.v.GetString("algorithm"))
}

// hexFlag decodes a hex-encoded string flag.
func hexFlag(fs *pflag.FlagSet, name string) ([]byte, error) {
	s, err := fs.GetString(name)
	if err != nil {
		return nil, err
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("--%s: %w", name, err)
	}
	return b, nil
}

// eachInput calls fn with every named file, or with stdin when names is
// empty or a name is "-".
func eachInput(cmd *cobra.Command, names []string, fn func(name string, r io.Reader) error) error {
	if len(names) == 0 {
		names = []string{"-"}
	}
	for _, name := range names {
		if name == "-" {
			if err := fn(name, cmd.InOrStdin()); err != nil {
				return err
			}
			continue
		}
		f, err := os.Open(name)
		if err != nil {
			return err
		}
		err = fn(name, f)
		f.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}
