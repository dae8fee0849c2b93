package main

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kytnacode/jrpcdec"
	"github.com/kytnacode/jrpcdec/bench"
	"github.com/kytnacode/jrpcdec/group"
)

const envPrefix = "KEYBENCH"

// defaultStrategies groups every strategy keybench knows about. "key" and "cow" name the enum and
// string matching decoders.
func defaultStrategies() *group.Group {
	var g group.Group

	g.AddStrategy("key", jrpcdec.DecodeEnum)
	g.AddStrategy("cow", jrpcdec.DecodeStr)

	g.Use("baseline", func(g *group.Group) {
		g.AddStrategy("jsoniter", bench.DecodeJSONIter)
	})

	return &g
}

// newRegistry registers the default strategies.
func newRegistry() (*bench.Registry, error) {
	r := bench.NewRegistry()

	if errs := defaultStrategies().RegisterTo(r); len(errs) > 0 {
		return nil, errors.Wrapf(errs[0], "register strategies (%d errors)", len(errs))
	}

	return r, nil
}

func newViper() *viper.Viper {
	v := viper.New()

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	bench.SetDefaults(v)

	return v
}

func newRootCommand() *cobra.Command {
	var (
		logLevel   string
		configFile string
	)

	v := newViper()

	cmd := &cobra.Command{
		Use:           "keybench",
		Short:         "Compare key matching strategies for decoding JSON-RPC 2.0 responses",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			level, err := logrus.ParseLevel(logLevel)
			if err != nil {
				return errors.Wrap(err, "log level")
			}

			logrus.SetLevel(level)

			if configFile == "" {
				return nil
			}

			v.SetConfigFile(configFile)

			if err := v.ReadInConfig(); err != nil {
				return errors.Wrapf(err, "read config %s", configFile)
			}

			logrus.WithField("file", v.ConfigFileUsed()).Debug("config loaded")

			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&logLevel, "log-level", logrus.InfoLevel.String(), "log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&configFile, "config", "", "YAML config file")

	cmd.AddCommand(newRunCommand(v), newGenCommand(), newStrategiesCommand())

	return cmd
}
