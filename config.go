package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	bind           string
	catchmindCount int
	content        string
	contentTTL     time.Duration
	port           int
	prefix         string
	profile        bool
	roster         string
	timerSeconds   int
	tlsCert        string
	tlsKey         string
	verbose        bool
	version        bool
}

func (c *Config) validate() error {
	if (c.tlsCert == "") != (c.tlsKey == "") {
		return errors.New("both --tls-cert and --tls-key must be provided together")
	}
	if c.port < 1 || c.port > 65535 {
		return fmt.Errorf("invalid port (must be between 1-65535 inclusive): %d", c.port)
	}
	if c.timerSeconds < 1 {
		return fmt.Errorf("invalid timer length: %d", c.timerSeconds)
	}
	if c.catchmindCount < 1 || c.catchmindCount > 50 {
		return fmt.Errorf("invalid catchmind count (must be between 1-50 inclusive): %d", c.catchmindCount)
	}
	return nil
}

func (c *Config) scheme() string {
	if c.tlsCert != "" && c.tlsKey != "" {
		return "https"
	}
	return "http"
}

func newCmd(cfg *Config) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("SPEEDQUIZ")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:           "speed-quiz",
		Short:         "A single-screen party-game host: speed quiz, picture quiz, photo hints, song quiz, and O/X quiz.",
		Args:          cobra.ExactArgs(0),
		SilenceErrors: true,
		Version:       releaseVersion,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.validate(); err != nil {
				return err
			}
			return ServePage(cmd.Context(), cfg)
		},
	}

	fs := cmd.Flags()

	fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	fs.StringVarP(&cfg.bind, "bind", "b", "0.0.0.0", "address to bind to (env: SPEEDQUIZ_BIND)")
	fs.IntVar(&cfg.catchmindCount, "catchmind-count", 10, "default picture-quiz question count (env: SPEEDQUIZ_CATCHMIND_COUNT)")
	fs.StringVarP(&cfg.content, "content", "c", ".", "directory holding questions/, catchmind/, pictures/, songs/ (env: SPEEDQUIZ_CONTENT)")
	fs.DurationVar(&cfg.contentTTL, "content-ttl", 5*time.Minute, "how long loaded content is cached (env: SPEEDQUIZ_CONTENT_TTL)")
	fs.IntVarP(&cfg.port, "port", "p", 8080, "port to listen on (env: SPEEDQUIZ_PORT)")
	fs.StringVar(&cfg.prefix, "prefix", "", "path to prepend to all URLs, for use behind reverse proxy (env: SPEEDQUIZ_PREFIX)")
	fs.BoolVar(&cfg.profile, "profile", false, "register net/http/pprof handlers (env: SPEEDQUIZ_PROFILE)")
	fs.StringVarP(&cfg.roster, "roster", "r", "roster.yaml", "path to the participant roster file (env: SPEEDQUIZ_ROSTER)")
	fs.IntVarP(&cfg.timerSeconds, "timer", "t", 60, "default speed-quiz round length in seconds (env: SPEEDQUIZ_TIMER)")
	fs.StringVar(&cfg.tlsCert, "tls-cert", "", "path to tls certificate (env: SPEEDQUIZ_TLS_CERT)")
	fs.StringVar(&cfg.tlsKey, "tls-key", "", "path to tls keyfile (env: SPEEDQUIZ_TLS_KEY)")
	fs.BoolVarP(&cfg.verbose, "verbose", "v", false, "display additional output (env: SPEEDQUIZ_VERBOSE)")
	fs.BoolVarP(&cfg.version, "version", "V", false, "display version and exit (env: SPEEDQUIZ_VERSION)")

	fs.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
		_ = v.BindEnv(f.Name)
		if !f.Changed && v.IsSet(f.Name) {
			_ = fs.Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name)))
		}
	})

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})
	cmd.SetVersionTemplate("speed-quiz v{{.Version}}\n")

	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	return cmd
}
