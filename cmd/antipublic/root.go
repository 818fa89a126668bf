package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	antipublic "github.com/lolzteam/antipublic-go"
	"github.com/lolzteam/antipublic-go/rest"
)

var (
	cfgFile string

	// Color helpers
	cyan  = color.New(color.FgCyan, color.Bold).SprintFunc()
	green = color.New(color.FgGreen).SprintFunc()
	red   = color.New(color.FgRed).SprintFunc()
	white = color.New(color.FgWhite, color.Bold).SprintFunc()

	isTTY = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "antipublic",
	Short: "Query the Antipublic credential database",
	Long: `antipublic is a command line client for the Antipublic credential database.

It checks email:password lines against known leaks, searches by email,
password, or domain, and captures any operation as a batch job descriptor.

Configuration is read from flags, ANTIPUBLIC_* environment variables, and
a config file, in that order of precedence.`,
}

func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
		viper.SetConfigName(".antipublic")
		viper.SetConfigType("toml")
	}

	viper.SetEnvPrefix("ANTIPUBLIC")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			fmt.Fprintf(os.Stderr, "Error reading config file: %v\n", err)
			os.Exit(1)
		}
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default .antipublic.toml)")
	rootCmd.PersistentFlags().String("token", "", "API token")
	rootCmd.PersistentFlags().String("base-url", antipublic.DefaultBaseURL, "service base URL")
	rootCmd.PersistentFlags().Duration("timeout", 90*time.Second, "request timeout")
	rootCmd.PersistentFlags().String("proxy", "", "proxy URL for outbound requests")
	rootCmd.PersistentFlags().Duration("delay", 0, "minimum delay between requests (0 = none)")

	for _, key := range []string{"token", "base-url", "timeout", "proxy", "delay"} {
		if err := viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(key)); err != nil {
			fmt.Fprintf(os.Stderr, "Error binding %s flag: %v\n", key, err)
			os.Exit(1)
		}
	}
}

// mustClient builds a client from the resolved configuration or exits.
func mustClient() *antipublic.Client {
	token := viper.GetString("token")
	if token == "" {
		fail(errors.New("missing API token: set --token, ANTIPUBLIC_TOKEN, or the config file"))
	}

	opts := []rest.Option{rest.WithTimeout(viper.GetDuration("timeout"))}
	if proxy := viper.GetString("proxy"); proxy != "" {
		opts = append(opts, rest.WithProxy(proxy))
	}
	if delay := viper.GetDuration("delay"); delay > 0 {
		opts = append(opts, rest.WithDelay(delay))
	}

	ap, err := antipublic.NewWithBaseURL(viper.GetString("base-url"), token, opts...)
	if err != nil {
		fail(fmt.Errorf("building client: %w", err))
	}

	return ap
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

// spin runs fn behind a spinner on interactive terminals.
func spin(suffix string, fn func() error) error {
	if !isTTY {
		return fn()
	}

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + suffix
	s.Start()
	defer s.Stop()

	return fn()
}

// readInputs gathers one value per line from args, a file, or stdin.
func readInputs(args []string, file string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	in := os.Stdin
	if file != "" {
		f, err := os.Open(file)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		in = f
	}

	var out []string
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			out = append(out, line)
		}
	}

	return out, sc.Err()
}
