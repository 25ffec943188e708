package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/guess/assets"
	"github.com/robalobadob/guess/internal/config"
	"github.com/robalobadob/guess/internal/console"
	"github.com/robalobadob/guess/internal/daily"
	"github.com/robalobadob/guess/internal/game"
	"github.com/robalobadob/guess/internal/random"
	"github.com/robalobadob/guess/internal/store"
)

// flagValues mirrors config.Config for the cobra flag set.
type flagValues struct {
	configPath string
	low, high  int
	seed       int64
	daily      bool
	reveal     bool
	rounds     int
	noColor    bool
	logLevel   string
}

// newRootCmd builds the guess command reading guesses from in and
// writing the game to out.
func newRootCmd(in io.Reader, out io.Writer) *cobra.Command {
	var fv flagValues

	cmd := &cobra.Command{
		Use:   "guess",
		Short: "Guess the secret number",
		Long: `guess draws a secret number and asks for guesses on standard input
until you find it, telling you after each guess whether it was too small
or too big.

Settings are read from a YAML file (--config), then GUESS_* environment
variables (a .env file in the working directory is loaded first), then flags.

Example:
  guess --low 1 --high 1000 --rounds 3`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, fv)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg, in, out, time.Now)
		},
	}

	f := cmd.Flags()
	f.StringVar(&fv.configPath, "config", "", "path to a YAML config file")
	f.IntVar(&fv.low, "low", game.DefaultRange.Low, "lowest possible secret (inclusive)")
	f.IntVar(&fv.high, "high", game.DefaultRange.High, "highest possible secret (inclusive)")
	f.Int64Var(&fv.seed, "seed", 0, "seed for a reproducible secret (0 draws from crypto/rand)")
	f.BoolVar(&fv.daily, "daily", false, "play the secret of the day (same for everyone on a UTC date)")
	f.BoolVar(&fv.reveal, "reveal", false, "print the secret before the first guess")
	f.IntVar(&fv.rounds, "rounds", 1, "number of sessions to play")
	f.BoolVar(&fv.noColor, "no-color", false, "disable colored output")
	f.StringVar(&fv.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	return cmd
}

// resolveConfig layers changed flags over config.Load and applies the log level.
func resolveConfig(cmd *cobra.Command, fv flagValues) (config.Config, error) {
	cfg, err := config.Load(fv.configPath)
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("low") {
		cfg.Low = fv.low
	}
	if flags.Changed("high") {
		cfg.High = fv.high
	}
	if flags.Changed("seed") {
		cfg.Seed = fv.seed
	}
	if flags.Changed("daily") {
		cfg.Daily = fv.daily
	}
	if flags.Changed("reveal") {
		cfg.Reveal = fv.reveal
	}
	if flags.Changed("rounds") {
		cfg.Rounds = fv.rounds
	}
	if flags.Changed("no-color") {
		cfg.NoColor = fv.noColor
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = fv.logLevel
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	lvl, _ := cfg.Level()
	zerolog.SetGlobalLevel(lvl)
	return cfg, nil
}

// run plays cfg.Rounds sessions and prints a summary when more than one was played.
func run(ctx context.Context, cfg config.Config, in io.Reader, out io.Writer, now func() time.Time) error {
	msgs, err := loadMessages(cfg.MessagesFile)
	if err != nil {
		return err
	}

	con := console.New(in, out, msgs,
		console.WithStyles(console.NewStyles(out, !cfg.NoColor)),
		console.WithReveal(cfg.Reveal),
		console.WithClock(now),
	)
	src := newSource(cfg)
	rounds := store.NewMemoryStore()

	for i := 1; i <= cfg.Rounds; i++ {
		if cfg.Rounds > 1 {
			con.Announce(msgs.Round, i, cfg.Rounds)
		}

		var sess *game.Session
		if cfg.Daily {
			day := now()
			con.Announce(msgs.Daily, daily.DateKey(day))
			sess, err = daily.Session(day, cfg.DailySalt, cfg.Range())
		} else {
			sess, err = game.New(src, cfg.Range())
		}
		if err != nil {
			return fmt.Errorf("start round %d: %w", i, err)
		}
		log.Debug().Int("round", i).Str("range", cfg.Range().String()).Bool("daily", cfg.Daily).Msg("session started")

		res, err := con.Play(ctx, sess)
		if err != nil {
			return err
		}
		log.Info().Int("round", i).Int("attempts", res.Attempts).Dur("elapsed", res.Elapsed).Msg("session won")

		if err := rounds.Save(ctx, store.NewRoundResult(res.Secret, res.Attempts, res.Elapsed, cfg.Daily)); err != nil {
			return err
		}
	}

	if cfg.Rounds > 1 {
		return printSummary(ctx, con, msgs, rounds)
	}
	return nil
}

func printSummary(ctx context.Context, con *console.Console, msgs assets.Messages, rounds store.Store) error {
	all, err := rounds.List(ctx)
	if err != nil {
		return err
	}
	best, ok, err := rounds.Best(ctx)
	if err != nil || !ok {
		return err
	}
	total := 0
	for _, r := range all {
		total += r.Attempts
	}
	con.Announce(msgs.Summary, len(all), total, best.Attempts)
	return nil
}

func newSource(cfg config.Config) game.SecretSource {
	if cfg.Seed != 0 {
		return random.NewSeeded(cfg.Seed)
	}
	return random.NewCrypto()
}

// loadMessages returns the embedded catalogue, overlaid with path when set.
func loadMessages(path string) (assets.Messages, error) {
	msgs, err := assets.DefaultMessages()
	if err != nil {
		return assets.Messages{}, err
	}
	if path == "" {
		return msgs, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return assets.Messages{}, fmt.Errorf("%w: read messages %s: %w", config.ErrInvalid, path, err)
	}
	msgs, err = assets.ParseMessages(msgs, data)
	if err != nil {
		return assets.Messages{}, fmt.Errorf("%w: %w", config.ErrInvalid, err)
	}
	return msgs, nil
}
