package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/jrsteele09/go-photo-session/alerts"
	"github.com/jrsteele09/go-photo-session/auth"
	"github.com/jrsteele09/go-photo-session/internal/config"
	"github.com/jrsteele09/go-photo-session/server/ui"
	"github.com/jrsteele09/go-photo-session/sessions"
	"github.com/jrsteele09/go-photo-session/token"
	"github.com/jrsteele09/go-photo-session/token/filestore"
	"github.com/jrsteele09/go-photo-session/token/redisstore"
	tokenfakerepo "github.com/jrsteele09/go-photo-session/token/repofake"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const usage = `usage:
  client signup -name NAME -email EMAIL -password PASSWORD
  client login -email EMAIL -password PASSWORD
  client whoami
  client logout`

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.WarnLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		log.Err(err).Msg("client failed")
		stop()
		os.Exit(1)
	}
}

// client bundles the session service with the alerts it produces
type client struct {
	service  *sessions.Service
	notifier *alerts.Notifier
	tokens   token.Store
	closeFn  func() error
}

func run(ctx context.Context, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errors.New(usage)
	}

	cfg, err := config.New()
	if err != nil {
		return errors.Wrap(err, "config.New")
	}
	if cfg.IsDev() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	c, err := newClient(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := c.closeFn(); err != nil {
			log.Err(err).Msg("failed to close token store")
		}
	}()

	if err := c.service.Restore(ctx); err != nil {
		log.Warn().Err(err).Msg("could not restore session from stored token")
	}

	cmd, cmdArgs := args[0], args[1:]
	switch cmd {
	case "signup":
		fs := flag.NewFlagSet("signup", flag.ContinueOnError)
		name := fs.String("name", "", "display name")
		email := fs.String("email", "", "email address")
		password := fs.String("password", "", "password")
		if err := fs.Parse(cmdArgs); err != nil {
			return err
		}
		c.service.CreateAccount(ctx, *name, *email, *password)
	case "login":
		fs := flag.NewFlagSet("login", flag.ContinueOnError)
		email := fs.String("email", "", "email address")
		password := fs.String("password", "", "password")
		if err := fs.Parse(cmdArgs); err != nil {
			return err
		}
		c.service.Login(ctx, *email, *password)
	case "whoami":
	case "logout":
		if err := c.tokens.Delete(ctx); err != nil {
			return errors.Wrap(err, "delete token")
		}
		fmt.Fprintln(out, "logged out")
		return nil
	default:
		return errors.Errorf("unknown command %q\n%s", cmd, usage)
	}

	printAlerts(out, c.notifier.Alerts())
	return printState(out, c.service.Store().State())
}

func newClient(cfg config.Config) (*client, error) {
	tokens, closeFn, err := newTokenStore(cfg)
	if err != nil {
		return nil, err
	}

	api, err := auth.NewClient(cfg.GetAPIBaseURL(), auth.WithTimeout(cfg.GetRequestTimeout()))
	if err != nil {
		return nil, errors.Wrap(err, "auth.NewClient")
	}

	service, err := sessions.NewService(api, tokens, sessions.NewStore())
	if err != nil {
		return nil, errors.Wrap(err, "sessions.NewService")
	}

	notifier := alerts.NewNotifier(alerts.NewStore())
	service.OnResult(notifier.HandleResult)

	return &client{service: service, notifier: notifier, tokens: tokens, closeFn: closeFn}, nil
}

func newTokenStore(cfg config.Config) (token.Store, func() error, error) {
	noop := func() error { return nil }

	switch cfg.GetTokenStore() {
	case config.TokenStoreMemory:
		return tokenfakerepo.NewFakeTokenStore(), noop, nil
	case config.TokenStoreRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.GetRedisAddr(),
			Password: cfg.GetRedisPassword(),
			DB:       cfg.GetRedisDB(),
		})
		return redisstore.New(rdb, cfg.GetTokenKey()), rdb.Close, nil
	default:
		return filestore.New(cfg.GetTokenFile(), cfg.GetTokenKey()), noop, nil
	}
}

func printAlerts(out io.Writer, notifications []alerts.Notification) {
	for _, n := range notifications {
		fmt.Fprintln(out, ui.Colorize(string(n.Color), n.Message))
	}
}

func printState(out io.Writer, state sessions.State) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(state)
}
