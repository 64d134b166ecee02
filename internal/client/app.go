// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"

	"github.com/MKhiriev/go-auth-keeper/internal/adapter"
	"github.com/MKhiriev/go-auth-keeper/internal/config"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/models"
)

const usage = `usage: go-auth-client <command> [flags]

commands:
  register -username NAME -email EMAIL -password PASSWORD
  login    -email EMAIL -password PASSWORD
  me       [-token TOKEN]
`

// App is the command-line client. It holds one [adapter.AuthClient] and
// writes command results to out.
type App struct {
	auth adapter.AuthClient
	out  io.Writer

	logger *logger.Logger
}

// NewApp builds an App talking to cfg.ServerAddress. A token from cfg is
// preloaded so that "me" works without logging in first.
func NewApp(cfg *config.ClientConfig, out io.Writer, logger *logger.Logger) (*App, error) {
	auth, err := adapter.NewAuthClient(cfg.ServerAddress, cfg.RequestTimeout, logger)
	if err != nil {
		return nil, fmt.Errorf("create auth client: %w", err)
	}
	if cfg.Token != "" {
		auth.SetToken(cfg.Token)
	}

	return newApp(auth, out, logger), nil
}

func newApp(auth adapter.AuthClient, out io.Writer, logger *logger.Logger) *App {
	return &App{auth: auth, out: out, logger: logger}
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(a.out, usage)
		return ErrNoCommand
	}

	switch args[0] {
	case "register":
		return a.register(ctx, args[1:])
	case "login":
		return a.login(ctx, args[1:])
	case "me":
		return a.me(ctx, args[1:])
	case "help", "-h", "-help", "--help":
		fmt.Fprint(a.out, usage)
		return nil
	default:
		fmt.Fprint(a.out, usage)
		return fmt.Errorf("%w: %q", ErrUnknownCommand, args[0])
	}
}

func (a *App) register(ctx context.Context, args []string) error {
	var request models.RegisterRequest

	fs := newFlagSet("register", a.out)
	fs.StringVar(&request.Username, "username", "", "username")
	fs.StringVar(&request.Email, "email", "", "email address")
	fs.StringVar(&request.Password, "password", "", "password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	response, err := a.auth.Register(ctx, request)
	if err != nil {
		return fmt.Errorf("register: %w", err)
	}

	a.logger.Debug().Str("user_id", response.User.ID).Msg("registered")
	return a.print(response)
}

func (a *App) login(ctx context.Context, args []string) error {
	var request models.LoginRequest

	fs := newFlagSet("login", a.out)
	fs.StringVar(&request.Email, "email", "", "email address")
	fs.StringVar(&request.Password, "password", "", "password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	response, err := a.auth.Login(ctx, request)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}

	a.logger.Debug().Str("user_id", response.User.ID).Msg("logged in")
	return a.print(response)
}

func (a *App) me(ctx context.Context, args []string) error {
	var token string

	fs := newFlagSet("me", a.out)
	fs.StringVar(&token, "token", "", "bearer token (defaults to CLIENT_TOKEN)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if token != "" {
		a.auth.SetToken(token)
	}

	user, err := a.auth.Me(ctx)
	if err != nil {
		return fmt.Errorf("me: %w", err)
	}

	return a.print(user)
}

func (a *App) print(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func newFlagSet(name string, out io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(out)
	return fs
}
