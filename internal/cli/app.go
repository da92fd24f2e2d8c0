package cli

import (
	"bufio"
	"context"
	"os"
)

type App struct {
	config   *Config
	api      *apiClient
	userName string
	reader   *bufio.Reader
}

func NewApp(c *Config) (*App, error) {
	return &App{
		config: c,
		api:    newAPIClient(c.ServerBaseURL),
		reader: bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.api.token != ""
}
