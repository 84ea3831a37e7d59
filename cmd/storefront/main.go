package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/samgau/atelier-storefront/internal/api"
	"github.com/samgau/atelier-storefront/internal/auth"
	"github.com/samgau/atelier-storefront/internal/catalog"
	"github.com/samgau/atelier-storefront/internal/orders"
	"github.com/samgau/atelier-storefront/internal/stats"
	"github.com/samgau/atelier-storefront/pkg/config"
	pkgerrors "github.com/samgau/atelier-storefront/pkg/errors"
	"github.com/samgau/atelier-storefront/pkg/logger"
)

const usage = `usage: storefront <command>

commands:
  me          print the current session identity
  products    list the catalog page as JSON
  my-orders   list the signed-in account's orders
  stats       print the admin dashboard overview

Set ATELIER_ACCOUNT_EMAIL and ATELIER_ACCOUNT_PASSWORD to sign in
before the command runs.`

func main() {
	ctx := context.Background()
	logg := logger.New(logger.Options{ServiceName: "storefront"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(ctx, ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(ctx, "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "storefront",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
	command := os.Args[1]

	transport, err := api.New(api.Params{
		BaseURL: cfg.API.BaseURL,
		Timeout: cfg.API.Timeout,
		Logger:  logg,
	})
	if err != nil {
		logg.Error(ctx, "failed to build api client", err)
		os.Exit(1)
	}

	authClient, err := auth.NewClient(transport)
	if err != nil {
		logg.Error(ctx, "failed to build auth client", err)
		os.Exit(1)
	}
	session, err := auth.NewStore(authClient, logg)
	if err != nil {
		logg.Error(ctx, "failed to build session store", err)
		os.Exit(1)
	}

	if cfg.Account.Email != "" {
		creds := auth.Credentials{Email: cfg.Account.Email, Password: cfg.Account.Password}
		if err := session.Login(ctx, creds); err != nil {
			logg.Error(ctx, "sign in failed", err)
			os.Exit(1)
		}
	} else {
		session.Refresh(ctx)
	}
	if identity, ok := session.Current(); ok {
		ctx = logg.WithUserID(ctx, identity.ID)
	}

	switch command {
	case "me":
		err = runMe(ctx, session)
	case "products":
		err = runProducts(ctx, cfg, transport, logg)
	case "my-orders":
		err = runMyOrders(ctx, transport)
	case "stats":
		err = runStats(ctx, cfg, transport, session, logg)
	default:
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
	if err != nil {
		logg.Error(ctx, "command failed", err)
		os.Exit(1)
	}
}

func runMe(ctx context.Context, session *auth.Store) error {
	identity, ok := session.Current()
	if !ok {
		fmt.Println("not signed in")
		return nil
	}
	return printJSON(identity)
}

func runProducts(ctx context.Context, cfg *config.Config, transport *api.Client, logg *logger.Logger) error {
	client, err := catalog.NewClient(transport, cfg.Catalog.PageLimit)
	if err != nil {
		return err
	}
	query, err := catalog.NewQuery(catalog.QueryParams{
		Products:   client,
		Categories: client,
		Logger:     logg,
	})
	if err != nil {
		return err
	}
	view, err := query.Load(ctx, catalog.Filter{})
	if err != nil {
		return err
	}
	return printJSON(view.Visible())
}

func runMyOrders(ctx context.Context, transport *api.Client) error {
	client, err := orders.NewClient(transport)
	if err != nil {
		return err
	}
	mine, err := client.My(ctx, orders.ListParams{})
	if err != nil {
		return err
	}
	return printJSON(mine)
}

func runStats(ctx context.Context, cfg *config.Config, transport *api.Client, session *auth.Store, logg *logger.Logger) error {
	identity, ok := session.Current()
	if !ok || !identity.IsAdmin() {
		return pkgerrors.New(pkgerrors.CodeForbidden, "stats require an admin session")
	}

	client, err := stats.New(stats.Params{
		Transport: transport,
		Logger:    logg,
		TopLimit:  cfg.Catalog.TopProductsLimit,
	})
	if err != nil {
		return err
	}
	overview, err := client.Overview(ctx)
	if err != nil {
		return err
	}
	monthly, err := client.RevenueByMonth(ctx)
	if err != nil {
		return err
	}
	return printJSON(struct {
		Summary  stats.Summary  `json:"summary"`
		Overview stats.Overview `json:"overview"`
	}{
		Summary:  stats.Summarize(monthly),
		Overview: overview,
	})
}

func printJSON(v any) error {
	encoded, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(encoded))
	return nil
}
