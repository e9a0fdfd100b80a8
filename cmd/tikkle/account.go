package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/KirkDiggler/tikkle/internal/models"
	"github.com/urfave/cli/v2"
)

func (a *app) me(c *cli.Context) error {
	account, err := a.client.Me(c.Context)
	if err != nil {
		return err
	}

	return a.render(account, func(w *tabwriter.Writer) {
		if !account.Authenticated || account.Attributes == nil {
			row(w, "signed out")
			return
		}
		row(w, "NAME", "PROVIDER", "EMAIL")
		row(w, account.Attributes.Name, account.Attributes.Provider, account.Attributes.Email)
	})
}

func (a *app) loginURL(c *cli.Context) error {
	provider := models.LoginProvider(c.Args().First())
	if provider == "" {
		provider = models.LoginProviderKakao
	}

	link, err := a.client.LoginURL(provider)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(a.out, link)
	return err
}

func (a *app) logout(c *cli.Context) error {
	if err := a.client.Logout(c.Context); err != nil {
		return err
	}

	_, err := fmt.Fprintln(a.out, "Signed out.")
	return err
}
