package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/Jinsoo1210/carrot/internal/api"
	"github.com/Jinsoo1210/carrot/internal/session"
	"github.com/Jinsoo1210/carrot/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var buyYes bool

var shopCmd = &cobra.Command{
	Use:   "shop",
	Short: "Browse and buy items with carrots",
}

var shopListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the items for sale",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession()
		if err != nil {
			return err
		}
		return shopListRun(cmd.Context(), os.Stdout, s, jsonOutput)
	},
}

var shopBuyCmd = &cobra.Command{
	Use:   "buy <item-id>",
	Short: "Buy an item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid item id %q", args[0])
		}
		s, err := newSession()
		if err != nil {
			return err
		}

		confirm := func(string) (bool, error) { return true, nil }
		if !buyYes && term.IsTerminal(int(os.Stdin.Fd())) {
			theme := ui.ResolveTheme(appConfig.Theme)
			confirm = func(prompt string) (bool, error) { return ui.Confirm(prompt, theme) }
		}
		return shopBuyRun(cmd.Context(), os.Stdout, s, id, confirm, jsonOutput)
	},
}

func init() {
	shopBuyCmd.Flags().BoolVarP(&buyYes, "yes", "y", false, "skip the confirmation prompt")
	shopCmd.AddCommand(shopListCmd)
	shopCmd.AddCommand(shopBuyCmd)
	rootCmd.AddCommand(shopCmd)
}

func shopError(err error) error {
	switch {
	case errors.Is(err, session.ErrNotLoggedIn):
		return errors.New("not logged in (run carrot login first)")
	case errors.Is(err, api.ErrUnauthorized):
		return errors.New("session expired (run carrot login again)")
	}
	var se *api.StatusError
	if errors.As(err, &se) && se.Message != "" {
		return errors.New(se.Message)
	}
	return err
}

func shopListRun(ctx context.Context, w io.Writer, s *session.Session, asJSON bool) error {
	items, err := s.Shop(ctx)
	if err != nil {
		return shopError(err)
	}
	if asJSON {
		if items == nil {
			items = []api.Item{}
		}
		return ui.FormatJSON(w, items)
	}
	ui.FormatShopItems(w, items)
	return nil
}

func shopBuyRun(ctx context.Context, w io.Writer, s *session.Session, id int, confirm func(string) (bool, error), asJSON bool) error {
	items, err := s.Shop(ctx)
	if err != nil {
		return shopError(err)
	}
	var item *api.Item
	for i := range items {
		if items[i].ID == id {
			item = &items[i]
			break
		}
	}
	if item == nil {
		return fmt.Errorf("no item with id %d", id)
	}

	ok, err := confirm(fmt.Sprintf("Buy %s for %d carrots?", item.Name, item.Price))
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(w, "Cancelled.")
		return nil
	}

	p, err := s.Buy(ctx, id)
	if err != nil {
		return shopError(err)
	}
	if asJSON {
		return ui.FormatJSON(w, p)
	}
	ui.FormatPurchase(w, p)
	return nil
}
