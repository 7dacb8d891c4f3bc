package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/Jinsoo1210/carrot/internal/api"
	"github.com/Jinsoo1210/carrot/internal/api/apitest"
	"github.com/Jinsoo1210/carrot/internal/session"
)

func loggedIn(t *testing.T) (*apitest.Server, *session.Session) {
	t.Helper()
	srv, s := setupTestEnv(t)
	srv.AddUser("kim@example.com", "password1")
	if _, err := s.Login(context.Background(), "kim@example.com", "password1"); err != nil {
		t.Fatalf("login: %v", err)
	}
	return srv, s
}

func TestShopListRequiresLogin(t *testing.T) {
	_, s := setupTestEnv(t)
	err := shopListRun(context.Background(), &bytes.Buffer{}, s, false)
	if err == nil || !strings.Contains(err.Error(), "carrot login") {
		t.Errorf("err = %v, want login hint", err)
	}
}

func TestShopList(t *testing.T) {
	_, s := loggedIn(t)

	var out bytes.Buffer
	if err := shopListRun(context.Background(), &out, s, false); err != nil {
		t.Fatalf("shop list: %v", err)
	}
	for _, want := range []string{"Straw hat", "30 carrots", "Night sky", "background"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestShopListJSON(t *testing.T) {
	_, s := loggedIn(t)

	var out bytes.Buffer
	if err := shopListRun(context.Background(), &out, s, true); err != nil {
		t.Fatalf("shop list: %v", err)
	}
	var items []api.Item
	if err := json.Unmarshal(out.Bytes(), &items); err != nil {
		t.Fatalf("decoding: %v", err)
	}
	if len(items) != len(apitest.DefaultItems) {
		t.Errorf("got %d items, want %d", len(items), len(apitest.DefaultItems))
	}
}

func TestShopBuy(t *testing.T) {
	srv, s := loggedIn(t)

	var prompt string
	confirm := func(p string) (bool, error) {
		prompt = p
		return true, nil
	}
	var out bytes.Buffer
	if err := shopBuyRun(context.Background(), &out, s, 1, confirm, false); err != nil {
		t.Fatalf("buy: %v", err)
	}
	if prompt != "Buy Straw hat for 30 carrots?" {
		t.Errorf("prompt = %q", prompt)
	}
	if !strings.Contains(out.String(), "Balance: 90 carrots") {
		t.Errorf("output = %q", out.String())
	}
	if got := srv.Balance("kim@example.com"); got != 90 {
		t.Errorf("balance = %d, want 90", got)
	}
}

func TestShopBuyCancelled(t *testing.T) {
	srv, s := loggedIn(t)

	var out bytes.Buffer
	if err := shopBuyRun(context.Background(), &out, s, 1, no, false); err != nil {
		t.Fatalf("buy: %v", err)
	}
	if out.String() != "Cancelled.\n" {
		t.Errorf("output = %q", out.String())
	}
	if got := srv.Balance("kim@example.com"); got != apitest.StartingBalance {
		t.Errorf("balance = %d, want unchanged", got)
	}
}

func TestShopBuyErrors(t *testing.T) {
	tests := []struct {
		name string
		id   int
		want string
	}{
		{"unknown item", 99, "no item with id 99"},
		{"too expensive", 4, "not enough carrots"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, s := loggedIn(t)
			err := shopBuyRun(context.Background(), &bytes.Buffer{}, s, tt.id, yes, false)
			if err == nil || err.Error() != tt.want {
				t.Errorf("err = %v, want %q", err, tt.want)
			}
		})
	}
}

func TestShopBuyConfirmError(t *testing.T) {
	srv, s := loggedIn(t)
	boom := errors.New("no tty")
	err := shopBuyRun(context.Background(), &bytes.Buffer{}, s, 1, func(string) (bool, error) { return false, boom }, false)
	if !errors.Is(err, boom) {
		t.Errorf("err = %v, want %v", err, boom)
	}
	if got := srv.Balance("kim@example.com"); got != apitest.StartingBalance {
		t.Errorf("balance = %d, want unchanged", got)
	}
}
