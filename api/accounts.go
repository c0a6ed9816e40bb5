package api

import (
	"context"
	"io"

	"github.com/wealthnest/client-go/models"
)

func (c *Client) ListAccounts(ctx context.Context) ([]models.Account, error) {
	var accounts []models.Account
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&accounts).
		Get("/accounts")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return accounts, nil
}

func (c *Client) CreateAccount(ctx context.Context, req models.CreateAccountRequest) (models.Account, error) {
	var account models.Account
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&account).
		Post("/accounts")
	if err := check(resp, err); err != nil {
		return models.Account{}, err
	}
	return account, nil
}

// ImportAccountsCSV uploads a CSV statement and returns the accounts the
// server created from it.
func (c *Client) ImportAccountsCSV(ctx context.Context, filename string, csv io.Reader) ([]models.Account, error) {
	var accounts []models.Account
	resp, err := c.http.R().
		SetContext(ctx).
		SetFileReader("file", filename, csv).
		SetResult(&accounts).
		Post("/accounts/import/csv")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return accounts, nil
}
