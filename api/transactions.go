package api

import (
	"context"
	"io"
	"strconv"

	"github.com/wealthnest/client-go/models"
)

func (c *Client) ListTransactions(ctx context.Context, limit int) ([]models.Transaction, error) {
	req := c.http.R().SetContext(ctx)
	if limit > 0 {
		req.SetQueryParam("limit", strconv.Itoa(limit))
	}

	var transactions []models.Transaction
	resp, err := req.SetResult(&transactions).Get("/transactions")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return transactions, nil
}

func (c *Client) CreateTransaction(ctx context.Context, req models.CreateTransactionRequest) (models.Transaction, error) {
	var transaction models.Transaction
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&transaction).
		Post("/transactions")
	if err := check(resp, err); err != nil {
		return models.Transaction{}, err
	}
	return transaction, nil
}

// ImportTransactionsCSV uploads a CSV statement and returns the transactions
// the server created from it. Rows the server rejected are skipped there.
func (c *Client) ImportTransactionsCSV(ctx context.Context, filename string, csv io.Reader) ([]models.Transaction, error) {
	var transactions []models.Transaction
	resp, err := c.http.R().
		SetContext(ctx).
		SetFileReader("file", filename, csv).
		SetResult(&transactions).
		Post("/transactions/import/csv")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return transactions, nil
}
