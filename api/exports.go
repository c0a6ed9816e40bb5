package api

import "context"

// Export downloads bypass the query cache; the server renders them on demand.

func (c *Client) ExportNetWorthCSV(ctx context.Context) ([]byte, error) {
	return c.download(ctx, "/exports/net-worth/csv")
}

func (c *Client) ExportNetWorthPDF(ctx context.Context) ([]byte, error) {
	return c.download(ctx, "/exports/net-worth/pdf")
}

func (c *Client) ExportTransactionsCSV(ctx context.Context) ([]byte, error) {
	return c.download(ctx, "/exports/transactions/csv")
}

func (c *Client) download(ctx context.Context, path string) ([]byte, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Accept", "*/*").
		Get(path)
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return resp.Body(), nil
}
