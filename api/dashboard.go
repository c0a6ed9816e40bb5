package api

import (
	"context"

	"github.com/wealthnest/client-go/models"
)

func (c *Client) Dashboard(ctx context.Context) (models.Dashboard, error) {
	var dashboard models.Dashboard
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&dashboard).
		Get("/dashboard")
	if err := check(resp, err); err != nil {
		return models.Dashboard{}, err
	}
	return dashboard, nil
}
