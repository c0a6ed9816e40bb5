package api

import (
	"context"
	"fmt"

	"github.com/wealthnest/client-go/models"
)

func (c *Client) ListFamilies(ctx context.Context) ([]models.Family, error) {
	var families []models.Family
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&families).
		Get("/families")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return families, nil
}

func (c *Client) CreateFamily(ctx context.Context, req models.CreateFamilyRequest) (models.Family, error) {
	var family models.Family
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&family).
		Post("/families")
	if err := check(resp, err); err != nil {
		return models.Family{}, err
	}
	return family, nil
}

func (c *Client) ListFamilyMembers(ctx context.Context, familyID int64) ([]models.FamilyMember, error) {
	var members []models.FamilyMember
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&members).
		Get(fmt.Sprintf("/families/%d/members", familyID))
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return members, nil
}

func (c *Client) InviteMember(ctx context.Context, familyID int64, req models.InviteMemberRequest) (models.FamilyMember, error) {
	var member models.FamilyMember
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&member).
		Post(fmt.Sprintf("/families/%d/members", familyID))
	if err := check(resp, err); err != nil {
		return models.FamilyMember{}, err
	}
	return member, nil
}

func (c *Client) RemoveMember(ctx context.Context, familyID, memberID int64) error {
	resp, err := c.http.R().
		SetContext(ctx).
		Delete(fmt.Sprintf("/families/%d/members/%d", familyID, memberID))
	return check(resp, err)
}
