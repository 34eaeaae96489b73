package riot

import (
	"context"
	"fmt"
	"net/url"
)

// Account is an Account-V1 record.
type Account struct {
	PUUID    string `json:"puuid"`
	GameName string `json:"gameName"`
	TagLine  string `json:"tagLine"`
}

// AccountByRiotID looks up an account on the routing host.
func (c *Client) AccountByRiotID(ctx context.Context, gameName, tagLine string) (*Account, error) {
	path := fmt.Sprintf("/riot/account/v1/accounts/by-riot-id/%s/%s",
		url.PathEscape(gameName), url.PathEscape(tagLine))

	var account Account
	if err := c.getJSON(ctx, Routing, "account.by-riot-id", path, nil, &account); err != nil {
		return nil, fmt.Errorf("failed to get account by Riot ID: %w", err)
	}
	return &account, nil
}
