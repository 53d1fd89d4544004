package eligibility

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/openmaterials/auction-engine/internal/domain/errors"
)

// Client calls the external eligibility service, which owns deposit
// authorization, KYC status, and terms acceptance. The bidding engine only
// consumes the boolean answer.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates an eligibility client.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type eligibilityResponse struct {
	Eligible bool `json:"eligible"`
}

// IsBidderEligible asks the eligibility service whether the bidder may bid
// on the auction.
func (c *Client) IsBidderEligible(ctx context.Context, auctionID, bidderID uuid.UUID) (bool, error) {
	url := fmt.Sprintf("%s/v1/auctions/%s/bidders/%s/eligibility", c.baseURL, auctionID, bidderID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, errors.NewInternalError("failed to build eligibility request").WithCause(err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, errors.NewExternalError("eligibility", "request failed").WithCause(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, errors.NewExternalError("eligibility", fmt.Sprintf("unexpected status %d", resp.StatusCode))
	}

	var body eligibilityResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return false, errors.NewExternalError("eligibility", "invalid response body").WithCause(err)
	}
	return body.Eligible, nil
}
