package addinteli

import (
	"context"
)

// Device and catalog operations.

// CheckDevice checks whether a device is compatible with the network.
func (c *Client) CheckDevice(ctx context.Context, imei string) (map[string]interface{}, error) {
	var schema DevicePayload
	if err := Validate(c.withAccount(map[string]interface{}{"imei": imei}), &schema); err != nil {
		return nil, err
	}
	return c.Post(ctx, EndpointCheckDevice, schema)
}

// LockIMEI locks a device to its line.
func (c *Client) LockIMEI(ctx context.Context, imei, msisdn string) (map[string]interface{}, error) {
	var schema IMEIPayload
	payload := map[string]interface{}{"imei": imei, "msisdn": msisdn}
	if err := Validate(c.withAccount(payload), &schema); err != nil {
		return nil, err
	}
	return c.Post(ctx, EndpointLockIMEI, schema)
}

// UnlockIMEI releases a device from its line.
func (c *Client) UnlockIMEI(ctx context.Context, imei, msisdn string) (map[string]interface{}, error) {
	var schema IMEIPayload
	payload := map[string]interface{}{"imei": imei, "msisdn": msisdn}
	if err := Validate(c.withAccount(payload), &schema); err != nil {
		return nil, err
	}
	return c.Post(ctx, EndpointUnlockIMEI, schema)
}

// PlanCatalog returns the first page of the distributor-wide plan catalog.
// A paginated response carries the next page's absolute URL under next_url;
// callers that need the full catalog follow it with PlanCatalogPage.
func (c *Client) PlanCatalog(ctx context.Context) (map[string]interface{}, error) {
	return c.PlanCatalogPage(ctx, "")
}

// PlanCatalogPage fetches one page of the plan catalog. An empty pageURL
// requests the first page; otherwise pageURL is the next_url from the
// previous page.
func (c *Client) PlanCatalogPage(ctx context.Context, pageURL string) (map[string]interface{}, error) {
	var schema AccountPayload
	if err := Validate(c.withAccount(nil), &schema); err != nil {
		return nil, err
	}
	if pageURL == "" {
		pageURL = EndpointAvailablePlans
	}
	return c.Post(ctx, pageURL, schema)
}

// CityCatalog returns the city catalog used for region changes.
func (c *Client) CityCatalog(ctx context.Context) (map[string]interface{}, error) {
	var schema AccountPayload
	if err := Validate(c.withAccount(nil), &schema); err != nil {
		return nil, err
	}
	return c.Post(ctx, EndpointChangeRegion, schema)
}
