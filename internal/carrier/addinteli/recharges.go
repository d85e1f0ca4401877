package addinteli

import (
	"context"
)

// Recharge and purchase operations.

// Recharge applies a balance recharge to a line (msisdn, monto).
func (c *Client) Recharge(ctx context.Context, payload map[string]interface{}) (map[string]interface{}, error) {
	var schema RechargePayload
	if err := Validate(c.withAccount(payload), &schema); err != nil {
		return nil, err
	}
	return c.Post(ctx, EndpointPurchase, schema)
}

// ActivatePackage activates an extended plan package (msisdn, plan_name).
func (c *Client) ActivatePackage(ctx context.Context, payload map[string]interface{}) (map[string]interface{}, error) {
	var schema PlanChangePayload
	if err := Validate(c.withAccount(payload), &schema); err != nil {
		return nil, err
	}
	return c.Post(ctx, EndpointPurchaseExtended, schema)
}

// AvailablePlans returns the plans a line can move to.
func (c *Client) AvailablePlans(ctx context.Context, msisdn string) (map[string]interface{}, error) {
	var schema BasePayload
	if err := Validate(c.withAccount(map[string]interface{}{"msisdn": msisdn}), &schema); err != nil {
		return nil, err
	}
	return c.Post(ctx, EndpointAvailablePlans, schema)
}

// RechargeHistory returns the purchase history for a line.
func (c *Client) RechargeHistory(ctx context.Context, msisdn string) (map[string]interface{}, error) {
	var schema BasePayload
	if err := Validate(c.withAccount(map[string]interface{}{"msisdn": msisdn}), &schema); err != nil {
		return nil, err
	}
	return c.Post(ctx, EndpointPurchaseSearch, schema)
}

// StartPortability initiates a port-in for a line (msisdn, port_in, nip,
// curp).
func (c *Client) StartPortability(ctx context.Context, payload map[string]interface{}) (map[string]interface{}, error) {
	var schema PortabilityPayload
	if err := Validate(c.withAccount(payload), &schema); err != nil {
		return nil, err
	}
	return c.Post(ctx, EndpointPortability, schema)
}
