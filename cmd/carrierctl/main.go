// Command carrierctl invokes a single carrier operation from the command
// line. It is an operational tool for verifying credentials and inspecting
// live carrier responses without going through the backend.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/mexared/carrier-gateway/internal/carrier/addinteli"
	apperrors "github.com/mexared/carrier-gateway/internal/domain/errors"
	"github.com/mexared/carrier-gateway/internal/infrastructure/config"
	"github.com/mexared/carrier-gateway/internal/infrastructure/telemetry"
)

func main() {
	var (
		op      = flag.String("op", "", "Operation: benefits, plans, catalog, cities, history, check-device, suspend, resume")
		msisdn  = flag.String("msisdn", "", "Line number (10 digits)")
		imei    = flag.String("imei", "", "Device IMEI (14-15 digits)")
		timeout = flag.Duration("timeout", 30*time.Second, "Overall deadline for the call")
	)
	flag.Parse()

	if *op == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load configuration:", err)
		os.Exit(1)
	}

	logger, err := telemetry.SetupLogger(cfg.LogLevel, cfg.Environment)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to setup logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	client, err := addinteli.New(cfg.Addinteli, logger)
	if err != nil {
		logger.Fatal("carrier client init failed", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	result, err := dispatch(ctx, client, *op, *msisdn, *imei)
	if err != nil {
		logger.Fatal("operation failed",
			zap.String("op", *op),
			zap.Int("status", apperrors.GetStatusCode(err)),
			zap.Error(err))
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		logger.Fatal("encoding result failed", zap.Error(err))
	}
	fmt.Println(string(out))
}

func dispatch(ctx context.Context, c *addinteli.Client, op, msisdn, imei string) (map[string]interface{}, error) {
	line := func() map[string]interface{} {
		return map[string]interface{}{"msisdn": msisdn}
	}

	switch op {
	case "benefits":
		return c.QueryBenefits(ctx, msisdn)
	case "plans":
		return c.AvailablePlans(ctx, msisdn)
	case "catalog":
		return c.PlanCatalog(ctx)
	case "cities":
		return c.CityCatalog(ctx)
	case "history":
		return c.RechargeHistory(ctx, msisdn)
	case "check-device":
		return c.CheckDevice(ctx, imei)
	case "suspend":
		return c.SuspendLine(ctx, line())
	case "resume":
		return c.ResumeLine(ctx, line())
	default:
		return nil, fmt.Errorf("unknown operation %q", op)
	}
}
