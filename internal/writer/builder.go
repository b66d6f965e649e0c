// internal/writer/builder.go
package writer

import (
	"errors"
	"strings"
	"time"

	cfg "github.com/tamzrod/bme280-bridge/internal/config"
	"github.com/tamzrod/bme280-bridge/internal/writer/ingest"
	wmodbus "github.com/tamzrod/bme280-bridge/internal/writer/modbus"
)

// BuildPlan converts one sensor config into a delivery Plan.
// Assumes config has already passed conflict validation.
func BuildPlan(s cfg.SensorConfig) (Plan, error) {
	if s.ID == "" {
		return Plan{}, errors.New("writer: sensor id required")
	}

	plan := Plan{
		SensorID: s.ID,
		Data: DataPlan{
			Endpoint: s.Export.Endpoint,
			UnitID:   s.Export.UnitID,
			Base:     s.Export.DataBase,
		},
	}

	if s.Export.StatusSlot != nil {
		plan.Status = &StatusPlan{
			Endpoint:   s.Export.Endpoint,
			UnitID:     s.Export.UnitID,
			BaseSlot:   *s.Export.StatusSlot,
			DeviceName: s.Export.DeviceName,
		}
	}

	return plan, nil
}

// BuildEndpointClients creates one client per unique endpoint, choosing
// the transport from the endpoint scheme.
func BuildEndpointClients(s cfg.SensorConfig) (map[string]endpointClient, func() error, error) {
	unique := map[string]struct{}{
		s.Export.Endpoint: {},
	}

	timeout := time.Duration(s.Bus.TimeoutMs) * time.Millisecond

	clients := make(map[string]endpointClient)
	var closers []func() error

	for endpoint := range unique {
		var (
			c   endpointClient
			cl  func() error
			err error
		)

		if strings.HasPrefix(endpoint, "ingest://") {
			ic, e := ingest.NewEndpointClient(ingest.Config{
				Endpoint: strings.TrimPrefix(endpoint, "ingest://"),
				Timeout:  timeout,
			})
			c, cl, err = ic, ic.Close, e
		} else {
			mc, e := wmodbus.NewEndpointClient(wmodbus.Config{
				Endpoint: endpoint,
				Timeout:  timeout,
				Baud:     s.Export.Baud,
			})
			if e == nil {
				c, cl = mc, mc.Close
			}
			err = e
		}

		if err != nil {
			for _, fn := range closers {
				_ = fn()
			}
			return nil, nil, err
		}

		clients[endpoint] = c
		closers = append(closers, cl)
	}

	closeAll := func() error {
		var last error
		for _, fn := range closers {
			if err := fn(); err != nil {
				last = err
			}
		}
		return last
	}

	return clients, closeAll, nil
}
