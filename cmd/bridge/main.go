// cmd/bridge/main.go
package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/kidoman/embd"

	"github.com/tamzrod/bme280-bridge/internal/bme280"
	"github.com/tamzrod/bme280-bridge/internal/config"
	"github.com/tamzrod/bme280-bridge/internal/poller"
	"github.com/tamzrod/bme280-bridge/internal/status"
	"github.com/tamzrod/bme280-bridge/internal/transport/i2c"
	"github.com/tamzrod/bme280-bridge/internal/writer"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: bridge <config.yaml>")
	}

	cfgPath := os.Args[1]

	// --------------------
	// Load + validate config
	// --------------------

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	if err := config.Validate(cfg); err != nil {
		log.Fatalf("config validation failed: %v", err)
	}

	config.Normalize(cfg)

	if err := embd.InitI2C(); err != nil {
		log.Fatalf("i2c init failed: %v", err)
	}
	defer embd.CloseI2C()

	ctx := context.Background()

	// --------------------
	// Build per-sensor pipelines
	// --------------------

	for _, sc := range cfg.Bridge.Sensors {

		// ---- driver ----
		bus := i2c.New(embd.NewI2CBus(byte(sc.Bus.Number)))

		drv := &bme280.Driver{}
		if st := drv.Begin(bme280.Config{
			Bus:              bus,
			Address:          sc.Bus.Address,
			Timeout:          time.Duration(sc.Bus.TimeoutMs) * time.Millisecond,
			OfflineThreshold: sc.Bus.OfflineThreshold,
		}); !st.Ok() {
			log.Fatalf("driver begin failed (sensor=%s): %v", sc.ID, st.Err())
		}

		// Absence at startup is not fatal; health tracking covers it.
		if st := drv.Probe(); !st.Ok() {
			log.Printf("probe failed (sensor=%s): %v", sc.ID, st.Err())
		}

		// ---- poller ----
		p, err := poller.Build(sc, drv)
		if err != nil {
			log.Fatalf("poller build failed (sensor=%s): %v", sc.ID, err)
		}

		// ---- delivery plan + clients ----
		plan, err := writer.BuildPlan(sc)
		if err != nil {
			log.Fatalf("writer plan failed (sensor=%s): %v", sc.ID, err)
		}

		clients, closeWriters, err := writer.BuildEndpointClients(sc)
		if err != nil {
			log.Fatalf("writer clients failed (sensor=%s): %v", sc.ID, err)
		}
		defer closeWriters()

		dataWriter := writer.New(plan, clients)

		// Status writer (optional per sensor)
		statusWriter, statusEnabled := writer.NewDeviceStatusWriter(plan, clients)

		// ---- channel between poller and writer ----
		out := make(chan poller.PollResult)

		// Orchestrator (runner-owned state + 1Hz seconds ticker)
		go func(sensorID string) {
			var snap status.Snapshot

			secTicker := time.NewTicker(time.Second)
			defer secTicker.Stop()

			// Full block write on start (identity re-assert) if enabled.
			if statusEnabled {
				if err := statusWriter.WriteStatus(snap); err != nil {
					log.Printf("status write failed on start (sensor=%s): %v", sensorID, err)
				}
			}

			for {
				select {
				case <-ctx.Done():
					return

				case res := <-out:
					// --- data delivery ---
					if err := dataWriter.Write(res); err != nil {
						log.Printf("writer error (sensor=%s): %v", sensorID, err)
					}
					if res.Err != nil {
						log.Printf("poll failed (sensor=%s state=%s): %v",
							sensorID, res.Health.State, res.Err)
					}

					// --- status update (device-level truth) ---
					if !statusEnabled {
						continue
					}

					next := status.FromHealth(res.Health)
					if next.StateCode == status.StateReady {
						next.SecondsInError = 0
					} else {
						next.SecondsInError = snap.SecondsInError
					}
					snap = next

					// The status writer only touches slots that changed.
					if err := statusWriter.WriteStatus(snap); err != nil {
						log.Printf("status write failed (sensor=%s): %v", sensorID, err)
					}

				case <-secTicker.C:
					if !statusEnabled {
						continue
					}

					// Tick 1 Hz while not READY.
					if snap.StateCode != status.StateReady {
						if snap.SecondsInError < 65535 {
							snap.SecondsInError++
							if err := statusWriter.WriteStatus(snap); err != nil {
								log.Printf("status seconds tick write failed (sensor=%s): %v", sensorID, err)
							}
						}
					}
				}
			}
		}(sc.ID)

		// poller producer; the poller owns the driver from here on
		go p.Run(ctx, out)
	}

	// --------------------
	// Block forever (daemon-safe, no deadlock)
	// --------------------
	for {
		time.Sleep(time.Hour)
	}
}
