package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"transit-mixer-scheduler/internal/adapters/export"
	"transit-mixer-scheduler/internal/adapters/repositories"
	"transit-mixer-scheduler/internal/config"
	"transit-mixer-scheduler/internal/domain"
	"transit-mixer-scheduler/internal/platform/db"
	"transit-mixer-scheduler/internal/platform/logger"
	"transit-mixer-scheduler/internal/platform/metrics"
	"transit-mixer-scheduler/internal/ports"
	"transit-mixer-scheduler/internal/report"
	"transit-mixer-scheduler/internal/services"
)

type options struct {
	cfgPath  string
	site     string
	format   string
	out      string
	logLevel string
	profiles string
	maxTrips int
	params   domain.Parameters
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "tmsched",
		Short: "Compute a transit mixer trip schedule",
		Long: "tmsched computes the trip-by-trip delivery schedule for a fleet of transit mixers\n" +
			"cycling between a plant and one site. Durations come from flags or from a stored\n" +
			"site profile (--site), with explicit flags taking precedence.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.IntVar(&opts.params.StartTime, "start-time", 0, "start of the first load, in minutes (e.g. 300 for 05:00)")
	f.IntVar(&opts.params.TotalQuantity, "total-quantity", 0, "total quantity required")
	f.IntVar(&opts.params.LoadTime, "load-time", 0, "minutes to load one vehicle at the plant")
	f.IntVar(&opts.params.TravelTime, "travel-time", 0, "one-way travel minutes between plant and site")
	f.IntVar(&opts.params.DischargeTime, "discharge-time", 0, "minutes spent discharging at the site")
	f.IntVar(&opts.params.BufferTime, "buffer-time", 0, "minutes held at the site before discharge starts")
	f.IntVar(&opts.params.QuantityPerTrip, "quantity-per-trip", 0, "quantity carried by each trip")
	f.IntVar(&opts.params.NumVehicles, "vehicles", 1, "number of vehicles in the fleet")
	f.StringVarP(&opts.site, "site", "s", "", "stored site profile supplying durations and quantity per trip")
	f.StringVarP(&opts.cfgPath, "config", "c", "", "configuration file (database for --site)")
	f.StringVar(&opts.profiles, "profiles", "", "site profiles JSON file used for --site instead of the database")
	f.IntVar(&opts.maxTrips, "max-trips", domain.DefaultMaxTrips, "largest number of trips a schedule may have")
	f.StringVarP(&opts.format, "format", "f", "text", "output format: text, csv, xlsx")
	f.StringVarP(&opts.out, "out", "o", "", "output file (default stdout; tm_scheduler.xlsx for xlsx)")
	f.StringVar(&opts.logLevel, "log-level", "warn", "log level")

	return cmd
}

func run(cmd *cobra.Command, opts *options) error {
	log := logger.NewWithWriter(cmd.ErrOrStderr(), "tmsched", opts.logLevel)
	ctx := log.WithContext(cmd.Context())

	exporter, err := export.ForFormat(opts.format)
	if err != nil {
		return err
	}

	// Only flags the user actually set override the site profile.
	pick := func(name string, v *int) *int {
		if cmd.Flags().Changed(name) {
			return v
		}
		return nil
	}
	p := &opts.params
	overrides := domain.ParameterOverrides{
		StartTime:       pick("start-time", &p.StartTime),
		TotalQuantity:   pick("total-quantity", &p.TotalQuantity),
		LoadTime:        pick("load-time", &p.LoadTime),
		TravelTime:      pick("travel-time", &p.TravelTime),
		DischargeTime:   pick("discharge-time", &p.DischargeTime),
		BufferTime:      pick("buffer-time", &p.BufferTime),
		QuantityPerTrip: pick("quantity-per-trip", &p.QuantityPerTrip),
		NumVehicles:     pick("vehicles", &p.NumVehicles),
	}

	planner := &services.Planner{Metrics: metrics.NopRecorder{}, MaxTrips: opts.maxTrips}
	if opts.site != "" {
		profiles, closeFn, err := openProfiles(opts.cfgPath, opts.profiles)
		if err != nil {
			return err
		}
		defer closeFn()
		planner.Profiles = profiles
	}

	schedule, err := planner.PlanSchedule(ctx, services.PlanScheduleRequest{
		Site:      opts.site,
		Defaults:  domain.Parameters{NumVehicles: 1},
		Overrides: overrides,
		Source:    "cli",
	})
	if err != nil {
		return err
	}

	out := opts.out
	if out == "" && exporter.FileExt() == "xlsx" {
		out = export.FileName(exporter)
	}
	if out == "" {
		if err := exporter.Export(cmd.OutOrStdout(), schedule.Trips); err != nil {
			return err
		}
	} else {
		if err := writeFile(out, exporter, schedule.Trips); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %d trips to %s\n", len(schedule.Trips), out)
	}

	if exporter.FileExt() == "txt" {
		printSummary(cmd.OutOrStdout(), schedule)
	}
	return nil
}

// writeFile exports trips to path, returning the close error if any.
func writeFile(path string, exporter ports.Exporter, trips []domain.Trip) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %q: %w", path, err)
	}

	if err := exporter.Export(file, trips); err != nil {
		_ = file.Close()
		return fmt.Errorf("write %q: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close %q: %w", path, err)
	}
	return nil
}

func printSummary(w io.Writer, s *domain.Schedule) {
	fmt.Fprintf(w, "\ntrips: %d  delivered: %d  undelivered: %d\n",
		len(s.Trips), s.DeliveredQuantity, s.UndeliveredQuantity)
	fmt.Fprintf(w, "last site departure: %s  fleet back at plant: %s\n",
		report.FormatClock(s.SiteFinishTime), report.FormatClock(s.FinishTime))
}

// openProfiles returns the profiles from the JSON file when one is given and
// from the configured database otherwise.
func openProfiles(cfgPath, jsonPath string) (ports.SiteProfileRepository, func(), error) {
	if jsonPath != "" {
		profiles, err := repositories.LoadProfilesJSON(jsonPath)
		if err != nil {
			return nil, nil, err
		}
		return repositories.NewMemorySiteProfileRepository(profiles), func() {}, nil
	}

	config.LoadDotenv()
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, nil, err
	}

	conn, err := db.Open(cfg.DB.Driver, cfg.DB.DSN)
	if err != nil {
		return nil, nil, err
	}

	return repositories.NewSiteProfileRepository(conn, cfg.DB.Driver), func() { _ = conn.Close() }, nil
}
