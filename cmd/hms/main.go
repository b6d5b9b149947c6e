package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/hackgods/clinic-registry/internal/cli"
	"github.com/hackgods/clinic-registry/internal/config"
	"github.com/hackgods/clinic-registry/internal/hospital"
	"github.com/hackgods/clinic-registry/internal/printer"
	"github.com/hackgods/clinic-registry/internal/seed"
)

// version is set at build time via -ldflags
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var withDemo bool

	root := &cobra.Command{
		Use:          "hms",
		Short:        "Hospital management console: patients, doctors, appointments and billing",
		Version:      version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup()
			if err != nil {
				return err
			}

			reg := hospital.NewRegistry(cfg, logger)
			if withDemo {
				res, err := populate(reg, cfg)
				if err != nil {
					return err
				}
				logger.Info().
					Int("patients", len(res.PatientIDs)).
					Int("doctors", len(res.DoctorIDs)).
					Msg("demo data loaded")
			}

			return cli.New(reg, cfg, cmd.OutOrStdout(), logger).Run()
		},
	}
	root.Flags().BoolVar(&withDemo, "demo", false, "Start with generated patients and doctors")

	root.AddCommand(newDemoCmd())
	return root
}

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Generate a demo clinic, book, bill and cancel, then print the results",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup()
			if err != nil {
				return err
			}

			reg := hospital.NewRegistry(cfg, logger)
			res, err := populate(reg, cfg)
			if err != nil {
				return err
			}
			return runDemo(cmd.OutOrStdout(), reg, cfg, res)
		},
	}
}

func setup() (config.Config, zerolog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, zerolog.Nop(), fmt.Errorf("config load error: %w", err)
	}

	logger := newLogger(cfg, os.Stderr)
	logger.Debug().Str("env", cfg.Env).Int64("consultation_fee", cfg.ConsultationFee).Msg("config loaded")
	return cfg, logger, nil
}

func newLogger(cfg config.Config, w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	if cfg.Env == "dev" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

func populate(reg *hospital.Registry, cfg config.Config) (seed.Result, error) {
	s := cfg.DemoSeed
	if s == 0 {
		s = uint64(time.Now().UnixNano())
	}

	res, err := seed.Populate(reg, gofakeit.New(s), seed.Options{
		Patients:       cfg.DemoPatients,
		Doctors:        cfg.DemoDoctors,
		SlotsPerDoctor: cfg.DemoSlots,
		Bookings:       cfg.DemoPatients,
	})
	if err != nil {
		return seed.Result{}, fmt.Errorf("seed demo data: %w", err)
	}
	return res, nil
}

// runDemo walks one appointment through billing and cancellation and prints
// what the front desk would see at each step.
func runDemo(w io.Writer, reg *hospital.Registry, cfg config.Config, res seed.Result) error {
	for _, d := range reg.Doctors() {
		if err := printer.DoctorProfile(w, d); err != nil {
			return err
		}
	}
	if err := printer.Appointments(w, reg.Appointments()); err != nil {
		return err
	}
	if len(res.AppointmentIDs) == 0 {
		return nil
	}

	apptID := res.AppointmentIDs[0]
	bill, err := reg.GenerateBill(apptID, []hospital.LineItem{
		{Description: "X-Ray", Fee: 5000},
		{Description: "Lab Test", Fee: 12500},
	})
	if err != nil {
		return err
	}
	if err := printer.Receipt(w, cfg.HospitalName, cfg.Currency, bill); err != nil {
		return err
	}

	appt, err := reg.CancelAppointment(apptID)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Appointment %s canceled.\n", appt.ID)

	d, err := reg.Doctor(appt.DoctorID)
	if err != nil {
		return err
	}
	if err := printer.DoctorProfile(w, d); err != nil {
		return err
	}

	profile, err := reg.PatientProfile(appt.PatientID)
	if err != nil {
		return err
	}
	return printer.PatientProfile(w, profile)
}
