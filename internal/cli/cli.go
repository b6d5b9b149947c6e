// Package cli is the interactive front desk: menus and forms that collect
// validated input, call the registry and print the results.
package cli

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/hackgods/clinic-registry/internal/config"
	"github.com/hackgods/clinic-registry/internal/hospital"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
)

const (
	menuPatients     = "patients"
	menuDoctors      = "doctors"
	menuAppointments = "appointments"
	menuBilling      = "billing"
	menuExit         = "exit"
	menuBack         = "back"
)

type App struct {
	reg   *hospital.Registry
	cfg   config.Config
	out   io.Writer
	log   zerolog.Logger
	today func() time.Time
}

func New(reg *hospital.Registry, cfg config.Config, out io.Writer, logger zerolog.Logger) *App {
	return &App{
		reg:   reg,
		cfg:   cfg,
		out:   out,
		log:   logger.With().Str("component", "cli").Logger(),
		today: time.Now,
	}
}

// Run shows the main menu until the user exits or aborts with ctrl+c.
func (a *App) Run() error {
	a.println(titleStyle.Render("=== " + a.cfg.HospitalName + " ==="))

	for {
		var choice string
		err := huh.NewSelect[string]().
			Title("Main menu").
			Options(
				huh.NewOption("Patient Management", menuPatients),
				huh.NewOption("Doctor Management", menuDoctors),
				huh.NewOption("Appointment Scheduling", menuAppointments),
				huh.NewOption("Billing", menuBilling),
				huh.NewOption("Exit", menuExit),
			).
			Value(&choice).
			Run()
		if err != nil {
			return quietAbort(err)
		}

		switch choice {
		case menuPatients:
			err = a.patientMenu()
		case menuDoctors:
			err = a.doctorMenu()
		case menuAppointments:
			err = a.appointmentMenu()
		case menuBilling:
			err = a.billingMenu()
		case menuExit:
			a.println("Goodbye.")
			return nil
		}
		if err != nil {
			return quietAbort(err)
		}
	}
}

func (a *App) submenu(title string, options ...huh.Option[string]) (string, error) {
	var choice string
	options = append(options, huh.NewOption("Back", menuBack))
	err := huh.NewSelect[string]().
		Title(title).
		Options(options...).
		Value(&choice).
		Run()
	return choice, err
}

// report prints a registry failure and keeps the menu loop going.
func (a *App) report(err error) {
	a.log.Debug().Err(err).Msg("operation failed")
	a.println(errorStyle.Render("Error: " + err.Error()))
	a.println("")
}

func (a *App) success(msg string) {
	a.println(okStyle.Render(msg))
	a.println("")
}

func (a *App) println(s string) {
	fmt.Fprintln(a.out, s)
}

func quietAbort(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return nil
	}
	return err
}
