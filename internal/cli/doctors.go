package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/hackgods/clinic-registry/internal/hospital"
	"github.com/hackgods/clinic-registry/internal/printer"
	"github.com/hackgods/clinic-registry/internal/validate"
)

func (a *App) doctorMenu() error {
	for {
		choice, err := a.submenu("Doctor Management",
			huh.NewOption("Register New Doctor", "register"),
			huh.NewOption("View Doctor Profile & Schedule", "view"),
		)
		if err != nil {
			return err
		}

		switch choice {
		case "register":
			err = a.registerDoctor()
		case "view":
			err = a.viewDoctor()
		case menuBack:
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// parseSchedule reads one "YYYY-MM-DD HH:MM" slot per non-blank line.
func parseSchedule(raw string) ([]hospital.Slot, error) {
	var slots []hospital.Slot
	for i, line := range strings.Split(raw, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		s, err := validate.Slot(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		slots = append(slots, s)
	}
	return slots, nil
}

func (a *App) registerDoctor() error {
	var first, last, gender, speciality, schedule string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("First Name").Value(&first).Validate(check(validate.Required)),
			huh.NewInput().Title("Last Name").Value(&last).Validate(check(validate.Required)),
			huh.NewInput().Title("Gender").Value(&gender),
			huh.NewInput().Title("Speciality").Value(&speciality),
			huh.NewText().
				Title("Available slots").
				Description("One per line: YYYY-MM-DD HH:MM").
				Value(&schedule).
				Validate(check(parseSchedule)),
		).Title("Register New Doctor"),
	)
	if err := form.Run(); err != nil {
		return err
	}

	slots, err := parseSchedule(schedule)
	if err != nil {
		a.report(err)
		return nil
	}

	id, err := a.reg.RegisterDoctor(hospital.NewDoctor{
		FirstName:  strings.TrimSpace(first),
		LastName:   strings.TrimSpace(last),
		Gender:     strings.TrimSpace(gender),
		Speciality: strings.TrimSpace(speciality),
		Slots:      slots,
	})
	if err != nil {
		a.report(err)
		return nil
	}
	a.success(fmt.Sprintf("Doctor registered. Doctor ID: %s", id))
	return nil
}

func (a *App) viewDoctor() error {
	var id string
	if err := huh.NewInput().Title("Doctor ID").Value(&id).Run(); err != nil {
		return err
	}

	d, err := a.reg.Doctor(strings.TrimSpace(id))
	if err != nil {
		a.report(err)
		return nil
	}
	return printer.DoctorProfile(a.out, d)
}
