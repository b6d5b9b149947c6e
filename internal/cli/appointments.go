package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/hackgods/clinic-registry/internal/hospital"
	"github.com/hackgods/clinic-registry/internal/printer"
	"github.com/hackgods/clinic-registry/internal/validate"
)

func (a *App) appointmentMenu() error {
	for {
		choice, err := a.submenu("Appointment Scheduling",
			huh.NewOption("Book Appointment", "book"),
			huh.NewOption("View All Appointments", "list"),
			huh.NewOption("Cancel Appointment", "cancel"),
		)
		if err != nil {
			return err
		}

		switch choice {
		case "book":
			err = a.bookAppointment()
		case "list":
			err = printer.Appointments(a.out, a.reg.Appointments())
		case "cancel":
			err = a.cancelAppointment()
		case menuBack:
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (a *App) bookAppointment() error {
	var patientID, doctorID, rawSlot string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Patient ID").Value(&patientID),
			huh.NewInput().Title("Doctor ID").Value(&doctorID),
			huh.NewInput().
				Title("Slot").
				Description("YYYY-MM-DD HH:MM").
				Value(&rawSlot).
				Validate(check(validate.Slot)),
		).Title("Book Appointment"),
	)
	if err := form.Run(); err != nil {
		return err
	}

	slot, err := validate.Slot(rawSlot)
	if err != nil {
		a.report(err)
		return nil
	}

	appt, err := a.reg.BookAppointment(strings.TrimSpace(patientID), strings.TrimSpace(doctorID), slot.Date, slot.Time)
	if err != nil {
		a.report(err)
		return nil
	}
	a.success(fmt.Sprintf("Appointment confirmed. ID: %s", appt.ID))
	return nil
}

func (a *App) cancelAppointment() error {
	var id string
	if err := huh.NewInput().Title("Appointment ID").Value(&id).Run(); err != nil {
		return err
	}

	appt, err := a.reg.CancelAppointment(strings.TrimSpace(id))
	if err != nil {
		a.report(err)
		return nil
	}
	a.success(fmt.Sprintf("Appointment %s canceled.", appt.ID))
	return nil
}

func (a *App) billingMenu() error {
	for {
		choice, err := a.submenu("Billing",
			huh.NewOption("Generate Bill", "bill"),
		)
		if err != nil {
			return err
		}

		switch choice {
		case "bill":
			err = a.generateBill()
		case menuBack:
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (a *App) generateBill() error {
	var id string
	if err := huh.NewInput().Title("Appointment ID").Value(&id).Run(); err != nil {
		return err
	}
	id = strings.TrimSpace(id)

	if err := a.reg.CheckBillable(id); err != nil {
		a.report(err)
		return nil
	}

	var extras []hospital.LineItem
	for {
		var service, fee string
		if err := huh.NewInput().Title("Extra service (blank to finish)").Value(&service).Run(); err != nil {
			return err
		}
		service = strings.TrimSpace(service)
		if service == "" {
			break
		}

		err := huh.NewInput().
			Title(fmt.Sprintf("Fee for '%s' (%s)", service, a.cfg.Currency)).
			Value(&fee).
			Validate(check(validate.Fee)).
			Run()
		if err != nil {
			return err
		}
		amount, err := validate.Fee(fee)
		if err != nil {
			a.report(err)
			continue
		}
		extras = append(extras, hospital.LineItem{Description: service, Fee: amount})
	}

	bill, err := a.reg.GenerateBill(id, extras)
	if err != nil {
		a.report(err)
		return nil
	}
	return printer.Receipt(a.out, a.cfg.HospitalName, a.cfg.Currency, bill)
}
