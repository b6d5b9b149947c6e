package hospital_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/cucumber/godog"
	"github.com/rs/zerolog"

	"github.com/hackgods/clinic-registry/internal/config"
	"github.com/hackgods/clinic-registry/internal/hospital"
)

// bookingContext holds state for a single scenario
type bookingContext struct {
	registry  *hospital.Registry
	patientID string
	doctorID  string

	lastAppt  hospital.Appointment
	bookErr   error
	cancelErr error
	bill      hospital.Bill
	billErr   error
}

func TestBookingFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: initializeBookingScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

func initializeBookingScenario(sc *godog.ScenarioContext) {
	bc := &bookingContext{}

	sc.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		*bc = bookingContext{}
		return ctx, nil
	})

	sc.Step(`^a clinic charging a consultation fee of (\d+)$`, bc.aClinicChargingAConsultationFeeOf)
	sc.Step(`^a registered patient$`, bc.aRegisteredPatient)
	sc.Step(`^a doctor with the slot "([^"]*)"$`, bc.aDoctorWithTheSlot)
	sc.Step(`^the patient ID should be "([^"]*)"$`, bc.thePatientIDShouldBe)
	sc.Step(`^the doctor ID should be "([^"]*)"$`, bc.theDoctorIDShouldBe)
	sc.Step(`^the patient books "([^"]*)"$`, bc.thePatientBooks)
	sc.Step(`^the booking should succeed with ID "([^"]*)"$`, bc.theBookingShouldSucceedWithID)
	sc.Step(`^the booking should fail because the slot is unavailable$`, bc.theBookingShouldFail)
	sc.Step(`^appointment "([^"]*)" should be "([^"]*)"$`, bc.appointmentShouldBe)
	sc.Step(`^appointment "([^"]*)" is cancelled$`, bc.appointmentIsCancelled)
	sc.Step(`^appointment "([^"]*)" is billed with "([^"]*)" costing (\d+)$`, bc.appointmentIsBilledWith)
	sc.Step(`^the bill total should be (\d+)$`, bc.theBillTotalShouldBe)
	sc.Step(`^the doctor should have no available slots$`, bc.theDoctorShouldHaveNoAvailableSlots)
	sc.Step(`^the doctor should have the slot "([^"]*)"$`, bc.theDoctorShouldHaveTheSlot)
	sc.Step(`^the cancellation should fail because it is already canceled$`, bc.theCancellationShouldFail)
	sc.Step(`^billing should fail because the appointment is not confirmed$`, bc.billingShouldFail)
}

func splitSlot(raw string) (string, string, error) {
	parts := strings.Fields(raw)
	if len(parts) != 2 {
		return "", "", fmt.Errorf("slot %q is not 'YYYY-MM-DD HH:MM'", raw)
	}
	return parts[0], parts[1], nil
}

func (bc *bookingContext) aClinicChargingAConsultationFeeOf(fee int64) error {
	cfg := config.Default()
	cfg.ConsultationFee = fee
	bc.registry = hospital.NewRegistry(cfg, zerolog.Nop())
	return nil
}

func (bc *bookingContext) aRegisteredPatient() error {
	id, err := bc.registry.RegisterPatient(hospital.NewPatient{
		FirstName:   "Tanya",
		LastName:    "Reid",
		DateOfBirth: "1984-11-02",
		Age:         40,
		Gender:      "Female",
		Telephone:   "8765550000",
	})
	bc.patientID = id
	return err
}

func (bc *bookingContext) aDoctorWithTheSlot(raw string) error {
	date, at, err := splitSlot(raw)
	if err != nil {
		return err
	}
	id, err := bc.registry.RegisterDoctor(hospital.NewDoctor{
		FirstName:  "Marcus",
		LastName:   "Henry",
		Gender:     "Male",
		Speciality: "Radiology",
		Slots:      []hospital.Slot{{Date: date, Time: at}},
	})
	bc.doctorID = id
	return err
}

func (bc *bookingContext) thePatientIDShouldBe(expected string) error {
	if bc.patientID != expected {
		return fmt.Errorf("expected patient ID %s, got %s", expected, bc.patientID)
	}
	return nil
}

func (bc *bookingContext) theDoctorIDShouldBe(expected string) error {
	if bc.doctorID != expected {
		return fmt.Errorf("expected doctor ID %s, got %s", expected, bc.doctorID)
	}
	return nil
}

func (bc *bookingContext) thePatientBooks(raw string) error {
	date, at, err := splitSlot(raw)
	if err != nil {
		return err
	}
	bc.lastAppt, bc.bookErr = bc.registry.BookAppointment(bc.patientID, bc.doctorID, date, at)
	return nil
}

func (bc *bookingContext) theBookingShouldSucceedWithID(expected string) error {
	if bc.bookErr != nil {
		return fmt.Errorf("booking failed: %w", bc.bookErr)
	}
	if bc.lastAppt.ID != expected {
		return fmt.Errorf("expected appointment ID %s, got %s", expected, bc.lastAppt.ID)
	}
	return nil
}

func (bc *bookingContext) theBookingShouldFail() error {
	if !errors.Is(bc.bookErr, hospital.ErrSlotUnavailable) {
		return fmt.Errorf("expected %v, got %v", hospital.ErrSlotUnavailable, bc.bookErr)
	}
	return nil
}

func (bc *bookingContext) appointmentShouldBe(id, status string) error {
	appt, err := bc.registry.Appointment(id)
	if err != nil {
		return err
	}
	if string(appt.Status) != status {
		return fmt.Errorf("expected %s to be %s, got %s", id, status, appt.Status)
	}
	return nil
}

func (bc *bookingContext) appointmentIsCancelled(id string) error {
	_, bc.cancelErr = bc.registry.CancelAppointment(id)
	return nil
}

func (bc *bookingContext) appointmentIsBilledWith(id, description string, fee int64) error {
	bc.bill, bc.billErr = bc.registry.GenerateBill(id, []hospital.LineItem{
		{Description: description, Fee: fee},
	})
	return nil
}

func (bc *bookingContext) theBillTotalShouldBe(expected int64) error {
	if bc.billErr != nil {
		return fmt.Errorf("billing failed: %w", bc.billErr)
	}
	if bc.bill.Total != expected {
		return fmt.Errorf("expected total %d, got %d", expected, bc.bill.Total)
	}
	return nil
}

func (bc *bookingContext) theDoctorShouldHaveNoAvailableSlots() error {
	d, err := bc.registry.Doctor(bc.doctorID)
	if err != nil {
		return err
	}
	if slots := d.AvailableSlots(); len(slots) != 0 {
		return fmt.Errorf("expected no slots, got %v", slots)
	}
	return nil
}

func (bc *bookingContext) theDoctorShouldHaveTheSlot(raw string) error {
	date, at, err := splitSlot(raw)
	if err != nil {
		return err
	}
	d, err := bc.registry.Doctor(bc.doctorID)
	if err != nil {
		return err
	}
	if !d.IsAvailable(date, at) {
		return fmt.Errorf("expected %s to be available, got %v", raw, d.AvailableSlots())
	}
	return nil
}

func (bc *bookingContext) theCancellationShouldFail() error {
	if !errors.Is(bc.cancelErr, hospital.ErrAlreadyCanceled) {
		return fmt.Errorf("expected %v, got %v", hospital.ErrAlreadyCanceled, bc.cancelErr)
	}
	return nil
}

func (bc *bookingContext) billingShouldFail() error {
	if !errors.Is(bc.billErr, hospital.ErrNotConfirmed) {
		return fmt.Errorf("expected %v, got %v", hospital.ErrNotConfirmed, bc.billErr)
	}
	return nil
}
