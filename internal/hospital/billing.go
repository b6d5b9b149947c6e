package hospital

import (
	"errors"
	"fmt"
)

const ConsultationFeeDescription = "Consultation Fee"

var (
	ErrNotConfirmed = errors.New("only confirmed appointments can be billed")
	ErrNegativeFee  = errors.New("line item fee must not be negative")
)

type LineItem struct {
	Description string
	Fee         int64
}

// Bill is the structured result of GenerateBill; rendering is left to the
// printer package.
type Bill struct {
	Appointment Appointment
	Patient     Patient
	Doctor      Doctor
	Items       []LineItem
	Total       int64
}

// CheckBillable reports whether GenerateBill would accept the appointment,
// without pricing it or logging a bill.
func (r *Registry) CheckBillable(appointmentID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.billable(appointmentID)
	return err
}

func (r *Registry) billable(appointmentID string) (*Appointment, error) {
	appt, ok := r.appointments[appointmentID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrAppointmentNotFound, appointmentID)
	}
	if appt.Status != StatusConfirmed {
		return nil, fmt.Errorf("%w: %s is %s", ErrNotConfirmed, appointmentID, appt.Status)
	}
	return appt, nil
}

// GenerateBill prices a confirmed appointment: the consultation fee followed
// by every extra item in the order given. It does not change any state.
func (r *Registry) GenerateBill(appointmentID string, extras []LineItem) (Bill, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	appt, err := r.billable(appointmentID)
	if err != nil {
		return Bill{}, r.reject("bill", err)
	}

	items := make([]LineItem, 0, len(extras)+1)
	items = append(items, LineItem{Description: ConsultationFeeDescription, Fee: r.fee})
	for _, it := range extras {
		if it.Fee < 0 {
			return Bill{}, r.reject("bill", fmt.Errorf("%w: %q costs %d", ErrNegativeFee, it.Description, it.Fee))
		}
		items = append(items, it)
	}

	var total int64
	for _, it := range items {
		total += it.Fee
	}

	bill := Bill{
		Appointment: *appt,
		Items:       items,
		Total:       total,
	}
	if p, ok := r.patients[appt.PatientID]; ok {
		bill.Patient = p.clone()
	}
	if d, ok := r.doctors[appt.DoctorID]; ok {
		bill.Doctor = d.clone()
	}

	r.log.Debug().
		Str("appointment_id", appointmentID).
		Int("items", len(items)).
		Int64("total", total).
		Msg("bill generated")

	return bill, nil
}
