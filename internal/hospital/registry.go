package hospital

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/hackgods/clinic-registry/internal/config"
	"github.com/hackgods/clinic-registry/internal/ids"
)

var (
	ErrPatientNotFound         = errors.New("patient not found")
	ErrDoctorNotFound          = errors.New("doctor not found")
	ErrAppointmentNotFound     = errors.New("appointment not found")
	ErrSlotUnavailable         = errors.New("doctor not available at that slot")
	ErrAlreadyCanceled         = errors.New("appointment already canceled")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
)

// Registry owns every patient, doctor and appointment of the clinic and is
// the only place their cross-entity invariants are enforced. All methods take
// the same mutex for their full duration, so booking and cancellation are
// observed either completely or not at all.
type Registry struct {
	mu  sync.Mutex
	ids *ids.Generator
	fee int64
	log zerolog.Logger
	now func() time.Time

	patients     map[string]*Patient
	patientOrder []string

	doctors     map[string]*Doctor
	doctorOrder []string

	appointments     map[string]*Appointment
	appointmentOrder []string

	events []EventLog
}

func NewRegistry(cfg config.Config, logger zerolog.Logger) *Registry {
	return &Registry{
		ids:          ids.NewGenerator(),
		fee:          cfg.ConsultationFee,
		log:          logger.With().Str("component", "registry").Logger(),
		now:          time.Now,
		patients:     make(map[string]*Patient),
		doctors:      make(map[string]*Doctor),
		appointments: make(map[string]*Appointment),
	}
}

// ConsultationFee is the fixed first line item of every bill.
func (r *Registry) ConsultationFee() int64 {
	return r.fee
}

// RegisterPatient stores a new patient and returns its ID. Inputs are
// expected to be validated already.
func (r *Registry) RegisterPatient(in NewPatient) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, err := r.ids.Next(ids.Patient)
	if err != nil {
		return "", fmt.Errorf("allocate patient id: %w", err)
	}

	p := &Patient{
		Person: Person{
			FirstName:   in.FirstName,
			MiddleName:  in.MiddleName,
			LastName:    in.LastName,
			DateOfBirth: in.DateOfBirth,
			Age:         in.Age,
			Gender:      in.Gender,
		},
		ID:           id,
		Address:      in.Address,
		Telephone:    in.Telephone,
		PlaceOfBirth: in.PlaceOfBirth,
		Occupation:   in.Occupation,
		Employer:     in.Employer,
		FatherName:   joinName(in.FatherFirstName, in.FatherLastName),
		MotherName:   joinName(in.MotherFirstName, in.MotherLastName),
		Ward:         in.Ward,
		UnionStatus:  in.UnionStatus,
		Religion:     in.Religion,
		NextOfKin: NextOfKin{
			Name:     joinName(in.NokFirstName, in.NokLastName),
			Address:  in.NokAddress,
			Relation: in.NokRelation,
			Phone:    in.NokPhone,
		},
		Appointments: []string{},
		RegisteredAt: r.now(),
	}

	r.patients[id] = p
	r.patientOrder = append(r.patientOrder, id)

	r.logEvent(id, EventPatientRegistered, map[string]any{
		"name": p.FullName(),
	})
	r.log.Info().
		Str("patient_id", id).
		Int("patients_issued", r.ids.Issued(ids.Patient)).
		Msg("patient registered")

	return id, nil
}

// RegisterDoctor stores a new doctor with its initial open slots. Duplicate
// slots collapse to one.
func (r *Registry) RegisterDoctor(in NewDoctor) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, err := r.ids.Next(ids.Doctor)
	if err != nil {
		return "", fmt.Errorf("allocate doctor id: %w", err)
	}

	d := newDoctor(id, in, r.now())
	r.doctors[id] = d
	r.doctorOrder = append(r.doctorOrder, id)

	r.logEvent(id, EventDoctorRegistered, map[string]any{
		"name":       d.FullName(),
		"speciality": d.Speciality,
		"slots":      len(d.slots),
	})
	r.log.Info().
		Str("doctor_id", id).
		Int("slots", len(d.slots)).
		Int("doctors_issued", r.ids.Issued(ids.Doctor)).
		Msg("doctor registered")

	return id, nil
}

// BookAppointment creates a confirmed appointment for the patient with the
// doctor at the given slot and takes the slot out of the doctor's schedule.
// Every precondition is checked before anything is changed.
func (r *Registry) BookAppointment(patientID, doctorID, date, at string) (Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	patient, ok := r.patients[patientID]
	if !ok {
		return Appointment{}, r.reject("book", fmt.Errorf("%w: %s", ErrPatientNotFound, patientID))
	}

	doctor, ok := r.doctors[doctorID]
	if !ok {
		return Appointment{}, r.reject("book", fmt.Errorf("%w: %s", ErrDoctorNotFound, doctorID))
	}

	if !doctor.IsAvailable(date, at) {
		return Appointment{}, r.reject("book", fmt.Errorf("%w: %s %s with %s", ErrSlotUnavailable, date, at, doctorID))
	}

	id, err := r.ids.Next(ids.Appointment)
	if err != nil {
		return Appointment{}, fmt.Errorf("allocate appointment id: %w", err)
	}

	now := r.now()
	appt := &Appointment{
		ID:        id,
		PatientID: patientID,
		DoctorID:  doctorID,
		Date:      date,
		Time:      at,
		Status:    StatusScheduled,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := appt.transition(StatusConfirmed, now); err != nil {
		return Appointment{}, fmt.Errorf("confirm appointment: %w", err)
	}
	if err := doctor.Reserve(date, at); err != nil {
		return Appointment{}, r.reject("book", err)
	}

	r.appointments[id] = appt
	r.appointmentOrder = append(r.appointmentOrder, id)
	patient.Appointments = append(patient.Appointments, id)

	r.logEvent(id, EventAppointmentConfirmed, map[string]any{
		"patient_id": patientID,
		"doctor_id":  doctorID,
		"slot":       appt.Slot().String(),
	})
	r.log.Info().
		Str("appointment_id", id).
		Str("patient_id", patientID).
		Str("doctor_id", doctorID).
		Str("slot", appt.Slot().String()).
		Msg("appointment confirmed")

	return *appt, nil
}

// CancelAppointment cancels a confirmed appointment and gives the slot back
// to the doctor. Cancelling twice is an error.
func (r *Registry) CancelAppointment(appointmentID string) (Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	appt, ok := r.appointments[appointmentID]
	if !ok {
		return Appointment{}, r.reject("cancel", fmt.Errorf("%w: %s", ErrAppointmentNotFound, appointmentID))
	}

	doctor, ok := r.doctors[appt.DoctorID]
	if !ok {
		return Appointment{}, fmt.Errorf("%w: %s", ErrDoctorNotFound, appt.DoctorID)
	}

	if err := appt.transition(StatusCanceled, r.now()); err != nil {
		return Appointment{}, r.reject("cancel", fmt.Errorf("%s: %w", appointmentID, err))
	}
	doctor.Release(appt.Date, appt.Time)

	r.logEvent(appointmentID, EventAppointmentCanceled, map[string]any{
		"doctor_id": appt.DoctorID,
		"slot":      appt.Slot().String(),
	})
	r.log.Info().Str("appointment_id", appointmentID).Msg("appointment canceled")

	return *appt, nil
}

func (r *Registry) Patient(id string) (Patient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.patients[id]
	if !ok {
		return Patient{}, fmt.Errorf("%w: %s", ErrPatientNotFound, id)
	}
	return p.clone(), nil
}

func (r *Registry) Doctor(id string) (Doctor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	d, ok := r.doctors[id]
	if !ok {
		return Doctor{}, fmt.Errorf("%w: %s", ErrDoctorNotFound, id)
	}
	return d.clone(), nil
}

func (r *Registry) Appointment(id string) (Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.appointments[id]
	if !ok {
		return Appointment{}, fmt.Errorf("%w: %s", ErrAppointmentNotFound, id)
	}
	return *a, nil
}

// PatientProfile returns the patient with each of its appointments resolved
// against the doctor that holds it.
func (r *Registry) PatientProfile(id string) (PatientProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.patients[id]
	if !ok {
		return PatientProfile{}, fmt.Errorf("%w: %s", ErrPatientNotFound, id)
	}

	profile := PatientProfile{
		Patient:  p.clone(),
		Bookings: make([]AppointmentDetail, 0, len(p.Appointments)),
	}
	for _, apptID := range p.Appointments {
		if a, ok := r.appointments[apptID]; ok {
			profile.Bookings = append(profile.Bookings, r.detail(a))
		}
	}
	return profile, nil
}

// Patients lists patients in registration order.
func (r *Registry) Patients() []Patient {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Patient, 0, len(r.patientOrder))
	for _, id := range r.patientOrder {
		out = append(out, r.patients[id].clone())
	}
	return out
}

// Doctors lists doctors in registration order.
func (r *Registry) Doctors() []Doctor {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Doctor, 0, len(r.doctorOrder))
	for _, id := range r.doctorOrder {
		out = append(out, r.doctors[id].clone())
	}
	return out
}

// Appointments lists every appointment, canceled ones included, in booking
// order.
func (r *Registry) Appointments() []AppointmentDetail {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]AppointmentDetail, 0, len(r.appointmentOrder))
	for _, id := range r.appointmentOrder {
		out = append(out, r.detail(r.appointments[id]))
	}
	return out
}

func (r *Registry) detail(a *Appointment) AppointmentDetail {
	d := AppointmentDetail{Appointment: *a}
	if p, ok := r.patients[a.PatientID]; ok {
		d.PatientName = joinName(p.FirstName, p.LastName)
	}
	if doc, ok := r.doctors[a.DoctorID]; ok {
		d.DoctorName = joinName(doc.FirstName, doc.LastName)
	}
	return d
}

func (r *Registry) reject(op string, err error) error {
	r.log.Warn().Err(err).Str("op", op).Msg("operation rejected")
	return err
}
