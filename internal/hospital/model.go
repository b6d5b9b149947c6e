package hospital

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "Scheduled"
	StatusConfirmed AppointmentStatus = "Confirmed"
	StatusCanceled  AppointmentStatus = "Canceled"
)

// Person holds the fields shared by patients and doctors.
type Person struct {
	FirstName   string
	MiddleName  string
	LastName    string
	DateOfBirth string // YYYY-MM-DD, empty for doctors
	Age         int
	Gender      string
}

// FullName joins the non-empty name parts with single spaces.
func (p Person) FullName() string {
	return strings.Join(strings.Fields(p.FirstName+" "+p.MiddleName+" "+p.LastName), " ")
}

type NextOfKin struct {
	Name     string
	Address  string
	Relation string
	Phone    string
}

type Patient struct {
	Person
	ID           string
	Address      string
	Telephone    string
	PlaceOfBirth string
	Occupation   string
	Employer     string
	FatherName   string
	MotherName   string
	Ward         string
	UnionStatus  string
	Religion     string
	NextOfKin    NextOfKin
	Appointments []string // appointment IDs in booking order
	RegisteredAt time.Time
}

func (p Patient) clone() Patient {
	p.Appointments = append([]string(nil), p.Appointments...)
	return p
}

// Slot is a (date, time) pair a doctor offers for booking. Dates are
// YYYY-MM-DD and times HH:MM, so string order is chronological order.
type Slot struct {
	Date string
	Time string
}

func (s Slot) String() string {
	return s.Date + " " + s.Time
}

func (s Slot) less(o Slot) bool {
	if s.Date != o.Date {
		return s.Date < o.Date
	}
	return s.Time < o.Time
}

type Appointment struct {
	ID        string
	PatientID string
	DoctorID  string
	Date      string
	Time      string
	Status    AppointmentStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (a Appointment) Slot() Slot {
	return Slot{Date: a.Date, Time: a.Time}
}

// transition applies one of the two legal moves of the lifecycle:
// Scheduled -> Confirmed and Confirmed -> Canceled.
func (a *Appointment) transition(to AppointmentStatus, now time.Time) error {
	switch {
	case a.Status == StatusScheduled && to == StatusConfirmed:
	case a.Status == StatusConfirmed && to == StatusCanceled:
	case a.Status == StatusCanceled && to == StatusCanceled:
		return ErrAlreadyCanceled
	default:
		return ErrInvalidStatusTransition
	}
	a.Status = to
	a.UpdatedAt = now
	return nil
}

type AppointmentDetail struct {
	Appointment
	PatientName string
	DoctorName  string
}

// PatientProfile is a patient together with the appointments it booked,
// in booking order.
type PatientProfile struct {
	Patient
	Bookings []AppointmentDetail
}

type EventLog struct {
	ID        uuid.UUID
	EventType string
	EntityID  string
	Payload   []byte
	CreatedAt time.Time
}

// NewPatient carries already validated registration fields.
type NewPatient struct {
	FirstName       string
	MiddleName      string
	LastName        string
	DateOfBirth     string
	Age             int
	Gender          string
	Address         string
	Telephone       string
	PlaceOfBirth    string
	Occupation      string
	Employer        string
	FatherFirstName string
	FatherLastName  string
	MotherFirstName string
	MotherLastName  string
	Ward            string
	UnionStatus     string
	Religion        string
	NokFirstName    string
	NokLastName     string
	NokAddress      string
	NokRelation     string
	NokPhone        string
}

type NewDoctor struct {
	FirstName  string
	LastName   string
	Gender     string
	Speciality string
	Slots      []Slot
}

func joinName(first, last string) string {
	return strings.Join(strings.Fields(first+" "+last), " ")
}
