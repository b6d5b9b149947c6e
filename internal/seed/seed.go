// Package seed fills a registry with fake patients, doctors and bookings for
// demos and manual testing.
package seed

import (
	"errors"
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/hackgods/clinic-registry/internal/hospital"
	"github.com/hackgods/clinic-registry/internal/validate"
)

var specialities = []string{
	"Dermatology",
	"Cardiology",
	"General Practice",
	"Orthopedics",
	"Endocrinology",
	"Neurology",
	"Pediatrics",
	"Psychiatry",
	"Ophthalmology",
	"ENT",
}

var (
	wards        = []string{"A", "B", "C", "Maternity", "Pediatric"}
	unionStatus  = []string{"Single", "Married", "Common-law", "Divorced", "Widowed"}
	religions    = []string{"Anglican", "Baptist", "Catholic", "Seventh-day Adventist", "None"}
	nokRelations = []string{"Mother", "Father", "Sibling", "Spouse", "Friend"}
	slotTimes    = []string{"08:00", "08:30", "09:00", "10:00", "11:30", "13:00", "14:30", "16:00"}
)

type Options struct {
	Patients       int
	Doctors        int
	SlotsPerDoctor int
	Bookings       int       // booking attempts against random open slots
	Today          time.Time // reference date for ages and schedules
}

type Result struct {
	PatientIDs     []string
	DoctorIDs      []string
	AppointmentIDs []string
}

// Populate registers fake entities through the registry's public operations
// so every invariant applies exactly as for real input.
func Populate(r *hospital.Registry, f *gofakeit.Faker, opts Options) (Result, error) {
	var res Result
	today := opts.Today
	if today.IsZero() {
		today = time.Now()
	}

	for i := 0; i < opts.Doctors; i++ {
		id, err := r.RegisterDoctor(fakeDoctor(f, opts.SlotsPerDoctor, today))
		if err != nil {
			return res, fmt.Errorf("seed doctor %d: %w", i+1, err)
		}
		res.DoctorIDs = append(res.DoctorIDs, id)
	}

	for i := 0; i < opts.Patients; i++ {
		id, err := r.RegisterPatient(fakePatient(f, today))
		if err != nil {
			return res, fmt.Errorf("seed patient %d: %w", i+1, err)
		}
		res.PatientIDs = append(res.PatientIDs, id)
	}

	if len(res.PatientIDs) == 0 || len(res.DoctorIDs) == 0 {
		return res, nil
	}

	for i := 0; i < opts.Bookings; i++ {
		pid := f.RandomString(res.PatientIDs)
		did := f.RandomString(res.DoctorIDs)

		d, err := r.Doctor(did)
		if err != nil {
			return res, fmt.Errorf("seed booking %d: %w", i+1, err)
		}
		open := d.AvailableSlots()
		if len(open) == 0 {
			continue
		}
		slot := open[f.Number(0, len(open)-1)]

		appt, err := r.BookAppointment(pid, did, slot.Date, slot.Time)
		if errors.Is(err, hospital.ErrSlotUnavailable) {
			continue
		}
		if err != nil {
			return res, fmt.Errorf("seed booking %d: %w", i+1, err)
		}
		res.AppointmentIDs = append(res.AppointmentIDs, appt.ID)
	}

	return res, nil
}

func fakeDoctor(f *gofakeit.Faker, slots int, today time.Time) hospital.NewDoctor {
	d := hospital.NewDoctor{
		FirstName:  f.FirstName(),
		LastName:   f.LastName(),
		Gender:     gender(f),
		Speciality: f.RandomString(specialities),
	}
	for i := 0; i < slots; i++ {
		day := today.AddDate(0, 0, f.Number(1, 14))
		d.Slots = append(d.Slots, hospital.Slot{
			Date: day.Format(validate.DateLayout),
			Time: f.RandomString(slotTimes),
		})
	}
	return d
}

func fakePatient(f *gofakeit.Faker, today time.Time) hospital.NewPatient {
	dob := f.DateRange(today.AddDate(-90, 0, 0), today.AddDate(0, 0, -1))
	lastName := f.LastName()

	return hospital.NewPatient{
		FirstName:       f.FirstName(),
		MiddleName:      f.FirstName(),
		LastName:        lastName,
		DateOfBirth:     dob.Format(validate.DateLayout),
		Age:             validate.AgeOn(dob, today),
		Gender:          gender(f),
		Address:         f.Street() + ", " + f.City(),
		Telephone:       f.Phone(),
		PlaceOfBirth:    f.City(),
		Occupation:      f.JobTitle(),
		Employer:        f.Company(),
		FatherFirstName: f.FirstName(),
		FatherLastName:  lastName,
		MotherFirstName: f.FirstName(),
		MotherLastName:  f.LastName(),
		Ward:            f.RandomString(wards),
		UnionStatus:     f.RandomString(unionStatus),
		Religion:        f.RandomString(religions),
		NokFirstName:    f.FirstName(),
		NokLastName:     lastName,
		NokAddress:      f.Street() + ", " + f.City(),
		NokRelation:     f.RandomString(nokRelations),
		NokPhone:        f.Phone(),
	}
}

func gender(f *gofakeit.Faker) string {
	if f.Gender() == "female" {
		return "Female"
	}
	return "Male"
}
