package seed

import (
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hackgods/clinic-registry/internal/config"
	"github.com/hackgods/clinic-registry/internal/hospital"
	"github.com/hackgods/clinic-registry/internal/validate"
)

var today = time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC)

func populate(t *testing.T, seed uint64, opts Options) (*hospital.Registry, Result) {
	t.Helper()
	r := hospital.NewRegistry(config.Default(), zerolog.Nop())
	res, err := Populate(r, gofakeit.New(seed), opts)
	require.NoError(t, err)
	return r, res
}

func TestPopulateRegistersEntities(t *testing.T) {
	r, res := populate(t, 7, Options{Patients: 6, Doctors: 3, SlotsPerDoctor: 5, Today: today})

	assert.Equal(t, []string{"P001", "P002", "P003", "P004", "P005", "P006"}, res.PatientIDs)
	assert.Equal(t, []string{"D001", "D002", "D003"}, res.DoctorIDs)
	assert.Empty(t, res.AppointmentIDs)

	for _, p := range r.Patients() {
		dob, err := validate.DateOfBirth(p.DateOfBirth)
		require.NoError(t, err)
		assert.NoError(t, validate.CheckAge(dob, p.Age, today), p.ID)
		_, err = validate.Phone(p.Telephone)
		assert.NoError(t, err, p.ID)
		assert.Contains(t, []string{"Male", "Female"}, p.Gender)
	}

	for _, d := range r.Doctors() {
		slots := d.AvailableSlots()
		assert.NotEmpty(t, slots)
		assert.LessOrEqual(t, len(slots), 5)
		for _, s := range slots {
			_, err := validate.Slot(s.String())
			require.NoError(t, err)
			assert.Greater(t, s.Date, today.Format(validate.DateLayout))
		}
		assert.Contains(t, specialities, d.Speciality)
	}
}

func TestPopulateBooksOpenSlots(t *testing.T) {
	r, res := populate(t, 11, Options{Patients: 4, Doctors: 2, SlotsPerDoctor: 6, Bookings: 5, Today: today})

	require.NotEmpty(t, res.AppointmentIDs)
	for _, id := range res.AppointmentIDs {
		appt, err := r.Appointment(id)
		require.NoError(t, err)
		assert.Equal(t, hospital.StatusConfirmed, appt.Status)

		d, err := r.Doctor(appt.DoctorID)
		require.NoError(t, err)
		assert.False(t, d.IsAvailable(appt.Date, appt.Time))
	}
}

func TestPopulateIsReproducible(t *testing.T) {
	opts := Options{Patients: 3, Doctors: 2, SlotsPerDoctor: 3, Today: today}
	a, _ := populate(t, 99, opts)
	b, _ := populate(t, 99, opts)

	for i, p := range a.Patients() {
		assert.Equal(t, p.FullName(), b.Patients()[i].FullName())
	}
	for i, d := range a.Doctors() {
		assert.Equal(t, d.AvailableSlots(), b.Doctors()[i].AvailableSlots())
	}
}

func TestPopulateWithoutDoctorsSkipsBookings(t *testing.T) {
	r, res := populate(t, 1, Options{Patients: 2, Bookings: 3, Today: today})

	assert.Len(t, res.PatientIDs, 2)
	assert.Empty(t, res.AppointmentIDs)
	assert.Empty(t, r.Appointments())
}
