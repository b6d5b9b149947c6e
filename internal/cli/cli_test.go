package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hackgods/clinic-registry/internal/hospital"
	"github.com/hackgods/clinic-registry/internal/validate"
)

func TestParseSchedule(t *testing.T) {
	slots, err := parseSchedule("2025-06-01 09:00\n\n  2025-06-02 14:30  \n2025-06-01 09:00\n")
	require.NoError(t, err)
	assert.Equal(t, []hospital.Slot{
		{Date: "2025-06-01", Time: "09:00"},
		{Date: "2025-06-02", Time: "14:30"},
		{Date: "2025-06-01", Time: "09:00"},
	}, slots)

	empty, err := parseSchedule("   ")
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = parseSchedule("2025-06-01 09:00\n2025-06-02")
	assert.ErrorIs(t, err, validate.ErrSlotFormat)
	assert.Contains(t, err.Error(), "line 2")
}

func validPatientForm() patientForm {
	return patientForm{
		first:       " Kerry-Ann ",
		middle:      "Marie",
		last:        "Campbell",
		dob:         "1990-03-14",
		age:         "35",
		phone:       "8765551234",
		fatherFirst: "Winston",
		fatherLast:  "Campbell",
		motherFirst: "Beverley",
		motherLast:  "Campbell",
		nokFirst:    "Dwayne",
		nokLast:     "Campbell",
		nokPhone:    "8765554321",
		ward:        " B ",
	}
}

var formToday = time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC)

func TestPatientFormToNewPatient(t *testing.T) {
	in, err := validPatientForm().toNewPatient(formToday)
	require.NoError(t, err)
	assert.Equal(t, "Kerry-Ann", in.FirstName)
	assert.Equal(t, 35, in.Age)
	assert.Equal(t, "1990-03-14", in.DateOfBirth)
	assert.Equal(t, "B", in.Ward)
	assert.Equal(t, "8765554321", in.NokPhone)
}

func TestPatientFormRejectsBadInput(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(f *patientForm)
		wantErr error
	}{
		{"short nok phone", func(f *patientForm) { f.nokPhone = "123" }, validate.ErrPhone},
		{"age not a number", func(f *patientForm) { f.age = "thirty" }, validate.ErrNotNumber},
		{"age stale after dob edit", func(f *patientForm) { f.age = "7" }, validate.ErrAgeMismatch},
		{"dob changed after age", func(f *patientForm) { f.dob = "2000-01-01" }, validate.ErrAgeMismatch},
		{"numeric father name", func(f *patientForm) { f.fatherFirst = "1" }, validate.ErrNotAlpha},
		{"blank mother name", func(f *patientForm) { f.motherLast = "  " }, validate.ErrNotAlpha},
		{"digits in first name", func(f *patientForm) { f.first = "K3rry" }, validate.ErrNotAlpha},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validPatientForm()
			tt.mutate(&f)
			_, err := f.toNewPatient(formToday)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCheckAdapter(t *testing.T) {
	fn := check(validate.Phone)
	assert.NoError(t, fn("8765551234"))
	assert.ErrorIs(t, fn("12"), validate.ErrPhone)
}
