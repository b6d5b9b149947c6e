package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/hackgods/clinic-registry/internal/hospital"
	"github.com/hackgods/clinic-registry/internal/printer"
	"github.com/hackgods/clinic-registry/internal/validate"
)

// check adapts a validator to huh's Validate signature.
func check[T any](fn func(string) (T, error)) func(string) error {
	return func(s string) error {
		_, err := fn(s)
		return err
	}
}

func (a *App) patientMenu() error {
	for {
		choice, err := a.submenu("Patient Management",
			huh.NewOption("Register New Patient", "register"),
			huh.NewOption("View Patient Profile", "view"),
		)
		if err != nil {
			return err
		}

		switch choice {
		case "register":
			err = a.registerPatient()
		case "view":
			err = a.viewPatient()
		case menuBack:
			return nil
		}
		if err != nil {
			return err
		}
	}
}

type patientForm struct {
	first, middle, last                   string
	dob, age, gender                      string
	address, phone, pob                   string
	occupation, employer                  string
	ward, union, religion                 string
	fatherFirst, fatherLast               string
	motherFirst, motherLast               string
	nokFirst, nokLast, nokAddress, nokRel string
	nokPhone                              string
}

func (a *App) registerPatient() error {
	var f patientForm

	ageCheck := func(s string) error {
		age, err := validate.NonNegativeInt(s)
		if err != nil {
			return err
		}
		dob, err := validate.DateOfBirth(f.dob)
		if err != nil {
			return err
		}
		return validate.CheckAge(dob, age, a.today())
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("First Name").Value(&f.first).Validate(check(validate.Name)),
			huh.NewInput().Title("Middle Name").Value(&f.middle).Validate(check(validate.Name)),
			huh.NewInput().Title("Last Name").Value(&f.last).Validate(check(validate.Name)),
			huh.NewInput().Title("Date of Birth").Description("YYYY-MM-DD").Value(&f.dob).Validate(check(validate.DateOfBirth)),
			huh.NewInput().Title("Age").Value(&f.age).Validate(ageCheck),
			huh.NewInput().Title("Gender").Value(&f.gender),
		).Title("Register New Patient"),
		huh.NewGroup(
			huh.NewInput().Title("Address").Value(&f.address),
			huh.NewInput().Title("Telephone Number").Value(&f.phone).Validate(check(validate.Phone)),
			huh.NewInput().Title("Place of Birth").Value(&f.pob),
			huh.NewInput().Title("Occupation").Value(&f.occupation),
			huh.NewInput().Title("Employer").Value(&f.employer),
			huh.NewInput().Title("Ward").Value(&f.ward),
			huh.NewInput().Title("Union Status").Value(&f.union),
			huh.NewInput().Title("Religion").Value(&f.religion),
		).Title("Contact & Social"),
		huh.NewGroup(
			huh.NewInput().Title("Father's First Name").Value(&f.fatherFirst).Validate(check(validate.Name)),
			huh.NewInput().Title("Father's Last Name").Value(&f.fatherLast).Validate(check(validate.Name)),
			huh.NewInput().Title("Mother's First Name").Value(&f.motherFirst).Validate(check(validate.Name)),
			huh.NewInput().Title("Mother's Last Name").Value(&f.motherLast).Validate(check(validate.Name)),
		).Title("Parental Details"),
		huh.NewGroup(
			huh.NewInput().Title("NOK First Name").Value(&f.nokFirst).Validate(check(validate.Name)),
			huh.NewInput().Title("NOK Last Name").Value(&f.nokLast).Validate(check(validate.Name)),
			huh.NewInput().Title("NOK Address").Value(&f.nokAddress),
			huh.NewInput().Title("NOK Relation").Value(&f.nokRel),
			huh.NewInput().Title("NOK Telephone No.").Value(&f.nokPhone).Validate(check(validate.Phone)),
		).Title("Next of Kin (NOK) Details"),
	)
	if err := form.Run(); err != nil {
		return err
	}

	in, err := f.toNewPatient(a.today())
	if err != nil {
		a.report(err)
		return nil
	}

	id, err := a.reg.RegisterPatient(in)
	if err != nil {
		a.report(err)
		return nil
	}
	a.success(fmt.Sprintf("Patient registered. Patient ID: %s", id))
	return nil
}

// toNewPatient runs the validators once more on submit; huh only validates
// fields the user visited, and the age check may have seen an older DOB.
func (f patientForm) toNewPatient(today time.Time) (hospital.NewPatient, error) {
	names := []*string{
		&f.first, &f.middle, &f.last,
		&f.fatherFirst, &f.fatherLast,
		&f.motherFirst, &f.motherLast,
		&f.nokFirst, &f.nokLast,
	}
	for _, n := range names {
		v, err := validate.Name(*n)
		if err != nil {
			return hospital.NewPatient{}, fmt.Errorf("%w: %q", err, *n)
		}
		*n = v
	}

	dob, err := validate.DateOfBirth(f.dob)
	if err != nil {
		return hospital.NewPatient{}, err
	}
	age, err := validate.NonNegativeInt(f.age)
	if err != nil {
		return hospital.NewPatient{}, err
	}
	if err := validate.CheckAge(dob, age, today); err != nil {
		return hospital.NewPatient{}, err
	}
	phone, err := validate.Phone(f.phone)
	if err != nil {
		return hospital.NewPatient{}, err
	}
	nokPhone, err := validate.Phone(f.nokPhone)
	if err != nil {
		return hospital.NewPatient{}, err
	}

	return hospital.NewPatient{
		FirstName:       f.first,
		MiddleName:      f.middle,
		LastName:        f.last,
		DateOfBirth:     dob.Format(validate.DateLayout),
		Age:             age,
		Gender:          strings.TrimSpace(f.gender),
		Address:         strings.TrimSpace(f.address),
		Telephone:       phone,
		PlaceOfBirth:    strings.TrimSpace(f.pob),
		Occupation:      strings.TrimSpace(f.occupation),
		Employer:        strings.TrimSpace(f.employer),
		FatherFirstName: f.fatherFirst,
		FatherLastName:  f.fatherLast,
		MotherFirstName: f.motherFirst,
		MotherLastName:  f.motherLast,
		Ward:            strings.TrimSpace(f.ward),
		UnionStatus:     strings.TrimSpace(f.union),
		Religion:        strings.TrimSpace(f.religion),
		NokFirstName:    f.nokFirst,
		NokLastName:     f.nokLast,
		NokAddress:      strings.TrimSpace(f.nokAddress),
		NokRelation:     strings.TrimSpace(f.nokRel),
		NokPhone:        nokPhone,
	}, nil
}

func (a *App) viewPatient() error {
	var id string
	if err := huh.NewInput().Title("Patient ID").Value(&id).Run(); err != nil {
		return err
	}

	profile, err := a.reg.PatientProfile(strings.TrimSpace(id))
	if err != nil {
		a.report(err)
		return nil
	}
	return printer.PatientProfile(a.out, profile)
}
