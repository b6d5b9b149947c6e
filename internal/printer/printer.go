// Package printer renders registry data for the console.
package printer

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/dustin/go-humanize"

	"github.com/hackgods/clinic-registry/internal/hospital"
)

// Receipt prints an official receipt for the bill. The width follows the
// widest description and amount so columns always line up.
func Receipt(w io.Writer, hospitalName, currency string, b hospital.Bill) error {
	const hdrService = "Service"
	hdrAmount := fmt.Sprintf("Amount (%s)", currency)

	maxS := utf8.RuneCountInString(hdrService)
	maxA := utf8.RuneCountInString(hdrAmount)
	for _, it := range b.Items {
		maxS = max(maxS, utf8.RuneCountInString(it.Description))
		maxA = max(maxA, len(humanize.Comma(it.Fee)))
	}
	maxA = max(maxA, len(humanize.Comma(b.Total)))
	width := maxS + maxA + 5

	heavy := strings.Repeat("=", width)
	light := strings.Repeat("-", width)
	row := func(label, amount string) string {
		return padRight(label, maxS) + "   " + padLeft(amount, maxA) + "\n"
	}

	var sb strings.Builder
	sb.WriteString("\n" + heavy + "\n")
	sb.WriteString(center(hospitalName, width) + "\n")
	sb.WriteString(center("OFFICIAL RECEIPT", width) + "\n")
	sb.WriteString(heavy + "\n\n")

	fmt.Fprintf(&sb, "Appointment ID : %s\n", b.Appointment.ID)
	fmt.Fprintf(&sb, "Date/Time      : %s   %s\n", b.Appointment.Date, b.Appointment.Time)
	fmt.Fprintf(&sb, "Patient        : %s %s (%s)\n", b.Patient.FirstName, b.Patient.LastName, b.Patient.ID)
	fmt.Fprintf(&sb, "Doctor         : Dr. %s %s (%s)\n", b.Doctor.FirstName, b.Doctor.LastName, b.Doctor.ID)

	sb.WriteString(light + "\n")
	sb.WriteString(row(hdrService, hdrAmount))
	sb.WriteString(light + "\n")
	for _, it := range b.Items {
		sb.WriteString(row(it.Description, humanize.Comma(it.Fee)))
	}
	sb.WriteString(light + "\n")
	sb.WriteString(row("TOTAL", humanize.Comma(b.Total)))
	sb.WriteString(heavy + "\n\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

func PatientProfile(w io.Writer, p hospital.PatientProfile) error {
	var sb strings.Builder

	fmt.Fprintf(&sb, "\n--- Patient Profile [%s] ---\n", p.ID)
	fmt.Fprintf(&sb, "Name: %s | DOB: %s | Age: %d | Gender: %s\n", p.FullName(), p.DateOfBirth, p.Age, p.Gender)
	fmt.Fprintf(&sb, "Address          : %s\n", p.Address)
	fmt.Fprintf(&sb, "Telephone        : %s\n", p.Telephone)
	fmt.Fprintf(&sb, "Place of Birth   : %s\n", p.PlaceOfBirth)
	fmt.Fprintf(&sb, "Occupation       : %s\n", p.Occupation)
	fmt.Fprintf(&sb, "Employer         : %s\n", p.Employer)
	fmt.Fprintf(&sb, "Father's Name    : %s\n", p.FatherName)
	fmt.Fprintf(&sb, "Mother's Name    : %s\n", p.MotherName)
	fmt.Fprintf(&sb, "Ward             : %s\n", p.Ward)
	fmt.Fprintf(&sb, "Union Status     : %s\n", p.UnionStatus)
	fmt.Fprintf(&sb, "Religion         : %s\n", p.Religion)
	sb.WriteString("Next of Kin:\n")
	fmt.Fprintf(&sb, "  Name           : %s\n", p.NextOfKin.Name)
	fmt.Fprintf(&sb, "  Address        : %s\n", p.NextOfKin.Address)
	fmt.Fprintf(&sb, "  Relation       : %s\n", p.NextOfKin.Relation)
	fmt.Fprintf(&sb, "  Telephone      : %s\n\n", p.NextOfKin.Phone)

	if len(p.Bookings) == 0 {
		sb.WriteString("No appointments booked.\n\n")
	} else {
		sb.WriteString("Appointments:\n")
		for _, a := range p.Bookings {
			fmt.Fprintf(&sb, "  • %s: Dr. %s @ %s %s [%s]\n", a.ID, a.DoctorName, a.Date, a.Time, a.Status)
		}
		sb.WriteString("\n")
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// DoctorProfile prints the doctor followed by its open slots in order.
func DoctorProfile(w io.Writer, d hospital.Doctor) error {
	var sb strings.Builder

	fmt.Fprintf(&sb, "\n--- Doctor Profile [%s] ---\n", d.ID)
	fmt.Fprintf(&sb, "Name       : Dr. %s %s\n", d.FirstName, d.LastName)
	fmt.Fprintf(&sb, "Gender     : %s\n", d.Gender)
	fmt.Fprintf(&sb, "Speciality : %s\n\n", d.Speciality)

	sb.WriteString("Available Slots:\n")
	slots := d.AvailableSlots()
	if len(slots) == 0 {
		sb.WriteString("  • No slots available.\n\n")
	} else {
		for _, s := range slots {
			fmt.Fprintf(&sb, "  • %s %s\n", s.Date, s.Time)
		}
		sb.WriteString("\n")
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func Appointments(w io.Writer, list []hospital.AppointmentDetail) error {
	if len(list) == 0 {
		_, err := io.WriteString(w, "\nNo appointments scheduled.\n\n")
		return err
	}

	var sb strings.Builder
	sb.WriteString("\n--- All Appointments ---\n")
	for _, a := range list {
		fmt.Fprintf(&sb, "%s: Patient %s | Doctor %s | %s %s | %s\n",
			a.ID, a.PatientName, a.DoctorName, a.Date, a.Time, a.Status)
	}
	sb.WriteString("\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

func padRight(s string, n int) string {
	if pad := n - utf8.RuneCountInString(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}

func padLeft(s string, n int) string {
	if pad := n - utf8.RuneCountInString(s); pad > 0 {
		return strings.Repeat(" ", pad) + s
	}
	return s
}

func center(s string, width int) string {
	pad := width - utf8.RuneCountInString(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}
