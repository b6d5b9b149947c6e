package hospital

import (
	"fmt"
	"sort"
	"time"
)

type Doctor struct {
	Person
	ID           string
	Speciality   string
	RegisteredAt time.Time

	slots map[Slot]struct{}
}

func newDoctor(id string, in NewDoctor, now time.Time) *Doctor {
	d := &Doctor{
		Person: Person{
			FirstName: in.FirstName,
			LastName:  in.LastName,
			Gender:    in.Gender,
		},
		ID:           id,
		Speciality:   in.Speciality,
		RegisteredAt: now,
		slots:        make(map[Slot]struct{}, len(in.Slots)),
	}
	for _, s := range in.Slots {
		d.slots[s] = struct{}{}
	}
	return d
}

// IsAvailable reports whether the slot is currently open for booking.
func (d *Doctor) IsAvailable(date, at string) bool {
	_, ok := d.slots[Slot{Date: date, Time: at}]
	return ok
}

// Reserve takes the slot out of the available set.
func (d *Doctor) Reserve(date, at string) error {
	s := Slot{Date: date, Time: at}
	if _, ok := d.slots[s]; !ok {
		return fmt.Errorf("%w: %s with %s", ErrSlotUnavailable, s, d.ID)
	}
	delete(d.slots, s)
	return nil
}

// Release puts the slot back. Releasing an open slot is a no-op.
func (d *Doctor) Release(date, at string) {
	if d.slots == nil {
		d.slots = make(map[Slot]struct{})
	}
	d.slots[Slot{Date: date, Time: at}] = struct{}{}
}

// AvailableSlots returns the open slots ordered by date, then time.
func (d *Doctor) AvailableSlots() []Slot {
	out := make([]Slot, 0, len(d.slots))
	for s := range d.slots {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].less(out[j])
	})
	return out
}

func (d *Doctor) clone() Doctor {
	c := *d
	c.slots = make(map[Slot]struct{}, len(d.slots))
	for s := range d.slots {
		c.slots[s] = struct{}{}
	}
	return c
}
