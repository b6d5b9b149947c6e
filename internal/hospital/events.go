package hospital

import (
	"encoding/json"

	"github.com/google/uuid"
)

const (
	EventPatientRegistered    = "PATIENT_REGISTERED"
	EventDoctorRegistered     = "DOCTOR_REGISTERED"
	EventAppointmentConfirmed = "APPOINTMENT_CONFIRMED"
	EventAppointmentCanceled  = "APPOINTMENT_CANCELED"
)

// logEvent appends to the audit trail. Callers hold r.mu.
func (r *Registry) logEvent(entityID, eventType string, payload map[string]any) {
	data, err := json.Marshal(payload)
	if err != nil {
		r.log.Error().Err(err).Str("event", eventType).Msg("failed to marshal event payload")
		data = nil
	}

	r.events = append(r.events, EventLog{
		ID:        uuid.New(),
		EventType: eventType,
		EntityID:  entityID,
		Payload:   data,
		CreatedAt: r.now(),
	})

	ev := r.log.Debug().Str("event", eventType).Str("entity_id", entityID)
	if len(data) > 0 {
		ev = ev.RawJSON("payload", data)
	}
	ev.Msg("event recorded")
}

// Events returns the audit trail in the order events happened.
func (r *Registry) Events() []EventLog {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]EventLog, len(r.events))
	copy(out, r.events)
	return out
}
