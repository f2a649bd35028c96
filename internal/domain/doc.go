// Package domain contains the core domain model for the clinic.
//
// The domain is transport- and persistence-agnostic: it does not depend on YAML parsing,
// SQL, or the filesystem. Infra/adapters map into/from these types.
//
// Patients book time with a Practitioner at a Clinic. A Booking reserves a slot and is
// validated against the clinic hours and the booking rules; an Appointment is created from a
// confirmed Booking.
package domain
