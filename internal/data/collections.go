// Package data binds each domain collection to its storage key. Handlers,
// the seeder, and the session layer all share one Collections value so every
// consumer reads and writes the same keys with the same normalization.
package data

import (
	"github.com/praneeth-grandhi/Hostel-Management/internal/models"
	"github.com/praneeth-grandhi/Hostel-Management/internal/store"
)

// Storage key suffixes. The _vN suffixes are historical shape-migration
// markers carried over from earlier record layouts; changing them orphans
// existing data, so they stay.
const (
	KeyOwners        = "owners"
	KeyHostels       = "hostels"
	KeyRooms         = "rooms_v4"
	KeyBookings      = "bookings_v1"
	KeyStays         = "bookings"
	KeyComplaints    = "complaints"
	KeyNotifications = "notifications"
	KeyMyHostel      = "myHostel"
	KeyProfile       = "userProfile"
	KeyAuth          = "auth"
	KeySeedMarker    = "seeded"
)

// Collections is the typed repository set over one Store.
type Collections struct {
	Owners        *store.Collection[models.Owner]
	Hostels       *store.Collection[models.Hostel]
	Rooms         *store.Collection[models.Room]
	Bookings      *store.Collection[models.Booking]
	Stays         *store.Collection[models.StayBooking]
	Complaints    *store.Collection[models.Complaint]
	Notifications *store.Collection[models.Notification]
}

// NewCollections wires every collection to its key on st.
func NewCollections(st *store.Store) *Collections {
	c := &Collections{
		Owners:        store.NewCollection[models.Owner](st, KeyOwners),
		Hostels:       store.NewCollection[models.Hostel](st, KeyHostels),
		Rooms:         store.NewCollection[models.Room](st, KeyRooms),
		Bookings:      store.NewCollection[models.Booking](st, KeyBookings),
		Stays:         store.NewCollection[models.StayBooking](st, KeyStays),
		Complaints:    store.NewCollection[models.Complaint](st, KeyComplaints),
		Notifications: store.NewCollection[models.Notification](st, KeyNotifications),
	}
	c.Hostels.Normalize = models.NormalizeHostel
	return c
}
