// Package seed populates the baseline demo dataset exactly once per storage
// lifetime.
//
// Earlier revisions of the system seeded per page ("if the stored collection
// is empty, write sample rows"), which made an intentionally emptied
// collection indistinguishable from one that was never seeded — deleting
// every record brought the demo rows back on the next load. Consolidating on
// a single marker-guarded pass makes those two states distinct: once the
// "seeded" marker exists, nothing is rewritten unless the caller forces it.
package seed

import (
	"time"

	"github.com/praneeth-grandhi/Hostel-Management/internal/data"
	"github.com/praneeth-grandhi/Hostel-Management/internal/models"
	"github.com/praneeth-grandhi/Hostel-Management/internal/store"
)

// Seed result statuses.
const (
	StatusSkipped = "skipped"
	StatusSeeded  = "seeded"
)

// seededBy is recorded in the marker so stored data shows which code path
// wrote it.
const seededBy = "seed.Manager"

// Pre-determined ids keep the seed stable across runs and let demos refer to
// known records.
const (
	OwnerRahulID = "owner_1"
	OwnerAnitaID = "owner_2"
	OwnerKaranID = "owner_3"

	HostelGreenValleyID = "hostel_1"
	HostelSunriseID     = "hostel_2"
)

// DemoPassword is the password every seeded owner account accepts. It is
// run through the Manager's hash function before storing.
const DemoPassword = "DemoPass123!"

// Result reports what a Seed call did. Counts is keyed by collection name
// and empty when the call was skipped.
type Result struct {
	Status string         `json:"status"`
	Counts map[string]int `json:"counts,omitempty"`
}

// Manager writes the default dataset for every managed collection, guarded
// by the seed marker.
type Manager struct {
	store *store.Store
	cols  *data.Collections

	// hash turns a demo password into its stored form. Injected so tests
	// can avoid bcrypt's cost; defaults to bcrypt in NewManager's caller.
	hash func(string) string
}

// NewManager returns a Manager seeding through cols. hash is applied to each
// demo owner's password before storing; pass the bcrypt helper from the
// composition root.
func NewManager(st *store.Store, cols *data.Collections, hash func(string) string) *Manager {
	if hash == nil {
		hash = func(p string) string { return p }
	}
	return &Manager{store: st, cols: cols, hash: hash}
}

// Seed performs the one-time population. With force false it is idempotent:
// if the marker exists nothing is read or written beyond the marker check.
// With force true the managed collections are overwritten back to the
// default dataset and the marker timestamp is refreshed.
func (m *Manager) Seed(force bool) Result {
	var marker models.SeedMarker
	if m.store.Get(data.KeySeedMarker, &marker) && !force {
		return Result{Status: StatusSkipped}
	}

	now := time.Now().UTC()
	owners := m.defaultOwners(now)
	hostels := defaultHostels(now)
	rooms := defaultRooms()
	bookings := defaultBookings(now)
	stays := defaultStays(now)
	complaints := defaultComplaints()
	notifications := defaultNotifications(now)

	m.cols.Owners.SaveAll(owners)
	m.cols.Hostels.SaveAll(hostels)
	m.cols.Rooms.SaveAll(rooms)
	m.cols.Bookings.SaveAll(bookings)
	m.cols.Stays.SaveAll(stays)
	m.cols.Complaints.SaveAll(complaints)
	m.cols.Notifications.SaveAll(notifications)
	m.store.Set(data.KeyMyHostel, defaultMyHostel(now))

	m.store.Set(data.KeySeedMarker, models.SeedMarker{At: now, By: seededBy})

	return Result{
		Status: StatusSeeded,
		Counts: map[string]int{
			data.KeyOwners:        len(owners),
			data.KeyHostels:       len(hostels),
			data.KeyRooms:         len(rooms),
			data.KeyBookings:      len(bookings),
			data.KeyStays:         len(stays),
			data.KeyComplaints:    len(complaints),
			data.KeyNotifications: len(notifications),
		},
	}
}

func (m *Manager) defaultOwners(now time.Time) []models.Owner {
	hash := m.hash(DemoPassword)
	return []models.Owner{
		{
			ID: OwnerRahulID, Role: models.OwnerRoleOwner,
			FirstName: "Rahul", LastName: "Sharma", DisplayName: "Rahul S.",
			Bio:   "Hostel owner with 5 years experience",
			Email: "rahul.sharma@example.com", Phone: "+919876543210",
			PasswordHash: hash, Documents: []string{}, CreatedAt: now,
		},
		{
			ID: OwnerAnitaID, Role: models.OwnerRoleOwner,
			FirstName: "Anita", LastName: "Verma", DisplayName: "Anita V.",
			Bio:   "Manager / co-owner",
			Email: "anita.verma@example.com", Phone: "+919812345678",
			PasswordHash: hash, Documents: []string{}, CreatedAt: now,
		},
		{
			ID: OwnerKaranID, Role: models.OwnerRoleOwner,
			FirstName: "Karan", LastName: "Patel", DisplayName: "Karan P.",
			Bio:   "Co-owner and operations",
			Email: "karan.patel@example.com", Phone: "+919800112233",
			PasswordHash: hash, Documents: []string{}, CreatedAt: now,
		},
	}
}

func defaultHostels(now time.Time) []models.Hostel {
	return []models.Hostel{
		{
			ID: HostelGreenValleyID, Name: "Green Valley Hostel",
			Address:      "12 MG Road, Cityville",
			ContactPhone: "+91 98765 43210", ContactEmail: "green@hostel.example",
			TotalRooms: 24, Floors: 3, BusinessHours: "9:00 - 21:00",
			Description: "Cozy hostel with WiFi and meals included.",
			Amenities:   models.Amenities{"WiFi", "Laundry", "Meals", "Parking"},
			Owners:      []string{OwnerRahulID},
			Status:      models.HostelStatusActive, CreatedAt: now,
		},
		{
			ID: HostelSunriseID, Name: "Sunrise PG & Suites",
			Address:      "45 Park Street, Townsville",
			ContactPhone: "+91 91234 56789", ContactEmail: "sunrise@pg.example",
			TotalRooms: 40, Floors: 4, BusinessHours: "8:00 - 22:00",
			Description: "Budget-friendly paying guest accommodations.",
			Amenities:   models.Amenities{"WiFi", "Water Tank", "Parking"},
			Owners:      []string{OwnerAnitaID, OwnerKaranID},
			Status:      models.HostelStatusActive, CreatedAt: now,
		},
	}
}

func defaultRooms() []models.Room {
	return []models.Room{
		{
			ID: "r1", Code: "101", Name: "Room 101", Floor: 1,
			Type: models.RoomTypeSingle, Rent: 6000, Status: models.RoomStatusAvailable,
			Features: models.RoomFeatures{AC: true, WaterHeater: true},
		},
		{
			ID: "r2", Code: "102", Name: "Room 102", Floor: 1,
			Type: models.RoomTypeDouble, Rent: 9000, Status: models.RoomStatusOccupied,
			Features: models.RoomFeatures{AC: true, TV: true, WaterHeater: true},
		},
		{
			ID: "r3", Code: "201", Name: "Room 201", Floor: 2,
			Type: models.RoomTypeTriple, Rent: 3500, Status: models.RoomStatusMaintenance,
		},
	}
}

func defaultBookings(now time.Time) []models.Booking {
	day := 24 * time.Hour
	date := func(t time.Time) string { return t.Format(time.DateOnly) }
	return []models.Booking{
		{
			ID: "B-001", Guest: "Aman Singh", RoomID: "r1", RoomNumber: "101", Floor: 1,
			BookingDate: date(now.Add(-3 * day)),
			CheckIn:     date(now.Add(2 * day)),
			CheckOut:    date(now.Add(10 * day)),
		},
		{
			ID: "B-002", Guest: "Priya Sharma", RoomNumber: "202", Floor: 2,
			BookingDate: date(now), CheckIn: date(now), CheckOut: date(now.Add(5 * day)),
		},
		{
			ID: "B-003", Guest: "Ravi Kumar", RoomID: "r2", RoomNumber: "102", Floor: 1,
			BookingDate: date(now),
			CheckIn:     date(now.Add(1 * day)),
			CheckOut:    date(now.Add(4 * day)),
		},
	}
}

func defaultStays(now time.Time) []models.StayBooking {
	return []models.StayBooking{
		{
			ID: "b_1", HostelID: HostelGreenValleyID, HostelName: "Green Valley Hostel",
			User: "praneeth.gsk@gmail.com",
			From: "2025-11-01", To: "2025-11-05", Nights: 4,
			Amount: 1200, Currency: "INR", Paid: true, PaymentRef: "PAY_abc123",
			CreatedAt: now,
		},
		{
			ID: "b_2", HostelID: HostelSunriseID, HostelName: "Sunrise PG",
			User: "praneeth.gsk@gmail.com",
			From: "2025-10-15", To: "2025-10-17", Nights: 2,
			Amount: 700, Currency: "INR", Paid: false,
			Feedback:  "Rooms were clean but WiFi was slow.",
			CreatedAt: now,
		},
	}
}

func defaultComplaints() []models.Complaint {
	return []models.Complaint{
		{ID: "C-001", User: "John Doe", Text: "Leaky faucet in room 101", Date: "2024-06-15", Status: models.ComplaintStatusPending},
		{ID: "C-002", User: "Asha Patel", Text: "AC not cooling in room 204", Date: "2024-06-14", Status: models.ComplaintStatusPending},
		{ID: "C-003", User: "Ravi Kumar", Text: "Water supply issue on 3rd floor", Date: "2024-06-12", Status: models.ComplaintStatusPending},
	}
}

func defaultNotifications(now time.Time) []models.Notification {
	return []models.Notification{
		{ID: "n_1", Type: models.NotificationBooking, Title: "New booking request", Message: "Aman Singh requested Room 101 for next week.", Timestamp: now.Add(-10 * time.Minute)},
		{ID: "n_2", Type: models.NotificationComplaint, Title: "New complaint filed", Message: "AC not cooling in room 204.", Timestamp: now.Add(-1 * time.Hour)},
		{ID: "n_3", Type: models.NotificationPayment, Title: "Payment received", Message: "Rent payment of ₹6,000 received for Room 101.", Timestamp: now.Add(-3 * time.Hour), Read: true},
		{ID: "n_4", Type: models.NotificationBooking, Title: "Booking confirmed", Message: "Priya Sharma's booking for Room 202 is confirmed.", Timestamp: now.Add(-5 * time.Hour), Read: true},
		{ID: "n_5", Type: models.NotificationMaintenance, Title: "Maintenance scheduled", Message: "Plumber visiting Room 201 tomorrow at 10:00.", Timestamp: now.Add(-8 * time.Hour), Read: true},
		{ID: "n_6", Type: models.NotificationGuest, Title: "Guest checked out", Message: "Guest from Room 201 checked out. Room is ready for cleaning.", Timestamp: now.Add(-24 * time.Hour), Read: true},
	}
}

func defaultMyHostel(now time.Time) models.MyHostelState {
	return models.MyHostelState{
		Hostel: models.HostelSummary{
			Name:         "Green Valley Hostel",
			Address:      "12 MG Road, Cityville",
			ContactEmail: "green@hostel.example",
			ContactPhone: "+91 98765 43210",
			TotalRooms:   24, Floors: 3,
			Description: "Cozy hostel close to Cityville Tech Park with WiFi, meals and laundry.",
			Amenities:   models.Amenities{"WiFi", "Laundry", "Meals", "Parking"},
			UpdatedAt:   now,
		},
		Rooms: []models.StayRoom{
			{ID: "r101", Name: "Room 101", Type: "Single", Floor: 1, Rent: 4500, Occupied: true},
			{ID: "r102", Name: "Room 102", Type: "Double", Floor: 1, Rent: 6500},
			{ID: "r201", Name: "Room 201", Type: "Triple", Floor: 2, Rent: 7200, Occupied: true},
			{ID: "r202", Name: "Room 202", Type: "Single", Floor: 2, Rent: 4800},
		},
		BookedRoomIDs: []string{"r102"},
		Complaints: []models.Complaint{
			{
				ID: "cmp-1", Subject: "Water heater not working", Category: "Maintenance",
				Description: "Room 102 geyser is not heating properly since yesterday.",
				Status:      models.ComplaintStatusOpen, CreatedAt: now,
			},
		},
		PrimaryBooking: models.PrimaryBooking{
			Reference: "GVH-2025-001", Rooms: 1, People: 3, Since: "2025-01-15",
			Note: "Primary stay in deluxe triple sharing room.",
		},
	}
}
