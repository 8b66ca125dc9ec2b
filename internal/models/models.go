// Package models defines the canonical record shapes stored by the hostel
// management system. Every entity is a plain record persisted inside a JSON
// collection; relationships are stored identifiers only, with no referential
// integrity enforcement.
package models

import (
	"encoding/json"
	"strings"
	"time"
)

// Role values carried by the session record.
const (
	RoleGuest      = "guest"
	RoleOwner      = "owner"
	RoleSuperAdmin = "superadmin"
	RoleCoAdmin    = "coadmin"
)

// Owner account roles (distinct from session roles: these describe the
// account, not the signed-in identity).
const (
	OwnerRoleOwner = "owner"
	OwnerRoleSuper = "superowner"
)

// Owner is a hostel owner / co-admin account. Email is unique, checked
// case-insensitively by a linear scan at write time.
type Owner struct {
	ID             string   `json:"id"`
	Role           string   `json:"role"`
	FirstName      string   `json:"firstName"`
	LastName       string   `json:"lastName"`
	DisplayName    string   `json:"displayName,omitempty"`
	Bio            string   `json:"bio,omitempty"`
	Email          string   `json:"email"`
	Phone          string   `json:"phone,omitempty"`
	SecondaryPhone string   `json:"secondaryPhone,omitempty"`
	// PasswordHash is a bcrypt hash. The legacy data model stored a merely
	// obscured password; hashes are written on create and verified on
	// sign-in instead.
	PasswordHash string    `json:"passwordHash,omitempty"`
	Documents    []string  `json:"documents"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (o Owner) RecordID() string { return o.ID }

// Sanitized returns a copy safe to hand to API clients.
func (o Owner) Sanitized() Owner {
	o.PasswordHash = ""
	return o
}

// Amenities is a set of amenity names. Legacy records stored it as a
// comma-separated string ("WiFi,Laundry,Meals"); it unmarshals from either
// form and always marshals as an array.
type Amenities []string

func (a *Amenities) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = ParseAmenities(s)
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	*a = list
	return nil
}

// ParseAmenities splits a comma-separated amenity string, trimming blanks.
func ParseAmenities(s string) Amenities {
	parts := strings.Split(s, ",")
	out := make(Amenities, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Hostel statuses.
const (
	HostelStatusActive   = "active"
	HostelStatusInactive = "inactive"
)

// Hostel is one property. Owners holds Owner ids; ids are generated at
// create time and never reused.
type Hostel struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Address       string    `json:"address"`
	ContactPhone  string    `json:"contactPhone,omitempty"`
	ContactEmail  string    `json:"contactEmail,omitempty"`
	TotalRooms    int       `json:"totalRooms"`
	Floors        int       `json:"floors"`
	BusinessHours string    `json:"businessHours,omitempty"`
	Description   string    `json:"description,omitempty"`
	Amenities     Amenities `json:"amenities"`
	Owners        []string  `json:"owners"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt,omitzero"`
}

func (h Hostel) RecordID() string { return h.ID }

// NormalizeHostel canonicalizes a hostel record at the repository boundary.
func NormalizeHostel(h Hostel) Hostel {
	if h.Amenities == nil {
		h.Amenities = Amenities{}
	}
	if h.Owners == nil {
		h.Owners = []string{}
	}
	if h.Status == "" {
		h.Status = HostelStatusActive
	}
	return h
}

// Room types and statuses.
const (
	RoomTypeSingle = "single"
	RoomTypeDouble = "double"
	RoomTypeTriple = "triple"

	RoomStatusAvailable   = "available"
	RoomStatusOccupied    = "occupied"
	RoomStatusMaintenance = "maintenance"
)

// RoomFeatures are the per-room comfort flags.
type RoomFeatures struct {
	AC          bool `json:"ac"`
	TV          bool `json:"tv"`
	WaterHeater bool `json:"waterHeater"`
}

// Room is one rentable room. The floor grouping shown in dashboards is
// derived from Floor, not stored.
type Room struct {
	ID       string       `json:"id"`
	Code     string       `json:"code"`
	Name     string       `json:"name"`
	Floor    int          `json:"floor"`
	Type     string       `json:"type"`
	Rent     int          `json:"rent"`
	Status   string       `json:"status"`
	Features RoomFeatures `json:"features"`
}

func (r Room) RecordID() string { return r.ID }

// Booking is an admin-side floor booking. Ids follow the legacy sequential
// "B-NNN" scheme. RoomID is the weak back-reference to the Room record;
// RoomNumber is the denormalized display string the legacy data carried —
// resolve the live room by RoomID at read time rather than trusting the
// string. Dates are calendar dates in "2006-01-02" form.
type Booking struct {
	ID          string `json:"id"`
	Guest       string `json:"guest"`
	RoomID      string `json:"roomId,omitempty"`
	RoomNumber  string `json:"roomNumber"`
	Floor       int    `json:"floor"`
	BookingDate string `json:"bookingDate"`
	CheckIn     string `json:"checkIn"`
	CheckOut    string `json:"checkOut,omitempty"`
}

func (b Booking) RecordID() string { return b.ID }

// StayBooking is a user-side stay history entry. This is a distinct
// collection from Booking — intentionally so: admin floor bookings and a
// guest's own stay history evolved separately and share no shape.
type StayBooking struct {
	ID         string    `json:"id"`
	HostelID   string    `json:"hostelId"`
	HostelName string    `json:"hostelName"`
	User       string    `json:"user"`
	From       string    `json:"from"`
	To         string    `json:"to"`
	Nights     int       `json:"nights"`
	Amount     int       `json:"amount"`
	Currency   string    `json:"currency"`
	Paid       bool      `json:"paid"`
	PaymentRef string    `json:"paymentRef,omitempty"`
	Feedback   string    `json:"feedback,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (s StayBooking) RecordID() string { return s.ID }

// Complaint statuses. Transitions are one-directional in the dashboards
// (pending/open → resolved) but storage accepts any value.
const (
	ComplaintStatusPending  = "pending"
	ComplaintStatusOpen     = "open"
	ComplaintStatusResolved = "resolved"
)

// Complaint covers both the admin-side short form (User/Text/Date) and the
// richer resident form (Subject/Category/Description); unused fields stay
// empty.
type Complaint struct {
	ID          string    `json:"id"`
	User        string    `json:"user,omitempty"`
	Text        string    `json:"text,omitempty"`
	Subject     string    `json:"subject,omitempty"`
	Category    string    `json:"category,omitempty"`
	Description string    `json:"description,omitempty"`
	Date        string    `json:"date,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt,omitzero"`
}

func (c Complaint) RecordID() string { return c.ID }

// Notification types.
const (
	NotificationBooking     = "booking"
	NotificationComplaint   = "complaint"
	NotificationPayment     = "payment"
	NotificationMaintenance = "maintenance"
	NotificationGuest       = "guest"
)

// Notification is a dashboard notification.
type Notification struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Read      bool      `json:"read"`
}

func (n Notification) RecordID() string { return n.ID }

// Profile is the signed-in user's profile record (singleton, key
// "userProfile").
type Profile struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	Phone       string `json:"phone,omitempty"`
	CountryCode string `json:"countryCode,omitempty"`
	Address     string `json:"address,omitempty"`
	Country     string `json:"country,omitempty"`
	City        string `json:"city,omitempty"`
	State       string `json:"state,omitempty"`
	ZipCode     string `json:"zipCode,omitempty"`
}

// Session is the singleton auth record. It is overwritten wholesale on every
// sign-in and sign-out, never merged.
type Session struct {
	Role          string    `json:"role"`
	Authenticated bool      `json:"authenticated"`
	Email         string    `json:"email,omitempty"`
	Name          string    `json:"name,omitempty"`
	At            time.Time `json:"at"`
}

// SeedMarker is the sentinel whose presence means the default dataset has
// already been written once.
type SeedMarker struct {
	At time.Time `json:"at"`
	By string    `json:"by"`
}

// HostelSummary is the denormalized hostel header shown on the resident
// dashboard.
type HostelSummary struct {
	Name         string    `json:"name"`
	Address      string    `json:"address"`
	ContactEmail string    `json:"contactEmail,omitempty"`
	ContactPhone string    `json:"contactPhone,omitempty"`
	TotalRooms   int       `json:"totalRooms"`
	Floors       int       `json:"floors"`
	Description  string    `json:"description,omitempty"`
	Amenities    Amenities `json:"amenities"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// StayRoom is a room as seen from the resident's side.
type StayRoom struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Floor    int    `json:"floor"`
	Rent     int    `json:"rent"`
	Occupied bool   `json:"occupied"`
}

// PrimaryBooking describes the resident's main stay.
type PrimaryBooking struct {
	Reference string `json:"reference"`
	Rooms     int    `json:"rooms"`
	People    int    `json:"people"`
	Since     string `json:"since"`
	Note      string `json:"note,omitempty"`
}

// MyHostelState is the composite state behind the resident dashboard
// (singleton, key "myHostel").
type MyHostelState struct {
	Hostel         HostelSummary  `json:"hostel"`
	Rooms          []StayRoom     `json:"rooms"`
	BookedRoomIDs  []string       `json:"bookedRoomIds"`
	Complaints     []Complaint    `json:"complaints"`
	PrimaryBooking PrimaryBooking `json:"primaryBooking"`
}
