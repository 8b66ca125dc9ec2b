package seed

import (
	"testing"

	"github.com/praneeth-grandhi/Hostel-Management/internal/data"
	"github.com/praneeth-grandhi/Hostel-Management/internal/models"
	"github.com/praneeth-grandhi/Hostel-Management/internal/store"
)

func newTestManager(t *testing.T) (*Manager, *store.Store, *data.Collections) {
	t.Helper()
	st := store.New(store.NewMemoryBackend(), nil)
	cols := data.NewCollections(st)
	// Identity hash keeps tests fast; bcrypt is wired at the composition root.
	return NewManager(st, cols, nil), st, cols
}

func TestSeed_FirstRunPopulatesEverything(t *testing.T) {
	mgr, st, cols := newTestManager(t)

	res := mgr.Seed(false)
	if res.Status != StatusSeeded {
		t.Fatalf("status: got %q, want %q", res.Status, StatusSeeded)
	}
	if res.Counts[data.KeyOwners] != 3 || res.Counts[data.KeyHostels] != 2 {
		t.Errorf("unexpected counts: %v", res.Counts)
	}

	owners := cols.Owners.LoadAll()
	if len(owners) != 3 {
		t.Fatalf("got %d owners, want 3", len(owners))
	}
	want := []string{OwnerRahulID, OwnerAnitaID, OwnerKaranID}
	for i, id := range want {
		if owners[i].ID != id {
			t.Errorf("owner %d: got id %q, want %q", i, owners[i].ID, id)
		}
	}

	var marker models.SeedMarker
	if !st.Get(data.KeySeedMarker, &marker) {
		t.Fatal("marker must exist after seeding")
	}
	if marker.By != "seed.Manager" || marker.At.IsZero() {
		t.Errorf("unexpected marker: %+v", marker)
	}

	var state models.MyHostelState
	if !st.Get(data.KeyMyHostel, &state) {
		t.Fatal("resident state must be seeded")
	}
	if state.Hostel.Name == "" || len(state.Rooms) == 0 {
		t.Errorf("resident state incomplete: %+v", state)
	}
}

func TestSeed_SecondRunIsSkipped(t *testing.T) {
	mgr, st, cols := newTestManager(t)
	mgr.Seed(false)

	var before models.SeedMarker
	st.Get(data.KeySeedMarker, &before)

	// Mutate seeded data so we can detect an overwrite.
	cols.Owners.Upsert(models.Owner{ID: "owner_extra", Email: "extra@example.com"})

	res := mgr.Seed(false)
	if res.Status != StatusSkipped {
		t.Fatalf("status: got %q, want %q", res.Status, StatusSkipped)
	}
	if res.Counts != nil {
		t.Errorf("skipped result must carry no counts, got %v", res.Counts)
	}
	if got := len(cols.Owners.LoadAll()); got != 4 {
		t.Errorf("skip must leave data alone: got %d owners, want 4", got)
	}

	var after models.SeedMarker
	st.Get(data.KeySeedMarker, &after)
	if !after.At.Equal(before.At) {
		t.Error("skip must not refresh the marker timestamp")
	}
}

func TestSeed_EmptiedCollectionStaysEmpty(t *testing.T) {
	mgr, _, cols := newTestManager(t)
	mgr.Seed(false)

	// Intentionally emptying a collection must not bring the demo rows back.
	cols.Complaints.SaveAll(nil)
	mgr.Seed(false)
	if got := len(cols.Complaints.LoadAll()); got != 0 {
		t.Errorf("emptied collection reseeded: %d complaints", got)
	}
}

func TestSeed_DeletedRecordStaysDeleted(t *testing.T) {
	mgr, _, cols := newTestManager(t)
	mgr.Seed(false)

	cols.Owners.Remove(OwnerAnitaID)
	mgr.Seed(false)

	owners := cols.Owners.LoadAll()
	if len(owners) != 2 {
		t.Fatalf("got %d owners, want 2", len(owners))
	}
	for _, o := range owners {
		if o.ID == OwnerAnitaID {
			t.Error("deleted owner came back")
		}
	}
}

func TestSeed_ForceResets(t *testing.T) {
	mgr, st, cols := newTestManager(t)
	mgr.Seed(false)

	var before models.SeedMarker
	st.Get(data.KeySeedMarker, &before)

	cols.Owners.Remove(OwnerAnitaID)
	cols.Complaints.SaveAll(nil)

	res := mgr.Seed(true)
	if res.Status != StatusSeeded {
		t.Fatalf("status: got %q, want %q", res.Status, StatusSeeded)
	}
	if got := len(cols.Owners.LoadAll()); got != 3 {
		t.Errorf("force must restore owners: got %d, want 3", got)
	}
	if got := len(cols.Complaints.LoadAll()); got != 3 {
		t.Errorf("force must restore complaints: got %d, want 3", got)
	}

	var after models.SeedMarker
	st.Get(data.KeySeedMarker, &after)
	if after.At.Before(before.At) {
		t.Error("force must refresh the marker timestamp")
	}
}

func TestSeed_PasswordsRunThroughHash(t *testing.T) {
	st := store.New(store.NewMemoryBackend(), nil)
	cols := data.NewCollections(st)
	mgr := NewManager(st, cols, func(p string) string { return "hashed:" + p })

	mgr.Seed(false)
	for _, o := range cols.Owners.LoadAll() {
		if o.PasswordHash != "hashed:"+DemoPassword {
			t.Errorf("owner %s: stored credential not hashed: %q", o.ID, o.PasswordHash)
		}
	}
}
