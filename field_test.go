package sway

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
)

func smallLayout() Layout {
	l := DefaultLayout()
	l.Count = 50
	return l
}

func TestNewFieldStructure(t *testing.T) {
	l := smallLayout()
	f, err := NewField(l)
	if err != nil {
		t.Fatalf("NewField: %v", err)
	}
	// center + members + rig
	if got := f.Root.NumChildren(); got != 1+l.Count+1 {
		t.Errorf("root children = %d, want %d", got, l.Count+2)
	}
	if len(f.Members) != l.Count || len(f.Placements) != l.Count {
		t.Fatalf("members = %d, placements = %d, want %d", len(f.Members), len(f.Placements), l.Count)
	}
	// two spin tracks for the center, two jitter tracks per member, one orbit
	if got := f.Driver.NumTracks(); got != 2+2*l.Count+1 {
		t.Errorf("tracks = %d, want %d", got, 2+2*l.Count+1)
	}
	for i, m := range f.Members {
		p := f.Placements[i]
		if m.Position != p.Position {
			t.Errorf("member %d at %v, placement at %v", i, m.Position, p.Position)
		}
		if id, ok := m.UserData.(uuid.UUID); !ok || id != p.ID {
			t.Errorf("member %d UserData = %v, want %v", i, m.UserData, p.ID)
		}
		if m.Name != p.ID.String() {
			t.Errorf("member %d name = %q", i, m.Name)
		}
	}
	if f.Root.FindChild("center") != f.Center || f.Root.FindChild("rig") != f.Rig {
		t.Error("center or rig not found under root")
	}
}

func TestNewFieldMotion(t *testing.T) {
	l := smallLayout()
	f, err := NewField(l)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 100; i++ {
		f.Driver.Step()
	}
	assertNear(t, "center X", f.Center.Rotation.X, 100*l.CenterSpin)
	assertNear(t, "center Y", f.Center.Rotation.Y, 100*l.CenterSpin)

	o := l.Rig
	for i := 0; i < 100; i++ {
		o.Advance()
	}
	assertVec(t, "rig", f.Rig.Position, o.Position())

	for i, m := range f.Members {
		if m.Rotation.X < 0 || m.Rotation.X > 100*l.MemberSpin.Max+epsilon {
			t.Fatalf("member %d rotation %v outside jitter accumulation bounds", i, m.Rotation.X)
		}
		if m.Position != f.Placements[i].Position {
			t.Fatalf("member %d moved", i)
		}
	}
}

func TestNewFieldDeterministic(t *testing.T) {
	run := func() State {
		f, err := NewField(smallLayout())
		if err != nil {
			t.Fatal(err)
		}
		for i := 0; i < 60; i++ {
			f.Driver.Step()
		}
		return f.Driver.State().Clone()
	}
	opt := cmpopts.IgnoreFields(Track{}, "Target")
	if diff := cmp.Diff(run(), run(), opt); diff != "" {
		t.Errorf("same layout diverged (-a +b):\n%s", diff)
	}
}

func TestNewFieldErrors(t *testing.T) {
	l := smallLayout()
	l.Shell.InnerRadius = 10
	if _, err := NewField(l); !errors.Is(err, ErrInvalidBounds) {
		t.Errorf("bad shell: err = %v, want ErrInvalidBounds", err)
	}

	l = smallLayout()
	l.Shell = Shell{InnerRadius: 0.1, OuterRadius: 0.2, ExclusionHalfX: 1, ExclusionHalfZ: 1, MaxAttempts: 20}
	if _, err := NewField(l); !errors.Is(err, ErrSamplingExhausted) {
		t.Errorf("tight shell: err = %v, want ErrSamplingExhausted", err)
	}
}

func TestFieldAttach(t *testing.T) {
	f, err := NewField(smallLayout())
	if err != nil {
		t.Fatal(err)
	}
	s := NewScene()
	light := f.Attach(s)
	if f.Root.Parent != s.Root() {
		t.Error("field root not attached to scene")
	}
	if s.Driver() != f.Driver {
		t.Error("scene driver not set")
	}
	if light.Anchor != f.Rig || len(s.Lights()) != 1 {
		t.Error("rig light not added")
	}
	if err := s.Update(); err != nil {
		t.Fatal(err)
	}
	if s.PresentedFrame() != 1 {
		t.Errorf("PresentedFrame = %d, want 1", s.PresentedFrame())
	}
}
