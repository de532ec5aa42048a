package service

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/UtsavYadav1/empowerher/internal/core/domain"
	"github.com/UtsavYadav1/empowerher/internal/core/ports"
)

type stubWorkshopRepo struct {
	workshops     map[string]*domain.Workshop
	registrations map[string]*domain.Registration // key: workshopID + "/" + userID
	nextID        int
}

func newStubWorkshopRepo() *stubWorkshopRepo {
	return &stubWorkshopRepo{
		workshops:     make(map[string]*domain.Workshop),
		registrations: make(map[string]*domain.Registration),
	}
}

func (r *stubWorkshopRepo) Create(_ context.Context, w *domain.Workshop) (*domain.Workshop, error) {
	clone := *w
	r.nextID++
	clone.ID = "workshop-" + strconv.Itoa(r.nextID)
	r.workshops[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubWorkshopRepo) FindByID(_ context.Context, id string) (*domain.Workshop, error) {
	if w, ok := r.workshops[id]; ok {
		clone := *w
		return &clone, nil
	}
	return nil, domain.ErrWorkshopNotFound
}

func (r *stubWorkshopRepo) Update(_ context.Context, w *domain.Workshop) (*domain.Workshop, error) {
	if _, ok := r.workshops[w.ID]; !ok {
		return nil, domain.ErrWorkshopNotFound
	}
	clone := *w
	r.workshops[w.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubWorkshopRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.workshops[id]; !ok {
		return domain.ErrWorkshopNotFound
	}
	delete(r.workshops, id)
	return nil
}

func (r *stubWorkshopRepo) List(_ context.Context, village string) ([]domain.Workshop, error) {
	var out []domain.Workshop
	for _, w := range r.workshops {
		if village != "" && w.Village != village {
			continue
		}
		out = append(out, *w)
	}
	return out, nil
}

func (r *stubWorkshopRepo) AddRegistration(_ context.Context, reg *domain.Registration) (*domain.Registration, error) {
	key := reg.WorkshopID + "/" + reg.UserID
	if _, ok := r.registrations[key]; ok {
		return nil, domain.ErrAlreadyRegistered
	}
	clone := *reg
	r.nextID++
	clone.ID = "reg-" + strconv.Itoa(r.nextID)
	r.registrations[key] = &clone
	out := clone
	return &out, nil
}

func (r *stubWorkshopRepo) FindRegistration(_ context.Context, workshopID, userID string) (*domain.Registration, error) {
	if reg, ok := r.registrations[workshopID+"/"+userID]; ok {
		clone := *reg
		return &clone, nil
	}
	return nil, domain.ErrRegistrationNotFound
}

func (r *stubWorkshopRepo) CountRegistrations(_ context.Context, workshopID string) (int, error) {
	n := 0
	for _, reg := range r.registrations {
		if reg.WorkshopID == workshopID {
			n++
		}
	}
	return n, nil
}

func (r *stubWorkshopRepo) ListRegistrations(_ context.Context, workshopID string) ([]domain.Registration, error) {
	var out []domain.Registration
	for _, reg := range r.registrations {
		if reg.WorkshopID == workshopID {
			out = append(out, *reg)
		}
	}
	return out, nil
}

var _ ports.WorkshopRepository = (*stubWorkshopRepo)(nil)

func seedWorkshop(t *testing.T, svc *WorkshopService, capacity int) *domain.Workshop {
	t.Helper()
	admin := &domain.User{ID: "admin-1", Role: domain.RoleAdmin}
	w, err := svc.Create(context.Background(), admin, ports.WorkshopInput{
		Title:    "Tailoring basics",
		Village:  "Rampur",
		Date:     time.Now().AddDate(0, 0, 7),
		Capacity: capacity,
	})
	if err != nil {
		t.Fatalf("seed workshop: %v", err)
	}
	return w
}

func TestWorkshopService_Register(t *testing.T) {
	svc := NewWorkshopService(newStubWorkshopRepo(), zerolog.Nop())
	w := seedWorkshop(t, svc, 0)

	girl := &domain.User{ID: "girl-1", Role: domain.RoleGirl}
	reg, err := svc.Register(context.Background(), girl, w.ID)
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if reg.WorkshopID != w.ID || reg.UserID != "girl-1" {
		t.Fatalf("unexpected registration: %+v", reg)
	}
}

func TestWorkshopService_Register_Duplicate(t *testing.T) {
	svc := NewWorkshopService(newStubWorkshopRepo(), zerolog.Nop())
	w := seedWorkshop(t, svc, 0)

	woman := &domain.User{ID: "woman-1", Role: domain.RoleWoman}
	if _, err := svc.Register(context.Background(), woman, w.ID); err != nil {
		t.Fatalf("first registration: %v", err)
	}
	if _, err := svc.Register(context.Background(), woman, w.ID); err != domain.ErrAlreadyRegistered {
		t.Fatalf("expected ErrAlreadyRegistered, got %v", err)
	}
}

func TestWorkshopService_Register_CapacityEnforced(t *testing.T) {
	svc := NewWorkshopService(newStubWorkshopRepo(), zerolog.Nop())
	w := seedWorkshop(t, svc, 2)

	for i, id := range []string{"girl-1", "girl-2"} {
		if _, err := svc.Register(context.Background(), &domain.User{ID: id, Role: domain.RoleGirl}, w.ID); err != nil {
			t.Fatalf("registration %d: %v", i, err)
		}
	}
	if _, err := svc.Register(context.Background(), &domain.User{ID: "girl-3", Role: domain.RoleGirl}, w.ID); err != domain.ErrWorkshopFull {
		t.Fatalf("expected ErrWorkshopFull, got %v", err)
	}
}

func TestWorkshopService_Register_RoleRestricted(t *testing.T) {
	svc := NewWorkshopService(newStubWorkshopRepo(), zerolog.Nop())
	w := seedWorkshop(t, svc, 0)

	customer := &domain.User{ID: "customer-1", Role: domain.RoleCustomer}
	if _, err := svc.Register(context.Background(), customer, w.ID); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden for customer, got %v", err)
	}
}

func TestWorkshopService_ListRegistrations_OrganisersOnly(t *testing.T) {
	svc := NewWorkshopService(newStubWorkshopRepo(), zerolog.Nop())
	w := seedWorkshop(t, svc, 0)

	girl := &domain.User{ID: "girl-1", Role: domain.RoleGirl}
	_, _ = svc.Register(context.Background(), girl, w.ID)

	agent := &domain.User{ID: "agent-1", Role: domain.RoleFieldAgent}
	regs, err := svc.ListRegistrations(context.Background(), agent, w.ID)
	if err != nil {
		t.Fatalf("ListRegistrations returned error: %v", err)
	}
	if len(regs) != 1 {
		t.Fatalf("expected 1 registration, got %d", len(regs))
	}

	if _, err := svc.ListRegistrations(context.Background(), girl, w.ID); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden for girl, got %v", err)
	}
}
