package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"language-school/internal/data/entity"
	"language-school/internal/data/repository"

	"github.com/google/uuid"
)

// In-memory fakes implementing the repository interfaces. Each method holds
// the mutex for its whole body, matching the per-record atomicity the real
// store provides.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	cp := *user
	return &cp, nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.Email == email {
			cp := *user
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindAll(ctx context.Context, limit, offset int) ([]*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.User
	for _, user := range f.users {
		cp := *user
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeUserRepo) CountAll(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.users)), nil
}

func (f *fakeUserRepo) UpdateRole(ctx context.Context, id uuid.UUID, role entity.UserRole) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok {
		return fmt.Errorf("update user %s role: %w", id.String(), repository.ErrNotFound)
	}
	user.Role = role
	return nil
}

func (f *fakeUserRepo) FindByRole(ctx context.Context, role entity.UserRole, limit int) ([]*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.User
	for _, user := range f.users {
		if user.Role == role {
			cp := *user
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type fakeClassRepo struct {
	mu      sync.Mutex
	classes map[uuid.UUID]*entity.Class
}

func newFakeClassRepo() *fakeClassRepo {
	return &fakeClassRepo{classes: make(map[uuid.UUID]*entity.Class)}
}

func (f *fakeClassRepo) Create(ctx context.Context, class *entity.Class) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *class
	f.classes[class.ID] = &cp
	return nil
}

func (f *fakeClassRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Class, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	class, ok := f.classes[id]
	if !ok {
		return nil, nil
	}
	cp := *class
	return &cp, nil
}

func (f *fakeClassRepo) FindAll(ctx context.Context) ([]*entity.Class, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.collect(func(*entity.Class) bool { return true }), nil
}

func (f *fakeClassRepo) FindByStatus(ctx context.Context, status entity.ClassStatus) ([]*entity.Class, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.collect(func(c *entity.Class) bool { return c.Status == status }), nil
}

func (f *fakeClassRepo) FindByInstructorEmail(ctx context.Context, email string) ([]*entity.Class, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.collect(func(c *entity.Class) bool { return c.InstructorEmail == email }), nil
}

func (f *fakeClassRepo) FindPopular(ctx context.Context, limit int) ([]*entity.Class, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := f.collect(func(c *entity.Class) bool { return c.Status == entity.ClassStatusApproved })
	sort.Slice(out, func(i, j int) bool { return out[i].EnrolledStudents > out[j].EnrolledStudents })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// collect copies matching classes; caller must hold the mutex
func (f *fakeClassRepo) collect(match func(*entity.Class) bool) []*entity.Class {
	var out []*entity.Class
	for _, class := range f.classes {
		if match(class) {
			cp := *class
			out = append(out, &cp)
		}
	}
	return out
}

func (f *fakeClassRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ClassStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	class, ok := f.classes[id]
	if !ok {
		return fmt.Errorf("update class %s status: %w", id.String(), repository.ErrNotFound)
	}
	class.Status = status
	return nil
}

func (f *fakeClassRepo) UpdateFeedback(ctx context.Context, id uuid.UUID, feedback string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	class, ok := f.classes[id]
	if !ok {
		return fmt.Errorf("update class %s feedback: %w", id.String(), repository.ErrNotFound)
	}
	class.Feedback = &feedback
	return nil
}

func (f *fakeClassRepo) ReserveSeat(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	class, ok := f.classes[id]
	if !ok {
		return fmt.Errorf("reserve seat for class %s: %w", id.String(), repository.ErrNotFound)
	}
	if class.AvailableSeats <= 0 {
		return fmt.Errorf("reserve seat for class %s: %w", id.String(), repository.ErrNoSeatsAvailable)
	}
	class.AvailableSeats--
	class.EnrolledStudents++
	return nil
}

func (f *fakeClassRepo) ReleaseSeat(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	class, ok := f.classes[id]
	if !ok || class.EnrolledStudents <= 0 {
		return fmt.Errorf("release seat for class %s: %w", id.String(), repository.ErrNotFound)
	}
	class.AvailableSeats++
	class.EnrolledStudents--
	return nil
}

type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings map[uuid.UUID]*entity.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[uuid.UUID]*entity.Booking)}
}

func (f *fakeBookingRepo) Create(ctx context.Context, booking *entity.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	// Enforce the (class, student) unique index like the real store does
	for _, b := range f.bookings {
		if b.ClassID == booking.ClassID && b.StudentEmail == booking.StudentEmail {
			return fmt.Errorf("create booking for %s: %w", booking.StudentEmail, repository.ErrAlreadyBooked)
		}
	}
	cp := *booking
	f.bookings[booking.ID] = &cp
	return nil
}

func (f *fakeBookingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	booking, ok := f.bookings[id]
	if !ok {
		return nil, nil
	}
	cp := *booking
	return &cp, nil
}

func (f *fakeBookingRepo) ExistsForStudentAndClass(ctx context.Context, email string, classID uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, b := range f.bookings {
		if b.ClassID == classID && b.StudentEmail == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeBookingRepo) FindByStudentAndStatus(ctx context.Context, email string, status entity.PaymentStatus) ([]*entity.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Booking
	for _, b := range f.bookings {
		if b.StudentEmail == email && b.PaymentStatus == status {
			cp := *b
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeBookingRepo) MarkPaid(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	booking, ok := f.bookings[id]
	if !ok {
		return fmt.Errorf("mark booking %s paid: %w", id.String(), repository.ErrNotFound)
	}
	if booking.PaymentStatus == entity.PaymentStatusPaid {
		return fmt.Errorf("mark booking %s paid: %w", id.String(), repository.ErrBookingPaid)
	}
	booking.PaymentStatus = entity.PaymentStatusPaid
	return nil
}

func (f *fakeBookingRepo) DeleteUnpaid(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	booking, ok := f.bookings[id]
	if !ok {
		return fmt.Errorf("delete booking %s: %w", id.String(), repository.ErrNotFound)
	}
	if booking.PaymentStatus == entity.PaymentStatusPaid {
		return fmt.Errorf("delete booking %s: %w", id.String(), repository.ErrBookingPaid)
	}
	delete(f.bookings, id)
	return nil
}

func (f *fakeBookingRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.bookings)
}

func newFakeRepository() (*repository.Repository, *fakeUserRepo, *fakeClassRepo, *fakeBookingRepo) {
	users := newFakeUserRepo()
	classes := newFakeClassRepo()
	bookings := newFakeBookingRepo()
	return &repository.Repository{
		User:    users,
		Class:   classes,
		Booking: bookings,
	}, users, classes, bookings
}
