package customer

import (
	"context"
	"errors"
	"strings"

	"aurum/pkg/domain"
	dErrors "aurum/pkg/domain-errors"
	"aurum/pkg/platform/sentinel"
)

// Service handles registration and authentication. It keeps orchestration
// out of handlers and the store contract thin.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// Register validates the form fields and persists a new customer. The
// stored record round-trips exactly: reading it back yields the values
// written here.
func (s *Service) Register(ctx context.Context, in RegisterInput) (Customer, error) {
	if err := in.Validate(); err != nil {
		return Customer{}, err
	}
	if _, err := s.store.FindByMobile(ctx, in.Mobile); err == nil {
		return Customer{}, dErrors.New(dErrors.CodeValidation, "mobile number already registered")
	} else if !errors.Is(err, sentinel.ErrNotFound) {
		return Customer{}, err
	}

	c := Customer{
		ID:       domain.NewCustomerID(),
		FullName: in.FullName,
		DOB:      in.DOB,
		Gender:   in.Gender,
		Mobile:   in.Mobile,
		Email:    in.Email,
		Address:  in.Address,
		PAN:      strings.ToUpper(in.PAN),
		Aadhaar:  in.Aadhaar,
		PIN:      in.PIN,
	}
	if err := s.store.Save(ctx, c); err != nil {
		return Customer{}, err
	}
	return c, nil
}

// Authenticate resolves a customer by mobile number and PIN. A wrong PIN is
// indistinguishable from an unknown mobile so credential probing learns
// nothing.
func (s *Service) Authenticate(ctx context.Context, mobile, pin string) (Customer, error) {
	c, err := s.store.FindByMobile(ctx, mobile)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return Customer{}, dErrors.New(dErrors.CodeNotFound, "invalid credentials")
		}
		return Customer{}, err
	}
	if c.PIN != pin {
		return Customer{}, dErrors.New(dErrors.CodeNotFound, "invalid credentials")
	}
	return c, nil
}

// Get resolves a customer by id.
func (s *Service) Get(ctx context.Context, id domain.CustomerID) (Customer, error) {
	c, err := s.store.FindByID(ctx, id.String())
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return Customer{}, dErrors.New(dErrors.CodeNotFound, "customer not found")
		}
		return Customer{}, err
	}
	return c, nil
}
