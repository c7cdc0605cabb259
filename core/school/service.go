package school

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/trezcool/masomo-console/core"
	"github.com/trezcool/masomo-console/core/table"
)

// ErrNotFound is returned when the requested record does not exist.
var ErrNotFound = core.ErrNotFound

type (
	// Repository stores one kind of record, in insertion order.
	// Create assigns the record's ID.
	Repository[T any] interface {
		QueryAll(ctx context.Context) ([]T, error)
		GetByID(ctx context.Context, id string) (T, error)
		Create(ctx context.Context, item T) (T, error)
		Update(ctx context.Context, item T) (T, error)
		DeleteByID(ctx context.Context, ids ...string) error
	}

	// Resource is a Service with its record type erased, as seen by the listing screens and the API.
	Resource interface {
		Screen() Screen
		Rows(ctx context.Context) ([]table.Row, error)
		Find(ctx context.Context, id string) (interface{}, error)
		// CreateFrom creates a record from the form filled by decode.
		CreateFrom(ctx context.Context, decode func(form interface{}) error) (interface{}, error)
		UpdateFrom(ctx context.Context, id string, decode func(form interface{}) error) (interface{}, error)
		Delete(ctx context.Context, ids ...string) error
	}

	Service[T Entity[T]] struct {
		repo     Repository[T]
		validate *validator.Validate
		newForm  func() Form[T]
		screen   Screen
	}
)

func NewService[T Entity[T]](repo Repository[T], validate *validator.Validate, screen Screen, newForm func() Form[T]) *Service[T] {
	return &Service[T]{
		repo:     repo,
		validate: validate,
		newForm:  newForm,
		screen:   screen,
	}
}

var _ Resource = (*Service[Student])(nil)

func (svc *Service[T]) Screen() Screen { return svc.screen }

func (svc *Service[T]) List(ctx context.Context) ([]T, error) {
	return svc.repo.QueryAll(ctx)
}

func (svc *Service[T]) Rows(ctx context.Context) ([]table.Row, error) {
	items, err := svc.repo.QueryAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "querying records")
	}
	return Rows(items), nil
}

func (svc *Service[T]) Get(ctx context.Context, id string) (T, error) {
	return svc.repo.GetByID(ctx, core.CleanString(id))
}

func (svc *Service[T]) Find(ctx context.Context, id string) (interface{}, error) {
	return svc.Get(ctx, id)
}

func (svc *Service[T]) Create(ctx context.Context, form Form[T]) (T, error) {
	var zero T
	if err := Validate(svc.validate, form); err != nil {
		return zero, err
	}
	return svc.repo.Create(ctx, form.Apply(zero))
}

func (svc *Service[T]) CreateFrom(ctx context.Context, decode func(form interface{}) error) (interface{}, error) {
	form := svc.newForm()
	if err := decode(form); err != nil {
		return nil, err
	}
	return svc.Create(ctx, form)
}

func (svc *Service[T]) Update(ctx context.Context, id string, form Form[T]) (T, error) {
	orig, err := svc.Get(ctx, id)
	if err != nil {
		return orig, err
	}
	if err = Validate(svc.validate, form); err != nil {
		return orig, err
	}
	return svc.repo.Update(ctx, form.Apply(orig))
}

func (svc *Service[T]) UpdateFrom(ctx context.Context, id string, decode func(form interface{}) error) (interface{}, error) {
	orig, err := svc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	form := svc.newForm()
	if err = decode(form); err != nil {
		return nil, err
	}
	if err = Validate(svc.validate, form); err != nil {
		return nil, err
	}
	return svc.repo.Update(ctx, form.Apply(orig))
}

func (svc *Service[T]) Delete(ctx context.Context, ids ...string) error {
	return svc.repo.DeleteByID(ctx, ids...)
}
