// Package ledger implements the financial engine: it owns every mutation of
// accounts, cards, transactions, goals and limits, applying balance effects
// and limit accrual as transactions are created and updated.
package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/Jhonatansales/gestao-financeira/internal/catalog"
	"github.com/Jhonatansales/gestao-financeira/internal/common"
	"github.com/Jhonatansales/gestao-financeira/internal/model"
	"github.com/Jhonatansales/gestao-financeira/internal/service"
	"github.com/google/uuid"
)

// Engine coordinates all entity mutations through the storage port. A single
// mutex serializes mutating operations so concurrent callers cannot produce
// lost balance updates.
type Engine struct {
	store service.Storage
	now   func() time.Time
	newID func() string
	mu    sync.Mutex
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the engine's time source.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithIDGenerator overrides the engine's id generator.
func WithIDGenerator(gen func() string) Option {
	return func(e *Engine) { e.newID = gen }
}

// New creates a ledger engine on top of the given storage.
func New(store service.Storage, opts ...Option) *Engine {
	e := &Engine{
		store: store,
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// CreateAccount registers a new account with its initial balance.
func (e *Engine) CreateAccount(ctx context.Context, account *model.Account) (*model.Account, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	a := *account
	if a.Name == "" {
		return nil, fmt.Errorf("%w: account name is required", common.ErrValidation)
	}
	if a.ID == "" {
		a.ID = e.newID()
	}
	if a.Type == "" {
		a.Type = model.AccountTypeChecking
	}
	a.Balance = round2(a.Balance)

	if err := e.store.CreateAccount(ctx, &a); err != nil {
		return nil, err
	}
	slog.Info("account created", "id", a.ID, "name", a.Name, "balance", a.Balance)
	return &a, nil
}

// UpdateAccount applies a partial update. The balance is not updatable
// directly; it moves only through transactions.
func (e *Engine) UpdateAccount(ctx context.Context, id string, upd service.AccountUpdate) (*model.Account, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	account, err := e.store.GetAccount(ctx, id)
	if err != nil {
		return nil, err
	}
	if upd.Name != nil {
		account.Name = *upd.Name
	}
	if upd.Type != nil {
		account.Type = *upd.Type
	}
	if upd.Bank != nil {
		account.Bank = *upd.Bank
	}
	if err := e.store.SaveAccount(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

// GetAccount returns a single account.
func (e *Engine) GetAccount(ctx context.Context, id string) (*model.Account, error) {
	return e.store.GetAccount(ctx, id)
}

// ListAccounts returns all accounts.
func (e *Engine) ListAccounts(ctx context.Context) ([]model.Account, error) {
	return e.store.ListAccounts(ctx)
}

// CreateCard registers a new card.
func (e *Engine) CreateCard(ctx context.Context, card *model.Card) (*model.Card, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	c := *card
	if c.Name == "" {
		return nil, fmt.Errorf("%w: card name is required", common.ErrValidation)
	}
	if c.Limit.IsNegative() || c.Used.IsNegative() {
		return nil, fmt.Errorf("%w: card limit and used must not be negative", common.ErrValidation)
	}
	if c.ID == "" {
		c.ID = e.newID()
	}
	if c.Type == "" {
		c.Type = model.CardTypeCredit
	}
	c.Limit = round2(c.Limit)
	c.Used = round2(c.Used)

	if err := e.store.CreateCard(ctx, &c); err != nil {
		return nil, err
	}
	slog.Info("card created", "id", c.ID, "name", c.Name, "limit", c.Limit)
	return &c, nil
}

// UpdateCard applies a partial update. Usage is not updatable directly; it
// moves only through card transactions.
func (e *Engine) UpdateCard(ctx context.Context, id string, upd service.CardUpdate) (*model.Card, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	card, err := e.store.GetCard(ctx, id)
	if err != nil {
		return nil, err
	}
	if upd.Name != nil {
		card.Name = *upd.Name
	}
	if upd.Limit != nil {
		if upd.Limit.IsNegative() {
			return nil, fmt.Errorf("%w: card limit must not be negative", common.ErrValidation)
		}
		card.Limit = round2(*upd.Limit)
	}
	if upd.Type != nil {
		card.Type = *upd.Type
	}
	if upd.Bank != nil {
		card.Bank = *upd.Bank
	}
	if upd.DueDate != nil {
		card.DueDate = *upd.DueDate
	}
	if upd.ClosingDate != nil {
		card.ClosingDate = *upd.ClosingDate
	}
	if err := e.store.SaveCard(ctx, card); err != nil {
		return nil, err
	}
	return card, nil
}

// GetCard returns a single card.
func (e *Engine) GetCard(ctx context.Context, id string) (*model.Card, error) {
	return e.store.GetCard(ctx, id)
}

// ListCards returns all cards.
func (e *Engine) ListCards(ctx context.Context) ([]model.Card, error) {
	return e.store.ListCards(ctx)
}

// Categories returns the resolved taxonomy: built-in categories merged with
// the user's custom ones.
func (e *Engine) Categories(ctx context.Context) ([]model.Category, error) {
	custom, err := e.store.ListCustomCategories(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.Resolve(custom), nil
}

// CreateCustomCategory registers a user-defined category.
func (e *Engine) CreateCustomCategory(ctx context.Context, name, icon string, categoryType model.CategoryType) (*model.Category, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if name == "" {
		return nil, fmt.Errorf("%w: category name is required", common.ErrValidation)
	}
	if categoryType == "" {
		categoryType = model.CategoryTypeExpense
	}
	cat := model.Category{
		ID:   catalog.CustomIDPrefix + e.newID(),
		Name: name,
		Icon: icon,
		Type: categoryType,
	}
	if err := e.store.CreateCustomCategory(ctx, &cat); err != nil {
		return nil, err
	}
	slog.Info("custom category created", "id", cat.ID, "name", cat.Name)
	return &cat, nil
}

// AddCustomSubcategory attaches a subcategory to a category. Adding to a
// built-in category creates a shadowing custom copy that carries the
// built-in subcategories plus the new one.
func (e *Engine) AddCustomSubcategory(ctx context.Context, categoryID, name, icon string) (*model.Category, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if name == "" {
		return nil, fmt.Errorf("%w: subcategory name is required", common.ErrValidation)
	}
	sub := model.SubCategory{
		ID:   "sub-" + e.newID(),
		Name: name,
		Icon: icon,
	}

	custom, err := e.store.ListCustomCategories(ctx)
	if err != nil {
		return nil, err
	}

	// Existing custom category, including shadow copies.
	for i := range custom {
		if custom[i].ID == categoryID {
			custom[i].Subcategories = append(custom[i].Subcategories, sub)
			if err := e.store.SaveCustomCategory(ctx, &custom[i]); err != nil {
				return nil, err
			}
			return &custom[i], nil
		}
	}

	// Built-in category: shadow it with a custom copy.
	if base, ok := catalog.Lookup(catalog.Default(), categoryID); ok {
		shadowID := catalog.CustomIDPrefix + categoryID
		for i := range custom {
			if custom[i].ID == shadowID {
				custom[i].Subcategories = append(custom[i].Subcategories, sub)
				if err := e.store.SaveCustomCategory(ctx, &custom[i]); err != nil {
					return nil, err
				}
				return &custom[i], nil
			}
		}
		shadow := *base
		shadow.ID = shadowID
		shadow.Subcategories = append(append([]model.SubCategory(nil), base.Subcategories...), sub)
		if err := e.store.CreateCustomCategory(ctx, &shadow); err != nil {
			return nil, err
		}
		return &shadow, nil
	}

	return nil, fmt.Errorf("%w: %s", common.ErrUnknownCategory, categoryID)
}

// ResetAllData clears every entity collection.
func (e *Engine) ResetAllData(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.store.ResetAllData(ctx); err != nil {
		return err
	}
	slog.Info("all data reset")
	return nil
}

func (e *Engine) validateCategory(ctx context.Context, categoryID, subcategoryID string) error {
	custom, err := e.store.ListCustomCategories(ctx)
	if err != nil {
		return err
	}
	return catalog.Validate(catalog.Resolve(custom), categoryID, subcategoryID)
}
