package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/storefront/checkout-service/internal/entities"
	"github.com/storefront/checkout-service/pkg/trm"
)

type CartRepo interface {
	GetCartByID(ctx context.Context, cartID string) (entities.Cart, error)
	GetCartBySession(ctx context.Context, sessionToken string) (entities.Cart, error)
	GetCartByAccount(ctx context.Context, accountID string) (entities.Cart, error)
	CreateCart(ctx context.Context, cart entities.Cart) error
	AssignToAccount(ctx context.Context, cartID, accountID string) error
	DetachSession(ctx context.Context, cartID string) error
	SetPaymentIntent(ctx context.Context, cartID, intentID string) error
	UpsertLine(ctx context.Context, cartID string, line entities.CartLine) error
	SetLineQuantity(ctx context.Context, cartID string, line entities.CartLine) error
	DeleteLine(ctx context.Context, cartID, productID, variantID string) error
	MergeLines(ctx context.Context, fromCartID, toCartID string) error
	ClearLines(ctx context.Context, cartID string) (int64, error)
}

type CartService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      CartRepo
}

func NewCartService(logger *slog.Logger, txManager trm.Manager, repo CartRepo) *CartService {
	return &CartService{
		logger:    logger.With(slog.String("service", "cart")),
		txManager: txManager,
		repo:      repo,
	}
}

// Resolve returns the single authoritative cart for a request. When an
// anonymous cart is adopted or merged into an account cart it also returns a
// fresh session token replacing the consumed one, so a stale tab cannot
// reattach to the merged-away anonymous cart. The returned token is empty
// when the caller's token is still valid.
//
// With create=false a missing cart surfaces as entities.ErrCartNotFound
// instead of being created: carts come into existence lazily, on the first
// mutation.
func (s *CartService) Resolve(ctx context.Context, sessionToken, accountID string, create bool) (entities.Cart, string, error) {
	if accountID == "" {
		if sessionToken == "" {
			return entities.Cart{}, "", entities.ErrNoIdentity
		}
		cart, err := s.repo.GetCartBySession(ctx, sessionToken)
		if errors.Is(err, entities.ErrCartNotFound) && create {
			return s.createCart(ctx, sessionToken, "")
		}
		return cart, "", err
	}

	accountCart, err := s.repo.GetCartByAccount(ctx, accountID)
	switch {
	case err == nil:
		return s.mergeAnonymous(ctx, accountCart, sessionToken)
	case errors.Is(err, entities.ErrCartNotFound):
		return s.adoptOrCreate(ctx, sessionToken, accountID, create)
	default:
		return entities.Cart{}, "", err
	}
}

// mergeAnonymous folds a still-live anonymous cart into the account cart:
// lines are unioned with quantities summed, and the anonymous identity is
// consumed.
func (s *CartService) mergeAnonymous(ctx context.Context, accountCart entities.Cart, sessionToken string) (entities.Cart, string, error) {
	if sessionToken == "" {
		return accountCart, "", nil
	}

	sessionCart, err := s.repo.GetCartBySession(ctx, sessionToken)
	if errors.Is(err, entities.ErrCartNotFound) {
		return accountCart, "", nil
	}
	if err != nil {
		return entities.Cart{}, "", err
	}
	if sessionCart.ID == accountCart.ID {
		return accountCart, "", nil
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.repo.MergeLines(ctx, sessionCart.ID, accountCart.ID); err != nil {
			return err
		}
		return s.repo.DetachSession(ctx, sessionCart.ID)
	})
	if err != nil {
		return entities.Cart{}, "", fmt.Errorf("failed to merge carts: %w", err)
	}

	s.logger.InfoContext(ctx, "merged anonymous cart into account cart",
		slog.String("from", sessionCart.ID), slog.String("to", accountCart.ID))

	merged, err := s.repo.GetCartByID(ctx, accountCart.ID)
	if err != nil {
		return entities.Cart{}, "", err
	}
	return merged, newSessionToken(), nil
}

func (s *CartService) adoptOrCreate(ctx context.Context, sessionToken, accountID string, create bool) (entities.Cart, string, error) {
	if sessionToken != "" {
		sessionCart, err := s.repo.GetCartBySession(ctx, sessionToken)
		if err == nil {
			if err := s.repo.AssignToAccount(ctx, sessionCart.ID, accountID); err != nil {
				return entities.Cart{}, "", err
			}
			sessionCart.AccountID = accountID
			sessionCart.SessionToken = ""
			return sessionCart, newSessionToken(), nil
		}
		if !errors.Is(err, entities.ErrCartNotFound) {
			return entities.Cart{}, "", err
		}
	}

	if !create {
		return entities.Cart{}, "", entities.ErrCartNotFound
	}
	return s.createCart(ctx, "", accountID)
}

func (s *CartService) createCart(ctx context.Context, sessionToken, accountID string) (entities.Cart, string, error) {
	cart := entities.Cart{
		ID:           uuid.NewString(),
		SessionToken: sessionToken,
		AccountID:    accountID,
	}
	if err := s.repo.CreateCart(ctx, cart); err != nil {
		return entities.Cart{}, "", err
	}
	return cart, "", nil
}

func (s *CartService) AddItem(ctx context.Context, cartID string, line entities.CartLine) (entities.Cart, error) {
	if line.Quantity < 1 {
		line.Quantity = 1
	}
	if err := s.repo.UpsertLine(ctx, cartID, line); err != nil {
		return entities.Cart{}, err
	}
	return s.repo.GetCartByID(ctx, cartID)
}

func (s *CartService) UpdateItem(ctx context.Context, cartID string, line entities.CartLine) (entities.Cart, error) {
	if line.Quantity < 1 {
		if err := s.repo.DeleteLine(ctx, cartID, line.ProductID, line.VariantID); err != nil {
			return entities.Cart{}, err
		}
	} else if err := s.repo.SetLineQuantity(ctx, cartID, line); err != nil {
		return entities.Cart{}, err
	}
	return s.repo.GetCartByID(ctx, cartID)
}

func (s *CartService) RemoveItem(ctx context.Context, cartID, productID, variantID string) (entities.Cart, error) {
	if err := s.repo.DeleteLine(ctx, cartID, productID, variantID); err != nil {
		return entities.Cart{}, err
	}
	return s.repo.GetCartByID(ctx, cartID)
}

// Clear empties the cart after a successful order: lines are deleted, the
// cart row itself survives for future sessions, any lingering anonymous
// identity is detached and the consumed authorization reference dropped.
// Safe to call any number of times; both reconciliation triggers call it
// independently.
func (s *CartService) Clear(ctx context.Context, cartID string) error {
	return s.txManager.Do(ctx, func(ctx context.Context) error {
		rows, err := s.repo.ClearLines(ctx, cartID)
		if err != nil {
			return err
		}
		if err := s.repo.DetachSession(ctx, cartID); err != nil {
			return err
		}
		if err := s.repo.SetPaymentIntent(ctx, cartID, ""); err != nil {
			return err
		}

		s.logger.DebugContext(ctx, "cart cleared",
			slog.String("cart_id", cartID), slog.Int64("lines_deleted", rows))
		return nil
	})
}

func newSessionToken() string {
	return uuid.NewString()
}
