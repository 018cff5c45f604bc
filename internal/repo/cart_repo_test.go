package repo_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/storefront/checkout-service/internal/entities"
	"github.com/storefront/checkout-service/internal/repo"
	"github.com/storefront/checkout-service/internal/service"
	"github.com/storefront/checkout-service/pkg/trm"
)

// cartRepoSuite runs the cart repo and the cart service against a real
// postgres schema: the mock-based unit tests cannot see constraint
// violations, so everything touching carts row state lands here.
type cartRepoSuite struct {
	suite.Suite

	db        *sqlx.DB
	repo      *repo.CartRepo
	svc       *service.CartService
	container testcontainers.Container
}

func TestCartRepoSuite(t *testing.T) {
	suite.Run(t, new(cartRepoSuite))
}

func (s *cartRepoSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("checkout"),
		tcpostgres.WithUsername("checkout"),
		tcpostgres.WithPassword("checkout"),
		tcpostgres.BasicWaitStrategies(),
	)
	s.Require().NoError(err)
	s.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	s.Require().NoError(err)

	m, err := migrate.New("file://../../migrations", connStr)
	s.Require().NoError(err)
	s.Require().NoError(m.Up())
	m.Close()

	s.db, err = sqlx.Connect("postgres", connStr)
	s.Require().NoError(err)

	s.repo = repo.NewCartRepo(s.db)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.svc = service.NewCartService(logger, trm.NewManager(s.db), s.repo)
}

func (s *cartRepoSuite) TearDownSuite() {
	if s.db != nil {
		s.db.Close()
	}
	if s.container != nil {
		s.NoError(s.container.Terminate(context.Background()))
	}
}

func (s *cartRepoSuite) newAnonymousCart(ctx context.Context, lines ...entities.CartLine) (entities.Cart, string) {
	token := uuid.NewString()
	cart := entities.Cart{ID: uuid.NewString(), SessionToken: token}
	s.Require().NoError(s.repo.CreateCart(ctx, cart))
	for _, line := range lines {
		s.Require().NoError(s.repo.UpsertLine(ctx, cart.ID, line))
	}
	return cart, token
}

// An anonymous cart has no account id, so detaching its session must leave a
// row with neither identity. The schema has to accept that: the merge and
// clear transactions both end in this state.
func (s *cartRepoSuite) TestDetachSessionOnAnonymousCart() {
	ctx := context.Background()
	cart, token := s.newAnonymousCart(ctx, entities.CartLine{ProductID: "p1", Quantity: 2})

	s.Require().NoError(s.repo.DetachSession(ctx, cart.ID))

	_, err := s.repo.GetCartBySession(ctx, token)
	s.ErrorIs(err, entities.ErrCartNotFound)

	got, err := s.repo.GetCartByID(ctx, cart.ID)
	s.Require().NoError(err)
	s.Empty(got.SessionToken)
	s.Len(got.Lines, 1, "detaching the identity must not touch the lines")
}

func (s *cartRepoSuite) TestMergeAnonymousIntoAccountCart() {
	ctx := context.Background()
	accountID := uuid.NewString()

	anonCart, token := s.newAnonymousCart(ctx,
		entities.CartLine{ProductID: "p1", Quantity: 2},
		entities.CartLine{ProductID: "p2", VariantID: "blue", Quantity: 1},
	)

	accountCart := entities.Cart{ID: uuid.NewString(), AccountID: accountID}
	s.Require().NoError(s.repo.CreateCart(ctx, accountCart))
	s.Require().NoError(s.repo.UpsertLine(ctx, accountCart.ID, entities.CartLine{ProductID: "p1", Quantity: 1}))

	merged, freshToken, err := s.svc.Resolve(ctx, token, accountID, false)
	s.Require().NoError(err)

	s.Equal(accountCart.ID, merged.ID)
	s.Equal([]entities.CartLine{
		{ProductID: "p1", Quantity: 3},
		{ProductID: "p2", VariantID: "blue", Quantity: 1},
	}, merged.Lines, "overlapping lines sum quantities")
	s.NotEmpty(freshToken)
	s.NotEqual(token, freshToken)

	// The consumed anonymous identity is gone and its cart is empty.
	_, err = s.repo.GetCartBySession(ctx, token)
	s.ErrorIs(err, entities.ErrCartNotFound)

	drained, err := s.repo.GetCartByID(ctx, anonCart.ID)
	s.Require().NoError(err)
	s.Empty(drained.Lines)
}

func (s *cartRepoSuite) TestClearAnonymousCartTwice() {
	ctx := context.Background()
	cart, token := s.newAnonymousCart(ctx,
		entities.CartLine{ProductID: "p1", Quantity: 2},
		entities.CartLine{ProductID: "p3", Quantity: 5},
	)
	s.Require().NoError(s.repo.SetPaymentIntent(ctx, cart.ID, "pi_cleared"))

	s.Require().NoError(s.svc.Clear(ctx, cart.ID))
	s.Require().NoError(s.svc.Clear(ctx, cart.ID), "second clear must be a no-op, not an error")

	got, err := s.repo.GetCartByID(ctx, cart.ID)
	s.Require().NoError(err)
	s.Empty(got.Lines)
	s.Empty(got.SessionToken)
	s.Empty(got.PaymentIntentID)

	_, err = s.repo.GetCartBySession(ctx, token)
	s.ErrorIs(err, entities.ErrCartNotFound)
}
