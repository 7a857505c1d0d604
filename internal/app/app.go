package app

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/rs/zerolog/log"
	gpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/phenrril/flexlinen/internal/adapters/httpserver"
	"github.com/phenrril/flexlinen/internal/adapters/repo/postgres"
	"github.com/phenrril/flexlinen/internal/adapters/storage/localfs"
	"github.com/phenrril/flexlinen/internal/adapters/storage/memory"
	"github.com/phenrril/flexlinen/internal/catalog"
	"github.com/phenrril/flexlinen/internal/config"
	"github.com/phenrril/flexlinen/internal/domain"
	"github.com/phenrril/flexlinen/internal/usecase"
)

type App struct {
	Config    config.Config
	DB        *gorm.DB
	Storage   domain.SnapshotStore
	Catalog   *catalog.Catalog
	ProductUC *usecase.ProductUC
	Cart      *usecase.CartStore
	Wishlist  *usecase.WishlistStore
}

// NewApp wires storage, catalog and stores from cfg. The cart is not
// hydrated yet; call Start.
func NewApp(ctx context.Context, cfg config.Config, opts ...usecase.CartOption) (*App, error) {
	a := &App{Config: cfg, Catalog: catalog.Default()}

	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		db, err := gorm.Open(gpostgres.Open(cfg.DB.ConnString()), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("connect database: %w", err)
		}
		repo := postgres.NewSnapshotRepo(db)
		if err := repo.Migrate(ctx); err != nil {
			return nil, fmt.Errorf("migrate snapshots: %w", err)
		}
		a.DB = db
		a.Storage = repo
	case config.DriverMemory:
		a.Storage = memory.New()
	default:
		if err := os.MkdirAll(cfg.Storage.Dir, 0o755); err != nil {
			return nil, fmt.Errorf("storage dir: %w", err)
		}
		a.Storage = localfs.New(cfg.Storage.Dir)
	}

	opts = append([]usecase.CartOption{usecase.WithDelay(cfg.CartDelay)}, opts...)
	a.ProductUC = &usecase.ProductUC{Catalog: a.Catalog}
	a.Cart = usecase.NewCartStore(a.Storage, opts...)
	a.Wishlist = usecase.NewWishlistStore()
	return a, nil
}

// Start restores the cart from its snapshot.
func (a *App) Start(ctx context.Context) {
	st := a.Cart.Hydrate(ctx)
	ev := log.Info().Str("driver", a.Config.Storage.Driver)
	if fs, ok := a.Storage.(*localfs.Storage); ok {
		ev = ev.Str("dir", fs.Dir())
	}
	ev.Int("items", st.ItemCount()).Msg("cart hydrated")
}

func (a *App) HTTPHandler() http.Handler {
	return httpserver.New(a.ProductUC, a.Cart, a.Wishlist)
}

// Shutdown lets scheduled cart mutations land, then closes storage.
// Mutations still pending when ctx ends are lost with the process.
func (a *App) Shutdown(ctx context.Context) error {
	if err := a.Cart.Drain(ctx); err != nil {
		log.Warn().Err(err).Msg("cart mutations still pending at shutdown")
	}
	return a.Close()
}

func (a *App) Close() error {
	if a.DB == nil {
		return nil
	}
	sqlDB, err := a.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
