package app

import (
	"context"
	"net/http"

	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/mrbebidas/distribuidora/internal/adapters/ai"
	"github.com/mrbebidas/distribuidora/internal/adapters/httpserver"
	"github.com/mrbebidas/distribuidora/internal/adapters/repo/mongodb"
	"github.com/mrbebidas/distribuidora/internal/config"
	"github.com/mrbebidas/distribuidora/internal/usecase"
)

// App is the composition root. The sync and read-model state lives here, one
// instance per process, instead of in package globals.
type App struct {
	Catalog *usecase.CatalogUC
	Syncer  *usecase.Syncer

	handler http.Handler
}

func New(db *mongo.Database, cfg *config.Config) *App {
	products := mongodb.NewProductRepo(db)
	categories := mongodb.NewCategoryRepo(db)
	siteInfo := mongodb.NewSiteInfoRepo(db)
	users := mongodb.NewUserRepo(db)

	syncer := usecase.NewSyncer(products, categories, siteInfo)
	catalog := usecase.NewCatalogUC(products, categories, siteInfo)
	admin := usecase.NewAdminUC(products, categories, siteInfo, catalog)
	auth := usecase.NewAuthUC(users)

	flows := ai.NewFlows(cfg.OpenAIKey, cfg.OpenAIModel)

	var oauthCfg *oauth2.Config
	if cfg.GoogleClientID != "" && cfg.GoogleClientSecret != "" {
		oauthCfg = &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.BaseURL + "/auth/google/callback",
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		}
	}

	return &App{
		Catalog: catalog,
		Syncer:  syncer,
		handler: httpserver.New(catalog, admin, auth, flows, oauthCfg, []byte(cfg.JWTSecret), cfg.BaseURL),
	}
}

// Start seeds the store if needed and brings up the read model subscription.
// Seed failures are non-fatal: the compiled-in catalog keeps the API serving.
func (a *App) Start(ctx context.Context) {
	a.Syncer.EnsureSeeded(ctx)
	a.Catalog.Start(ctx)
}

func (a *App) HTTPHandler() http.Handler { return a.handler }
