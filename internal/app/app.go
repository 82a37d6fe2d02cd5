package app

import (
	"log"

	"github.com/forkful/client/config"
	"github.com/forkful/client/internal/cache"
	"github.com/forkful/client/internal/notify"
	"github.com/forkful/client/internal/pager"
	"github.com/forkful/client/internal/search"
	"github.com/forkful/client/internal/service"
	"github.com/forkful/client/internal/store"
	"github.com/forkful/client/internal/transport"
	"github.com/forkful/client/internal/types"
	"github.com/forkful/client/internal/wizard"
)

// App is the composition root: one transport, one cache, the two state
// stores, and a service per resource family, all sharing them.
type App struct {
	Config *config.Config
	Auth   *store.AuthStore
	Draft  *store.DraftStore
	Cache  *cache.Store

	Recipes    service.IRecipeService
	Categories service.ICategoryService
	Ratings    service.IRatingService
	Comments   service.ICommentService
	Images     service.IImageService
	Accounts   service.IAccountService
	Favorites  service.IFavoriteService
}

// New wires the client from configuration
func New(cfg *config.Config, notifier notify.Notifier) *App {
	api := transport.New(cfg)
	c := cache.NewStore(cfg.CacheTTL)
	c.OnRefreshError = func(key cache.Key, err error) {
		log.Printf("cache: refresh of %s failed: %v", key, err)
	}

	auth := store.NewAuthStore()
	draft := store.NewDraftStore()
	images := service.NewImageService(api, notifier)

	return &App{
		Config:     cfg,
		Auth:       auth,
		Draft:      draft,
		Cache:      c,
		Recipes:    service.NewRecipeService(api, c, notifier, images, cfg.PlaceholderImageURL),
		Categories: service.NewCategoryService(api, c, notifier),
		Ratings:    service.NewRatingService(api, c, notifier),
		Comments:   service.NewCommentService(api, c, notifier),
		Images:     images,
		Accounts:   service.NewAccountService(api, auth, notifier),
		Favorites:  service.NewFavoriteService(api, c),
	}
}

// NewPager creates an infinite list controller with the configured page size
func (a *App) NewPager() *pager.Controller {
	return pager.New(a.Recipes, a.Config.PageSize)
}

// NewSearcher creates a debounced searcher with the configured window
func (a *App) NewSearcher(onResult func(string, *types.RecipeListResponse), onError func(string, error)) *search.Searcher {
	return search.New(a.Recipes, a.Config.SearchDebounce, a.Config.PageSize, onResult, onError)
}

// NewWizard starts a fresh recipe creation flow over the draft store
func (a *App) NewWizard() *wizard.Wizard {
	return wizard.New(a.Draft, a.Recipes, a.Categories)
}
