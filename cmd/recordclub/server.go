package main

import (
	"net/http"

	"recordclub/internal/app/favorites"
	"recordclub/internal/app/featured"
	"recordclub/internal/app/reviews"
	"recordclub/internal/app/users"
	"recordclub/internal/auth"
	"recordclub/internal/catalog"
	"recordclub/internal/httpapi"
	"recordclub/internal/middleware"
	"recordclub/internal/store"
)

func newHTTPHandler(cfg Config, dataStore *store.Store) http.Handler {
	tokens := auth.NewTokenManager(cfg.JWTSecret)

	catalogClient := catalog.NewClient(catalog.Config{
		BaseURL: cfg.CatalogBaseURL,
		Country: cfg.CatalogCountry,
		Lang:    cfg.CatalogLang,
	})

	userSvc := users.New(dataStore, tokens)
	reviewSvc := reviews.New(dataStore)
	favoriteSvc := favorites.New(dataStore)
	featuredSvc := featured.New(dataStore, catalogClient)

	handler := httpapi.New(userSvc, catalogClient, reviewSvc, favoriteSvc, featuredSvc, tokens).Routes()

	handler = middleware.RequestLogging()(handler)
	handler = middleware.Recovery()(handler)
	handler = middleware.CORS(cfg.AllowedOrigins)(handler)
	return handler
}
