package app

import (
	"go.uber.org/fx"

	"github.com/opora-health/opora_backend/config"
	"github.com/opora-health/opora_backend/internal/repo"
	"github.com/opora-health/opora_backend/internal/service/survey"
	"github.com/opora-health/opora_backend/internal/store/entstore"
	"github.com/opora-health/opora_backend/pkg/oracle"
	pasetotoken "github.com/opora-health/opora_backend/pkg/paseto"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideSessionStore,
		ProvideSurveyService,
		ProvidePasetoManager,
	),
)

func ProvideSessionStore(db *repo.Client) survey.Store {
	return entstore.New(db)
}

func ProvideSurveyService(store survey.Store, oc *oracle.Client) survey.Service {
	return survey.New(store, oc)
}

func ProvidePasetoManager(cfg *config.Config) (*pasetotoken.Manager, error) {
	return pasetotoken.NewPasetoManager(cfg)
}
