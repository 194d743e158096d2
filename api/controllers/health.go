package controllers

import (
	"net/http"
	"os"

	"go.uber.org/multierr"

	"github.com/almashriq-motors/dealership-backend/api/responses"
	"github.com/almashriq-motors/dealership-backend/pkg/config"
	"github.com/almashriq-motors/dealership-backend/pkg/db"
	pkgerrors "github.com/almashriq-motors/dealership-backend/pkg/errors"
	"github.com/almashriq-motors/dealership-backend/pkg/logger"
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Dealer-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady verifies the catalog backing and the uploads directory.
// dbP is nil on the in-memory backing.
func HealthReady(cfg *config.Config, logg *logger.Logger, dbP db.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Dealer-Env", cfg.App.Env)

		var err error
		if dbP != nil {
			err = multierr.Append(err, dbP.Ping(r.Context()))
		}
		if _, statErr := os.Stat(cfg.Media.Dir); statErr != nil {
			err = multierr.Append(err, statErr)
		}

		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "readiness check failed"))
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
