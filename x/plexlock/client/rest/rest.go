package rest

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	sdk "github.com/plexfi/plexlock/types"
	"github.com/plexfi/plexlock/x/plexlock/keeper"
	"github.com/plexfi/plexlock/x/plexlock/types"
)

// ContextFactory yields a fresh read-only query context at the current time.
type ContextFactory func() sdk.Context

func RegisterRoutes(r *mux.Router, q keeper.Querier, newCtx ContextFactory) {
	r.HandleFunc(
		"/plexlock/params",
		queryHandlerFn(q, newCtx, func(*http.Request) []string {
			return []string{types.QueryParams}
		}),
	).Methods("GET")

	r.HandleFunc(
		"/plexlock/epoch/current",
		queryHandlerFn(q, newCtx, func(*http.Request) []string {
			return []string{types.QueryCurrentEpoch}
		}),
	).Methods("GET")

	r.HandleFunc(
		"/plexlock/epoch/{epoch}",
		queryHandlerFn(q, newCtx, func(r *http.Request) []string {
			return []string{types.QueryEpoch, mux.Vars(r)["epoch"]}
		}),
	).Methods("GET")

	r.HandleFunc(
		"/plexlock/redemptions/outstanding",
		queryHandlerFn(q, newCtx, func(*http.Request) []string {
			return []string{types.QueryOutstanding}
		}),
	).Methods("GET")

	r.HandleFunc(
		"/plexlock/redemptions/obligations",
		queryHandlerFn(q, newCtx, func(*http.Request) []string {
			return []string{types.QueryObligations}
		}),
	).Methods("GET")

	r.HandleFunc(
		"/plexlock/snapshot/current",
		queryHandlerFn(q, newCtx, func(*http.Request) []string {
			return []string{types.QuerySnapshotID}
		}),
	).Methods("GET")

	r.HandleFunc(
		"/plexlock/redemption-note/{unlockTime}/{address}",
		queryHandlerFn(q, newCtx, func(r *http.Request) []string {
			vars := mux.Vars(r)
			return []string{types.QueryRedemptionNote, vars["unlockTime"], vars["address"]}
		}),
	).Methods("GET")

	r.HandleFunc(
		"/plexlock/futures/{kind}/{epoch}/{address}",
		queryHandlerFn(q, newCtx, func(r *http.Request) []string {
			vars := mux.Vars(r)
			return []string{types.QueryFutures, vars["kind"], vars["epoch"], vars["address"]}
		}),
	).Methods("GET")

	r.HandleFunc(
		"/plexlock/stake-pool/{expiry}",
		queryHandlerFn(q, newCtx, func(r *http.Request) []string {
			return []string{types.QueryStakePool, mux.Vars(r)["expiry"]}
		}),
	).Methods("GET")
}

func queryHandlerFn(q keeper.Querier, newCtx ContextFactory, pathFn func(*http.Request) []string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bz, err := q(newCtx(), pathFn(r))
		if err != nil {
			writeError(w, err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(bz)
	}
}

func writeError(w http.ResponseWriter, err sdk.Error) {
	status := http.StatusBadRequest
	if err.Codespace() == sdk.CodespaceRoot && err.Code() == sdk.CodeInternal {
		status = http.StatusInternalServerError
	}
	body, _ := json.Marshal(errorResponse{
		Codespace: string(err.Codespace()),
		Code:      uint32(err.Code()),
		Error:     err.Message(),
	})
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

type errorResponse struct {
	Codespace string `json:"codespace"`
	Code      uint32 `json:"code"`
	Error     string `json:"error"`
}
