package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/2beens/fittracker/internal/telemetry/tracing"
	"github.com/2beens/fittracker/pkg"

	"github.com/coocood/freecache"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=catalog_mocks_test.go -package=catalog_test

type exercisesCatalog interface {
	ListExercises(ctx context.Context, params ListParams) ([]Exercise, error)
	GetExercise(ctx context.Context, id string) (*Exercise, error)
}

// the catalog never changes while the process runs
const responseCacheExpireSeconds = 0

type Handler struct {
	catalog exercisesCatalog
	cache   *freecache.Cache
}

func NewHandler(catalog exercisesCatalog, cacheSizeMB int) *Handler {
	megabyte := 1024 * 1024
	return &Handler{
		catalog: catalog,
		cache:   freecache.NewCache(cacheSizeMB * megabyte),
	}
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.list")
	defer span.End()

	params := ListParams{
		Category: Category(r.URL.Query().Get("category")),
		Query:    r.URL.Query().Get("q"),
	}
	span.SetAttributes(attribute.String("category", string(params.Category)))

	cacheKey := []byte("list::" + string(params.Category) + "::" + params.Query)
	if cached, err := handler.cache.Get(cacheKey); err == nil {
		span.SetAttributes(attribute.Bool("cache.hit", true))
		pkg.WriteResponseBytes(w, pkg.ContentType.JSON, cached, http.StatusOK)
		return
	}

	exercises, err := handler.catalog.ListExercises(ctx, params)
	if err != nil {
		log.Errorf("failed to list exercises: %s", err)
		http.Error(w, "failed to list exercises", http.StatusInternalServerError)
		return
	}

	exercisesJson, err := json.Marshal(exercises)
	if err != nil {
		log.Errorf("failed to marshal exercises: %s", err)
		http.Error(w, "failed to marshal exercises", http.StatusInternalServerError)
		return
	}

	if err := handler.cache.Set(cacheKey, exercisesJson, responseCacheExpireSeconds); err != nil {
		log.Warnf("failed to cache exercises list: %s", err)
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, exercisesJson, http.StatusOK)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.get")
	defer span.End()

	id := mux.Vars(r)["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}
	span.SetAttributes(attribute.String("exercise.id", id))

	exercise, err := handler.catalog.GetExercise(ctx, id)
	if errors.Is(err, ErrExerciseNotFound) {
		http.Error(w, "exercise not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("failed to get exercise %s: %s", id, err)
		http.Error(w, "failed to get exercise", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, exercise, http.StatusOK)
}

// HandleReadOnly rejects any attempt to change the catalog.
func (handler *Handler) HandleReadOnly(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Allow", "GET")
	http.Error(w, "exercise catalog is read-only", http.StatusMethodNotAllowed)
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/exercises", handler.HandleList).Methods("GET", "OPTIONS").Name("list-exercises")
	router.HandleFunc("/exercises/{id}", handler.HandleGet).Methods("GET", "OPTIONS").Name("get-exercise")
	router.HandleFunc("/exercises", handler.HandleReadOnly).Methods("POST", "PUT", "PATCH", "DELETE").Name("exercises-read-only")
	router.HandleFunc("/exercises/{id}", handler.HandleReadOnly).Methods("POST", "PUT", "PATCH", "DELETE").Name("exercise-read-only")
}
