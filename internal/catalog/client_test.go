package catalog

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/samgau/atelier-storefront/internal/api"
	"github.com/samgau/atelier-storefront/pkg/logger"
)

func newCatalogClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	logg := logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
	rt, err := api.New(api.Params{BaseURL: server.URL, Timeout: 5 * time.Second, Logger: logg})
	if err != nil {
		t.Fatalf("building transport: %v", err)
	}
	client, err := NewClient(rt, 50)
	if err != nil {
		t.Fatalf("building client: %v", err)
	}
	return client
}

func TestProductsSendsServerSideFiltersOnly(t *testing.T) {
	router := chi.NewRouter()
	var query map[string]string
	router.Get("/products", func(w http.ResponseWriter, r *http.Request) {
		query = map[string]string{
			"skip":        r.URL.Query().Get("skip"),
			"limit":       r.URL.Query().Get("limit"),
			"category_id": r.URL.Query().Get("category_id"),
			"size":        r.URL.Query().Get("size"),
			"min_price":   r.URL.Query().Get("min_price"),
		}
		if r.URL.Query().Has("q") || r.URL.Query().Has("query") {
			t.Errorf("free-text query must not travel: %v", r.URL.Query())
		}
		w.Write([]byte(`[{"_id":"p1","name":"Wool Coat","price":5000,"variants":[]}]`))
	})

	client := newCatalogClient(t, router)

	filter := Filter{CategoryID: "c1", Size: "M", MinPrice: "10", Query: "coat"}
	products, err := client.Products(context.Background(), filter)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(products) != 1 || products[0].ID != "p1" {
		t.Fatalf("unexpected products %+v", products)
	}
	if query["skip"] != "0" || query["limit"] != "50" {
		t.Fatalf("unexpected paging %v", query)
	}
	if query["category_id"] != "c1" || query["size"] != "M" || query["min_price"] != "10" {
		t.Fatalf("unexpected filters %v", query)
	}
}

func TestCategoriesFetchesPage(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/categories", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("limit") != "50" {
			t.Errorf("unexpected limit %q", r.URL.Query().Get("limit"))
		}
		w.Write([]byte(`[{"_id":"c1","name":"Outerwear"},{"_id":"c2","name":"Knitwear"}]`))
	})

	client := newCatalogClient(t, router)

	categories, err := client.Categories(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(categories) != 2 || categories[1].Name != "Knitwear" {
		t.Fatalf("unexpected categories %+v", categories)
	}
}
