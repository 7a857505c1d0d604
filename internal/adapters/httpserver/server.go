package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/phenrril/flexlinen/internal/adapters/export/xlsx"
	"github.com/phenrril/flexlinen/internal/domain"
	"github.com/phenrril/flexlinen/internal/usecase"
)

const maxBody = 4096

type Server struct {
	mux      chi.Router
	products *usecase.ProductUC
	cartUC   *usecase.CartUC
	cart     *usecase.CartStore
	wishlist *usecase.WishlistStore
}

func New(p *usecase.ProductUC, cart *usecase.CartStore, wishlist *usecase.WishlistStore) http.Handler {
	s := &Server{
		mux:      chi.NewRouter(),
		products: p,
		cartUC:   &usecase.CartUC{Products: p, Cart: cart},
		cart:     cart,
		wishlist: wishlist,
	}
	s.routes()
	return Chain(s.mux,
		Recovery,
		Logging,
		RequestID,
	)
}

func (s *Server) routes() {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
	})

	s.mux.Route("/api", func(r chi.Router) {
		r.Get("/products", s.apiProducts)
		r.Get("/products/suggest", s.apiSuggest)
		r.Get("/products/export.xlsx", s.apiExport)
		r.Get("/products/{id}", s.apiProductByID)

		r.Get("/categories", s.apiCategories)
		r.Get("/categories/{slug}", s.apiCategory)
		r.Get("/collections", s.apiCollections)
		r.Get("/collections/{id}", s.apiCollection)
		r.Get("/sort-options", s.apiSortOptions)

		r.Get("/cart", s.apiCart)
		r.Delete("/cart", s.apiCartClear)
		r.Post("/cart/items", s.apiCartAdd)
		r.Patch("/cart/items/{id}", s.apiCartUpdate)
		r.Delete("/cart/items/{id}", s.apiCartRemove)
		r.Put("/cart/searching", s.apiCartSearching)

		r.Get("/wishlist", s.apiWishlist)
		r.Put("/wishlist/{id}", s.apiWishlistAdd)
		r.Delete("/wishlist/{id}", s.apiWishlistRemove)
	})
}

// --- catalog ---

func (s *Server) apiProducts(w http.ResponseWriter, r *http.Request) {
	qv := r.URL.Query()
	q := usecase.ListQuery{
		Query:    qv.Get("q"),
		Category: qv.Get("category"),
		Price:    qv.Get("price"),
		Sort:     qv.Get("sort"),
	}
	list, err := s.products.List(r.Context(), q)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"products": list, "total": len(list)})
}

func (s *Server) apiSuggest(w http.ResponseWriter, r *http.Request) {
	list, err := s.products.Suggest(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"suggestions": list})
}

type productView struct {
	domain.Product
	InWishlist bool `json:"inWishlist"`
	InCart     int  `json:"inCart"`
}

func (s *Server) apiProductByID(w http.ResponseWriter, r *http.Request) {
	p, err := s.products.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	v := productView{Product: *p, InWishlist: s.wishlist.Contains(p.ID)}
	if it, ok := s.cart.State().Find(p.ID); ok {
		v.InCart = it.Quantity
	}
	writeJSON(w, http.StatusOK, v)
}

func (s *Server) apiExport(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := xlsx.WriteCatalog(&buf, s.products.Catalog.Products(), s.products.Catalog.Collections()); err != nil {
		log.Error().Err(err).Msg("export catalog")
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename=catalog.xlsx")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	_, _ = buf.WriteTo(w)
}

func (s *Server) apiCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := s.products.Categories(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"categories": cats})
}

func (s *Server) apiCategory(w http.ResponseWriter, r *http.Request) {
	page, list, err := s.products.Category(r.Context(), chi.URLParam(r, "slug"), r.URL.Query().Get("sort"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"category": page, "products": list})
}

func (s *Server) apiCollections(w http.ResponseWriter, r *http.Request) {
	featured := r.URL.Query().Get("featured") == "1"
	writeJSON(w, http.StatusOK, map[string]any{"collections": s.products.Collections(r.Context(), featured)})
}

func (s *Server) apiCollection(w http.ResponseWriter, r *http.Request) {
	col, list, err := s.products.Collection(r.Context(), chi.URLParam(r, "id"), r.URL.Query().Get("sort"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"collection": col, "products": list})
}

func (s *Server) apiSortOptions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"options": s.products.SortOptions(r.Context())})
}

// --- cart ---

type cartView struct {
	domain.CartState
	ItemCount int `json:"itemCount"`
}

func viewOf(st domain.CartState) cartView {
	return cartView{CartState: st, ItemCount: st.ItemCount()}
}

func (s *Server) apiCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, viewOf(s.cart.State()))
}

func (s *Server) apiCartAdd(w http.ResponseWriter, r *http.Request) {
	var req usecase.AddToCartRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "invalid body"})
		return
	}
	ops, err := s.cartUC.Add(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	s.finish(w, r, ops...)
}

func (s *Server) apiCartUpdate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Quantity *int `json:"quantity"`
	}
	if err := decodeJSON(r, &req); err != nil || req.Quantity == nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "quantity required"})
		return
	}
	s.finish(w, r, s.cart.UpdateQuantity(chi.URLParam(r, "id"), *req.Quantity))
}

func (s *Server) apiCartRemove(w http.ResponseWriter, r *http.Request) {
	s.finish(w, r, s.cart.RemoveItem(chi.URLParam(r, "id")))
}

func (s *Server) apiCartClear(w http.ResponseWriter, r *http.Request) {
	s.finish(w, r, s.cart.ClearCart())
}

func (s *Server) apiCartSearching(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Searching bool `json:"searching"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "invalid body"})
		return
	}
	writeJSON(w, http.StatusOK, viewOf(s.cart.SetSearching(req.Searching)))
}

// finish answers a cart mutation. With ?async=1 the client gets the
// loading state back at once; otherwise the handler waits for the ops.
func (s *Server) finish(w http.ResponseWriter, r *http.Request, ops ...*usecase.PendingOp) {
	if r.URL.Query().Get("async") == "1" {
		writeJSON(w, http.StatusAccepted, viewOf(s.cart.State()))
		return
	}
	st, err := usecase.WaitAll(r.Context(), ops)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return
		}
		log.Error().Err(err).Str("request_id", requestIDFrom(r.Context())).Msg("cart snapshot")
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "cart not saved", "cart": viewOf(st)})
		return
	}
	writeJSON(w, http.StatusOK, viewOf(st))
}

// --- wishlist ---

func (s *Server) apiWishlist(w http.ResponseWriter, r *http.Request) {
	items := s.wishlist.Items()
	writeJSON(w, http.StatusOK, map[string]any{"items": items, "count": len(items)})
}

func (s *Server) apiWishlistAdd(w http.ResponseWriter, r *http.Request) {
	p, err := s.products.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	added := s.wishlist.Add(*p)
	writeJSON(w, http.StatusOK, map[string]any{"added": added, "count": s.wishlist.Count()})
}

func (s *Server) apiWishlistRemove(w http.ResponseWriter, r *http.Request) {
	removed := s.wishlist.Remove(chi.URLParam(r, "id"))
	writeJSON(w, http.StatusOK, map[string]any{"removed": removed, "count": s.wishlist.Count()})
}

// --- helpers ---

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBody))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, map[string]any{"error": "not found"})
	case errors.Is(err, usecase.ErrInvalidSelection):
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": err.Error()})
	default:
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "internal error"})
	}
}
