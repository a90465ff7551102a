package handler

import (
	"encoding/json"

	"github.com/labstack/echo/v4"

	"github.com/chinsis/paramdemo/internal/model"
	"github.com/chinsis/paramdemo/internal/server"
	"github.com/chinsis/paramdemo/internal/validation"
)

// ItemHandler serves the item endpoints.
type ItemHandler struct {
	Handler
}

// NewItemHandler constructs an ItemHandler.
func NewItemHandler(s *server.Server) *ItemHandler {
	return &ItemHandler{Handler: NewHandler(s)}
}

// --- GET /items -------------------------------------------------------------

// itemQueryDefault is the value "item-query" takes when the parameter
// is absent. It is non-empty, so the response always carries "q".
const itemQueryDefault = "findindex"

// ReadItemsRequest declares the single query parameter of GET /items.
//
// The external name is "item-query" (an alias; the response still uses
// "q"). The parameter is marked deprecated in the OpenAPI document,
// which is the only surface that flag affects.
type ReadItemsRequest struct {
	Query string `query:"item-query" validate:"required,min=3,max=50,alpha"`
}

// Normalize applies the declared default when the parameter is absent.
// A parameter that is present but empty is left alone so the length
// constraint rejects it.
func (r *ReadItemsRequest) Normalize(c echo.Context) {
	if !c.QueryParams().Has("item-query") {
		r.Query = itemQueryDefault
	}
}

func (r *ReadItemsRequest) Validate() error {
	return validation.Struct(r)
}

// ReadItems returns the fixed two-entry item list plus the query value.
func (h *ItemHandler) ReadItems(c echo.Context, req *ReadItemsRequest) (map[string]any, error) {
	results := map[string]any{
		"items": []map[string]string{
			{"item_id": "Foo"},
			{"item_id": "Bar"},
		},
	}

	if req.Query != "" {
		results["q"] = req.Query
	}
	return results, nil
}

// --- POST /items/ -----------------------------------------------------------

// CreateItemRequest is a bare Item body. The embedded struct keeps the
// JSON shape flat and promotes the validation tags.
type CreateItemRequest struct {
	model.Item
}

func (r *CreateItemRequest) Validate() error {
	return validation.Struct(r)
}

// ItemWithTax is the creation response: the item's fields plus the
// derived price_with_tax.
type ItemWithTax struct {
	model.Item
	PriceWithTax float64 `json:"price_with_tax"`
}

// CreateItem echoes the item with price_with_tax = price + (tax or 0).
// Pure function of its input; no side effects.
func (h *ItemHandler) CreateItem(c echo.Context, req *CreateItemRequest) (*ItemWithTax, error) {
	return &ItemWithTax{
		Item:         req.Item,
		PriceWithTax: req.Item.PriceWithTax(),
	}, nil
}

// --- GET /items/:item_id ----------------------------------------------------

// ReadItemRequest declares the inputs of GET /items/:item_id: a ranged
// path integer, a required query parameter (absence is an error, not an
// optional-empty case), and an optional bare Item body.
type ReadItemRequest struct {
	ItemID int         `param:"item_id" validate:"gte=1,lte=1000"`
	Q      string      `query:"q" validate:"required"`
	Item   *model.Item `json:"item"`
}

// BindBody decodes the optional bare Item payload. The default binder
// would try to match the struct's own JSON shape, but the body here is
// the Item itself.
func (r *ReadItemRequest) BindBody(c echo.Context) error {
	if c.Request().ContentLength == 0 {
		return nil
	}
	return json.NewDecoder(c.Request().Body).Decode(&r.Item)
}

func (r *ReadItemRequest) Validate() error {
	return validation.Struct(r)
}

// ReadItemByID builds a mapping with item_id always present, adding
// "q" and "item" when present.
func (h *ItemHandler) ReadItemByID(c echo.Context, req *ReadItemRequest) (map[string]any, error) {
	results := map[string]any{"item_id": req.ItemID}

	if req.Q != "" {
		results["q"] = req.Q
	}
	if req.Item != nil {
		results["item"] = req.Item
	}
	return results, nil
}

// --- GET /itemes/about ------------------------------------------------------

// FilterParams is a closed query shape: any key outside the declared
// set rejects the request. The path spelling is intentional.
type FilterParams struct {
	Limit   int      `query:"limit" json:"limit" validate:"gte=1,lte=100"`
	Offset  int      `query:"offset" json:"offset" validate:"gte=0"`
	OrderBy string   `query:"order_by" json:"order_by" validate:"required,oneof=created_at update_at"`
	Tags    []string `query:"tags" json:"tags"`
}

// AllowedQueryParams closes the shape.
func (f *FilterParams) AllowedQueryParams() []string {
	return []string{"limit", "offset", "order_by", "tags"}
}

// Normalize applies the declared defaults: limit 10, offset 0, order_by
// "created_at", tags empty. Defaults key off parameter presence, so a
// present-but-empty value falls through to validation. Offset's default
// is the zero value; tags is materialized so the response renders []
// rather than null.
func (f *FilterParams) Normalize(c echo.Context) {
	if !c.QueryParams().Has("limit") {
		f.Limit = 10
	}
	if !c.QueryParams().Has("order_by") {
		f.OrderBy = "created_at"
	}
	if f.Tags == nil {
		f.Tags = []string{}
	}
}

func (f *FilterParams) Validate() error {
	return validation.Struct(f)
}

// About returns the validated filter shape verbatim.
func (h *ItemHandler) About(c echo.Context, req *FilterParams) (*FilterParams, error) {
	return req, nil
}
