package domain

// CartStorageKey is the key the cart snapshot is persisted under.
const CartStorageKey = "flexlinen-cart"

// CartItem is a line item. Product fields are flattened into the JSON
// object, matching the persisted snapshot layout.
type CartItem struct {
	Product
	Quantity int    `json:"quantity"`
	Size     string `json:"size,omitempty"`
	Color    string `json:"color,omitempty"`
}

type CartState struct {
	Items       []CartItem `json:"items"`
	Total       float64    `json:"total"`
	IsLoading   bool       `json:"isLoading"`
	IsSearching bool       `json:"isSearching"`
}

// EmptyCart is the state after CLEAR_CART.
func EmptyCart() CartState {
	return CartState{Items: []CartItem{}}
}

func (s CartState) Find(id string) (CartItem, bool) {
	for _, it := range s.Items {
		if it.ID == id {
			return it, true
		}
	}
	return CartItem{}, false
}

// ItemCount is the number of units across all lines.
func (s CartState) ItemCount() int {
	n := 0
	for _, it := range s.Items {
		n += it.Quantity
	}
	return n
}

// Subtotal recomputes the total from the lines.
func (s CartState) Subtotal() float64 {
	t := 0.0
	for _, it := range s.Items {
		t += it.Price * float64(it.Quantity)
	}
	return t
}

// Clone returns a deep copy of s.
func (s CartState) Clone() CartState {
	out := s
	if s.Items != nil {
		out.Items = make([]CartItem, len(s.Items))
		for i, it := range s.Items {
			it.Product = it.Product.Clone()
			out.Items[i] = it
		}
	}
	return out
}

type ActionType string

const (
	ActionAddItem        ActionType = "ADD_ITEM"
	ActionRemoveItem     ActionType = "REMOVE_ITEM"
	ActionUpdateQuantity ActionType = "UPDATE_QUANTITY"
	ActionClearCart      ActionType = "CLEAR_CART"
	ActionSetLoading     ActionType = "SET_LOADING"
	ActionSetSearching   ActionType = "SET_SEARCHING"
	ActionHydrateCart    ActionType = "HYDRATE_CART"
)

// CartAction carries the payload for one transition. Only the fields
// relevant to Type are read.
type CartAction struct {
	Type     ActionType
	Item     CartItem
	ID       string
	Quantity int
	Flag     bool
	Snapshot CartState
}

func AddItem(item CartItem) CartAction { return CartAction{Type: ActionAddItem, Item: item} }

func RemoveItem(id string) CartAction { return CartAction{Type: ActionRemoveItem, ID: id} }

func UpdateQuantity(id string, qty int) CartAction {
	return CartAction{Type: ActionUpdateQuantity, ID: id, Quantity: qty}
}

func ClearCart() CartAction { return CartAction{Type: ActionClearCart} }

func SetLoading(v bool) CartAction { return CartAction{Type: ActionSetLoading, Flag: v} }

func SetSearching(v bool) CartAction { return CartAction{Type: ActionSetSearching, Flag: v} }

func HydrateCart(snapshot CartState) CartAction {
	return CartAction{Type: ActionHydrateCart, Snapshot: snapshot}
}

// ReduceCart applies a to s and returns the next state. It never mutates
// s. When a is a no-op (unknown id, unknown type) s is returned as is.
func ReduceCart(s CartState, a CartAction) CartState {
	switch a.Type {
	case ActionAddItem:
		next := s.Clone()
		for i := range next.Items {
			if next.Items[i].ID == a.Item.ID {
				next.Items[i].Quantity++
				next.Total += a.Item.Price
				return next
			}
		}
		it := a.Item
		it.Product = it.Product.Clone()
		it.Quantity = 1
		next.Items = append(next.Items, it)
		next.Total += it.Price
		return next

	case ActionRemoveItem:
		old, ok := s.Find(a.ID)
		if !ok {
			return s
		}
		next := s.Clone()
		items := make([]CartItem, 0, len(next.Items))
		for _, it := range next.Items {
			if it.ID != a.ID {
				items = append(items, it)
			}
		}
		next.Items = items
		next.Total -= old.Price * float64(old.Quantity)
		return next

	case ActionUpdateQuantity:
		old, ok := s.Find(a.ID)
		if !ok {
			return s
		}
		next := s.Clone()
		for i := range next.Items {
			if next.Items[i].ID == a.ID {
				next.Items[i].Quantity = a.Quantity
			}
		}
		next.Total += old.Price * float64(a.Quantity-old.Quantity)
		return next

	case ActionClearCart:
		return EmptyCart()

	case ActionSetLoading:
		next := s
		next.IsLoading = a.Flag
		return next

	case ActionSetSearching:
		next := s
		next.IsSearching = a.Flag
		return next

	case ActionHydrateCart:
		next := a.Snapshot.Clone()
		if next.Items == nil {
			next.Items = []CartItem{}
		}
		next.IsSearching = false
		return next

	default:
		return s
	}
}
