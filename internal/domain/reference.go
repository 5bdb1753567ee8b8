package domain

// Messages attached to reference items that fail resolution. Kept stable:
// bulk callers surface them verbatim, per item.
const (
	MsgMultipleEntries = "multiple entries for the same element"
	MsgNoCorresponding = "no corresponding id in database"
	MsgMissingID       = "missing id"
	MsgMissingName     = "missing name"
)

// Ref is one reference occurrence inside a recipe payload: either "by id"
// (must exist) or "by name" (create if absent). When both are set the id
// wins; an item carrying neither fails validation.
type Ref struct {
	ID   *int64
	Name *string
}

// Entity is a resolved reference row.
type Entity struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// IngredientItem is the transient, request-scoped ingredient reference. The
// resolver fills ID and Name in place; Quantity and Measurement pass through
// untouched.
type IngredientItem struct {
	ID          *int64      `json:"id,omitempty"`
	Name        *string     `json:"name,omitempty"`
	Quantity    int         `json:"quantity"`
	Measurement Measurement `json:"measurement"`
}

func (it *IngredientItem) Ref() Ref { return Ref{ID: it.ID, Name: it.Name} }

type UtensilItem struct {
	ID   *int64  `json:"id,omitempty"`
	Name *string `json:"name,omitempty"`
}

func (it *UtensilItem) Ref() Ref { return Ref{ID: it.ID, Name: it.Name} }

func IngredientRefs(items []IngredientItem) []Ref {
	refs := make([]Ref, len(items))
	for i := range items {
		refs[i] = items[i].Ref()
	}
	return refs
}

func UtensilRefs(items []UtensilItem) []Ref {
	refs := make([]Ref, len(items))
	for i := range items {
		refs[i] = items[i].Ref()
	}
	return refs
}

// ItemError maps a field ("id" or "name") to its messages for one item.
type ItemError map[string][]string

// ItemErrors collects reference failures keyed by the item's position in the
// request, so bulk callers can report every offending item at once.
type ItemErrors map[int]ItemError

func (e ItemErrors) Add(index int, field, msg string) {
	item, ok := e[index]
	if !ok {
		item = ItemError{}
		e[index] = item
	}
	item[field] = append(item[field], msg)
}

// ReferenceErrors aggregates per-item failures for both reference tables of
// one recipe write. It is a validation-class error: the enclosing transaction
// rolls back and the caller reports the items.
type ReferenceErrors struct {
	Ingredients ItemErrors `json:"ingredients,omitempty"`
	Utensils    ItemErrors `json:"utensils,omitempty"`
}

func (e *ReferenceErrors) Error() string { return "invalid entity references" }

func (e *ReferenceErrors) Empty() bool {
	return len(e.Ingredients) == 0 && len(e.Utensils) == 0
}
