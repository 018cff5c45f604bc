// Package snapshot serializes a cart snapshot into the bounded key/value
// metadata slots of a payment authorization, and restores it on the way back.
//
// Three layouts exist, tried by Decode in this priority order:
//
//  1. per-item fields (item_i_id, item_i_name, item_i_price, item_i_qty,
//     item_i_variant, plus item_count). Preferred: a corrupted key loses
//     one field, not the whole snapshot, and the result is human-readable
//     on the processor's dashboard;
//  2. a single JSON blob under cart_data when it fits one slot;
//  3. the same blob split across cart_data_0..n-1 with cart_data_chunks.
package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/storefront/checkout-service/internal/entities"
)

// Stripe metadata limits: 50 keys per object, 500 characters per value.
const (
	MaxValueLen = 500
	MaxKeys     = 50
)

// Scalar keys that ride alongside the item layout. The pricing breakdown is
// stored separately from the items so reconciliation can copy it verbatim
// without recomputing.
const (
	KeyCartID    = "cart_id"
	KeyAccountID = "account_id"
	KeySubtotal  = "subtotal"
	KeyShipping  = "shipping"
	KeyTax       = "tax"
	KeyTotal     = "total"

	keyItemCount  = "item_count"
	keyBlob       = "cart_data"
	keyBlobChunks = "cart_data_chunks"
)

var (
	// ErrSnapshotUnavailable is returned when no layout can be decoded.
	// Callers are required to have a fallback item source.
	ErrSnapshotUnavailable = errors.New("cart snapshot unavailable in metadata")

	// ErrSnapshotTooLarge is returned when even the chunked layout would
	// exceed the metadata key budget. This is an input error: the snapshot
	// is rejected before anything is written.
	ErrSnapshotTooLarge = errors.New("cart snapshot exceeds metadata budget")
)

// Encode serializes s into metadata key/value pairs, each value bounded by
// MaxValueLen. The per-item layout is attempted first and the JSON blob
// layouts are the fallback for carts too large for it.
func Encode(s entities.CartSnapshot) (map[string]string, error) {
	md := scalarFields(s)

	if items, ok := encodePerItem(s.Items, len(md)); ok {
		for k, v := range items {
			md[k] = v
		}
		return md, nil
	}

	blob, err := json.Marshal(s.Items)
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot items: %w", err)
	}

	if len(blob) <= MaxValueLen {
		md[keyBlob] = string(blob)
		return md, nil
	}

	chunks := splitChunks(string(blob), MaxValueLen)
	// one key per chunk plus the chunk-count key
	if len(md)+len(chunks)+1 > MaxKeys {
		return nil, ErrSnapshotTooLarge
	}
	md[keyBlobChunks] = strconv.Itoa(len(chunks))
	for i, chunk := range chunks {
		md[chunkKey(i)] = chunk
	}
	return md, nil
}

// Decode restores a snapshot from metadata, trying the per-item layout, then
// the single blob, then the chunked blob. A failure of one layout falls
// through to the next; if all fail the typed ErrSnapshotUnavailable is
// returned rather than a partial result.
func Decode(md map[string]string) (entities.CartSnapshot, error) {
	s := entities.CartSnapshot{
		CartID:    md[KeyCartID],
		AccountID: md[KeyAccountID],
	}
	s.Pricing = decodePricing(md)

	if items, err := decodePerItem(md); err == nil {
		s.Items = items
		return s, nil
	}

	if blob, ok := md[keyBlob]; ok {
		if items, err := unmarshalItems(blob); err == nil {
			s.Items = items
			return s, nil
		}
	}

	if blob, ok := reassembleChunks(md); ok {
		if items, err := unmarshalItems(blob); err == nil {
			s.Items = items
			return s, nil
		}
	}

	return entities.CartSnapshot{}, ErrSnapshotUnavailable
}

func scalarFields(s entities.CartSnapshot) map[string]string {
	md := map[string]string{
		KeySubtotal: s.Pricing.Subtotal.String(),
		KeyShipping: s.Pricing.Shipping.String(),
		KeyTax:      s.Pricing.Tax.String(),
		KeyTotal:    s.Pricing.Total.String(),
	}
	if s.CartID != "" {
		md[KeyCartID] = s.CartID
	}
	if s.AccountID != "" {
		md[KeyAccountID] = s.AccountID
	}
	return md
}

func decodePricing(md map[string]string) entities.Pricing {
	parse := func(key string) decimal.Decimal {
		d, err := decimal.NewFromString(md[key])
		if err != nil {
			return decimal.Zero
		}
		return d
	}
	return entities.Pricing{
		Subtotal: parse(KeySubtotal),
		Shipping: parse(KeyShipping),
		Tax:      parse(KeyTax),
		Total:    parse(KeyTotal),
	}
}

func encodePerItem(items []entities.SnapshotItem, usedKeys int) (map[string]string, bool) {
	if len(items) == 0 {
		return nil, false
	}

	md := make(map[string]string, len(items)*5+1)
	md[keyItemCount] = strconv.Itoa(len(items))

	for i, item := range items {
		fields := map[string]string{
			itemKey(i, "id"):    item.ProductID,
			itemKey(i, "name"):  item.Name,
			itemKey(i, "price"): item.UnitPrice.String(),
			itemKey(i, "qty"):   strconv.Itoa(item.Quantity),
		}
		if item.VariantID != "" {
			fields[itemKey(i, "variant")] = item.VariantID
		}
		for k, v := range fields {
			if len(v) > MaxValueLen {
				return nil, false
			}
			md[k] = v
		}
	}

	if usedKeys+len(md) > MaxKeys {
		return nil, false
	}
	return md, true
}

func decodePerItem(md map[string]string) ([]entities.SnapshotItem, error) {
	raw, ok := md[keyItemCount]
	if !ok {
		return nil, ErrSnapshotUnavailable
	}
	count, err := strconv.Atoi(raw)
	if err != nil || count <= 0 {
		return nil, fmt.Errorf("bad %s %q", keyItemCount, raw)
	}

	items := make([]entities.SnapshotItem, 0, count)
	for i := 0; i < count; i++ {
		price, err := decimal.NewFromString(md[itemKey(i, "price")])
		if err != nil {
			return nil, fmt.Errorf("item %d: bad price: %w", i, err)
		}
		qty, err := strconv.Atoi(md[itemKey(i, "qty")])
		if err != nil || qty < 1 {
			return nil, fmt.Errorf("item %d: bad quantity", i)
		}
		id := md[itemKey(i, "id")]
		if id == "" {
			return nil, fmt.Errorf("item %d: missing product id", i)
		}
		items = append(items, entities.SnapshotItem{
			ProductID: id,
			VariantID: md[itemKey(i, "variant")],
			Name:      md[itemKey(i, "name")],
			Quantity:  qty,
			UnitPrice: price,
		})
	}
	return items, nil
}

func unmarshalItems(blob string) ([]entities.SnapshotItem, error) {
	var items []entities.SnapshotItem
	if err := json.Unmarshal([]byte(blob), &items); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, errors.New("empty item list")
	}
	return items, nil
}

func reassembleChunks(md map[string]string) (string, bool) {
	raw, ok := md[keyBlobChunks]
	if !ok {
		return "", false
	}
	count, err := strconv.Atoi(raw)
	if err != nil || count <= 0 {
		return "", false
	}

	var blob string
	for i := 0; i < count; i++ {
		chunk, ok := md[chunkKey(i)]
		if !ok {
			return "", false
		}
		blob += chunk
	}
	return blob, true
}

func splitChunks(s string, size int) []string {
	var chunks []string
	for len(s) > size {
		chunks = append(chunks, s[:size])
		s = s[size:]
	}
	return append(chunks, s)
}

func itemKey(i int, field string) string {
	return fmt.Sprintf("item_%d_%s", i, field)
}

func chunkKey(i int) string {
	return fmt.Sprintf("%s_%d", keyBlob, i)
}
