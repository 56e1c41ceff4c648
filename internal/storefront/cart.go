package storefront

import (
	"context"
	"fmt"
	"math"
	"slices"
	"strings"
	"sync"

	"github.com/ariefcatur/janoer-storefront/internal/catalog"
	"github.com/ariefcatur/janoer-storefront/internal/kv"
	"github.com/rs/zerolog"
)

// CartLine: snapshot produk saat pertama kali masuk cart.
type CartLine struct {
	ID            string           `json:"cart_item_id"`
	ProductID     int              `json:"id"`
	Slug          string           `json:"slug"`
	Name          string           `json:"name"`
	Price         int              `json:"price"`
	Category      catalog.Category `json:"category"`
	Pattern       catalog.Pattern  `json:"pattern"`
	Images        []string         `json:"images,omitempty"`
	SelectedSize  string           `json:"selected_size"`
	SelectedColor string           `json:"selected_color"`
	Quantity      int              `json:"quantity"`
}

func (l CartLine) Subtotal() int { return l.Price * l.Quantity }

func (l CartLine) sameVariant(productID int, size, color string) bool {
	return l.ProductID == productID && l.SelectedSize == size && l.SelectedColor == color
}

// LineID: {product_id}-{size}-{color}, spasi jadi "_".
func LineID(productID int, size, color string) string {
	return fmt.Sprintf("%d-%s-%s", productID, lineToken(size), lineToken(color))
}

func lineToken(s string) string {
	if s == "" {
		return "default"
	}
	return strings.ReplaceAll(s, " ", "_")
}

// MaxLineQuantity caps a line's quantity so totals stay within int range.
const MaxLineQuantity = math.MaxInt32

func addQuantity(cur, qty int) int {
	if qty > MaxLineQuantity-cur {
		return MaxLineQuantity
	}
	return cur + qty
}

type Cart struct {
	mu    sync.Mutex
	store kv.Store
	log   *zerolog.Logger
	lines []CartLine
}

func OpenCart(ctx context.Context, store kv.Store, opts Options) *Cart {
	opts = opts.withDefaults()
	c := &Cart{store: store, log: opts.Logger}
	c.lines = loadList[CartLine](ctx, store, KeyCart, c.log)
	return c
}

// Add: size/color kosong -> opsi pertama produk. Varian yang sama di-merge
// (qty dijumlah, mentok di MaxLineQuantity). qty < 1 dianggap 1.
func (c *Cart) Add(ctx context.Context, p catalog.Product, qty int, size, color string) CartLine {
	qty = min(max(qty, 1), MaxLineQuantity)
	if size == "" {
		size = p.DefaultSize()
	}
	if color == "" {
		color = p.DefaultColor()
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].sameVariant(p.ID, size, color) {
			c.lines[i].Quantity = addQuantity(c.lines[i].Quantity, qty)
			c.persist(ctx)
			return c.lines[i]
		}
	}

	line := CartLine{
		ID:            LineID(p.ID, size, color),
		ProductID:     p.ID,
		Slug:          p.Slug,
		Name:          p.Name,
		Price:         p.Price,
		Category:      p.Category,
		Pattern:       p.Pattern,
		Images:        slices.Clone(p.Images),
		SelectedSize:  size,
		SelectedColor: color,
		Quantity:      qty,
	}
	c.lines = append(c.lines, line)
	c.persist(ctx)
	return line
}

func (c *Cart) Remove(ctx context.Context, lineID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remove(ctx, lineID)
}

// UpdateQuantity: qty < 1 sama dengan Remove.
func (c *Cart) UpdateQuantity(ctx context.Context, lineID string, qty int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if qty < 1 {
		return c.remove(ctx, lineID)
	}
	i := c.index(lineID)
	if i < 0 {
		return false
	}
	c.lines[i].Quantity = min(qty, MaxLineQuantity)
	c.persist(ctx)
	return true
}

func (c *Cart) Clear(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = []CartLine{}
	c.persist(ctx)
}

func (c *Cart) Lines() []CartLine {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.lines)
}

func (c *Cart) Line(lineID string) (CartLine, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if i := c.index(lineID); i >= 0 {
		return c.lines[i], true
	}
	return CartLine{}, false
}

func (c *Cart) TotalItems() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

func (c *Cart) TotalPrice() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return sumLines(c.lines)
}

// Contains: cek per produk, varian diabaikan.
func (c *Cart) Contains(productID int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.ContainsFunc(c.lines, func(l CartLine) bool { return l.ProductID == productID })
}

func (c *Cart) IsEmpty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.lines) == 0
}

func (c *Cart) remove(ctx context.Context, lineID string) bool {
	i := c.index(lineID)
	if i < 0 {
		return false
	}
	c.lines = slices.Delete(c.lines, i, i+1)
	c.persist(ctx)
	return true
}

func (c *Cart) index(lineID string) int {
	return slices.IndexFunc(c.lines, func(l CartLine) bool { return l.ID == lineID })
}

func (c *Cart) persist(ctx context.Context) {
	saveList(ctx, c.store, KeyCart, c.lines, c.log)
}

func sumLines(lines []CartLine) int {
	total := 0
	for _, l := range lines {
		total += l.Subtotal()
	}
	return total
}
