package budgetquest

import (
	"errors"
	"fmt"
	"slices"
)

// ErrInsufficientCoins is returned when a purchase costs more than the
// user's coin balance.
var ErrInsufficientCoins = errors.New("insufficient coins")

// ShopItem is an avatar accessory purchasable with coins.
type ShopItem struct {
	Name string
	Cost int
}

// Catalogue lists the purchasable avatar accessories.
var Catalogue = []ShopItem{
	{Name: "hat", Cost: 20},
}

// LookupItem returns the catalogue item with the given name.
func LookupItem(name string) (ShopItem, error) {
	for _, item := range Catalogue {
		if item.Name == name {
			return item, nil
		}
	}
	return ShopItem{}, fmt.Errorf("unknown shop item: %q", name)
}

// Buy purchases an accessory: it deducts the item's cost from the coin
// balance and adds the item to the owned accessories. Owning an accessory is
// set membership, so buying it twice is rejected before any coins move.
func Buy(p Progression, owned []string, name string) (Progression, []string, error) {
	item, err := LookupItem(name)
	if err != nil {
		return p, owned, err
	}
	if slices.Contains(owned, name) {
		return p, owned, fmt.Errorf("accessory %q already owned", name)
	}
	if p.Coins < item.Cost {
		return p, owned, fmt.Errorf("buying %q costs %d coins, have %d: %w", name, item.Cost, p.Coins, ErrInsufficientCoins)
	}
	p.Coins -= item.Cost
	return p, append(slices.Clip(owned), name), nil
}
