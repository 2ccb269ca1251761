package models

// Rarity is the rarity tier of a [CollectionItem].
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

var rarityRanks = map[Rarity]int{
	RarityCommon:    0,
	RarityUncommon:  1,
	RarityRare:      2,
	RarityEpic:      3,
	RarityLegendary: 4,
}

// Rank orders rarities from common (0) to legendary (4).
// Unknown values rank -1, below every known tier.
func (r Rarity) Rank() int {
	rank, ok := rarityRanks[r]
	if !ok {
		return -1
	}
	return rank
}
