package models

import "fmt"

// Category classifies the scanned organism. The extraction model is
// constrained to exactly this set; anything else is rejected upstream.
type Category string

const (
	CategoryMammal     Category = "mammal"
	CategoryBird       Category = "bird"
	CategoryReptile    Category = "reptile"
	CategoryAmphibian  Category = "amphibian"
	CategoryFish       Category = "fish"
	CategoryInsect     Category = "insect"
	CategoryArachnid   Category = "arachnid"
	CategoryMollusk    Category = "mollusk"
	CategoryCrustacean Category = "crustacean"
	CategoryPlant      Category = "plant"
	CategoryFungus     Category = "fungus"
)

// Biome is the habitat pictured on the card background.
type Biome string

const (
	BiomeForest     Biome = "forest"
	BiomeJungle     Biome = "jungle"
	BiomeDesert     Biome = "desert"
	BiomeGrassland  Biome = "grassland"
	BiomeMountain   Biome = "mountain"
	BiomeWetland    Biome = "wetland"
	BiomeFreshwater Biome = "freshwater"
	BiomeMarine     Biome = "marine"
	BiomeUrban      Biome = "urban"
)

// Rarity grades how unusual the sighting is.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityLegendary Rarity = "legendary"
)

// TraitCount is the fixed number of trait lines on a card.
const TraitCount = 4

// AllCategories, AllBiomes and AllRarities are the closed value sets,
// in the order they appear in the extraction schema.
var (
	AllCategories = []Category{
		CategoryMammal, CategoryBird, CategoryReptile, CategoryAmphibian,
		CategoryFish, CategoryInsect, CategoryArachnid, CategoryMollusk,
		CategoryCrustacean, CategoryPlant, CategoryFungus,
	}
	AllBiomes = []Biome{
		BiomeForest, BiomeJungle, BiomeDesert, BiomeGrassland, BiomeMountain,
		BiomeWetland, BiomeFreshwater, BiomeMarine, BiomeUrban,
	}
	AllRarities = []Rarity{RarityCommon, RarityUncommon, RarityRare, RarityLegendary}
)

var (
	validCategories = toSet(AllCategories)
	validBiomes     = toSet(AllBiomes)
	validRarities   = toSet(AllRarities)
)

func toSet[T comparable](vals []T) map[T]struct{} {
	set := make(map[T]struct{}, len(vals))
	for _, v := range vals {
		set[v] = struct{}{}
	}
	return set
}

func (c Category) Valid() bool { _, ok := validCategories[c]; return ok }
func (b Biome) Valid() bool    { _, ok := validBiomes[b]; return ok }
func (r Rarity) Valid() bool   { _, ok := validRarities[r]; return ok }

// SpeciesMetadata is the naturalist data extracted from one scan.
// It is produced once per (common name, continent) pair and never
// mutated afterwards.
type SpeciesMetadata struct {
	CommonName              string   `json:"commonName"`
	ScientificName          string   `json:"scientificName"`
	Category                Category `json:"category"`
	Biome                   Biome    `json:"biome"`
	Continent               string   `json:"continent"`
	Traits                  []string `json:"traits"`
	AverageSize             string   `json:"averageSize"`
	LifeExpectancy          string   `json:"lifeExpectancy"`
	ProfessionalDescription string   `json:"professionalDescription"`
	Rarity                  Rarity   `json:"rarity"`
}

// Validate rejects anything the extraction schema should have made
// impossible: missing fields, out-of-enum values, wrong trait count.
func (m SpeciesMetadata) Validate() error {
	if m.CommonName == "" {
		return fmt.Errorf("missing commonName")
	}
	if m.ScientificName == "" {
		return fmt.Errorf("missing scientificName")
	}
	if m.Continent == "" {
		return fmt.Errorf("missing continent")
	}
	if !m.Category.Valid() {
		return fmt.Errorf("invalid category %q", m.Category)
	}
	if !m.Biome.Valid() {
		return fmt.Errorf("invalid biome %q", m.Biome)
	}
	if !m.Rarity.Valid() {
		return fmt.Errorf("invalid rarity %q", m.Rarity)
	}
	if len(m.Traits) != TraitCount {
		return fmt.Errorf("expected %d traits, got %d", TraitCount, len(m.Traits))
	}
	for i, t := range m.Traits {
		if t == "" {
			return fmt.Errorf("trait %d is empty", i)
		}
	}
	if m.AverageSize == "" {
		return fmt.Errorf("missing averageSize")
	}
	if m.LifeExpectancy == "" {
		return fmt.Errorf("missing lifeExpectancy")
	}
	if m.ProfessionalDescription == "" {
		return fmt.Errorf("missing professionalDescription")
	}
	return nil
}
