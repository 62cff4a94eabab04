package model

type Color = string

const (
	ColorRed    Color = "red"
	ColorBlue   Color = "blue"
	ColorGreen  Color = "green"
	ColorOrange Color = "orange"
)

var Colors = []Color{ColorRed, ColorBlue, ColorGreen, ColorOrange}

// TotalTiles is the full tile universe: two copies of 13 values in 4 colors
// plus two jokers.
const TotalTiles = 106

type Tile struct {
	ID     int   `json:"id"`
	Number int   `json:"number"`
	Color  Color `json:"color"`
	Joker  bool  `json:"joker"`
}

// Value is the scoring value of a tile. Jokers count as zero.
func (t Tile) Value() int {
	if t.Joker {
		return 0
	}
	return t.Number
}

// NewTileSet builds the 106-tile universe with sequential unique ids.
func NewTileSet() []Tile {
	tiles := make([]Tile, 0, TotalTiles)
	id := 0
	for set := 0; set < 2; set++ {
		for _, color := range Colors {
			for num := 1; num <= 13; num++ {
				tiles = append(tiles, Tile{ID: id, Number: num, Color: color})
				id++
			}
		}
	}
	tiles = append(tiles, Tile{ID: id, Joker: true})
	tiles = append(tiles, Tile{ID: id + 1, Joker: true})
	return tiles
}
