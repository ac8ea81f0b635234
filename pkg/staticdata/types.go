package staticdata

// Champion describes one playable champion.
type Champion struct {
	ID    int    // numeric champion id
	Key   string // internal identifier, e.g. "MonkeyKing"
	Name  string // display name, e.g. "Wukong"
	Title string
}

// Item describes one purchasable item.
type Item struct {
	ID        int
	Name      string
	Plaintext string
	GoldTotal int
}

// SummonerSpell describes one summoner spell.
type SummonerSpell struct {
	ID   int
	Key  string // internal identifier, e.g. "SummonerFlash"
	Name string // display name, e.g. "Flash"
}

// Rune describes one rune or rune style.
type Rune struct {
	ID    int
	Key   string
	Name  string
	Style bool // true for the style (tree) records themselves
}

// Data Dragon JSON envelopes.

type championFile struct {
	Version string                    `json:"version"`
	Data    map[string]championRecord `json:"data"`
}

type championRecord struct {
	ID    string `json:"id"`
	Key   string `json:"key"` // numeric id as a string
	Name  string `json:"name"`
	Title string `json:"title"`
}

type itemFile struct {
	Data map[string]itemRecord `json:"data"` // keyed by numeric id string
}

type itemRecord struct {
	Name      string `json:"name"`
	Plaintext string `json:"plaintext"`
	Gold      struct {
		Total int `json:"total"`
	} `json:"gold"`
}

type spellFile struct {
	Data map[string]spellRecord `json:"data"`
}

type spellRecord struct {
	ID   string `json:"id"`
	Key  string `json:"key"` // numeric id as a string
	Name string `json:"name"`
}

type runeStyle struct {
	ID    int        `json:"id"`
	Key   string     `json:"key"`
	Name  string     `json:"name"`
	Slots []runeSlot `json:"slots"`
}

type runeSlot struct {
	Runes []runeRecord `json:"runes"`
}

type runeRecord struct {
	ID   int    `json:"id"`
	Key  string `json:"key"`
	Name string `json:"name"`
}
