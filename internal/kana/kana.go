package kana

// Script identifies one of the two Japanese syllabaries.
type Script string

const (
	Hiragana Script = "hiragana"
	Katakana Script = "katakana"
)

// Category groups entries by sound class.
type Category string

const (
	Basic   Category = "basic"   // gojūon
	Dakuten Category = "dakuten" // voiced and semi-voiced
	Youon   Category = "youon"   // contracted sounds
)

// Scripts lists all scripts in display order.
var Scripts = []Script{Hiragana, Katakana}

// Categories lists all categories in display order.
var Categories = []Category{Basic, Dakuten, Youon}

// Entry is a single kana character with its romanization.
// ID is unique across the whole catalog and is the join key used by the
// mistake store and deck membership.
type Entry struct {
	ID       string
	Char     string
	Romaji   string
	Script   Script
	Category Category
}
